// Package exhaust provides exhaustive dispatch over closed sets of string values.
//
// A discriminant is a named string type with a fixed set of constants. The
// package checks that a dispatch table covers every constant, plus the null
// and undefined states the call site admits, and then selects the matching
// entry at runtime.
//
// # Quick Start
//
// Declare the set once:
//
//	type Color string
//
//	const (
//	    Red   Color = "R"
//	    Green Color = "G"
//	    Blue  Color = "B"
//	)
//
//	var colors = exhaust.Must(exhaust.NewSet(Red, Green, Blue))
//
// Build a table and dispatch:
//
//	labels := exhaust.Must(exhaust.NewVisitor[string](colors).
//	    Case(Red, func(Color) string { return "Red!" }).
//	    Case(Green, func(Color) string { return "Green!" }).
//	    Case(Blue, func(Color) string { return "Blue!" }).
//	    Build())
//
//	s, err := exhaust.Visit[string](Red).With(labels) // "Red!"
//
// # Visitors and Mappers
//
// There are two table styles:
//
//   - Visitor: each entry is a handler, called with the matched value
//   - Mapper: each entry is a value, returned without calling anything
//
// Both share one runtime table and one dispatch algorithm.
//
// # Nullability
//
// Each table is built for one of four nullability variants, and each
// variant has its own view type so that tables and values cannot be mixed
// up at compile time:
//
//	Build()                  -> Visitor            / Mapper             (S)
//	BuildOrNull()            -> VisitorWithNull    / MapperWithNull     (*S)
//	BuildOrUndefined()       -> VisitorWithUndefined / ...              (S, ok)
//	BuildOrNullOrUndefined() -> VisitorWithNullAndUndefined / ...       (Value[S])
//
// A null entry is required exactly when the variant admits null, and the
// same holds for undefined. Supplying one the variant does not admit is an
// error.
//
// At runtime every variant is backed by Value, a tagged union of a string,
// null, or undefined. Nil pointers map to null and failed comma-ok lookups
// map to undefined.
//
// # Validation
//
// Go has no structural check for missing or extra keys, so the Build methods
// do it: each value in the Set must have exactly one entry, values outside
// the Set are rejected, and nil handlers are rejected. All problems are
// reported together in a *TableError.
//
// For compile-time checking, run exhaustgen on the enum type. It generates a
// visitor interface with one method per constant and a mapper constructor
// with one parameter per constant, so a missing case fails to compile.
//
// # Call Styles
//
// Immediate style wraps a value and dispatches straight away:
//
//	s, err := exhaust.VisitOrNull[string](colorPtr).With(labelsWithNull)
//	n, err := exhaust.Map[int](color).With(codes)
//
// Reusable style binds a table once and returns a plain function:
//
//	label := exhaust.MakeVisitorFunc[Color, string]().OrNull().With(labelsWithNull)
//	s, err := label(colorPtr)
//
// Both styles return identical results and errors for the same input.
//
// # Unexpected and Unhandled Entries
//
// An optional Unexpected entry catches any value no other entry owns, such
// as a Color converted from untrusted input. Without one, dispatch fails
// with an *UnexpectedValueError ("Unexpected value: <v>").
//
// CaseUnhandled, NullUnhandled, UndefinedUnhandled, and UnexpectedUnhandled
// mark an entry as deliberately not implemented. Reaching a marked entry
// fails with an *UnhandledValueError ("Unhandled value: <v>"), with the
// token's message appended when one was given:
//
//	exhaust.NewMapper[int](colors).
//	    Case(Red, 1).
//	    CaseUnhandled(Green, exhaust.NewUnhandled("not shipped yet")).
//	    Case(Blue, 3)
//
// # Hooks
//
// Hooks observe dispatch without changing results:
//
//	exhaust.NewVisitor[string](colors,
//	    exhaust.WithOnUnexpected(func(value string, kind exhaust.Kind) {
//	        metrics.Incr("color.unexpected")
//	    }),
//	    exhaust.WithLogger(slog.Default()),
//	)
//
// # JSON Input
//
// FromJSON reads a discriminant out of a JSON document with gjson. Missing
// fields become undefined and JSON nulls become null, which suits the
// OrNullOrUndefined variant.
//
// # Thread Safety
//
// Sets and built tables are immutable and safe for concurrent use. Builders
// are not.
package exhaust
