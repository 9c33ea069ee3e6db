package exhaust

import "fmt"

var errZeroTable = fmt.Errorf("%w: zero-value table", ErrInvalidTable)

// visitorEntry is the stored form of every visitor handler.
type visitorEntry[S ~string, R any] = func(Value[S]) R

// VisitorBuilder assembles a visitor table: one handler per value of a Set,
// plus null, undefined, and unexpected handlers as the chosen Build method
// requires.
//
// Example:
//
//	v, err := exhaust.NewVisitor[string](colors).
//	    Case(Red, func(Color) string { return "Red!" }).
//	    Case(Green, func(Color) string { return "Green!" }).
//	    Case(Blue, func(Color) string { return "Blue!" }).
//	    Build()
type VisitorBuilder[S ~string, R any] struct {
	b builder[S, visitorEntry[S, R]]
}

// NewVisitor starts a visitor table over set. The options attach hooks to
// the table built from it.
func NewVisitor[R any, S ~string](set *Set[S], opts ...Option) *VisitorBuilder[S, R] {
	return &VisitorBuilder[S, R]{b: newBuilder[S, visitorEntry[S, R]](set, opts)}
}

// Case sets the handler for s. The handler receives s.
func (vb *VisitorBuilder[S, R]) Case(s S, fn func(S) R) *VisitorBuilder[S, R] {
	if fn == nil {
		vb.b.problem("nil handler for case %q", string(s))
	}
	vb.b.setCase(s, slot[visitorEntry[S, R]]{entry: func(v Value[S]) R { return fn(v.s) }})
	return vb
}

// CaseUnhandled marks s as deliberately not handled. A nil token means the
// shared token from Unhandled.
func (vb *VisitorBuilder[S, R]) CaseUnhandled(s S, u *UnhandledEntry) *VisitorBuilder[S, R] {
	vb.b.setCase(s, markUnhandled[visitorEntry[S, R]](u))
	return vb
}

// Null sets the handler for a null value.
func (vb *VisitorBuilder[S, R]) Null(fn func() R) *VisitorBuilder[S, R] {
	if fn == nil {
		vb.b.problem("nil handler for null")
	}
	vb.b.setChannel(&vb.b.null, ChannelNull, slot[visitorEntry[S, R]]{entry: func(Value[S]) R { return fn() }})
	return vb
}

// NullUnhandled marks null as deliberately not handled.
func (vb *VisitorBuilder[S, R]) NullUnhandled(u *UnhandledEntry) *VisitorBuilder[S, R] {
	vb.b.setChannel(&vb.b.null, ChannelNull, markUnhandled[visitorEntry[S, R]](u))
	return vb
}

// Undefined sets the handler for an undefined value.
func (vb *VisitorBuilder[S, R]) Undefined(fn func() R) *VisitorBuilder[S, R] {
	if fn == nil {
		vb.b.problem("nil handler for undefined")
	}
	vb.b.setChannel(&vb.b.undefined, ChannelUndefined, slot[visitorEntry[S, R]]{entry: func(Value[S]) R { return fn() }})
	return vb
}

// UndefinedUnhandled marks undefined as deliberately not handled.
func (vb *VisitorBuilder[S, R]) UndefinedUnhandled(u *UnhandledEntry) *VisitorBuilder[S, R] {
	vb.b.setChannel(&vb.b.undefined, ChannelUndefined, markUnhandled[visitorEntry[S, R]](u))
	return vb
}

// Unexpected sets the catch-all handler, called with any value no other
// entry owns. It is optional for every nullability.
func (vb *VisitorBuilder[S, R]) Unexpected(fn func(Value[S]) R) *VisitorBuilder[S, R] {
	if fn == nil {
		vb.b.problem("nil handler for unexpected")
	}
	vb.b.setChannel(&vb.b.unexpected, ChannelUnexpected, slot[visitorEntry[S, R]]{entry: fn})
	return vb
}

// UnexpectedUnhandled installs a catch-all that fails with an unhandled
// error instead of an unexpected one.
func (vb *VisitorBuilder[S, R]) UnexpectedUnhandled(u *UnhandledEntry) *VisitorBuilder[S, R] {
	vb.b.setChannel(&vb.b.unexpected, ChannelUnexpected, markUnhandled[visitorEntry[S, R]](u))
	return vb
}

// Build returns a visitor for values that are never null or undefined.
// Null or undefined entries are rejected.
func (vb *VisitorBuilder[S, R]) Build() (Visitor[S, R], error) {
	t, err := vb.b.build(Strict)
	return Visitor[S, R]{t: t}, err
}

// BuildOrNull returns a visitor for values that may be null. A null entry
// is required; an undefined entry is rejected.
func (vb *VisitorBuilder[S, R]) BuildOrNull() (VisitorWithNull[S, R], error) {
	t, err := vb.b.build(OrNull)
	return VisitorWithNull[S, R]{t: t}, err
}

// BuildOrUndefined returns a visitor for values that may be undefined. An
// undefined entry is required; a null entry is rejected.
func (vb *VisitorBuilder[S, R]) BuildOrUndefined() (VisitorWithUndefined[S, R], error) {
	t, err := vb.b.build(OrUndefined)
	return VisitorWithUndefined[S, R]{t: t}, err
}

// BuildOrNullOrUndefined returns a visitor for values that may be null or
// undefined. Both entries are required.
func (vb *VisitorBuilder[S, R]) BuildOrNullOrUndefined() (VisitorWithNullAndUndefined[S, R], error) {
	t, err := vb.b.build(OrNullOrUndefined)
	return VisitorWithNullAndUndefined[S, R]{t: t}, err
}

// Visitor is a validated visitor table for values that are never null or
// undefined.
type Visitor[S ~string, R any] struct{ t *table[S, visitorEntry[S, R]] }

// VisitorWithNull is a validated visitor table for values that may be null.
type VisitorWithNull[S ~string, R any] struct{ t *table[S, visitorEntry[S, R]] }

// VisitorWithUndefined is a validated visitor table for values that may be
// undefined.
type VisitorWithUndefined[S ~string, R any] struct{ t *table[S, visitorEntry[S, R]] }

// VisitorWithNullAndUndefined is a validated visitor table for values that
// may be null or undefined.
type VisitorWithNullAndUndefined[S ~string, R any] struct{ t *table[S, visitorEntry[S, R]] }

func visit[S ~string, R any](t *table[S, visitorEntry[S, R]], v Value[S]) (R, error) {
	var zero R
	if t == nil {
		return zero, errZeroTable
	}
	fn, err := t.resolve(v)
	if err != nil {
		return zero, err
	}
	return fn(v), nil
}

// Visitee wraps a value to be visited. Get one from Visit.
type Visitee[S ~string, R any] struct{ v Value[S] }

// Visit wraps s for visiting with a Visitor returning R. S is inferred:
//
//	label, err := exhaust.Visit[string](color).With(colorLabels)
func Visit[R any, S ~string](s S) Visitee[S, R] {
	return Visitee[S, R]{v: Of(s)}
}

// With calls the handler whose case matches the wrapped value and returns
// its result.
func (e Visitee[S, R]) With(visitor Visitor[S, R]) (R, error) {
	return visit(visitor.t, e.v)
}

// VisiteeWithNull wraps a value that may be null. Get one from VisitOrNull.
type VisiteeWithNull[S ~string, R any] struct{ v Value[S] }

// VisitOrNull wraps p for visiting; a nil p is null.
func VisitOrNull[R any, S ~string](p *S) VisiteeWithNull[S, R] {
	return VisiteeWithNull[S, R]{v: FromPtr(p)}
}

// With calls the null handler for a null value, otherwise the case handler.
func (e VisiteeWithNull[S, R]) With(visitor VisitorWithNull[S, R]) (R, error) {
	return visit(visitor.t, e.v)
}

// VisiteeWithUndefined wraps a value that may be undefined. Get one from
// VisitOrUndefined.
type VisiteeWithUndefined[S ~string, R any] struct{ v Value[S] }

// VisitOrUndefined wraps a comma-ok pair for visiting; ok == false is
// undefined.
func VisitOrUndefined[R any, S ~string](s S, ok bool) VisiteeWithUndefined[S, R] {
	return VisiteeWithUndefined[S, R]{v: FromOptional(s, ok)}
}

// With calls the undefined handler for an undefined value, otherwise the
// case handler.
func (e VisiteeWithUndefined[S, R]) With(visitor VisitorWithUndefined[S, R]) (R, error) {
	return visit(visitor.t, e.v)
}

// VisiteeWithNullAndUndefined wraps a value that may be null or undefined.
// Get one from VisitOrNullOrUndefined.
type VisiteeWithNullAndUndefined[S ~string, R any] struct{ v Value[S] }

// VisitOrNullOrUndefined wraps v for visiting.
func VisitOrNullOrUndefined[R any, S ~string](v Value[S]) VisiteeWithNullAndUndefined[S, R] {
	return VisiteeWithNullAndUndefined[S, R]{v: v}
}

// With calls the null, undefined, or case handler matching the wrapped value.
func (e VisiteeWithNullAndUndefined[S, R]) With(visitor VisitorWithNullAndUndefined[S, R]) (R, error) {
	return visit(visitor.t, e.v)
}

// VisitorFuncFactory builds reusable visiting functions. Get one from
// MakeVisitorFunc, narrow it with OrNull, OrUndefined, or
// OrNullOrUndefined, then bind a table with With:
//
//	label := exhaust.MakeVisitorFunc[Color, string]().OrNull().With(colorLabels)
//	s, err := label(&c)
type VisitorFuncFactory[S ~string, R any] struct{}

// MakeVisitorFunc returns a factory for functions of S returning R.
func MakeVisitorFunc[S ~string, R any]() VisitorFuncFactory[S, R] {
	return VisitorFuncFactory[S, R]{}
}

// OrNull returns a factory for values that may be null.
func (VisitorFuncFactory[S, R]) OrNull() VisitorFuncFactoryWithNull[S, R] {
	return VisitorFuncFactoryWithNull[S, R]{}
}

// OrUndefined returns a factory for values that may be undefined.
func (VisitorFuncFactory[S, R]) OrUndefined() VisitorFuncFactoryWithUndefined[S, R] {
	return VisitorFuncFactoryWithUndefined[S, R]{}
}

// OrNullOrUndefined returns a factory for values that may be null or undefined.
func (VisitorFuncFactory[S, R]) OrNullOrUndefined() VisitorFuncFactoryWithNullAndUndefined[S, R] {
	return VisitorFuncFactoryWithNullAndUndefined[S, R]{}
}

// With returns a function that visits its argument with visitor.
func (VisitorFuncFactory[S, R]) With(visitor Visitor[S, R]) func(S) (R, error) {
	t := visitor.t
	return func(s S) (R, error) {
		return visit(t, Of(s))
	}
}

// VisitorFuncFactoryWithNull builds visiting functions over *S.
type VisitorFuncFactoryWithNull[S ~string, R any] struct{}

// With returns a function that visits its argument with visitor; nil is null.
func (VisitorFuncFactoryWithNull[S, R]) With(visitor VisitorWithNull[S, R]) func(*S) (R, error) {
	t := visitor.t
	return func(p *S) (R, error) {
		return visit(t, FromPtr(p))
	}
}

// VisitorFuncFactoryWithUndefined builds visiting functions over comma-ok pairs.
type VisitorFuncFactoryWithUndefined[S ~string, R any] struct{}

// With returns a function that visits its arguments with visitor; ok ==
// false is undefined.
func (VisitorFuncFactoryWithUndefined[S, R]) With(visitor VisitorWithUndefined[S, R]) func(S, bool) (R, error) {
	t := visitor.t
	return func(s S, ok bool) (R, error) {
		return visit(t, FromOptional(s, ok))
	}
}

// VisitorFuncFactoryWithNullAndUndefined builds visiting functions over Value.
type VisitorFuncFactoryWithNullAndUndefined[S ~string, R any] struct{}

// With returns a function that visits its argument with visitor.
func (VisitorFuncFactoryWithNullAndUndefined[S, R]) With(visitor VisitorWithNullAndUndefined[S, R]) func(Value[S]) (R, error) {
	t := visitor.t
	return func(v Value[S]) (R, error) {
		return visit(t, v)
	}
}
