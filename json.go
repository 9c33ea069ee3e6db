package exhaust

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotString is returned when a JSON field holds something other than
	// a string or null.
	ErrNotString = errors.New("not a string")
)

// FromJSON reads the discriminant at path from raw JSON using gjson path
// syntax. A missing field is undefined, a JSON null is null, and a string is
// returned as is without checking it against any Set; values outside the set
// are left for the table's unexpected entry.
//
// Example:
//
//	v, err := exhaust.FromJSON[Color](body, "shape.color")
//	if err != nil {
//	    return err
//	}
//	label, err := exhaust.VisitOrNullOrUndefined[string](v).With(colorLabels)
func FromJSON[S ~string](raw []byte, path string) (Value[S], error) {
	if !gjson.ValidBytes(raw) {
		return Value[S]{}, ErrInvalidJSON
	}
	return FromJSONResult[S](gjson.GetBytes(raw, path))
}

// FromJSONResult converts an already-queried gjson result.
func FromJSONResult[S ~string](r gjson.Result) (Value[S], error) {
	if !r.Exists() {
		return Undefined[S](), nil
	}
	switch r.Type {
	case gjson.Null:
		return Null[S](), nil
	case gjson.String:
		return Of(S(r.String())), nil
	default:
		return Value[S]{}, fmt.Errorf("%w: %s", ErrNotString, r.Raw)
	}
}
