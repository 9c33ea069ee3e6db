package exhaust

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies which state a Value is in.
type Kind uint8

const (
	KindUndefined Kind = iota // undefined
	KindNull                  // null
	KindString                // string
)

// Value is a discriminant that may also be null or undefined.
//
// A single Value type backs every nullability variant; which states a call
// site accepts is decided by the view it dispatches through, not by Value.
// The zero Value is undefined.
type Value[S ~string] struct {
	kind Kind
	s    S
}

// Of returns a Value holding s.
func Of[S ~string](s S) Value[S] {
	return Value[S]{kind: KindString, s: s}
}

// Null returns a null Value.
func Null[S ~string]() Value[S] {
	return Value[S]{kind: KindNull}
}

// Undefined returns an undefined Value.
func Undefined[S ~string]() Value[S] {
	return Value[S]{}
}

// FromPtr returns a null Value for a nil pointer, otherwise the pointed-to value.
func FromPtr[S ~string](p *S) Value[S] {
	if p == nil {
		return Null[S]()
	}
	return Of(*p)
}

// FromOptional converts a comma-ok pair, such as a map lookup, into a Value.
// When ok is false the result is undefined.
func FromOptional[S ~string](s S, ok bool) Value[S] {
	if !ok {
		return Undefined[S]()
	}
	return Of(s)
}

// Kind reports the state of v.
func (v Value[S]) Kind() Kind { return v.kind }

// Get returns the held string and true, or the zero S and false when v is
// null or undefined.
func (v Value[S]) Get() (S, bool) {
	if v.kind != KindString {
		var zero S
		return zero, false
	}
	return v.s, true
}

// IsNull reports whether v is null.
func (v Value[S]) IsNull() bool { return v.kind == KindNull }

// IsUndefined reports whether v is undefined.
func (v Value[S]) IsUndefined() bool { return v.kind == KindUndefined }

// String renders null and undefined literally and strings verbatim. This is
// the form used in error messages.
func (v Value[S]) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return string(v.s)
	default:
		return "undefined"
	}
}
