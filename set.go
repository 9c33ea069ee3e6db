package exhaust

import "fmt"

// Set is the closed set of values a discriminant type may take. It is
// immutable once created and safe for concurrent use.
type Set[S ~string] struct {
	values []S
	index  map[S]struct{}
}

// NewSet returns a Set of the given values in the order supplied.
//
// Listing a value twice fails with ErrDuplicateValue. A value equal to one
// of the reserved channel names (ReservedNull, ReservedUndefined,
// ReservedUnexpected) fails with ErrReservedValue.
func NewSet[S ~string](values ...S) (*Set[S], error) {
	s := &Set[S]{
		values: make([]S, 0, len(values)),
		index:  make(map[S]struct{}, len(values)),
	}
	for _, v := range values {
		switch string(v) {
		case ReservedNull, ReservedUndefined, ReservedUnexpected:
			return nil, fmt.Errorf("%w: %q", ErrReservedValue, string(v))
		}
		if _, ok := s.index[v]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValue, string(v))
		}
		s.index[v] = struct{}{}
		s.values = append(s.values, v)
	}
	return s, nil
}

// Contains reports whether v is in the set.
func (s *Set[S]) Contains(v S) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns a copy of the values in declaration order.
func (s *Set[S]) Values() []S {
	out := make([]S, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of values.
func (s *Set[S]) Len() int { return len(s.values) }

// Must returns v, panicking if err is non-nil. Use it for package-level
// sets and tables:
//
//	var colors = exhaust.Must(exhaust.NewSet(Red, Green, Blue))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
