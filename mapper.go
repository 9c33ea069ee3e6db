package exhaust

// MapperBuilder assembles a mapper table: one value per member of a Set,
// plus null, undefined, and unexpected values as the chosen Build method
// requires. Mapped values are returned as is; nothing is invoked.
//
// Example:
//
//	m, err := exhaust.NewMapper[int](colors).
//	    Case(Red, 1).
//	    Case(Green, 2).
//	    Case(Blue, 3).
//	    Unexpected(-1).
//	    Build()
type MapperBuilder[S ~string, R any] struct {
	b builder[S, R]
}

// NewMapper starts a mapper table over set. The options attach hooks to
// the table built from it.
func NewMapper[R any, S ~string](set *Set[S], opts ...Option) *MapperBuilder[S, R] {
	return &MapperBuilder[S, R]{b: newBuilder[S, R](set, opts)}
}

// Case sets the value for s.
func (mb *MapperBuilder[S, R]) Case(s S, r R) *MapperBuilder[S, R] {
	mb.b.setCase(s, slot[R]{entry: r})
	return mb
}

// CaseUnhandled marks s as deliberately not handled. A nil token means the
// shared token from Unhandled.
func (mb *MapperBuilder[S, R]) CaseUnhandled(s S, u *UnhandledEntry) *MapperBuilder[S, R] {
	mb.b.setCase(s, markUnhandled[R](u))
	return mb
}

// Null sets the value for a null input.
func (mb *MapperBuilder[S, R]) Null(r R) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.null, ChannelNull, slot[R]{entry: r})
	return mb
}

// NullUnhandled marks null as deliberately not handled.
func (mb *MapperBuilder[S, R]) NullUnhandled(u *UnhandledEntry) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.null, ChannelNull, markUnhandled[R](u))
	return mb
}

// Undefined sets the value for an undefined input.
func (mb *MapperBuilder[S, R]) Undefined(r R) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.undefined, ChannelUndefined, slot[R]{entry: r})
	return mb
}

// UndefinedUnhandled marks undefined as deliberately not handled.
func (mb *MapperBuilder[S, R]) UndefinedUnhandled(u *UnhandledEntry) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.undefined, ChannelUndefined, markUnhandled[R](u))
	return mb
}

// Unexpected sets the value returned for any input no other entry owns.
func (mb *MapperBuilder[S, R]) Unexpected(r R) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.unexpected, ChannelUnexpected, slot[R]{entry: r})
	return mb
}

// UnexpectedUnhandled installs a catch-all that fails with an unhandled
// error instead of an unexpected one.
func (mb *MapperBuilder[S, R]) UnexpectedUnhandled(u *UnhandledEntry) *MapperBuilder[S, R] {
	mb.b.setChannel(&mb.b.unexpected, ChannelUnexpected, markUnhandled[R](u))
	return mb
}

// Build returns a mapper for values that are never null or undefined.
func (mb *MapperBuilder[S, R]) Build() (Mapper[S, R], error) {
	t, err := mb.b.build(Strict)
	return Mapper[S, R]{t: t}, err
}

// BuildOrNull returns a mapper for values that may be null.
func (mb *MapperBuilder[S, R]) BuildOrNull() (MapperWithNull[S, R], error) {
	t, err := mb.b.build(OrNull)
	return MapperWithNull[S, R]{t: t}, err
}

// BuildOrUndefined returns a mapper for values that may be undefined.
func (mb *MapperBuilder[S, R]) BuildOrUndefined() (MapperWithUndefined[S, R], error) {
	t, err := mb.b.build(OrUndefined)
	return MapperWithUndefined[S, R]{t: t}, err
}

// BuildOrNullOrUndefined returns a mapper for values that may be null or
// undefined.
func (mb *MapperBuilder[S, R]) BuildOrNullOrUndefined() (MapperWithNullAndUndefined[S, R], error) {
	t, err := mb.b.build(OrNullOrUndefined)
	return MapperWithNullAndUndefined[S, R]{t: t}, err
}

// Mapper is a validated mapper table for values that are never null or
// undefined.
type Mapper[S ~string, R any] struct{ t *table[S, R] }

// MapperWithNull is a validated mapper table for values that may be null.
type MapperWithNull[S ~string, R any] struct{ t *table[S, R] }

// MapperWithUndefined is a validated mapper table for values that may be
// undefined.
type MapperWithUndefined[S ~string, R any] struct{ t *table[S, R] }

// MapperWithNullAndUndefined is a validated mapper table for values that may
// be null or undefined.
type MapperWithNullAndUndefined[S ~string, R any] struct{ t *table[S, R] }

func mapValue[S ~string, R any](t *table[S, R], v Value[S]) (R, error) {
	if t == nil {
		var zero R
		return zero, errZeroTable
	}
	return t.resolve(v)
}

// Mappee wraps a value to be mapped. Get one from Map.
type Mappee[S ~string, R any] struct{ v Value[S] }

// Map wraps s for mapping with a Mapper to R. S is inferred:
//
//	n, err := exhaust.Map[int](color).With(colorCodes)
func Map[R any, S ~string](s S) Mappee[S, R] {
	return Mappee[S, R]{v: Of(s)}
}

// With returns the value mapped to the wrapped value.
func (e Mappee[S, R]) With(mapper Mapper[S, R]) (R, error) {
	return mapValue(mapper.t, e.v)
}

// MappeeWithNull wraps a value that may be null. Get one from MapOrNull.
type MappeeWithNull[S ~string, R any] struct{ v Value[S] }

// MapOrNull wraps p for mapping; a nil p is null.
func MapOrNull[R any, S ~string](p *S) MappeeWithNull[S, R] {
	return MappeeWithNull[S, R]{v: FromPtr(p)}
}

// With returns the null value for a null input, otherwise the case value.
func (e MappeeWithNull[S, R]) With(mapper MapperWithNull[S, R]) (R, error) {
	return mapValue(mapper.t, e.v)
}

// MappeeWithUndefined wraps a value that may be undefined. Get one from
// MapOrUndefined.
type MappeeWithUndefined[S ~string, R any] struct{ v Value[S] }

// MapOrUndefined wraps a comma-ok pair for mapping; ok == false is undefined.
func MapOrUndefined[R any, S ~string](s S, ok bool) MappeeWithUndefined[S, R] {
	return MappeeWithUndefined[S, R]{v: FromOptional(s, ok)}
}

// With returns the undefined value for an undefined input, otherwise the
// case value.
func (e MappeeWithUndefined[S, R]) With(mapper MapperWithUndefined[S, R]) (R, error) {
	return mapValue(mapper.t, e.v)
}

// MappeeWithNullAndUndefined wraps a value that may be null or undefined.
// Get one from MapOrNullOrUndefined.
type MappeeWithNullAndUndefined[S ~string, R any] struct{ v Value[S] }

// MapOrNullOrUndefined wraps v for mapping.
func MapOrNullOrUndefined[R any, S ~string](v Value[S]) MappeeWithNullAndUndefined[S, R] {
	return MappeeWithNullAndUndefined[S, R]{v: v}
}

// With returns the null, undefined, or case value matching the wrapped value.
func (e MappeeWithNullAndUndefined[S, R]) With(mapper MapperWithNullAndUndefined[S, R]) (R, error) {
	return mapValue(mapper.t, e.v)
}

// MapperFuncFactory builds reusable mapping functions. Get one from
// MakeMapperFunc, optionally narrow it, then bind a table with With.
type MapperFuncFactory[S ~string, R any] struct{}

// MakeMapperFunc returns a factory for functions mapping S to R.
func MakeMapperFunc[S ~string, R any]() MapperFuncFactory[S, R] {
	return MapperFuncFactory[S, R]{}
}

// OrNull returns a factory for values that may be null.
func (MapperFuncFactory[S, R]) OrNull() MapperFuncFactoryWithNull[S, R] {
	return MapperFuncFactoryWithNull[S, R]{}
}

// OrUndefined returns a factory for values that may be undefined.
func (MapperFuncFactory[S, R]) OrUndefined() MapperFuncFactoryWithUndefined[S, R] {
	return MapperFuncFactoryWithUndefined[S, R]{}
}

// OrNullOrUndefined returns a factory for values that may be null or undefined.
func (MapperFuncFactory[S, R]) OrNullOrUndefined() MapperFuncFactoryWithNullAndUndefined[S, R] {
	return MapperFuncFactoryWithNullAndUndefined[S, R]{}
}

// With returns a function that maps its argument with mapper.
func (MapperFuncFactory[S, R]) With(mapper Mapper[S, R]) func(S) (R, error) {
	t := mapper.t
	return func(s S) (R, error) {
		return mapValue(t, Of(s))
	}
}

// MapperFuncFactoryWithNull builds mapping functions over *S.
type MapperFuncFactoryWithNull[S ~string, R any] struct{}

// With returns a function that maps its argument with mapper; nil is null.
func (MapperFuncFactoryWithNull[S, R]) With(mapper MapperWithNull[S, R]) func(*S) (R, error) {
	t := mapper.t
	return func(p *S) (R, error) {
		return mapValue(t, FromPtr(p))
	}
}

// MapperFuncFactoryWithUndefined builds mapping functions over comma-ok pairs.
type MapperFuncFactoryWithUndefined[S ~string, R any] struct{}

// With returns a function that maps its arguments with mapper.
func (MapperFuncFactoryWithUndefined[S, R]) With(mapper MapperWithUndefined[S, R]) func(S, bool) (R, error) {
	t := mapper.t
	return func(s S, ok bool) (R, error) {
		return mapValue(t, FromOptional(s, ok))
	}
}

// MapperFuncFactoryWithNullAndUndefined builds mapping functions over Value.
type MapperFuncFactoryWithNullAndUndefined[S ~string, R any] struct{}

// With returns a function that maps its argument with mapper.
func (MapperFuncFactoryWithNullAndUndefined[S, R]) With(mapper MapperWithNullAndUndefined[S, R]) func(Value[S]) (R, error) {
	t := mapper.t
	return func(v Value[S]) (R, error) {
		return mapValue(t, v)
	}
}
