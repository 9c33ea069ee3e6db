package exhaust

// slot is one table entry: either a real entry or an unhandled marker.
type slot[E any] struct {
	entry     E
	unhandled *UnhandledEntry
}

// table is the single runtime representation behind every visitor and
// mapper view. E is func(Value[S]) R for visitors and R for mappers.
//
// A table is never mutated after build and is safe for concurrent use.
type table[S ~string, E any] struct {
	cases      map[S]slot[E]
	null       *slot[E]
	undefined  *slot[E]
	unexpected *slot[E]
	hooks      hooks
}

// resolve selects the entry for v.
//
// The null and undefined channels are checked before any case lookup, and
// case lookup is exact key presence in the map. When no slot owns v the
// unexpected slot is used if present. A resolved slot holding an unhandled
// marker fails regardless of which branch reached it.
func (t *table[S, E]) resolve(v Value[S]) (E, error) {
	var zero E

	var (
		s  *slot[E]
		ch Channel
	)
	switch v.kind {
	case KindNull:
		s, ch = t.null, ChannelNull
	case KindUndefined:
		s, ch = t.undefined, ChannelUndefined
	default:
		if cs, ok := t.cases[v.s]; ok {
			s, ch = &cs, ChannelCase
		}
	}

	if s == nil {
		if t.unexpected == nil {
			return zero, t.handleUnexpected(v)
		}
		s, ch = t.unexpected, ChannelUnexpected
	}

	if s.unhandled != nil {
		return zero, t.handleUnhandled(v, s.unhandled)
	}

	t.hooks.callOnDispatch(v.String(), ch)
	return s.entry, nil
}

// handleUnexpected handles the case when no slot owns the value.
func (t *table[S, E]) handleUnexpected(v Value[S]) error {
	value := v.String()
	t.hooks.callOnUnexpected(value, v.kind)
	return &UnexpectedValueError{Value: value, Kind: v.kind}
}

// handleUnhandled handles the case when the resolved slot is marked unhandled.
func (t *table[S, E]) handleUnhandled(v Value[S], u *UnhandledEntry) error {
	value := v.String()
	t.hooks.callOnUnhandled(value, u.message)
	return u.errFor(value, v.kind)
}
