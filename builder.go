package exhaust

import (
	"fmt"
	"maps"
)

// builder collects slots for a table and validates them against a Set.
// VisitorBuilder and MapperBuilder wrap it with typed entry methods.
type builder[S ~string, E any] struct {
	set        *Set[S]
	opts       []Option
	cases      map[S]slot[E]
	null       *slot[E]
	undefined  *slot[E]
	unexpected *slot[E]
	problems   []string
}

func newBuilder[S ~string, E any](set *Set[S], opts []Option) builder[S, E] {
	return builder[S, E]{
		set:   set,
		opts:  opts,
		cases: make(map[S]slot[E]),
	}
}

func (b *builder[S, E]) problem(format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf(format, args...))
}

func (b *builder[S, E]) setCase(s S, sl slot[E]) {
	if b.set == nil || !b.set.Contains(s) {
		b.problem("unknown case %q", string(s))
		return
	}
	if _, ok := b.cases[s]; ok {
		b.problem("duplicate case %q", string(s))
		return
	}
	b.cases[s] = sl
}

func (b *builder[S, E]) setChannel(dst **slot[E], ch Channel, sl slot[E]) {
	if *dst != nil {
		b.problem("duplicate %s entry", ch)
		return
	}
	*dst = &sl
}

// markUnhandled returns an unhandled slot, substituting the shared token for nil.
func markUnhandled[E any](u *UnhandledEntry) slot[E] {
	if u == nil {
		u = unhandled
	}
	return slot[E]{unhandled: u}
}

// build validates the collected slots for nullability n and returns an
// immutable table. Every problem is reported, not just the first.
func (b *builder[S, E]) build(n Nullability) (*table[S, E], error) {
	problems := append([]string(nil), b.problems...)

	if b.set == nil {
		problems = append(problems, "nil set")
	} else {
		for _, v := range b.set.values {
			if _, ok := b.cases[v]; !ok {
				problems = append(problems, fmt.Sprintf("missing case %q", string(v)))
			}
		}
	}

	switch {
	case n.AdmitsNull() && b.null == nil:
		problems = append(problems, "missing null entry")
	case !n.AdmitsNull() && b.null != nil:
		problems = append(problems, fmt.Sprintf("null entry not allowed (%s)", n))
	}
	switch {
	case n.AdmitsUndefined() && b.undefined == nil:
		problems = append(problems, "missing undefined entry")
	case !n.AdmitsUndefined() && b.undefined != nil:
		problems = append(problems, fmt.Sprintf("undefined entry not allowed (%s)", n))
	}

	if len(problems) > 0 {
		return nil, &TableError{Problems: problems}
	}

	return &table[S, E]{
		cases:      maps.Clone(b.cases),
		null:       b.null,
		undefined:  b.undefined,
		unexpected: b.unexpected,
		hooks:      newHooks(b.opts),
	}, nil
}
