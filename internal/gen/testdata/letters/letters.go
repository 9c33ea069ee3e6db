package letters

type Letter string

// Some names here match identifiers the generated functions would otherwise
// use.
const (
	A       Letter = "a"
	b       Letter = "b"
	h       Letter = "h"
	opts    Letter = "opts"
	R       Letter = "r"
	exhaust Letter = "e"
)

type letter string

const (
	x letter = "x"
	y letter = "y"
)
