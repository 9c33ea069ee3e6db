package colors

type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

type Shade string

const (
	Light Shade = "light"
	Dark  Shade = "dark"
)

// Untyped and differently typed constants are not collected.
const (
	Default = "red"
	Alias   = string(Red)
)

type Level int

const Low Level = 1
