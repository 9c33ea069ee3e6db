package stale

type Color string

// Blue was removed after color_exhaust.go was generated.
const Red Color = "red"
