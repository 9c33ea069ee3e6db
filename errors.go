package exhaust

import (
	"errors"
	"strings"
)

var (
	// ErrUnexpectedValue is matched by errors returned when a value has no
	// entry and the table has no unexpected entry.
	ErrUnexpectedValue = errors.New("unexpected value")

	// ErrUnhandledValue is matched by errors returned when dispatch resolves
	// to an entry marked with an UnhandledEntry.
	ErrUnhandledValue = errors.New("unhandled value")

	// ErrInvalidTable is matched by errors returned from a builder's Build
	// methods.
	ErrInvalidTable = errors.New("invalid table")

	// ErrDuplicateValue is returned by NewSet when a value is listed twice.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrReservedValue is returned by NewSet when a value equals one of the
	// reserved channel names.
	ErrReservedValue = errors.New("reserved value")
)

// Reserved channel names. A Set may not contain these values.
const (
	ReservedNull       = "handleNull"
	ReservedUndefined  = "handleUndefined"
	ReservedUnexpected = "handleUnexpected"
)

// UnexpectedValueError reports a value that has no matching entry.
type UnexpectedValueError struct {
	// Value is the rendered discriminant: "null", "undefined", or the string.
	Value string
	Kind  Kind
}

func (e *UnexpectedValueError) Error() string { return "Unexpected value: " + e.Value }

// Is reports whether target is ErrUnexpectedValue.
func (e *UnexpectedValueError) Is(target error) bool { return target == ErrUnexpectedValue }

// UnhandledValueError reports a value whose entry was marked unhandled.
type UnhandledValueError struct {
	Value   string
	Kind    Kind
	Message string
}

func (e *UnhandledValueError) Error() string {
	msg := "Unhandled value: " + e.Value
	if e.Message != "" {
		msg += " - " + e.Message
	}
	return msg
}

// Is reports whether target is ErrUnhandledValue.
func (e *UnhandledValueError) Is(target error) bool { return target == ErrUnhandledValue }

// TableError lists every problem found while building a table.
type TableError struct {
	Problems []string
}

func (e *TableError) Error() string {
	return "invalid table: " + strings.Join(e.Problems, "; ")
}

// Is reports whether target is ErrInvalidTable.
func (e *TableError) Is(target error) bool { return target == ErrInvalidTable }
