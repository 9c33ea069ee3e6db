// Package gen generates compile-time exhaustive visitor and mapper
// constructors for named string types.
package gen

import (
	"errors"
	"fmt"

	"github.com/bjaus/exhaust"
)

var (
	// ErrTypeNotFound is returned when a requested type is not declared in
	// the loaded package.
	ErrTypeNotFound = errors.New("type not found")

	// ErrNotStringType is returned when a requested type's underlying type
	// is not string.
	ErrNotStringType = errors.New("underlying type is not string")

	// ErrNoConstants is returned when a type has no package-level constants.
	ErrNoConstants = errors.New("no constants")

	// ErrNameConflict is returned when a generated declaration would reuse a
	// name the package already declares.
	ErrNameConflict = errors.New("name conflict")
)

// Package is a loaded Go package and the enums found in it.
type Package struct {
	Name string
	Path string
	Dir  string
	// Names lists every package-level identifier, excluding the file being
	// regenerated.
	Names []string
	Enums []Enum
}

// Enum is a named string type and its constants in declaration order.
type Enum struct {
	Type      string
	Constants []Constant
}

// Constant is one value of an Enum.
type Constant struct {
	Name  string
	Value string
}

// validate applies the same rules as exhaust.NewSet so that generated code
// never panics at init.
func (e Enum) validate() error {
	if len(e.Constants) == 0 {
		return fmt.Errorf("%s: %w", e.Type, ErrNoConstants)
	}
	seen := make(map[string]string, len(e.Constants))
	for _, c := range e.Constants {
		switch c.Value {
		case exhaust.ReservedNull, exhaust.ReservedUndefined, exhaust.ReservedUnexpected:
			return fmt.Errorf("%s.%s: %w: %q", e.Type, c.Name, exhaust.ErrReservedValue, c.Value)
		}
		if prev, ok := seen[c.Value]; ok {
			return fmt.Errorf("%s.%s: %w: %q already used by %s", e.Type, c.Name, exhaust.ErrDuplicateValue, c.Value, prev)
		}
		seen[c.Value] = c.Name
	}
	return nil
}
