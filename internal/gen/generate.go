package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Request describes one generation run.
type Request struct {
	// Dir is the working directory for resolving Pattern.
	Dir string
	// Pattern is a go/packages pattern matching exactly one package.
	Pattern string
	// Types names the string types to generate for.
	Types []string
	// Output is the file name written into the package directory. Empty
	// means "<first type>_exhaust.go" in lower case.
	Output string
	// Args is recorded in the generated header.
	Args []string
}

// File is a rendered source file and where it belongs.
type File struct {
	Path    string
	Content []byte
}

// Generate loads the requested package and renders its exhaustive
// constructors. Nothing is written to disk.
func Generate(ctx context.Context, req Request) (*File, error) {
	if len(req.Types) == 0 {
		return nil, fmt.Errorf("%s: no types requested", req.Pattern)
	}
	name := req.Output
	if name == "" {
		name = OutputName(req.Types[0])
	}

	pkg, err := Load(ctx, req.Dir, req.Pattern, req.Types, name)
	if err != nil {
		return nil, err
	}
	src, err := Render(pkg, req.Args)
	if err != nil {
		return nil, err
	}
	return &File{Path: filepath.Join(pkg.Dir, name), Content: src}, nil
}

// OutputName returns the default file name for a type.
func OutputName(typeName string) string {
	return strings.ToLower(typeName) + "_exhaust.go"
}

// Write writes the file, replacing any previous version.
func (f *File) Write() error {
	if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
