package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const (
	colorsDir  = "testdata/colors"
	lettersDir = "testdata/letters"
	staleDir   = "testdata/stale"
)

// typeCheck compiles the package holding f with f's content in place of
// whatever is on disk.
func typeCheck(t *testing.T, f *File) {
	t.Helper()

	cfg := &packages.Config{
		Context: context.Background(),
		Mode:    LoadMode,
		Dir:     filepath.Dir(f.Path),
		Overlay: map[string][]byte{f.Path: f.Content},
	}
	pkgs, err := packages.Load(cfg, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	for _, e := range pkgs[0].Errors {
		t.Errorf("generated code does not compile: %v\n%s", e, f.Content)
	}
}

func TestLoad(t *testing.T) {
	pkg, err := Load(context.Background(), colorsDir, ".", []string{"Color", "Shade"}, "")
	require.NoError(t, err)

	assert.Equal(t, "colors", pkg.Name)
	assert.True(t, strings.HasSuffix(pkg.Path, "internal/gen/testdata/colors"), pkg.Path)
	assert.Equal(t, "colors", filepath.Base(pkg.Dir))
	assert.Contains(t, pkg.Names, "Level")
	assert.Equal(t, []Enum{
		{Type: "Color", Constants: []Constant{
			{Name: "Red", Value: "red"},
			{Name: "Green", Value: "green"},
			{Name: "Blue", Value: "blue"},
		}},
		{Type: "Shade", Constants: []Constant{
			{Name: "Light", Value: "light"},
			{Name: "Dark", Value: "dark"},
		}},
	}, pkg.Enums)
}

func TestLoadUnexported(t *testing.T) {
	pkg, err := Load(context.Background(), lettersDir, ".", []string{"Letter", "letter"}, "")
	require.NoError(t, err)

	assert.Equal(t, []Enum{
		{Type: "Letter", Constants: []Constant{
			{Name: "A", Value: "a"},
			{Name: "b", Value: "b"},
			{Name: "h", Value: "h"},
			{Name: "opts", Value: "opts"},
			{Name: "R", Value: "r"},
			{Name: "exhaust", Value: "e"},
		}},
		{Type: "letter", Constants: []Constant{
			{Name: "x", Value: "x"},
			{Name: "y", Value: "y"},
		}},
	}, pkg.Enums)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want error
	}{
		{name: "missing type", typ: "Missing", want: ErrTypeNotFound},
		{name: "constant not type", typ: "Red", want: ErrTypeNotFound},
		{name: "int type", typ: "Level", want: ErrNotStringType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), colorsDir, ".", []string{tt.typ}, "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadBadPattern(t *testing.T) {
	_, err := Load(context.Background(), colorsDir, "./does-not-exist", []string{"Color"}, "")
	assert.Error(t, err)
}

func TestLoadStaleOutputFails(t *testing.T) {
	// Without naming the output file the stale generated code is compiled.
	_, err := Load(context.Background(), staleDir, ".", []string{"Color"}, "")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	f, err := Generate(context.Background(), Request{
		Dir:     colorsDir,
		Pattern: ".",
		Types:   []string{"Color"},
		Args:    []string{"generate"},
	})
	require.NoError(t, err)

	assert.Equal(t, "color_exhaust.go", filepath.Base(f.Path))
	assert.Contains(t, string(f.Content), "package colors")
	assert.Contains(t, string(f.Content), "func NewColorMapper[R any](red, green, blue R,")
	typeCheck(t, f)

	f.Path = filepath.Join(t.TempDir(), filepath.Base(f.Path))
	require.NoError(t, f.Write())
	got, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, f.Content, got)
}

func TestGenerateCompilesWithShadowingNames(t *testing.T) {
	f, err := Generate(context.Background(), Request{
		Dir:     lettersDir,
		Pattern: ".",
		Types:   []string{"Letter", "letter"},
	})
	require.NoError(t, err)

	out := string(f.Content)
	assert.Contains(t, out, `import exhaustValue "github.com/bjaus/exhaust"`)
	assert.Contains(t, out, "var LetterSet = exhaustValue.Must(exhaustValue.NewSet(A, b, h, opts, R, exhaust))")
	assert.Contains(t, out, "bValue.Case(b, hValue.b)")
	assert.Contains(t, out, "var letterSet = exhaustValue.Must(exhaustValue.NewSet(x, y))")
	typeCheck(t, f)
}

func TestGenerateReplacesStaleOutput(t *testing.T) {
	f, err := Generate(context.Background(), Request{
		Dir:     staleDir,
		Pattern: ".",
		Types:   []string{"Color"},
	})
	require.NoError(t, err)

	assert.Equal(t, "color_exhaust.go", filepath.Base(f.Path))
	assert.Contains(t, string(f.Content), "var ColorSet = exhaust.Must(exhaust.NewSet(Red))")
	assert.NotContains(t, string(f.Content), "Blue")
	typeCheck(t, f)
}

func TestGenerateOutputName(t *testing.T) {
	f, err := Generate(context.Background(), Request{
		Dir:     colorsDir,
		Pattern: ".",
		Types:   []string{"Shade", "Color"},
		Output:  "palette_exhaust.go",
	})
	require.NoError(t, err)
	assert.Equal(t, "palette_exhaust.go", filepath.Base(f.Path))
	assert.Equal(t, "shade_exhaust.go", OutputName("Shade"))
	typeCheck(t, f)
}

func TestGenerateNoTypes(t *testing.T) {
	_, err := Generate(context.Background(), Request{Dir: colorsDir, Pattern: "."})
	assert.Error(t, err)
}
