package gen

import (
	"context"
	"fmt"
	"go/constant"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. The package is
// type-checked from source so unexported constants are visible.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// locateMode is enough to find a package's directory without compiling it.
const locateMode = packages.NeedName | packages.NeedFiles

// Load loads the single package matched by pattern, resolved relative to
// dir, and collects the named types listed in typeNames.
//
// output, when not empty, is the base name of the file about to be
// generated. Its current contents are replaced by a bare package clause
// while loading, so a stale generated file never blocks regeneration.
func Load(ctx context.Context, dir, pattern string, typeNames []string, output string) (*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    locateMode,
		Dir:     dir,
	}

	pkg, err := loadOne(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if output != "" {
		path := filepath.Join(filepath.Dir(pkg.GoFiles[0]), output)
		cfg.Overlay = map[string][]byte{path: []byte("package " + pkg.Name + "\n")}
	}

	cfg.Mode = LoadMode
	pkg, err = loadOne(cfg, pattern)
	if err != nil {
		return nil, err
	}

	out := &Package{
		Name:  pkg.Name,
		Path:  pkg.PkgPath,
		Dir:   filepath.Dir(pkg.GoFiles[0]),
		Names: pkg.Types.Scope().Names(),
	}
	for _, name := range typeNames {
		enum, err := enumOf(pkg.Types, name)
		if err != nil {
			return nil, err
		}
		out.Enums = append(out.Enums, enum)
	}
	return out, nil
}

func loadOne(cfg *packages.Config, pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]
	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("package %s has no Go files", pkg.PkgPath)
	}
	return pkg, nil
}

// enumOf finds the type called name in pkg and every package-level
// constant of exactly that type, exported or not.
func enumOf(pkg *types.Package, name string) (Enum, error) {
	scope := pkg.Scope()

	typeName, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return Enum{}, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrTypeNotFound)
	}
	basic, ok := typeName.Type().Underlying().(*types.Basic)
	if !ok || basic.Kind() != types.String {
		return Enum{}, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrNotStringType)
	}

	var consts []*types.Const
	for _, n := range scope.Names() {
		c, ok := scope.Lookup(n).(*types.Const)
		if !ok || !types.Identical(c.Type(), typeName.Type()) {
			continue
		}
		consts = append(consts, c)
	}
	// scope.Names is sorted by name; declaration order reads better.
	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	enum := Enum{Type: name}
	for _, c := range consts {
		enum.Constants = append(enum.Constants, Constant{
			Name:  c.Name(),
			Value: constant.StringVal(c.Val()),
		})
	}
	if err := enum.validate(); err != nil {
		return Enum{}, err
	}
	return enum, nil
}
