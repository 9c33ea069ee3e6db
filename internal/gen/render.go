package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"maps"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by "exhaustgen{{.Args}}"; DO NOT EDIT.

package {{.Package}}

import {{if ne .Exhaust "exhaust"}}{{.Exhaust}} {{end}}"github.com/bjaus/exhaust"
{{range .Enums}}{{$t := .Type}}{{$x := $.Exhaust}}{{$r := .TypeParam}}{{$b := .Builder}}{{$params := .Params}}
// {{.Set}} is the closed set of {{$t}} values.
var {{.Set}} = {{$x}}.Must({{$x}}.NewSet({{range $i, $c := .Constants}}{{if $i}}, {{end}}{{$c.Name}}{{end}}))

// {{.Cases}} has one method per {{$t}} value. Implementing it
// handles every case; adding a {{$t}} constant breaks the build until the
// new method exists.
type {{.Cases}}[{{$r}} any] interface {
{{- range .Constants}}
	{{.Name}}({{$t}}) {{$r}}
{{- end}}
}

// {{.Visitor}} returns a visitor builder with every {{$t}} case bound
// to {{.Handler}}. Add null, undefined, or unexpected handlers before building.
func {{.Visitor}}[{{$r}} any]({{.Handler}} {{.Cases}}[{{$r}}], {{.Opts}} ...{{$x}}.Option) *{{$x}}.VisitorBuilder[{{$t}}, {{$r}}] {
	{{$b}} := {{$x}}.NewVisitor[{{$r}}]({{.Set}}, {{.Opts}}...)
{{- $h := .Handler}}
{{- range .Constants}}
	{{$b}}.Case({{.Name}}, {{$h}}.{{.Name}})
{{- end}}
	return {{$b}}
}

// {{.Mapper}} returns a mapper builder with one value per {{$t}} case,
// in declaration order.
func {{.Mapper}}[{{$r}} any]({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p}}{{end}} {{$r}}, {{.Opts}} ...{{$x}}.Option) *{{$x}}.MapperBuilder[{{$t}}, {{$r}}] {
	{{$b}} := {{$x}}.NewMapper[{{$r}}]({{.Set}}, {{.Opts}}...)
{{- range $i, $c := .Constants}}
	{{$b}}.Case({{$c.Name}}, {{index $params $i}})
{{- end}}
	return {{$b}}
}
{{end}}`))

type fileData struct {
	Args    string
	Package string
	// Exhaust is the import name of the exhaust package.
	Exhaust string
	Enums   []enumData
}

type enumData struct {
	Enum

	// Package-level declarations.
	Set     string
	Cases   string
	Visitor string
	Mapper  string

	// Identifiers local to the generated functions.
	TypeParam string
	Builder   string
	Handler   string
	Opts      string
	Params    []string
}

// Render produces the formatted Go source for pkg. args is echoed into the
// generated header so the file records how it was made.
func Render(pkg *Package, args []string) ([]byte, error) {
	declared := make(map[string]bool, len(pkg.Names))
	for _, n := range pkg.Names {
		declared[n] = true
	}
	for _, e := range pkg.Enums {
		if err := e.validate(); err != nil {
			return nil, err
		}
		declared[e.Type] = true
		for _, c := range e.Constants {
			declared[c.Name] = true
		}
	}

	data := fileData{Package: pkg.Name}
	if len(args) > 0 {
		data.Args = " " + strings.Join(args, " ")
	}

	// File scope: package names, our declarations, and the import name.
	taken := namer(maps.Clone(declared))
	generated := make(map[string]string)
	for _, e := range pkg.Enums {
		d := enumData{
			Enum:    e,
			Set:     e.Type + "Set",
			Cases:   e.Type + "VisitorCases",
			Visitor: "New" + e.Type + "Visitor",
			Mapper:  "New" + e.Type + "Mapper",
		}
		for _, name := range []string{d.Set, d.Cases, d.Visitor, d.Mapper} {
			if declared[name] {
				return nil, fmt.Errorf("%s: %w: %s is already declared in package %s", e.Type, ErrNameConflict, name, pkg.Name)
			}
			if prev, ok := generated[name]; ok {
				return nil, fmt.Errorf("%s: %w: %s is also generated for %s", e.Type, ErrNameConflict, name, prev)
			}
			generated[name] = e.Type
			taken[name] = true
		}
		data.Enums = append(data.Enums, d)
	}
	data.Exhaust = taken.claim("exhaust")

	for i := range data.Enums {
		data.Enums[i].bindLocals(maps.Clone(taken))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// bindLocals picks the function-local identifiers so none shadows a name
// the generated bodies refer to.
func (d *enumData) bindLocals(taken namer) {
	d.TypeParam = taken.claim("R")
	d.Builder = taken.claim("b")
	d.Handler = taken.claim("h")
	d.Opts = taken.claim("opts")

	d.Params = make([]string, 0, len(d.Constants))
	for _, c := range d.Constants {
		d.Params = append(d.Params, taken.claim(lowerFirst(c.Name)))
	}
}

// namer is a set of identifiers already in use.
type namer map[string]bool

// claim returns base, suffixed until it is free, and marks it used.
func (n namer) claim(base string) string {
	name := base
	for n[name] || token.IsKeyword(name) || isPredeclared(name) {
		name += "Value"
	}
	n[name] = true
	return name
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func isPredeclared(name string) bool {
	switch name {
	case "any", "bool", "byte", "comparable", "error", "false", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "iota", "nil", "rune", "string",
		"true", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
		return true
	}
	return false
}
