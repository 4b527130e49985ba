// Package main generates DeepCopy methods for policy package types.
//
// The generator uses go/packages to introspect the policy package and
// emits type-aware deep copy methods for every exported struct and map
// type it finds: struct fields copy by value, map fields allocate a new
// map, and elements that themselves carry a DeepCopy method are copied
// through it.
//
// Usage:
//
//	go run ./internal/codegen/deepcopy
//	go run ./internal/codegen/deepcopy -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/deepcopy
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

const policyPkgPath = "github.com/OpenAEC-Foundation/convtools/policy"

// structTarget holds metadata for one struct type that will get generated
// DeepCopy and DeepCopyInto methods.
type structTarget struct {
	Name   string
	Fields []fieldInfo
}

// fieldInfo describes one struct field needing more than the value copy
// performed by *out = *in.
type fieldInfo struct {
	Name     string // Go field name
	Type     string // Go type expression, e.g. "map[string]CaseDef"
	Strategy string // "struct", "map", or "mapDeepCopy"
}

// mapTarget holds metadata for one exported named map type that will get
// a generated DeepCopy method.
type mapTarget struct {
	Name     string
	ElemCopy bool // elements carry their own DeepCopy method
}

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	// The generator can be invoked from the project root (go run
	// ./internal/codegen/deepcopy) or from the policy directory via go
	// generate.
	outputPath := filepath.Join("policy", "zz_generated_deepcopy.go")
	if _, err := os.Stat("policy"); os.IsNotExist(err) {
		outputPath = "zz_generated_deepcopy.go"
	}

	structs, maps, err := discover()
	if err != nil {
		fatalf("discovering policy types: %v", err)
	}

	generated, err := render(structs, maps)
	if err != nil {
		fatalf("rendering: %v", err)
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatalf("reading %s: %v", outputPath, err)
		}
		if !bytes.Equal(existing, generated) {
			fatalf("%s is stale; re-run go generate ./policy", outputPath)
		}
		return
	}

	if err := os.WriteFile(outputPath, generated, 0o644); err != nil {
		fatalf("writing %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s\n", outputPath)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "deepcopy: "+format+"\n", args...)
	os.Exit(1)
}

// discover loads the policy package and collects its exported struct and
// map types.
func discover() ([]structTarget, []mapTarget, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, policyPkgPath)
	if err != nil {
		return nil, nil, err
	}
	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return nil, nil, fmt.Errorf("could not load %s", policyPkgPath)
	}
	scope := pkgs[0].Types.Scope()

	// First pass: names of local types that will own a DeepCopy method.
	hasDeepCopy := map[string]bool{}
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		switch obj.Type().Underlying().(type) {
		case *types.Struct, *types.Map:
			hasDeepCopy[name] = true
		}
	}

	var structs []structTarget
	var mapTypes []mapTarget
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		switch u := obj.Type().Underlying().(type) {
		case *types.Struct:
			structs = append(structs, structTarget{
				Name:   name,
				Fields: structFields(u, pkgs[0].Types, hasDeepCopy),
			})
		case *types.Map:
			mapTypes = append(mapTypes, mapTarget{
				Name:     name,
				ElemCopy: namedWithDeepCopy(u.Elem(), hasDeepCopy),
			})
		}
	}
	sort.Slice(structs, func(i, j int) bool { return structs[i].Name < structs[j].Name })
	sort.Slice(mapTypes, func(i, j int) bool { return mapTypes[i].Name < mapTypes[j].Name })
	return structs, mapTypes, nil
}

// structFields returns the fields of a struct that need handling beyond
// the value copy of *out = *in.
func structFields(s *types.Struct, pkg *types.Package, hasDeepCopy map[string]bool) []fieldInfo {
	var fields []fieldInfo
	qualifier := types.RelativeTo(pkg)
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		typeExpr := types.TypeString(f.Type(), qualifier)
		switch {
		case namedStruct(f.Type(), hasDeepCopy):
			fields = append(fields, fieldInfo{Name: f.Name(), Type: typeExpr, Strategy: "struct"})
		case isMap(f.Type()):
			strategy := "map"
			if namedWithDeepCopy(f.Type().Underlying().(*types.Map).Elem(), hasDeepCopy) {
				strategy = "mapDeepCopy"
			}
			fields = append(fields, fieldInfo{Name: f.Name(), Type: typeExpr, Strategy: strategy})
		}
	}
	return fields
}

func isMap(t types.Type) bool {
	_, ok := t.Underlying().(*types.Map)
	return ok
}

// namedStruct reports whether t is a local named struct type with a
// generated DeepCopy method.
func namedStruct(t types.Type, hasDeepCopy map[string]bool) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return false
	}
	return hasDeepCopy[named.Obj().Name()]
}

// namedWithDeepCopy reports whether t is a local named map type with a
// generated DeepCopy method.
func namedWithDeepCopy(t types.Type, hasDeepCopy map[string]bool) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	if _, ok := named.Underlying().(*types.Map); !ok {
		return false
	}
	return hasDeepCopy[named.Obj().Name()]
}

const deepCopyTemplate = `// Code generated by internal/codegen/deepcopy; DO NOT EDIT.
//
// DeepCopy methods for policy package types. Struct fields copy by value,
// map fields allocate fresh maps, and elements with their own DeepCopy
// method are copied through it.

package policy

{{range .Structs}}
// DeepCopy creates a deep copy of {{.Name}}.
func (in *{{.Name}}) DeepCopy() *{{.Name}} {
	if in == nil {
		return nil
	}
	out := new({{.Name}})
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies {{.Name}} into out.
func (in *{{.Name}}) DeepCopyInto(out *{{.Name}}) {
	*out = *in
{{range .Fields}}{{if eq .Strategy "struct"}}
	in.{{.Name}}.DeepCopyInto(&out.{{.Name}})
{{else if eq .Strategy "mapDeepCopy"}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		for k, v := range in.{{.Name}} {
			out.{{.Name}}[k] = v.DeepCopy()
		}
	}
{{else if eq .Strategy "map"}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		for k, v := range in.{{.Name}} {
			out.{{.Name}}[k] = v
		}
	}
{{end}}{{end}}}

{{end}}{{range .Maps}}
// DeepCopy creates a deep copy of {{.Name}}.
func (in {{.Name}}) DeepCopy() {{.Name}} {
	if in == nil {
		return nil
	}
	out := make({{.Name}}, len(in))
	for k, v := range in {
{{if .ElemCopy}}		out[k] = v.DeepCopy()
{{else}}		out[k] = v
{{end}}	}
	return out
}

{{end}}`

// render executes the template and formats the result with
// imports.Process so the output matches goimports formatting.
func render(structs []structTarget, maps []mapTarget) ([]byte, error) {
	tmpl, err := template.New("deepcopy").Parse(deepCopyTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	data := struct {
		Structs []structTarget
		Maps    []mapTarget
	}{structs, maps}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := imports.Process("zz_generated_deepcopy.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return formatted, nil
}
