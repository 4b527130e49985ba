package walker

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// goScanner extracts declarations from Go source files with the standard
// library parser.
type goScanner struct{}

func newGoScanner() *goScanner {
	return &goScanner{}
}

// Language implements Scanner.
func (s *goScanner) Language() string { return "go" }

// Scan implements Scanner. Functions and methods report as "function",
// type declarations as "class", and const/var declarations as "constant"
// and "variable". The blank identifier is skipped.
func (s *goScanner) Scan(_ context.Context, path string) ([]Decl, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var decls []Decl
	add := func(ident *ast.Ident, element string) {
		if ident == nil || ident.Name == "_" {
			return
		}
		decls = append(decls, Decl{
			Name:    ident.Name,
			Element: element,
			Line:    fset.Position(ident.Pos()).Line,
		})
	}

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.FuncDecl:
			add(decl.Name, "function")
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					add(sp.Name, "class")
				case *ast.ValueSpec:
					element := "variable"
					if decl.Tok == token.CONST {
						element = "constant"
					}
					for _, name := range sp.Names {
						add(name, element)
					}
				}
			}
		}
	}
	return decls, nil
}
