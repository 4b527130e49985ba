package walker

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// tsScanner extracts declarations from JavaScript and TypeScript source
// files using tree-sitter grammars.
type tsScanner struct {
	language string
	parser   *sitter.Parser
}

func newTSScanner(language string) *tsScanner {
	p := sitter.NewParser()
	if language == "typescript" {
		p.SetLanguage(typescript.GetLanguage())
	} else {
		p.SetLanguage(javascript.GetLanguage())
	}
	return &tsScanner{language: language, parser: p}
}

// newTSXScanner handles .tsx files, which need the dedicated grammar.
func newTSXScanner() *tsScanner {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())
	return &tsScanner{language: "typescript", parser: p}
}

// Language implements Scanner.
func (s *tsScanner) Language() string { return s.language }

// Scan implements Scanner. Function and class declarations, class
// methods, and the names bound by top-level let/const declarations are
// extracted. Export statements are unwrapped first.
func (s *tsScanner) Scan(ctx context.Context, path string) ([]Decl, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := s.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	var decls []Decl
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		decls = s.extract(root.NamedChild(i), content, decls)
	}
	return decls, nil
}

func (s *tsScanner) extract(node *sitter.Node, content []byte, decls []Decl) []Decl {
	switch node.Type() {
	case "function_declaration", "generator_function_declaration":
		decls = appendNamed(decls, node, content, "function")

	case "class_declaration":
		decls = appendNamed(decls, node, content, "class")
		if body := node.ChildByFieldName("body"); body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				child := body.NamedChild(i)
				if child.Type() == "method_definition" {
					decls = appendNamed(decls, child, content, "function")
				}
			}
		}

	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() != "variable_declarator" {
				continue
			}
			nameNode := child.ChildByFieldName("name")
			if nameNode == nil || nameNode.Type() != "identifier" {
				continue
			}
			decls = append(decls, Decl{
				Name:    nameNode.Content(content),
				Element: "variable",
				Line:    int(nameNode.StartPoint().Row) + 1,
			})
		}

	case "export_statement":
		if inner := node.ChildByFieldName("declaration"); inner != nil {
			decls = s.extract(inner, content, decls)
		}
	}
	return decls
}
