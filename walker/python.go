package walker

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pythonScanner extracts declarations from Python source files using the
// tree-sitter Python grammar.
type pythonScanner struct {
	parser *sitter.Parser
}

func newPythonScanner() *pythonScanner {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &pythonScanner{parser: p}
}

// Language implements Scanner.
func (s *pythonScanner) Language() string { return "python" }

// Scan implements Scanner. Top-level functions, classes, and class
// methods are extracted; decorated definitions are unwrapped first.
func (s *pythonScanner) Scan(ctx context.Context, path string) ([]Decl, error) {
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

func (s *pythonScanner) extract(node *sitter.Node, content []byte, decls []Decl) []Decl {
	switch node.Type() {
	case "function_definition":
		decls = appendNamed(decls, node, content, "function")
	case "class_definition":
		decls = appendNamed(decls, node, content, "class")
		// Methods live in the class body and check as functions.
		if body := node.ChildByFieldName("body"); body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				child := body.NamedChild(i)
				if t := child.Type(); t == "function_definition" || t == "decorated_definition" {
					decls = s.extract(child, content, decls)
				}
			}
		}
	case "decorated_definition":
		if def := node.ChildByFieldName("definition"); def != nil {
			decls = s.extract(def, content, decls)
		}
	}
	return decls
}

// appendNamed appends a declaration for the node's name field, if present.
func appendNamed(decls []Decl, node *sitter.Node, content []byte, element string) []Decl {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return decls
	}
	return append(decls, Decl{
		Name:    nameNode.Content(content),
		Element: element,
		Line:    int(nameNode.StartPoint().Row) + 1,
	})
}
