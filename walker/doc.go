// Package walker scans a working tree for names that violate the
// conventions policy.
//
// Import path: github.com/OpenAEC-Foundation/convtools/walker
//
// A Walker visits every directory and file under a root, checking
// directory names against the directory convention and file names
// against the per-language "file" convention. With Languages enabled it
// additionally parses source files and checks every named declaration
// (functions, classes, constants, variables) against the per-language
// conventions:
//
//	w := walker.New(c)
//	w.Languages = true
//	report, err := w.Walk(ctx, ".")
//	for _, f := range report.Findings {
//	    fmt.Printf("%s:%d %s\n", f.Path, f.Line, f.Name)
//	}
//
// Go sources are parsed with go/parser; Python, JavaScript, and
// TypeScript sources are parsed with tree-sitter grammars. Paths
// matching an ignore glob (doublestar patterns, .git and friends by
// default) are skipped entirely.
//
// Watch re-scans the tree whenever files change and emits a fresh report
// per change batch.
package walker
