package walker

import "context"

// Decl is one named declaration extracted from a source file.
type Decl struct {
	// Name is the declared identifier
	Name string
	// Element is the declaration kind: function, class, constant, variable
	Element string
	// Line is the 1-based line of the declaration
	Line int
}

// Scanner extracts named declarations from source files of one language.
type Scanner interface {
	// Language is the policy language name the scanner's declarations
	// are checked against
	Language() string

	// Scan parses the file at path and returns its declarations
	Scan(ctx context.Context, path string) ([]Decl, error)
}

// extLanguages maps file extensions to policy language names. File-name
// checks use this even when declaration scanning is off.
var extLanguages = map[string]string{
	".go":  "go",
	".py":  "python",
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".ts":  "typescript",
	".tsx": "typescript",
	".mts": "typescript",
	".cts": "typescript",
}

// languageByExt resolves a file extension to its policy language name.
func languageByExt(ext string) (string, bool) {
	lang, ok := extLanguages[ext]
	return lang, ok
}

// newScanners builds one Scanner per supported extension.
func newScanners() map[string]Scanner {
	scanners := map[string]Scanner{
		".go": newGoScanner(),
		".py": newPythonScanner(),
	}
	js := newTSScanner("javascript")
	for _, ext := range []string{".js", ".jsx", ".mjs", ".cjs"} {
		scanners[ext] = js
	}
	ts := newTSScanner("typescript")
	for _, ext := range []string{".ts", ".mts", ".cts"} {
		scanners[ext] = ts
	}
	scanners[".tsx"] = newTSXScanner()
	return scanners
}
