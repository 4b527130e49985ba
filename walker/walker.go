package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/OpenAEC-Foundation/convtools/checker"
	"github.com/OpenAEC-Foundation/convtools/converrors"
	"github.com/OpenAEC-Foundation/convtools/internal/issues"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// Finding is one name that failed its convention check.
type Finding struct {
	// Path is the file or directory path relative to the walk root
	Path string `json:"path" yaml:"path"`
	// Line is the declaration's line number, 0 for path-level findings
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Language is the language the name was resolved through, when any
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	// Element is what kind of name this is: directory, file, function,
	// class, constant, or variable
	Element string `json:"element" yaml:"element"`
	// Name is the checked identifier
	Name string `json:"name" yaml:"name"`
	// Issues lists what the checker found
	Issues []issues.Issue `json:"issues" yaml:"issues"`
}

// Report is the outcome of one walk.
type Report struct {
	// ID uniquely identifies this scan run
	ID string `json:"id" yaml:"id"`
	// Root is the walked root directory
	Root string `json:"root" yaml:"root"`
	// Findings lists every non-conformant name, in walk order
	Findings []Finding `json:"findings" yaml:"findings"`
	// Checked counts names that were checked against a convention
	Checked int `json:"checked" yaml:"checked"`
	// Skipped counts names with no applicable convention or that could
	// not be tokenized
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Walker scans a working tree against the conventions policy.
type Walker struct {
	// Checker validates the names found during the walk
	Checker *checker.Checker

	// IgnoreGlobs are doublestar patterns matched against paths relative
	// to the walk root; matches are skipped entirely
	IgnoreGlobs []string

	// Languages enables parsing source files and checking their named
	// declarations
	Languages bool

	// Logger receives structured logs. Defaults to NopLogger.
	Logger policy.Logger
}

// DefaultIgnoreGlobs returns the ignore patterns applied by New:
// VCS metadata, dependency trees, virtualenvs, and build output.
func DefaultIgnoreGlobs() []string {
	return []string{
		"**/.git/**", ".git",
		"**/vendor/**", "vendor",
		"**/node_modules/**", "node_modules",
		"**/__pycache__/**", "__pycache__",
		"**/.venv/**", ".venv",
		"**/dist/**", "dist",
		"**/build/**", "build",
	}
}

// New creates a Walker with the default ignore globs.
func New(c *checker.Checker) *Walker {
	return &Walker{
		Checker:     c,
		IgnoreGlobs: DefaultIgnoreGlobs(),
		Logger:      policy.NopLogger{},
	}
}

// Walk scans the tree rooted at root and reports every name that fails
// its convention. Names with no applicable convention and names that
// cannot be tokenized count as skipped, not as findings.
func (w *Walker) Walk(ctx context.Context, root string) (*Report, error) {
	report := &Report{
		ID:   uuid.NewString(),
		Root: root,
	}

	var scanners map[string]Scanner
	if w.Languages {
		scanners = newScanners()
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if w.ignored(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			w.checkName(report, rel, 0, "", "directory", d.Name(), func(name string) (*checker.Result, error) {
				style, err := w.Checker.CategoryStyle("directory")
				if err != nil {
					return nil, err
				}
				return w.Checker.Check(name, style)
			})
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		lang, known := languageByExt(ext)
		if !known {
			return nil
		}

		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		w.checkName(report, rel, 0, lang, "file", stem, func(name string) (*checker.Result, error) {
			style, err := w.Checker.ElementStyle(lang, "file")
			if err != nil {
				return nil, err
			}
			return w.Checker.Check(name, style)
		})

		if scanner, ok := scanners[ext]; ok {
			if scanErr := w.scanSource(ctx, report, scanner, root, rel, path); scanErr != nil {
				w.logger().Warn("scanning source file failed", "path", rel, "error", scanErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: walking %s: %w", root, err)
	}

	w.logger().Info("walk complete", "root", root, "id", report.ID,
		"checked", report.Checked, "findings", len(report.Findings), "skipped", report.Skipped)
	return report, nil
}

// scanSource extracts a source file's declarations and checks each one.
func (w *Walker) scanSource(ctx context.Context, report *Report, scanner Scanner, root, rel, path string) error {
	decls, err := scanner.Scan(ctx, path)
	if err != nil {
		return err
	}
	for _, decl := range decls {
		decl := decl
		w.checkName(report, rel, decl.Line, scanner.Language(), decl.Element, decl.Name,
			func(name string) (*checker.Result, error) {
				style, err := w.Checker.ElementStyle(scanner.Language(), decl.Element)
				if err != nil {
					return nil, err
				}
				return w.Checker.Check(name, style)
			})
	}
	return nil
}

// checkName runs one check and folds the outcome into the report.
func (w *Walker) checkName(report *Report, rel string, line int, lang, element, name string,
	check func(string) (*checker.Result, error)) {

	result, err := check(name)
	switch {
	case errors.Is(err, converrors.ErrNoConvention):
		// No convention covers this name; count it skipped so reports
		// stay actionable.
		report.Skipped++
		return
	case err != nil:
		// Names with no letters cannot be tokenized; record and move on.
		w.logger().Debug("name skipped", "path", rel, "name", name, "error", err)
		report.Skipped++
		return
	}

	if result.Valid {
		report.Checked++
		return
	}

	report.Checked++
	report.Findings = append(report.Findings, Finding{
		Path:     rel,
		Line:     line,
		Language: lang,
		Element:  element,
		Name:     name,
		Issues:   result.Issues,
	})
}

func (w *Walker) ignored(rel string) bool {
	relSlash := filepath.ToSlash(rel)
	for _, pattern := range w.IgnoreGlobs {
		if ok, err := doublestar.Match(pattern, relSlash); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Walker) logger() policy.Logger {
	if w.Logger == nil {
		return policy.NopLogger{}
	}
	return w.Logger
}
