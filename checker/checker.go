package checker

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/OpenAEC-Foundation/convtools/casing"
	"github.com/OpenAEC-Foundation/convtools/converrors"
	"github.com/OpenAEC-Foundation/convtools/internal/issues"
	"github.com/OpenAEC-Foundation/convtools/internal/severity"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// Severity indicates the severity level of a naming issue
type Severity = severity.Severity

const (
	// SeverityError indicates a name that violates its convention
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a name that needs manual review
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates suggestions and missing conventions
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates checks that could not be completed
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single naming issue
type Issue = issues.Issue

// maxSegments is the longest word sequence eligible for an automatic
// rename suggestion; longer names are flagged for manual review instead.
const maxSegments = 3

// Built-in validation patterns, used whenever the policy document does
// not override a style.
var builtinPatterns = map[string]*regexp.Regexp{
	string(casing.StyleKebab):  regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`),
	string(casing.StyleSnake):  regexp.MustCompile(`^[a-z][a-z0-9_]*$`),
	string(casing.StyleCamel):  regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
	string(casing.StylePascal): regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
}

// Result contains the outcome of checking one name.
type Result struct {
	// Name is the checked identifier
	Name string
	// Style is the case style the name was resolved to, when known
	Style string
	// Valid is true when no issues were found
	Valid bool
	// Issues lists everything found, in the order it was found
	Issues []Issue
}

// Messages flattens the issues to their message strings, preserving
// order. Empty for a conformant name.
func (r *Result) Messages() []string {
	return issues.Messages(r.Issues)
}

// Suggestion returns the suggested replacement name, or "" when the
// result does not carry one.
func (r *Result) Suggestion() string {
	for _, iss := range r.Issues {
		if s := iss.Suggestion(); s != "" {
			return s
		}
	}
	return ""
}

// NeedsManualReview reports whether the name was flagged as having too
// many segments for an automatic suggestion.
func (r *Result) NeedsManualReview() bool {
	for _, iss := range r.Issues {
		if iss.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (r *Result) addIssue(message string, sev Severity, value any) {
	r.Issues = append(r.Issues, Issue{
		Name:     r.Name,
		Message:  message,
		Severity: sev,
		Style:    r.Style,
		Value:    value,
	})
}

// Checker validates names against the conventions policy.
type Checker struct {
	policy    *policy.Document
	logger    policy.Logger
	overrides map[string]*regexp.Regexp
}

// New creates a Checker. Override patterns from the policy document are
// compiled here, so an invalid override surfaces as a ConfigError at
// construction instead of on first use.
func New(opts ...Option) (*Checker, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		policy: cfg.policy,
		logger: cfg.logger,
	}

	if cfg.policy != nil {
		styles := cfg.policy.Styles()
		c.overrides = make(map[string]*regexp.Regexp, len(styles))
		for _, style := range styles {
			pattern, ok := cfg.policy.CasePattern(style)
			if !ok {
				continue
			}
			compiled, err := compileAnchored(pattern)
			if err != nil {
				return nil, &converrors.ConfigError{
					Option:  "naming.case." + style + ".pattern",
					Value:   pattern,
					Message: "invalid override pattern",
					Cause:   err,
				}
			}
			c.overrides[style] = compiled
		}
	}

	return c, nil
}

// compileAnchored compiles a pattern so it must match the whole name.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pattern + ")$")
}

// PatternFor returns the validation pattern that applies to a style: the
// policy document's override if present, else the built-in default.
func (c *Checker) PatternFor(style string) (string, bool) {
	if pattern, ok := c.policy.CasePattern(style); ok {
		return pattern, true
	}
	if compiled, ok := builtinPatterns[style]; ok {
		return compiled.String(), true
	}
	return "", false
}

// patternRegexp returns the compiled pattern for a style.
func (c *Checker) patternRegexp(style string) (*regexp.Regexp, bool) {
	if compiled, ok := c.overrides[style]; ok {
		return compiled, true
	}
	compiled, ok := builtinPatterns[style]
	return compiled, ok
}

// Check validates name against a case style.
//
// An unknown style degrades to a single reported issue. A mismatching
// name always gets a "Does not match" issue; names of more than three
// segments additionally get a manual-review issue and no suggestion,
// while shorter names get a rename suggestion when one exists.
//
// The only error condition is a name that cannot be tokenized at all.
func (c *Checker) Check(name, style string) (*Result, error) {
	result := &Result{Name: name, Style: style}

	pattern, ok := c.patternRegexp(style)
	if !ok {
		result.addIssue(fmt.Sprintf("Unknown case style: %s", style), SeverityInfo, nil)
		return result, nil
	}

	if pattern.MatchString(name) {
		result.Valid = true
		return result, nil
	}

	result.addIssue(fmt.Sprintf("Does not match %s", style), SeverityError, nil)

	words, err := casing.Tokenize(name)
	if err != nil {
		return nil, err
	}

	if len(words) > maxSegments {
		// Long names are never auto-rename candidates; they need a
		// human decision, not an initialism.
		result.addIssue("Too many segments (>3) - needs manual review", SeverityWarning, nil)
		return result, nil
	}

	suggested, err := casing.Render(words, casing.Style(style))
	if err != nil {
		// The style has a policy-defined pattern but no rendering
		// rule, so no suggestion can be computed.
		c.logger.Debug("style is not renderable, skipping suggestion",
			"style", style, "name", name)
		return result, nil
	}
	if suggested != name {
		result.addIssue(fmt.Sprintf("Suggested: '%s'", suggested), SeverityInfo, suggested)
	}

	return result, nil
}

// CategoryStyle returns the style the policy configures for a path
// category: "repository" or "directory". A missing convention returns a
// ConventionError matching converrors.ErrNoConvention.
func (c *Checker) CategoryStyle(category string) (string, error) {
	var (
		style string
		ok    bool
	)
	switch category {
	case "repository":
		style, ok = c.policy.RepositoryStyle()
	case "directory":
		style, ok = c.policy.DirectoryStyle()
	}
	if !ok {
		return "", &converrors.ConventionError{Category: category}
	}
	return style, nil
}

// ElementStyle returns the style the policy configures for one element
// kind of one language. A missing language or element kind returns a
// ConventionError matching converrors.ErrNoConvention.
func (c *Checker) ElementStyle(language, element string) (string, error) {
	styles, ok := c.policy.Language(language)
	if !ok {
		return "", &converrors.ConventionError{Language: language}
	}
	style, ok := styles.Style(element)
	if !ok {
		return "", &converrors.ConventionError{Language: language, Element: element}
	}
	return style, nil
}

// CheckRepository validates a repository name against the style the
// policy configures for repositories.
func (c *Checker) CheckRepository(name string) (*Result, error) {
	style, err := c.CategoryStyle("repository")
	if errors.Is(err, converrors.ErrNoConvention) {
		result := &Result{Name: name}
		result.addIssue("No repository convention defined", SeverityInfo, nil)
		return result, nil
	}
	return c.Check(name, style)
}

// CheckDirectory validates a directory name against the style the policy
// configures for directories.
func (c *Checker) CheckDirectory(name string) (*Result, error) {
	style, err := c.CategoryStyle("directory")
	if errors.Is(err, converrors.ErrNoConvention) {
		result := &Result{Name: name}
		result.addIssue("No directory convention defined", SeverityInfo, nil)
		return result, nil
	}
	return c.Check(name, style)
}

// CheckLanguageElement validates a name against the style the policy
// configures for one element kind of one language. A missing language
// and a missing element kind each produce a distinct informational issue.
func (c *Checker) CheckLanguageElement(name, language, element string) (*Result, error) {
	style, err := c.ElementStyle(language, element)
	var convErr *converrors.ConventionError
	if errors.As(err, &convErr) {
		result := &Result{Name: name}
		if convErr.Element == "" {
			result.addIssue(fmt.Sprintf("No conventions for language: %s", language), SeverityInfo, nil)
		} else {
			result.addIssue(fmt.Sprintf("No convention for %s %s", language, element), SeverityInfo, nil)
		}
		return result, nil
	}

	return c.Check(name, style)
}

// Suggest tokenizes name and renders it in the target style, bypassing
// validation. Unlike Check, an unknown style here is a hard error.
func (c *Checker) Suggest(name, style string) (string, error) {
	parsed, err := casing.ParseStyle(style)
	if err != nil {
		return "", err
	}
	return casing.Convert(name, parsed)
}

// Policy returns the conventions document the Checker was built with,
// which may be nil.
func (c *Checker) Policy() *policy.Document {
	return c.policy
}
