// Package converrors provides structured error types for convtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
package converrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a name that cannot be tokenized.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedStyle indicates a case style the renderer does not support.
	ErrUnsupportedStyle = errors.New("unsupported case style")

	// ErrNoConvention indicates a policy lookup with no convention defined.
	ErrNoConvention = errors.New("no convention defined")

	// ErrPolicy indicates a policy document failure.
	ErrPolicy = errors.New("policy error")

	// ErrCache indicates a corrupted or unreadable policy cache.
	ErrCache = errors.New("policy cache error")

	// ErrFetch indicates the policy document could not be fetched.
	ErrFetch = errors.New("policy fetch error")

	// ErrGH indicates a gh CLI invocation failure.
	ErrGH = errors.New("gh error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InputError represents a name that cannot be tokenized because it contains
// no letters.
type InputError struct {
	// Name is the offending identifier
	Name string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Name != "" {
		msg += fmt.Sprintf(": %q", e.Name)
	}
	return msg
}

// Unwrap returns nil as InputError has no underlying cause.
func (e *InputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StyleError represents a case style the renderer does not support.
type StyleError struct {
	// Style is the requested style name
	Style string
}

// Error returns a human-readable error message.
func (e *StyleError) Error() string {
	msg := "unsupported case style"
	if e.Style != "" {
		msg += fmt.Sprintf(": %q", e.Style)
	}
	return msg
}

// Unwrap returns nil as StyleError has no underlying cause.
func (e *StyleError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *StyleError) Is(target error) bool {
	return target == ErrUnsupportedStyle
}

// ConventionError represents a policy lookup for which no convention is
// defined. Exactly one of Category or Language identifies the missing
// branch; Element is set when a language is known but the element kind
// has no style.
type ConventionError struct {
	// Category is the missing category (repository, directory)
	Category string
	// Language is the language whose conventions were looked up
	Language string
	// Element is the element kind within the language (function, class, file)
	Element string
}

// Error returns a human-readable error message.
func (e *ConventionError) Error() string {
	switch {
	case e.Category != "":
		return fmt.Sprintf("no %s convention defined", e.Category)
	case e.Language != "" && e.Element != "":
		return fmt.Sprintf("no convention for %s %s", e.Language, e.Element)
	case e.Language != "":
		return fmt.Sprintf("no conventions for language: %s", e.Language)
	}
	return "no convention defined"
}

// Unwrap returns nil as ConventionError has no underlying cause.
func (e *ConventionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConventionError) Is(target error) bool {
	return target == ErrNoConvention
}

// PolicyError represents a failure to load, cache, fetch, or parse the
// conventions document.
type PolicyError struct {
	// Source identifies where the document came from (cache path, repo)
	Source string
	// IsCache is true when the cached copy is corrupted or unreadable
	IsCache bool
	// IsFetch is true when fetching the document failed
	IsFetch bool
	// Message describes the failure
	Message string
	// Hint is an optional remediation line shown to the user
	Hint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PolicyError) Error() string {
	msg := "policy error"
	if e.IsCache {
		msg = "policy cache error"
	} else if e.IsFetch {
		msg = "policy fetch error"
	}
	if e.Source != "" {
		msg += " (" + e.Source + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PolicyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrPolicy, and also ErrCache or ErrFetch when the corresponding
// flag is set.
func (e *PolicyError) Is(target error) bool {
	if target == ErrPolicy {
		return true
	}
	if target == ErrCache && e.IsCache {
		return true
	}
	if target == ErrFetch && e.IsFetch {
		return true
	}
	return false
}

// GHError represents a gh CLI invocation failure.
type GHError struct {
	// Args are the gh arguments that were invoked (without the binary name)
	Args []string
	// Output is the combined output of the failed invocation
	Output string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GHError) Error() string {
	msg := "gh error"
	if len(e.Args) > 0 {
		msg += ": gh " + strings.Join(e.Args, " ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GHError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GHError) Is(target error) bool {
	return target == ErrGH
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
