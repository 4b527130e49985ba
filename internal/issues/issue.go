// Package issues provides a unified issue type for naming-convention problems.
package issues

import (
	"fmt"

	"github.com/OpenAEC-Foundation/convtools/internal/severity"
)

// Issue represents a single problem found while checking a name.
type Issue struct {
	// Name is the identifier the issue was found on
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Style is the case style the name was checked against (optional)
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	// Value carries the payload of the issue, such as the suggested
	// replacement name (optional)
	Value any `json:"value,omitempty" yaml:"value,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Name == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Name, i.Message)
}

// Suggestion returns the suggested replacement name carried by the issue,
// or "" when the issue does not carry one.
func (i Issue) Suggestion() string {
	if s, ok := i.Value.(string); ok {
		return s
	}
	return ""
}

// Messages flattens a list of issues to their message strings, preserving
// order.
func Messages(list []Issue) []string {
	if len(list) == 0 {
		return nil
	}
	msgs := make([]string, len(list))
	for idx, iss := range list {
		msgs[idx] = iss.Message
	}
	return msgs
}
