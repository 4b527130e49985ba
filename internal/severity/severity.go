// Package severity provides severity level constants and utilities
// for issues reported by the checker, walker, and enforcer packages.
//
// All severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational notices such as suggestions and missing conventions
//   - SeverityWarning: Names that need manual review before they can be fixed
//   - SeverityError: Names that violate the convention they are checked against
//   - SeverityCritical: Audit steps that could not be completed at all
//
// The numeric values carry no severity ordering; Error is the zero value
// so an issue built without an explicit level reads as a violation.
// Compare levels by identity, not magnitude.
package severity

// Severity indicates the severity level of an issue found while checking
// names or auditing repositories.
type Severity int

const (
	// SeverityError indicates a name that does not conform to the convention
	// it was checked against.
	SeverityError Severity = iota

	// SeverityWarning indicates a name that cannot be auto-suggested and
	// needs manual review before it can be brought into conformance.
	SeverityWarning

	// SeverityInfo indicates informational notices: rename suggestions and
	// "no convention defined" lookups.
	SeverityInfo

	// SeverityCritical indicates an audit step that could not be completed,
	// such as a repository whose metadata could not be fetched.
	SeverityCritical
)

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalYAML renders the severity as its string form.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
