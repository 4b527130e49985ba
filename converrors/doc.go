// Package converrors provides structured error types for the convtools library.
//
// Import path: github.com/OpenAEC-Foundation/convtools/converrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides six core error types:
//
//   - [InputError]: names that cannot be tokenized (no letters)
//   - [StyleError]: case styles the renderer does not support
//   - [ConventionError]: policy lookups with no convention defined
//   - [PolicyError]: policy document load, cache, and fetch failures
//   - [GHError]: gh CLI invocation failures
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: matches any [InputError]
//   - [ErrUnsupportedStyle]: matches any [StyleError]
//   - [ErrNoConvention]: matches any [ConventionError]
//   - [ErrPolicy]: matches any [PolicyError]
//   - [ErrCache]: matches [PolicyError] with IsCache=true
//   - [ErrFetch]: matches [PolicyError] with IsFetch=true
//   - [ErrGH]: matches any [GHError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	words, err := casing.Tokenize(name)
//	if errors.Is(err, converrors.ErrInvalidInput) {
//	    // Skip names that carry no letters
//	}
//
// Extract error details with errors.As():
//
//	var polErr *converrors.PolicyError
//	if errors.As(err, &polErr) {
//	    fmt.Printf("policy source: %s\n", polErr.Source)
//	    if polErr.IsCache {
//	        // Corrupted cache - tell the user to delete it
//	    }
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var ghErr *converrors.GHError
//	if errors.As(err, &ghErr) {
//	    if errors.Is(ghErr.Cause, exec.ErrNotFound) {
//	        // The gh CLI is not installed
//	    }
//	}
package converrors
