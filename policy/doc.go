// Package policy loads and queries the OpenAEC Foundation conventions
// document.
//
// Import path: github.com/OpenAEC-Foundation/convtools/policy
//
// The conventions document is a YAML file describing which case style
// applies to which category of name:
//
//	naming:
//	  case:
//	    kebab-case:
//	      pattern: "^[a-z0-9]+(-[a-z0-9]+)*$"
//	  repository:
//	    case: kebab-case
//	  directory:
//	    case: kebab-case
//	  language:
//	    python:
//	      function: snake_case
//	      class: PascalCase
//	      file: snake_case
//
// Parse and LoadFile turn YAML bytes or a local file into a Document.
// A Loader fetches the document from its canonical GitHub repository
// via the gh CLI and caches it on disk:
//
//	loader := policy.NewLoader()
//	doc, err := loader.Load(ctx)
//
// Every lookup on a Document returns an explicit "absent" boolean
// rather than crashing on missing keys, and all lookups are safe on a
// nil receiver, so callers can treat "no policy" and "policy without
// this entry" identically.
package policy
