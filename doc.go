// Package convtools provides tools for checking and enforcing the OpenAEC
// Foundation naming conventions.
//
// convtools splits identifiers into their semantic words regardless of the
// casing style they arrive in, re-renders those words into any supported
// style, and validates names against the organization's convention policy
// with actionable suggestions.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - casing: tokenize identifiers into words and render words into a case style
//   - checker: validate names against the convention policy (check/suggest)
//   - policy: load, cache, fetch, and query the conventions document
//   - walker: scan a source tree for directory, file, and declaration names
//   - enforcer: audit every repository of a GitHub organization
//
// Supported case styles: kebab-case, snake_case, camelCase, and PascalCase,
// plus any additional style the policy document defines a pattern for.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/OpenAEC-Foundation/convtools
//
// # Quick Start
//
// Convert a name between styles:
//
//	import "github.com/OpenAEC-Foundation/convtools/casing"
//
//	out, err := casing.Convert("OpenPDFStudio", casing.StyleKebab)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // open-pdf-studio
//
// Check a repository name against the built-in conventions:
//
//	import "github.com/OpenAEC-Foundation/convtools/checker"
//
//	c, err := checker.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := c.Check("MyRepoName", "kebab-case")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range result.Messages() {
//		fmt.Println(msg)
//	}
//
// Load the organization policy and check category conventions:
//
//	import (
//		"github.com/OpenAEC-Foundation/convtools/checker"
//		"github.com/OpenAEC-Foundation/convtools/policy"
//	)
//
//	loader := policy.NewLoader()
//	doc, err := loader.Load(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := checker.New(checker.WithPolicy(doc))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := c.CheckRepository("openaec-tools")
//
// # Command Line
//
// The convtools binary exposes the same functionality:
//
//	convtools check --style kebab-case MyRepoName
//	convtools convert --style camelCase "OpenPDFStudio"
//	convtools scan --languages ./src
//	convtools enforce --naming --org OpenAEC-Foundation
//	convtools mcp
//
// Run 'convtools help' for the full command reference.
package convtools
