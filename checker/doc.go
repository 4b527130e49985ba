// Package checker validates names against the conventions policy and
// produces actionable suggestions.
//
// Import path: github.com/OpenAEC-Foundation/convtools/checker
//
// A Checker combines the built-in case style patterns with any override
// patterns the policy document defines, and resolves categories
// (repository, directory) and per-language element kinds to the style
// that applies to them:
//
//	c, err := checker.New(checker.WithPolicy(doc))
//	if err != nil {
//	    return err
//	}
//	result, err := c.CheckRepository("MyRepoName")
//	for _, msg := range result.Messages() {
//	    fmt.Println(msg) // "Does not match kebab-case", "Suggested: 'my-repo-name'"
//	}
//
// Check never fails on a non-conformant or unknown style; those degrade
// to reported issues. Only a name that cannot be tokenized at all (no
// letters) returns an error.
package checker
