// Package casing tokenizes identifiers into their semantic words and
// renders word sequences into case styles.
//
// Import path: github.com/OpenAEC-Foundation/convtools/casing
//
// Tokenize splits an identifier written in any of the supported styles into
// an ordered sequence of lowercase words:
//
//	casing.Tokenize("my-repo-name")   // ["my", "repo", "name"]
//	casing.Tokenize("my_repo_name")   // ["my", "repo", "name"]
//	casing.Tokenize("OpenPDFStudio")  // ["open", "pdf", "studio"]
//	casing.Tokenize("HTTPServer")     // ["http", "server"]
//
// Render joins a word sequence back into a target style:
//
//	casing.Render([]string{"my", "repo"}, casing.StyleCamel)  // "myRepo"
//	casing.Render([]string{"my", "repo"}, casing.StylePascal) // "MyRepo"
//
// Sequences longer than three words collapse to an initialism before
// rendering, so "open pdf studio tool" becomes "o-p-s-t" in kebab-case.
// Convert combines the two steps for callers that start from a raw name.
//
// All functions are pure: they consult no configuration and hold no state.
package casing
