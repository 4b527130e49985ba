package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OpenAEC-Foundation/convtools/converrors"
)

// Style identifies a case style for rendering a word sequence as a single
// identifier.
type Style string

const (
	// StyleKebab renders words joined by hyphens.
	// Example: "my-repo-name"
	StyleKebab Style = "kebab-case"

	// StyleSnake renders words joined by underscores.
	// Example: "my_repo_name"
	StyleSnake Style = "snake_case"

	// StyleCamel renders the first word unchanged and capitalizes the rest.
	// Example: "myRepoName"
	StyleCamel Style = "camelCase"

	// StylePascal renders every word capitalized.
	// Example: "MyRepoName"
	StylePascal Style = "PascalCase"
)

// maxRenderedWords is the longest word sequence rendered verbatim.
// Longer sequences collapse to an initialism before rendering.
const maxRenderedWords = 3

// Styles returns all built-in case styles in declaration order.
func Styles() []Style {
	return []Style{StyleKebab, StyleSnake, StyleCamel, StylePascal}
}

// String returns the style name.
func (s Style) String() string {
	return string(s)
}

// ParseStyle parses a style name into a Style. Unknown names return a
// StyleError wrapping ErrUnsupportedStyle.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StyleKebab, StyleSnake, StyleCamel, StylePascal:
		return Style(name), nil
	}
	return "", &converrors.StyleError{Style: name}
}

// titleCaser capitalizes without lowering the remaining runes, so
// already-cased tails survive untouched.
var titleCaser = cases.Title(language.English, cases.NoLower)

// Tokenize splits an identifier written in any supported casing into an
// ordered sequence of lowercase words.
//
// Names joined by hyphens or underscores split on runs of either
// separator. Compound-capital names (camelCase, PascalCase) split on
// capital boundaries with acronym runs kept intact, so "HTTPServer"
// yields ["http", "server"].
//
// A name with no ASCII letter cannot be tokenized and returns an
// InputError wrapping ErrInvalidInput.
func Tokenize(name string) ([]string, error) {
	if !hasLetter(name) {
		return nil, &converrors.InputError{
			Name:    name,
			Message: "name must contain at least one letter: '" + name + "'",
		}
	}

	stripped := strings.Trim(name, "-_")

	if strings.ContainsAny(stripped, "-_") {
		segments := strings.FieldsFunc(stripped, func(r rune) bool {
			return r == '-' || r == '_'
		})
		words := make([]string, len(segments))
		for i, seg := range segments {
			words[i] = strings.ToLower(seg)
		}
		return words, nil
	}

	words := splitCompound(stripped)
	if len(words) == 0 {
		return []string{strings.ToLower(stripped)}, nil
	}
	return words, nil
}

// Render joins a word sequence into the canonical form of the target
// style. Sequences longer than three words collapse to their initials
// before rendering: kebab-case and snake_case keep each initial as its
// own word, camelCase and PascalCase fuse them. Unknown styles return
// a StyleError wrapping ErrUnsupportedStyle.
func Render(words []string, style Style) (string, error) {
	if len(words) == 0 {
		return "", &converrors.InputError{Message: "empty word sequence"}
	}

	if len(words) > maxRenderedWords {
		words = collapse(words, style)
	}

	switch style {
	case StyleKebab:
		return strings.Join(words, "-"), nil
	case StyleSnake:
		return strings.Join(words, "_"), nil
	case StyleCamel:
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(capitalize(w))
		}
		return b.String(), nil
	case StylePascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String(), nil
	}
	return "", &converrors.StyleError{Style: string(style)}
}

// Convert tokenizes name and renders the words in the target style.
func Convert(name string, style Style) (string, error) {
	words, err := Tokenize(name)
	if err != nil {
		return "", err
	}
	return Render(words, style)
}

// hasLetter reports whether s contains at least one ASCII letter.
func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// collapse reduces a long word sequence to its initials. Delimited
// styles keep one character per word so the initials stay readable
// ("o-p-s-t"); camel and Pascal fuse them into a single word.
func collapse(words []string, style Style) []string {
	word := initialism(words)
	if style == StyleKebab || style == StyleSnake {
		return strings.Split(word, "")
	}
	return []string{word}
}

// initialism collapses a word sequence to a single word made of each
// word's first byte, in order.
func initialism(words []string) string {
	var b strings.Builder
	b.Grow(len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteByte(w[0])
	}
	return b.String()
}

// capitalize upper-cases the first rune of w and leaves the rest
// unchanged. Words starting with a digit pass through as-is.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return titleCaser.String(string(r)) + w[size:]
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// splitCompound decomposes a compound-capital name left to right into
// maximal runs that are either one optional uppercase letter followed by
// lowercase letters or digits, or an acronym run of consecutive uppercase
// letters not immediately followed by a lowercase letter. Characters
// outside those runs are skipped.
func splitCompound(name string) []string {
	var words []string
	n := len(name)
	for i := 0; i < n; {
		c := name[i]
		switch {
		case isUpper(c):
			j := i + 1
			for j < n && isUpper(name[j]) {
				j++
			}
			if j-i >= 2 {
				// Acronym run. When a lowercase letter follows, the
				// final capital starts the next word instead.
				end := j
				if j < n && isLower(name[j]) {
					end = j - 1
				}
				if end > i {
					words = append(words, strings.ToLower(name[i:end]))
					i = end
					continue
				}
			}
			// Single capital heading a lowercase/digit run.
			j = i + 1
			for j < n && (isLower(name[j]) || isDigit(name[j])) {
				j++
			}
			words = append(words, strings.ToLower(name[i:j]))
			i = j
		case isLower(c) || isDigit(c):
			j := i + 1
			for j < n && (isLower(name[j]) || isDigit(name[j])) {
				j++
			}
			words = append(words, strings.ToLower(name[i:j]))
			i = j
		default:
			i++
		}
	}
	return words
}
