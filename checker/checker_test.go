package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenAEC-Foundation/convtools/converrors"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

func testPolicy(t *testing.T) *policy.Document {
	t.Helper()
	doc, err := policy.Parse([]byte(`
naming:
  case:
    UPPER-TRAIN:
      pattern: "^[A-Z0-9]+(-[A-Z0-9]+)*$"
  repository:
    case: kebab-case
  directory:
    case: kebab-case
  language:
    python:
      function: snake_case
      class: PascalCase
`))
	require.NoError(t, err)
	return doc
}

func newTestChecker(t *testing.T, opts ...Option) *Checker {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestCheckConformantName(t *testing.T) {
	c := newTestChecker(t)

	result, err := c.Check("openaec-tools", "kebab-case")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Messages())
}

func TestCheckMismatchWithSuggestion(t *testing.T) {
	c := newTestChecker(t)

	result, err := c.Check("MyRepoName", "kebab-case")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	msgs := result.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Does not match kebab-case", msgs[0])
	assert.Equal(t, "Suggested: 'my-repo-name'", msgs[1])
	assert.Equal(t, "my-repo-name", result.Suggestion())
	assert.False(t, result.NeedsManualReview())
}

func TestCheckTooManySegmentsStopsBeforeSuggestion(t *testing.T) {
	c := newTestChecker(t)

	result, err := c.Check("OpenPDFStudioToolKit", "kebab-case")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	msgs := result.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Does not match kebab-case", msgs[0])
	assert.Equal(t, "Too many segments (>3) - needs manual review", msgs[1])
	assert.Empty(t, result.Suggestion())
	assert.True(t, result.NeedsManualReview())
}

func TestCheckNoSuggestionWhenAlreadyCanonical(t *testing.T) {
	// snake_case requires a leading letter; the name tokenizes back to
	// itself so only the mismatch issue is reported.
	c := newTestChecker(t)

	result, err := c.Check("2fa", "snake_case")
	require.NoError(t, err)
	msgs := result.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Does not match snake_case", msgs[0])
}

func TestCheckUnknownStyle(t *testing.T) {
	c := newTestChecker(t)

	result, err := c.Check("anything", "SHOUTING")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Unknown case style: SHOUTING"}, result.Messages())
}

func TestCheckInvalidInputIsError(t *testing.T) {
	c := newTestChecker(t)

	// "12_34" fails the kebab pattern and has no letters, so the
	// tokenizer error surfaces instead of a style issue.
	_, err := c.Check("12_34", "kebab-case")
	assert.ErrorIs(t, err, converrors.ErrInvalidInput)
}

func TestCheckPolicyDefinedStyle(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	result, err := c.Check("MY-REPO", "UPPER-TRAIN")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// A mismatch against a policy-only style reports the failure but
	// cannot compute a suggestion: no rendering rule exists for it.
	result, err = c.Check("my-repo", "UPPER-TRAIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Does not match UPPER-TRAIN"}, result.Messages())
}

func TestNewInvalidOverridePattern(t *testing.T) {
	doc, err := policy.Parse([]byte(`
naming:
  case:
    kebab-case:
      pattern: "([unclosed"
`))
	require.NoError(t, err)

	_, err = New(WithPolicy(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, converrors.ErrConfig)

	var cfgErr *converrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "naming.case.kebab-case.pattern", cfgErr.Option)
}

func TestPatternFor(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	pattern, ok := c.PatternFor("UPPER-TRAIN")
	assert.True(t, ok)
	assert.Equal(t, "^[A-Z0-9]+(-[A-Z0-9]+)*$", pattern)

	pattern, ok = c.PatternFor("kebab-case")
	assert.True(t, ok)
	assert.Equal(t, "^[a-z0-9]+(-[a-z0-9]+)*$", pattern)

	_, ok = c.PatternFor("SHOUTING")
	assert.False(t, ok)
}

func TestOverridePatternWins(t *testing.T) {
	doc, err := policy.Parse([]byte(`
naming:
  case:
    kebab-case:
      pattern: "^[a-z]+$"
`))
	require.NoError(t, err)
	c := newTestChecker(t, WithPolicy(doc))

	// The override forbids digits and hyphens the built-in allows.
	result, err := c.Check("repo-2", "kebab-case")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = c.Check("repo", "kebab-case")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestCheckRepository(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	result, err := c.CheckRepository("MyRepoName")
	require.NoError(t, err)
	msgs := result.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Does not match kebab-case", msgs[0])
	assert.Equal(t, "Suggested: 'my-repo-name'", msgs[1])

	result, err = c.CheckRepository("openaec-tools")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestCheckRepositoryNoConvention(t *testing.T) {
	c := newTestChecker(t)

	result, err := c.CheckRepository("anything")
	require.NoError(t, err)
	assert.Equal(t, []string{"No repository convention defined"}, result.Messages())
}

func TestCheckDirectory(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	result, err := c.CheckDirectory("my_dir")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "my-dir", result.Suggestion())

	noPolicy := newTestChecker(t)
	result, err = noPolicy.CheckDirectory("my_dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"No directory convention defined"}, result.Messages())
}

func TestCheckLanguageElement(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	result, err := c.CheckLanguageElement("my_function", "python", "function")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = c.CheckLanguageElement("MyFunction", "python", "function")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Does not match snake_case",
		"Suggested: 'my_function'",
	}, result.Messages())

	result, err = c.CheckLanguageElement("name", "rust", "function")
	require.NoError(t, err)
	assert.Equal(t, []string{"No conventions for language: rust"}, result.Messages())

	result, err = c.CheckLanguageElement("name", "python", "constant")
	require.NoError(t, err)
	assert.Equal(t, []string{"No convention for python constant"}, result.Messages())
}

func TestCategoryStyle(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	style, err := c.CategoryStyle("repository")
	require.NoError(t, err)
	assert.Equal(t, "kebab-case", style)

	style, err = c.CategoryStyle("directory")
	require.NoError(t, err)
	assert.Equal(t, "kebab-case", style)

	bare := newTestChecker(t)
	_, err = bare.CategoryStyle("repository")
	assert.ErrorIs(t, err, converrors.ErrNoConvention)

	var convErr *converrors.ConventionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "repository", convErr.Category)
}

func TestElementStyle(t *testing.T) {
	c := newTestChecker(t, WithPolicy(testPolicy(t)))

	style, err := c.ElementStyle("python", "function")
	require.NoError(t, err)
	assert.Equal(t, "snake_case", style)

	var convErr *converrors.ConventionError
	_, err = c.ElementStyle("rust", "function")
	assert.ErrorIs(t, err, converrors.ErrNoConvention)
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "rust", convErr.Language)
	assert.Empty(t, convErr.Element)

	_, err = c.ElementStyle("python", "constant")
	assert.ErrorIs(t, err, converrors.ErrNoConvention)
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "constant", convErr.Element)
}

func TestSuggest(t *testing.T) {
	c := newTestChecker(t)

	suggested, err := c.Suggest("OpenPDFStudio", "camelCase")
	require.NoError(t, err)
	assert.Equal(t, "openPdfStudio", suggested)

	suggested, err = c.Suggest("open-pdf-studio-tool", "kebab-case")
	require.NoError(t, err)
	assert.Equal(t, "o-p-s-t", suggested)

	_, err = c.Suggest("name", "SHOUTING")
	assert.ErrorIs(t, err, converrors.ErrUnsupportedStyle)

	_, err = c.Suggest("1234", "kebab-case")
	assert.ErrorIs(t, err, converrors.ErrInvalidInput)
}
