package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
naming:
  case:
    kebab-case:
      pattern: "^[a-z0-9]+(-[a-z0-9]+)*$"
      description: "Lowercase words joined by hyphens"
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
      file: snake_case
    go:
      function: camelCase
`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	return doc
}

func TestParse(t *testing.T) {
	doc := mustParse(t)

	assert.Len(t, doc.Naming.Case, 2)
	assert.Equal(t, "kebab-case", doc.Naming.Repository.Case)
	assert.Equal(t, "Lowercase words joined by hyphens", doc.Naming.Case["kebab-case"].Description)
	assert.Len(t, doc.Naming.Language, 2)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("naming: [unclosed"))
	require.Error(t, err)
}

func TestCasePattern(t *testing.T) {
	doc := mustParse(t)

	tests := []struct {
		name      string
		style     string
		want      string
		wantFound bool
	}{
		{name: "override present", style: "kebab-case", want: "^[a-z0-9]+(-[a-z0-9]+)*$", wantFound: true},
		{name: "extended style", style: "UPPER-TRAIN", want: "^[A-Z0-9]+(-[A-Z0-9]+)*$", wantFound: true},
		{name: "known style without override", style: "snake_case", wantFound: false},
		{name: "unknown style", style: "SHOUTING", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := doc.CasePattern(tt.style)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryLookups(t *testing.T) {
	doc := mustParse(t)

	style, ok := doc.RepositoryStyle()
	assert.True(t, ok)
	assert.Equal(t, "kebab-case", style)

	style, ok = doc.DirectoryStyle()
	assert.True(t, ok)
	assert.Equal(t, "kebab-case", style)

	empty, err := Parse([]byte("naming: {}"))
	require.NoError(t, err)
	_, ok = empty.RepositoryStyle()
	assert.False(t, ok)
	_, ok = empty.DirectoryStyle()
	assert.False(t, ok)
}

func TestLanguageLookups(t *testing.T) {
	doc := mustParse(t)

	python, ok := doc.Language("python")
	require.True(t, ok)

	style, ok := python.Style("function")
	assert.True(t, ok)
	assert.Equal(t, "snake_case", style)

	_, ok = python.Style("constant")
	assert.False(t, ok)

	_, ok = doc.Language("rust")
	assert.False(t, ok)
}

func TestLookupsOnNilDocument(t *testing.T) {
	var doc *Document

	_, ok := doc.CasePattern("kebab-case")
	assert.False(t, ok)
	_, ok = doc.RepositoryStyle()
	assert.False(t, ok)
	_, ok = doc.DirectoryStyle()
	assert.False(t, ok)
	_, ok = doc.Language("python")
	assert.False(t, ok)
	assert.Nil(t, doc.Styles())
}

func TestDeepCopyIsolation(t *testing.T) {
	doc := mustParse(t)
	copied := doc.DeepCopy()

	require.Equal(t, doc, copied)

	copied.Naming.Case["kebab-case"] = CaseDef{Pattern: "changed"}
	copied.Naming.Language["python"]["function"] = "PascalCase"
	copied.Naming.Repository.Case = "snake_case"

	assert.Equal(t, "^[a-z0-9]+(-[a-z0-9]+)*$", doc.Naming.Case["kebab-case"].Pattern)
	assert.Equal(t, "snake_case", doc.Naming.Language["python"]["function"])
	assert.Equal(t, "kebab-case", doc.Naming.Repository.Case)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := mustParse(t)

	data, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}
