package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPolicyYAML = `
naming:
  repository:
    case: kebab-case
  directory:
    case: kebab-case
  language:
    python:
      function: snake_case
      class: PascalCase
`

// writePolicyFile writes a throwaway conventions document and returns
// its path.
func writePolicyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conventions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPolicyYAML), 0o644))
	return path
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestExitCodeError(t *testing.T) {
	err := ExitCodeError(1)
	assert.Equal(t, "exit code 1", err.Error())
}

func TestNewCheckerFromFile(t *testing.T) {
	c, err := newChecker(t.Context(), writePolicyFile(t), false)
	require.NoError(t, err)

	result, err := c.CheckRepository("openaec-tools")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestNewCheckerMissingFile(t *testing.T) {
	_, err := newChecker(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.Error(t, err)
}
