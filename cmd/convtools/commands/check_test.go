package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCheckMode(t *testing.T) {
	tests := []struct {
		name    string
		flags   CheckFlags
		wantErr bool
	}{
		{"style only", CheckFlags{Style: "kebab-case"}, false},
		{"category only", CheckFlags{Category: "repository"}, false},
		{"language and element", CheckFlags{Language: "python", Element: "function"}, false},
		{"no mode", CheckFlags{}, true},
		{"style and category", CheckFlags{Style: "kebab-case", Category: "repository"}, true},
		{"language without element", CheckFlags{Language: "python"}, true},
		{"element without language", CheckFlags{Element: "function"}, true},
		{"bad category", CheckFlags{Category: "gist"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCheckMode(&tt.flags)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCheckMode() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHandleCheckConformant(t *testing.T) {
	policyFile := writePolicyFile(t)
	err := HandleCheck([]string{"--policy", policyFile, "--style", "kebab-case", "openaec-tools"})
	require.NoError(t, err)
}

func TestHandleCheckNonConformant(t *testing.T) {
	policyFile := writePolicyFile(t)
	err := HandleCheck([]string{"--policy", policyFile, "--style", "kebab-case", "MyRepoName"})
	require.Error(t, err)
	assert.Equal(t, ExitCodeError(1), err)
}

func TestHandleCheckCategory(t *testing.T) {
	policyFile := writePolicyFile(t)
	err := HandleCheck([]string{"--policy", policyFile, "--category", "repository", "openaec-tools", "good-name"})
	require.NoError(t, err)
}

func TestHandleCheckJSONFormat(t *testing.T) {
	policyFile := writePolicyFile(t)
	err := HandleCheck([]string{"--policy", policyFile, "--format", "json", "--style", "kebab-case", "openaec-tools"})
	require.NoError(t, err)
}

func TestHandleCheckNoNames(t *testing.T) {
	err := HandleCheck([]string{"--style", "kebab-case"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one name")
}

func TestHandleCheckBadFormat(t *testing.T) {
	err := HandleCheck([]string{"--style", "kebab-case", "--format", "xml", "name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
