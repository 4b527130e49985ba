package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePolicyShowFile(t *testing.T) {
	err := HandlePolicy([]string{"--show", "--policy", writePolicyFile(t)})
	require.NoError(t, err)
}

func TestHandlePolicyShowJSON(t *testing.T) {
	err := HandlePolicy([]string{"--policy", writePolicyFile(t), "--format", "json"})
	require.NoError(t, err)
}

func TestHandlePolicyRefreshConflictsWithFile(t *testing.T) {
	err := HandlePolicy([]string{"--refresh", "--policy", writePolicyFile(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--refresh does not apply")
}

func TestHandlePolicyBadFormat(t *testing.T) {
	err := HandlePolicy([]string{"--policy", writePolicyFile(t), "--format", "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandlePolicyRejectsArgs(t *testing.T) {
	err := HandlePolicy([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no positional arguments")
}
