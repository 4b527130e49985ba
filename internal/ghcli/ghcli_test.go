package ghcli

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenAEC-Foundation/convtools/converrors"
)

// fakeRunner records invocations and replays canned output.
type fakeRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (f *fakeRunner) run(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

func newFakeClient(output []byte, err error) (*Client, *fakeRunner) {
	f := &fakeRunner{output: output, err: err}
	return &Client{run: f.run}, f
}

func TestFetchContent(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("naming:\n  case: {}\n"))
	// The contents API wraps base64 at 60 columns.
	wrapped := encoded[:8] + "\n" + encoded[8:] + "\n"

	client, f := newFakeClient([]byte(wrapped), nil)
	content, err := client.FetchContent(context.Background(), "OpenAEC-Foundation/conventions", "conventions.yaml")
	require.NoError(t, err)
	assert.Equal(t, "naming:\n  case: {}\n", string(content))

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"api", "repos/OpenAEC-Foundation/conventions/contents/conventions.yaml",
		"--jq", ".content",
	}, f.calls[0])
}

func TestFetchContentError(t *testing.T) {
	ghErr := &converrors.GHError{Args: []string{"api"}, Cause: errors.New("exit status 1")}
	client, _ := newFakeClient(nil, ghErr)

	_, err := client.FetchContent(context.Background(), "org/repo", "f.yaml")
	assert.ErrorIs(t, err, converrors.ErrGH)
}

func TestFileContent(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("LICENSE TEXT"))
	client, f := newFakeClient([]byte(`{"content":"`+encoded+`","sha":"abc123"}`), nil)

	content, sha, found, err := client.FileContent(context.Background(), "org/repo", "LICENSE.md")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "LICENSE TEXT", string(content))
	assert.Equal(t, "abc123", sha)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"api", "repos/org/repo/contents/LICENSE.md"}, f.calls[0])
}

func TestFileContentNotFound(t *testing.T) {
	ghErr := &converrors.GHError{Cause: errors.New("exit status 1")}
	client, _ := newFakeClient([]byte(`{"message":"Not Found"}`), ghErr)

	_, _, found, err := client.FileContent(context.Background(), "org/repo", "LICENSE.md")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListRepos(t *testing.T) {
	client, f := newFakeClient([]byte(`[
		{"name":"openaec-tools","defaultBranchRef":{"name":"main"}},
		{"name":"EmptyRepo","defaultBranchRef":null}
	]`), nil)

	repos, err := client.ListRepos(context.Background(), "OpenAEC-Foundation", 1000)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, RepoInfo{Name: "openaec-tools", DefaultBranch: "main"}, repos[0])
	assert.Equal(t, RepoInfo{Name: "EmptyRepo"}, repos[1])

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"repo", "list", "OpenAEC-Foundation",
		"--limit", "1000",
		"--json", "name,defaultBranchRef",
	}, f.calls[0])
}

func TestFindIssue(t *testing.T) {
	client, f := newFakeClient([]byte(`[{"number":7,"state":"CLOSED"}]`), nil)

	number, state, found, err := client.FindIssue(context.Background(), "org/repo", "Naming convention violations")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, number)
	assert.Equal(t, "CLOSED", state)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"issue", "list", "-R", "org/repo",
		"--search", `"Naming convention violations"`,
		"--state", "all",
		"--json", "number,state",
		"--limit", "1",
	}, f.calls[0])
}

func TestFindIssueNone(t *testing.T) {
	client, _ := newFakeClient([]byte(`[]`), nil)

	_, _, found, err := client.FindIssue(context.Background(), "org/repo", "Naming convention violations")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateIssue(t *testing.T) {
	client, f := newFakeClient([]byte("https://github.com/org/repo/issues/42\n"), nil)

	number, err := client.CreateIssue(context.Background(), "org/repo", "title", "body")
	require.NoError(t, err)
	assert.Equal(t, 42, number)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"issue", "create", "-R", "org/repo",
		"--title", "title",
		"--body", "body",
	}, f.calls[0])
}

func TestIssueMutations(t *testing.T) {
	client, f := newFakeClient(nil, nil)

	require.NoError(t, client.EditIssueBody(context.Background(), "org/repo", 7, "new body"))
	require.NoError(t, client.ReopenIssue(context.Background(), "org/repo", 7))
	require.NoError(t, client.PinIssue(context.Background(), "org/repo", 7))

	require.Len(t, f.calls, 3)
	assert.Equal(t, []string{"issue", "edit", "7", "-R", "org/repo", "--body", "new body"}, f.calls[0])
	assert.Equal(t, []string{"issue", "reopen", "7", "-R", "org/repo"}, f.calls[1])
	assert.Equal(t, []string{"issue", "pin", "7", "-R", "org/repo"}, f.calls[2])
}

func TestIsAvailable(t *testing.T) {
	client, f := newFakeClient(nil, nil)
	assert.True(t, client.IsAvailable(context.Background()))
	assert.Equal(t, []string{"auth", "status"}, f.calls[0])

	failing, _ := newFakeClient(nil, errors.New("not logged in"))
	assert.False(t, failing.IsAvailable(context.Background()))
}
