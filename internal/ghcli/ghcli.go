// Package ghcli wraps the gh CLI for the GitHub operations convtools
// needs: fetching file contents, listing organization repositories, and
// managing issues. Nothing else in convtools shells out.
package ghcli

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/OpenAEC-Foundation/convtools/converrors"
)

// runner executes a gh invocation and returns its combined output.
// Injectable for tests.
type runner func(ctx context.Context, args ...string) ([]byte, error)

// Client invokes the gh CLI. Authentication is delegated entirely to gh;
// the client never handles credentials itself.
type Client struct {
	run runner
}

// New creates a Client that executes the real gh binary.
func New() *Client {
	return &Client{run: runGH}
}

// runGH executes a gh command and returns its combined output.
func runGH(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, &converrors.GHError{
			Args:   args,
			Output: string(output),
			Cause:  err,
		}
	}
	return output, nil
}

// IsAvailable reports whether the gh CLI is installed and authenticated.
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.run(ctx, "auth", "status")
	return err == nil
}

// FetchContent fetches a file's content from a repository via the
// contents API. repo is "owner/name"; path is the file path within it.
func (c *Client) FetchContent(ctx context.Context, repo, path string) ([]byte, error) {
	out, err := c.run(ctx, "api",
		fmt.Sprintf("repos/%s/contents/%s", repo, path),
		"--jq", ".content")
	if err != nil {
		return nil, err
	}
	content, err := decodeBase64(string(out))
	if err != nil {
		return nil, &converrors.GHError{
			Args:  []string{"api", fmt.Sprintf("repos/%s/contents/%s", repo, path)},
			Cause: fmt.Errorf("decoding content: %w", err),
		}
	}
	return content, nil
}

// FileContent fetches a file's content and blob SHA from a repository.
// It returns found=false without error when the file does not exist.
func (c *Client) FileContent(ctx context.Context, repo, path string) (content []byte, sha string, found bool, err error) {
	out, err := c.run(ctx, "api", fmt.Sprintf("repos/%s/contents/%s", repo, path))
	if err != nil {
		// The contents API answers 404 for missing files; gh exits
		// non-zero and prints the API error. Treat that as absent.
		if strings.Contains(string(out), "Not Found") {
			return nil, "", false, nil
		}
		return nil, "", false, err
	}

	var payload struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return nil, "", false, &converrors.GHError{
			Args:  []string{"api", fmt.Sprintf("repos/%s/contents/%s", repo, path)},
			Cause: fmt.Errorf("decoding response: %w", err),
		}
	}
	content, err = decodeBase64(payload.Content)
	if err != nil {
		return nil, "", false, &converrors.GHError{
			Args:  []string{"api", fmt.Sprintf("repos/%s/contents/%s", repo, path)},
			Cause: fmt.Errorf("decoding content: %w", err),
		}
	}
	return content, payload.SHA, true, nil
}

// RepoInfo describes one repository from a listing.
type RepoInfo struct {
	// Name is the repository name without the organization prefix
	Name string
	// DefaultBranch is the default branch name, empty for empty repositories
	DefaultBranch string
}

// ListRepos lists up to limit repositories of an organization.
func (c *Client) ListRepos(ctx context.Context, org string, limit int) ([]RepoInfo, error) {
	out, err := c.run(ctx, "repo", "list", org,
		"--limit", strconv.Itoa(limit),
		"--json", "name,defaultBranchRef")
	if err != nil {
		return nil, err
	}

	var payload []struct {
		Name             string `json:"name"`
		DefaultBranchRef *struct {
			Name string `json:"name"`
		} `json:"defaultBranchRef"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return nil, &converrors.GHError{
			Args:  []string{"repo", "list", org},
			Cause: fmt.Errorf("decoding repository list: %w", err),
		}
	}

	repos := make([]RepoInfo, len(payload))
	for i, r := range payload {
		repos[i] = RepoInfo{Name: r.Name}
		if r.DefaultBranchRef != nil {
			repos[i].DefaultBranch = r.DefaultBranchRef.Name
		}
	}
	return repos, nil
}

// FindIssue searches a repository for an open or closed issue with the
// given title. It returns found=false without error when none exists.
func (c *Client) FindIssue(ctx context.Context, repo, title string) (number int, state string, found bool, err error) {
	out, err := c.run(ctx, "issue", "list", "-R", repo,
		"--search", fmt.Sprintf("%q", title),
		"--state", "all",
		"--json", "number,state",
		"--limit", "1")
	if err != nil {
		return 0, "", false, err
	}

	var payload []struct {
		Number int    `json:"number"`
		State  string `json:"state"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return 0, "", false, &converrors.GHError{
			Args:  []string{"issue", "list", "-R", repo},
			Cause: fmt.Errorf("decoding issue list: %w", err),
		}
	}
	if len(payload) == 0 {
		return 0, "", false, nil
	}
	return payload[0].Number, payload[0].State, true, nil
}

// CreateIssue creates an issue and returns its number, parsed from the
// issue URL gh prints.
func (c *Client) CreateIssue(ctx context.Context, repo, title, body string) (int, error) {
	out, err := c.run(ctx, "issue", "create", "-R", repo,
		"--title", title,
		"--body", body)
	if err != nil {
		return 0, err
	}

	url := strings.TrimSpace(string(out))
	idx := strings.LastIndexByte(url, '/')
	if idx < 0 {
		return 0, &converrors.GHError{
			Args:   []string{"issue", "create", "-R", repo},
			Output: url,
			Cause:  fmt.Errorf("unexpected issue URL"),
		}
	}
	number, err := strconv.Atoi(url[idx+1:])
	if err != nil {
		return 0, &converrors.GHError{
			Args:   []string{"issue", "create", "-R", repo},
			Output: url,
			Cause:  fmt.Errorf("parsing issue number: %w", err),
		}
	}
	return number, nil
}

// EditIssueBody replaces an issue's body.
func (c *Client) EditIssueBody(ctx context.Context, repo string, number int, body string) error {
	_, err := c.run(ctx, "issue", "edit", strconv.Itoa(number), "-R", repo, "--body", body)
	return err
}

// ReopenIssue reopens a closed issue.
func (c *Client) ReopenIssue(ctx context.Context, repo string, number int) error {
	_, err := c.run(ctx, "issue", "reopen", strconv.Itoa(number), "-R", repo)
	return err
}

// PinIssue pins an issue to the repository's issue list.
func (c *Client) PinIssue(ctx context.Context, repo string, number int) error {
	_, err := c.run(ctx, "issue", "pin", strconv.Itoa(number), "-R", repo)
	return err
}

// decodeBase64 decodes contents-API base64, which arrives wrapped in
// newlines.
func decodeBase64(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' {
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(cleaned)
}
