package enforcer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/OpenAEC-Foundation/convtools/checker"
	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
	"github.com/OpenAEC-Foundation/convtools/internal/ghcli"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

const (
	// DefaultOrg is the organization audited when none is given.
	DefaultOrg = "OpenAEC-Foundation"

	// issueTitle is the title of the pinned violations issue.
	issueTitle = "Naming convention violations"

	// repoListLimit caps how many repositories one run processes.
	repoListLimit = 1000

	banner = "================================================"
)

// GitHub is the slice of the gh CLI the enforcer needs. It is satisfied
// by *ghcli.Client.
type GitHub interface {
	IsAvailable(ctx context.Context) bool
	ListRepos(ctx context.Context, org string, limit int) ([]ghcli.RepoInfo, error)
	FileContent(ctx context.Context, repo, path string) (content []byte, sha string, found bool, err error)
	FindIssue(ctx context.Context, repo, title string) (number int, state string, found bool, err error)
	CreateIssue(ctx context.Context, repo, title, body string) (int, error)
	EditIssueBody(ctx context.Context, repo string, number int, body string) error
	ReopenIssue(ctx context.Context, repo string, number int) error
	PinIssue(ctx context.Context, repo string, number int) error
}

// Stats counts per-repository outcomes across one run.
type Stats struct {
	// Success counts repositories whose LICENSE.md would be written
	Success int
	// Skipped counts repositories needing no action
	Skipped int
	// Failed counts repositories where an action failed
	Failed int
	// NamingIssues counts repositories whose name violates the policy
	NamingIssues int
}

// RepoReport records one repository's naming violations.
type RepoReport struct {
	Name   string
	Issues []string
}

// Result is the outcome of one enforcement run.
type Result struct {
	RunID           string
	Org             string
	Total           int
	Stats           Stats
	ReposWithIssues []RepoReport
}

// Enforcer audits an organization's repositories.
type Enforcer struct {
	// Org is the GitHub organization to audit
	Org string

	// CheckNaming audits repository names against the policy
	CheckNaming bool

	// FixNaming reports the rename each violating repository would get.
	// No rename is ever performed.
	FixNaming bool

	// CheckLicenses audits LICENSE.md in each repository
	CheckLicenses bool

	// ApplyLicenses reports the LICENSE.md writes that would happen.
	// No file is ever written.
	ApplyLicenses bool

	// SingleRepo restricts the run to one repository name
	SingleRepo string

	// LicenseContent is the canonical license text repositories are
	// compared against. Required when CheckLicenses is set.
	LicenseContent []byte

	// FileIssues creates or refreshes the pinned violations issue in
	// each repository with naming problems
	FileIssues bool

	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer

	// Color enables ANSI colors on Out
	Color bool

	// Checker validates repository names
	Checker *checker.Checker

	// GitHub talks to the gh CLI
	GitHub GitHub

	// Logger receives structured logs. Defaults to NopLogger.
	Logger policy.Logger
}

// New creates an Enforcer for the default organization backed by the
// real gh CLI.
func New(c *checker.Checker) *Enforcer {
	return &Enforcer{
		Org:         DefaultOrg,
		CheckNaming: true,
		FileIssues:  true,
		Out:         os.Stdout,
		Checker:     c,
		GitHub:      ghcli.New(),
		Logger:      policy.NopLogger{},
	}
}

// Run audits the organization and returns the aggregated result. The
// returned error covers only setup failures; per-repository problems
// are folded into the result's stats.
func (e *Enforcer) Run(ctx context.Context) (*Result, error) {
	p := e.printer()

	if !e.GitHub.IsAvailable(ctx) {
		return nil, errors.New("enforcer: gh CLI is not installed or not authenticated; run 'gh auth login'")
	}

	result := &Result{
		RunID: uuid.NewString(),
		Org:   e.org(),
	}

	repos, err := e.repos(ctx, p)
	if err != nil {
		return nil, err
	}
	result.Total = len(repos)

	p.Colorf(cliutil.Green, "Found %d repositories", len(repos))
	p.Linef("")

	for idx, repo := range repos {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		p.Linef(banner)
		p.Colorf(cliutil.Yellow, "[%d/%d] Processing: %s", idx+1, len(repos), repo.Name)
		p.Linef(banner)

		if e.CheckNaming || e.FixNaming {
			e.auditNaming(ctx, p, result, repo.Name)
		}
		if e.CheckLicenses || e.ApplyLicenses {
			e.auditLicense(ctx, p, result, repo)
		} else if e.CheckNaming || e.FixNaming {
			p.Linef("")
		}
	}

	e.printSummary(p, result)

	e.logger().Info("enforcement run complete", "run", result.RunID, "org", result.Org,
		"total", result.Total, "naming_issues", result.Stats.NamingIssues)
	return result, nil
}

func (e *Enforcer) repos(ctx context.Context, p *cliutil.Printer) ([]ghcli.RepoInfo, error) {
	if e.SingleRepo != "" {
		p.Colorf(cliutil.Green, "Checking repository: %s", e.SingleRepo)
		p.Linef("")
		return []ghcli.RepoInfo{{Name: e.SingleRepo}}, nil
	}

	p.Colorf(cliutil.Green, "Fetching repositories from %s...", e.org())
	p.Linef("")

	repos, err := e.GitHub.ListRepos(ctx, e.org(), repoListLimit)
	if err != nil {
		return nil, fmt.Errorf("enforcer: listing repositories in %s: %w", e.org(), err)
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("enforcer: no repositories found in %s", e.org())
	}
	return repos, nil
}

// auditNaming checks one repository name and reports its violations.
func (e *Enforcer) auditNaming(ctx context.Context, p *cliutil.Printer, result *Result, name string) {
	res, err := e.Checker.CheckRepository(name)
	if err != nil {
		p.Colorf(cliutil.Red, "✗ Could not check name: %v", err)
		result.Stats.Failed++
		return
	}
	if res.Valid {
		return
	}

	messages := res.Messages()
	p.Colorf(cliutil.Yellow, "⚠ NAMING ISSUES:")
	for _, msg := range messages {
		p.Colorf(cliutil.Yellow, "  - %s", msg)
	}
	result.Stats.NamingIssues++
	result.ReposWithIssues = append(result.ReposWithIssues, RepoReport{Name: name, Issues: messages})

	if e.FileIssues {
		// Issue filing is best effort; a failure never aborts the run.
		if issueErr := e.fileIssue(ctx, name, messages, result.RunID); issueErr != nil {
			e.logger().Warn("filing violations issue failed", "repo", name, "error", issueErr)
		}
	}

	if e.FixNaming {
		style, ok := e.Checker.Policy().RepositoryStyle()
		if !ok {
			style = "kebab-case"
		}
		suggested, suggestErr := e.Checker.Suggest(name, style)
		if suggestErr != nil {
			p.Colorf(cliutil.Red, "✗ Could not suggest a name: %v", suggestErr)
		} else {
			p.Colorf(cliutil.Blue, "[FIX] Would rename to: %s", suggested)
		}
	}
	p.Linef("")
}

// auditLicense compares one repository's LICENSE.md with the canonical
// text and reports the write that would bring it up to date.
func (e *Enforcer) auditLicense(ctx context.Context, p *cliutil.Printer, result *Result, repo ghcli.RepoInfo) {
	if repo.DefaultBranch == "" && e.SingleRepo == "" {
		p.Colorf(cliutil.Yellow, "Empty repository, skipping license check...")
		result.Stats.Skipped++
		p.Linef("")
		return
	}
	if repo.DefaultBranch != "" {
		p.Linef("Default branch: %s", repo.DefaultBranch)
	}

	fullRepo := e.org() + "/" + repo.Name
	content, _, found, err := e.GitHub.FileContent(ctx, fullRepo, "LICENSE.md")
	if err != nil {
		p.Colorf(cliutil.Red, "✗ Could not read LICENSE.md: %v", err)
		result.Stats.Failed++
		p.Linef("")
		return
	}

	exists := false
	if found {
		p.Colorf(cliutil.Yellow, "LICENSE.md exists, checking content...")
		if bytes.Equal(content, e.LicenseContent) {
			p.Colorf(cliutil.Green, "✓ LICENSE.md is up to date")
			result.Stats.Skipped++
			p.Linef("")
			return
		}
		p.Colorf(cliutil.Yellow, "LICENSE.md differs from standard")
		exists = true
	} else {
		p.Colorf(cliutil.Yellow, "LICENSE.md not found")
	}

	if e.ApplyLicenses {
		action := "create"
		if exists {
			action = "update"
		}
		p.Colorf(cliutil.Green, "✓ Would %s LICENSE.md", action)
		result.Stats.Success++
	}
	p.Linef("")
}

// fileIssue creates the pinned violations issue, or refreshes the
// existing one's body and reopens it if it was closed.
func (e *Enforcer) fileIssue(ctx context.Context, name string, messages []string, runID string) error {
	repo := e.org() + "/" + name
	body := issueBody(messages, runID)

	number, state, found, err := e.GitHub.FindIssue(ctx, repo, issueTitle)
	if err != nil {
		return err
	}

	if found {
		if err := e.GitHub.EditIssueBody(ctx, repo, number, body); err != nil {
			return err
		}
		if strings.EqualFold(state, "CLOSED") {
			if err := e.GitHub.ReopenIssue(ctx, repo, number); err != nil {
				return err
			}
		}
		return e.GitHub.PinIssue(ctx, repo, number)
	}

	number, err = e.GitHub.CreateIssue(ctx, repo, issueTitle, body)
	if err != nil {
		return err
	}
	return e.GitHub.PinIssue(ctx, repo, number)
}

func (e *Enforcer) printSummary(p *cliutil.Printer, result *Result) {
	p.Linef(banner)
	p.Linef("  SUMMARY")
	p.Linef(banner)
	p.Linef("Total repositories: %d", result.Total)

	if e.CheckLicenses || e.ApplyLicenses {
		if e.ApplyLicenses {
			p.Colorf(cliutil.Green, "Successfully updated: %d", result.Stats.Success)
			p.Colorf(cliutil.Yellow, "Skipped (already up to date): %d", result.Stats.Skipped)
			p.Colorf(cliutil.Red, "Failed: %d", result.Stats.Failed)
		} else {
			p.Colorf(cliutil.Green, "Already up to date: %d", result.Stats.Skipped)
			p.Colorf(cliutil.Yellow, "Need updates: %d", result.Total-result.Stats.Skipped)
		}
	}

	if e.CheckNaming || e.FixNaming {
		p.Colorf(cliutil.Yellow, "Repositories with naming issues: %d", result.Stats.NamingIssues)
		if result.Stats.NamingIssues > 0 {
			p.Colorf(cliutil.Blue, "  Use --fix-repo-naming to rename them")
		}
	}

	p.Linef(banner)
}

func (e *Enforcer) org() string {
	if e.Org == "" {
		return DefaultOrg
	}
	return e.Org
}

func (e *Enforcer) printer() *cliutil.Printer {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	return &cliutil.Printer{Out: out, Color: e.Color}
}

func (e *Enforcer) logger() policy.Logger {
	if e.Logger == nil {
		return policy.NopLogger{}
	}
	return e.Logger
}
