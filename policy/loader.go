package policy

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/OpenAEC-Foundation/convtools/converrors"
	"github.com/OpenAEC-Foundation/convtools/internal/fileutil"
	"github.com/OpenAEC-Foundation/convtools/internal/ghcli"
)

const (
	// DefaultRepo is the canonical conventions repository.
	DefaultRepo = "OpenAEC-Foundation/conventions"

	// DefaultFilePath is the conventions document path within the repo.
	DefaultFilePath = "conventions.yaml"

	// cacheFileName is the cached copy's file name under the user cache dir.
	cacheFileName = "openaec-conventions.yaml"
)

// Source identifies where a loaded document came from.
type Source string

const (
	// SourceCache means the document was read from the local cache file.
	SourceCache Source = "cache"
	// SourceFetched means the document was fetched from GitHub.
	SourceFetched Source = "fetched"
	// SourceFile means the document was read from an explicit local file.
	SourceFile Source = "file"
)

// ContentFetcher fetches a file's content from a GitHub repository.
// The default implementation shells out to the authenticated gh CLI.
type ContentFetcher interface {
	FetchContent(ctx context.Context, repo, path string) ([]byte, error)
}

// Loader loads the conventions document from the local cache, falling
// back to fetching it from GitHub and caching the fetched copy.
//
// The zero value is not usable; construct with NewLoader and override
// fields before the first Load call.
type Loader struct {
	// CachePath is where the fetched document is cached.
	// Defaults to openaec-conventions.yaml under os.UserCacheDir.
	CachePath string

	// Repo is the GitHub repository holding the conventions document
	Repo string

	// FilePath is the document's path within Repo
	FilePath string

	// Fetcher fetches the document from GitHub. Defaults to a gh CLI client.
	Fetcher ContentFetcher

	// Logger receives structured logs. Defaults to NopLogger.
	Logger Logger

	// Source reports where the last successful Load or Refresh read the
	// document from.
	Source Source
}

// NewLoader creates a Loader with default cache path, repository, and
// gh-backed fetcher.
func NewLoader() *Loader {
	return &Loader{
		CachePath: DefaultCachePath(),
		Repo:      DefaultRepo,
		FilePath:  DefaultFilePath,
		Fetcher:   ghcli.New(),
		Logger:    NopLogger{},
	}
}

// DefaultCachePath returns the default location of the cached conventions
// document. Falls back to the file name alone when the user cache dir
// cannot be determined.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return cacheFileName
	}
	return filepath.Join(dir, cacheFileName)
}

// Load returns the conventions document, preferring the local cache.
//
// A cache file that exists but holds invalid YAML is a hard error telling
// the user to delete it; an unreadable cache falls through to fetching.
// A fetched document is written to the cache before parsing.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	if data, err := os.ReadFile(l.CachePath); err == nil {
		doc, parseErr := Parse(data)
		if parseErr != nil {
			return nil, &converrors.PolicyError{
				Source:  l.CachePath,
				IsCache: true,
				Message: "cached conventions file is corrupted",
				Cause:   parseErr,
				Hint:    "Delete it and try again",
			}
		}
		l.logger().Debug("conventions loaded from cache", "path", l.CachePath)
		l.Source = SourceCache
		return doc, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		l.logger().Warn("conventions cache unreadable, fetching",
			"path", l.CachePath, "error", err)
	}

	return l.fetch(ctx)
}

// Refresh fetches the conventions document from GitHub unconditionally,
// overwriting the cached copy.
func (l *Loader) Refresh(ctx context.Context) (*Document, error) {
	return l.fetch(ctx)
}

func (l *Loader) fetch(ctx context.Context) (*Document, error) {
	fetcher := l.Fetcher
	if fetcher == nil {
		fetcher = ghcli.New()
	}

	content, err := fetcher.FetchContent(ctx, l.Repo, l.FilePath)
	if err != nil {
		return nil, &converrors.PolicyError{
			Source:  l.Repo + "/" + l.FilePath,
			IsFetch: true,
			Message: "failed to fetch conventions",
			Cause:   err,
			Hint:    "Make sure gh CLI is authenticated: gh auth login",
		}
	}
	l.logger().Debug("conventions fetched", "repo", l.Repo, "path", l.FilePath)

	if err := l.writeCache(content); err != nil {
		// A failed cache write costs a re-fetch next time, nothing more.
		l.logger().Warn("writing conventions cache failed",
			"path", l.CachePath, "error", err)
	}

	doc, err := Parse(content)
	if err != nil {
		return nil, &converrors.PolicyError{
			Source:  l.Repo,
			IsFetch: true,
			Message: "conventions file is not valid YAML",
			Cause:   err,
			Hint:    "This is a bug in the conventions repository",
		}
	}
	l.Source = SourceFetched
	return doc, nil
}

func (l *Loader) writeCache(content []byte) error {
	if l.CachePath == "" {
		return nil
	}
	if err := fileutil.EnsureDir(filepath.Dir(l.CachePath)); err != nil {
		return err
	}
	return os.WriteFile(l.CachePath, content, fileutil.OwnerReadWrite)
}

func (l *Loader) logger() Logger {
	if l.Logger == nil {
		return NopLogger{}
	}
	return l.Logger
}
