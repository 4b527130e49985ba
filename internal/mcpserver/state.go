package mcpserver

import (
	"context"
	"errors"
	"sync"

	"github.com/OpenAEC-Foundation/convtools/checker"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// errNoFetch is returned when fetching is disabled and nothing local
// can serve the policy.
var errNoFetch = errors.New("fetching disabled (CONVTOOLS_NO_FETCH) and no usable local policy")

// noFetcher satisfies policy.ContentFetcher by always refusing.
type noFetcher struct{}

func (noFetcher) FetchContent(context.Context, string, string) ([]byte, error) {
	return nil, errNoFetch
}

// policyState lazily loads the conventions policy on first tool use and
// shares the resulting checker across all tools.
type policyState struct {
	config *serverConfig

	mu      sync.Mutex
	loader  *policy.Loader
	checker *checker.Checker
	source  policy.Source
}

// state backs all registered tools. Tests swap it out.
var state = newPolicyState(cfg)

func newPolicyState(config *serverConfig) *policyState {
	return &policyState{config: config}
}

// newLoader builds the loader the state's config describes.
func (s *policyState) newLoader() *policy.Loader {
	l := policy.NewLoader()
	if s.config.PolicyRepo != "" {
		l.Repo = s.config.PolicyRepo
	}
	if s.config.PolicyPath != "" {
		l.FilePath = s.config.PolicyPath
	}
	if s.config.CachePath != "" {
		l.CachePath = s.config.CachePath
	}
	if s.config.NoFetch {
		l.Fetcher = noFetcher{}
	}
	return l
}

// ensure loads the policy once and returns the shared checker.
func (s *policyState) ensure(ctx context.Context) (*checker.Checker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checker != nil {
		return s.checker, nil
	}
	return s.load(ctx, false)
}

// refresh re-fetches the policy, bypassing the cache, and swaps the
// shared checker. With a local policy file it simply re-reads the file.
func (s *policyState) refresh(ctx context.Context) (*checker.Checker, policy.Source, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, true)
	if err != nil {
		return nil, "", "", err
	}
	cachePath := ""
	if s.loader != nil {
		cachePath = s.loader.CachePath
	}
	return c, s.source, cachePath, nil
}

// load must be called with s.mu held.
func (s *policyState) load(ctx context.Context, force bool) (*checker.Checker, error) {
	var (
		doc *policy.Document
		err error
	)

	if s.config.PolicyFile != "" {
		doc, err = policy.LoadFile(s.config.PolicyFile)
		s.source = policy.SourceFile
	} else {
		if s.loader == nil {
			s.loader = s.newLoader()
		}
		fetchCtx, cancel := s.fetchContext(ctx)
		defer cancel()
		if force {
			doc, err = s.loader.Refresh(fetchCtx)
		} else {
			doc, err = s.loader.Load(fetchCtx)
		}
		s.source = s.loader.Source
	}
	if err != nil {
		return nil, err
	}

	c, err := checker.New(checker.WithPolicy(doc))
	if err != nil {
		return nil, err
	}
	s.checker = c
	return c, nil
}

func (s *policyState) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.FetchTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.config.FetchTimeout)
}

// policyDocument returns the loaded policy and its source for policy_show.
func (s *policyState) policyDocument(ctx context.Context) (*policy.Document, policy.Source, error) {
	c, err := s.ensure(ctx)
	if err != nil {
		return nil, "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Policy(), s.source, nil
}
