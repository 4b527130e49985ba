package checker

import (
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// Option is a function that configures a Checker.
type Option func(*checkerConfig) error

// checkerConfig holds configuration collected from options.
type checkerConfig struct {
	policy *policy.Document
	logger policy.Logger
}

// applyOptions applies option functions and fills in defaults.
func applyOptions(opts ...Option) (*checkerConfig, error) {
	cfg := &checkerConfig{
		logger: policy.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithPolicy supplies the conventions document. A nil document leaves the
// Checker running on built-in patterns alone, with no category or
// language conventions defined.
func WithPolicy(doc *policy.Document) Option {
	return func(cfg *checkerConfig) error {
		cfg.policy = doc
		return nil
	}
}

// WithLogger sets the structured logger.
// Default: policy.NopLogger.
func WithLogger(logger policy.Logger) Option {
	return func(cfg *checkerConfig) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}
