// Package commands provides CLI command handlers for convtools.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/OpenAEC-Foundation/convtools/checker"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExitCodeError tells main to exit with a specific code after the
// command has already written its output.
type ExitCodeError int

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// errFetchDisabled is returned when --no-fetch blocks the only way to
// obtain the policy.
var errFetchDisabled = errors.New("fetching disabled (--no-fetch) and no usable local policy")

type noFetcher struct{}

func (noFetcher) FetchContent(context.Context, string, string) ([]byte, error) {
	return nil, errFetchDisabled
}

// loadPolicy resolves the conventions document: an explicit file when
// given, otherwise the cache/fetch pipeline.
func loadPolicy(ctx context.Context, policyFile string, noFetch bool) (*policy.Document, error) {
	if policyFile != "" {
		return policy.LoadFile(policyFile)
	}
	loader := policy.NewLoader()
	if noFetch {
		loader.Fetcher = noFetcher{}
	}
	return loader.Load(ctx)
}

// newChecker builds a Checker over the resolved policy.
func newChecker(ctx context.Context, policyFile string, noFetch bool) (*checker.Checker, error) {
	doc, err := loadPolicy(ctx, policyFile, noFetch)
	if err != nil {
		return nil, err
	}
	return checker.New(checker.WithPolicy(doc))
}
