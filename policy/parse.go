package policy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/OpenAEC-Foundation/convtools/converrors"
)

// Parse parses YAML bytes into a conventions Document. Invalid YAML
// returns a PolicyError wrapping the yaml error.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &converrors.PolicyError{
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	return &doc, nil
}

// LoadFile reads and parses a conventions document from a local file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &converrors.PolicyError{
			Source:  path,
			Message: "reading conventions file",
			Cause:   err,
		}
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("policy: parsing %s: %w", path, err)
	}
	return doc, nil
}

// Marshal serializes a Document back to YAML. Used to show the effective
// policy to users.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("policy: marshaling document: %w", err)
	}
	return data, nil
}
