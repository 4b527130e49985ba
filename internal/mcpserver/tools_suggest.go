package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/OpenAEC-Foundation/convtools/casing"
)

type suggestInput struct {
	Name  string `json:"name"  jsonschema:"The identifier to convert"`
	Style string `json:"style" jsonschema:"The target case style: kebab-case, snake_case, camelCase, or PascalCase"`
}

type suggestOutput struct {
	Name      string `json:"name"`
	Style     string `json:"style"`
	Suggested string `json:"suggested"`
}

// handleSuggestName converts without consulting the policy, so it works
// even when the policy cannot be loaded.
func handleSuggestName(_ context.Context, _ *mcp.CallToolRequest, input suggestInput) (*mcp.CallToolResult, suggestOutput, error) {
	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), suggestOutput{}, nil
	}
	suggested, err := casing.Convert(input.Name, style)
	if err != nil {
		return errResult(err), suggestOutput{}, nil
	}
	return nil, suggestOutput{
		Name:      input.Name,
		Style:     input.Style,
		Suggested: suggested,
	}, nil
}

type tokenizeInput struct {
	Name string `json:"name" jsonschema:"The identifier to split into words"`
}

type tokenizeOutput struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

func handleTokenizeName(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	words, err := casing.Tokenize(input.Name)
	if err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}
	return nil, tokenizeOutput{Name: input.Name, Words: words}, nil
}
