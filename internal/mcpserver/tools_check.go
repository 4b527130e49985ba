package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/OpenAEC-Foundation/convtools/checker"
)

type checkNameInput struct {
	Name  string `json:"name"  jsonschema:"The identifier to check"`
	Style string `json:"style" jsonschema:"The case style to check against, e.g. kebab-case or snake_case"`
}

type checkScopedInput struct {
	Name string `json:"name" jsonschema:"The identifier to check"`
}

type checkElementInput struct {
	Name     string `json:"name"     jsonschema:"The identifier to check"`
	Language string `json:"language" jsonschema:"The language the element belongs to, e.g. python or go"`
	Element  string `json:"element"  jsonschema:"The element kind: function, class, constant, variable, or file"`
}

type toolIssue struct {
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Suggested string `json:"suggested,omitempty"`
}

type checkOutput struct {
	Name   string      `json:"name"`
	Style  string      `json:"style,omitempty"`
	Valid  bool        `json:"valid"`
	Issues []toolIssue `json:"issues,omitempty"`
}

func checkResultOutput(result *checker.Result) checkOutput {
	out := checkOutput{
		Name:  result.Name,
		Style: result.Style,
		Valid: result.Valid,
	}
	for _, issue := range result.Issues {
		out.Issues = append(out.Issues, toolIssue{
			Message:   issue.Message,
			Severity:  issue.Severity.String(),
			Suggested: issue.Suggestion(),
		})
	}
	return out
}

func handleCheckName(ctx context.Context, _ *mcp.CallToolRequest, input checkNameInput) (*mcp.CallToolResult, checkOutput, error) {
	c, err := state.ensure(ctx)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	result, err := c.Check(input.Name, input.Style)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	return nil, checkResultOutput(result), nil
}

func handleCheckRepository(ctx context.Context, _ *mcp.CallToolRequest, input checkScopedInput) (*mcp.CallToolResult, checkOutput, error) {
	c, err := state.ensure(ctx)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	result, err := c.CheckRepository(input.Name)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	return nil, checkResultOutput(result), nil
}

func handleCheckDirectory(ctx context.Context, _ *mcp.CallToolRequest, input checkScopedInput) (*mcp.CallToolResult, checkOutput, error) {
	c, err := state.ensure(ctx)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	result, err := c.CheckDirectory(input.Name)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	return nil, checkResultOutput(result), nil
}

func handleCheckLanguageElement(ctx context.Context, _ *mcp.CallToolRequest, input checkElementInput) (*mcp.CallToolResult, checkOutput, error) {
	c, err := state.ensure(ctx)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	result, err := c.CheckLanguageElement(input.Name, input.Language, input.Element)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	return nil, checkResultOutput(result), nil
}
