package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/OpenAEC-Foundation/convtools/policy"
)

type policyShowInput struct{}

type policyShowOutput struct {
	Source string `json:"source"`
	Policy string `json:"policy"`
}

func handlePolicyShow(ctx context.Context, _ *mcp.CallToolRequest, _ policyShowInput) (*mcp.CallToolResult, policyShowOutput, error) {
	doc, source, err := state.policyDocument(ctx)
	if err != nil {
		return errResult(err), policyShowOutput{}, nil
	}
	data, err := policy.Marshal(doc)
	if err != nil {
		return errResult(err), policyShowOutput{}, nil
	}
	return nil, policyShowOutput{
		Source: string(source),
		Policy: string(data),
	}, nil
}

type policyRefreshInput struct{}

type policyRefreshOutput struct {
	Source    string `json:"source"`
	CachePath string `json:"cache_path,omitempty"`
}

func handlePolicyRefresh(ctx context.Context, _ *mcp.CallToolRequest, _ policyRefreshInput) (*mcp.CallToolResult, policyRefreshOutput, error) {
	_, source, cachePath, err := state.refresh(ctx)
	if err != nil {
		return errResult(err), policyRefreshOutput{}, nil
	}
	return nil, policyRefreshOutput{
		Source:    string(source),
		CachePath: cachePath,
	}, nil
}
