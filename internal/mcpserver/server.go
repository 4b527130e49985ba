// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes convtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/OpenAEC-Foundation/convtools"
)

const serverInstructions = `convtools MCP server — checks identifiers against the OpenAEC Foundation naming conventions, converts between case styles, and inspects the conventions policy.

Configuration: All defaults are configurable via CONVTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CONVTOOLS_POLICY_FILE — local conventions YAML; disables cache/fetch when set
- CONVTOOLS_POLICY_REPO (default: OpenAEC-Foundation/conventions) — repository holding the policy
- CONVTOOLS_POLICY_PATH (default: conventions.yaml) — path of the policy within the repository
- CONVTOOLS_CACHE_PATH — override the cached policy location
- CONVTOOLS_NO_FETCH (default: false) — never fetch; serve from cache or policy file only
- CONVTOOLS_FETCH_TIMEOUT (default: 30s) — timeout for one fetch through the gh CLI

The policy is loaded lazily on first tool use: a readable cache is served as-is, otherwise the policy is fetched via the gh CLI and cached. Use policy_refresh to force a re-fetch.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "convtools", Version: convtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_name",
		Description: "Check an identifier against an explicit case style (kebab-case, snake_case, camelCase, PascalCase, or a style defined by the policy). Returns validity and the list of issues, including a suggested rename when one can be computed.",
	}, handleCheckName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_repository",
		Description: "Check a repository name against the organization's repository naming convention.",
	}, handleCheckRepository)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_directory",
		Description: "Check a directory name against the organization's directory naming convention.",
	}, handleCheckDirectory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_language_element",
		Description: "Check a language element name (function, class, constant, variable, file) against the convention the policy defines for that language and element.",
	}, handleCheckLanguageElement)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_name",
		Description: "Convert an identifier to the given case style. Names with more than 3 words are collapsed to an initialism before rendering.",
	}, handleSuggestName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize_name",
		Description: "Split an identifier into its lowercase semantic words, handling kebab-case, snake_case, camelCase, PascalCase, and embedded acronyms.",
	}, handleTokenizeName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "policy_show",
		Description: "Show the effective conventions policy as YAML, along with where it was loaded from (cache, fetched, or a local file).",
	}, handlePolicyShow)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "policy_refresh",
		Description: "Re-fetch the conventions policy from GitHub, bypassing the local cache, and report the refreshed cache location.",
	}, handlePolicyRefresh)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
