package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/OpenAEC-Foundation/convtools"
	"github.com/OpenAEC-Foundation/convtools/cmd/convtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("convtools v%s\n", convtools.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "check":
		err = commands.HandleCheck(args)
	case "convert":
		err = commands.HandleConvert(args)
	case "tokenize":
		err = commands.HandleTokenize(args)
	case "scan":
		err = commands.HandleScan(args)
	case "enforce":
		err = commands.HandleEnforce(args)
	case "policy":
		err = commands.HandlePolicy(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		var code commands.ExitCodeError
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var knownCommands = []string{
	"check", "convert", "tokenize", "scan", "enforce", "policy", "mcp",
	"version", "help",
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, candidate := range knownCommands {
		if d := levenshtein(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`convtools - OpenAEC Foundation Naming Convention Tools

Usage:
  convtools <command> [options]

Commands:
  check       Check names against the naming conventions policy
  convert     Convert a string to a target case style
  tokenize    Split identifiers into their semantic words
  scan        Scan a source tree for naming violations
  enforce     Audit repositories in a GitHub organization
  policy      Show or refresh the conventions policy
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  convtools check --style kebab-case MyRepoName
  convtools check --category repository openaec-tools
  convtools convert --style camelCase "OpenPDFStudio"
  convtools tokenize repo_conventions_enforcer
  convtools scan --languages ./src
  convtools enforce --naming --org OpenAEC-Foundation
  convtools policy --show

Run 'convtools <command> --help' for more information on a command.`)
}
