package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
	"github.com/OpenAEC-Foundation/convtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP server over stdio. Blocks until the client disconnects\n")
		cliutil.Writef(fs.Output(), "or the process is interrupted.\n\n")
		cliutil.Writef(fs.Output(), "Configuration is via CONVTOOLS_* environment variables:\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_POLICY_FILE     local conventions YAML (skips cache/fetch)\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_POLICY_REPO     repository holding the policy\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_POLICY_PATH     policy path within the repository\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_CACHE_PATH      cached policy location\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_NO_FETCH        never fetch; cache or policy file only\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_FETCH_TIMEOUT   timeout for one fetch (default 30s)\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools mcp\n")
		cliutil.Writef(fs.Output(), "  CONVTOOLS_POLICY_FILE=conventions.yaml convtools mcp\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return mcpserver.Run(ctx)
}
