package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
	"github.com/OpenAEC-Foundation/convtools/policy"
)

// PolicyFlags contains flags for the policy command
type PolicyFlags struct {
	Show       bool
	Refresh    bool
	CachePath  string
	PolicyFile string
	Format     string
}

// SetupPolicyFlags creates and configures a FlagSet for the policy command.
func SetupPolicyFlags() (*flag.FlagSet, *PolicyFlags) {
	fs := flag.NewFlagSet("policy", flag.ContinueOnError)
	flags := &PolicyFlags{}

	fs.BoolVar(&flags.Show, "show", false, "print the effective conventions policy (default action)")
	fs.BoolVar(&flags.Refresh, "refresh", false, "re-fetch the policy from GitHub, bypassing the cache")
	fs.StringVar(&flags.CachePath, "cache-path", "", "override the cached policy location")
	fs.StringVar(&flags.PolicyFile, "policy", "", "local conventions YAML (skips cache/fetch)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format for --show: yaml or json")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools policy [flags]\n\n")
		cliutil.Writef(fs.Output(), "Show or refresh the conventions policy.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools policy --show\n")
		cliutil.Writef(fs.Output(), "  convtools policy --show --format json\n")
		cliutil.Writef(fs.Output(), "  convtools policy --refresh\n")
		cliutil.Writef(fs.Output(), "  convtools policy --show --policy conventions.yaml\n")
	}

	return fs, flags
}

// HandlePolicy executes the policy command
func HandlePolicy(args []string) error {
	fs, flags := SetupPolicyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("policy command takes no positional arguments")
	}
	if flags.Refresh && flags.PolicyFile != "" {
		return fmt.Errorf("--refresh does not apply to a local --policy file")
	}
	if flags.Format != FormatYAML && flags.Format != FormatJSON {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatYAML, FormatJSON)
	}
	if !flags.Refresh {
		flags.Show = true
	}

	ctx := context.Background()

	if flags.PolicyFile != "" {
		doc, err := policy.LoadFile(flags.PolicyFile)
		if err != nil {
			return err
		}
		return showPolicy(doc, policy.SourceFile, flags.Format)
	}

	loader := policy.NewLoader()
	if flags.CachePath != "" {
		loader.CachePath = flags.CachePath
	}

	var (
		doc *policy.Document
		err error
	)
	if flags.Refresh {
		doc, err = loader.Refresh(ctx)
	} else {
		doc, err = loader.Load(ctx)
	}
	if err != nil {
		return err
	}

	if flags.Refresh {
		cliutil.Writef(os.Stderr, "✓ Policy refreshed\n")
		cliutil.Writef(os.Stderr, "Cache: %s\n", loader.CachePath)
		if !flags.Show {
			return nil
		}
	}
	return showPolicy(doc, loader.Source, flags.Format)
}

func showPolicy(doc *policy.Document, source policy.Source, format string) error {
	cliutil.Writef(os.Stderr, "Source: %s\n\n", source)
	if format == FormatJSON {
		return OutputStructured(doc, FormatJSON)
	}
	data, err := policy.Marshal(doc)
	if err != nil {
		return err
	}
	cliutil.Writef(os.Stdout, "%s", data)
	return nil
}
