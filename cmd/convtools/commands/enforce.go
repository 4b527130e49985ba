package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenAEC-Foundation/convtools/enforcer"
	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
)

// EnforceFlags contains flags for the enforce command
type EnforceFlags struct {
	Org         string
	Naming      bool
	FixNaming   bool
	Licenses    bool
	FixLicenses bool
	LicenseFile string
	SingleRepo  string
	NoIssues    bool
	Yes         bool
	NoColor     bool
	PolicyFile  string
	NoFetch     bool
}

// SetupEnforceFlags creates and configures a FlagSet for the enforce command.
func SetupEnforceFlags() (*flag.FlagSet, *EnforceFlags) {
	fs := flag.NewFlagSet("enforce", flag.ContinueOnError)
	flags := &EnforceFlags{}

	fs.StringVar(&flags.Org, "org", enforcer.DefaultOrg, "GitHub organization to audit")
	fs.BoolVar(&flags.Naming, "naming", false, "check repository naming conventions")
	fs.BoolVar(&flags.FixNaming, "fix-naming", false, "report the rename each violating repository would get (CAUTION!)")
	fs.BoolVar(&flags.Licenses, "licenses", false, "check license status without making changes")
	fs.BoolVar(&flags.FixLicenses, "fix-licenses", false, "report the LICENSE.md updates that would be applied")
	fs.StringVar(&flags.LicenseFile, "license-file", "LICENSE.md", "canonical license file to compare against")
	fs.StringVar(&flags.SingleRepo, "single-repo", "", "check only this repository")
	fs.BoolVar(&flags.NoIssues, "no-issues", false, "do not file or refresh GitHub issues for violations")
	fs.BoolVar(&flags.Yes, "yes", false, "skip the confirmation prompt for fix modes")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable ANSI colors in output")
	fs.StringVar(&flags.PolicyFile, "policy", "", "local conventions YAML (skips cache/fetch)")
	fs.BoolVar(&flags.NoFetch, "no-fetch", false, "never fetch the policy; use the cache or --policy only")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools enforce [flags]\n\n")
		cliutil.Writef(fs.Output(), "Audit every repository in a GitHub organization against the naming\n")
		cliutil.Writef(fs.Output(), "conventions policy and the standard license file.\n\n")
		cliutil.Writef(fs.Output(), "Requires an authenticated gh CLI (gh auth login).\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools enforce --naming\n")
		cliutil.Writef(fs.Output(), "  convtools enforce --licenses --naming\n")
		cliutil.Writef(fs.Output(), "  convtools enforce --fix-licenses --license-file LICENSE.md\n")
		cliutil.Writef(fs.Output(), "  convtools enforce --naming --single-repo RepoCleaner\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Fix modes never modify repositories; they report what would change\n")
		cliutil.Writef(fs.Output(), "  - Naming violations file a pinned issue unless --no-issues is set\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Audit completed\n")
		cliutil.Writef(fs.Output(), "  1    At least one repository action failed\n")
	}

	return fs, flags
}

// HandleEnforce executes the enforce command
func HandleEnforce(args []string) error {
	return handleEnforce(args, os.Stdin, os.Stdout)
}

func handleEnforce(args []string, in io.Reader, out io.Writer) error {
	fs, flags := SetupEnforceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("enforce command takes no positional arguments")
	}
	if err := validateEnforceFlags(flags); err != nil {
		return err
	}

	printer := &cliutil.Printer{Out: out, Color: !flags.NoColor}

	if (flags.FixNaming || flags.FixLicenses) && !flags.Yes {
		if !confirmFix(flags, printer, in) {
			printer.Colorf(cliutil.Yellow, "Aborted.")
			return nil
		}
		printer.Linef("")
	}

	ctx := context.Background()
	c, err := newChecker(ctx, flags.PolicyFile, flags.NoFetch)
	if err != nil {
		return err
	}
	printer.Colorf(cliutil.Green, "✓ Conventions loaded")

	e := enforcer.New(c)
	e.Org = flags.Org
	e.CheckNaming = flags.Naming || flags.FixNaming
	e.FixNaming = flags.FixNaming
	e.CheckLicenses = flags.Licenses || flags.FixLicenses
	e.ApplyLicenses = flags.FixLicenses
	e.SingleRepo = flags.SingleRepo
	e.FileIssues = (flags.Naming || flags.FixNaming) && !flags.NoIssues
	e.Out = out
	e.Color = !flags.NoColor

	if e.CheckLicenses {
		content, readErr := os.ReadFile(flags.LicenseFile)
		if readErr != nil {
			return fmt.Errorf("reading license file: %w", readErr)
		}
		e.LicenseContent = content
	}

	printHeader(printer, flags)

	result, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if result.Stats.Failed > 0 {
		return ExitCodeError(1)
	}
	return nil
}

// validateEnforceFlags rejects conflicting and missing action flags.
func validateEnforceFlags(flags *EnforceFlags) error {
	if !flags.Naming && !flags.FixNaming && !flags.Licenses && !flags.FixLicenses {
		return fmt.Errorf("no action specified: use --naming or --licenses to check, --fix-naming or --fix-licenses to report fixes")
	}
	if flags.Naming && flags.FixNaming {
		return fmt.Errorf("cannot use both --naming and --fix-naming")
	}
	if flags.Licenses && flags.FixLicenses {
		return fmt.Errorf("cannot use both --licenses and --fix-licenses")
	}
	return nil
}

// confirmFix warns about fix modes and waits for the user to type "yes".
func confirmFix(flags *EnforceFlags, p *cliutil.Printer, in io.Reader) bool {
	p.Linef("")
	p.Colorf(cliutil.Red, "⚠  ==============================================")
	p.Colorf(cliutil.Red, "⚠  WARNING: YOU ARE ABOUT TO MODIFY REPOSITORIES")
	p.Colorf(cliutil.Red, "⚠  ==============================================")
	if flags.FixLicenses {
		p.Colorf(cliutil.Yellow, "   This will modify LICENSE.md files")
	}
	if flags.FixNaming {
		p.Colorf(cliutil.Yellow, "   This will RENAME repositories")
	}
	p.Linef("")
	cliutil.Writef(p.Out, "Type 'yes' to continue: ")

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(response), "yes")
}

func printHeader(p *cliutil.Printer, flags *EnforceFlags) {
	p.Linef("================================================")
	p.Linef("  Repository Management Tool")
	p.Linef("  Organization: %s", flags.Org)
	p.Linef("  Actions:")
	if flags.Licenses || flags.FixLicenses {
		action := "CHECK"
		if flags.FixLicenses {
			action = "FIX"
		}
		p.Linef("    - Licenses: %s", action)
	}
	if flags.Naming || flags.FixNaming {
		action := "CHECK"
		if flags.FixNaming {
			action = "FIX"
		}
		p.Linef("    - Naming: %s", action)
	}
	p.Linef("================================================")
	p.Linef("")
}
