package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/OpenAEC-Foundation/convtools/checker"
	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Style      string
	Category   string
	Language   string
	Element    string
	PolicyFile string
	NoFetch    bool
	Format     string
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Style, "style", "", "case style to check against (kebab-case, snake_case, camelCase, PascalCase, or a policy-defined style)")
	fs.StringVar(&flags.Category, "category", "", "policy category to check against: repository or directory")
	fs.StringVar(&flags.Language, "language", "", "language whose conventions apply (use with --element)")
	fs.StringVar(&flags.Element, "element", "", "element kind: function, class, constant, variable, file (use with --language)")
	fs.StringVar(&flags.PolicyFile, "policy", "", "local conventions YAML (skips cache/fetch)")
	fs.BoolVar(&flags.NoFetch, "no-fetch", false, "never fetch the policy; use the cache or --policy only")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools check [flags] <name> [name...]\n\n")
		cliutil.Writef(fs.Output(), "Check names against the naming conventions policy.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools check --style kebab-case MyRepoName\n")
		cliutil.Writef(fs.Output(), "  convtools check --category repository openaec-tools RepoCleaner\n")
		cliutil.Writef(fs.Output(), "  convtools check --language python --element function load_config\n")
		cliutil.Writef(fs.Output(), "  convtools check --policy conventions.yaml --style snake_case my_name\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All names conform\n")
		cliutil.Writef(fs.Output(), "  1    At least one name does not conform\n")
	}

	return fs, flags
}

type checkReport struct {
	Name   string   `json:"name" yaml:"name"`
	Style  string   `json:"style,omitempty" yaml:"style,omitempty"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("check command requires at least one name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := validateCheckMode(flags); err != nil {
		fs.Usage()
		return err
	}

	ctx := context.Background()
	c, err := newChecker(ctx, flags.PolicyFile, flags.NoFetch)
	if err != nil {
		return err
	}

	reports := make([]checkReport, 0, fs.NArg())
	allValid := true
	for _, name := range fs.Args() {
		result, checkErr := checkOne(c, flags, name)
		if checkErr != nil {
			return checkErr
		}
		reports = append(reports, checkReport{
			Name:   result.Name,
			Style:  result.Style,
			Valid:  result.Valid,
			Issues: result.Messages(),
		})
		if !result.Valid {
			allValid = false
		}
	}

	if flags.Format != FormatText {
		if err := OutputStructured(reports, flags.Format); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			if report.Valid {
				cliutil.Writef(os.Stdout, "✓ %s\n", report.Name)
				continue
			}
			cliutil.Writef(os.Stdout, "✗ %s\n", report.Name)
			for _, issue := range report.Issues {
				cliutil.Writef(os.Stdout, "  - %s\n", issue)
			}
		}
	}

	if !allValid {
		return ExitCodeError(1)
	}
	return nil
}

// validateCheckMode ensures exactly one of the check modes is selected.
func validateCheckMode(flags *CheckFlags) error {
	modes := 0
	if flags.Style != "" {
		modes++
	}
	if flags.Category != "" {
		modes++
	}
	if flags.Language != "" || flags.Element != "" {
		if flags.Language == "" || flags.Element == "" {
			return fmt.Errorf("--language and --element must be used together")
		}
		modes++
	}
	if modes != 1 {
		return fmt.Errorf("exactly one of --style, --category, or --language/--element is required")
	}
	if flags.Category != "" && flags.Category != "repository" && flags.Category != "directory" {
		return fmt.Errorf("invalid category '%s'. Valid categories: repository, directory", flags.Category)
	}
	return nil
}

func checkOne(c *checker.Checker, flags *CheckFlags, name string) (*checker.Result, error) {
	switch {
	case flags.Style != "":
		return c.Check(name, flags.Style)
	case flags.Category == "repository":
		return c.CheckRepository(name)
	case flags.Category == "directory":
		return c.CheckDirectory(name)
	default:
		return c.CheckLanguageElement(name, flags.Language, flags.Element)
	}
}
