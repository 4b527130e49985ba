package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/OpenAEC-Foundation/convtools/casing"
	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	Format string
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools tokenize [flags] <name> [name...]\n\n")
		cliutil.Writef(fs.Output(), "Split identifiers into their lowercase semantic words.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools tokenize OpenPDFStudio\n")
		cliutil.Writef(fs.Output(), "  convtools tokenize repo_conventions_enforcer my-repo-name\n")
		cliutil.Writef(fs.Output(), "  convtools tokenize --format json HTTPServer\n")
	}

	return fs, flags
}

type tokenizeReport struct {
	Name  string   `json:"name" yaml:"name"`
	Words []string `json:"words" yaml:"words"`
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("tokenize command requires at least one name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	reports := make([]tokenizeReport, 0, fs.NArg())
	for _, name := range fs.Args() {
		words, err := casing.Tokenize(name)
		if err != nil {
			return err
		}
		reports = append(reports, tokenizeReport{Name: name, Words: words})
	}

	if flags.Format != FormatText {
		return OutputStructured(reports, flags.Format)
	}
	for _, report := range reports {
		cliutil.Writef(os.Stdout, "%s: %s\n", report.Name, strings.Join(report.Words, " "))
	}
	return nil
}
