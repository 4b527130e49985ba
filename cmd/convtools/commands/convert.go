package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/OpenAEC-Foundation/convtools/casing"
	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Style string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Style, "style", "", "target case style: kebab-case, snake_case, camelCase, PascalCase (required)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools convert --style <case> <string>\n\n")
		cliutil.Writef(fs.Output(), "Convert a string to the target case style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools convert --style camelCase \"OpenPDFStudio\"\n")
		cliutil.Writef(fs.Output(), "  convtools convert --style kebab-case MyRepoName\n")
		cliutil.Writef(fs.Output(), "  convtools convert --style snake_case open-pdf-studio\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Names of more than 3 words are collapsed to an initialism\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one string")
	}
	if flags.Style == "" {
		fs.Usage()
		return fmt.Errorf("target style is required (use --style)")
	}

	style, err := casing.ParseStyle(flags.Style)
	if err != nil {
		return err
	}
	converted, err := casing.Convert(fs.Arg(0), style)
	if err != nil {
		return err
	}

	cliutil.Writef(os.Stdout, "%s\n", converted)
	return nil
}
