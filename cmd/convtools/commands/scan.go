package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/OpenAEC-Foundation/convtools/internal/cliutil"
	"github.com/OpenAEC-Foundation/convtools/walker"
)

// ScanFlags contains flags for the scan command
type ScanFlags struct {
	Ignore     globList
	Languages  bool
	Watch      bool
	PolicyFile string
	NoFetch    bool
	Format     string
}

// globList collects repeatable --ignore flags.
type globList []string

func (g *globList) String() string {
	return fmt.Sprint([]string(*g))
}

func (g *globList) Set(value string) error {
	*g = append(*g, value)
	return nil
}

// SetupScanFlags creates and configures a FlagSet for the scan command.
func SetupScanFlags() (*flag.FlagSet, *ScanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &ScanFlags{}

	fs.Var(&flags.Ignore, "ignore", "glob pattern to skip, relative to the root (repeatable)")
	fs.BoolVar(&flags.Languages, "languages", false, "parse source files and check their declarations")
	fs.BoolVar(&flags.Watch, "watch", false, "re-scan whenever files under the root change")
	fs.StringVar(&flags.PolicyFile, "policy", "", "local conventions YAML (skips cache/fetch)")
	fs.BoolVar(&flags.NoFetch, "no-fetch", false, "never fetch the policy; use the cache or --policy only")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: convtools scan [flags] [root]\n\n")
		cliutil.Writef(fs.Output(), "Scan a source tree for naming convention violations.\n\n")
		cliutil.Writef(fs.Output(), "Directory and file names are always checked; with --languages the\n")
		cliutil.Writef(fs.Output(), "declarations inside Go, Python, JavaScript, and TypeScript files are too.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  convtools scan\n")
		cliutil.Writef(fs.Output(), "  convtools scan --languages ./src\n")
		cliutil.Writef(fs.Output(), "  convtools scan --ignore 'testdata/**' --ignore '**/*.gen.go' .\n")
		cliutil.Writef(fs.Output(), "  convtools scan --watch --languages .\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No violations found\n")
		cliutil.Writef(fs.Output(), "  1    Violations found\n")
	}

	return fs, flags
}

// HandleScan executes the scan command
func HandleScan(args []string) error {
	fs, flags := SetupScanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("scan command takes at most one root directory")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	root := "."
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}

	ctx := context.Background()
	c, err := newChecker(ctx, flags.PolicyFile, flags.NoFetch)
	if err != nil {
		return err
	}

	w := walker.New(c)
	w.Languages = flags.Languages
	w.IgnoreGlobs = append(w.IgnoreGlobs, flags.Ignore...)

	if flags.Watch {
		return watchAndReport(ctx, w, root, flags.Format)
	}

	report, err := w.Walk(ctx, root)
	if err != nil {
		return err
	}
	if err := outputReport(report, flags.Format); err != nil {
		return err
	}
	if len(report.Findings) > 0 {
		return ExitCodeError(1)
	}
	return nil
}

// watchAndReport runs scans until interrupted, printing each report.
func watchAndReport(ctx context.Context, w *walker.Walker, root, format string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	watcher, err := walker.NewWatcher(w, root, 0)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Stop() }()

	if err := watcher.Start(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case report := <-watcher.Reports():
			if report == nil {
				return nil
			}
			if err := outputReport(report, format); err != nil {
				return err
			}
		}
	}
}

func outputReport(report *walker.Report, format string) error {
	if format != FormatText {
		return OutputStructured(report, format)
	}

	for _, finding := range report.Findings {
		location := finding.Path
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.Path, finding.Line)
		}
		cliutil.Writef(os.Stdout, "✗ %s %s '%s'\n", location, finding.Element, finding.Name)
		for _, issue := range finding.Issues {
			cliutil.Writef(os.Stdout, "  - %s\n", issue.Message)
		}
	}

	cliutil.Writef(os.Stdout, "\nChecked %d names: %d findings, %d skipped\n",
		report.Checked, len(report.Findings), report.Skipped)
	return nil
}
