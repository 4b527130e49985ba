package cliutil

import "io"

// ANSI color codes for terminal output.
const (
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Red    = "\033[0;31m"
	Blue   = "\033[0;34m"
	Reset  = "\033[0m"
)

// Printer writes lines to a terminal, optionally wrapped in ANSI colors.
type Printer struct {
	Out   io.Writer
	Color bool
}

// Linef writes one uncolored formatted line.
func (p *Printer) Linef(format string, args ...any) {
	Writef(p.Out, format+"\n", args...)
}

// Colorf writes one formatted line wrapped in the given color code.
// When colors are disabled the line is written plain.
func (p *Printer) Colorf(color, format string, args ...any) {
	if !p.Color {
		Writef(p.Out, format+"\n", args...)
		return
	}
	Writef(p.Out, "%s", color)
	Writef(p.Out, format, args...)
	Writef(p.Out, Reset+"\n")
}
