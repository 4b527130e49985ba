// Package cliutil holds small helpers for command output: formatted
// writes that never abort a run, and the ANSI palette the enforcer
// paints its audit lines with.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w. Command handlers report through their return
// values, so a failed write is noted on stderr instead of propagated.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
