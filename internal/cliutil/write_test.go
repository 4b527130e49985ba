package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "checked %d names in %s", 7, "repo")
	assert.Equal(t, "checked 7 names in repo", buf.String())
}

func TestWritefNoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "plain line")
	assert.Equal(t, "plain line", buf.String())
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestWritefSwallowsWriteError(t *testing.T) {
	// Output failures must not panic or abort the caller.
	Writef(failWriter{}, "dropped")
}

func TestPrinterLinef(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Linef("✓ %s", "my-repo")
	assert.Equal(t, "✓ my-repo\n", buf.String())
}

func TestPrinterColorf(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Color: true}
	p.Colorf(Green, "✓ %s", "my-repo")
	assert.Equal(t, Green+"✓ my-repo"+Reset+"\n", buf.String())
}

func TestPrinterColorfPlainWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Colorf(Red, "✗ %s", "BadRepo")
	assert.Equal(t, "✗ BadRepo\n", buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}
