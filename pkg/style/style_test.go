package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Error("ctx.json: no such file or directory")
	p.Warning("reading context from the terminal")
	p.Plain("Usage:\n  temple [flags] TEMPLATE\n")

	assert.Equal(t,
		"temple: ctx.json: no such file or directory\n"+
			"temple: warning: reading context from the terminal\n"+
			"Usage:\n  temple [flags] TEMPLATE\n",
		buf.String())
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
