package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ToolName prefixes every diagnostic line.
const ToolName = "temple"

// Printer writes single-line diagnostics to a stream, styling the tool
// prefix when the stream is a colour terminal.
type Printer struct {
	w         io.Writer
	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if !ColorEnabled(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:         w,
		errStyle:  renderer.NewStyle().Foreground(ErrorColor).Bold(true),
		warnStyle: renderer.NewStyle().Foreground(WarningColor).Bold(true),
	}
}

// Error prints "temple: msg".
func (p *Printer) Error(msg string) {
	p.line(p.errStyle, msg)
}

// Warning prints "temple: warning: msg".
func (p *Printer) Warning(msg string) {
	p.line(p.warnStyle, "warning: "+msg)
}

// Plain prints text verbatim, such as command usage.
func (p *Printer) Plain(text string) {
	_, _ = fmt.Fprint(p.w, text)
}

func (p *Printer) line(prefix lipgloss.Style, msg string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", prefix.Render(ToolName+":"), msg)
}

// ColorEnabled reports whether w is a terminal that accepts colour.
// NO_COLOR disables colour regardless of the terminal.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).Profile != termenv.Ascii
}
