// Package printer writes colored status lines for the CLI.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes to an output stream and an error stream. Colors follow
// fatih/color rules unless disabled with SetColor.
type Printer struct {
	out io.Writer
	err io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
}

// New returns a printer writing to out and errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{
		out:    out,
		err:    errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
	}
}

// SetColor forces colors on or off for this printer.
func (p *Printer) SetColor(on bool) {
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Success prints a success message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	p.green.Fprint(p.out, msg)
}

// Info prints an informational message in the default color.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a warning message in yellow to the error stream.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	p.yellow.Fprint(p.err, msg)
}

// Step prints a step message with emphasis.
func (p *Printer) Step(format string, a ...any) {
	p.cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Error prints a title, an explanation and suggestions to the error stream and
// returns an error carrying the title, for cobra.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	p.red.Fprintf(p.err, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.err, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.err, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.err, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.err, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.err, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}

// Println prints a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}
