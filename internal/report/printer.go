// Package report renders tool output for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fieldWidth = 15

// Printer writes plain lines; headings and warnings are styled when out is a terminal.
type Printer struct {
	out     io.Writer
	heading lipgloss.Style
	warning lipgloss.Style
}

func New(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		heading: renderer.NewStyle().Bold(true),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.out, p.heading.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.out, p.warning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Indented prints each line prefixed with spaces.
func (p *Printer) Indented(spaces int, lines ...string) {
	prefix := strings.Repeat(" ", spaces)
	for _, line := range lines {
		fmt.Fprintln(p.out, prefix+line)
	}
}

// Field prints a right aligned label and its value.
func (p *Printer) Field(label string, value any) {
	fmt.Fprintf(p.out, "%*s: %v\n", fieldWidth, label, value)
}

// Count prints a count in a five character column followed by its label.
func (p *Printer) Count(n int, label string) {
	fmt.Fprintf(p.out, "%5d %s\n", n, label)
}
