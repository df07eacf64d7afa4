package tui

import (
	"fmt"
	"io"
)

// Printer writes styled status lines, one per external tool or step.
type Printer struct {
	styles *StyleSet
	out    io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(styles *StyleSet, out io.Writer) *Printer {
	return &Printer{styles: styles, out: out}
}

// OK prints a success line: a green check, the subject, and a dim detail.
func (p *Printer) OK(subject, detail string) {
	fmt.Fprintf(p.out, "  %s %s %s\n",
		p.styles.SuccessTxt.Render("✓"),
		p.styles.PrimaryTxt.Render(subject),
		p.styles.DimTxt.Render(detail))
}

// Fail prints a failure line.
func (p *Printer) Fail(subject, detail string) {
	fmt.Fprintf(p.out, "  %s %s %s\n",
		p.styles.ErrorTxt.Render("✗"),
		p.styles.PrimaryTxt.Render(subject),
		p.styles.DimTxt.Render(detail))
}

// Warn prints a warning line.
func (p *Printer) Warn(subject, detail string) {
	fmt.Fprintf(p.out, "  %s %s %s\n",
		p.styles.WarningTxt.Render("!"),
		p.styles.PrimaryTxt.Render(subject),
		p.styles.DimTxt.Render(detail))
}

// Title prints a section heading.
func (p *Printer) Title(text string) {
	fmt.Fprintf(p.out, "%s\n", p.styles.Title.Render(text))
}
