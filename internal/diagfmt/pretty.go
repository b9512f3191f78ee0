package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"swizzy/internal/diag"
)

// palette holds one style per visual role. Every style carries its own
// enable/disable state so rendering never depends on color.NoColor.
type palette struct {
	header    *color.Color
	dim       *color.Color
	warning   *color.Color
	errorSev  *color.Color
	glyphErr  *color.Color
	glyphWarn *color.Color
}

func newPalette(enabled bool) palette {
	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		header:    style(color.Underline),
		dim:       style(color.Faint),
		warning:   style(color.FgYellow),
		errorSev:  style(color.FgRed),
		glyphErr:  style(color.FgRed, color.Bold),
		glyphWarn: style(color.FgYellow, color.Bold),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	if s == diag.SevWarning {
		return p.warning
	}
	return p.errorSev
}

// Pretty renders groups as a stylish report and writes it to w in one call.
// For every group it prints:
//
//	<path>
//	  <path>:<line>[:<col>]  <severity>  <message>
//	                         rule: <rule id>
//
// followed by a blank line, and finally "✖ N problem(s)".
// Nothing is written when groups is empty.
func Pretty(w io.Writer, groups []diag.FileGroup, opts PrettyOpts) (diag.Summary, error) {
	text, summary := PrettyString(groups, opts)
	if text == "" {
		return summary, nil
	}
	if _, err := io.WriteString(w, text); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}
	return summary, nil
}

// PrettyString renders groups into a string without doing any IO.
func PrettyString(groups []diag.FileGroup, opts PrettyOpts) (string, diag.Summary) {
	summary := diag.Summarize(groups)
	if summary.Total == 0 {
		return "", summary
	}
	p := newPalette(opts.Color)

	var b strings.Builder
	for _, g := range groups {
		writeGroup(&b, p, g)
		b.WriteByte('\n')
	}
	writeSummary(&b, p, summary)
	return b.String(), summary
}

type row struct {
	loc      string
	severity diag.Severity
	message  string
	rule     string
}

func writeGroup(b *strings.Builder, p palette, g diag.FileGroup) {
	b.WriteString(p.header.Sprint(g.File))
	b.WriteByte('\n')

	rows := make([]row, 0, len(g.Records))
	locWidth, sevWidth := 0, 0
	for _, r := range g.Records {
		rw := row{
			loc:      Location(r),
			severity: r.Severity,
			message:  TrimMessage(r.Message),
			rule:     r.RuleID,
		}
		locWidth = max(locWidth, runewidth.StringWidth(rw.loc))
		sevWidth = max(sevWidth, runewidth.StringWidth(rw.severity.String()))
		rows = append(rows, rw)
	}

	for _, rw := range rows {
		sev := rw.severity.String()
		b.WriteString("  ")
		b.WriteString(p.dim.Sprint(rw.loc))
		b.WriteString(padding(rw.loc, locWidth))
		b.WriteString("  ")
		b.WriteString(p.severity(rw.severity).Sprint(sev))
		if rw.message != "" {
			b.WriteString(padding(sev, sevWidth))
			b.WriteString("  ")
			b.WriteString(rw.message)
		}
		b.WriteByte('\n')

		if rw.rule != "" {
			b.WriteString(strings.Repeat(" ", 2+locWidth+2))
			b.WriteString(p.dim.Sprint("rule:"))
			b.WriteByte(' ')
			b.WriteString(p.dim.Sprint(rw.rule))
			b.WriteByte('\n')
		}
	}
}

func writeSummary(b *strings.Builder, p palette, s diag.Summary) {
	glyph := p.glyphWarn
	if s.HasErrors() {
		glyph = p.glyphErr
	}
	b.WriteString(glyph.Sprint(SummaryGlyph))
	fmt.Fprintf(b, " %d %s\n", s.Total, Plural(s.Total, "problem"))
}

// Location formats "<file>:<line>[:<col>]". An absent line prints as
// LineFallback; an absent column is left out.
func Location(r diag.Record) string {
	loc := fmt.Sprintf("%s:%d", r.File, r.Line.Or(LineFallback))
	if r.Column.Known {
		loc = fmt.Sprintf("%s:%d", loc, r.Column.Value)
	}
	return loc
}

// TrimMessage removes trailing periods from a linter message.
func TrimMessage(msg string) string {
	return strings.TrimRight(msg, ".")
}

// Plural appends "s" to word unless n is exactly one.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func padding(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
