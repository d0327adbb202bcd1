package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
)

// Pretty formats diagnostics in a human-readable way. Walks bag.Items()
// (call bag.Sort() beforehand for deterministic order). For each
// diagnostic prints
//
//	<path>:<line>: <SEV> [<CODE>]: <message>
//
// followed, when ShowLiteral is set, by the literal itself and a ^~~~
// underline under the error span. Underline columns are display columns,
// not bytes: wide runes inside the literal must not skew the caret.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	caretColor := color.New(color.FgRed)
	for _, c := range sevColor {
		if !opts.Color {
			c.DisableColor()
		}
	}
	if !opts.Color {
		caretColor.DisableColor()
	}

	for _, d := range bag.Items() {
		loc := displayPath(d.Path, opts.PathMode)
		if loc == "" {
			loc = "<input>"
		}
		if d.Line > 0 {
			loc = fmt.Sprintf("%s:%d", loc, d.Line)
		}
		sev := sevColor[d.Severity].Sprint(d.Severity.String())
		fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, sev, d.Code.ID(), d.Message)

		if opts.ShowLiteral && d.Literal != "" {
			fmt.Fprintf(w, "  %s\n", preview(d.Literal, opts.Width))
			if d.HasSpan {
				fmt.Fprintf(w, "  %s\n", caretColor.Sprint(underline(d.Literal, d.Span.Start, d.Span.End)))
			}
		}
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}

// preview clamps the echoed literal to at most width display columns.
func preview(literal string, width uint8) string {
	if width == 0 {
		return literal
	}
	return runewidth.Truncate(literal, int(width), "…")
}

// underline builds a ^~~~ marker aligned under the byte range
// [start, end) of literal, measured in display columns.
func underline(literal string, start, end uint32) string {
	s := int(start)
	e := int(end)
	if s > len(literal) {
		s = len(literal)
	}
	if e > len(literal) {
		e = len(literal)
	}
	lead := runewidth.StringWidth(literal[:s])
	span := runewidth.StringWidth(literal[s:e])
	if span < 1 {
		span = 1
	}
	return strings.Repeat(" ", lead) + "^" + strings.Repeat("~", span-1)
}
