package diagfmt

import (
	"encoding/json"
	"io"

	"quill/internal/diag"
)

type SpanOutput struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type DiagOutput struct {
	Path     string      `json:"path,omitempty"`
	Line     int         `json:"line,omitempty"`
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Span     *SpanOutput `json:"span,omitempty"`
	Literal  string      `json:"literal,omitempty"`
}

// FormatDiagsJSON writes the bag as a JSON array, one object per
// diagnostic.
func FormatDiagsJSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	output := make([]DiagOutput, 0, len(items))
	for _, d := range items {
		out := DiagOutput{
			Path:     displayPath(d.Path, opts.PathMode),
			Line:     d.Line,
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if d.HasSpan {
			out.Span = &SpanOutput{Start: d.Span.Start, End: d.Span.End}
		}
		if opts.IncludeLiteral {
			out.Literal = d.Literal
		}
		output = append(output, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
