package diag

import (
	"quill/lit"
)

// Diagnostic is one finding against one literal. Path and Line locate the
// literal in its list file; Span, when present, is a byte range within the
// literal itself.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Line     int    // 1-based line in the list file, 0 when unknown
	Literal  string // the raw literal text the finding refers to
	Span     lit.Span
	HasSpan  bool
}

// FromLitError wraps a literal parse failure with its file context.
func FromLitError(path string, line int, literal string, err *lit.Error) Diagnostic {
	d := Diagnostic{
		Severity: SevError,
		Code:     CodeOf(err.Kind()),
		Message:  err.Kind().Message(),
		Path:     path,
		Line:     line,
		Literal:  literal,
	}
	if span, ok := err.Span(); ok {
		d.Span = span
		d.HasSpan = true
	}
	return d
}
