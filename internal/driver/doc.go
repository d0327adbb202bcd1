// Package driver orchestrates literal checking for the CLI: reading
// literal lists, parsing each entry through quill/lit, aggregating
// diagnostics into bags, fanning work out over files, and caching check
// results on disk. It owns no rendering; see internal/diagfmt.
//
// The input format is deliberately dumb: a literal list file (*.lit)
// carries one literal token per line, with blank lines and lines starting
// with `//` skipped. Producing such lists is the caller-side tokenization
// the lit package stays out of.
package driver
