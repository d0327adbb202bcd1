package diagfmt

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FormatScalars lists the scalar values of a decoded string literal, one
// line per rune with its byte offset within the value. Escapes have
// already been substituted at this point, so combining sequences entered
// via `\u{...}` show up as separate scalars; a note flags values that are
// not NFC-normalized since they often round-trip badly through other
// tools.
func FormatScalars(w io.Writer, value string) {
	off := 0
	for _, r := range value {
		fmt.Fprintf(w, "  %4d: U+%04X %q\n", off, r, r)
		off += utf8.RuneLen(r)
	}
	if !norm.NFC.IsNormalString(value) {
		fmt.Fprintln(w, "  note: value is not NFC-normalized")
	}
}
