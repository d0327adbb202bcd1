package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quill/internal/driver"
)

// FormatRecordsPretty prints successfully parsed literals, one per line:
//
//	  3: string     "fox"          => "fox"
//	  7: bytestring br#"a"#  (r#1) => "a"
func FormatRecordsPretty(w io.Writer, records []driver.Record) error {
	for _, r := range records {
		var loc string
		if r.Line > 0 {
			loc = fmt.Sprintf("%3d: ", r.Line)
		}

		var fence string
		if r.Hashes != nil {
			fence = fmt.Sprintf("  (r#%d)", *r.Hashes)
		}

		var value string
		switch r.Kind {
		case "bool":
			value = r.Value
		case "bytestring":
			value = fmt.Sprintf("%q", []byte(r.Value))
		default:
			value = fmt.Sprintf("%q", r.Value)
		}

		fmt.Fprintf(w, "%s%-10s %s%s => %s\n", loc, r.Kind, r.Raw, fence, value)
	}
	return nil
}

// FormatRecordsJSON writes records as a JSON array.
func FormatRecordsJSON(w io.Writer, records []driver.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if records == nil {
		records = []driver.Record{}
	}
	return enc.Encode(records)
}

// Summary renders a one-line digest of a finished check run.
func Summary(files, literals, errors int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "checked %d literal", literals)
	if literals != 1 {
		b.WriteString("s")
	}
	fmt.Fprintf(&b, " in %d file", files)
	if files != 1 {
		b.WriteString("s")
	}
	if errors > 0 {
		fmt.Fprintf(&b, ", %d error", errors)
		if errors != 1 {
			b.WriteString("s")
		}
	}
	return b.String()
}
