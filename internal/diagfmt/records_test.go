package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/driver"
	"quill/lit"
)

func TestFormatRecordsPretty(t *testing.T) {
	hashes := uint32(1)
	records := []driver.Record{
		{Line: 3, Kind: "string", Raw: `"fox"`, Value: "fox"},
		{Line: 7, Kind: "bytestring", Raw: `br#"a"#`, Value: "a", Hashes: &hashes},
		{Line: 9, Kind: "bool", Raw: "true", Value: "true"},
	}

	var buf bytes.Buffer
	if err := FormatRecordsPretty(&buf, records); err != nil {
		t.Fatalf("FormatRecordsPretty: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		`  3: string     "fox" => "fox"`,
		`  7: bytestring br#"a"#  (r#1) => "a"`,
		`  9: bool       true => true`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestFormatRecordsPrettyNoLine(t *testing.T) {
	records := []driver.Record{
		{Kind: "string", Raw: `"hi"`, Value: "hi"},
	}
	var buf bytes.Buffer
	if err := FormatRecordsPretty(&buf, records); err != nil {
		t.Fatalf("FormatRecordsPretty: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "string") {
		t.Errorf("record without line should not print a location, got %q", got)
	}
}

func TestFormatRecordsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatRecordsJSON(&buf, nil); err != nil {
		t.Fatalf("FormatRecordsJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("nil records should encode as [], got %q", buf.String())
	}
}

func TestFormatDiagsJSON(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LitInvalidXEscape,
		Message:  "invalid \\x escape",
		Path:     "a.lit",
		Line:     2,
		Literal:  `"\xg1"`,
		Span:     lit.Span{Start: 1, End: 5},
		HasSpan:  true,
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LitUnterminatedString,
		Message:  "unterminated string literal",
		Path:     "a.lit",
		Line:     4,
		Literal:  `"abc`,
	})

	var buf bytes.Buffer
	opts := JSONOpts{IncludeLiteral: true}
	if err := FormatDiagsJSON(&buf, bag, opts); err != nil {
		t.Fatalf("FormatDiagsJSON: %v", err)
	}

	var out []DiagOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Code != "LIT1014" {
		t.Errorf("out[0].Code = %q, want LIT1014", out[0].Code)
	}
	if out[0].Span == nil || out[0].Span.Start != 1 || out[0].Span.End != 5 {
		t.Errorf("out[0].Span = %+v, want 1..5", out[0].Span)
	}
	if out[0].Literal != `"\xg1"` {
		t.Errorf("out[0].Literal = %q", out[0].Literal)
	}
	if out[1].Span != nil {
		t.Errorf("out[1].Span = %+v, want nil", out[1].Span)
	}
}

func TestFormatDiagsJSONTruncation(t *testing.T) {
	bag := diag.NewBag(10)
	for i := 0; i < 5; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LitEmpty,
			Path:     "a.lit",
			Line:     i + 1,
		})
	}

	var buf bytes.Buffer
	if err := FormatDiagsJSON(&buf, bag, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("FormatDiagsJSON: %v", err)
	}
	var out []DiagOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 (truncated)", len(out))
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		files, literals, errors int
		want                    string
	}{
		{1, 1, 0, "checked 1 literal in 1 file"},
		{2, 10, 0, "checked 10 literals in 2 files"},
		{1, 3, 1, "checked 3 literals in 1 file, 1 error"},
		{3, 40, 7, "checked 40 literals in 3 files, 7 errors"},
	}
	for _, tc := range cases {
		if got := Summary(tc.files, tc.literals, tc.errors); got != tc.want {
			t.Errorf("Summary(%d, %d, %d) = %q, want %q", tc.files, tc.literals, tc.errors, got, tc.want)
		}
	}
}

func TestFormatScalars(t *testing.T) {
	var buf bytes.Buffer
	FormatScalars(&buf, "aé")
	output := buf.String()

	if !strings.Contains(output, "0: U+0061 'a'") {
		t.Errorf("Expected scalar listing for 'a', got:\n%s", output)
	}
	if !strings.Contains(output, "1: U+00E9 'é'") {
		t.Errorf("Expected scalar listing for é, got:\n%s", output)
	}
	if strings.Contains(output, "not NFC-normalized") {
		t.Errorf("NFC value should not be flagged, got:\n%s", output)
	}
}

func TestFormatScalarsNFCNote(t *testing.T) {
	var buf bytes.Buffer
	// e с отдельным комбинируемым акцентом (NFD-форма)
	FormatScalars(&buf, "é")
	if !strings.Contains(buf.String(), "not NFC-normalized") {
		t.Errorf("NFD value should be flagged, got:\n%s", buf.String())
	}
}
