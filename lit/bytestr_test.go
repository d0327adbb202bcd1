package lit_test

import (
	"bytes"
	"strings"
	"testing"

	"quill/lit"
)

func checkByteStringOK(t *testing.T, input string, want []byte, hashes int) {
	t.Helper()
	l, err := lit.ParseByteString(input)
	if err != nil {
		t.Fatalf("ParseByteString(%q) error: %v", input, err)
	}
	if got := l.Value(); !bytes.Equal(got, want) {
		t.Errorf("ParseByteString(%q).Value() = %q, want %q", input, got, want)
	}
	if got := l.IntoValue(); !bytes.Equal(got, want) {
		t.Errorf("ParseByteString(%q).IntoValue() = %q, want %q", input, got, want)
	}
	n, isRaw := l.NumHashes()
	if hashes < 0 {
		if isRaw {
			t.Errorf("ParseByteString(%q): unexpected raw literal", input)
		}
	} else {
		if !isRaw || n != uint32(hashes) {
			t.Errorf("ParseByteString(%q).NumHashes() = %d, %v, want %d, true", input, n, isRaw, hashes)
		}
	}
}

func TestByteStringSimple(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{`b""`, ""},
		{`b"a"`, "a"},
		{`b"peter"`, "peter"},
		{`b"fox says #"`, "fox says #"},
	} {
		checkByteStringOK(t, tt.input, []byte(tt.want), -1)
	}
}

func TestByteStringEscapes(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  []byte
	}{
		{`b"a\nb"`, []byte("a\nb")},
		{`b"\t\r\0"`, []byte{'\t', '\r', 0}},
		{`b"\\"`, []byte(`\`)},
		{`b"\""`, []byte(`"`)},
		{`b"\'"`, []byte("'")},
		{`b"\x41"`, []byte{0x41}},
		// Unlike text context, the full byte range is legal in \x escapes.
		{`b"\x80"`, []byte{0x80}},
		{`b"\xFf"`, []byte{0xFF}},
		{`b"a\xFF b"`, []byte{'a', 0xFF, ' ', 'b'}},
	} {
		checkByteStringOK(t, tt.input, tt.want, -1)
	}
}

func TestByteStringRaw(t *testing.T) {
	for _, tt := range []struct {
		input  string
		want   string
		hashes int
	}{
		{`br""`, "", 0},
		{`br"a"`, "a", 0},
		{`br"#"`, "#", 0},
		{`br#""#`, "", 1},
		{`br#"foo " bar"#`, `foo " bar`, 1},
		{`br##"foo"bar"##`, `foo"bar`, 2},
		{`br##"a"#"##`, `a"#`, 2},
		{`br"\n\t\x41\u{123}"`, `\n\t\x41\u{123}`, 0},
	} {
		checkByteStringOK(t, tt.input, []byte(tt.want), tt.hashes)
	}
}

func TestByteStringRawRoundTrip(t *testing.T) {
	for _, input := range []string{`br""`, `br"a"`, `br#"foo " bar"#`, `br##"foo"bar"##`} {
		l, err := lit.ParseByteString(input)
		if err != nil {
			t.Fatalf("ParseByteString(%q) error: %v", input, err)
		}
		n, ok := l.NumHashes()
		if !ok {
			t.Fatalf("ParseByteString(%q): not raw", input)
		}
		fence := strings.Repeat("#", int(n))
		rebuilt := "br" + fence + `"` + string(l.Value()) + `"` + fence
		if rebuilt != input {
			t.Errorf("round trip of %q produced %q", input, rebuilt)
		}
	}
}

func TestByteStringParseErr(t *testing.T) {
	tests := []struct {
		input string
		kind  lit.ErrorKind
		pos   string
	}{
		{``, lit.Empty, ""},
		{`b`, lit.InvalidByteStringLiteralStart, ""},
		{`bx"foo"`, lit.InvalidByteStringLiteralStart, ""},
		{`"foo"`, lit.InvalidByteStringLiteralStart, ""},

		{`b"`, lit.UnterminatedString, ""},
		{`b"cat`, lit.UnterminatedString, ""},
		{`b"\`, lit.UnterminatedString, ""},
		{`b"\"`, lit.UnterminatedString, ""},

		{`b"fox"peter`, lit.UnexpectedChar, "6-11"},
		{"b\"\r\"", lit.IsolatedCr, "2-3"},
		{"b\"fo\rx\"", lit.IsolatedCr, "4-5"},

		// Interior bytes must stay within 7 bits, escaped or raw alike.
		{`b"a😀"`, lit.NonAsciiInByteLiteral, "3-4"},
		{`b"übel"`, lit.NonAsciiInByteLiteral, "2-3"},
		{`br#"a😀"#`, lit.NonAsciiInByteLiteral, "5-6"},
		{`br"ü"`, lit.NonAsciiInByteLiteral, "3-4"},

		{`b"\u{41}"`, lit.UnicodeEscapeInByteLiteral, "2-4"},
		{`b"fox\u{1F602}"`, lit.UnicodeEscapeInByteLiteral, "5-7"},

		{`b"\a"`, lit.UnknownEscape, "2-4"},
		{`b"\x"`, lit.UnterminatedEscape, "2-4"},
		{`b"\x5"`, lit.UnterminatedEscape, "2-5"},
		{`b"\xg1"`, lit.InvalidXEscape, "2-6"},

		{`br`, lit.InvalidLiteral, ""},
		{`br#`, lit.InvalidLiteral, ""},
		{`br#x`, lit.InvalidLiteral, ""},
		{`br"foo`, lit.UnterminatedRawString, ""},
		{`br#"foo"`, lit.UnterminatedRawString, ""},
		{`br"foo"#`, lit.UnexpectedChar, "7-8"},
	}
	for _, tt := range tests {
		_, err := lit.ParseByteString(tt.input)
		checkErr(t, tt.input, err, tt.kind, tt.pos)
	}
}

// Value() of an escape-free []byte literal shares the input backing array.
func TestByteStringValueZeroCopy(t *testing.T) {
	input := []byte(`b"fox"`)
	l, err := lit.ParseByteString(input)
	if err != nil {
		t.Fatalf("ParseByteString error: %v", err)
	}
	v := l.Value()
	if !bytes.Equal(v, []byte("fox")) {
		t.Fatalf("Value() = %q", v)
	}
	if &v[0] != &input[2] {
		t.Error("Value() of an escape-free []byte literal should share the input backing array")
	}
}
