package diag

import (
	"fmt"

	"quill/lit"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Literal parse errors, one per lit.ErrorKind.
	LitEmpty                       Code = 1001
	LitInvalidLiteral              Code = 1002
	LitInvalidStringStart          Code = 1003
	LitInvalidByteStringStart      Code = 1004
	LitUnterminatedString          Code = 1005
	LitUnterminatedRawString       Code = 1006
	LitUnterminatedEscape          Code = 1007
	LitUnterminatedUnicodeEscape   Code = 1008
	LitUnexpectedChar              Code = 1009
	LitIsolatedCr                  Code = 1010
	LitNonAsciiInByteLiteral       Code = 1011
	LitNonAsciiXEscape             Code = 1012
	LitUnknownEscape               Code = 1013
	LitInvalidXEscape              Code = 1014
	LitUnicodeEscapeWithoutBrace   Code = 1015
	LitUnicodeEscapeInByteLiteral  Code = 1016
	LitInvalidStartOfUnicodeEscape Code = 1017
	LitNonHexDigitInUnicodeEscape  Code = 1018
	LitTooManyDigitInUnicodeEscape Code = 1019
	LitInvalidUnicodeEscapeChar    Code = 1020

	// IO and input-format errors from the checking layers.
	IOLoadFileError Code = 4001
)

var kindCodes = map[lit.ErrorKind]Code{
	lit.Empty:                         LitEmpty,
	lit.InvalidLiteral:                LitInvalidLiteral,
	lit.InvalidStringLiteralStart:     LitInvalidStringStart,
	lit.InvalidByteStringLiteralStart: LitInvalidByteStringStart,
	lit.UnterminatedString:            LitUnterminatedString,
	lit.UnterminatedRawString:         LitUnterminatedRawString,
	lit.UnterminatedEscape:            LitUnterminatedEscape,
	lit.UnterminatedUnicodeEscape:     LitUnterminatedUnicodeEscape,
	lit.UnexpectedChar:                LitUnexpectedChar,
	lit.IsolatedCr:                    LitIsolatedCr,
	lit.NonAsciiInByteLiteral:         LitNonAsciiInByteLiteral,
	lit.NonAsciiXEscape:               LitNonAsciiXEscape,
	lit.UnknownEscape:                 LitUnknownEscape,
	lit.InvalidXEscape:                LitInvalidXEscape,
	lit.UnicodeEscapeWithoutBrace:     LitUnicodeEscapeWithoutBrace,
	lit.UnicodeEscapeInByteLiteral:    LitUnicodeEscapeInByteLiteral,
	lit.InvalidStartOfUnicodeEscape:   LitInvalidStartOfUnicodeEscape,
	lit.NonHexDigitInUnicodeEscape:    LitNonHexDigitInUnicodeEscape,
	lit.TooManyDigitInUnicodeEscape:   LitTooManyDigitInUnicodeEscape,
	lit.InvalidUnicodeEscapeChar:      LitInvalidUnicodeEscapeChar,
}

// CodeOf maps a literal error discriminant to its diagnostic code.
func CodeOf(kind lit.ErrorKind) Code {
	if c, ok := kindCodes[kind]; ok {
		return c
	}
	return UnknownCode
}

var codeDescription = map[Code]string{
	UnknownCode:                    "unknown error",
	LitEmpty:                       "empty literal input",
	LitInvalidLiteral:              "invalid literal",
	LitInvalidStringStart:          "invalid start of string literal",
	LitInvalidByteStringStart:      "invalid start of byte string literal",
	LitUnterminatedString:          "unterminated string literal",
	LitUnterminatedRawString:       "unterminated raw string literal",
	LitUnterminatedEscape:          "unterminated escape sequence",
	LitUnterminatedUnicodeEscape:   "unterminated unicode escape",
	LitUnexpectedChar:              "unexpected character after literal",
	LitIsolatedCr:                  "isolated carriage return",
	LitNonAsciiInByteLiteral:       "non-ASCII byte in byte string literal",
	LitNonAsciiXEscape:             "non-ASCII \\x escape in string literal",
	LitUnknownEscape:               "unknown escape sequence",
	LitInvalidXEscape:              "invalid \\x escape",
	LitUnicodeEscapeWithoutBrace:   "unicode escape without brace",
	LitUnicodeEscapeInByteLiteral:  "unicode escape in byte string literal",
	LitInvalidStartOfUnicodeEscape: "invalid start of unicode escape",
	LitNonHexDigitInUnicodeEscape:  "non-hex digit in unicode escape",
	LitTooManyDigitInUnicodeEscape: "too many digits in unicode escape",
	LitInvalidUnicodeEscapeChar:    "invalid unicode scalar in escape",
	IOLoadFileError:                "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LIT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
