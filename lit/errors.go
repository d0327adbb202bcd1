package lit

import "fmt"

// ErrorKind discriminates the first violation a parse ran into. The set is
// closed: callers may exhaustively switch on it.
type ErrorKind uint8

const (
	// Empty means the input span had zero length.
	Empty ErrorKind = iota
	// InvalidLiteral means no literal kind matched the input at all.
	InvalidLiteral
	// InvalidStringLiteralStart means the input was parsed as a string
	// literal but does not start with `"` or `r`.
	InvalidStringLiteralStart
	// InvalidByteStringLiteralStart means the input was parsed as a byte
	// string literal but does not start with `b"` or `br`.
	InvalidByteStringLiteralStart
	UnterminatedString
	UnterminatedRawString
	UnterminatedEscape
	UnterminatedUnicodeEscape
	// UnexpectedChar means bytes remain after the literal's closing
	// delimiter; the span covers everything past the close.
	UnexpectedChar
	// IsolatedCr is a carriage return not immediately followed by a line
	// feed. Never legal inside a string or byte string literal.
	IsolatedCr
	NonAsciiInByteLiteral
	NonAsciiXEscape
	UnknownEscape
	InvalidXEscape
	UnicodeEscapeWithoutBrace
	UnicodeEscapeInByteLiteral
	InvalidStartOfUnicodeEscape
	NonHexDigitInUnicodeEscape
	TooManyDigitInUnicodeEscape
	InvalidUnicodeEscapeChar
)

func (k ErrorKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case InvalidLiteral:
		return "InvalidLiteral"
	case InvalidStringLiteralStart:
		return "InvalidStringLiteralStart"
	case InvalidByteStringLiteralStart:
		return "InvalidByteStringLiteralStart"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedRawString:
		return "UnterminatedRawString"
	case UnterminatedEscape:
		return "UnterminatedEscape"
	case UnterminatedUnicodeEscape:
		return "UnterminatedUnicodeEscape"
	case UnexpectedChar:
		return "UnexpectedChar"
	case IsolatedCr:
		return "IsolatedCr"
	case NonAsciiInByteLiteral:
		return "NonAsciiInByteLiteral"
	case NonAsciiXEscape:
		return "NonAsciiXEscape"
	case UnknownEscape:
		return "UnknownEscape"
	case InvalidXEscape:
		return "InvalidXEscape"
	case UnicodeEscapeWithoutBrace:
		return "UnicodeEscapeWithoutBrace"
	case UnicodeEscapeInByteLiteral:
		return "UnicodeEscapeInByteLiteral"
	case InvalidStartOfUnicodeEscape:
		return "InvalidStartOfUnicodeEscape"
	case NonHexDigitInUnicodeEscape:
		return "NonHexDigitInUnicodeEscape"
	case TooManyDigitInUnicodeEscape:
		return "TooManyDigitInUnicodeEscape"
	case InvalidUnicodeEscapeChar:
		return "InvalidUnicodeEscapeChar"
	}
	return "Unknown"
}

// Message returns the human-readable description of the error kind.
func (k ErrorKind) Message() string {
	switch k {
	case Empty:
		return "input is empty"
	case InvalidLiteral:
		return "invalid literal"
	case InvalidStringLiteralStart:
		return "string literal must start with `\"` or `r`"
	case InvalidByteStringLiteralStart:
		return "byte string literal must start with `b\"` or `br`"
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedRawString:
		return "unterminated raw string literal"
	case UnterminatedEscape:
		return "input ends before escape sequence is complete"
	case UnterminatedUnicodeEscape:
		return "unterminated unicode escape, missing `}`"
	case UnexpectedChar:
		return "unexpected character after literal"
	case IsolatedCr:
		return "carriage return not followed by line feed"
	case NonAsciiInByteLiteral:
		return "non-ASCII byte in byte string literal"
	case NonAsciiXEscape:
		return "`\\x` escape above 0x7F in string literal"
	case UnknownEscape:
		return "unknown escape sequence"
	case InvalidXEscape:
		return "invalid hex digit in `\\x` escape"
	case UnicodeEscapeWithoutBrace:
		return "`\\u` escape without opening brace"
	case UnicodeEscapeInByteLiteral:
		return "unicode escape in byte string literal"
	case InvalidStartOfUnicodeEscape:
		return "invalid start of unicode escape"
	case NonHexDigitInUnicodeEscape:
		return "non-hex digit in unicode escape"
	case TooManyDigitInUnicodeEscape:
		return "more than six digits in unicode escape"
	case InvalidUnicodeEscapeChar:
		return "unicode escape is not a valid scalar value"
	}
	return "unknown error"
}

// Error reports the first violation found while parsing a literal. Its
// position, when present, is relative to the start of the input span;
// single offending bytes are reported as length-1 spans.
type Error struct {
	kind    ErrorKind
	span    Span
	hasSpan bool
}

// newErr builds an Error without position information.
func newErr(kind ErrorKind) *Error {
	return &Error{kind: kind}
}

// errAt builds an Error pointing at the single byte at offset.
func errAt(offset int, kind ErrorKind) *Error {
	return &Error{kind: kind, span: Span{Start: u32(offset), End: u32(offset + 1)}, hasSpan: true}
}

// errSpan builds an Error covering the half-open range [start, end).
func errSpan(start, end int, kind ErrorKind) *Error {
	return &Error{kind: kind, span: Span{Start: u32(start), End: u32(end)}, hasSpan: true}
}

// Kind returns the error discriminant.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Span returns the byte range the error points at, if it has one.
func (e *Error) Span() (Span, bool) {
	return e.span, e.hasSpan
}

func (e *Error) Error() string {
	if e.hasSpan {
		return fmt.Sprintf("%s at %s", e.kind.Message(), e.span)
	}
	return e.kind.Message()
}
