package lit

// mode selects which escapes and value ranges are legal while decoding.
// Text content may carry arbitrary scalar values; byte content is
// restricted to 7-bit values and has no unicode escapes.
type mode uint8

const (
	textMode mode = iota
	byteMode
)

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// scanEscape decodes one escape sequence. in starts at the backslash and
// ends just before the literal's closing quote; offset is the backslash
// position within the whole input, used for error spans. Returns the
// decoded value and how many input bytes the escape consumed. In byteMode
// the value always fits a byte.
func scanEscape[B Buffer](in B, offset int, m mode) (rune, int, *Error) {
	if len(in) < 2 {
		// A bare trailing backslash cannot start any escape; the literal
		// itself is unterminated.
		return 0, 0, newErr(UnterminatedString)
	}

	switch in[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '0':
		return 0, 2, nil
	case '\\':
		return '\\', 2, nil
	case '\'':
		return '\'', 2, nil
	case '"':
		return '"', 2, nil
	case 'x':
		if len(in) < 4 {
			return 0, 0, errSpan(offset, offset+len(in), UnterminatedEscape)
		}
		hi := hexDigit(in[2])
		lo := hexDigit(in[3])
		if hi < 0 || lo < 0 {
			return 0, 0, errSpan(offset, offset+4, InvalidXEscape)
		}
		v := hi<<4 | lo
		if m == textMode && v > 0x7F {
			return 0, 0, errSpan(offset, offset+4, NonAsciiXEscape)
		}
		return rune(v), 4, nil
	case 'u':
		if m == byteMode {
			return 0, 0, errSpan(offset, offset+2, UnicodeEscapeInByteLiteral)
		}
		return scanUnicodeEscape(in, offset)
	default:
		return 0, 0, errSpan(offset, offset+2, UnknownEscape)
	}
}

// scanUnicodeEscape decodes `\u{...}`: one to six hex digits, `_`
// separators allowed after the first digit, value must be a unicode
// scalar (no surrogates, at most 0x10FFFF).
func scanUnicodeEscape[B Buffer](in B, offset int) (rune, int, *Error) {
	if len(in) < 3 || in[2] != '{' {
		return 0, 0, errSpan(offset, offset+2, UnicodeEscapeWithoutBrace)
	}

	closing := -1
	for i := 3; i < len(in); i++ {
		if in[i] == '}' {
			closing = i
			break
		}
	}
	if closing < 0 {
		return 0, 0, errSpan(offset, offset+len(in), UnterminatedUnicodeEscape)
	}

	v := 0
	digits := 0
	for i := 3; i < closing; i++ {
		if in[i] == '_' {
			if i == 3 {
				return 0, 0, errAt(offset+3, InvalidStartOfUnicodeEscape)
			}
			continue
		}
		d := hexDigit(in[i])
		if d < 0 {
			return 0, 0, errAt(offset+i, NonHexDigitInUnicodeEscape)
		}
		if digits == 6 {
			return 0, 0, errAt(offset+i, TooManyDigitInUnicodeEscape)
		}
		digits++
		v = v<<4 | d
	}

	if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, 0, errSpan(offset, offset+closing, InvalidUnicodeEscapeChar)
	}
	return rune(v), closing + 1, nil
}
