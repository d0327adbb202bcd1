package lit

import (
	"strings"
	"unicode/utf8"
)

// scanEscaped walks the interior of a non-raw literal, from start (just
// past the opening quote) up to the closing quote. Returns the decoded
// buffer, or nil if no escape fired and the value equals the interior
// verbatim.
func scanEscaped[B Buffer](input B, start int, m mode) ([]byte, *Error) {
	var buf []byte
	last := start // end of the verbatim run already copied into buf
	i := start
	for i < len(input)-1 {
		switch b := input[i]; {
		case b == '\\':
			// The escape input stops before the closing quote, so a
			// backslash cannot eat the literal's terminator.
			v, n, err := scanEscape(input[i:len(input)-1], i, m)
			if err != nil {
				return nil, err
			}
			if buf == nil {
				buf = make([]byte, 0, len(input))
			}
			buf = appendBytes(buf, input[last:i])
			buf = appendValue(buf, v, m)
			i += n
			last = i
		case b == '\r':
			if input[i+1] != '\n' {
				return nil, errAt(i, IsolatedCr)
			}
			i++
		case b == '"':
			// A quote before the last byte means the caller's span covers
			// more than one literal.
			return nil, errSpan(i+1, len(input), UnexpectedChar)
		case m == byteMode && b >= 0x80:
			return nil, errAt(i, NonAsciiInByteLiteral)
		default:
			i++
		}
	}

	if len(input) == start || input[len(input)-1] != '"' {
		return nil, newErr(UnterminatedString)
	}
	if buf != nil {
		buf = appendBytes(buf, input[last:len(input)-1])
	}
	return buf, nil
}

func appendValue(buf []byte, v rune, m mode) []byte {
	if m == byteMode {
		return append(buf, byte(v))
	}
	return utf8.AppendRune(buf, v)
}

// scanRaw validates a raw literal: start points just past the `r` or `br`
// marker. The fence length is caller-chosen and unbounded; the close must
// be a quote followed by exactly that many hashes, so shorter embedded
// quote-hash runs never terminate the interior early.
func scanRaw[B Buffer](input B, start int, m mode) (int, *Error) {
	n := 0
	for start+n < len(input) && input[start+n] == '#' {
		n++
	}
	if start+n >= len(input) || input[start+n] != '"' {
		return 0, newErr(InvalidLiteral)
	}
	fence := strings.Repeat("#", n)
	inner := start + n + 1

	closing := -1
	for i := inner; i < len(input); i++ {
		b := input[i]
		if b == '"' && hasPrefix(input[i+1:], fence) {
			closing = i
			break
		}
		switch m {
		case textMode:
			if b == '\r' && (i+1 >= len(input) || input[i+1] != '\n') {
				return 0, errAt(i, IsolatedCr)
			}
		case byteMode:
			if b >= 0x80 {
				return 0, errAt(i, NonAsciiInByteLiteral)
			}
		}
	}
	if closing < 0 {
		return 0, newErr(UnterminatedRawString)
	}
	if closing+n != len(input)-1 {
		return 0, errSpan(closing+n+1, len(input), UnexpectedChar)
	}
	return n, nil
}
