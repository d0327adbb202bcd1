package lit

// StringLit is a parsed string literal, plain (`"foo"`) or raw
// (`r#"foo"#`). The decoded value is computed once at parse time; both
// accessors are O(1) afterwards.
type StringLit[B Buffer] struct {
	raw       B
	value     string
	decoded   bool
	numHashes uint32
	isRaw     bool
}

// ParseString parses input as a string literal. The input must cover
// exactly one literal: quotes, the `r` marker and hash fences included.
func ParseString[B Buffer](input B) (StringLit[B], error) {
	if len(input) == 0 {
		return StringLit[B]{}, newErr(Empty)
	}
	if input[0] != '"' && input[0] != 'r' {
		return StringLit[B]{}, newErr(InvalidStringLiteralStart)
	}
	return parseStringImpl(input)
}

// parseStringImpl expects input to start with `"` or `r`.
func parseStringImpl[B Buffer](input B) (StringLit[B], error) {
	if input[0] == 'r' {
		n, err := scanRaw(input, 1, textMode)
		if err != nil {
			return StringLit[B]{}, err
		}
		return StringLit[B]{raw: input, isRaw: true, numHashes: u32(n)}, nil
	}

	buf, err := scanEscaped(input, 1, textMode)
	if err != nil {
		return StringLit[B]{}, err
	}
	l := StringLit[B]{raw: input}
	if buf != nil {
		l.value = string(buf)
		l.decoded = true
	}
	return l, nil
}

// Raw returns the original span, exactly as passed to ParseString.
func (l StringLit[B]) Raw() B {
	return l.raw
}

// Value returns the string this literal represents, with all escapes
// decoded. When no escape was present the interior of raw is returned
// as-is (zero-copy for string buffers).
func (l StringLit[B]) Value() string {
	if l.decoded {
		return l.value
	}
	a, b := l.innerRange()
	return string(l.raw[a:b])
}

// IntoValue returns the value in the literal's own storage: the buffer
// built during decoding when escapes were present, else a slice of raw.
// It never re-decodes.
func (l StringLit[B]) IntoValue() B {
	if l.decoded {
		return B(l.value)
	}
	a, b := l.innerRange()
	return l.raw[a:b]
}

// IsRaw reports whether this is a raw string literal.
func (l StringLit[B]) IsRaw() bool {
	return l.isRaw
}

// NumHashes returns the hash fence length of a raw string literal. The
// second return is false for non-raw literals.
func (l StringLit[B]) NumHashes() (uint32, bool) {
	return l.numHashes, l.isRaw
}

// innerRange is the byte range of raw between the delimiters: the same
// fence length is stripped from both ends, quotes always stripped.
func (l StringLit[B]) innerRange() (int, int) {
	if l.isRaw {
		n := int(l.numHashes)
		return 1 + n + 1, len(l.raw) - n - 1
	}
	return 1, len(l.raw) - 1
}

func (l StringLit[B]) String() string {
	return string(l.raw)
}
