package lit

// ByteStringLit is a parsed byte string literal, plain (`b"foo"`) or raw
// (`br#"foo"#`). Interior content is restricted to 7-bit bytes; escapes
// may still produce any byte value.
type ByteStringLit[B Buffer] struct {
	raw       B
	value     []byte // nil means no escapes: the value is the raw interior
	numHashes uint32
	isRaw     bool
}

// ParseByteString parses input as a byte string literal. The input must
// cover exactly one literal, `b` prefix included.
func ParseByteString[B Buffer](input B) (ByteStringLit[B], error) {
	if len(input) == 0 {
		return ByteStringLit[B]{}, newErr(Empty)
	}
	if !hasPrefix(input, `b"`) && !hasPrefix(input, "br") {
		return ByteStringLit[B]{}, newErr(InvalidByteStringLiteralStart)
	}
	return parseByteStringImpl(input)
}

// parseByteStringImpl expects input to start with `b"` or `br`.
func parseByteStringImpl[B Buffer](input B) (ByteStringLit[B], error) {
	if hasPrefix(input, "br") {
		n, err := scanRaw(input, 2, byteMode)
		if err != nil {
			return ByteStringLit[B]{}, err
		}
		return ByteStringLit[B]{raw: input, isRaw: true, numHashes: u32(n)}, nil
	}

	buf, err := scanEscaped(input, 2, byteMode)
	if err != nil {
		return ByteStringLit[B]{}, err
	}
	return ByteStringLit[B]{raw: input, value: buf}, nil
}

// Raw returns the original span, exactly as passed to ParseByteString.
func (l ByteStringLit[B]) Raw() B {
	return l.raw
}

// Value returns the bytes this literal represents. When no escape was
// present the interior of raw is returned as-is (zero-copy for []byte
// buffers); the caller must not modify it.
func (l ByteStringLit[B]) Value() []byte {
	if l.value != nil {
		return l.value
	}
	a, b := l.innerRange()
	return []byte(l.raw[a:b])
}

// IntoValue returns the value as a buffer the caller may keep: the buffer
// built during decoding when escapes were present, else a fresh copy of
// the raw interior. It never re-decodes.
func (l ByteStringLit[B]) IntoValue() []byte {
	if l.value != nil {
		return l.value
	}
	a, b := l.innerRange()
	return appendBytes(make([]byte, 0, b-a), l.raw[a:b])
}

// IsRaw reports whether this is a raw byte string literal.
func (l ByteStringLit[B]) IsRaw() bool {
	return l.isRaw
}

// NumHashes returns the hash fence length of a raw byte string literal.
// The second return is false for non-raw literals.
func (l ByteStringLit[B]) NumHashes() (uint32, bool) {
	return l.numHashes, l.isRaw
}

func (l ByteStringLit[B]) innerRange() (int, int) {
	if l.isRaw {
		n := int(l.numHashes)
		return 2 + n + 1, len(l.raw) - n - 1
	}
	return 2, len(l.raw) - 1
}

func (l ByteStringLit[B]) String() string {
	return string(l.raw)
}
