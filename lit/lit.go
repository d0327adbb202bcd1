package lit

// Literal is a successfully parsed literal of any supported kind. The
// concrete type is one of StringLit[B], ByteStringLit[B], or BoolLit[B];
// callers dispatch with a type switch.
type Literal[B Buffer] interface {
	// Raw returns the original span the literal was parsed from.
	Raw() B
	String() string

	literal() // closed set
}

func (StringLit[B]) literal() {}

func (ByteStringLit[B]) literal() {}

func (BoolLit[B]) literal() {}

// Parse inspects the first bytes of input to pick a literal kind and
// delegates to that kind's parser.
func Parse[B Buffer](input B) (Literal[B], error) {
	if len(input) == 0 {
		return nil, newErr(Empty)
	}
	switch input[0] {
	case '"', 'r':
		l, err := parseStringImpl(input)
		if err != nil {
			return nil, err
		}
		return l, nil
	case 'b':
		if !hasPrefix(input, `b"`) && !hasPrefix(input, "br") {
			return nil, newErr(InvalidLiteral)
		}
		l, err := parseByteStringImpl(input)
		if err != nil {
			return nil, err
		}
		return l, nil
	case 't', 'f':
		l, err := ParseBool(input)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, newErr(InvalidLiteral)
	}
}
