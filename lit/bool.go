package lit

// BoolLit is a parsed boolean literal: exactly `true` or `false`.
type BoolLit[B Buffer] struct {
	raw   B
	value bool
}

// ParseBool parses input as a boolean literal.
func ParseBool[B Buffer](input B) (BoolLit[B], error) {
	switch {
	case len(input) == 0:
		return BoolLit[B]{}, newErr(Empty)
	case equalString(input, "true"):
		return BoolLit[B]{raw: input, value: true}, nil
	case equalString(input, "false"):
		return BoolLit[B]{raw: input, value: false}, nil
	default:
		return BoolLit[B]{}, newErr(InvalidLiteral)
	}
}

// Raw returns the original span.
func (l BoolLit[B]) Raw() B {
	return l.raw
}

// Value returns the boolean this literal represents.
func (l BoolLit[B]) Value() bool {
	return l.value
}

func (l BoolLit[B]) String() string {
	if l.value {
		return "true"
	}
	return "false"
}
