package lit

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range into the literal's original span.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// u32 narrows an offset for storage in a Span. Literal spans beyond 4 GiB
// are out of contract, so overflow is a programmer error.
func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("literal offset overflow: %w", err))
	}
	return v
}
