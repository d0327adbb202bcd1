package lit

// Buffer is the storage a literal is parsed from. string is the borrowed
// realization: sub-slicing and Value() share the caller's backing array.
// []byte is the owned one. Decode logic is written once against the type
// parameter; only indexing and slicing are used, which both members of
// the type set support.
type Buffer interface {
	~string | ~[]byte
}

// hasPrefix reports whether b starts with prefix. Generic counterpart of
// strings.HasPrefix that avoids converting b.
func hasPrefix[B Buffer](b B, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// appendBytes appends src to dst byte-by-byte. append(dst, src...) needs a
// core type, which a union type parameter does not have.
func appendBytes[B Buffer](dst []byte, src B) []byte {
	for i := 0; i < len(src); i++ {
		dst = append(dst, src[i])
	}
	return dst
}

// equalString reports whether b's content is exactly s.
func equalString[B Buffer](b B, s string) bool {
	return len(b) == len(s) && hasPrefix(b, s)
}
