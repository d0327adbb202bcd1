package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational findings (e.g. normalization notes).
	SevInfo Severity = iota
	// SevWarning is for suspicious but parseable literals.
	SevWarning
	// SevError is for literals that failed to parse.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
