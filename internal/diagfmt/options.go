package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	Width    uint8 // maximum literal preview width, 0 = unlimited
	// ShowLiteral controls whether the offending literal is echoed with a
	// caret underline below the message.
	ShowLiteral bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode       PathMode
	Max            int // output truncation, does not touch the Bag
	IncludeLiteral bool
}
