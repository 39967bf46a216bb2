// Package ansi provides the ANSI escape sequences used for terminal output.
// Only the codes ndjson actually emits are included here.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette holds the escape sequence emitted before each semantic token
// class. An empty field suppresses the sequence for that class; the zero
// Palette disables colouring entirely.
type Palette struct {
	Key    string
	Value  string
	String string
}

// PaletteDefault colours keys intense yellow, scalar values intense green
// and strings intense cyan, matching what the tool has always shown.
var PaletteDefault = Palette{
	Key:    BrightYellow,
	Value:  BrightGreen,
	String: BrightCyan,
}
