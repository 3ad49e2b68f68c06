package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 6
)

// DisableColourOutput forces plain-text output even on a capable terminal.
var DisableColourOutput = false

// Swatch returns an ANSI truecolor block of the given width for a colour.
// Returns an empty string when colour output is unavailable.
func Swatch(c RGB, width int) string {
	if !SupportsANSIColours() {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithHex returns a colour swatch followed by its hex code, or just
// the hex code when colour output is unavailable.
func SwatchWithHex(c RGB, width int) string {
	s := Swatch(c, width)
	if s == "" {
		return c.Hex()
	}
	return s + " " + c.Hex()
}

// SupportsANSIColours reports whether stdout is a terminal that likely
// understands truecolor escape sequences. TERM=dumb and non-TTY output
// (pipes, files) disable colour.
func SupportsANSIColours() bool {
	if DisableColourOutput {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
