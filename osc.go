package tui

import (
	"fmt"
	"os"
	"strings"
)

func sendOSC(body string) { fmt.Fprintf(Stdout, "\x1b]%s\x1b\\", body) }

// SetTitle sets the terminal window/tab title via OSC 2, the way xterm and
// its descendants implement it.
func SetTitle(s string) { sendOSC("2;" + s) }

// Hyperlink writes an OSC 8 hyperlink escape sequence wrapping text, falling
// back to plain text if WantColor is false (hyperlinks are a visual nicety
// in the same category as color).
func Hyperlink(url, text string) {
	if !WantColor {
		fmt.Fprint(Stdout, text)
		return
	}
	fmt.Fprintf(Stdout, "\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

// SupportsKittyGraphics reports whether the terminal is likely to support
// the Kitty terminal graphics protocol, checked the same crude way WantColor
// checks $NO_COLOR/$TERM: by environment, not a query round-trip.
func SupportsKittyGraphics() bool {
	if p := os.Getenv("TERM_PROGRAM"); p == "kitty" || p == "WezTerm" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
