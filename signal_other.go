//go:build !unix

package tui

import "os"

var exitSignals = []os.Signal{os.Interrupt}

// TerminalSizeChange is run if the terminal window size is changed.
func TerminalSizeChange(f func()) {
	// Do nothing.
	// TODO: it looks like this may be possible on Windows:
	// https://stackoverflow.com/questions/10856926/sigwinch-equivalent-on-windows
}
