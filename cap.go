package tui

import (
	"errors"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

// Cap represents a terminal capability consumed by the façade.
//
// The string for each Cap is looked up from the active terminfo entry at
// call time, rather than baked in from fixed term.h offsets.
type Cap uint16

const (
	_ Cap = iota
	CapEnterCA
	CapExitCA
	CapShowCursor
	CapHideCursor
	CapClearScreen
	CapSGR0
	CapUnderline
	CapBold
	CapHidden
	CapBlink
	CapDim
	CapCursive
	CapReverse
	CapEnterKeypad
	CapExitKeypad
)

func (c Cap) String() string { return capNames[c] }

var capNames = map[Cap]string{
	CapEnterCA:     "EnterCA",
	CapExitCA:      "ExitCA",
	CapShowCursor:  "ShowCursor",
	CapHideCursor:  "HideCursor",
	CapClearScreen: "ClearScreen",
	CapSGR0:        "SGR0",
	CapUnderline:   "Underline",
	CapBold:        "Bold",
	CapHidden:      "Hidden",
	CapBlink:       "Blink",
	CapDim:         "Dim",
	CapCursive:     "Cursive",
	CapReverse:     "Reverse",
	CapEnterKeypad: "EnterKeypad",
	CapExitKeypad:  "ExitKeypad",
}

// capFields maps a Cap to the predefined string capability that carries it.
// CapCursive has no equivalent in the registered predefined set (ncurses
// doesn't define enter_italics_mode as a base capability either); Get always
// returns MissingTermInfoField for it.
var capFields = map[Cap]terminfo.StringField{
	CapEnterCA:     terminfo.EnterCaMode,
	CapExitCA:      terminfo.ExitCaMode,
	CapShowCursor:  terminfo.CursorVisible,
	CapHideCursor:  terminfo.CursorInvisible,
	CapClearScreen: terminfo.ClearScreen,
	CapSGR0:        terminfo.ExitAttributeMode,
	CapUnderline:   terminfo.EnterUnderlineMode,
	CapBold:        terminfo.EnterBoldMode,
	CapHidden:      terminfo.EnterSecureMode,
	CapBlink:       terminfo.EnterBlinkMode,
	CapDim:         terminfo.EnterDimMode,
	CapReverse:     terminfo.EnterReverseMode,
	CapEnterKeypad: terminfo.KeypadXmit,
	CapExitKeypad:  terminfo.KeypadLocal,
}

// ErrNoTermInfo is returned by Get/Send when no terminfo entry was loaded.
var ErrNoTermInfo = errors.New("tui: no terminfo entry loaded")

// Get looks up the parameter string for a capability in the active terminfo
// entry.
func Get(c Cap) (string, error) {
	if active == nil {
		return "", ErrNoTermInfo
	}
	f, ok := capFields[c]
	if !ok {
		return "", MissingTermInfoField{Field: c.String()}
	}
	s, ok := active.String(f)
	if !ok {
		return "", MissingTermInfoField{Field: c.String()}
	}
	return s, nil
}

// Send writes the capability's escape sequence to Stdout, doing nothing if
// the capability isn't defined for the active terminal.
func Send(c Cap) error {
	s, err := Get(c)
	if err != nil {
		return err
	}
	_, err = Stdout.Write([]byte(s))
	return err
}

// mustCap is like Get but swallows the error, returning an empty string.
// Used by callers (EnterAltScreen, HideCursor, ...) for which a missing
// capability should degrade silently rather than fail the whole operation.
func mustCap(c Cap) string {
	s, _ := Get(c)
	return s
}

// EnterAltScreen switches to the terminal's alternate screen buffer.
func EnterAltScreen() { Stdout.Write([]byte(mustCap(CapEnterCA))) }

// ExitAltScreen restores the terminal's primary screen buffer.
func ExitAltScreen() { Stdout.Write([]byte(mustCap(CapExitCA))) }

// HideCursor hides the text cursor.
func HideCursor() { Stdout.Write([]byte(mustCap(CapHideCursor))) }

// ShowCursor shows the text cursor.
func ShowCursor() { Stdout.Write([]byte(mustCap(CapShowCursor))) }

// Reset writes the capability that turns off all SGR attributes.
func Reset() { Stdout.Write([]byte(mustCap(CapSGR0))) }
