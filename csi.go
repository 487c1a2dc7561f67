package tui

// Where the active terminal defines the corresponding parameterized
// capability, these functions use it (via terminfo/tiparm) instead of a raw
// CSI sequence, so output still degrades correctly on terminals that don't
// speak ANSI CSI. A plain CSI fallback covers terminals with no entry loaded
// at all.

import (
	"fmt"

	"git.sr.ht/~tuxcoder/tui/terminfo"
	"git.sr.ht/~tuxcoder/tui/terminfo/tiparm"
)

// Direction.
type Direction int

// Directions.
const (
	_ Direction = iota
	Up
	Down
	Left
	Right
)

func sendCSI(s string, a ...interface{}) { Stdout.Write([]byte("\x1b[" + fmt.Sprintf(s, a...))) }

// EraseLine erases the entire line and puts the cursor at the start of the
// line.
func EraseLine() { sendCSI("2K\r") }

// ReplaceLine replaces the current line.
func ReplaceLine(a ...interface{}) {
	EraseLine()
	fmt.Fprint(Stdout, a...)
}

// ReplaceLinef replaces the current line.
func ReplaceLinef(s string, a ...interface{}) {
	EraseLine()
	fmt.Fprintf(Stdout, s, a...)
}

// ClearScreen clears the screen and puts the cursor at 1×1.
func ClearScreen() {
	if s, err := Get(CapClearScreen); err == nil {
		Stdout.Write([]byte(s))
		CursorSet(1, 1)
		return
	}
	sendCSI("2J")
	CursorSet(1, 1)
}

// CursorSet sets the cursor to a specific position, using the active
// terminal's cursor_address capability when one is defined.
//
// Rows and columns are numbered from 1.
func CursorSet(row, col int) {
	if active != nil {
		if out, err := active.Exec(terminfo.CursorAddress, tiparm.Int(int64(row-1)), tiparm.Int(int64(col-1))); err == nil {
			Stdout.Write([]byte(out))
			return
		}
	}
	sendCSI("%d;%dH", row, col)
}

// CursorShow sets the cursor visibility.
func CursorShow(show bool) {
	if show {
		ShowCursor()
		return
	}
	HideCursor()
}

// cursorMoveFields maps a Direction to the parameterized capability that
// moves the cursor n cells that way.
var cursorMoveFields = map[Direction]terminfo.StringField{
	Up: terminfo.ParmUpCursor, Down: terminfo.ParmDownCursor,
	Left: terminfo.ParmLeftCursor, Right: terminfo.ParmRightCursor,
}
var cursorMoveCSI = map[Direction]byte{Up: 'A', Down: 'B', Right: 'C', Left: 'D'}

// CursorMove moves the cursor n cells in a direction.
func CursorMove(n int, dir Direction) {
	if active != nil {
		if f, ok := cursorMoveFields[dir]; ok {
			if out, err := active.Exec(f, tiparm.Int(int64(n))); err == nil {
				Stdout.Write([]byte(out))
				return
			}
		}
	}
	if c, ok := cursorMoveCSI[dir]; ok {
		sendCSI("%d%c", n, c)
	}
}
