//go:build !no_term
// +build !no_term

package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// IsTerminal reports if this file descriptor is an interactive terminal.
var IsTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// TerminalSize gets the dimensions of the given terminal.
var TerminalSize = func(fd uintptr) (width, height int, err error) { return term.GetSize(int(fd)) }

// WantColor indicates if the program should output any colors. This is
// automatically set from the output terminal and the NO_COLOR environment
// variable.
var WantColor = func() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	return os.Getenv("TERM") != "dumb" && term.IsTerminal(int(os.Stdout.Fd())) && !noColor
}()

// AskPassword interactively asks the user for a password and confirmation.
func AskPassword(minlen int) (string, error) {
start:
	fmt.Fprintf(Stdout, "Enter password for new user (will not echo): ")
	pwd1, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	if len(pwd1) < minlen {
		fmt.Fprintf(Stdout, "\nNeed at least %d characters\n", minlen)
		goto start
	}

	fmt.Fprintf(Stdout, "\nConfirm: ")
	pwd2, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(Stdout, "")

	if !bytes.Equal(pwd1, pwd2) {
		fmt.Fprintln(Stdout, "Passwords did not match; try again.")
		goto start
	}

	return string(pwd1), nil
}

// RawTerminal sets the terminal to "raw" mode.
//
// The returned function restores the terminal to the previous state.
func RawTerminal() (func() error, error) {
	fd := int(os.Stdout.Fd())
	old, err := term.MakeRaw(fd)
	return func() error { return term.Restore(fd, old) }, err
}

const ioctlReadTermios = unix.TCGETS

// IsRawTerminal reports whether stdout is currently in raw (non-canonical)
// mode.
func IsRawTerminal() bool {
	fd := int(os.Stdout.Fd())
	termios, _ := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return termios.Lflag&unix.ICANON == 0
}

// KeyEvent is a single keypress read by ReadKeys, decoded against the
// active terminal's key table.
type KeyEvent struct {
	Key Key
	Err error
}

// ReadKeys reads keys from /dev/tty, decoding multi-byte escape sequences
// against the active terminal's key table (see BuildKeyTable).
func ReadKeys() (chan KeyEvent, error) {
	if !IsRawTerminal() {
		return nil, errors.New("tui.ReadKeys: need to operate on raw terminal")
	}

	tty, err := syscall.Open("/dev/tty", unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("tui.ReadKeys: open /dev/tty: %w", err)
	}

	_, err = unix.FcntlInt(uintptr(tty), unix.F_SETOWN, unix.Getpid())
	if err != nil && runtime.GOOS != "darwin" {
		return nil, fmt.Errorf("tui.ReadKeys: set owner: %w", err)
	}

	events := make(chan KeyEvent)
	go func() {
		for {
			buf := make([]byte, 32)
			n, err := syscall.Read(tty, buf)
			if err != nil {
				events <- KeyEvent{Err: err}
				continue
			}
			decodeKeyBytes(buf[:n], events)
		}
	}()

	return events, nil
}

// decodeKeyBytes splits a raw read from the tty into individual key events,
// preferring the longest escape sequence present in the active key table
// (so arrow keys and function keys decode as one event, not several).
func decodeKeyBytes(buf []byte, events chan<- KeyEvent) {
	for len(buf) > 0 {
		if buf[0] == 0x1b && len(Keys) > 0 {
			if n, k, ok := matchKeySequence(buf); ok {
				events <- KeyEvent{Key: k}
				buf = buf[n:]
				continue
			}
		}
		events <- KeyEvent{Key: Key(buf[0])}
		buf = buf[1:]
	}
}

func matchKeySequence(buf []byte) (n int, k Key, ok bool) {
	best := 0
	for seq, key := range Keys {
		if len(seq) <= len(buf) && len(seq) > best && string(buf[:len(seq)]) == seq {
			best, n, k, ok = len(seq), len(seq), key, true
		}
	}
	return n, k, ok
}

// CursorPosition gets the current cursor position.
func CursorPosition() (int, int, error) {
	if IsRawTerminal() {
		return 0, 0, nil
	}

	restore, err := RawTerminal()
	if err != nil {
		return 0, 0, err
	}

	sendCSI("6n")

	buf := make([]byte, 128)
	n, err := os.Stdout.Read(buf)
	if err != nil {
		return 0, 0, err
	}
	buf = buf[:n]

	if err := restore(); err != nil {
		return 0, 0, err
	}

	var pushback []byte
	if i := bytes.Index(buf, []byte{0x1b, '['}); i > 0 {
		pushback = append(pushback, buf[:i]...)
		buf = buf[i:]
	}
	if i := bytes.IndexByte(buf, 'R'); i != len(buf)-1 {
		pushback = append(pushback, buf[i+1:]...)
		buf = buf[:i+1]
	}

	var r, c int
	fmt.Sscanf(string(buf), "\x1b[%d;%dR", &r, &c)

	if len(pushback) > 0 {
		os.Stdout.Write(pushback)
	}
	return r, c, nil
}
