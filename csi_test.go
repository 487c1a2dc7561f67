package tui

import (
	"testing"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

func TestCursorSetFallback(t *testing.T) {
	withActive(t, nil)
	buf := withStdout(t)
	CursorSet(5, 10)
	want := "\x1b[5;10H"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestCursorSetUsesTerminfo(t *testing.T) {
	b := terminfo.NewBuf()
	b.SetNames("xterm-test", "test fixture")
	_ = b.SetString(terminfo.CursorAddress, "\x1b[CUSTOM;%i%p1%d;%p2%d]")
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := terminfo.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	withActive(t, v)
	buf := withStdout(t)

	CursorSet(5, 10)
	want := "\x1b[CUSTOM;5;10]"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestCursorMoveFallback(t *testing.T) {
	withActive(t, nil)
	buf := withStdout(t)
	CursorMove(3, Up)
	if buf.String() != "\x1b[3A" {
		t.Errorf("got %q", buf.String())
	}
}

func TestClearScreenFallback(t *testing.T) {
	withActive(t, nil)
	buf := withStdout(t)
	ClearScreen()
	want := "\x1b[2J\x1b[1;1H"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
