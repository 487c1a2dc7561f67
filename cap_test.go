package tui

import (
	"testing"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

func testView(t *testing.T) *terminfo.View {
	t.Helper()
	b := terminfo.NewBuf()
	b.SetNames("xterm-test", "xterm terminal emulator (test fixture)")
	_ = b.SetString(terminfo.EnterCaMode, "\x1b[?1049h")
	_ = b.SetString(terminfo.ExitCaMode, "\x1b[?1049l")
	_ = b.SetString(terminfo.CursorInvisible, "\x1b[?25l")
	_ = b.SetString(terminfo.ExitAttributeMode, "\x1b[0m")
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := terminfo.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func withActive(t *testing.T, v *terminfo.View) {
	t.Helper()
	oldActive, oldName, oldKeys := active, termName, Keys
	active, termName = v, "xterm-test"
	if v != nil {
		Keys = BuildKeyTable(v)
	} else {
		Keys = nil
	}
	t.Cleanup(func() { active, termName, Keys = oldActive, oldName, oldKeys })
}

func TestGetMissingTermInfo(t *testing.T) {
	withActive(t, nil)
	_, err := Get(CapEnterCA)
	if err != ErrNoTermInfo {
		t.Errorf("got %v, want ErrNoTermInfo", err)
	}
}

func TestGetUnmappedCap(t *testing.T) {
	withActive(t, testView(t))
	_, err := Get(CapCursive)
	mf, ok := err.(MissingTermInfoField)
	if !ok {
		t.Fatalf("got %v, want MissingTermInfoField", err)
	}
	if mf.Field != "Cursive" {
		t.Errorf("got field %q", mf.Field)
	}
}

func TestGetKnownCap(t *testing.T) {
	withActive(t, testView(t))
	s, err := Get(CapEnterCA)
	if err != nil {
		t.Fatal(err)
	}
	if s != "\x1b[?1049h" {
		t.Errorf("got %q", s)
	}
}

func TestGetAbsentInEntry(t *testing.T) {
	withActive(t, testView(t))
	_, err := Get(CapUnderline)
	if _, ok := err.(MissingTermInfoField); !ok {
		t.Errorf("got %v, want MissingTermInfoField", err)
	}
}
