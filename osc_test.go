package tui

import (
	"bytes"
	"os"
	"testing"
)

func withStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Stdout
	buf := new(bytes.Buffer)
	Stdout = buf
	t.Cleanup(func() { Stdout = old })
	return buf
}

func TestSetTitle(t *testing.T) {
	buf := withStdout(t)
	SetTitle("hello")
	want := "\x1b]2;hello\x1b\\"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestHyperlink(t *testing.T) {
	withColor(t, true)
	buf := withStdout(t)
	Hyperlink("https://example.com", "link")
	want := "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestHyperlinkNoColor(t *testing.T) {
	withColor(t, false)
	buf := withStdout(t)
	Hyperlink("https://example.com", "link")
	if buf.String() != "link" {
		t.Errorf("got %q, want plain text fallback", buf.String())
	}
}

func TestSupportsKittyGraphics(t *testing.T) {
	oldProgram, oldTerm := os.Getenv("TERM_PROGRAM"), os.Getenv("TERM")
	t.Cleanup(func() {
		os.Setenv("TERM_PROGRAM", oldProgram)
		os.Setenv("TERM", oldTerm)
	})

	os.Setenv("TERM_PROGRAM", "kitty")
	os.Setenv("TERM", "xterm")
	if !SupportsKittyGraphics() {
		t.Error("expected true for TERM_PROGRAM=kitty")
	}

	os.Setenv("TERM_PROGRAM", "")
	os.Setenv("TERM", "xterm-kitty")
	if !SupportsKittyGraphics() {
		t.Error("expected true for TERM=xterm-kitty")
	}

	os.Setenv("TERM_PROGRAM", "")
	os.Setenv("TERM", "xterm-256color")
	if SupportsKittyGraphics() {
		t.Error("expected false for plain xterm")
	}
}
