//go:build !no_term
// +build !no_term

package tui

import "testing"

func TestMatchKeySequence(t *testing.T) {
	oldKeys := Keys
	Keys = map[string]Key{
		"\x1bOA":   KeyUp,
		"\x1b[3~":  KeyDelete,
		"\x1b[3;2~": KeyDelete | Shift,
	}
	t.Cleanup(func() { Keys = oldKeys })

	n, k, ok := matchKeySequence([]byte("\x1bOAx"))
	if !ok || n != 3 || k != KeyUp {
		t.Errorf("got n=%d k=%v ok=%v, want n=3 k=KeyUp ok=true", n, k, ok)
	}

	// Longest match wins: "\x1b[3~" is a prefix of "\x1b[3;2~"'s sibling set,
	// but here the two entries don't collide, so each is matched exactly.
	n, k, ok = matchKeySequence([]byte("\x1b[3;2~"))
	if !ok || n != len("\x1b[3;2~") || k != (KeyDelete|Shift) {
		t.Errorf("got n=%d k=%v ok=%v", n, k, ok)
	}

	_, _, ok = matchKeySequence([]byte("\x1bZ"))
	if ok {
		t.Error("expected no match for unknown escape sequence")
	}
}

func TestDecodeKeyBytes(t *testing.T) {
	oldKeys := Keys
	Keys = map[string]Key{"\x1bOA": KeyUp}
	t.Cleanup(func() { Keys = oldKeys })

	events := make(chan KeyEvent, 8)
	decodeKeyBytes([]byte("a\x1bOAb"), events)
	close(events)

	var got []Key
	for e := range events {
		if e.Err != nil {
			t.Fatalf("unexpected error event: %v", e.Err)
		}
		got = append(got, e.Key)
	}
	want := []Key{Key('a'), KeyUp, Key('b')}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
