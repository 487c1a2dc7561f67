package tui

import (
	"testing"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{'a', "<a>"},
		{'a' | Shift, "<S-a>"},
		{'a' | Ctrl | Shift, "<S-C-a>"},
		{'a' | Ctrl | Shift | Alt, "<S-C-A-a>"},
		{KeyTab, "<Tab>"},
		{KeyTab | Ctrl, "<C-Tab>"},
		{KeyUp, "<Up>"},
		{KeyUp | Ctrl, "<C-Up>"},
		{KeyF24 + 1, "<Unknown key: 0x100000024>"},
		{KeyF24 + 1 | Ctrl, "<C-Unknown key: 0x100000024>"},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			h := tt.k.String()
			if h != tt.want {
				t.Errorf("\nwant: %s\nhave: %s", tt.want, h)
			}
		})
	}
}

func TestBuildKeyTableModifiers(t *testing.T) {
	b := terminfo.NewBuf()
	b.SetNames("xterm-test", "xterm terminal emulator (test fixture)")
	_ = b.SetString(terminfo.KeyUp, "\x1bOA")
	_ = b.SetString(terminfo.KeyDc, "\x1b[3~")
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := terminfo.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}

	keys := BuildKeyTable(v)
	if keys["\x1bOA"] != KeyUp {
		t.Errorf("got %v, want KeyUp", keys["\x1bOA"])
	}
	if keys["\x1b[1;5A"] != (KeyUp | Ctrl) {
		t.Errorf("missing derived ctrl-up sequence")
	}
	if keys["\x1b[3;2~"] != (KeyDelete | Shift) {
		t.Errorf("missing derived shift-delete sequence")
	}
}
