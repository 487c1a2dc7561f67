package tui

import (
	"fmt"
	"strings"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

// Key represents a keypress. This is formatted as follows:
//
//   - First 32 bits   → rune (int32)
//   - Next 16 bits    → Named key constant.
//   - Bits 49-61      → Currently unused.
//
// And the last three bits are flags for modifier keys:
//
//   - bit 62          → Alt
//   - bit 63          → Ctrl
//   - bit 64          → Shift
//
// A single value can test for all combinations:
//
//	switch Key(0x61) {
//	case 'a':                        // 'a' w/o modifiers
//	case 'a' | Ctrl:                 // 'a' with control
//	case 'a' | Ctrl | Shift:         // 'a' with shift and control
//
//	case KeyUp:                      // Arrow up
//	case KeyUp | Ctrl:               // Arrow up with control
//	}
type Key uint64

// Shift reports if the Shift modifier is set.
func (k Key) Shift() bool { return k&Shift != 0 }

// Ctrl reports if the Ctrl modifier is set.
func (k Key) Ctrl() bool { return k&Ctrl != 0 }

// Alt reports if the Alt modifier is set.
func (k Key) Alt() bool { return k&Alt != 0 }

// Named reports if this is a named key.
func (k Key) Named() bool {
	_, ok := keyNames[k&^Modmask]
	return ok
}

// Valid reports if this key is valid.
func (k Key) Valid() bool { return k&^Modmask <= (1<<31) || k.Named() }

// Name gets the key name, without modifiers; use String() for that.
func (k Key) Name() string {
	k &^= Modmask
	if n, ok := keyNames[k]; ok {
		return n
	}
	if !k.Valid() {
		return fmt.Sprintf("Unknown key: 0x%x", uint64(k))
	}
	return fmt.Sprintf("%c", rune(k))
}

func (k Key) String() string {
	var b strings.Builder
	b.Grow(8)
	b.WriteRune('<')
	if k.Shift() {
		b.WriteString("S-")
	}
	if k.Ctrl() {
		b.WriteString("C-")
	}
	if k.Alt() {
		b.WriteString("A-")
	}
	b.WriteString(k.Name())
	b.WriteRune('>')
	return b.String()
}

// Modifiers.
const (
	Shift   = 1 << 63
	Ctrl    = 1 << 62
	Alt     = 1 << 61
	Modmask = Shift | Ctrl | Alt
)

// Useful control characters.
const (
	KeyNull       = Key(0x00) // NUL
	KeyBackspace  = Key(0x08) // BS
	KeyTab        = Key(0x09) // HT
	KeyLinefeed   = Key(0x0a) // LF
	KeyEnter      = Key(0x0d) // CR
	KeyEsc        = Key(0x1b) // ESC
	KeyBackspace2 = Key(0x7f) // DEL
)

// Named key constants.
const (
	UnknownSequence Key = iota + (1 << 32)
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyInsert
	KeyDelete
	KeyBacktab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

var keyNames = map[Key]string{
	UnknownSequence: "Unknown escape sequence",

	KeyNull: "Null", KeyBackspace: "Backspace", KeyTab: "Tab", KeyLinefeed: "LF",
	KeyEnter: "Enter", KeyEsc: "Esc", KeyBackspace2: "Backspace2",

	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeyHome: "Home", KeyEnd: "End", KeyPgUp: "PgUp", KeyPgDn: "PgDn",
	KeyInsert: "Insert", KeyDelete: "Delete", KeyBacktab: "Backtab",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16",
	KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",
}

// keyFields maps a named Key to the predefined string capability that sends
// it, resolved by terminfo field instead of a hardcoded term.h offset.
var keyFields = map[Key]terminfo.StringField{
	KeyUp: terminfo.KeyUp, KeyDown: terminfo.KeyDown,
	KeyLeft: terminfo.KeyLeft, KeyRight: terminfo.KeyRight,
	KeyHome: terminfo.KeyHome, KeyPgUp: terminfo.KeyPpage, KeyPgDn: terminfo.KeyNpage,
	KeyInsert: terminfo.KeyIc, KeyDelete: terminfo.KeyDc, KeyBacktab: terminfo.KeyBtab,
	KeyF1: terminfo.KeyF1, KeyF2: terminfo.KeyF2, KeyF3: terminfo.KeyF3, KeyF4: terminfo.KeyF4,
	KeyF5: terminfo.KeyF5, KeyF6: terminfo.KeyF6, KeyF7: terminfo.KeyF7, KeyF8: terminfo.KeyF8,
	KeyF9: terminfo.KeyF9, KeyF10: terminfo.KeyF10, KeyF11: terminfo.KeyF11, KeyF12: terminfo.KeyF12,
	KeyF13: terminfo.KeyF13, KeyF14: terminfo.KeyF14, KeyF15: terminfo.KeyF15, KeyF16: terminfo.KeyF16,
	KeyF17: terminfo.KeyF17, KeyF18: terminfo.KeyF18, KeyF19: terminfo.KeyF19, KeyF20: terminfo.KeyF20,
	KeyF21: terminfo.KeyF21, KeyF22: terminfo.KeyF22, KeyF23: terminfo.KeyF23, KeyF24: terminfo.KeyF24,
}

// keyExtNames covers keys that live in the extended capability set on most
// real terminfo databases rather than the predefined one (kend is the
// canonical example: there is no base "key_end" string capability).
var keyExtNames = map[Key]string{
	KeyEnd: "kend",
}

// BuildKeyTable builds a map from escape sequence to Key for the given
// terminfo entry, including the Shift/Alt/Ctrl modifier variants derived
// from the xterm CSI-suffix convention.
func BuildKeyTable(v *terminfo.View) map[string]Key {
	keys := make(map[string]Key, len(keyFields)+len(keyExtNames))
	for k, f := range keyFields {
		seq, ok := v.String(f)
		if !ok || seq == "" {
			continue
		}
		keys[seq] = k
		addModifierKeys(keys, seq, k)
	}
	if v.HasExt() {
		for k, name := range keyExtNames {
			seq, ok := v.ExtString(name)
			if !ok || seq == "" {
				continue
			}
			keys[seq] = k
			addModifierKeys(keys, seq, k)
		}
	}
	return keys
}

// Modifiers for special keys work with suffixes:
//
//	      Regular   Ctrl     Shift    Alt
//	F1    OP        [1;5P    [1;2P    [1;3P
//	F5    [15~      [15;5~   [15;2~   [15;3~
//	Up    OA        [1;5A    [1;2A    [1;3A
//
//	2 = Shift, 3 = Alt, 5 = Ctrl
//
// https://invisible-island.net/xterm/ctlseqs/ctlseqs.pdf
func addModifierKeys(keys map[string]Key, seq string, k Key) {
	if strings.HasPrefix(seq, "\x1b[") && seq[len(seq)-1] == '~' {
		noTilde := seq[:len(seq)-1]
		keys[noTilde+";2~"] = k | Shift
		keys[noTilde+";3~"] = k | Alt
		keys[noTilde+";5~"] = k | Ctrl
	} else if strings.HasPrefix(seq, "\x1bO") && len(seq) == 3 {
		noCSI := seq[2:]
		keys["\x1b[1;2"+noCSI] = k | Shift
		keys["\x1b[1;3"+noCSI] = k | Alt
		keys["\x1b[1;5"+noCSI] = k | Ctrl
	}
}

// FindKey looks up a key from an escape sequence against the active
// terminal's key table.
func FindKey(s string) Key {
	if k, ok := Keys[s]; ok {
		return k
	}
	return UnknownSequence
}
