package terminfo

import (
	"reflect"
	"testing"

	"git.sr.ht/~tuxcoder/tui/terminfo/tiparm"
)

// buildXterm approximates xterm's terminfo entry: cursor addressing, 8
// colors, and the xterm-specific shifted-arrow extended string capabilities
// (kUP7 et al.) that live in the extended section rather than the
// predefined string table.
func buildXterm() *Buf {
	b := NewBuf()
	b.SetNames("xterm", "xterm terminal emulator")
	b.SetBoolean(AutoRightMargin, true)
	b.SetBoolean(AutoLeftMargin, false)
	b.SetNumber(Columns, 80)
	b.SetNumber(MaxColors, 8)
	_ = b.SetString(Bell, "\a")
	_ = b.SetString(KeyUp, "\x1bOA")
	_ = b.SetString(CursorAddress, "\x1b[%i%p1%d;%p2%dH")
	_ = b.SetExtString("kUP7", "\x1b[1;7A")
	return b
}

// buildRxvt approximates rxvt's terminfo entry: it advertises the
// xterm-style function key escapes (XT) but, unlike xterm, has no
// 256-color support (XM).
func buildRxvt() *Buf {
	b := NewBuf()
	b.SetNames("rxvt", "rxvt terminal emulator")
	b.SetBoolean(AutoRightMargin, true)
	b.SetNumber(Columns, 80)
	b.SetNumber(MaxColors, 8)
	_ = b.SetString(Bell, "\a")
	_ = b.SetString(KeyDown, "\x1b[B")
	_ = b.SetExtBoolean("XT", true)
	_ = b.SetExtBoolean("XM", false)
	return b
}

// buildLinux16Color approximates the Linux console's 16-color entry: it
// carries the non-standard U8 extended number describing its UTF-8 ACS
// quirk (0 = uses real line-drawing glyphs in UTF-8 mode, 1 = substitutes
// ASCII approximations).
func buildLinux16Color() *Buf {
	b := NewBuf()
	b.SetNames("linux-16color", "linux console with 16 colors")
	b.SetBoolean(AutoRightMargin, true)
	b.SetNumber(Columns, 80)
	b.SetNumber(MaxColors, 16)
	_ = b.SetString(Bell, "\a")
	_ = b.SetString(CursorAddress, "\x1b[%i%p1%d;%p2%dH")
	_ = b.SetExtNumber("U8", 1)
	return b
}

func TestBufMarshalParseRoundTrip(t *testing.T) {
	b := buildXterm()
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(v.Names(), b.Names()) {
		t.Errorf("Names: got %v, want %v", v.Names(), b.Names())
	}
	if v.Boolean(AutoRightMargin) != true || v.Boolean(AutoLeftMargin) != false {
		t.Errorf("boolean round-trip mismatch")
	}
	if n, ok := v.Number(Columns); !ok || n != 80 {
		t.Errorf("Columns: got %d, %v", n, ok)
	}
	if s, ok := v.String(Bell); !ok || s != "\a" {
		t.Errorf("Bell: got %q, %v", s, ok)
	}
	if s, ok := v.String(CursorAddress); !ok || s != "\x1b[%i%p1%d;%p2%dH" {
		t.Errorf("CursorAddress: got %q, %v", s, ok)
	}
	if !v.HasExt() {
		t.Fatal("expected extended section")
	}
	if s, present := v.ExtString("kUP7"); !present || s != "\x1b[1;7A" {
		t.Errorf("ExtString kUP7: got %q, %v", s, present)
	}
}

// TestExtendedCapabilitiesPerVendor reproduces the three-vendor extended
// capability assertions, including the negative cases: a capability that's
// genuinely absent from an entry must report absent, not a zero value.
func TestExtendedCapabilitiesPerVendor(t *testing.T) {
	t.Run("xterm", func(t *testing.T) {
		raw, err := buildXterm().Marshal()
		if err != nil {
			t.Fatal(err)
		}
		v, err := Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if s, present := v.ExtString("kUP7"); !present || s != "\x1b[1;7A" {
			t.Errorf("ExtString kUP7: got %q, %v, want %q, true", s, present, "\x1b[1;7A")
		}
		if s, present := v.ExtString("kUP8"); present {
			t.Errorf("ExtString kUP8: got %q, present=true, want absent", s)
		}
	})

	t.Run("rxvt", func(t *testing.T) {
		raw, err := buildRxvt().Marshal()
		if err != nil {
			t.Fatal(err)
		}
		v, err := Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if ok, present := v.ExtBoolean("XT"); !present || !ok {
			t.Errorf("ExtBoolean XT: got %v, %v, want true, true", ok, present)
		}
		if ok, present := v.ExtBoolean("XM"); !present || ok {
			t.Errorf("ExtBoolean XM: got %v, %v, want false, true", ok, present)
		}
	})

	t.Run("linux-16color", func(t *testing.T) {
		raw, err := buildLinux16Color().Marshal()
		if err != nil {
			t.Fatal(err)
		}
		v, err := Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if n, present := v.ExtNumber("U8"); !present || n != 1 {
			t.Errorf("ExtNumber U8: got %d, %v, want 1, true", n, present)
		}
	})
}

func TestFromViewEquivalence(t *testing.T) {
	raw, err := buildXterm().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	b2 := FromView(v)

	for _, f := range []BooleanField{AutoRightMargin, AutoLeftMargin} {
		if v.Boolean(f) != b2.Boolean(f) {
			t.Errorf("boolean %s mismatch", f)
		}
	}
	for _, f := range []NumericField{Columns, MaxColors} {
		vn, vok := v.Number(f)
		bn, bok := b2.Number(f)
		if vok != bok || vn != bn {
			t.Errorf("number %s mismatch: view=%d,%v buf=%d,%v", f, vn, vok, bn, bok)
		}
	}
	for _, f := range []StringField{Bell, KeyUp, CursorAddress} {
		vs, vok := v.String(f)
		bs, bok := b2.String(f)
		if vok != bok || vs != bs {
			t.Errorf("string %s mismatch", f)
		}
	}
	if bs, ok := b2.ExtString("kUP7"); !ok || bs != "\x1b[1;7A" {
		t.Errorf("ext string round trip via FromView: got %q, %v", bs, ok)
	}
}

func TestSetStringNeverDeduplicates(t *testing.T) {
	b := NewBuf()
	_ = b.SetString(Bell, "same")
	_ = b.SetString(CarriageReturn, "same")
	// Two capabilities with the same value get two independent slots in
	// the string table.
	if len(b.strtab) != len("same\x00same\x00") {
		t.Errorf("expected no deduplication, strtab = %q", b.strtab)
	}
}

func TestMaxStrTabSizeReached(t *testing.T) {
	b := NewBuf()
	b.strtab = make([]byte, 0xFFFE)
	err := b.SetString(Bell, "xx")
	if err == nil {
		t.Fatal("expected MaxStrTabSizeReached")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != MaxStrTabSizeReached {
		t.Errorf("got %v, want MaxStrTabSizeReached", err)
	}
}

func TestBufExec(t *testing.T) {
	b := buildXterm()
	out, err := b.Exec(CursorAddress, tiparm.Int(4), tiparm.Int(9))
	if err != nil {
		t.Fatal(err)
	}
	if out != "\x1b[5;10H" {
		t.Errorf("got %q", out)
	}

	_, err = b.Exec(KeyHome)
	if err != ErrCapabilityAbsent {
		t.Errorf("got %v, want ErrCapabilityAbsent", err)
	}
}
