package terminfo

import "testing"

func TestParseIncompleteHeader(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})
	e, ok := err.(*Error)
	if !ok || e.Kind != IncompleteTermInfoHeader {
		t.Errorf("got %v, want IncompleteTermInfoHeader", err)
	}
}

func TestParseInvalidMagic(t *testing.T) {
	header := make([]byte, 12)
	header[0], header[1] = 0x01, 0x00 // not legacyMagic
	_, err := Parse(header)
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidMagicNumber {
		t.Errorf("got %v, want InvalidMagicNumber", err)
	}
}

func TestParseTruncatedBody(t *testing.T) {
	raw, err := buildXterm().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(raw[:len(raw)-10])
	e, ok := err.(*Error)
	if !ok || (e.Kind != IncompleteTermInfo && e.Kind != IncompleteExtendedTermInfo) {
		t.Errorf("got %v, want an Incomplete* kind", err)
	}
}

func TestViewAbsentCapabilitiesAreFalseOrNotOK(t *testing.T) {
	raw, err := NewBuf().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if v.Boolean(AutoRightMargin) {
		t.Error("expected false for an unset boolean")
	}
	if _, ok := v.Number(Columns); ok {
		t.Error("expected absent for an unset number")
	}
	if _, ok := v.String(Bell); ok {
		t.Error("expected absent for an unset string")
	}
	if v.HasExt() {
		t.Error("expected no extended section")
	}
}

func TestNamesSplit(t *testing.T) {
	b := NewBuf()
	b.SetNames("xterm", "xterm terminal emulator (X Window System)")
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	names := v.Names()
	if len(names) != 2 || names[0] != "xterm" || names[1] != "xterm terminal emulator (X Window System)" {
		t.Errorf("got %v", names)
	}
}
