package tiparm

import "testing"

func TestFormatWidthAndPrecisionString(t *testing.T) {
	out, err := Execute("%p1%.3s", Str("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "hel" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%5s", Str("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "   ab" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%:-5s", Str("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "ab   " {
		t.Errorf("got %q", out)
	}
}

func TestFormatHexAndOctal(t *testing.T) {
	out, err := Execute("%p1%x", Int(255))
	if err != nil {
		t.Fatal(err)
	}
	if out != "ff" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%X", Int(255))
	if err != nil {
		t.Fatal(err)
	}
	if out != "FF" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%:#x", Int(255))
	if err != nil {
		t.Fatal(err)
	}
	if out != "0xff" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%o", Int(8))
	if err != nil {
		t.Fatal(err)
	}
	if out != "10" {
		t.Errorf("got %q", out)
	}
}

func TestFormatSignFlags(t *testing.T) {
	out, err := Execute("%p1%:+d", Int(5))
	if err != nil {
		t.Fatal(err)
	}
	if out != "+5" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%: d", Int(5))
	if err != nil {
		t.Fatal(err)
	}
	if out != " 5" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%d", Int(-5))
	if err != nil {
		t.Fatal(err)
	}
	if out != "-5" {
		t.Errorf("got %q", out)
	}
}

// Preserves the non-standard quirk: a precision on an integer conversion
// that is smaller than the digit count truncates the leading digits; a
// larger one zero-pads to that count.
func TestFormatIntegerPrecisionTruncatesDigits(t *testing.T) {
	out, err := Execute("%p1%.3d", Int(12345))
	if err != nil {
		t.Fatal(err)
	}
	if out != "345" {
		t.Errorf("got %q, want 345 (truncated, not zero-padded)", out)
	}

	out, err = Execute("%p1%.5d", Int(42))
	if err != nil {
		t.Fatal(err)
	}
	if out != "00042" {
		t.Errorf("got %q", out)
	}
}

func TestBadPrecisionSpecified(t *testing.T) {
	_, err := Parse("%.d")
	if err == nil {
		t.Fatal("expected an error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != BadPrecisionSpecified {
		t.Errorf("got %v, want BadPrecisionSpecified", err)
	}
}

func TestInvalidArgumentIdentifier(t *testing.T) {
	_, err := Parse("%p0")
	if err == nil {
		t.Fatal("expected an error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidArgumentIdentifier {
		t.Errorf("got %v, want InvalidArgumentIdentifier", err)
	}
}

func TestFormatCharWithWidth(t *testing.T) {
	out, err := Execute("%p1%3c", Ch('A'))
	if err != nil {
		t.Fatal(err)
	}
	if out != "  A" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%:-3c", Ch('B'))
	if err != nil {
		t.Fatal(err)
	}
	if out != "B  " {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%p1%c", Int(67))
	if err != nil {
		t.Fatal(err)
	}
	if out != "C" {
		t.Errorf("got %q", out)
	}
}

func TestLiteralCharAndInt(t *testing.T) {
	out, err := Execute("%'A'%c")
	if err != nil {
		t.Fatal(err)
	}
	if out != "A" {
		t.Errorf("got %q", out)
	}

	out, err = Execute("%{65}%c")
	if err != nil {
		t.Fatal(err)
	}
	if out != "A" {
		t.Errorf("got %q", out)
	}
}
