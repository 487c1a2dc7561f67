package tiparm

import "testing"

func TestParseMisplacedElseIsError(t *testing.T) {
	_, err := Parse("%e")
	if err == nil {
		t.Fatal("expected an error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != BadPrintfSpecifier {
		t.Errorf("got %v, want BadPrintfSpecifier", err)
	}
}

func TestParseUnterminatedCharLiteral(t *testing.T) {
	_, err := Parse("%'A")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseUnterminatedConditional(t *testing.T) {
	_, err := Parse("%?%p1%t")
	if err == nil {
		t.Fatal("expected an error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != UnexpectedEof {
		t.Errorf("got %v, want UnexpectedEof", err)
	}
}

func TestParsePercentLiteral(t *testing.T) {
	ops, err := Parse("100%%")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Run(ops)
	if err != nil {
		t.Fatal(err)
	}
	if out != "100%" {
		t.Errorf("got %q", out)
	}
}

func TestParseNestedConditional(t *testing.T) {
	spec := "%?%p1%t%?%p2%tAB%eAC%;%e%?%p2%tBB%eBC%;%;"
	ops, err := Parse(spec)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		p1, p2 int64
		want   string
	}{
		{1, 1, "AB"},
		{1, 0, "AC"},
		{0, 1, "BB"},
		{0, 0, "BC"},
	}
	for _, c := range cases {
		out, err := Run(ops, Int(c.p1), Int(c.p2))
		if err != nil {
			t.Fatal(err)
		}
		if out != c.want {
			t.Errorf("p1=%d p2=%d: got %q, want %q", c.p1, c.p2, out, c.want)
		}
	}
}
