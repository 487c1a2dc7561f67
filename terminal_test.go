package tui

import "testing"

func TestLoadTerminfoUnknownTerm(t *testing.T) {
	err := LoadTerminfo("no-such-terminal-xyz")
	if err == nil {
		t.Fatal("expected error for unknown terminal")
	}
	if Active() != nil {
		t.Error("Active() should be nil after a failed load")
	}
}

func TestLoadTerminfoEmpty(t *testing.T) {
	err := LoadTerminfo("")
	if err == nil {
		t.Fatal("expected error for empty term name")
	}
}

func TestDescribeNoTerminfo(t *testing.T) {
	withActive(t, nil)
	if Describe() != "no terminfo entry loaded" {
		t.Errorf("got %q", Describe())
	}
}

func TestDescribeKnownTerminfo(t *testing.T) {
	withActive(t, testView(t))
	d := Describe()
	if d == "" {
		t.Fatal("expected non-empty description")
	}
}
