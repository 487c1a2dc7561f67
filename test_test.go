package tui

import (
	"io"
	"os"
	"testing"
)

func TestTestExit(t *testing.T) {
	exit := TestExit(-1)
	Exit = exit.Exit
	defer func() { Exit = os.Exit }()

	func() {
		defer exit.Recover()
	}()
	if exit != -1 {
		t.Errorf("unexpected code: %d", exit)
	}

	func() {
		defer exit.Recover()
		Fatalf("oh noes!")
	}()
	if exit != 1 {
		t.Errorf("unexpected code: %d", exit)
	}
}

func TestTest(t *testing.T) {
	exit, in, out := Test(t)

	Errorf("oh noes!")
	if got := out.String(); got == "" {
		t.Errorf("expected output on stderr, got none")
	}
	out.Reset()

	in.WriteString("Hello")
	fp, err := InputOrFile("-", true)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello" {
		t.Errorf("wrong stdin: %q", string(got))
	}

	et := func() {
		Exit(1)
	}
	func() {
		defer exit.Recover()
		et()
	}()
	if *exit != 1 {
		t.Error("wrong exit")
	}
}
