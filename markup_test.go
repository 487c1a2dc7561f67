package tui

import "testing"

func withColor(t *testing.T, want bool) {
	t.Helper()
	old := WantColor
	WantColor = want
	t.Cleanup(func() { WantColor = old })
}

func TestRender(t *testing.T) {
	withColor(t, true)

	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"_underline_", "\x1b[4munderline\x1b[0m"},
		{"*bold*", "\x1b[1mbold\x1b[0m"},
		{"~dim~", "\x1b[2mdim\x1b[0m"},
		{"%[red]red%[/]", "\x1b[31mred\x1b[0m"},
		{"*bold* and _underline_", "\x1b[1mbold\x1b[0m and \x1b[4munderline\x1b[0m"},
		{"unterminated *bold", "unterminated *bold"},
		{"%[nope]x%[/]", "x\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h := Render(tt.in)
			if h != tt.want {
				t.Errorf("\nwant: %q\nhave: %q", tt.want, h)
			}
		})
	}
}

func TestRenderNoColor(t *testing.T) {
	withColor(t, false)
	h := Render("*bold*")
	if h != "bold" {
		t.Errorf("got %q", h)
	}
}
