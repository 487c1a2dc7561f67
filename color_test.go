package tui

import (
	"fmt"
	"os"
	"testing"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

func ExampleColor() {
	old := active
	active = nil
	defer func() { active = old }()

	Stdout = os.Stdout
	Colorln("You're looking rather red", Red) // Apply a color.
	Colorln("A bold move", Bold)               // Or an attribute.
	Colorln("Tomato", Red.Bg())                // Transform to background color.

	Colorln("Wow, such beautiful text", // Can be combined.
		Bold|Underline|Red|Green.Bg())

	Colorln("Contrast ratios is for suckers", // 256 color
		Color256(56)|Color256(99).Bg())

	Colorln("REAL men use TRUE color!", // True color
		ColorHex("#678")|ColorHex("#abc").Bg())

	fmt.Println(Red|Bold, "red!") // Set colors "directly"
	fmt.Println("and bold!", Reset)
	fmt.Printf("%sc%so%sl%so%sr%s\n", Red, Magenta, Cyan, Blue, Yellow, Reset)

	// Output:
	// [31mYou're looking rather red[0m
	// [1mA bold move[0m
	// [41mTomato[0m
	// [1;4;31;42mWow, such beautiful text[0m
	// [38;5;56;48;5;99mContrast ratios is for suckers[0m
	// [38;2;102;119;136;48;2;170;187;204mREAL men use TRUE color![0m
	// [1;31m red!
	// and bold! [0m
	// [31mc[35mo[36ml[34mo[33mr[0m
}

func TestColor(t *testing.T) {
	// Pin to no active terminfo entry so String() exercises the hardcoded
	// ANSI fallback regardless of the environment this test runs in; the
	// terminfo-preferred path is covered separately in
	// TestColorPrefersTerminfoCapabilities.
	withActive(t, nil)

	tests := []struct {
		in   Color
		want string
	}{
		// Basic terminal attributes
		{Bold, "\x1b[1m"},
		{Underline, "\x1b[4m"},
		{Bold | Underline, "\x1b[1;4m"},

		// Color boundaries (first and last).
		{Black | Black.Bg(), "\x1b[30;40m"},
		{White.Brighten(1) | White.Brighten(1).Bg(), "\x1b[97;107m"},

		{Color256(0) | Color256(0).Bg(), "\x1b[38;5;0;48;5;0m"},
		{Color256(255) | Color256(255).Bg(), "\x1b[38;5;255;48;5;255m"},
		{ColorHex("#678") | ColorHex("#abc").Bg(), "\x1b[38;2;102;119;136;48;2;170;187;204m"},

		// Various combinations.
		{Red, "\x1b[31m"},
		{Bold | Red, "\x1b[1;31m"},
		{Red | Underline, "\x1b[4;31m"},
		{Green.Bg(), "\x1b[42m"},
		{Green.Bg() | Bold, "\x1b[1;42m"},
		{Green.Brighten(1).Bg() | Red, "\x1b[31;102m"},
		{Color256(99) | Red.Bg() | Bold | Underline, "\x1b[1;4;38;5;99;41m"},

		{Bold | Dim | Italic | Underline | Reverse | Concealed | StrikeOut,
			"\x1b[1;2;3;4;7;8;9m"},

		{Bold.Bg(), "\x1b[1m"},          // Doesn't make much sense, but should work nonetheless.
		{Color(Red.Bg().Bg()), "\x1b[41m"}, // Double .Bg() does nothing
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			WantColor = false
			t.Run("WantColor=false", func(t *testing.T) {
				got := tt.in.String()
				if got != "" {
					t.Errorf("String() WantColor not respected? got: %q", got)
				}
				got = Colorize("Hello", tt.in)
				if got != "Hello" {
					t.Errorf("Colorize WantColor not respected? got: %q", got)
				}
			})

			WantColor = true
			t.Run("String", func(t *testing.T) {
				got := tt.in.String()
				if got != tt.want {
					t.Errorf("Color.String()\ngot:  %q\nwant: %q", got, tt.want)
				}
			})

			t.Run("Colorize", func(t *testing.T) {
				got := Colorize("Hello", tt.in)
				if got != tt.want+"Hello\x1b[0m" {
					t.Errorf("Colorize()\ngot:  %q\nwant: %q", got, tt.want+"Hello\x1b[0m")
				}
			})

			t.Run("DeColor", func(t *testing.T) {
				got := Colorize("Hello", tt.in)
				de := DeColor(got)
				if de != "Hello" {
					t.Errorf("DeColor: %q", de)
				}
			})
		})
	}

	t.Run("Reset", func(t *testing.T) {
		c := Reset

		WantColor = false
		got := c.String()
		if got != "" {
			t.Errorf("Color.String()\ngot:  %q\nwant: %q", got, "")
		}

		WantColor = true
		got = c.String()
		if got != "\x1b[0m" {
			t.Errorf("Color.String()\ngot:  %q\nwant: %q", got, "\x1b[0m")
		}

		got = Colorize("Hello", c)
		if got != "Hello" {
			t.Errorf("Color.String()\ngot:  %q\nwant: %q", got, "Hello")
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []Color{
			ColorHex("chucknorris"),
			ColorHex("#12"),
			ColorHex("#1234"),
			ColorHex("#12345"),
			ColorHex("#1234567"),
			ColorHex("#12345678"),
			ColorHex("#123456789"),
			ColorHex("#1234567890"),
		}

		WantColor = true
		for _, tt := range tests {
			t.Run("String()", func(t *testing.T) {
				got := tt.String()
				if got != "" {
					t.Errorf("%q", got)
				}
			})
			t.Run("Colorize()", func(t *testing.T) {
				got := Colorize("Hello", tt)
				want := "(tui.Color ERROR invalid hex color)Hello"
				if got != want {
					t.Errorf("\ngot:  %q\nwant: %q", got, want)
				}
			})
		}
	})
}

// TestColorPrefersTerminfoCapabilities checks that String() routes through
// SetAttributes/SetAForeground/SetABackground/ExitAttributeMode when an
// active terminfo entry defines them, rather than the hardcoded ANSI
// fallback, and that it still falls back for attributes and color modes
// those capabilities can't express.
func TestColorPrefersTerminfoCapabilities(t *testing.T) {
	b := terminfo.NewBuf()
	b.SetNames("xterm-test", "xterm terminal emulator (test fixture)")
	_ = b.SetString(terminfo.ExitAttributeMode, "\x1b[m")
	_ = b.SetString(terminfo.SetAttributes, "\x1b[0%?%p1%t;1%;%?%p3%t;7%;%?%p5%t;2%;%?%p6%t;1%;%?%p7%t;8%;m")
	_ = b.SetString(terminfo.SetAForeground, "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m")
	_ = b.SetString(terminfo.SetABackground, "\x1b[%?%p1%{8}%<%t4%p1%d%e%p1%{16}%<%t10%p1%{8}%-%d%e48;5;%p1%d%;m")
	raw, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	v, err := terminfo.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	withActive(t, v)
	WantColor = true

	t.Run("Reset uses exit_attribute_mode", func(t *testing.T) {
		if got := Reset.String(); got != "\x1b[m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("attrs use set_attributes", func(t *testing.T) {
		if got := Bold.String(); got != "\x1b[0;1m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("16 color fg uses set_a_foreground", func(t *testing.T) {
		if got := Red.String(); got != "\x1b[31m" {
			t.Errorf("got %q", got)
		}
		if got := White.Brighten(1).String(); got != "\x1b[97m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("256 color bg uses set_a_background", func(t *testing.T) {
		if got := Color256(200).Bg().String(); got != "\x1b[48;5;200m" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("falls back for true color, set_attributes has no slot", func(t *testing.T) {
		if got := ColorHex("#678").String(); got != "\x1b[38;2;102;119;136m" {
			t.Errorf("got %q", got)
		}
		if got := Italic.String(); got != "\x1b[3m" {
			t.Errorf("got %q", got)
		}
	})
}
