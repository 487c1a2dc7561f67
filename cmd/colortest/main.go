// Command colortest prints an overview of colors for testing.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~tuxcoder/tui"
)

var std = []tui.Color{tui.Black, tui.Red, tui.Green, tui.Yellow, tui.Blue, tui.Magenta, tui.Cyan, tui.White,
	tui.Black.Brighten(1), tui.Red.Brighten(1), tui.Green.Brighten(1), tui.Yellow.Brighten(1),
	tui.Blue.Brighten(1), tui.Magenta.Brighten(1), tui.Cyan.Brighten(1), tui.White.Brighten(1)}

func ranges(n ...int) []uint8 {
	if len(n)%2 != 0 {
		panic("ranges: odd argument count")
	}
	var rng []uint8
	for j := 0; j < len(n); j += 2 {
		for i := n[j]; i <= n[j+1]; i++ {
			rng = append(rng, uint8(i))
		}
	}
	return rng
}

func main() {
	tui.WantColor = true
	bg := false
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "bg":
			bg = true
		case "brighten":
			if len(os.Args) != 3 {
				tui.Fatalf("specify a color:\n  colortest brighten 26\n  colortest brighten #123123")
			}
			brightTest(os.Args[2])
			return
		default:
			tui.Fatalf("unknown command; supported commands: 'bg', 'brighten'")
		}
	}
	toBg := func(c tui.Color) tui.Color {
		if bg {
			return c.Bg()
		}
		return c
	}

	fmt.Print("Attrs:  ")
	fmt.Print("Bold      ", tui.Colorize("11", tui.Bold), " ")
	fmt.Print("Dim        ", tui.Colorize("22", tui.Dim), " ")
	fmt.Print("Italic  ", tui.Colorize("33", tui.Italic), " ")
	fmt.Print("Underline ", tui.Colorize("44", tui.Underline), " ")
	fmt.Print("\n        ")
	fmt.Print("Overline  ", tui.Colorize("55", tui.Overline), " ")
	fmt.Print("Reverse    ", tui.Colorize("66", tui.Reverse), " ")
	fmt.Print("Concealed ", tui.Colorize("77", tui.Concealed), " ")
	fmt.Print("StrikeOut ", tui.Colorize("88", tui.StrikeOut), " ")

	fmt.Print("\n")
	fmt.Println("                       ┌ Regular ──────────────┐  ┌ Bright ─────────────┐")
	fmt.Print("Standard colors:       ")
	for i, c := range std {
		tui.Colorf("%-3d", toBg(c), i)
	}

	fmt.Print("\nStandard colors (256): ")
	for i := uint8(0); i <= 16; i++ {
		tui.Colorf("%-3d", toBg(tui.Color256(i)), i)
	}

	fmt.Print("\n\n")
	for _, i := range ranges(16, 33, 52, 69, 88, 105, 124, 141, 160, 177, 196, 213) {
		if i > 16 && (i-16)%18 == 0 {
			fmt.Println("")
		}
		tui.Colorf("%-4d", toBg(tui.Color256(i)), i)
	}
	for _, i := range ranges(34, 51, 70, 87, 106, 123, 142, 159, 178, 195, 214, 231) {
		if i > 16 && (i-16)%18 == 0 {
			fmt.Println("")
		}
		tui.Colorf("%-4d", toBg(tui.Color256(i)), i)
	}

	fmt.Print("\nGrey-tones: ")
	for i := 232; i <= 255; i++ {
		if i == 244 {
			fmt.Print("\n            ")
		}
		tui.Colorf("%-4d", toBg(tui.Color256(uint8(i))), i)
	}
	fmt.Printf("\nRun '%s bg' to set background instead of foreground.\n", tui.Program())
	fmt.Printf("Run '%s brighten [color]' to test the Brighten() method.\n", tui.Program())
}

func brightTest(name string) {
	var c tui.Color
	if name[0] == '#' {
		c = tui.ColorHex(name)
		if c == tui.ColorError {
			tui.Fatalf("error parsing RGB")
		}
	} else {
		n, err := strconv.ParseUint(name, 10, 8)
		tui.F(err)
		c = tui.Color256(uint8(n))
	}
	c = c.Bg()

	br := make([]tui.Color, 0, 32)
	for i := 0; ; i++ {
		b := c.Brighten(i)
		if i > 1 && b == br[len(br)-1] {
			break
		}
		br = append(br, b)
	}

	dr := make([]tui.Color, 0, 32)
	for i := 0; ; i-- {
		b := c.Brighten(i)
		if i < -1 && b == dr[len(dr)-1] {
			break
		}
		dr = append(dr, b)
	}

	w, _, _ := tui.TerminalSize(os.Stdout.Fd())
	if w <= 0 {
		w = 76
	}
	w -= 12

	fmt.Printf("Brighten: %s%s\n", pr(br, w), tui.Reset)
	fmt.Printf("Darken:   %s%s\n", pr(dr, w), tui.Reset)
}

func pr(t []tui.Color, w int) string {
	pad := strings.Repeat(" ", 10)
	out := ""
	for i, c := range t {
		out += c.String() + " "
		if i > 0 && (i+1)%w == 0 {
			out += tui.Reset.String() + "\n" + pad
		}
	}
	return out + tui.Reset.String() +
		fmt.Sprintf("\n%s%s → %s in %d steps", pad, cname(t[0]), cname(t[len(t)-1]), len(t)-1)
}

func cname(c tui.Color) string {
	if c&tui.ColorMode256Bg != 0 {
		return fmt.Sprintf("%d", int(c>>tui.ColorOffsetBg))
	}
	c = c >> tui.ColorOffsetBg
	return fmt.Sprintf("#%02x%02x%02x", int(c%256), int(c>>8%256), int(c>>16%256))
}
