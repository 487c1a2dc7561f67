// Command csi tests CSI / terminfo cursor escape sequences for demo purposes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"git.sr.ht/~tuxcoder/tui"
)

func main() {
	defer tui.CursorShow(true)
	s := 200
	if len(os.Args) > 1 {
		if os.Args[1] == "pos" {
			r, c, _ := tui.CursorPosition()
			fmt.Printf("%d×%d\n", r, c)
			return
		}
		s, _ = strconv.Atoi(os.Args[1])
	}

	steps := []func(){
		func() { tui.ClearScreen() },
		func() { fmt.Println("Hello!") },
		func() { fmt.Println("Hella!") },
		func() { tui.CursorSet(2, 5) },
		func() { tui.CursorShow(false) },
		func() { fmt.Print("o") },
		func() { tui.CursorShow(true) },
		func() { tui.CursorMove(2, tui.Right) },
		func() { tui.CursorMove(2, tui.Down) },
		func() { tui.CursorMove(2, tui.Left) },
		func() { tui.CursorMove(2, tui.Up) },
		func() { tui.CursorMove(1, tui.Down) },
		func() { tui.EraseLine() },
		func() {
			r, c, _ := tui.CursorPosition()
			tui.CursorMove(1, tui.Right)
			r2, c2, _ := tui.CursorPosition()
			tui.CursorMove(1, tui.Left)
			fmt.Printf("pos: %d×%d; %d×%d\n", r, c, r2, c2)
		},
		func() { fmt.Println("Done") },
	}
	for _, f := range steps {
		f()
		time.Sleep(time.Duration(s) * time.Millisecond)
	}
}
