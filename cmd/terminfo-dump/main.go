// Command terminfo-dump parses a compiled terminfo(5) entry and prints its
// capabilities, or executes a parameter string against it.
package main

import (
	"fmt"
	"os"

	"git.sr.ht/~tuxcoder/tui"
	"git.sr.ht/~tuxcoder/tui/terminfo"
	"git.sr.ht/~tuxcoder/tui/terminfo/tiparm"
)

var usage = tui.Usage(tui.UsageTrim|tui.UsageHeaders|tui.UsageFlags, `
Usage:
    terminfo-dump [-term name] [cap]
    terminfo-dump -exec spec [args..]

Description:
    Loads a terminfo(5) entry (from -term, or $TERM) and either dumps its
    capabilities, prints a single named capability, or executes a raw
    parameter string against the given arguments.

Options:
    -term name
        Use this terminal name instead of $TERM.

    -exec spec
        Parse and run spec as a tparm(3)-style parameter string, passing
        each remaining positional argument as an integer parameter, or as
        a string parameter where it isn't an integer.

    -version
        Print the build version and exit.
`)

func main() {
	f := tui.NewFlags(os.Args)
	var (
		term    = f.String(os.Getenv("TERM"), "term")
		exec    = f.String("", "exec")
		showVer = f.Bool(false, "version")
	)
	tui.F(f.Parse())

	if showVer.Bool() {
		tui.PrintVersion(false)
		return
	}

	v, err := terminfo.Lookup(term.String())
	tui.F(err)

	if exec.Set() {
		args := make([]tiparm.Argument, 0, len(f.Args))
		for _, a := range f.Args {
			var n int64
			_, err := fmt.Sscanf(a, "%d", &n)
			if err != nil {
				args = append(args, tiparm.Str(a))
				continue
			}
			args = append(args, tiparm.Int(n))
		}
		out, err := tiparm.Execute(exec.String(), args...)
		tui.F(err)
		fmt.Println(out)
		return
	}

	if cap := f.Shift(); cap != "" {
		field, ok := lookupStringField(cap)
		if !ok {
			tui.Fatalf("unknown string capability: %q", cap)
		}
		s, ok := v.String(field)
		if !ok {
			tui.Fatalf("capability %q is not set for %q", cap, term.String())
		}
		fmt.Printf("%q\n", s)
		return
	}

	names := v.Names()
	fmt.Printf("%s\n", names[0])
	if len(names) > 1 {
		fmt.Printf("  aliases: %v\n", names[1:len(names)-1])
		fmt.Printf("  desc: %s\n", names[len(names)-1])
	}
	if cols, ok := v.Number(terminfo.Columns); ok {
		fmt.Printf("  columns: %d\n", cols)
	}
	if colors, ok := v.Number(terminfo.MaxColors); ok {
		fmt.Printf("  colors: %d\n", colors)
	}
	fmt.Printf("  extended capabilities: %v\n", v.HasExt())
}

func lookupStringField(name string) (terminfo.StringField, bool) {
	for i := 0; i < terminfo.PredefinedStringsCount; i++ {
		f := terminfo.StringField(i)
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}
