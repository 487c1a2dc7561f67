package terminfo

// builtinTerms is the last-resort fallback consulted by Lookup when no
// on-disk terminfo database has an entry for the requested terminal. It is
// built at package init time from a handful of minimal, hand-maintained
// capability sets rather than a generated snapshot of a real system
// database — see gen.go and DESIGN.md.
var builtinTerms = map[string][]byte{}

func init() {
	for name, build := range builtinBuilders {
		b, err := build().Marshal()
		if err != nil {
			// builtinBuilders are fixed at compile time; a Marshal failure
			// here means one of them is malformed.
			panic("terminfo: builtin " + name + ": " + err.Error())
		}
		builtinTerms[name] = b
	}
}

var builtinBuilders = map[string]func() *Buf{
	"dumb": buildDumb,
	"ansi": buildAnsi,
}

// buildDumb is the "dumb" terminal: no cursor addressing, no color, only
// the capabilities every terminal must have to be usable as a pipe target.
func buildDumb() *Buf {
	b := NewBuf()
	b.SetNames("dumb", "80-column dumb tty")
	b.SetBoolean(AutoRightMargin, true)
	b.SetNumber(Columns, 80)
	_ = b.SetString(Bell, "\a")
	_ = b.SetString(CarriageReturn, "\r")
	_ = b.SetString(Newline, "\n")
	return b
}

// buildAnsi is a minimal ANSI X3.64 entry: CSI cursor addressing and SGR
// color/attributes, no terminal-specific function-key sequences.
func buildAnsi() *Buf {
	b := NewBuf()
	b.SetNames("ansi", "ANSI terminal emulation")
	b.SetBoolean(AutoRightMargin, true)
	b.SetBoolean(BackColorErase, true)
	b.SetNumber(Columns, 80)
	b.SetNumber(Lines, 24)
	b.SetNumber(MaxColors, 8)
	b.SetNumber(MaxPairs, 64)
	_ = b.SetString(Bell, "\a")
	_ = b.SetString(CarriageReturn, "\r")
	_ = b.SetString(Newline, "\n")
	_ = b.SetString(ClearScreen, "\x1b[H\x1b[J")
	_ = b.SetString(ClrEol, "\x1b[K")
	_ = b.SetString(ClrEos, "\x1b[J")
	_ = b.SetString(CursorAddress, "\x1b[%i%p1%d;%p2%dH")
	_ = b.SetString(CursorUp, "\x1b[A")
	_ = b.SetString(CursorDown, "\x1b[B")
	_ = b.SetString(CursorLeft, "\x1b[D")
	_ = b.SetString(CursorRight, "\x1b[C")
	_ = b.SetString(CursorHome, "\x1b[H")
	_ = b.SetString(EnterBoldMode, "\x1b[1m")
	_ = b.SetString(EnterUnderlineMode, "\x1b[4m")
	_ = b.SetString(EnterReverseMode, "\x1b[7m")
	_ = b.SetString(ExitAttributeMode, "\x1b[0m")
	_ = b.SetString(SetAForeground, "\x1b[3%p1%dm")
	_ = b.SetString(SetABackground, "\x1b[4%p1%dm")
	_ = b.SetString(OrigPair, "\x1b[39;49m")
	return b
}
