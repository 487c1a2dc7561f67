package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"git.sr.ht/~tuxcoder/tui/terminfo"
)

// active is the terminfo entry for $TERM, loaded once at package init.
// It stays nil if $TERM is unset or no matching entry (on disk or builtin)
// could be found; callers see that as MissingTermInfoField/ErrNoTermInfo
// rather than a panic.
var (
	active   *terminfo.View
	termName string

	// Keys is the escape-sequence → Key table for the active terminal,
	// built from active via BuildKeyTable.
	Keys map[string]Key
)

func init() {
	LoadTerminfo(os.Getenv("TERM"))
}

// LoadTerminfo loads the terminfo entry for term and rebuilds the package's
// active capability and key tables from it. Programs that want to work
// against a terminal other than the one named by $TERM (for example when
// rendering output meant for a different device) can call this directly.
func LoadTerminfo(term string) error {
	if term == "" {
		active, termName, Keys = nil, "", nil
		return fmt.Errorf("tui: TERM not set")
	}
	v, err := terminfo.Lookup(term)
	if err != nil {
		active, termName, Keys = nil, "", nil
		return err
	}
	active = v
	if names := v.Names(); len(names) > 0 {
		termName = names[0]
	} else {
		termName = term
	}
	Keys = BuildKeyTable(v)
	return nil
}

// Active returns the terminfo entry loaded for the current terminal, or nil
// if none could be loaded.
func Active() *terminfo.View { return active }

// Describe renders a human-readable summary of the active terminal's name,
// description, known keys, and capabilities.
func Describe() string {
	if active == nil {
		return "no terminfo entry loaded"
	}
	var b strings.Builder
	names := active.Names()
	if len(names) > 0 {
		fmt.Fprintf(&b, "%s", names[0])
		if len(names) > 1 {
			fmt.Fprintf(&b, " – %s", strings.Join(names[1:], ", "))
		}
		b.WriteString("\n")
	}

	sorted := make([]string, 0, len(Keys))
	for seq, k := range Keys {
		if k.Shift() || k.Ctrl() || k.Alt() {
			continue
		}
		kk := k.String()
		pad := 20 - len(kk)
		if pad < 1 {
			pad = 1
		}
		sorted = append(sorted, fmt.Sprintf("  %s%s %#v", kk, strings.Repeat(" ", pad), seq))
	}
	sort.Strings(sorted)
	b.WriteString("\nKeys:\n")
	for _, s := range sorted {
		b.WriteString(s + "\n")
	}

	sorted = sorted[:0]
	for c := range capNames {
		s, err := Get(c)
		if err != nil {
			continue
		}
		cc := c.String()
		pad := 20 - len(cc)
		if pad < 1 {
			pad = 1
		}
		sorted = append(sorted, fmt.Sprintf("  %s%s %#v", cc, strings.Repeat(" ", pad), s))
	}
	sort.Strings(sorted)
	b.WriteString("\nCaps:\n")
	for _, s := range sorted {
		b.WriteString(s + "\n")
	}

	return b.String()
}
