package terminfo

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Lookup searches the standard terminfo(5) database locations for term and
// returns its parsed, zero-copy View. The search order follows the
// behaviour documented in terminfo(5) as distributed by ncurses: $TERMINFO,
// then $HOME/.terminfo, then each directory in $TERMINFO_DIRS, then
// /lib/terminfo, then /usr/share/terminfo. If none of those yield a match it
// falls back to the
// embedded builtin table.
func Lookup(term string) (*View, error) {
	data, err := find(term)
	if err != nil {
		if b, ok := builtinTerms[term]; ok {
			return Parse(b)
		}
		return nil, err
	}
	return Parse(data)
}

// LookupEnv calls Lookup with $TERM.
func LookupEnv() (*View, error) {
	term := os.Getenv("TERM")
	if term == "" {
		return nil, fmt.Errorf("terminfo: $TERM not set")
	}
	return Lookup(term)
}

func find(term string) ([]byte, error) {
	if term == "" {
		return nil, fmt.Errorf("terminfo: empty terminal name")
	}

	if dir := os.Getenv("TERMINFO"); dir != "" {
		if data, err := fromDir(term, dir); err == nil {
			return data, nil
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		if data, err := fromDir(term, home+"/.terminfo"); err == nil {
			return data, nil
		}
	}

	if dirs := os.Getenv("TERMINFO_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, ":") {
			if dir == "" {
				dir = "/usr/share/terminfo"
			}
			if data, err := fromDir(term, dir); err == nil {
				return data, nil
			}
		}
	}

	if data, err := fromDir(term, "/lib/terminfo"); err == nil {
		return data, nil
	}
	return fromDir(term, "/usr/share/terminfo")
}

// fromDir tries the typical Unix on-disk layout ("<dir>/<first-char>/<term>")
// and falls back to the hex-encoded directory layout macOS ships.
func fromDir(term, dir string) ([]byte, error) {
	data, err := os.ReadFile(dir + "/" + term[:1] + "/" + term)
	if err == nil {
		return data, nil
	}
	return os.ReadFile(dir + "/" + hex.EncodeToString([]byte(term[:1])) + "/" + term)
}
