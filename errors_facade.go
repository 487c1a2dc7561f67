package tui

import "fmt"

// MissingTermInfoField is returned when the façade needs a capability the
// active terminfo entry doesn't define.
type MissingTermInfoField struct {
	Field string
}

func (e MissingTermInfoField) Error() string {
	return fmt.Sprintf("tui: terminfo entry %q has no %q capability", termName, e.Field)
}
