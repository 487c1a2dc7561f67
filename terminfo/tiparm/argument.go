// Package tiparm implements the stack-based parameter-string language used
// by terminfo(5) capabilities such as cursor_address and set_a_foreground —
// the same directive set the C library exposes through tparm(3). Execute
// parses and runs a capability string against positional parameters in one
// call; Parse is exposed separately for callers that want to run the same
// string repeatedly without re-parsing it each time.
package tiparm

// Kind identifies which variant of Argument is populated.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindChar
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	default:
		return "unknown"
	}
}

// Argument is a single positional parameter or stack operand: an integer, a
// string, or a single byte. The zero Argument is the integer 0.
type Argument struct {
	kind Kind
	i    int64
	s    string
	c    byte
}

// Int wraps an integer argument.
func Int(v int64) Argument { return Argument{kind: KindInt, i: v} }

// Str wraps a string argument.
func Str(v string) Argument { return Argument{kind: KindString, s: v} }

// Ch wraps a single-byte character argument.
func Ch(v byte) Argument { return Argument{kind: KindChar, c: v} }

// Bool wraps a boolean as the integer 0 or 1, the representation tparm(3)
// callers conventionally use for flag parameters.
func Bool(v bool) Argument {
	if v {
		return Int(1)
	}
	return Int(0)
}

// Kind reports which variant a is.
func (a Argument) Kind() Kind { return a.kind }
