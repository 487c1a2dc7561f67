package tui

import "strings"

// Render expands a small set of inline markup sigils into Color escape
// sequences, in the spirit of usage.go's regex-based post-processing of
// usage strings:
//
//	_underline_    → Underline
//	*bold*         → Bold
//	~dim~          → Dim
//	%[name]...%[/] → the named Color, reset at %[/]
//
// Sigils don't nest; a second occurrence of the same sigil closes it. Text
// with no recognized markup is returned unchanged.
func Render(format string) string { return expand(format) }

var namedColors = map[string]Color{
	"black": Black, "red": Red, "green": Green, "yellow": Yellow,
	"blue": Blue, "magenta": Magenta, "cyan": Cyan, "white": White,
	"bold": Bold, "dim": Dim, "underline": Underline, "reverse": Reverse,
}

// expand performs one left-to-right pass, handling all sigils together so
// that "*bold* and _underline_" both resolve correctly in a single string.
func expand(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '%' && i+1 < len(s) && s[i+1] == '[':
			end := strings.IndexByte(s[i+2:], ']')
			if end == -1 {
				b.WriteByte(s[i])
				i++
				continue
			}
			name := s[i+2 : i+2+end]
			i += 2 + end + 1
			if name == "/" {
				b.WriteString(Reset.String())
				continue
			}
			if c, ok := namedColors[name]; ok {
				b.WriteString(c.String())
			}
		case s[i] == '_':
			j := strings.IndexByte(s[i+1:], '_')
			if j == -1 {
				b.WriteByte(s[i])
				i++
				continue
			}
			b.WriteString(Colorize(s[i+1:i+1+j], Underline))
			i += j + 2
		case s[i] == '*':
			j := strings.IndexByte(s[i+1:], '*')
			if j == -1 {
				b.WriteByte(s[i])
				i++
				continue
			}
			b.WriteString(Colorize(s[i+1:i+1+j], Bold))
			i += j + 2
		case s[i] == '~':
			j := strings.IndexByte(s[i+1:], '~')
			if j == -1 {
				b.WriteByte(s[i])
				i++
				continue
			}
			b.WriteString(Colorize(s[i+1:i+1+j], Dim))
			i += j + 2
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
