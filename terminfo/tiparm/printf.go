package tiparm

import "strconv"

// nullLiteral is what a %-directive prints when the value it would format
// is missing, e.g. a %d with nothing left on the stack.
const nullLiteral = "(null)"

// PrintfSpec is a parsed printf-subset conversion: [:flags][width][.precision]conv.
// The leading ':' before flags (present in the source text but not stored
// here) exists only to disambiguate a flag run from terminfo's own
// single-letter operators, e.g. '%-' (Sub) versus '%:-d' (left-justified %d).
type PrintfSpec struct {
	LeftAlign bool
	ShowSign  bool
	PadSign   bool
	Alt       bool
	Width     *int
	Prec      *int
	Conv      byte // one of 'd', 'o', 'x', 'X', 's', 'c'
}

func parsePrintfSpec(s string) (PrintfSpec, int, error) {
	var spec PrintfSpec
	i := 0
	if i < len(s) && s[i] == ':' {
		i++
		i = scanFlags(s, i, &spec)
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > start {
		w, _ := strconv.Atoi(s[start:i])
		spec.Width = &w
	}
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return spec, 0, errSimple(BadPrecisionSpecified)
		}
		p, _ := strconv.Atoi(s[start:i])
		spec.Prec = &p
	}
	if i >= len(s) {
		return spec, 0, errSimple(UnexpectedEof)
	}
	switch s[i] {
	case 'd', 'o', 'x', 'X', 's', 'c':
		spec.Conv = s[i]
	default:
		return spec, 0, errSimple(BadPrintfSpecifier)
	}
	return spec, i + 1, nil
}

func scanFlags(s string, i int, spec *PrintfSpec) int {
	for i < len(s) {
		switch s[i] {
		case '+':
			spec.ShowSign = true
		case '-':
			spec.LeftAlign = true
		case '#':
			spec.Alt = true
		case ' ':
			spec.PadSign = true
		default:
			return i
		}
		i++
	}
	return i
}

// Format renders a, which must have been popped off the VM stack, according
// to spec.
func (spec PrintfSpec) Format(a Argument) (string, error) {
	switch spec.Conv {
	case 's':
		if a.kind != KindString {
			return "", errType("string", a.kind.String())
		}
		return spec.formatString(a.s), nil
	case 'd', 'o', 'x', 'X':
		switch a.kind {
		case KindInt:
			return spec.formatNumber(a.i), nil
		case KindChar:
			return spec.formatNumber(int64(a.c)), nil
		default:
			return "", errType("integer", a.kind.String())
		}
	case 'c':
		c, err := argToChar(a)
		if err != nil {
			return "", err
		}
		return pad(string([]byte{c}), spec.Width, spec.LeftAlign), nil
	default:
		return "", errSimple(BadPrintfSpecifier)
	}
}

func (spec PrintfSpec) formatString(s string) string {
	if spec.Prec != nil && *spec.Prec < len(s) {
		s = s[:*spec.Prec]
	}
	return pad(s, spec.Width, spec.LeftAlign)
}

// formatNumber reproduces a long-standing quirk of the reference printf
// subset: a precision on an integer conversion that is smaller than the
// number of digits truncates the *most significant* digits down to that
// count, where C would print every digit. A precision larger than the digit
// count zero-pads up to it, as in C. Preserve this;
// callers that need standard printf precision semantics should not rely on
// this conversion.
func (spec PrintfSpec) formatNumber(n int64) string {
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}

	var radix uint64
	var digitSet string
	switch spec.Conv {
	case 'o':
		radix, digitSet = 8, "01234567"
	case 'x':
		radix, digitSet = 16, "0123456789abcdef"
	case 'X':
		radix, digitSet = 16, "0123456789ABCDEF"
	default:
		radix, digitSet = 10, "0123456789"
	}

	var rev []byte
	if u == 0 {
		rev = []byte{'0'}
	} else {
		for u > 0 {
			rev = append(rev, digitSet[u%radix])
			u /= radix
		}
	}
	digits := make([]byte, len(rev))
	for i, b := range rev {
		digits[len(rev)-1-i] = b
	}

	if spec.Prec != nil {
		p := *spec.Prec
		switch {
		case p == 0 && n == 0:
			digits = nil
		case p < len(digits):
			digits = digits[len(digits)-p:]
		case p > len(digits):
			zeros := make([]byte, p-len(digits))
			for i := range zeros {
				zeros[i] = '0'
			}
			digits = append(zeros, digits...)
		}
	}

	var prefix string
	switch {
	case neg:
		prefix = "-"
	case spec.ShowSign:
		prefix = "+"
	case spec.PadSign:
		prefix = " "
	}
	if spec.Alt {
		switch spec.Conv {
		case 'o':
			if len(digits) == 0 || digits[0] != '0' {
				prefix += "0"
			}
		case 'x':
			prefix += "0x"
		case 'X':
			prefix += "0X"
		}
	}

	return pad(prefix+string(digits), spec.Width, spec.LeftAlign)
}

func pad(s string, width *int, leftAlign bool) string {
	if width == nil || *width <= len(s) {
		return s
	}
	fill := make([]byte, *width-len(s))
	for i := range fill {
		fill[i] = ' '
	}
	if leftAlign {
		return s + string(fill)
	}
	return string(fill) + s
}
