package terminfo

import (
	"strings"

	"git.sr.ht/~tuxcoder/tui/terminfo/tiparm"
)

// Buf is an owned, mutable terminfo entry. Unlike View it doesn't borrow
// from a source buffer: every Set* call copies its argument in, growing the
// backing arrays with sentinel filler (false / Invalid) as needed, the same
// way the reference buffer type does. Appended strings are never
// deduplicated against ones already in the table — two capabilities with
// the same value get two copies.
type Buf struct {
	names         []string
	bools         []bool
	numbers       []uint16
	stringOffsets []uint16
	strtab        []byte

	ext *extBuf
}

type extBuf struct {
	boolNames []string
	bools     []bool

	numberNames []string
	numbers     []uint16

	stringNames   []string
	stringOffsets []uint16
	strtab        []byte
}

// NewBuf returns an empty owned entry with no names and no capabilities set.
func NewBuf() *Buf {
	return &Buf{}
}

// FromView copies every capability set in v into a new owned Buf.
func FromView(v *View) *Buf {
	b := &Buf{names: append([]string(nil), v.Names()...)}
	for f := BooleanField(0); int(f) < PredefinedBooleansCount; f++ {
		b.SetBoolean(f, v.Boolean(f))
	}
	for f := NumericField(0); int(f) < PredefinedNumericsCount; f++ {
		if n, ok := v.Number(f); ok {
			b.SetNumber(f, n)
		}
	}
	for f := StringField(0); int(f) < PredefinedStringsCount; f++ {
		if s, ok := v.String(f); ok {
			// The table can only hold up to 0xFFFF bytes; a well-formed
			// source view can never overflow a fresh Buf with the same
			// capabilities, so this error is not expected in practice.
			_ = b.SetString(f, s)
		}
	}
	if v.HasExt() {
		for _, n := range v.ExtBooleanNames() {
			val, _ := v.ExtBoolean(n)
			b.SetExtBoolean(n, val)
		}
		for _, n := range v.ExtNumberNames() {
			val, _ := v.ExtNumber(n)
			b.SetExtNumber(n, val)
		}
		for _, n := range v.ExtStringNames() {
			val, _ := v.ExtString(n)
			_ = b.SetExtString(n, val)
		}
	}
	return b
}

// Names returns the entry's name aliases.
func (b *Buf) Names() []string {
	return append([]string(nil), b.names...)
}

// SetNames replaces the entry's name aliases.
func (b *Buf) SetNames(names ...string) {
	b.names = append([]string(nil), names...)
}

func readStrOwned(tab []byte, off uint16) (string, bool) {
	if off == Invalid {
		return "", false
	}
	o := int(off)
	if o >= len(tab) {
		return "", false
	}
	rest := tab[o:]
	n := strlen(rest)
	return string(rest[:n]), true
}

func appendString(tab []byte, s string) ([]byte, uint16, error) {
	off := len(tab)
	if off+len(s)+1 > 0xFFFF {
		return tab, 0, errSimple(MaxStrTabSizeReached)
	}
	tab = append(tab, s...)
	tab = append(tab, 0)
	return tab, uint16(off), nil
}

// Boolean returns the given predefined boolean capability.
func (b *Buf) Boolean(f BooleanField) bool {
	i := int(f)
	if i < 0 || i >= len(b.bools) {
		return false
	}
	return b.bools[i]
}

// SetBoolean sets the given predefined boolean capability.
func (b *Buf) SetBoolean(f BooleanField, v bool) {
	i := int(f)
	for len(b.bools) <= i {
		b.bools = append(b.bools, false)
	}
	b.bools[i] = v
}

// Number returns the given predefined numeric capability and whether it is
// set.
func (b *Buf) Number(f NumericField) (int, bool) {
	i := int(f)
	if i < 0 || i >= len(b.numbers) {
		return 0, false
	}
	v := b.numbers[i]
	if v == Invalid {
		return 0, false
	}
	return int(v), true
}

// SetNumber sets the given predefined numeric capability.
func (b *Buf) SetNumber(f NumericField, v int) {
	i := int(f)
	for len(b.numbers) <= i {
		b.numbers = append(b.numbers, Invalid)
	}
	b.numbers[i] = uint16(v)
}

// String returns the given predefined string capability and whether it is
// set.
func (b *Buf) String(f StringField) (string, bool) {
	i := int(f)
	if i < 0 || i >= len(b.stringOffsets) {
		return "", false
	}
	return readStrOwned(b.strtab, b.stringOffsets[i])
}

// SetString sets the given predefined string capability. It fails with
// MaxStrTabSizeReached if doing so would grow the string table past the
// 16-bit offset space a terminfo file can address.
func (b *Buf) SetString(f StringField, s string) error {
	tab, off, err := appendString(b.strtab, s)
	if err != nil {
		return err
	}
	b.strtab = tab
	i := int(f)
	for len(b.stringOffsets) <= i {
		b.stringOffsets = append(b.stringOffsets, Invalid)
	}
	b.stringOffsets[i] = off
	return nil
}

func (b *Buf) ensureExt() *extBuf {
	if b.ext == nil {
		b.ext = &extBuf{}
	}
	return b.ext
}

func (e *extBuf) capCount() int {
	return len(e.boolNames) + len(e.numberNames) + len(e.stringNames)
}

// HasExt reports whether the entry carries any extended capabilities.
func (b *Buf) HasExt() bool {
	return b.ext != nil && b.ext.capCount() > 0
}

// ExtBoolean looks up an extended boolean capability by name.
func (b *Buf) ExtBoolean(name string) (bool, bool) {
	if b.ext == nil {
		return false, false
	}
	for i, n := range b.ext.boolNames {
		if n == name {
			return b.ext.bools[i], true
		}
	}
	return false, false
}

// SetExtBoolean sets an extended boolean capability by name, creating the
// extended section on first use. It fails with
// MaximumCapabilityCountExceeded if the file's 16-bit capability count
// would overflow.
func (b *Buf) SetExtBoolean(name string, v bool) error {
	e := b.ensureExt()
	for i, n := range e.boolNames {
		if n == name {
			e.bools[i] = v
			return nil
		}
	}
	if e.capCount() >= 0xFFFF {
		return errSimple(MaximumCapabilityCountExceeded)
	}
	e.boolNames = append(e.boolNames, name)
	e.bools = append(e.bools, v)
	return nil
}

// ExtNumber looks up an extended numeric capability by name.
func (b *Buf) ExtNumber(name string) (int, bool) {
	if b.ext == nil {
		return 0, false
	}
	for i, n := range b.ext.numberNames {
		if n == name {
			v := b.ext.numbers[i]
			if v == Invalid {
				return 0, false
			}
			return int(v), true
		}
	}
	return 0, false
}

// SetExtNumber sets an extended numeric capability by name.
func (b *Buf) SetExtNumber(name string, v int) error {
	e := b.ensureExt()
	for i, n := range e.numberNames {
		if n == name {
			e.numbers[i] = uint16(v)
			return nil
		}
	}
	if e.capCount() >= 0xFFFF {
		return errSimple(MaximumCapabilityCountExceeded)
	}
	e.numberNames = append(e.numberNames, name)
	e.numbers = append(e.numbers, uint16(v))
	return nil
}

// ExtString looks up an extended string capability by name.
func (b *Buf) ExtString(name string) (string, bool) {
	if b.ext == nil {
		return "", false
	}
	for i, n := range b.ext.stringNames {
		if n == name {
			return readStrOwned(b.ext.strtab, b.ext.stringOffsets[i])
		}
	}
	return "", false
}

// SetExtString sets an extended string capability by name.
func (b *Buf) SetExtString(name, v string) error {
	e := b.ensureExt()
	for i, n := range e.stringNames {
		if n == name {
			tab, off, err := appendString(e.strtab, v)
			if err != nil {
				return err
			}
			e.strtab = tab
			e.stringOffsets[i] = off
			return nil
		}
	}
	if e.capCount() >= 0xFFFF {
		return errSimple(MaximumCapabilityCountExceeded)
	}
	tab, off, err := appendString(e.strtab, v)
	if err != nil {
		return err
	}
	e.strtab = tab
	e.stringNames = append(e.stringNames, name)
	e.stringOffsets = append(e.stringOffsets, off)
	return nil
}

// Exec looks up the given string capability, then parses and runs it as a
// parameterized capability string against args, in the style of the
// traditional tparm(3)/tputs(3) pair.
func (b *Buf) Exec(f StringField, args ...tiparm.Argument) (string, error) {
	spec, ok := b.String(f)
	if !ok {
		return "", ErrCapabilityAbsent
	}
	return tiparm.Execute(spec, args...)
}

func putLE16(out []byte, v uint16) []byte {
	return append(out, byte(v), byte(v>>8))
}

// Marshal serializes b into a compiled terminfo(5) entry, the inverse of
// Parse. Parse(b.Marshal()) reproduces every capability b had set.
func (b *Buf) Marshal() ([]byte, error) {
	names := strings.Join(b.names, "|")
	namesSize := len(names) + 1
	boolCount := len(b.bools)
	numCount := len(b.numbers)
	strCount := len(b.stringOffsets)

	var out []byte
	out = putLE16(out, legacyMagic)
	out = putLE16(out, uint16(namesSize))
	out = putLE16(out, uint16(boolCount))
	out = putLE16(out, uint16(numCount))
	out = putLE16(out, uint16(strCount))
	out = putLE16(out, uint16(len(b.strtab)))

	out = append(out, names...)
	out = append(out, 0)
	for _, v := range b.bools {
		if v {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	if (namesSize+boolCount)%2 != 0 {
		out = append(out, 0)
	}
	for _, v := range b.numbers {
		out = putLE16(out, v)
	}
	for _, v := range b.stringOffsets {
		out = putLE16(out, v)
	}
	out = append(out, b.strtab...)

	if b.ext == nil {
		return out, nil
	}
	ext, err := b.ext.marshal()
	if err != nil {
		return nil, err
	}
	return append(out, ext...), nil
}

func (e *extBuf) marshal() ([]byte, error) {
	boolCount := len(e.boolNames)
	numCount := len(e.numberNames)
	strCount := len(e.stringNames)

	nameTab := append([]byte(nil), e.strtab...)
	lastOffset := len(nameTab)
	nameOffsets := make([]uint16, 0, boolCount+numCount+strCount)
	appendName := func(name string) error {
		tab, off, err := appendString(nameTab, name)
		if err != nil {
			return err
		}
		nameTab = tab
		nameOffsets = append(nameOffsets, off)
		return nil
	}
	for _, n := range e.boolNames {
		if err := appendName(n); err != nil {
			return nil, err
		}
	}
	for _, n := range e.numberNames {
		if err := appendName(n); err != nil {
			return nil, err
		}
	}
	for _, n := range e.stringNames {
		if err := appendName(n); err != nil {
			return nil, err
		}
	}

	var out []byte
	out = putLE16(out, uint16(boolCount))
	out = putLE16(out, uint16(numCount))
	out = putLE16(out, uint16(strCount))
	out = putLE16(out, uint16(len(nameTab)))
	out = putLE16(out, uint16(lastOffset))

	for _, v := range e.bools {
		if v {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	if boolCount%2 != 0 {
		out = append(out, 0)
	}
	for _, v := range e.numbers {
		out = putLE16(out, v)
	}
	for _, v := range e.stringOffsets {
		out = putLE16(out, v)
	}
	for _, v := range nameOffsets {
		out = putLE16(out, v)
	}
	out = append(out, nameTab...)
	return out, nil
}
