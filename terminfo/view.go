package terminfo

import (
	"strings"

	"git.sr.ht/~tuxcoder/tui/terminfo/tiparm"
)

// legacyMagic is the magic number at the head of every compiled terminfo(5)
// file this package reads. The 32-bit-number format (magic 0o1036) used by
// some modern ncurses builds for terminals needing numeric capabilities
// above 32767 is not supported: Parse rejects it with InvalidMagicNumber.
const legacyMagic = 0o432

// View is a zero-copy terminfo entry: every method reads directly out of
// the byte slice passed to Parse, which must outlive the View.
type View struct {
	namesRaw      []byte
	bools         []byte
	numbers       []byte
	stringOffsets []byte
	strtab        []byte

	ext *extView
}

// extView is the parsed extended-capability section. nameOffsets holds one
// offset per extended capability, in bools-then-numbers-then-strings order,
// each pointing into strtab at or past lastOffset. Storing lastOffset here
// (captured once, at parse time, from the file's own header field) avoids
// ever having to rediscover the value/name boundary by scanning the string
// table backward for the Nth NUL byte.
type extView struct {
	bools         []byte
	numbers       []byte
	stringOffsets []byte
	nameOffsets   []byte
	strtab        []byte
	lastOffset    int

	boolCount, numberCount, stringCount int
}

// Parse decodes a compiled terminfo(5) entry. The returned View borrows b;
// the caller must not mutate b while the View is in use.
func Parse(b []byte) (*View, error) {
	if len(b) < 12 {
		return nil, errIncomplete(IncompleteTermInfoHeader, 12, len(b))
	}
	if readLE16(b, 0) != legacyMagic {
		return nil, errSimple(InvalidMagicNumber)
	}
	namesSize := int(readLE16(b, 1))
	boolCount := int(readLE16(b, 2))
	numCount := int(readLE16(b, 3))
	strCount := int(readLE16(b, 4))
	strTabSize := int(readLE16(b, 5))

	pad := 0
	if (namesSize+boolCount)%2 != 0 {
		pad = 1
	}
	total := 12 + namesSize + boolCount + pad + numCount*2 + strCount*2 + strTabSize
	if len(b) < total {
		return nil, errIncomplete(IncompleteTermInfo, total, len(b))
	}

	pos := 12
	names := b[pos : pos+namesSize]
	pos += namesSize
	bools := b[pos : pos+boolCount]
	pos += boolCount + pad
	numbers := b[pos : pos+numCount*2]
	pos += numCount * 2
	stringOffsets := b[pos : pos+strCount*2]
	pos += strCount * 2
	strtab := b[pos : pos+strTabSize]
	pos += strTabSize

	v := &View{namesRaw: names, bools: bools, numbers: numbers, stringOffsets: stringOffsets, strtab: strtab}
	if err := v.validateStrings(); err != nil {
		return nil, err
	}

	if pos < len(b) {
		ext, err := parseExt(b[pos:])
		if err != nil {
			return nil, err
		}
		v.ext = ext
	}
	return v, nil
}

func parseExt(b []byte) (*extView, error) {
	if len(b) < 10 {
		return nil, errIncomplete(IncompleteExtendedHeader, 10, len(b))
	}
	boolCount := int(readLE16(b, 0))
	numCount := int(readLE16(b, 1))
	strCount := int(readLE16(b, 2))
	strTabSize := int(readLE16(b, 3))
	lastOffset := int(readLE16(b, 4))

	pad := 0
	if boolCount%2 != 0 {
		pad = 1
	}
	nameCount := boolCount + numCount + strCount
	total := 10 + boolCount + pad + numCount*2 + strCount*2 + nameCount*2 + strTabSize
	if len(b) < total {
		return nil, errIncomplete(IncompleteExtendedTermInfo, total, len(b))
	}

	pos := 10
	bools := b[pos : pos+boolCount]
	pos += boolCount + pad
	numbers := b[pos : pos+numCount*2]
	pos += numCount * 2
	stringOffsets := b[pos : pos+strCount*2]
	pos += strCount * 2
	nameOffsets := b[pos : pos+nameCount*2]
	pos += nameCount * 2
	strtab := b[pos : pos+strTabSize]

	if lastOffset < 0 || lastOffset > len(strtab) {
		return nil, errOutOfRange(lastOffset, len(strtab))
	}

	ev := &extView{
		bools: bools, numbers: numbers, stringOffsets: stringOffsets,
		nameOffsets: nameOffsets, strtab: strtab, lastOffset: lastOffset,
		boolCount: boolCount, numberCount: numCount, stringCount: strCount,
	}
	if err := ev.validateStrings(); err != nil {
		return nil, err
	}
	return ev, nil
}

// readStr resolves a string-table offset. A false ok with a nil error means
// the capability is simply absent (offset == Invalid); a non-nil error
// means the offset is present but doesn't resolve to a NUL-terminated run
// inside tab.
func readStr(tab []byte, offset uint16) (string, bool, error) {
	if offset == Invalid {
		return "", false, nil
	}
	o := int(offset)
	if o > len(tab) {
		return "", false, errSimple(FailedToReadStringFromTable)
	}
	rest := tab[o:]
	n := strlen(rest)
	if n == len(rest) {
		return "", false, errSimple(FailedToReadStringFromTable)
	}
	return string(rest[:n]), true, nil
}

func (v *View) validateStrings() error {
	for i := 0; 2*i+2 <= len(v.stringOffsets); i++ {
		if _, _, err := readStr(v.strtab, readLE16(v.stringOffsets, i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *extView) validateStrings() error {
	for i := 0; 2*i+2 <= len(e.stringOffsets); i++ {
		if _, _, err := readStr(e.strtab, readLE16(e.stringOffsets, i)); err != nil {
			return err
		}
	}
	for i := 0; 2*i+2 <= len(e.nameOffsets); i++ {
		if _, _, err := readStr(e.strtab, readLE16(e.nameOffsets, i)); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the entry's name aliases, e.g. ["xterm", "xterm terminal
// emulator (X Window System)"].
func (v *View) Names() []string {
	raw := v.namesRaw
	if n := strlen(raw); n < len(raw) {
		raw = raw[:n]
	}
	if len(raw) == 0 {
		return nil
	}
	return strings.Split(string(raw), "|")
}

// Boolean reports whether the given predefined boolean capability is set.
// A capability not present in the file reads as false, matching terminfo(5).
func (v *View) Boolean(f BooleanField) bool {
	i := int(f)
	if i < 0 || i >= len(v.bools) {
		return false
	}
	return v.bools[i] != 0
}

// Number returns the given predefined numeric capability and whether it is
// present in the file.
func (v *View) Number(f NumericField) (int, bool) {
	i := int(f)
	if i < 0 || 2*i+2 > len(v.numbers) {
		return 0, false
	}
	val := readLE16(v.numbers, i)
	if val == Invalid {
		return 0, false
	}
	return int(val), true
}

// String returns the given predefined string capability and whether it is
// present in the file.
func (v *View) String(f StringField) (string, bool) {
	i := int(f)
	if i < 0 || 2*i+2 > len(v.stringOffsets) {
		return "", false
	}
	s, ok, _ := readStr(v.strtab, readLE16(v.stringOffsets, i))
	return s, ok
}

// HasExt reports whether the entry carries an extended-capability section.
func (v *View) HasExt() bool {
	return v.ext != nil
}

// Exec looks up the given string capability and runs it as a parameterized
// capability string against args, without requiring the caller to build a
// Buf first (as Buf.Exec does).
func (v *View) Exec(f StringField, args ...tiparm.Argument) (string, error) {
	spec, ok := v.String(f)
	if !ok {
		return "", ErrCapabilityAbsent
	}
	return tiparm.Execute(spec, args...)
}

// extIndex returns the position of name within the combined
// bools-then-numbers-then-strings name-offset array, or false if no
// extended capability has that name.
func (e *extView) extIndex(name string) (int, bool) {
	total := e.boolCount + e.numberCount + e.stringCount
	for i := 0; i < total; i++ {
		n, ok, err := readStr(e.strtab, readLE16(e.nameOffsets, i))
		if err != nil || !ok {
			continue
		}
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// ExtBoolean looks up an extended boolean capability by its terminfo name
// (e.g. "XT", "G0").
func (v *View) ExtBoolean(name string) (bool, bool) {
	if v.ext == nil {
		return false, false
	}
	i, ok := v.ext.extIndex(name)
	if !ok || i >= v.ext.boolCount {
		return false, false
	}
	return v.ext.bools[i] != 0, true
}

// ExtNumber looks up an extended numeric capability by its terminfo name.
func (v *View) ExtNumber(name string) (int, bool) {
	if v.ext == nil {
		return 0, false
	}
	i, ok := v.ext.extIndex(name)
	if !ok {
		return 0, false
	}
	i -= v.ext.boolCount
	if i < 0 || i >= v.ext.numberCount {
		return 0, false
	}
	val := readLE16(v.ext.numbers, i)
	if val == Invalid {
		return 0, false
	}
	return int(val), true
}

// ExtString looks up an extended string capability by its terminfo name.
func (v *View) ExtString(name string) (string, bool) {
	if v.ext == nil {
		return "", false
	}
	i, ok := v.ext.extIndex(name)
	if !ok {
		return "", false
	}
	i -= v.ext.boolCount + v.ext.numberCount
	if i < 0 || i >= v.ext.stringCount {
		return "", false
	}
	s, ok, _ := readStr(v.ext.strtab, readLE16(v.ext.stringOffsets, i))
	return s, ok
}

func (e *extView) nameAt(i int) string {
	n, ok, err := readStr(e.strtab, readLE16(e.nameOffsets, i))
	if err != nil || !ok {
		return ""
	}
	return n
}

// ExtBooleanNames returns the terminfo names of every extended boolean
// capability present in the entry, in file order.
func (v *View) ExtBooleanNames() []string {
	if v.ext == nil {
		return nil
	}
	out := make([]string, 0, v.ext.boolCount)
	for i := 0; i < v.ext.boolCount; i++ {
		out = append(out, v.ext.nameAt(i))
	}
	return out
}

// ExtNumberNames returns the terminfo names of every extended numeric
// capability present in the entry, in file order.
func (v *View) ExtNumberNames() []string {
	if v.ext == nil {
		return nil
	}
	out := make([]string, 0, v.ext.numberCount)
	for i := 0; i < v.ext.numberCount; i++ {
		out = append(out, v.ext.nameAt(v.ext.boolCount+i))
	}
	return out
}

// ExtStringNames returns the terminfo names of every extended string
// capability present in the entry, in file order.
func (v *View) ExtStringNames() []string {
	if v.ext == nil {
		return nil
	}
	out := make([]string, 0, v.ext.stringCount)
	for i := 0; i < v.ext.stringCount; i++ {
		out = append(out, v.ext.nameAt(v.ext.boolCount+v.ext.numberCount+i))
	}
	return out
}
