package terminfo

import "fmt"

// ErrorKind classifies failures from Parse and the Buf mutators. Use
// errors.As to recover the Kind from an error returned by this package.
type ErrorKind int

const (
	// IncompleteTermInfoHeader: fewer than 12 bytes available for the header.
	IncompleteTermInfoHeader ErrorKind = iota
	// InvalidMagicNumber: the header's first word isn't 0o432. The
	// extended-number magic 0o1036 is rejected with this kind too.
	InvalidMagicNumber
	// IncompleteTermInfo: the header promises more names/bools/numbers/
	// strings/string-table bytes than are actually present.
	IncompleteTermInfo
	// IncompleteExtendedHeader: fewer than 10 bytes available for the
	// extended section header.
	IncompleteExtendedHeader
	// IncompleteExtendedTermInfo: the extended header promises more bytes
	// than are actually present.
	IncompleteExtendedTermInfo
	// OutOfRange: a field index fell outside the section it was read from.
	OutOfRange
	// FailedToReadStringFromTable: a string offset pointed past, or into
	// the middle of, the string table without reaching a terminating NUL.
	FailedToReadStringFromTable
	// MaxStrTabSizeReached: Buf.SetString would grow the string table past
	// the 16-bit offset space a terminfo file can address.
	MaxStrTabSizeReached
	// MaximumCapabilityCountExceeded: Buf.SetExt{Boolean,Number,String}
	// would add more extended capabilities than a 16-bit count can hold.
	MaximumCapabilityCountExceeded
)

var errorKindStrings = [...]string{
	"incomplete terminfo header",
	"invalid magic number",
	"incomplete terminfo",
	"incomplete extended terminfo header",
	"incomplete extended terminfo",
	"index out of range",
	"failed to read string from string table",
	"maximum string table size reached",
	"maximum capability count exceeded",
}

func (k ErrorKind) String() string {
	if i := int(k); i >= 0 && i < len(errorKindStrings) {
		return errorKindStrings[i]
	}
	return "unknown error"
}

// Error is the error type returned by this package. It always carries a
// Kind and, for the kinds that have one, the offending index or byte count.
type Error struct {
	Kind ErrorKind
	// Want/Got hold the expected/actual sizes for IncompleteXXX and
	// OutOfRange kinds; zero for kinds that carry no such detail.
	Want, Got int
}

func (e *Error) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("terminfo: %s: index %d, length %d", e.Kind, e.Want, e.Got)
	case IncompleteTermInfoHeader, IncompleteTermInfo, IncompleteExtendedHeader, IncompleteExtendedTermInfo:
		return fmt.Sprintf("terminfo: %s: need %d bytes, have %d", e.Kind, e.Want, e.Got)
	default:
		return "terminfo: " + e.Kind.String()
	}
}

func errIncomplete(kind ErrorKind, want, got int) error {
	return &Error{Kind: kind, Want: want, Got: got}
}

func errOutOfRange(index, length int) error {
	return &Error{Kind: OutOfRange, Want: index, Got: length}
}

func errSimple(kind ErrorKind) error {
	return &Error{Kind: kind}
}

// ErrCapabilityAbsent is returned by Buf.Exec when the requested string
// capability isn't set in the entry.
var ErrCapabilityAbsent = fmt.Errorf("terminfo: capability absent")
