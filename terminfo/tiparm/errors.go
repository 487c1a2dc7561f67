package tiparm

import "fmt"

// ErrorKind classifies failures from Parse and Execute.
type ErrorKind int

const (
	// BadPrintfSpecifier: a %-directive used an unrecognized character, or
	// a %'c' literal wasn't closed with a matching quote.
	BadPrintfSpecifier ErrorKind = iota
	// BadPrecisionSpecified: a '.' in a printf spec wasn't followed by at
	// least one digit.
	BadPrecisionSpecified
	// InvalidDigit: a %{...} literal's body wasn't a valid integer.
	InvalidDigit
	// InvalidArgumentIdentifier: %p wasn't followed by a digit 1-9.
	InvalidArgumentIdentifier
	// UnexpectedArgumentType: an operator or conversion was applied to a
	// stack value of the wrong Kind.
	UnexpectedArgumentType
	// FailedToWriteArgument: the underlying writer returned an error while
	// emitting a formatted argument.
	FailedToWriteArgument
	// FailedToWriteStringLiteral: the underlying writer returned an error
	// while emitting a literal run of text.
	FailedToWriteStringLiteral
	// UnexpectedEof: the capability string ended in the middle of a
	// directive, or a conditional/operator popped from an empty stack.
	UnexpectedEof
)

var errorKindStrings = [...]string{
	"bad printf specifier",
	"bad precision specified",
	"invalid digit",
	"invalid argument identifier",
	"unexpected argument type",
	"failed to write argument",
	"failed to write string literal",
	"unexpected end of capability string",
}

func (k ErrorKind) String() string {
	if i := int(k); i >= 0 && i < len(errorKindStrings) {
		return errorKindStrings[i]
	}
	return "unknown error"
}

// Error is the error type returned by Parse and Execute.
type Error struct {
	Kind ErrorKind
	// Digit holds the offending byte for InvalidDigit.
	Digit byte
	// Want/Got hold the expected/actual Kind names for UnexpectedArgumentType.
	Want, Got string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidDigit:
		return fmt.Sprintf("tiparm: %s: %q", e.Kind, e.Digit)
	case UnexpectedArgumentType:
		return fmt.Sprintf("tiparm: %s: want %s, got %s", e.Kind, e.Want, e.Got)
	default:
		return "tiparm: " + e.Kind.String()
	}
}

func errSimple(kind ErrorKind) error {
	return &Error{Kind: kind}
}

func errType(want, got string) error {
	return &Error{Kind: UnexpectedArgumentType, Want: want, Got: got}
}
