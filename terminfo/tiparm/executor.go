package tiparm

import "strings"

// Execute parses spec as a terminfo(5) parameterized capability string and
// runs it against args, which fill %p1..%p9 in order. Extra args beyond the
// ninth are silently ignored, matching tparm(3).
func Execute(spec string, args ...Argument) (string, error) {
	ops, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return Run(ops, args...)
}

// Run executes an already-parsed instruction stream. Callers that invoke
// the same capability repeatedly with different arguments should Parse
// once and call Run per invocation.
func Run(ops []Op, args ...Argument) (string, error) {
	ex := newExecutionEnvironment(args)
	return ex.run(ops)
}

// executionEnvironment holds the nine positional parameters and the
// operand stack for a single Run call.
type executionEnvironment struct {
	args  [9]Argument
	stack []Argument
	out   strings.Builder
}

func newExecutionEnvironment(args []Argument) *executionEnvironment {
	ex := &executionEnvironment{}
	n := len(args)
	if n > 9 {
		n = 9
	}
	copy(ex.args[:], args[:n])
	return ex
}

func (ex *executionEnvironment) run(ops []Op) (string, error) {
	pc := 0
	for pc < len(ops) {
		op := ops[pc]
		switch op.Kind {
		case OpPrintSlice:
			ex.out.Write(op.Bytes)

		case OpPush:
			idx := op.Arg - 1
			if idx >= 0 && idx < len(ex.args) {
				ex.push(ex.args[idx])
			} else {
				ex.push(Int(0))
			}

		case OpPushLiteralInt:
			ex.push(Int(int64(op.Arg)))

		case OpPushLiteralChar:
			ex.push(Ch(op.Char))

		case OpIncrementArgs:
			ex.args[0] = Int(argAsInt(ex.args[0]) + 1)
			ex.args[1] = Int(argAsInt(ex.args[1]) + 1)

		case OpStrLen:
			s, err := ex.popString()
			if err != nil {
				return "", err
			}
			ex.push(Int(int64(len(s))))

		case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpBitAnd, OpBitOr, OpBitXor, OpLess, OpGreater, OpEqual:
			if err := ex.binOp(op.Kind); err != nil {
				return "", err
			}

		case OpInvert:
			v, err := ex.popInt()
			if err != nil {
				return "", err
			}
			ex.push(Int(^v))

		case OpNot:
			b, err := ex.popBool()
			if err != nil {
				return "", err
			}
			ex.push(Bool(!b))

		case OpBranchFalse:
			b, err := ex.popBool()
			if err != nil {
				return "", err
			}
			if !b {
				pc += op.Arg
				continue
			}

		case OpJump:
			pc += op.Arg
			continue

		case OpPrintChar:
			a, ok := ex.popAny()
			if !ok {
				ex.out.WriteString(nullLiteral)
				break
			}
			c, err := argToChar(a)
			if err != nil {
				return "", err
			}
			ex.out.WriteByte(c)

		case OpPrint:
			a, ok := ex.popAny()
			if !ok {
				ex.out.WriteString(nullLiteral)
				break
			}
			s, err := op.Spec.Format(a)
			if err != nil {
				return "", err
			}
			ex.out.WriteString(s)
		}
		pc++
	}
	return ex.out.String(), nil
}

// binOp pops the right operand then the left operand — the stack holds
// `push(left); push(right)` for every binary directive, so the top of
// stack is always the right-hand side — and applies left OP right.
func (ex *executionEnvironment) binOp(kind OpKind) error {
	right, err := ex.popInt()
	if err != nil {
		return err
	}
	left, err := ex.popInt()
	if err != nil {
		return err
	}
	switch kind {
	case OpLess:
		ex.push(Bool(left < right))
	case OpGreater:
		ex.push(Bool(left > right))
	case OpEqual:
		ex.push(Bool(left == right))
	case OpAdd:
		ex.push(Int(left + right))
	case OpSub:
		ex.push(Int(left - right))
	case OpMul:
		ex.push(Int(left * right))
	case OpDiv:
		if right == 0 {
			ex.push(Int(0))
		} else {
			ex.push(Int(left / right))
		}
	case OpMod:
		if right == 0 {
			ex.push(Int(0))
		} else {
			ex.push(Int(left % right))
		}
	case OpBitAnd:
		ex.push(Int(left & right))
	case OpBitOr:
		ex.push(Int(left | right))
	case OpBitXor:
		ex.push(Int(left ^ right))
	}
	return nil
}

func (ex *executionEnvironment) push(a Argument) {
	ex.stack = append(ex.stack, a)
}

func (ex *executionEnvironment) popAny() (Argument, bool) {
	if len(ex.stack) == 0 {
		return Argument{}, false
	}
	a := ex.stack[len(ex.stack)-1]
	ex.stack = ex.stack[:len(ex.stack)-1]
	return a, true
}

func (ex *executionEnvironment) popInt() (int64, error) {
	a, ok := ex.popAny()
	if !ok {
		return 0, errSimple(UnexpectedEof)
	}
	if a.kind != KindInt {
		return 0, errType("integer", a.kind.String())
	}
	return a.i, nil
}

func (ex *executionEnvironment) popString() (string, error) {
	a, ok := ex.popAny()
	if !ok {
		return "", errSimple(UnexpectedEof)
	}
	if a.kind != KindString {
		return "", errType("string", a.kind.String())
	}
	return a.s, nil
}

// popBool implements the "pop as bool" rule used by %? conditions and %!:
// a nonzero integer, a nonempty string, or a nonzero char is true.
func (ex *executionEnvironment) popBool() (bool, error) {
	a, ok := ex.popAny()
	if !ok {
		return false, errSimple(UnexpectedEof)
	}
	return argTruthy(a), nil
}

func argTruthy(a Argument) bool {
	switch a.kind {
	case KindInt:
		return a.i != 0
	case KindString:
		return a.s != ""
	case KindChar:
		return a.c != 0
	default:
		return false
	}
}

func argAsInt(a Argument) int64 {
	switch a.kind {
	case KindInt:
		return a.i
	case KindChar:
		return int64(a.c)
	default:
		return 0
	}
}

func argToChar(a Argument) (byte, error) {
	switch a.kind {
	case KindChar:
		return a.c, nil
	case KindInt:
		return byte(a.i), nil
	default:
		return 0, errType("char", a.kind.String())
	}
}
