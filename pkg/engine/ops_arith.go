package engine

import (
	"math"

	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// arith performs one of ADD/SUB/MUL/IDIV per spec §4.4: both operands
// must be Int, IDIV by zero is a bad-operand error, and integer division
// truncates toward negative infinity.
func arith(op stackOp, a, b int64) (int64, *ixerr.Error) {
	switch op {
	case opAdd:
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, ixerr.BadOperandErr("integer overflow in ADD")
		}
		return sum, nil
	case opSub:
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return 0, ixerr.BadOperandErr("integer overflow in SUB")
		}
		return diff, nil
	case opMul:
		if a != 0 && b != 0 {
			p := a * b
			if p/a != b {
				return 0, ixerr.BadOperandErr("integer overflow in MUL")
			}
			return p, nil
		}
		return 0, nil
	case opIDiv:
		if b == 0 {
			return 0, ixerr.BadOperandErr("division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return 0, ixerr.BadOperandErr("integer overflow in IDIV")
		}
		q := a / b
		if (a%b != 0) && ((a < 0) != (b < 0)) {
			q-- // floor division, spec §4.4
		}
		return q, nil
	default:
		return 0, ixerr.InternalErr("not an arithmetic op")
	}
}

func arithOpCode(op program.OpCode) stackOp {
	switch op {
	case program.OpAdd:
		return opAdd
	case program.OpSub:
		return opSub
	case program.OpMul:
		return opMul
	case program.OpIDiv:
		return opIDiv
	default:
		return opAdd
	}
}

func (e *Engine) execArith(op program.OpCode, dest sink, left, right program.Argument) *ixerr.Error {
	l, err := e.resolveSymb(left)
	if err != nil {
		return err
	}
	r, err := e.resolveSymb(right)
	if err != nil {
		return err
	}
	if !l.IsInt() || !r.IsInt() {
		return ixerr.TypeErr("arithmetic operands must be int")
	}
	result, err := arith(arithOpCode(op), l.Int(), r.Int())
	if err != nil {
		return err
	}
	return dest.write(e, value.NewInt(result))
}

func (e *Engine) execArithS(op stackOp) *ixerr.Error {
	l, r, err := e.table.PopTwo()
	if err != nil {
		return err
	}
	if !l.IsInt() || !r.IsInt() {
		return ixerr.TypeErr("arithmetic operands must be int")
	}
	result, err := arith(op, l.Int(), r.Int())
	if err != nil {
		return err
	}
	e.table.Push(value.NewInt(result))
	return nil
}
