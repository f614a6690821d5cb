package engine

import (
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// less reports whether a orders before b for two values that already
// share a tag: booleans order false < true, integers and strings order
// naturally (spec §4.5).
func less(a, b value.Value) bool {
	switch a.Type() {
	case value.Bool:
		return !a.Bool() && b.Bool()
	case value.Int:
		return a.Int() < b.Int()
	case value.Str:
		return a.Str() < b.Str()
	default:
		return false
	}
}

// relational implements LT/GT/EQ's shared rule set: EQ alone permits a
// Nil operand, LT/GT against Nil is a type error, otherwise both
// operands must share a tag.
func relational(op stackOp, a, b value.Value) (bool, *ixerr.Error) {
	if a.IsNil() || b.IsNil() {
		if op != opEQ {
			return false, ixerr.TypeErr("LT/GT do not accept nil operands")
		}
		return value.Equal(a, b), nil
	}
	if a.Type() != b.Type() {
		return false, ixerr.TypeErr("relational operands must share a type")
	}
	switch op {
	case opLT:
		return less(a, b), nil
	case opGT:
		return less(b, a), nil
	case opEQ:
		return value.Equal(a, b), nil
	default:
		return false, ixerr.InternalErr("not a relational op")
	}
}

func relOpCode(op program.OpCode) stackOp {
	switch op {
	case program.OpLT:
		return opLT
	case program.OpGT:
		return opGT
	default:
		return opEQ
	}
}

func (e *Engine) execRel(op program.OpCode, dest sink, left, right program.Argument) *ixerr.Error {
	l, err := e.resolveSymb(left)
	if err != nil {
		return err
	}
	r, err := e.resolveSymb(right)
	if err != nil {
		return err
	}
	result, err := relational(relOpCode(op), l, r)
	if err != nil {
		return err
	}
	return dest.write(e, value.NewBool(result))
}

func (e *Engine) execRelS(op stackOp) *ixerr.Error {
	l, r, err := e.table.PopTwo()
	if err != nil {
		return err
	}
	result, err := relational(op, l, r)
	if err != nil {
		return err
	}
	e.table.Push(value.NewBool(result))
	return nil
}
