package engine

import (
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// boolOp evaluates AND/OR over two already-typed-checked bool operands.
func boolOp(op stackOp, a, b bool) bool {
	if op == opAnd {
		return a && b
	}
	return a || b
}

func (e *Engine) execBool(op program.OpCode, dest sink, left, right program.Argument) *ixerr.Error {
	l, err := e.resolveSymb(left)
	if err != nil {
		return err
	}
	r, err := e.resolveSymb(right)
	if err != nil {
		return err
	}
	if !l.IsBool() || !r.IsBool() {
		return ixerr.TypeErr("AND/OR operands must be bool")
	}
	var sop stackOp = opAnd
	if op == program.OpOr {
		sop = opOr
	}
	return dest.write(e, value.NewBool(boolOp(sop, l.Bool(), r.Bool())))
}

func (e *Engine) execBoolS(op stackOp) *ixerr.Error {
	l, r, err := e.table.PopTwo()
	if err != nil {
		return err
	}
	if !l.IsBool() || !r.IsBool() {
		return ixerr.TypeErr("AND/OR operands must be bool")
	}
	e.table.Push(value.NewBool(boolOp(op, l.Bool(), r.Bool())))
	return nil
}

func (e *Engine) execNot(dest sink, arg program.Argument) *ixerr.Error {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return err
	}
	if !v.IsBool() {
		return ixerr.TypeErr("NOT operand must be bool")
	}
	return dest.write(e, value.NewBool(!v.Bool()))
}

func (e *Engine) execNotS() *ixerr.Error {
	v, err := e.table.Pop()
	if err != nil {
		return err
	}
	if !v.IsBool() {
		return ixerr.TypeErr("NOT operand must be bool")
	}
	e.table.Push(value.NewBool(!v.Bool()))
	return nil
}
