package engine

import (
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
)

// dispatch is the fetch-decode-execute loop's decode+execute half: one
// opcode in, one control decision out. Modeled on the teacher's vm.go
// central switch over vm/bytecode.OpCode, but over IPPcode23 opcodes
// instead of register-bytecode ones.
func (e *Engine) dispatch(ins program.Instruction) (ctrl, *ixerr.Error) {
	a := ins.Args
	switch ins.Op {

	case program.OpLabel:
		return nextCtrl, nil

	case program.OpMove:
		v, err := e.resolveSymb(a[1])
		if err != nil {
			return nextCtrl, err
		}
		if err := destSink(a[0]).write(e, v); err != nil {
			return nextCtrl, err
		}
		return nextCtrl, nil

	case program.OpCreateFrame:
		e.table.CreateFrame()
		return nextCtrl, nil

	case program.OpPushFrame:
		if err := e.table.PushFrame(); err != nil {
			return nextCtrl, err
		}
		return nextCtrl, nil

	case program.OpPopFrame:
		if err := e.table.PopFrame(); err != nil {
			return nextCtrl, err
		}
		return nextCtrl, nil

	case program.OpDefVar:
		if err := e.table.Declare(a[0].Frame, a[0].Name); err != nil {
			return nextCtrl, err
		}
		e.stats.RecordLiveVars(e.table.LiveVarCount())
		return nextCtrl, nil

	case program.OpCall:
		target, ok := e.prog.Resolve(a[0].Label)
		if !ok {
			return nextCtrl, ixerr.SemanticErr("unknown label %q", a[0].Label)
		}
		e.table.PushCall(e.pc + 1)
		return jumpCtrl(target), nil

	case program.OpReturn:
		target, err := e.table.PopCall()
		if err != nil {
			return nextCtrl, err
		}
		return jumpCtrl(target), nil

	case program.OpPushS:
		v, err := e.resolveSymb(a[0])
		if err != nil {
			return nextCtrl, err
		}
		e.table.Push(v)
		return nextCtrl, nil

	case program.OpPopS:
		v, err := e.table.Pop()
		if err != nil {
			return nextCtrl, err
		}
		if err := destSink(a[0]).write(e, v); err != nil {
			return nextCtrl, err
		}
		return nextCtrl, nil

	case program.OpClearS:
		e.table.ClearStack()
		return nextCtrl, nil

	case program.OpAdd, program.OpSub, program.OpMul, program.OpIDiv:
		return nextCtrl, e.execArith(ins.Op, destSink(a[0]), a[1], a[2])
	case program.OpAddS, program.OpSubS, program.OpMulS, program.OpIDivS:
		return nextCtrl, e.execArithS(stackOpFor(ins.Op))

	case program.OpLT, program.OpGT, program.OpEQ:
		return nextCtrl, e.execRel(ins.Op, destSink(a[0]), a[1], a[2])
	case program.OpLTS, program.OpGTS, program.OpEQS:
		return nextCtrl, e.execRelS(stackOpFor(ins.Op))

	case program.OpAnd, program.OpOr:
		return nextCtrl, e.execBool(ins.Op, destSink(a[0]), a[1], a[2])
	case program.OpAndS, program.OpOrS:
		return nextCtrl, e.execBoolS(stackOpFor(ins.Op))
	case program.OpNot:
		return nextCtrl, e.execNot(destSink(a[0]), a[1])
	case program.OpNotS:
		return nextCtrl, e.execNotS()

	case program.OpInt2Char:
		return nextCtrl, e.execInt2Char(destSink(a[0]), a[1])
	case program.OpInt2CharS:
		return nextCtrl, e.execInt2CharS()
	case program.OpStri2Int:
		return nextCtrl, e.execStri2Int(destSink(a[0]), a[1], a[2])
	case program.OpStri2IntS:
		return nextCtrl, e.execStri2IntS()
	case program.OpGetChar:
		return nextCtrl, e.execGetChar(destSink(a[0]), a[1], a[2])
	case program.OpSetChar:
		return nextCtrl, e.execSetChar(a[0], a[1], a[2])
	case program.OpConcat:
		return nextCtrl, e.execConcat(destSink(a[0]), a[1], a[2])
	case program.OpStrLen:
		return nextCtrl, e.execStrLen(destSink(a[0]), a[1])
	case program.OpType:
		return nextCtrl, e.execType(destSink(a[0]), a[1])

	case program.OpRead:
		return nextCtrl, e.execRead(destSink(a[0]), a[1].TypeKeyword)
	case program.OpWrite:
		return nextCtrl, e.execWrite(a[0])
	case program.OpDPrint:
		return nextCtrl, e.execDPrint(a[0])
	case program.OpBreak:
		e.execBreak(ins.Order)
		return nextCtrl, nil

	case program.OpJump:
		target, ok := e.prog.Resolve(a[0].Label)
		if !ok {
			return nextCtrl, ixerr.SemanticErr("unknown label %q", a[0].Label)
		}
		return jumpCtrl(target), nil

	case program.OpJumpIfEQ, program.OpJumpIfNEQ:
		left, err := e.resolveSymb(a[1])
		if err != nil {
			return nextCtrl, err
		}
		right, err := e.resolveSymb(a[2])
		if err != nil {
			return nextCtrl, err
		}
		return e.execJumpIf(a[0].Label, left, right, ins.Op == program.OpJumpIfEQ)

	case program.OpJumpIfEQS, program.OpJumpIfNEQS:
		left, right, err := e.table.PopTwo()
		if err != nil {
			return nextCtrl, err
		}
		return e.execJumpIf(a[0].Label, left, right, ins.Op == program.OpJumpIfEQS)

	case program.OpExit:
		return e.execExit(a[0])

	default:
		return nextCtrl, ixerr.InternalErr("unhandled opcode %v", ins.Op)
	}
}

// stackOp names the arithmetic/relational/boolean operation a stackful
// opcode shares with its register-variant sibling.
type stackOp uint8

const (
	opAdd stackOp = iota
	opSub
	opMul
	opIDiv
	opLT
	opGT
	opEQ
	opAnd
	opOr
)

func stackOpFor(op program.OpCode) stackOp {
	switch op {
	case program.OpAddS:
		return opAdd
	case program.OpSubS:
		return opSub
	case program.OpMulS:
		return opMul
	case program.OpIDivS:
		return opIDiv
	case program.OpLTS:
		return opLT
	case program.OpGTS:
		return opGT
	case program.OpEQS:
		return opEQ
	case program.OpAndS:
		return opAnd
	case program.OpOrS:
		return opOr
	default:
		return opAdd
	}
}
