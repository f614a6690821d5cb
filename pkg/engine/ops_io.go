package engine

import (
	"fmt"
	"io"
	"strconv"

	"ippcode23/pkg/frame"
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// execRead implements spec §4.8: a missing line, an unparsable int, or
// the nil type keyword never fails the instruction, it just stores Nil;
// for bool, any line other than "true" (in any case) stores false — READ
// is the one opcode whose malformed input is data, not an error.
func (e *Engine) execRead(dest sink, kw value.Type) *ixerr.Error {
	if e.inputPos >= len(e.input) {
		return dest.write(e, value.NilValue)
	}
	line := e.input[e.inputPos]
	e.inputPos++

	switch kw {
	case value.Int:
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return dest.write(e, value.NilValue)
		}
		return dest.write(e, value.NewInt(n))
	case value.Bool:
		return dest.write(e, value.NewBool(value.EqualFoldASCII(line, "true")))
	case value.Str:
		return dest.write(e, value.NewStr(value.Decode(line)))
	default:
		return dest.write(e, value.NilValue)
	}
}

func (e *Engine) execWrite(arg program.Argument) *ixerr.Error {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return err
	}
	fmt.Fprint(e.stdout, v.Text())
	return nil
}

func (e *Engine) execDPrint(arg program.Argument) *ixerr.Error {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return err
	}
	fmt.Fprint(e.stderr, v.Text())
	return nil
}

// execBreak writes a diagnostic snapshot to stderr: the current
// instruction's order, then the variable names (not their values) of GF,
// the top local frame if any, and TF if present.
func (e *Engine) execBreak(order int) {
	fmt.Fprintf(e.stderr, "BREAK at order=%d\n", order)
	dumpFrame(e.stderr, "GF", e.table.GF())
	if top := e.table.LFTop(); top != nil {
		dumpFrame(e.stderr, "LF", top)
	}
	if tf := e.table.TF(); tf != nil {
		dumpFrame(e.stderr, "TF", tf)
	}
}

func dumpFrame(w io.Writer, tag string, f *frame.Frame) {
	for _, name := range f.Names() {
		fmt.Fprintf(w, "  %s@%s\n", tag, name)
	}
}

// execJumpIf replicates original_source/interpret.py's f_jumpifeq /
// f_jumpifneq check ordering exactly: a missing value on either side is
// reported before anything else; a Nil operand short-circuits straight
// to the nil-aware equality test (the label is only resolved if that
// comparison settles the jump); otherwise tags must match (a mismatch is
// a type error, not a failed comparison) and, once they do, the label is
// always resolved before the final comparison decides whether to jump.
func (e *Engine) execJumpIf(label string, a, b value.Value, wantEqual bool) (ctrl, *ixerr.Error) {
	if a.IsNil() || b.IsNil() {
		eq := value.Equal(a, b)
		if eq != wantEqual {
			return nextCtrl, nil
		}
		target, ok := e.prog.Resolve(label)
		if !ok {
			return nextCtrl, ixerr.SemanticErr("unknown label %q", label)
		}
		return jumpCtrl(target), nil
	}
	if a.Type() != b.Type() {
		return nextCtrl, ixerr.TypeErr("JUMPIFEQ/JUMPIFNEQ operands must share a type")
	}
	target, ok := e.prog.Resolve(label)
	if !ok {
		return nextCtrl, ixerr.SemanticErr("unknown label %q", label)
	}
	eq := value.Equal(a, b)
	if eq == wantEqual {
		return jumpCtrl(target), nil
	}
	return nextCtrl, nil
}

// execExit validates and terminates per spec §4.9: operand must be Int
// in [0,49], out of range is a bad-operand-value error, non-int is a
// type error.
func (e *Engine) execExit(arg program.Argument) (ctrl, *ixerr.Error) {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return nextCtrl, err
	}
	if !v.IsInt() {
		return nextCtrl, ixerr.TypeErr("EXIT operand must be int")
	}
	code := v.Int()
	if code < 0 || code > 49 {
		return nextCtrl, ixerr.BadOperandErr("EXIT code %d out of range [0,49]", code)
	}
	return exitCtrl(int(code)), nil
}
