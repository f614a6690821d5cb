// Package engine implements the fetch-decode-execute loop described in
// spec §4.11: it owns the program counter, dispatches each instruction
// to its opcode handler, and is the only place that mutates a
// pkg/frame.Table. Grounded on the dispatch-loop shape of the teacher's
// pkg/vm/vm.go (a big per-opcode switch over a flat instruction stream)
// generalized from a register machine to IPPcode23's frame/stack model.
package engine

import (
	"bufio"
	"io"

	"ippcode23/pkg/frame"
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/ixlog"
	"ippcode23/pkg/program"
	"ippcode23/pkg/stats"
	"ippcode23/pkg/value"
)

// Engine is the single owner of all runtime state: frames, both stacks,
// and the program counter (spec §5, "All state ... is owned by the
// Engine; no resource is shared with another thread").
type Engine struct {
	prog  *program.Program
	table *frame.Table

	pc int

	input    []string
	inputPos int

	stdout io.Writer
	stderr io.Writer

	stats *stats.Collector
}

// New builds an Engine ready to run prog. New reads input to the end and
// splits it into the lines available to READ (spec §4.8 treats READ as
// pulling from a line queue). collector may be nil; every stats call is a no-op
// against a nil *stats.Collector.
func New(prog *program.Program, input io.Reader, stdout, stderr io.Writer, collector *stats.Collector) *Engine {
	var lines []string
	if input != nil {
		sc := bufio.NewScanner(input)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
	}
	return &Engine{
		prog:   prog,
		table:  frame.NewTable(),
		input:  lines,
		stdout: stdout,
		stderr: stderr,
		stats:  collector,
	}
}

// Run executes the loaded Program to completion: a terminal EXIT, or
// falling off the end of the instruction stream (normal exit, code 0).
func (e *Engine) Run() (int, *ixerr.Error) {
	instrs := e.prog.Instructions
	for e.pc < len(instrs) {
		ins := instrs[e.pc]
		if ins.Op != program.OpLabel {
			e.stats.RecordExecution(ins.Op, ins.Order)
		}
		c, err := e.dispatch(ins)
		if err != nil {
			return 0, err
		}
		switch c.kind {
		case ctrlExit:
			return c.code, nil
		case ctrlJump:
			e.pc = c.target
		default:
			e.pc++
		}
	}
	return 0, nil
}

type ctrlKind uint8

const (
	ctrlNext ctrlKind = iota
	ctrlJump
	ctrlExit
)

type ctrl struct {
	kind   ctrlKind
	target int
	code   int
}

var nextCtrl = ctrl{kind: ctrlNext}

func jumpCtrl(target int) ctrl { return ctrl{kind: ctrlJump, target: target} }
func exitCtrl(code int) ctrl   { return ctrl{kind: ctrlExit, code: code} }

// decodeIfStr applies the escape-decode policy of spec §4.1 uniformly:
// string values are decoded at every use site, regardless of whether
// they came from a literal or a variable.
func decodeIfStr(v value.Value) value.Value {
	if v.IsStr() {
		return value.NewStr(value.Decode(v.Str()))
	}
	return v
}

// resolveSymb implements spec §4.3 symbol resolution for a required
// value: a literal yields its decoded payload directly, a variable
// reference looks the Variable up and requires it to hold a Value.
func (e *Engine) resolveSymb(arg program.Argument) (value.Value, *ixerr.Error) {
	if arg.IsVar {
		v, err := e.table.Lookup(arg.Frame, arg.Name)
		if err != nil {
			return value.NilValue, err
		}
		val, ok := v.Value()
		if !ok {
			return value.NilValue, ixerr.NoValue("variable %s@%s has no value", arg.Frame, arg.Name)
		}
		return decodeIfStr(val), nil
	}
	return decodeIfStr(arg.Literal), nil
}

// resolveOptional is resolveSymb's TYPE-only relaxation: TYPE never
// fails on a valueless variable, it reports the empty type instead
// (original_source/interpret.py's f_type never calls exit() on a None
// value, unlike every other handler).
func (e *Engine) resolveOptional(arg program.Argument) (value.Value, bool, *ixerr.Error) {
	if arg.IsVar {
		v, err := e.table.Lookup(arg.Frame, arg.Name)
		if err != nil {
			return value.NilValue, false, err
		}
		val, ok := v.Value()
		if !ok {
			return value.NilValue, false, nil
		}
		return decodeIfStr(val), true, nil
	}
	return decodeIfStr(arg.Literal), true, nil
}

// sink is the destination abstraction for an operation's result. The
// dispatch switch passes register-variant opcodes a varSink (via
// destSink), which writes to the named variable. The stackful siblings
// (execArithS and the like) share the operation itself (arith,
// relational, boolOp) but push their results onto the data stack
// directly; stackSink is not used by the dispatch switch.
type sink interface {
	write(e *Engine, v value.Value) *ixerr.Error
}

type varSink struct {
	tag  frame.Tag
	name string
}

func (s varSink) write(e *Engine, v value.Value) *ixerr.Error {
	variable, err := e.table.Lookup(s.tag, s.name)
	if err != nil {
		return err
	}
	variable.Set(v)
	return nil
}

type stackSink struct{}

func (stackSink) write(e *Engine, v value.Value) *ixerr.Error {
	e.table.Push(v)
	return nil
}

func destSink(arg program.Argument) sink {
	return varSink{tag: arg.Frame, name: arg.Name}
}

func (e *Engine) debugf(msg string, kv map[string]interface{}) {
	ev := ixlog.L().Debug()
	for k, v := range kv {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
