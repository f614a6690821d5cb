// Package ixerr defines the interpreter's closed error enumeration: every
// failure the loader or engine can report maps 1:1 to one of the exit
// codes in spec §6. There is no recovery opcode and no user-visible
// error text requirement — the exit code is the entire contract, so
// Error exists to carry a Code reliably up to pkg/cli.Run, which returns
// it as the process exit code to cmd/ippcode23's main,
// mirroring how the teacher's PaseratiError carries a Kind up to its
// caller instead of being formatted and discarded early.
package ixerr

import "fmt"

// Code is one of the fourteen bit-exact exit codes from spec §6.
type Code int

const (
	OK           Code = 0
	CLIUsage     Code = 10
	InputOpen    Code = 11
	OutputOpen   Code = 12
	XMLMalformed Code = 31
	XMLStructure Code = 32
	Semantic     Code = 52
	TypeMismatch Code = 53
	UndefinedVar Code = 54
	MissingFrame Code = 55
	MissingValue Code = 56
	BadOperand   Code = 57
	BadStringOp  Code = 58
	Internal     Code = 99
)

// Error is the interpreter's sole error type: a fatal condition tagged
// with the exit code it must produce. Load-time and runtime errors are
// both fatal immediately (spec §7), so there is no recoverable variant.
type Error struct {
	Code Code
	Kind string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s error (exit %d)", e.Kind, int(e.Code))
	}
	return fmt.Sprintf("%s error (exit %d): %s", e.Kind, int(e.Code), e.Msg)
}

func New(code Code, kind, format string, args ...interface{}) *Error {
	return &Error{Code: code, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func CLI(format string, args ...interface{}) *Error {
	return New(CLIUsage, "cli", format, args...)
}

func Malformed(format string, args ...interface{}) *Error {
	return New(XMLMalformed, "xml", format, args...)
}

func Structure(format string, args ...interface{}) *Error {
	return New(XMLStructure, "xml-structure", format, args...)
}

func SemanticErr(format string, args ...interface{}) *Error {
	return New(Semantic, "semantic", format, args...)
}

func TypeErr(format string, args ...interface{}) *Error {
	return New(TypeMismatch, "type", format, args...)
}

func Undefined(format string, args ...interface{}) *Error {
	return New(UndefinedVar, "undefined-variable", format, args...)
}

func NoFrame(format string, args ...interface{}) *Error {
	return New(MissingFrame, "missing-frame", format, args...)
}

func NoValue(format string, args ...interface{}) *Error {
	return New(MissingValue, "missing-value", format, args...)
}

func BadOperandErr(format string, args ...interface{}) *Error {
	return New(BadOperand, "bad-operand", format, args...)
}

func BadString(format string, args ...interface{}) *Error {
	return New(BadStringOp, "bad-string", format, args...)
}

func InternalErr(format string, args ...interface{}) *Error {
	return New(Internal, "internal", format, args...)
}
