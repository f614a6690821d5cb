// Package frame implements the interpreter's memory model: named
// Variables grouped into Frames, and the FrameTable that owns the
// global frame, the optional temporary frame, the local-frame stack,
// the data stack, and the call stack (spec §3, §4.2).
package frame

import "ippcode23/pkg/value"

// Variable is a named cell that starts with no Value and becomes
// populated on first assignment.
type Variable struct {
	Name string
	val  value.Value
	set  bool
}

func (v *Variable) Set(val value.Value) { v.val = val; v.set = true }

// Value returns the variable's current Value and whether it has one.
func (v *Variable) Value() (value.Value, bool) { return v.val, v.set }

// Frame is an insertion-ordered collection of uniquely-named Variables.
// Ordering is kept only so diagnostics (BREAK) are deterministic; lookup
// itself goes through the index map.
type Frame struct {
	order []string
	vars  map[string]*Variable
}

func New() *Frame {
	return &Frame{vars: make(map[string]*Variable)}
}

// Declare creates a new Variable named name. ok is false if name is
// already defined in this frame (duplicate DEFVAR is a semantic error,
// spec §3 "Invariants").
func (f *Frame) Declare(name string) (ok bool) {
	if _, exists := f.vars[name]; exists {
		return false
	}
	v := &Variable{Name: name}
	f.vars[name] = v
	f.order = append(f.order, name)
	return true
}

// Lookup returns the Variable named name, or nil if undefined.
func (f *Frame) Lookup(name string) *Variable {
	return f.vars[name]
}

// Len returns the number of variables currently declared in this frame.
func (f *Frame) Len() int { return len(f.order) }

// Names returns variable names in declaration order, for BREAK snapshots.
func (f *Frame) Names() []string { return f.order }
