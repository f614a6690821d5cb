package frame

import (
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/value"
)

// Tag names one of the three frame slots an Argument's variable
// reference can address.
type Tag uint8

const (
	GF Tag = iota
	LF
	TF
)

func (t Tag) String() string {
	switch t {
	case GF:
		return "GF"
	case LF:
		return "LF"
	case TF:
		return "TF"
	default:
		return "?"
	}
}

// Table is the FrameTable of spec §3: the global frame (always present),
// an optional temporary frame, a stack of local frames, a Value data
// stack, and an instruction-index call stack. The zero Table is not
// ready to use; call NewTable.
type Table struct {
	gf  *Frame
	tf  *Frame
	lfs []*Frame

	data  []value.Value
	calls []int
}

func NewTable() *Table {
	return &Table{gf: New()}
}

// frameFor resolves a Tag to the live *Frame it names, or a MissingFrame
// ixerr.Error if that slot is currently empty (spec §4.2/§4.3).
func (t *Table) frameFor(tag Tag) (*Frame, *ixerr.Error) {
	switch tag {
	case GF:
		return t.gf, nil
	case TF:
		if t.tf == nil {
			return nil, ixerr.NoFrame("temporary frame not present")
		}
		return t.tf, nil
	case LF:
		if len(t.lfs) == 0 {
			return nil, ixerr.NoFrame("no active local frame")
		}
		return t.lfs[len(t.lfs)-1], nil
	default:
		return nil, ixerr.InternalErr("unknown frame tag %v", tag)
	}
}

// Declare creates variable name in the frame named by tag.
func (t *Table) Declare(tag Tag, name string) *ixerr.Error {
	f, err := t.frameFor(tag)
	if err != nil {
		return err
	}
	if !f.Declare(name) {
		return ixerr.SemanticErr("variable %s@%s already defined", tag, name)
	}
	return nil
}

// Lookup resolves a variable reference to its Variable, applying the
// frame-missing / undefined-variable error split from spec §4.3.
func (t *Table) Lookup(tag Tag, name string) (*Variable, *ixerr.Error) {
	f, err := t.frameFor(tag)
	if err != nil {
		return nil, err
	}
	v := f.Lookup(name)
	if v == nil {
		return nil, ixerr.Undefined("variable %s@%s not defined", tag, name)
	}
	return v, nil
}

// CreateFrame discards any existing TF and installs a fresh, empty one.
func (t *Table) CreateFrame() {
	t.tf = New()
}

// PushFrame moves TF onto the local-frame stack; TF must be present.
func (t *Table) PushFrame() *ixerr.Error {
	if t.tf == nil {
		return ixerr.NoFrame("PUSHFRAME with no temporary frame")
	}
	t.lfs = append(t.lfs, t.tf)
	t.tf = nil
	return nil
}

// PopFrame moves the top local frame into TF, replacing whatever was
// there; LFS must be non-empty.
func (t *Table) PopFrame() *ixerr.Error {
	if len(t.lfs) == 0 {
		return ixerr.NoFrame("POPFRAME with empty local-frame stack")
	}
	top := t.lfs[len(t.lfs)-1]
	t.lfs = t.lfs[:len(t.lfs)-1]
	t.tf = top
	return nil
}

// LiveVarCount sums variables across GF, TF (if present) and every
// frame on LFS — the quantity StatsCollector samples at each DEFVAR.
func (t *Table) LiveVarCount() int {
	n := t.gf.Len()
	if t.tf != nil {
		n += t.tf.Len()
	}
	for _, f := range t.lfs {
		n += f.Len()
	}
	return n
}

// --- Data stack ---

func (t *Table) Push(v value.Value) {
	t.data = append(t.data, v)
}

func (t *Table) Pop() (value.Value, *ixerr.Error) {
	if len(t.data) == 0 {
		return value.NilValue, ixerr.NoValue("data stack is empty")
	}
	v := t.data[len(t.data)-1]
	t.data = t.data[:len(t.data)-1]
	return v, nil
}

// PopTwo pops the top two values, returning (second-from-top, top) so
// that callers can treat the result as (left, right) per spec §4.10:
// "second-from-top is the left operand".
func (t *Table) PopTwo() (left, right value.Value, err *ixerr.Error) {
	if len(t.data) < 2 {
		return value.NilValue, value.NilValue, ixerr.NoValue("data stack underflow")
	}
	right = t.data[len(t.data)-1]
	left = t.data[len(t.data)-2]
	t.data = t.data[:len(t.data)-2]
	return left, right, nil
}

func (t *Table) ClearStack() {
	t.data = t.data[:0]
}

// --- Call stack ---

func (t *Table) PushCall(returnTo int) {
	t.calls = append(t.calls, returnTo)
}

func (t *Table) PopCall() (int, *ixerr.Error) {
	if len(t.calls) == 0 {
		return 0, ixerr.NoValue("RETURN with empty call stack")
	}
	idx := t.calls[len(t.calls)-1]
	t.calls = t.calls[:len(t.calls)-1]
	return idx, nil
}

// GF, TF and LFTop are exposed for BREAK's diagnostic snapshot.
func (t *Table) GF() *Frame      { return t.gf }
func (t *Table) TF() *Frame      { return t.tf }
func (t *Table) LFTop() *Frame {
	if len(t.lfs) == 0 {
		return nil
	}
	return t.lfs[len(t.lfs)-1]
}
