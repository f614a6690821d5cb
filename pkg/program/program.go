package program

import (
	"ippcode23/pkg/frame"
	"ippcode23/pkg/value"
)

// Argument is one operand of an Instruction. Exactly one of the payload
// fields is meaningful, selected by Kind:
//   - KindVar:   Frame + Name
//   - KindSymb:  either (Frame + Name), when IsVar is true, or Literal
//   - KindLabel: Label
//   - KindType:  TypeKeyword
type Argument struct {
	Kind ArgKind

	IsVar bool
	Frame frame.Tag
	Name  string

	Literal value.Value

	Label string

	TypeKeyword value.Type
}

// Instruction is one fetched program step: an opcode, its source order
// (kept for diagnostics and stats, spec §3), and its fixed-arity args.
type Instruction struct {
	Op    OpCode
	Order int
	Args  []Argument
}

// Program is the loaded, order-sorted instruction stream plus the label
// index built over it at load time (spec §3, §9 "Forward label
// resolution").
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// New builds a Program from an already order-sorted instruction slice,
// indexing every LABEL. Duplicate labels are a loader-time concern
// (checked before New is called, spec §4.9); New itself does not
// re-validate that invariant.
func New(instrs []Instruction) *Program {
	p := &Program{Instructions: instrs, Labels: make(map[string]int)}
	for i, ins := range instrs {
		if ins.Op == OpLabel {
			p.Labels[ins.Args[0].Label] = i
		}
	}
	return p
}

// Resolve looks up a label's instruction position. ok is false for an
// unknown label (spec §4.9: JUMP/CALL to an unresolvable label → semantic
// error 52, reported lazily at the jump site).
func (p *Program) Resolve(label string) (int, bool) {
	i, ok := p.Labels[label]
	return i, ok
}
