package program

import "testing"

func newLabelInstr(name string) Instruction {
	return Instruction{Op: OpLabel, Args: []Argument{{Kind: KindLabel, Label: name}}}
}

func TestProgramResolveLabel(t *testing.T) {
	instrs := []Instruction{
		{Op: OpCreateFrame},
		newLabelInstr("loop"),
		{Op: OpJump, Args: []Argument{{Kind: KindLabel, Label: "loop"}}},
	}
	p := New(instrs)
	idx, ok := p.Resolve("loop")
	if !ok || idx != 1 {
		t.Errorf("Resolve(loop) = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestProgramResolveUnknownLabel(t *testing.T) {
	p := New(nil)
	if _, ok := p.Resolve("nowhere"); ok {
		t.Error("expected Resolve of unknown label to fail")
	}
}
