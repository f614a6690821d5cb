package loader

import (
	"strings"
	"testing"

	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
)

func TestLoadSimpleProgram(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">GF@x</arg1>
  </instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">42</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE">
    <arg1 type="var">GF@x</arg1>
  </instruction>
</program>`
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(p.Instructions))
	}
	if p.Instructions[1].Op != program.OpMove {
		t.Errorf("instruction[1] = %v, want OpMove", p.Instructions[1].Op)
	}
}

func TestLoadOutOfOrderInstructions(t *testing.T) {
	src := `<?xml version="1.0"?>
<program language="IPPcode23">
  <instruction order="5" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="PUSHFRAME"></instruction>
</program>`
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Instructions[0].Op != program.OpPushFrame || p.Instructions[1].Op != program.OpCreateFrame {
		t.Error("expected instructions sorted by order attribute")
	}
}

func TestLoadMalformedXML(t *testing.T) {
	_, err := Load(strings.NewReader("<program"))
	if err == nil || err.Code != ixerr.XMLMalformed {
		t.Errorf("expected XMLMalformed, got %v", err)
	}
}

func TestLoadWrongLanguage(t *testing.T) {
	src := `<program language="NotIPP"></program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.XMLStructure {
		t.Errorf("expected XMLStructure, got %v", err)
	}
}

func TestLoadUnknownOpcode(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="FROBNICATE"></instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.XMLStructure {
		t.Errorf("expected XMLStructure, got %v", err)
	}
}

func TestLoadDuplicateLabel(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="LABEL">
    <arg1 type="label">loop</arg1>
  </instruction>
  <instruction order="2" opcode="LABEL">
    <arg1 type="label">loop</arg1>
  </instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.Semantic {
		t.Errorf("expected Semantic duplicate-label error, got %v", err)
	}
}

func TestLoadDuplicateOrder(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="PUSHFRAME"></instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.XMLStructure {
		t.Errorf("expected XMLStructure duplicate-order error, got %v", err)
	}
}

func TestLoadArgOrderToleratesShuffledElements(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="MOVE">
    <arg2 type="int">1</arg2>
    <arg1 type="var">GF@x</arg1>
  </instruction>
</program>`
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Instructions[0].Args[0].IsVar {
		t.Error("expected arg1 to be resolved as the var argument regardless of XML element order")
	}
}

func TestLoadUnexpectedBodyElement(t *testing.T) {
	src := `<program language="IPPcode23"><foo/></program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.XMLStructure {
		t.Errorf("expected XMLStructure, got %v", err)
	}
}

func TestLoadUnexpectedHeaderAttribute(t *testing.T) {
	src := `<program language="IPPcode23" bogus="1"></program>`
	_, err := Load(strings.NewReader(src))
	if err == nil || err.Code != ixerr.XMLStructure {
		t.Errorf("expected XMLStructure, got %v", err)
	}
}
