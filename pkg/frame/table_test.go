package frame

import (
	"testing"

	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/value"
)

func TestTableGlobalFrameAlwaysPresent(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Declare(GF, "x"); err != nil {
		t.Fatalf("unexpected error declaring in GF: %v", err)
	}
}

func TestTableTFMissingByDefault(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Declare(TF, "x"); err == nil || err.Code != ixerr.MissingFrame {
		t.Errorf("expected MissingFrame, got %v", err)
	}
}

func TestTablePushPopFrame(t *testing.T) {
	tbl := NewTable()
	if err := tbl.PushFrame(); err == nil {
		t.Fatal("expected PUSHFRAME with no TF to fail")
	}
	tbl.CreateFrame()
	tbl.Declare(TF, "a")
	if err := tbl.PushFrame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tbl.Declare(LF, "b"); err != nil {
		t.Fatalf("expected LF declare to succeed: %v", err)
	}
	if err := tbl.PopFrame(); err != nil {
		t.Fatalf("unexpected error popping frame: %v", err)
	}
	v, err := tbl.Lookup(TF, "b")
	if err != nil || v == nil {
		t.Error("expected b to reappear in TF after POPFRAME")
	}
}

func TestTablePopFrameEmpty(t *testing.T) {
	tbl := NewTable()
	if err := tbl.PopFrame(); err == nil || err.Code != ixerr.MissingFrame {
		t.Errorf("expected MissingFrame, got %v", err)
	}
}

func TestTableLookupUndefinedVariable(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Lookup(GF, "nope"); err == nil || err.Code != ixerr.UndefinedVar {
		t.Errorf("expected UndefinedVar, got %v", err)
	}
}

func TestTableDeclareDuplicate(t *testing.T) {
	tbl := NewTable()
	tbl.Declare(GF, "x")
	if err := tbl.Declare(GF, "x"); err == nil || err.Code != ixerr.Semantic {
		t.Errorf("expected Semantic error on duplicate DEFVAR, got %v", err)
	}
}

func TestTableDataStack(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Pop(); err == nil || err.Code != ixerr.MissingValue {
		t.Errorf("expected MissingValue on empty stack pop, got %v", err)
	}
	tbl.Push(value.NewInt(1))
	tbl.Push(value.NewInt(2))
	left, right, err := tbl.PopTwo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Int() != 1 || right.Int() != 2 {
		t.Errorf("PopTwo() = (%v, %v), want (1, 2)", left, right)
	}
}

func TestTablePopTwoUnderflow(t *testing.T) {
	tbl := NewTable()
	tbl.Push(value.NewInt(1))
	if _, _, err := tbl.PopTwo(); err == nil || err.Code != ixerr.MissingValue {
		t.Errorf("expected MissingValue on underflow, got %v", err)
	}
}

func TestTableClearStack(t *testing.T) {
	tbl := NewTable()
	tbl.Push(value.NewInt(1))
	tbl.ClearStack()
	if _, err := tbl.Pop(); err == nil {
		t.Error("expected empty stack after ClearStack")
	}
}

func TestTableCallStack(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.PopCall(); err == nil || err.Code != ixerr.MissingValue {
		t.Errorf("expected MissingValue on RETURN with empty call stack, got %v", err)
	}
	tbl.PushCall(7)
	idx, err := tbl.PopCall()
	if err != nil || idx != 7 {
		t.Errorf("PopCall() = (%d, %v), want (7, nil)", idx, err)
	}
}

func TestTableLiveVarCount(t *testing.T) {
	tbl := NewTable()
	tbl.Declare(GF, "a")
	tbl.CreateFrame()
	tbl.Declare(TF, "b")
	tbl.PushFrame()
	tbl.Declare(LF, "c")
	if n := tbl.LiveVarCount(); n != 3 {
		t.Errorf("LiveVarCount() = %d, want 3", n)
	}
}
