package frame

import (
	"testing"

	"ippcode23/pkg/value"
)

func TestFrameDeclareDuplicate(t *testing.T) {
	f := New()
	if !f.Declare("x") {
		t.Fatal("expected first Declare to succeed")
	}
	if f.Declare("x") {
		t.Error("expected duplicate Declare to fail")
	}
}

func TestFrameLookupUndefined(t *testing.T) {
	f := New()
	if f.Lookup("missing") != nil {
		t.Error("expected nil for undeclared variable")
	}
}

func TestFrameNamesOrder(t *testing.T) {
	f := New()
	f.Declare("b")
	f.Declare("a")
	f.Declare("c")
	names := f.Names()
	want := []string{"b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestVariableSetValue(t *testing.T) {
	v := &Variable{Name: "x"}
	if _, ok := v.Value(); ok {
		t.Error("expected fresh Variable to have no value")
	}
	v.Set(value.NewInt(5))
	val, ok := v.Value()
	if !ok || !val.IsInt() {
		t.Error("expected Variable to carry the set value")
	}
}
