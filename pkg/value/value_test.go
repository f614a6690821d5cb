package value

import "testing"

func TestNewBool(t *testing.T) {
	v := NewBool(true)
	if v.Type() != Bool {
		t.Errorf("Expected Bool, got %v", v.Type())
	}
	if !v.IsBool() || !v.Bool() {
		t.Error("Expected IsBool() and Bool() true")
	}
}

func TestNewInt(t *testing.T) {
	v := NewInt(42)
	if !v.IsInt() || v.Int() != 42 {
		t.Errorf("Expected int 42, got %v", v)
	}
}

func TestNewStr(t *testing.T) {
	v := NewStr("hello")
	if !v.IsStr() || v.Str() != "hello" {
		t.Errorf("Expected string hello, got %v", v)
	}
}

func TestNilValue(t *testing.T) {
	if !NilValue.IsNil() {
		t.Error("Expected NilValue.IsNil() true")
	}
	var zero Value
	if !zero.IsNil() {
		t.Error("Expected zero Value to be Nil")
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NilValue, ""},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewInt(-7), "-7"},
		{NewStr("x"), "x"},
	}
	for _, c := range cases {
		if got := c.v.Text(); got != c.want {
			t.Errorf("Text() = %q, want %q", got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(NilValue, NilValue) {
		t.Error("Nil should equal Nil")
	}
	if Equal(NilValue, NewInt(0)) {
		t.Error("Nil should not equal int 0")
	}
	if !Equal(NewInt(5), NewInt(5)) {
		t.Error("equal ints should be equal")
	}
	if Equal(NewInt(5), NewStr("5")) {
		t.Error("values of different types should never be equal")
	}
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{Nil: "nil", Bool: "bool", Int: "int", Str: "string"}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
