package stats

import (
	"reflect"
	"testing"

	"ippcode23/pkg/program"
)

func TestCollectorNilIsNoOp(t *testing.T) {
	var c *Collector
	c.RecordExecution(program.OpAdd, 0)
	c.RecordLiveVars(5)
}

func TestCollectorInsts(t *testing.T) {
	c := New()
	c.RecordExecution(program.OpMove, 0)
	c.RecordExecution(program.OpAdd, 1)
	if c.Insts() != 2 {
		t.Errorf("Insts() = %d, want 2", c.Insts())
	}
}

func TestCollectorVarsPeak(t *testing.T) {
	c := New()
	c.RecordLiveVars(1)
	c.RecordLiveVars(3)
	c.RecordLiveVars(2)
	if c.Vars() != 3 {
		t.Errorf("Vars() = %d, want 3", c.Vars())
	}
}

func TestCollectorHotTieBreak(t *testing.T) {
	c := New()
	// order 5 and order 2 both visited twice; order 2 should win the tie.
	c.RecordExecution(program.OpMove, 5)
	c.RecordExecution(program.OpMove, 5)
	c.RecordExecution(program.OpMove, 2)
	c.RecordExecution(program.OpMove, 2)
	c.RecordExecution(program.OpMove, 9)
	if got := c.Hot(); got != 2 {
		t.Errorf("Hot() = %d, want 2", got)
	}
}

func TestCollectorFrequentTies(t *testing.T) {
	c := New()
	c.RecordExecution(program.OpSub, 0)
	c.RecordExecution(program.OpAdd, 1)
	c.RecordExecution(program.OpAdd, 2)
	c.RecordExecution(program.OpSub, 3)
	// ADD and SUB are tied at 2 each; schema order lists ADD before SUB.
	got := c.Frequent()
	want := []string{"ADD", "SUB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequent() = %v, want %v", got, want)
	}
}
