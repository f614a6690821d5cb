// Package stats implements StatsCollector: the optional side observer of
// execution counters described in spec §4.12. It never influences
// control flow; pkg/engine calls into it just before executing each
// instruction and after each DEFVAR, and pkg/cli renders its counters
// into the report file the --stats flags request.
package stats

import (
	"sort"

	"ippcode23/pkg/program"
)

// Collector accumulates the four statistics spec §4.12 names: total
// executed instructions (LABEL excluded), an opcode frequency histogram,
// peak live-variable count, and the most-often-revisited instruction
// order (for loop hotspotting).
type Collector struct {
	executed    int
	opcodeFreq  map[program.OpCode]int
	peakVars    int
	orderVisits map[int]int
}

func New() *Collector {
	return &Collector{
		opcodeFreq:  make(map[program.OpCode]int),
		orderVisits: make(map[int]int),
	}
}

// RecordExecution is called once per executed instruction, LABEL excluded
// (spec §4.12: "total executed instructions (excluding LABEL)").
func (c *Collector) RecordExecution(op program.OpCode, order int) {
	if c == nil {
		return
	}
	c.executed++
	c.opcodeFreq[op]++
	c.orderVisits[order]++
}

// RecordLiveVars is called after every DEFVAR with the current live
// variable count across all currently-reachable frames.
func (c *Collector) RecordLiveVars(n int) {
	if c == nil {
		return
	}
	if n > c.peakVars {
		c.peakVars = n
	}
}

// Insts is the total executed-instruction count.
func (c *Collector) Insts() int { return c.executed }

// Vars is the peak live-variable count observed at any DEFVAR.
func (c *Collector) Vars() int { return c.peakVars }

// Hot returns the instruction order value most frequently revisited,
// ties broken by the numerically-smallest order (spec §9).
func (c *Collector) Hot() int {
	best, bestCount := 0, -1
	orders := make([]int, 0, len(c.orderVisits))
	for o := range c.orderVisits {
		orders = append(orders, o)
	}
	sort.Ints(orders)
	for _, o := range orders {
		if c.orderVisits[o] > bestCount {
			bestCount = c.orderVisits[o]
			best = o
		}
	}
	return best
}

// Frequent returns the opcodes tied for highest execution frequency, in
// the lexical order of their first occurrence in the opcode schema table
// (spec §6: "--frequent comma-separated list ... ties included, in
// lexical order of first occurrence in the opcode schema").
func (c *Collector) Frequent() []string {
	maxFreq := 0
	for _, n := range c.opcodeFreq {
		if n > maxFreq {
			maxFreq = n
		}
	}
	var names []string
	for _, name := range program.OpcodesInSchemaOrder() {
		op, _, _ := program.Lookup(name)
		if c.opcodeFreq[op] == maxFreq {
			names = append(names, name)
		}
	}
	return names
}
