package program

import "ippcode23/pkg/value"

// OpCode enumerates every IPPcode23 instruction, register-variant and
// stackful alike. Naming follows the teacher's OpCode enum in
// pkg/bytecode/bytecode.go (exported constants, a String method), but the
// instruction set itself is IPPcode23's, not a register-bytecode VM's.
type OpCode uint8

const (
	OpMove OpCode = iota
	OpCreateFrame
	OpPushFrame
	OpPopFrame
	OpDefVar
	OpCall
	OpReturn
	OpPushS
	OpPopS
	OpAdd
	OpSub
	OpMul
	OpIDiv
	OpLT
	OpGT
	OpEQ
	OpAnd
	OpOr
	OpNot
	OpInt2Char
	OpStri2Int
	OpRead
	OpWrite
	OpConcat
	OpStrLen
	OpGetChar
	OpSetChar
	OpType
	OpLabel
	OpJump
	OpJumpIfEQ
	OpJumpIfNEQ
	OpExit
	OpDPrint
	OpBreak
	OpClearS
	OpAddS
	OpSubS
	OpMulS
	OpIDivS
	OpLTS
	OpGTS
	OpEQS
	OpAndS
	OpOrS
	OpNotS
	OpInt2CharS
	OpStri2IntS
	OpJumpIfEQS
	OpJumpIfNEQS
)

// ArgKind describes what an Instruction's argument slot accepts, as laid
// out in the opcode schema table (spec §6).
type ArgKind uint8

const (
	KindVar   ArgKind = iota // var: a variable reference
	KindSymb                 // symb: a variable reference or a literal
	KindLabel                // label: a label name
	KindType                 // type: one of int/bool/string/nil
)

// Schema describes one opcode's fixed arity and per-slot argument kind.
type Schema struct {
	Op   OpCode
	Args []ArgKind
}

// opcodeNames is both the canonical XML spelling of each opcode and the
// order spec §6's --frequent tie-break ("lexical order of first
// occurrence in the opcode schema") refers to.
var opcodeNames = []struct {
	name string
	op   OpCode
}{
	{"MOVE", OpMove},
	{"CREATEFRAME", OpCreateFrame},
	{"PUSHFRAME", OpPushFrame},
	{"POPFRAME", OpPopFrame},
	{"DEFVAR", OpDefVar},
	{"CALL", OpCall},
	{"RETURN", OpReturn},
	{"PUSHS", OpPushS},
	{"POPS", OpPopS},
	{"ADD", OpAdd},
	{"SUB", OpSub},
	{"MUL", OpMul},
	{"IDIV", OpIDiv},
	{"LT", OpLT},
	{"GT", OpGT},
	{"EQ", OpEQ},
	{"AND", OpAnd},
	{"OR", OpOr},
	{"NOT", OpNot},
	{"INT2CHAR", OpInt2Char},
	{"STRI2INT", OpStri2Int},
	{"READ", OpRead},
	{"WRITE", OpWrite},
	{"CONCAT", OpConcat},
	{"STRLEN", OpStrLen},
	{"GETCHAR", OpGetChar},
	{"SETCHAR", OpSetChar},
	{"TYPE", OpType},
	{"LABEL", OpLabel},
	{"JUMP", OpJump},
	{"JUMPIFEQ", OpJumpIfEQ},
	{"JUMPIFNEQ", OpJumpIfNEQ},
	{"EXIT", OpExit},
	{"DPRINT", OpDPrint},
	{"BREAK", OpBreak},
	{"CLEARS", OpClearS},
	{"ADDS", OpAddS},
	{"SUBS", OpSubS},
	{"MULS", OpMulS},
	{"IDIVS", OpIDivS},
	{"LTS", OpLTS},
	{"GTS", OpGTS},
	{"EQS", OpEQS},
	{"ANDS", OpAndS},
	{"ORS", OpOrS},
	{"NOTS", OpNotS},
	{"INT2CHARS", OpInt2CharS},
	{"STRI2INTS", OpStri2IntS},
	{"JUMPIFEQS", OpJumpIfEQS},
	{"JUMPIFNEQS", OpJumpIfNEQS},
}

var schemas = map[OpCode][]ArgKind{
	OpMove:        {KindVar, KindSymb},
	OpCreateFrame: {},
	OpPushFrame:   {},
	OpPopFrame:    {},
	OpDefVar:      {KindVar},
	OpCall:        {KindLabel},
	OpReturn:      {},
	OpPushS:       {KindSymb},
	OpPopS:        {KindVar},
	OpAdd:         {KindVar, KindSymb, KindSymb},
	OpSub:         {KindVar, KindSymb, KindSymb},
	OpMul:         {KindVar, KindSymb, KindSymb},
	OpIDiv:        {KindVar, KindSymb, KindSymb},
	OpLT:          {KindVar, KindSymb, KindSymb},
	OpGT:          {KindVar, KindSymb, KindSymb},
	OpEQ:          {KindVar, KindSymb, KindSymb},
	OpAnd:         {KindVar, KindSymb, KindSymb},
	OpOr:          {KindVar, KindSymb, KindSymb},
	OpNot:         {KindVar, KindSymb},
	OpInt2Char:    {KindVar, KindSymb},
	OpStri2Int:    {KindVar, KindSymb, KindSymb},
	OpRead:        {KindVar, KindType},
	OpWrite:       {KindSymb},
	OpConcat:      {KindVar, KindSymb, KindSymb},
	OpStrLen:      {KindVar, KindSymb},
	OpGetChar:     {KindVar, KindSymb, KindSymb},
	OpSetChar:     {KindVar, KindSymb, KindSymb},
	OpType:        {KindVar, KindSymb},
	OpLabel:       {KindLabel},
	OpJump:        {KindLabel},
	OpJumpIfEQ:    {KindLabel, KindSymb, KindSymb},
	OpJumpIfNEQ:   {KindLabel, KindSymb, KindSymb},
	OpExit:        {KindSymb},
	OpDPrint:      {KindSymb},
	OpBreak:       {},
	OpClearS:      {},
	OpAddS:        {},
	OpSubS:        {},
	OpMulS:        {},
	OpIDivS:       {},
	OpLTS:         {},
	OpGTS:         {},
	OpEQS:         {},
	OpAndS:        {},
	OpOrS:         {},
	OpNotS:        {},
	OpInt2CharS:   {},
	OpStri2IntS:   {},
	OpJumpIfEQS:   {KindLabel},
	OpJumpIfNEQS:  {KindLabel},
}

func (op OpCode) String() string {
	for _, e := range opcodeNames {
		if e.op == op {
			return e.name
		}
	}
	return "UNKNOWN"
}

// Lookup resolves a (case-insensitive) opcode mnemonic to its OpCode and
// argument-kind list. ok is false for any name outside the 50-entry
// instruction set.
func Lookup(name string) (OpCode, []ArgKind, bool) {
	folded := value.Fold(name)
	for _, e := range opcodeNames {
		if value.Fold(e.name) == folded {
			return e.op, schemas[e.op], true
		}
	}
	return 0, nil, false
}

// OpcodesInSchemaOrder returns every opcode name in the declaration order
// above — the tie-break order spec §6's --frequent flag requires.
func OpcodesInSchemaOrder() []string {
	names := make([]string, len(opcodeNames))
	for i, e := range opcodeNames {
		names[i] = e.name
	}
	return names
}
