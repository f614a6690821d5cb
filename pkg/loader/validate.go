package loader

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"ippcode23/pkg/frame"
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/ixlog"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// identRe is IPPcode23's identifier grammar, carried over from the
// broader language family this spec was distilled from (spec §4,
// "(expansion) Identifier lexical validation" in SPEC_FULL.md);
// original_source/interpret.py never checks it, only splits on '@'.
var identRe = regexp2.MustCompile(`^[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*$`, regexp2.None)

// intLiteralRe accepts an optionally-signed run of decimal digits, the
// same grammar original_source checks informally with isdigit().
var intLiteralRe = regexp2.MustCompile(`^[+-]?[0-9]+$`, regexp2.None)

func matches(re *regexp2.Regexp, s string) bool {
	ok, _ := re.MatchString(s)
	return ok
}

var allowedRootAttrs = map[string]bool{"language": true, "name": true, "description": true}

func validateHeader(p *xmlProgram) *ixerr.Error {
	var language string
	haveLanguage := false
	for _, a := range p.Attrs {
		if !allowedRootAttrs[a.Name.Local] {
			return ixerr.Structure("unexpected <program> attribute %q", a.Name.Local)
		}
		if a.Name.Local == "language" {
			language = a.Value
			haveLanguage = true
		}
	}
	if !haveLanguage {
		return ixerr.Structure("<program> missing required language attribute")
	}
	if language != "IPPcode23" {
		return ixerr.Structure("unsupported language %q", language)
	}
	return nil
}

func parseVarText(text string) (frame.Tag, string, *ixerr.Error) {
	parts := strings.SplitN(text, "@", 2)
	if len(parts) != 2 {
		return 0, "", ixerr.Structure("malformed variable reference %q", text)
	}
	var tag frame.Tag
	switch parts[0] {
	case "GF":
		tag = frame.GF
	case "LF":
		tag = frame.LF
	case "TF":
		tag = frame.TF
	default:
		return 0, "", ixerr.Structure("unknown frame tag %q", parts[0])
	}
	if !matches(identRe, parts[1]) {
		return 0, "", ixerr.Structure("invalid variable name %q", parts[1])
	}
	return tag, parts[1], nil
}

func parseArg(kind program.ArgKind, raw xmlArg) (program.Argument, *ixerr.Error) {
	arg := program.Argument{Kind: kind}
	switch kind {
	case program.KindVar:
		if raw.Type != "var" {
			return arg, ixerr.Structure("expected var argument, got type %q", raw.Type)
		}
		tag, name, err := parseVarText(strings.TrimSpace(raw.Text))
		if err != nil {
			return arg, err
		}
		arg.IsVar, arg.Frame, arg.Name = true, tag, name
		return arg, nil

	case program.KindLabel:
		if raw.Type != "label" {
			return arg, ixerr.Structure("expected label argument, got type %q", raw.Type)
		}
		label := strings.TrimSpace(raw.Text)
		if !matches(identRe, label) {
			return arg, ixerr.Structure("invalid label name %q", label)
		}
		arg.Label = label
		return arg, nil

	case program.KindType:
		if raw.Type != "type" {
			return arg, ixerr.Structure("expected type argument, got type %q", raw.Type)
		}
		kw := strings.TrimSpace(raw.Text)
		switch kw {
		case "int":
			arg.TypeKeyword = value.Int
		case "bool":
			arg.TypeKeyword = value.Bool
		case "string":
			arg.TypeKeyword = value.Str
		case "nil":
			arg.TypeKeyword = value.Nil
		default:
			return arg, ixerr.Structure("invalid type keyword %q", kw)
		}
		return arg, nil

	case program.KindSymb:
		text := raw.Text
		switch raw.Type {
		case "var":
			tag, name, err := parseVarText(strings.TrimSpace(text))
			if err != nil {
				return arg, err
			}
			arg.IsVar, arg.Frame, arg.Name = true, tag, name
			return arg, nil
		case "int":
			trimmed := strings.TrimSpace(text)
			if !matches(intLiteralRe, trimmed) {
				return arg, ixerr.Structure("invalid int literal %q", trimmed)
			}
			n, convErr := strconv.ParseInt(trimmed, 10, 64)
			if convErr != nil {
				return arg, ixerr.Structure("int literal out of range %q", trimmed)
			}
			arg.Literal = value.NewInt(n)
			return arg, nil
		case "bool":
			trimmed := strings.TrimSpace(text)
			if trimmed != "true" && trimmed != "false" {
				return arg, ixerr.Structure("invalid bool literal %q", trimmed)
			}
			arg.Literal = value.NewBool(trimmed == "true")
			return arg, nil
		case "string":
			// Escape decoding happens lazily at execution (spec §4.1); the
			// loader preserves the raw literal form.
			arg.Literal = value.NewStr(text)
			return arg, nil
		case "nil":
			arg.Literal = value.NilValue
			return arg, nil
		default:
			return arg, ixerr.Structure("invalid symb argument type %q", raw.Type)
		}
	}
	return arg, ixerr.InternalErr("unhandled argument kind %v", kind)
}

// argElementName is the expected element tag for the i-th argument
// (0-based), per spec §6: children are arg1, arg2, arg3 in arity order.
func argElementName(i int) string {
	return "arg" + strconv.Itoa(i+1)
}

func buildInstruction(raw xmlInstruction, seenLabels map[string]bool) (program.Instruction, *ixerr.Error) {
	if raw.Order == "" || raw.Op == "" {
		return program.Instruction{}, ixerr.Structure("instruction missing order or opcode attribute")
	}
	order, convErr := strconv.Atoi(raw.Order)
	if convErr != nil || order < 1 {
		return program.Instruction{}, ixerr.Structure("invalid order %q", raw.Order)
	}
	op, schema, ok := program.Lookup(raw.Op)
	if !ok {
		return program.Instruction{}, ixerr.Structure("unknown opcode %q", raw.Op)
	}
	if len(raw.Args) != len(schema) {
		return program.Instruction{}, ixerr.Structure("%s expects %d argument(s), got %d", raw.Op, len(schema), len(raw.Args))
	}

	// Argument elements need not appear in arg1/arg2/arg3 order in the
	// source XML; original_source/interpret.py re-sorts instruction
	// children by tag name before processing, and this loader preserves
	// that tolerance.
	sortedArgs := make([]xmlArg, len(raw.Args))
	copy(sortedArgs, raw.Args)
	sort.Slice(sortedArgs, func(i, j int) bool {
		return sortedArgs[i].XMLName.Local < sortedArgs[j].XMLName.Local
	})

	seen := make(map[string]bool, len(sortedArgs))
	for i, a := range sortedArgs {
		seen[a.XMLName.Local] = true
		if a.XMLName.Local != argElementName(i) {
			return program.Instruction{}, ixerr.Structure("expected <%s>, found <%s>", argElementName(i), a.XMLName.Local)
		}
	}
	for i := range schema {
		if !seen[argElementName(i)] {
			return program.Instruction{}, ixerr.Structure("missing <%s>", argElementName(i))
		}
	}

	args := make([]program.Argument, len(sortedArgs))
	for i, a := range sortedArgs {
		arg, err := parseArg(schema[i], a)
		if err != nil {
			return program.Instruction{}, err
		}
		args[i] = arg
	}

	if op == program.OpLabel {
		name := args[0].Label
		if seenLabels[name] {
			return program.Instruction{}, ixerr.SemanticErr("duplicate label %q", name)
		}
		seenLabels[name] = true
	}

	return program.Instruction{Op: op, Order: order, Args: args}, nil
}

// build validates the whole document and produces a Program sorted by
// instruction order, matching the ordering guarantee in spec §3
// "Invariants": no two instructions share an order, sorted order is
// strictly increasing.
func build(doc *xmlProgram) (*program.Program, *ixerr.Error) {
	if err := validateHeader(doc); err != nil {
		return nil, err
	}
	if len(doc.Other) > 0 {
		return nil, ixerr.Structure("unexpected <program> child element %q", doc.Other[0].XMLName.Local)
	}

	seenLabels := make(map[string]bool)
	instrs := make([]program.Instruction, len(doc.Instructions))
	seenOrders := make(map[int]bool, len(doc.Instructions))
	for i, raw := range doc.Instructions {
		ins, err := buildInstruction(raw, seenLabels)
		if err != nil {
			return nil, err
		}
		if seenOrders[ins.Order] {
			return nil, ixerr.Structure("duplicate instruction order %d", ins.Order)
		}
		seenOrders[ins.Order] = true
		instrs[i] = ins
	}

	sort.SliceStable(instrs, func(i, j int) bool {
		return instrs[i].Order < instrs[j].Order
	})

	ixlog.L().Debug().Int("instructions", len(instrs)).Msg("program loaded")
	return program.New(instrs), nil
}
