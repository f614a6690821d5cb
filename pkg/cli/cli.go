// Package cli implements the command-line driver (spec §6): flag
// parsing and validation, source/input/stats file lifecycle, and
// wiring pkg/loader, pkg/engine and pkg/stats together into one run.
// Grounded on the teacher's pkg/driver — that package's JS-engine
// plumbing (checker/compiler wiring) is not reusable, but its pattern
// of "open files once at the top of a run function, defer the close,
// return a process exit code" is kept.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"ippcode23/pkg/engine"
	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/ixlog"
	"ippcode23/pkg/loader"
	"ippcode23/pkg/stats"
)

const helpText = `ippcode23 [-h|--help] [-s|--source PATH] [-i|--input PATH]
          [--stats PATH [--insts] [--hot] [--vars] [--frequent]
                        [--print STRING] [--eol]]

Interprets an IPPcode23 XML program. Source defaults to stdin, program
input defaults to stdin (only one of the two may be omitted).
`

// tokenKind names one stats-report token; the ordered slice of these is
// exactly spec §6's "stats tokens are emitted in the order flags appear
// on the command line."
type tokenKind uint8

const (
	tokInsts tokenKind = iota
	tokHot
	tokVars
	tokFrequent
	tokPrint
	tokEOL
)

type token struct {
	kind tokenKind
	text string // populated only for tokPrint
}

// Run parses args (as in os.Args[1:]), executes the requested program,
// and returns the process exit code. stdin/stdout/stderr let tests
// redirect all I/O without touching the real process streams.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("ippcode23", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	help := fs.BoolP("help", "h", false, "print usage and exit")
	source := fs.StringP("source", "s", "", "source XML path")
	input := fs.StringP("input", "i", "", "program input path")
	statsPath := fs.String("stats", "", "stats report path")
	insts := fs.Bool("insts", false, "executed instruction count")
	hot := fs.Bool("hot", false, "most-revisited instruction order")
	vars := fs.Bool("vars", false, "peak live-variable count")
	frequent := fs.Bool("frequent", false, "highest-frequency opcodes")
	print := fs.StringArray("print", nil, "literal string to emit")
	eol := fs.Bool("eol", false, "emit a newline")

	if err := fs.Parse(args); err != nil {
		return int(ixerr.CLIUsage)
	}

	// original_source/interpret.py's ArgumentsValidator rejects a source,
	// input or stats path repeated on the command line rather than
	// silently keeping the last one, since argparse would.
	if count(args, "-s", "--source") > 1 || count(args, "-i", "--input") > 1 || count(args, "", "--stats") > 1 {
		return int(ixerr.CLIUsage)
	}

	if *help {
		if len(args) > 1 {
			return int(ixerr.CLIUsage)
		}
		fmt.Fprint(stdout, helpText)
		return 0
	}

	if *source == "" && *input == "" {
		return int(ixerr.CLIUsage)
	}
	if *statsPath == "" && (*insts || *hot || *vars || *frequent || *eol || len(*print) > 0) {
		return int(ixerr.CLIUsage)
	}

	tokens := orderTokens(args, *print)

	srcReader, closeSrc, ixErr := openSource(*source, stdin)
	if ixErr != nil {
		ixlog.L().Debug().Err(ixErr).Msg("source open failed")
		return int(ixErr.Code)
	}
	defer closeSrc()

	prog, ixErr := loader.Load(srcReader)
	if ixErr != nil {
		ixlog.L().Debug().Err(ixErr).Msg("load failed")
		return int(ixErr.Code)
	}

	inReader, closeIn, ixErr := openInput(*input, stdin)
	if ixErr != nil {
		ixlog.L().Debug().Err(ixErr).Msg("input open failed")
		return int(ixErr.Code)
	}
	defer closeIn()

	var collector *stats.Collector
	if *statsPath != "" {
		collector = stats.New()
	}

	eng := engine.New(prog, inReader, stdout, stderr, collector)
	code, ixErr := eng.Run()
	if ixErr != nil {
		ixlog.L().Debug().Err(ixErr).Msg("run failed")
		return int(ixErr.Code)
	}

	if *statsPath != "" {
		if ixErr := writeReport(*statsPath, tokens, collector); ixErr != nil {
			return int(ixErr.Code)
		}
	}

	return code
}

// orderTokens walks the raw argument slice (not the parsed flag set) so
// the resulting token order matches the command line exactly, per
// original_source/interpret.py's StatsManager.print_stats, which writes
// each requested token in argv order rather than flag-declaration order.
func orderTokens(args []string, printValues []string) []token {
	var tokens []token
	printIdx := 0
	for _, a := range args {
		switch {
		case a == "--insts":
			tokens = append(tokens, token{kind: tokInsts})
		case a == "--hot":
			tokens = append(tokens, token{kind: tokHot})
		case a == "--vars":
			tokens = append(tokens, token{kind: tokVars})
		case a == "--frequent":
			tokens = append(tokens, token{kind: tokFrequent})
		case a == "--eol":
			tokens = append(tokens, token{kind: tokEOL})
		case a == "--print" || strings.HasPrefix(a, "--print="):
			if printIdx < len(printValues) {
				tokens = append(tokens, token{kind: tokPrint, text: printValues[printIdx]})
				printIdx++
			}
		}
	}
	return tokens
}

// writeReport renders the stats tokens to statsPath in order, exactly as
// requested, with no separators beyond what --eol itself emits.
func writeReport(path string, tokens []token, collector *stats.Collector) *ixerr.Error {
	f, err := os.Create(path)
	if err != nil {
		return ixerr.New(ixerr.OutputOpen, "output-open", "cannot create stats file %s: %v", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, t := range tokens {
		switch t.kind {
		case tokInsts:
			fmt.Fprintf(&b, "%d", collector.Insts())
		case tokHot:
			fmt.Fprintf(&b, "%d", collector.Hot())
		case tokVars:
			fmt.Fprintf(&b, "%d", collector.Vars())
		case tokFrequent:
			b.WriteString(strings.Join(collector.Frequent(), ","))
		case tokPrint:
			b.WriteString(t.text)
		case tokEOL:
			b.WriteString("\n")
		}
	}
	_, werr := f.WriteString(b.String())
	if werr != nil {
		return ixerr.New(ixerr.OutputOpen, "output-open", "cannot write stats file %s: %v", path, werr)
	}
	return nil
}

// count tallies how many argv entries are the given long/short flag,
// including "--flag=value" and "-xvalue" forms. short may be "" if the
// flag has no short form.
func count(args []string, short, long string) int {
	n := 0
	for _, a := range args {
		if a == long || strings.HasPrefix(a, long+"=") {
			n++
			continue
		}
		if short != "" && (a == short || strings.HasPrefix(a, short)) {
			n++
		}
	}
	return n
}

func openSource(path string, stdin io.Reader) (io.Reader, func(), *ixerr.Error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ixerr.New(ixerr.InputOpen, "input-open", "cannot open source %s: %v", path, err)
	}
	return f, func() { f.Close() }, nil
}

// openInput opens the program-input stream, falling back to stdin when
// no path is given. The only case that omits both -s/-i is already
// rejected by validation, so stdin is never claimed by both at once.
func openInput(path string, stdin io.Reader) (io.Reader, func(), *ixerr.Error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ixerr.New(ixerr.InputOpen, "input-open", "cannot open input %s: %v", path, err)
	}
	return f, func() { f.Close() }, nil
}
