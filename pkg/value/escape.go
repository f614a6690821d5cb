package value

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

// escapeSeq matches a single \DDD escape: a backslash followed by exactly
// three decimal digits. Built with regexp2 rather than the stdlib regexp
// package so the same engine used for identifier validation in pkg/loader
// covers this scan too.
var escapeSeq = regexp2.MustCompile(`\\[0-9]{3}`, regexp2.None)

// Decode resolves every \DDD escape sequence in s into the Unicode code
// point DDD denotes. It is idempotent on strings that contain no such
// sequence, and is the single policy applied at every use site listed in
// spec §4.1: output, comparison, length, indexing, concatenation.
func Decode(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	m, _ := escapeSeq.FindStringMatch(s)
	for m != nil {
		start := m.Index
		end := start + m.Length
		b.WriteString(s[last:start])
		code, err := strconv.Atoi(s[start+1 : end])
		if err == nil {
			b.WriteRune(rune(code))
		} else {
			b.WriteString(s[start:end])
		}
		last = end
		m, _ = escapeSeq.FindNextMatch(m)
	}
	b.WriteString(s[last:])
	return b.String()
}

var foldCaser = cases.Fold()

// Fold returns s under Unicode case folding, the building block for every
// case-insensitive comparison the interpreter makes: opcode mnemonics
// (spec §6, "opcode (case-insensitive)") and, through EqualFoldASCII,
// READ's bool comparison. Identifier matching is case-sensitive.
func Fold(s string) string { return foldCaser.String(s) }

// EqualFoldASCII reports whether s equals target (already folded, e.g.
// the literal "true") under case folding. Used for the READ bool
// comparison described in spec §4.8.
func EqualFoldASCII(s, target string) bool {
	return foldCaser.String(s) == target
}
