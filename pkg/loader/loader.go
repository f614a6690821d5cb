// Package loader decodes the IPPcode23 XML document, validates its shape
// against the opcode schema table, and produces a pkg/program.Program.
// It mirrors the teacher's driver.go in being the thin layer between raw
// input and the core engine, but its actual body is grounded on
// original_source/interpret.py's XmlValidator and ArgumentsValidator.
package loader

import (
	"encoding/xml"
	"io"

	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
)

// Load decodes and validates an IPPcode23 XML document from r, returning
// a ready-to-run Program or the first ixerr.Error encountered. Decoding
// failures (not well-formed XML) map to exit 31; every structural or
// schema defect above that maps to exit 32, except duplicate labels,
// which are a semantic error (exit 52) per spec §4.9.
func Load(r io.Reader) (*program.Program, *ixerr.Error) {
	var doc xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ixerr.Malformed("xml decode: %v", err)
	}
	return build(&doc)
}
