package engine

import (
	"unicode/utf8"

	"ippcode23/pkg/ixerr"
	"ippcode23/pkg/program"
	"ippcode23/pkg/value"
)

// int2char converts a Unicode code point to its single-rune string,
// rejecting anything outside the valid range (spec §4.7: an invalid
// code point is a bad-string-operation error, exit 58).
func int2char(codePoint int64) (string, *ixerr.Error) {
	if codePoint < 0 || codePoint > utf8.MaxRune || !utf8.ValidRune(rune(codePoint)) {
		return "", ixerr.BadString("INT2CHAR: %d is not a valid Unicode code point", codePoint)
	}
	return string(rune(codePoint)), nil
}

func (e *Engine) execInt2Char(dest sink, arg program.Argument) *ixerr.Error {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return err
	}
	if !v.IsInt() {
		return ixerr.TypeErr("INT2CHAR operand must be int")
	}
	s, err := int2char(v.Int())
	if err != nil {
		return err
	}
	return dest.write(e, value.NewStr(s))
}

func (e *Engine) execInt2CharS() *ixerr.Error {
	v, err := e.table.Pop()
	if err != nil {
		return err
	}
	if !v.IsInt() {
		return ixerr.TypeErr("INT2CHAR operand must be int")
	}
	s, err := int2char(v.Int())
	if err != nil {
		return err
	}
	e.table.Push(value.NewStr(s))
	return nil
}

// stri2int resolves STRI2INT's rune-at-index rule: an out-of-range index
// is a bad-string-operation error (exit 58), not a type error.
func stri2int(s string, idx int64) (int64, *ixerr.Error) {
	runes := []rune(s)
	if idx < 0 || idx >= int64(len(runes)) {
		return 0, ixerr.BadString("STRI2INT: index %d out of range", idx)
	}
	return int64(runes[idx]), nil
}

func (e *Engine) execStri2Int(dest sink, strArg, idxArg program.Argument) *ixerr.Error {
	s, err := e.resolveSymb(strArg)
	if err != nil {
		return err
	}
	i, err := e.resolveSymb(idxArg)
	if err != nil {
		return err
	}
	if !s.IsStr() || !i.IsInt() {
		return ixerr.TypeErr("STRI2INT requires (string, int) operands")
	}
	code, err := stri2int(s.Str(), i.Int())
	if err != nil {
		return err
	}
	return dest.write(e, value.NewInt(code))
}

func (e *Engine) execStri2IntS() *ixerr.Error {
	s, i, err := e.table.PopTwo()
	if err != nil {
		return err
	}
	if !s.IsStr() || !i.IsInt() {
		return ixerr.TypeErr("STRI2INT requires (string, int) operands")
	}
	code, err := stri2int(s.Str(), i.Int())
	if err != nil {
		return err
	}
	e.table.Push(value.NewInt(code))
	return nil
}

func (e *Engine) execGetChar(dest sink, strArg, idxArg program.Argument) *ixerr.Error {
	s, err := e.resolveSymb(strArg)
	if err != nil {
		return err
	}
	i, err := e.resolveSymb(idxArg)
	if err != nil {
		return err
	}
	if !s.IsStr() || !i.IsInt() {
		return ixerr.TypeErr("GETCHAR requires (string, int) operands")
	}
	runes := []rune(s.Str())
	idx := i.Int()
	if idx < 0 || idx >= int64(len(runes)) {
		return ixerr.BadString("GETCHAR: index %d out of range", idx)
	}
	return dest.write(e, value.NewStr(string(runes[idx])))
}

func (e *Engine) execSetChar(destArg, idxArg, charArg program.Argument) *ixerr.Error {
	dest, err := e.resolveSymb(destArg)
	if err != nil {
		return err
	}
	i, err := e.resolveSymb(idxArg)
	if err != nil {
		return err
	}
	c, err := e.resolveSymb(charArg)
	if err != nil {
		return err
	}
	if !dest.IsStr() || !i.IsInt() || !c.IsStr() {
		return ixerr.TypeErr("SETCHAR requires (string, int, string) operands")
	}
	src := []rune(c.Str())
	if len(src) == 0 {
		return ixerr.BadString("SETCHAR: replacement string is empty")
	}
	runes := []rune(dest.Str())
	idx := i.Int()
	if idx < 0 || idx >= int64(len(runes)) {
		return ixerr.BadString("SETCHAR: index %d out of range", idx)
	}
	runes[idx] = src[0]
	return destSink(destArg).write(e, value.NewStr(string(runes)))
}

func (e *Engine) execConcat(dest sink, left, right program.Argument) *ixerr.Error {
	l, err := e.resolveSymb(left)
	if err != nil {
		return err
	}
	r, err := e.resolveSymb(right)
	if err != nil {
		return err
	}
	if !l.IsStr() || !r.IsStr() {
		return ixerr.TypeErr("CONCAT operands must be string")
	}
	return dest.write(e, value.NewStr(l.Str()+r.Str()))
}

func (e *Engine) execStrLen(dest sink, arg program.Argument) *ixerr.Error {
	v, err := e.resolveSymb(arg)
	if err != nil {
		return err
	}
	if !v.IsStr() {
		return ixerr.TypeErr("STRLEN operand must be string")
	}
	return dest.write(e, value.NewInt(int64(utf8.RuneCountInString(v.Str()))))
}

// execType is the one operation spec §4.7 carves out a relaxed resolution
// path for: a valueless variable reports the empty string rather than
// failing (see resolveOptional).
func (e *Engine) execType(dest sink, arg program.Argument) *ixerr.Error {
	v, has, err := e.resolveOptional(arg)
	if err != nil {
		return err
	}
	if !has {
		return dest.write(e, value.NewStr(""))
	}
	return dest.write(e, value.NewStr(v.Type().String()))
}
