package internal

import (
	"strconv"
	"strings"
)

// Argument index constants for error reporting
const (
	SpellArgSubject = -1
	SpellArgFirst   = 0
	SpellArgSecond  = 1
)

// RegisterStandardSpells installs the built-in spellbook into r
func RegisterStandardSpells(r *SpellRegistry) {
	registerStringSpells(r)
	registerCollectionSpells(r)
	registerTypeSpells(r)
	registerMathSpells(r)
	registerDateSpells(r)
}

// textOf returns the text of a scalar value. Nulls, containers and records
// have no text.
func textOf(v Value) (string, bool) {
	switch v.Kind() {
	case KindString, KindInt, KindFloat, KindBool:
		return v.String(), true
	default:
		return "", false
	}
}

// intOf reads an integer from an int, a whole float or a numeric string
func intOf(v Value) (int64, bool) {
	switch v.Kind() {
	case KindInt:
		i, _ := v.AsInt()
		return i, true
	case KindFloat:
		f, _ := v.AsFloat()
		if f != float64(int64(f)) {
			return 0, false
		}
		return int64(f), true
	case KindString:
		s, _ := v.AsString()
		i, err := strconv.ParseInt(strings.TrimSpace(s), IntBase10, IntBitSize64)
		return i, err == nil
	default:
		return 0, false
	}
}

// floatOf reads a number from an int, a float or a numeric string
func floatOf(v Value) (float64, bool) {
	if f, ok := v.AsNumber(); ok {
		return f, true
	}
	if s, ok := v.AsString(); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), FloatBitSize64)
		return f, err == nil
	}
	return 0, false
}

// stringArg returns the text of args[i]
func stringArg(spell string, args []Value, i int) (string, error) {
	if i >= len(args) {
		return "", NewSpellArgError(ErrMsgSpellTooFewArgs, spell, i)
	}
	s, ok := textOf(args[i])
	if !ok {
		return "", NewSpellArgError(ErrMsgSpellExpectedString, spell, i)
	}
	return s, nil
}

// optionalStringArg returns the text of args[i], or def when absent
func optionalStringArg(spell string, args []Value, i int, def string) (string, error) {
	if i >= len(args) {
		return def, nil
	}
	return stringArg(spell, args, i)
}

// intArg returns args[i] as an integer
func intArg(spell string, args []Value, i int) (int64, error) {
	if i >= len(args) {
		return 0, NewSpellArgError(ErrMsgSpellTooFewArgs, spell, i)
	}
	n, ok := intOf(args[i])
	if !ok {
		return 0, NewSpellArgError(ErrMsgSpellExpectedInt, spell, i)
	}
	return n, nil
}

// textSpell lifts a string transformation into a spell. Subjects without
// text yield Null.
func textSpell(fn func(string) string) SpellFunc {
	return func(subject Value, _ []Value) (Value, error) {
		s, ok := textOf(subject)
		if !ok {
			return Null(), nil
		}
		return String(fn(s)), nil
	}
}
