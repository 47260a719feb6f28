package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String spell name constants
const (
	SpellNameUpper      = "upper"
	SpellNameLower      = "lower"
	SpellNameTrim       = "trim"
	SpellNameCapitalize = "capitalize"
	SpellNameReverse    = "reverse"
	SpellNameLength     = "length"
	SpellNameRepeat     = "repeat"
	SpellNameReplace    = "replace"
	SpellNameSubstring  = "substring"
	SpellNamePad        = "pad"
	SpellNamePadRight   = "padRight"
	SpellNameSplit      = "split"
	SpellNameStartsWith = "startsWith"
	SpellNameEndsWith   = "endsWith"
	SpellNameFormat     = "format"
	SpellNameJSON       = "json"
)

// Default pad character
const DefaultPadChar = " "

// MaxSpellOutputLength caps the bytes repeat and pad may produce
const MaxSpellOutputLength = 1 << 20

// registerStringSpells registers text manipulation spells
func registerStringSpells(r *SpellRegistry) {
	// upper() string
	r.MustRegister(&Spell{Name: SpellNameUpper, Fn: textSpell(strings.ToUpper)})

	// lower() string
	r.MustRegister(&Spell{Name: SpellNameLower, Fn: textSpell(strings.ToLower)})

	// trim() string
	r.MustRegister(&Spell{Name: SpellNameTrim, Fn: textSpell(strings.TrimSpace)})

	// capitalize() string
	r.MustRegister(&Spell{Name: SpellNameCapitalize, Fn: textSpell(capitalize)})

	// reverse() string | sequence
	r.MustRegister(&Spell{
		Name: SpellNameReverse,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if seq, ok := subject.AsSequence(); ok {
				out := make([]Value, len(seq))
				for i, item := range seq {
					out[len(seq)-1-i] = item
				}
				return Sequence(out...), nil
			}
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			runes := []rune(s)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return String(string(runes)), nil
		},
	})

	// length() int
	r.MustRegister(&Spell{
		Name: SpellNameLength,
		Fn: func(subject Value, _ []Value) (Value, error) {
			switch subject.Kind() {
			case KindString:
				s, _ := subject.AsString()
				return Int(int64(utf8.RuneCountInString(s))), nil
			case KindSequence:
				seq, _ := subject.AsSequence()
				return Int(int64(len(seq))), nil
			case KindMapping:
				m, _ := subject.AsMapping()
				return Int(int64(len(m))), nil
			default:
				return Null(), nil
			}
		},
	})

	// repeat(count int) string
	r.MustRegister(&Spell{
		Name: SpellNameRepeat,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			n, err := intArg(SpellNameRepeat, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			if n < 0 {
				return Null(), NewSpellArgError(ErrMsgSpellExpectedInt, SpellNameRepeat, SpellArgFirst)
			}
			if n > 0 && int64(len(s)) > MaxSpellOutputLength/n {
				return Null(), NewSpellArgError(ErrMsgSpellOutputTooLarge, SpellNameRepeat, SpellArgFirst)
			}
			return String(strings.Repeat(s, int(n))), nil
		},
	})

	// replace(old, new string) string
	r.MustRegister(&Spell{
		Name: SpellNameReplace,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			old, err := stringArg(SpellNameReplace, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			replacement, err := stringArg(SpellNameReplace, args, SpellArgSecond)
			if err != nil {
				return Null(), err
			}
			return String(strings.ReplaceAll(s, old, replacement)), nil
		},
	})

	// substring(start int[, end int]) string, rune based and clamped
	r.MustRegister(&Spell{
		Name: SpellNameSubstring,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			runes := []rune(s)
			start, err := intArg(SpellNameSubstring, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			end := int64(len(runes))
			if len(args) > SpellArgSecond {
				if end, err = intArg(SpellNameSubstring, args, SpellArgSecond); err != nil {
					return Null(), err
				}
			}
			start = clamp(start, 0, int64(len(runes)))
			end = clamp(end, start, int64(len(runes)))
			return String(string(runes[start:end])), nil
		},
	})

	// pad(width int[, char string]) string, padded on the left
	r.MustRegister(&Spell{Name: SpellNamePad, Fn: padSpell(SpellNamePad, true)})

	// padRight(width int[, char string]) string
	r.MustRegister(&Spell{Name: SpellNamePadRight, Fn: padSpell(SpellNamePadRight, false)})

	// split(sep string) sequence
	r.MustRegister(&Spell{
		Name: SpellNameSplit,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := subject.AsString()
			if !ok {
				return Null(), nil
			}
			sep, err := stringArg(SpellNameSplit, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			parts := strings.Split(s, sep)
			items := make([]Value, len(parts))
			for i, p := range parts {
				items[i] = String(p)
			}
			return Sequence(items...), nil
		},
	})

	// startsWith(prefix string) bool
	r.MustRegister(&Spell{
		Name: SpellNameStartsWith,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			prefix, err := stringArg(SpellNameStartsWith, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			return Bool(strings.HasPrefix(s, prefix)), nil
		},
	})

	// endsWith(suffix string) bool
	r.MustRegister(&Spell{
		Name: SpellNameEndsWith,
		Fn: func(subject Value, args []Value) (Value, error) {
			s, ok := textOf(subject)
			if !ok {
				return Null(), nil
			}
			suffix, err := stringArg(SpellNameEndsWith, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			return Bool(strings.HasSuffix(s, suffix)), nil
		},
	})

	// format(layout string) string, layout uses fmt verbs applied to the subject
	r.MustRegister(&Spell{
		Name: SpellNameFormat,
		Fn: func(subject Value, args []Value) (Value, error) {
			if subject.IsNull() {
				return Null(), nil
			}
			layout, err := stringArg(SpellNameFormat, args, SpellArgFirst)
			if err != nil {
				return Null(), err
			}
			return String(fmt.Sprintf(layout, subject.Interface())), nil
		},
	})

	// json() string
	r.MustRegister(&Spell{
		Name: SpellNameJSON,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if subject.Kind() == KindNull {
				return Null(), nil
			}
			data, err := json.Marshal(subject.Interface())
			if err != nil {
				return Null(), err
			}
			return String(string(data)), nil
		},
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func clamp(n, lo, hi int64) int64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func padSpell(name string, left bool) SpellFunc {
	return func(subject Value, args []Value) (Value, error) {
		s, ok := textOf(subject)
		if !ok {
			return Null(), nil
		}
		width, err := intArg(name, args, SpellArgFirst)
		if err != nil {
			return Null(), err
		}
		padChar, err := optionalStringArg(name, args, SpellArgSecond, DefaultPadChar)
		if err != nil {
			return Null(), err
		}
		if padChar == "" {
			return Null(), NewSpellArgError(ErrMsgSpellExpectedString, name, SpellArgSecond)
		}
		if width > MaxSpellOutputLength || width*int64(len(padChar)) > MaxSpellOutputLength {
			return Null(), NewSpellArgError(ErrMsgSpellOutputTooLarge, name, SpellArgFirst)
		}
		missing := int(width) - utf8.RuneCountInString(s)
		if missing <= 0 {
			return String(s), nil
		}
		fill := strings.Repeat(padChar, missing)
		fill = string([]rune(fill)[:missing])
		if left {
			return String(fill + s), nil
		}
		return String(s + fill), nil
	}
}
