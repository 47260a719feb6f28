package internal

import (
	"errors"
	"math"
)

// Type and logic spell name constants
const (
	SpellNameDefault  = "default"
	SpellNameToString = "toString"
	SpellNameToInt    = "toInt"
	SpellNameToFloat  = "toFloat"
	SpellNameType     = "type"
	SpellNameNot      = "not"
	SpellNameEquals   = "equals"
)

// Math spell name constants
const (
	SpellNamePlus   = "plus"
	SpellNameMinus  = "minus"
	SpellNameTimes  = "times"
	SpellNameDivide = "divide"
)

// ErrDivisionByZero is returned by the divide spell
var ErrDivisionByZero = errors.New("division by zero")

// registerTypeSpells registers conversion and logic spells
func registerTypeSpells(r *SpellRegistry) {
	// default(fallback any) any, replaces null and empty text
	r.MustRegister(&Spell{
		Name: SpellNameDefault,
		Fn: func(subject Value, args []Value) (Value, error) {
			if s, ok := subject.AsString(); (ok && s == StringValueEmpty) || subject.IsNull() {
				if len(args) > SpellArgFirst {
					return args[SpellArgFirst], nil
				}
				return Null(), nil
			}
			return subject, nil
		},
	})

	// toString() string
	r.MustRegister(&Spell{
		Name: SpellNameToString,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if subject.IsNull() {
				return Null(), nil
			}
			return String(subject.String()), nil
		},
	})

	// toInt() int, floats truncate
	r.MustRegister(&Spell{
		Name: SpellNameToInt,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if i, ok := intOf(subject); ok {
				return Int(i), nil
			}
			if f, ok := floatOf(subject); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
				return Int(int64(f)), nil
			}
			if b, ok := subject.AsBool(); ok {
				if b {
					return Int(1), nil
				}
				return Int(0), nil
			}
			return Null(), nil
		},
	})

	// toFloat() float
	r.MustRegister(&Spell{
		Name: SpellNameToFloat,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if f, ok := floatOf(subject); ok {
				return Float(f), nil
			}
			return Null(), nil
		},
	})

	// type() string, names the kind of the subject
	r.MustRegister(&Spell{
		Name: SpellNameType,
		Fn: func(subject Value, _ []Value) (Value, error) {
			return String(subject.Kind().String()), nil
		},
	})

	// not() bool
	r.MustRegister(&Spell{
		Name: SpellNameNot,
		Fn: func(subject Value, _ []Value) (Value, error) {
			b, ok := subject.AsBool()
			if !ok {
				return Null(), nil
			}
			return Bool(!b), nil
		},
	})

	// equals(other any) bool
	r.MustRegister(&Spell{
		Name: SpellNameEquals,
		Fn: func(subject Value, args []Value) (Value, error) {
			if len(args) <= SpellArgFirst {
				return Null(), NewSpellArgError(ErrMsgSpellTooFewArgs, SpellNameEquals, SpellArgFirst)
			}
			return Bool(subject.Equal(args[SpellArgFirst])), nil
		},
	})
}

// registerMathSpells registers arithmetic spells. Two ints give an int,
// anything else numeric gives a float.
func registerMathSpells(r *SpellRegistry) {
	// plus(n number) number
	r.MustRegister(&Spell{
		Name: SpellNamePlus,
		Fn: arithmeticSpell(SpellNamePlus,
			func(a, b int64) (int64, error) { return a + b, nil },
			func(a, b float64) (float64, error) { return a + b, nil }),
	})

	// minus(n number) number
	r.MustRegister(&Spell{
		Name: SpellNameMinus,
		Fn: arithmeticSpell(SpellNameMinus,
			func(a, b int64) (int64, error) { return a - b, nil },
			func(a, b float64) (float64, error) { return a - b, nil }),
	})

	// times(n number) number
	r.MustRegister(&Spell{
		Name: SpellNameTimes,
		Fn: arithmeticSpell(SpellNameTimes,
			func(a, b int64) (int64, error) { return a * b, nil },
			func(a, b float64) (float64, error) { return a * b, nil }),
	})

	// divide(n number) number, integer division for two ints
	r.MustRegister(&Spell{
		Name: SpellNameDivide,
		Fn: arithmeticSpell(SpellNameDivide,
			func(a, b int64) (int64, error) {
				if b == 0 {
					return 0, ErrDivisionByZero
				}
				return a / b, nil
			},
			func(a, b float64) (float64, error) {
				if b == 0 {
					return 0, ErrDivisionByZero
				}
				return a / b, nil
			}),
	})
}

func arithmeticSpell(name string, intOp func(a, b int64) (int64, error), floatOp func(a, b float64) (float64, error)) SpellFunc {
	return func(subject Value, args []Value) (Value, error) {
		if len(args) <= SpellArgFirst {
			return Null(), NewSpellArgError(ErrMsgSpellTooFewArgs, name, SpellArgFirst)
		}
		operand := args[SpellArgFirst]

		a, aInt := subject.AsInt()
		b, bInt := operand.AsInt()
		if aInt && bInt {
			n, err := intOp(a, b)
			if err != nil {
				return Null(), err
			}
			return Int(n), nil
		}

		x, ok := subject.AsNumber()
		if !ok {
			return Null(), nil
		}
		y, ok := operand.AsNumber()
		if !ok {
			return Null(), NewSpellArgError(ErrMsgSpellExpectedNumber, name, SpellArgFirst)
		}
		f, err := floatOp(x, y)
		if err != nil {
			return Null(), err
		}
		return Float(f), nil
	}
}
