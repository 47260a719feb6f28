package internal

import (
	"sort"
	"strings"
)

// Collection spell name constants
const (
	SpellNameJoin     = "join"
	SpellNameFirst    = "first"
	SpellNameLast     = "last"
	SpellNameKeys     = "keys"
	SpellNameValues   = "values"
	SpellNameContains = "contains"
)

// Default separator for join
const DefaultJoinSeparator = ", "

// registerCollectionSpells registers sequence and mapping spells
func registerCollectionSpells(r *SpellRegistry) {
	// join([sep string]) string
	r.MustRegister(&Spell{
		Name: SpellNameJoin,
		Fn: func(subject Value, args []Value) (Value, error) {
			seq, ok := subject.AsSequence()
			if !ok {
				return Null(), nil
			}
			sep, err := optionalStringArg(SpellNameJoin, args, SpellArgFirst, DefaultJoinSeparator)
			if err != nil {
				return Null(), err
			}
			parts := make([]string, len(seq))
			for i, item := range seq {
				parts[i] = item.String()
			}
			return String(strings.Join(parts, sep)), nil
		},
	})

	// first() any
	r.MustRegister(&Spell{
		Name: SpellNameFirst,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if s, ok := subject.AsString(); ok {
				for _, ch := range s {
					return String(string(ch)), nil
				}
				return Null(), nil
			}
			return IndexByInt(subject, 0), nil
		},
	})

	// last() any
	r.MustRegister(&Spell{
		Name: SpellNameLast,
		Fn: func(subject Value, _ []Value) (Value, error) {
			if s, ok := subject.AsString(); ok {
				runes := []rune(s)
				if len(runes) == 0 {
					return Null(), nil
				}
				return String(string(runes[len(runes)-1])), nil
			}
			seq, _ := subject.AsSequence()
			return IndexByInt(subject, int64(len(seq))-1), nil
		},
	})

	// keys() sequence, sorted
	r.MustRegister(&Spell{
		Name: SpellNameKeys,
		Fn: func(subject Value, _ []Value) (Value, error) {
			m, ok := subject.AsMapping()
			if !ok {
				return Null(), nil
			}
			keys := sortedKeys(m)
			items := make([]Value, len(keys))
			for i, k := range keys {
				items[i] = String(k)
			}
			return Sequence(items...), nil
		},
	})

	// values() sequence, in key order
	r.MustRegister(&Spell{
		Name: SpellNameValues,
		Fn: func(subject Value, _ []Value) (Value, error) {
			m, ok := subject.AsMapping()
			if !ok {
				return Null(), nil
			}
			keys := sortedKeys(m)
			items := make([]Value, len(keys))
			for i, k := range keys {
				items[i] = m[k]
			}
			return Sequence(items...), nil
		},
	})

	// contains(item any) bool
	r.MustRegister(&Spell{
		Name: SpellNameContains,
		Fn: func(subject Value, args []Value) (Value, error) {
			if len(args) <= SpellArgFirst {
				return Null(), NewSpellArgError(ErrMsgSpellTooFewArgs, SpellNameContains, SpellArgFirst)
			}
			needle := args[SpellArgFirst]
			switch subject.Kind() {
			case KindString:
				s, _ := subject.AsString()
				sub, ok := textOf(needle)
				if !ok {
					return Null(), NewSpellArgError(ErrMsgSpellExpectedString, SpellNameContains, SpellArgFirst)
				}
				return Bool(strings.Contains(s, sub)), nil
			case KindSequence:
				seq, _ := subject.AsSequence()
				for _, item := range seq {
					if item.Equal(needle) {
						return Bool(true), nil
					}
				}
				return Bool(false), nil
			case KindMapping:
				m, _ := subject.AsMapping()
				key, ok := textOf(needle)
				if !ok {
					return Null(), NewSpellArgError(ErrMsgSpellExpectedString, SpellNameContains, SpellArgFirst)
				}
				_, found := m[key]
				return Bool(found), nil
			default:
				return Null(), nil
			}
		},
	})
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
