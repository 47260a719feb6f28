package internal

import (
	"time"
)

// Date spell name constants
const (
	SpellNameDate = "date"
	SpellNameNow  = "now"
)

// Date layouts
const (
	DateLayoutISO     = "2006-01-02"
	DateTimeLayoutISO = "2006-01-02 15:04:05"
)

// Layouts tried in order when a date spell receives text
var dateParseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateTimeLayoutISO,
	DateLayoutISO,
}

// registerDateSpells registers time formatting spells
func registerDateSpells(r *SpellRegistry) {
	// date([layout string]) string, layout in Go reference-time notation
	r.MustRegister(&Spell{
		Name: SpellNameDate,
		Fn: func(subject Value, args []Value) (Value, error) {
			t, ok := timeOf(subject)
			if !ok {
				if subject.Kind() == KindString {
					return Null(), NewSpellArgError(ErrMsgSpellExpectedTime, SpellNameDate, SpellArgSubject)
				}
				return Null(), nil
			}
			layout, err := optionalStringArg(SpellNameDate, args, SpellArgFirst, DateLayoutISO)
			if err != nil {
				return Null(), err
			}
			return String(t.Format(layout)), nil
		},
	})

	// now() time, ignores its subject
	r.MustRegister(&Spell{
		Name: SpellNameNow,
		Fn: func(Value, []Value) (Value, error) {
			return ValueOf(time.Now()), nil
		},
	})
}

// timeOf reads a time from a wrapped time.Time, unix seconds or
// date text.
func timeOf(v Value) (time.Time, bool) {
	switch v.Kind() {
	case KindRecord:
		switch t := v.Interface().(type) {
		case time.Time:
			return t, true
		case *time.Time:
			if t != nil {
				return *t, true
			}
		}
	case KindInt:
		secs, _ := v.AsInt()
		return time.Unix(secs, 0).UTC(), true
	case KindString:
		s, _ := v.AsString()
		for _, layout := range dateParseLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
