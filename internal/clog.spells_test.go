package internal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func constSpell(name string, v Value) *Spell {
	return &Spell{Name: name, Fn: func(Value, []Value) (Value, error) { return v, nil }}
}

func TestSpellRegistry_Register(t *testing.T) {
	r := NewSpellRegistry(nil)

	err := r.Register(constSpell("test", String("x")))
	require.NoError(t, err)

	assert.True(t, r.Has("test"))
	assert.False(t, r.Has("other"))
	assert.Equal(t, 1, r.Count())
}

func TestSpellRegistry_Register_Invalid(t *testing.T) {
	r := NewSpellRegistry(nil)

	err := r.Register(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSpellNilFunc)

	err = r.Register(&Spell{Name: "nofn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nofn")

	err = r.Register(constSpell("", Null()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSpellEmptyName)

	var regErr *SpellRegistryError
	assert.True(t, errors.As(err, &regErr))
	assert.Equal(t, 0, r.Count())
}

func TestSpellRegistry_MustRegister_Panic(t *testing.T) {
	r := NewSpellRegistry(nil)
	assert.Panics(t, func() {
		r.MustRegister(&Spell{Name: "broken"})
	})
}

func TestSpellRegistry_SharedNamesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		first SpellFunc
	}{
		{
			name:  "first answers null",
			first: func(Value, []Value) (Value, error) { return Null(), nil },
		},
		{
			name:  "first fails",
			first: func(Value, []Value) (Value, error) { return String("ignored"), errors.New("nope") },
		},
		{
			name:  "first panics",
			first: func(Value, []Value) (Value, error) { panic("boom") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSpellRegistry(nil)
			r.MustRegister(&Spell{Name: "pick", Fn: tt.first})
			r.MustRegister(constSpell("pick", String("second")))
			r.MustRegister(constSpell("pick", String("third")))

			got := r.Invoke("pick", Null(), nil)
			assert.Equal(t, "second", got.String())
		})
	}
}

func TestSpellRegistry_FirstAnswerWins(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("pick", String("first")))
	r.MustRegister(constSpell("pick", String("second")))

	assert.Equal(t, "first", r.Invoke("pick", Null(), nil).String())
}

func TestSpellRegistry_ReceivesSubjectAndArgs(t *testing.T) {
	r := NewSpellRegistry(nil)
	var gotSubject Value
	var gotArgs []Value
	r.MustRegister(&Spell{Name: "spy", Fn: func(subject Value, args []Value) (Value, error) {
		gotSubject, gotArgs = subject, args
		return Bool(true), nil
	}})

	r.Invoke("spy", String("s"), []Value{Int(1), ExplicitNull()})
	assert.Equal(t, "s", gotSubject.String())
	require.Len(t, gotArgs, 2)
	assert.True(t, gotArgs[1].IsExplicitNull())
}

func TestSpellRegistry_NothingAnswers(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("null", Null()))

	assert.True(t, r.Invoke("null", String("x"), nil).IsNull())
	assert.True(t, r.Invoke("missing", String("x"), nil).IsNull())
}

func TestSpellRegistry_SpellMayReenterRegistry(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("inner", String("deep")))
	r.MustRegister(&Spell{Name: "outer", Fn: func(subject Value, _ []Value) (Value, error) {
		r.MustRegister(constSpell("late", Null()))
		return r.Invoke("inner", subject, nil), nil
	}})

	assert.Equal(t, "deep", r.Invoke("outer", Null(), nil).String())
	assert.True(t, r.Has("late"))
}

func TestSpellRegistry_Names(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("b", Null()))
	r.MustRegister(constSpell("a", Null()))
	r.MustRegister(constSpell("b", Null()))

	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.Equal(t, 3, r.Count())
}

func TestSpellRegistry_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewSpellRegistry(zap.New(core))
	r.MustRegister(&Spell{Name: "fail", Fn: func(Value, []Value) (Value, error) { return Null(), errors.New("bad") }})
	r.MustRegister(&Spell{Name: "explode", Fn: func(Value, []Value) (Value, error) { panic("kaboom") }})
	r.MustRegister(constSpell("upper", String("U")))

	r.Invoke("fail", Null(), nil)
	r.Invoke("explode", Null(), nil)
	r.Invoke("uper", Null(), nil)

	assert.Equal(t, 1, logs.FilterMessage(LogMsgSpellFailed).Len())
	assert.Equal(t, 1, logs.FilterMessage(LogMsgSpellPanicked).Len())

	notFound := logs.FilterMessage(LogMsgSpellNotFound).All()
	require.Len(t, notFound, 1)
	assert.Equal(t, "uper", notFound[0].ContextMap()[LogFieldSpell])
}

func TestFindSimilarStrings(t *testing.T) {
	candidates := []string{"upper", "lower", "trim", "join"}

	assert.Equal(t, []string{"upper"}, FindSimilarStrings("uppr", candidates, 3))
	assert.Equal(t, []string{"upper"}, FindSimilarStrings("uppercase", candidates, 3))
	assert.Empty(t, FindSimilarStrings("zzz", candidates, 3))
	assert.Empty(t, FindSimilarStrings("", candidates, 3))
	assert.Empty(t, FindSimilarStrings("upper", candidates, 3))
	assert.Len(t, FindSimilarStrings("r", candidates, 2), 2)
}

func TestStandardSpells(t *testing.T) {
	r := NewSpellRegistry(nil)
	RegisterStandardSpells(r)

	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		spell    string
		subject  Value
		args     []Value
		expected Value
	}{
		{name: "upper", spell: SpellNameUpper, subject: String("abc"), expected: String("ABC")},
		{name: "upper number", spell: SpellNameUpper, subject: Int(5), expected: String("5")},
		{name: "upper sequence", spell: SpellNameUpper, subject: Sequence(String("a")), expected: Null()},
		{name: "upper null", spell: SpellNameUpper, subject: Null(), expected: Null()},
		{name: "lower", spell: SpellNameLower, subject: String("AbC"), expected: String("abc")},
		{name: "trim", spell: SpellNameTrim, subject: String("  x "), expected: String("x")},
		{name: "capitalize", spell: SpellNameCapitalize, subject: String("élan"), expected: String("Élan")},
		{name: "capitalize empty", spell: SpellNameCapitalize, subject: String(""), expected: String("")},
		{name: "reverse text", spell: SpellNameReverse, subject: String("abç"), expected: String("çba")},
		{name: "reverse sequence", spell: SpellNameReverse, subject: Sequence(Int(1), Int(2)), expected: Sequence(Int(2), Int(1))},
		{name: "length text", spell: SpellNameLength, subject: String("héllo"), expected: Int(5)},
		{name: "length sequence", spell: SpellNameLength, subject: Sequence(Int(1), Int(2)), expected: Int(2)},
		{name: "length mapping", spell: SpellNameLength, subject: Mapping(map[string]Value{"a": Int(1)}), expected: Int(1)},
		{name: "length int", spell: SpellNameLength, subject: Int(12), expected: Null()},
		{name: "repeat", spell: SpellNameRepeat, subject: String("ab"), args: []Value{Int(3)}, expected: String("ababab")},
		{name: "repeat without count", spell: SpellNameRepeat, subject: String("ab"), expected: Null()},
		{name: "repeat negative", spell: SpellNameRepeat, subject: String("ab"), args: []Value{Int(-1)}, expected: Null()},
		{name: "replace", spell: SpellNameReplace, subject: String("a-b-c"), args: []Value{String("-"), String("+")}, expected: String("a+b+c")},
		{name: "substring range", spell: SpellNameSubstring, subject: String("hello"), args: []Value{Int(1), Int(3)}, expected: String("el")},
		{name: "substring tail", spell: SpellNameSubstring, subject: String("hello"), args: []Value{Int(3)}, expected: String("lo")},
		{name: "substring clamped", spell: SpellNameSubstring, subject: String("hello"), args: []Value{Int(-2), Int(2)}, expected: String("he")},
		{name: "substring past end", spell: SpellNameSubstring, subject: String("hello"), args: []Value{Int(10)}, expected: String("")},
		{name: "pad", spell: SpellNamePad, subject: Int(7), args: []Value{Int(3), String("0")}, expected: String("007")},
		{name: "pad wide enough", spell: SpellNamePad, subject: String("abc"), args: []Value{Int(2)}, expected: String("abc")},
		{name: "padRight", spell: SpellNamePadRight, subject: String("ab"), args: []Value{Int(4)}, expected: String("ab  ")},
		{name: "split", spell: SpellNameSplit, subject: String("a,b"), args: []Value{String(",")}, expected: Sequence(String("a"), String("b"))},
		{name: "startsWith", spell: SpellNameStartsWith, subject: String("hello"), args: []Value{String("he")}, expected: Bool(true)},
		{name: "endsWith", spell: SpellNameEndsWith, subject: String("hello"), args: []Value{String("he")}, expected: Bool(false)},
		{name: "format float", spell: SpellNameFormat, subject: Float(3.14159), args: []Value{String("%.2f")}, expected: String("3.14")},
		{name: "format int", spell: SpellNameFormat, subject: Int(5), args: []Value{String("%03d")}, expected: String("005")},
		{name: "format null", spell: SpellNameFormat, subject: Null(), args: []Value{String("%v")}, expected: Null()},
		{name: "json mapping", spell: SpellNameJSON, subject: Mapping(map[string]Value{"a": Int(1)}), expected: String(`{"a":1}`)},
		{name: "json explicit null", spell: SpellNameJSON, subject: ExplicitNull(), expected: String("null")},
		{name: "join default", spell: SpellNameJoin, subject: Sequence(String("a"), Int(1)), expected: String("a, 1")},
		{name: "join separator", spell: SpellNameJoin, subject: Sequence(String("a"), Int(1)), args: []Value{String("-")}, expected: String("a-1")},
		{name: "first", spell: SpellNameFirst, subject: Sequence(String("a"), String("b")), expected: String("a")},
		{name: "first text", spell: SpellNameFirst, subject: String("xyz"), expected: String("x")},
		{name: "first empty text", spell: SpellNameFirst, subject: String(""), expected: Null()},
		{name: "last", spell: SpellNameLast, subject: Sequence(String("a"), String("b")), expected: String("b")},
		{name: "last text", spell: SpellNameLast, subject: String("xyz"), expected: String("z")},
		{name: "last empty", spell: SpellNameLast, subject: Sequence(), expected: Null()},
		{name: "keys", spell: SpellNameKeys, subject: Mapping(map[string]Value{"b": Int(2), "a": Int(1)}), expected: Sequence(String("a"), String("b"))},
		{name: "values", spell: SpellNameValues, subject: Mapping(map[string]Value{"b": Int(2), "a": Int(1)}), expected: Sequence(Int(1), Int(2))},
		{name: "contains text", spell: SpellNameContains, subject: String("hello"), args: []Value{String("ell")}, expected: Bool(true)},
		{name: "contains sequence", spell: SpellNameContains, subject: Sequence(Int(1), Int(2)), args: []Value{Float(2)}, expected: Bool(true)},
		{name: "contains mapping", spell: SpellNameContains, subject: Mapping(map[string]Value{"k": Null()}), args: []Value{String("x")}, expected: Bool(false)},
		{name: "default null", spell: SpellNameDefault, subject: Null(), args: []Value{String("x")}, expected: String("x")},
		{name: "default explicit null", spell: SpellNameDefault, subject: ExplicitNull(), args: []Value{String("x")}, expected: String("x")},
		{name: "default empty", spell: SpellNameDefault, subject: String(""), args: []Value{String("x")}, expected: String("x")},
		{name: "default present", spell: SpellNameDefault, subject: String("y"), args: []Value{String("x")}, expected: String("y")},
		{name: "toString", spell: SpellNameToString, subject: Float(2.5), expected: String("2.5")},
		{name: "toInt text", spell: SpellNameToInt, subject: String("42"), expected: Int(42)},
		{name: "toInt float", spell: SpellNameToInt, subject: Float(3.7), expected: Int(3)},
		{name: "toInt bool", spell: SpellNameToInt, subject: Bool(true), expected: Int(1)},
		{name: "toInt garbage", spell: SpellNameToInt, subject: String("x"), expected: Null()},
		{name: "toFloat", spell: SpellNameToFloat, subject: String("2.5"), expected: Float(2.5)},
		{name: "type", spell: SpellNameType, subject: Int(1), expected: String(KindNameInt)},
		{name: "type explicit null", spell: SpellNameType, subject: ExplicitNull(), expected: String(KindNameExplicitNull)},
		{name: "not", spell: SpellNameNot, subject: Bool(true), expected: Bool(false)},
		{name: "not text", spell: SpellNameNot, subject: String("true"), expected: Null()},
		{name: "equals", spell: SpellNameEquals, subject: Int(1), args: []Value{Int(1)}, expected: Bool(true)},
		{name: "plus ints", spell: SpellNamePlus, subject: Int(2), args: []Value{Int(3)}, expected: Int(5)},
		{name: "plus mixed", spell: SpellNamePlus, subject: Float(1.5), args: []Value{Int(1)}, expected: Float(2.5)},
		{name: "minus", spell: SpellNameMinus, subject: Int(2), args: []Value{Int(3)}, expected: Int(-1)},
		{name: "times", spell: SpellNameTimes, subject: Int(4), args: []Value{Float(0.5)}, expected: Float(2)},
		{name: "divide ints", spell: SpellNameDivide, subject: Int(7), args: []Value{Int(2)}, expected: Int(3)},
		{name: "divide by zero", spell: SpellNameDivide, subject: Int(1), args: []Value{Int(0)}, expected: Null()},
		{name: "plus text", spell: SpellNamePlus, subject: String("a"), args: []Value{Int(1)}, expected: Null()},
		{name: "date unix", spell: SpellNameDate, subject: Int(0), expected: String("1970-01-01")},
		{name: "date time record", spell: SpellNameDate, subject: ValueOf(when), args: []Value{String("02/01/2006 15:04")}, expected: String("05/03/2024 14:30")},
		{name: "date time pointer", spell: SpellNameDate, subject: ValueOf(&when), expected: String("2024-03-05")},
		{name: "date text", spell: SpellNameDate, subject: String("2024-03-05"), args: []Value{String("Jan 2")}, expected: String("Mar 5")},
		{name: "date garbage", spell: SpellNameDate, subject: String("soon"), expected: Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Invoke(tt.spell, tt.subject, tt.args)
			assert.Equal(t, tt.expected.Kind(), got.Kind(), "got %#v", got)
			assert.True(t, tt.expected.Equal(got), "expected %#v, got %#v", tt.expected, got)
		})
	}
}

func TestStandardSpells_Now(t *testing.T) {
	r := NewSpellRegistry(nil)
	RegisterStandardSpells(r)

	got := r.Invoke(SpellNameNow, Null(), nil)
	require.Equal(t, KindRecord, got.Kind())
	_, ok := got.Interface().(time.Time)
	assert.True(t, ok)
}

func TestSpellRegistry_ExplicitNullIsAnAnswer(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(&Spell{Name: "id", Fn: func(subject Value, _ []Value) (Value, error) { return subject, nil }})
	r.MustRegister(constSpell("id", String("fallback")))

	assert.True(t, r.Invoke("id", ExplicitNull(), nil).IsExplicitNull())
	assert.Equal(t, "fallback", r.Invoke("id", Null(), nil).String())

	out := NewParser("[#{null|id}]", nil, ParserConfig{Registry: r}).Parse()
	assert.Equal(t, "[]", out.Output)
	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].IsExplicitNull())
}

func TestSpellRegistry_Alias(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("greet", String("hello")))

	require.NoError(t, r.Alias("hi", "greet"))
	assert.Equal(t, "hello", r.Invoke("hi", Null(), nil).String())

	err := r.Alias("greet", "greet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSpellAliasSelf)

	err = r.Alias("bye", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSpellAliasUnknown)
}

func TestSpellRegistry_AliasCannotRecurse(t *testing.T) {
	r := NewSpellRegistry(nil)
	r.MustRegister(constSpell("a", Null()))
	r.MustRegister(constSpell("b", Null()))

	// a -> b and b -> a: each alias only sees what its target held when
	// it was registered
	require.NoError(t, r.Alias("a", "b"))
	require.NoError(t, r.Alias("b", "a"))

	assert.True(t, r.Invoke("a", Sequence(String("x")), nil).IsNull())
	assert.True(t, r.Invoke("b", Sequence(String("x")), nil).IsNull())

	out := NewParser("[#{$1|a|b}]", []Value{Sequence(String("x"))}, ParserConfig{Registry: r}).Parse()
	assert.Equal(t, "[]", out.Output)
}

func TestStandardSpells_OutputLimit(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name  string
		spell string
		args  []Value
	}{
		{name: "repeat", spell: SpellNameRepeat, args: []Value{Int(10_000_000_000)}},
		{name: "repeat just over", spell: SpellNameRepeat, args: []Value{Int(MaxSpellOutputLength/2 + 1)}},
		{name: "pad", spell: SpellNamePad, args: []Value{Int(10_000_000_000)}},
		{name: "pad right wide char", spell: SpellNamePadRight, args: []Value{Int(MaxSpellOutputLength/2 + 1), String("é")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spells := r.named(tt.spell)
			require.NotEmpty(t, spells)

			got, err := spells[0].Fn(String("ab"), tt.args)
			require.Error(t, err)
			assert.True(t, got.IsNull())

			var argErr *SpellArgError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, ErrMsgSpellOutputTooLarge, argErr.Message)

			assert.True(t, r.Invoke(tt.spell, String("ab"), tt.args).IsNull())
		})
	}

	assert.Equal(t, "abab", r.Invoke(SpellNameRepeat, String("ab"), []Value{Int(2)}).String())
	assert.Equal(t, "", parseTemplate(`#{"ab"|repeat(10000000000)}`).Output)
}

func TestStandardSpells_DateRejectsUnparsableText(t *testing.T) {
	spells := newTestRegistry().named(SpellNameDate)
	require.NotEmpty(t, spells)

	got, err := spells[0].Fn(String("not a date"), nil)
	assert.True(t, got.IsNull())

	var argErr *SpellArgError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, ErrMsgSpellExpectedTime, argErr.Message)
	assert.Equal(t, SpellArgSubject, argErr.ArgIndex)

	got, err = spells[0].Fn(Bool(true), nil)
	assert.NoError(t, err)
	assert.True(t, got.IsNull())
}
