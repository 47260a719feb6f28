package internal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPerson struct {
	Name     string
	Nickname string `clog:"nick"`
	Tags     []string
	age      int
	secret   *testPerson
	attrs    map[string]string
}

func (p *testPerson) Get(key string) (string, bool) {
	v, ok := p.attrs[key]
	return v, ok
}

type panickyRecord struct{}

func (panickyRecord) Get(string) string { panic(errors.New("boom")) }

type mapRecord map[string]Value

func (m mapRecord) LookupField(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapRecord) LookupAccessor(string) (Value, bool) { return Null(), false }

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "null", value: Null(), expected: ""},
		{name: "explicit null", value: ExplicitNull(), expected: ""},
		{name: "true", value: Bool(true), expected: "true"},
		{name: "false", value: Bool(false), expected: "false"},
		{name: "int", value: Int(-42), expected: "-42"},
		{name: "float keeps fraction zeros", value: Float(3.05), expected: "3.05"},
		{name: "whole float", value: Float(2), expected: "2"},
		{name: "string", value: String("hi"), expected: "hi"},
		{name: "sequence", value: Sequence(String("a"), Int(1), Null()), expected: "[a, 1, ]"},
		{name: "empty sequence", value: Sequence(), expected: "[]"},
		{name: "mapping sorted", value: Mapping(map[string]Value{"b": Int(2), "a": Int(1)}), expected: "{a=1, b=2}"},
		{name: "record", value: ValueOf(&testPerson{Name: "Ann"}), expected: "{Name:Ann Nickname: Tags:[] age:0 secret:<nil> attrs:map[]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValue_NullKinds(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, Null().IsExplicitNull())
	assert.True(t, ExplicitNull().IsNull())
	assert.True(t, ExplicitNull().IsExplicitNull())
	assert.Equal(t, KindNull, Value{}.Kind())
	assert.False(t, Null().Equal(ExplicitNull()))
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(2).Equal(Float(2)))
	assert.False(t, Int(2).Equal(String("2")))
	assert.True(t, Sequence(String("a"), Int(1)).Equal(Sequence(String("a"), Int(1))))
	assert.False(t, Sequence(String("a")).Equal(Sequence(String("b"))))
	assert.True(t, Mapping(map[string]Value{"k": Bool(true)}).Equal(Mapping(map[string]Value{"k": Bool(true)})))
	assert.False(t, Mapping(map[string]Value{"k": Bool(true)}).Equal(Mapping(map[string]Value{"j": Bool(true)})))

	rec := mapRecord{"a": Int(1)}
	assert.False(t, RecordOf(rec).Equal(RecordOf(rec)), "uncomparable records never compare equal")
	p := NewStructRecord(&testPerson{})
	assert.True(t, RecordOf(p).Equal(RecordOf(p)))
	assert.False(t, RecordOf(p).Equal(RecordOf(NewStructRecord(&testPerson{}))))
}

func TestValueOf(t *testing.T) {
	var nilPerson *testPerson

	tests := []struct {
		name  string
		input any
		kind  Kind
		str   string
	}{
		{name: "nil", input: nil, kind: KindNull},
		{name: "nil pointer", input: nilPerson, kind: KindNull},
		{name: "value passthrough", input: ExplicitNull(), kind: KindExplicitNull},
		{name: "bool", input: true, kind: KindBool, str: "true"},
		{name: "int", input: 7, kind: KindInt, str: "7"},
		{name: "int8", input: int8(-3), kind: KindInt, str: "-3"},
		{name: "uint16", input: uint16(9), kind: KindInt, str: "9"},
		{name: "float32", input: float32(1.5), kind: KindFloat, str: "1.5"},
		{name: "string", input: "s", kind: KindString, str: "s"},
		{name: "any slice", input: []any{"a", 1}, kind: KindSequence, str: "[a, 1]"},
		{name: "int slice", input: []int{1, 2}, kind: KindSequence, str: "[1, 2]"},
		{name: "array", input: [2]string{"x", "y"}, kind: KindSequence, str: "[x, y]"},
		{name: "map", input: map[string]any{"k": "v"}, kind: KindMapping, str: "{k=v}"},
		{name: "typed map", input: map[string]int{"n": 1}, kind: KindMapping, str: "{n=1}"},
		{name: "non string keys", input: map[int]int{1: 1}, kind: KindNull},
		{name: "struct pointer", input: &testPerson{Name: "x"}, kind: KindRecord},
		{name: "record", input: mapRecord{}, kind: KindRecord},
		{name: "func", input: func() {}, kind: KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.input)
			assert.Equal(t, tt.kind, v.Kind())
			if tt.str != "" {
				assert.Equal(t, tt.str, v.String())
			}
		})
	}
}

func TestValue_Interface(t *testing.T) {
	v := ValueOf(map[string]any{"list": []any{"a", int64(1), true, 2.5, nil}})
	assert.Equal(t, map[string]any{"list": []any{"a", int64(1), true, 2.5, nil}}, v.Interface())

	p := testPerson{Name: "Ann"}
	assert.Equal(t, p, ValueOf(p).Interface())
}

func TestIndexByInt(t *testing.T) {
	seq := Sequence(String("a"), String("b"), String("c"))

	assert.Equal(t, "b", IndexByInt(seq, 1).String())
	assert.Equal(t, "a", IndexByInt(seq, 0).String())
	assert.True(t, IndexByInt(seq, 3).IsNull())
	assert.True(t, IndexByInt(seq, -1).IsNull())
	assert.True(t, IndexByInt(String("abc"), 0).IsNull())
	assert.True(t, IndexByInt(Mapping(map[string]Value{"0": Int(1)}), 0).IsNull())
}

func TestIndexByKey_Mapping(t *testing.T) {
	m := Mapping(map[string]Value{"name": String("Ann"), "none": Null()})

	assert.Equal(t, "Ann", IndexByKey(m, "name", false).String())
	assert.True(t, IndexByKey(m, "missing", false).IsNull())
	assert.True(t, IndexByKey(m, "none", false).IsNull())
	assert.True(t, IndexByKey(Sequence(), "name", false).IsNull())
	assert.True(t, IndexByKey(Null(), "name", false).IsNull())
}

func TestIndexByKey_StructRecord(t *testing.T) {
	inner := &testPerson{Name: "Inner"}
	p := &testPerson{
		Name:     "Ann",
		Nickname: "annie",
		Tags:     []string{"x", "y"},
		age:      31,
		secret:   inner,
		attrs:    map[string]string{"color": "blue"},
	}
	v := ValueOf(p)
	require.Equal(t, KindRecord, v.Kind())

	t.Run("exported field", func(t *testing.T) {
		assert.Equal(t, "Ann", IndexByKey(v, "Name", false).String())
	})

	t.Run("case-insensitive field", func(t *testing.T) {
		assert.Equal(t, "Ann", IndexByKey(v, "name", false).String())
	})

	t.Run("tagged field", func(t *testing.T) {
		assert.Equal(t, "annie", IndexByKey(v, "nick", false).String())
	})

	t.Run("private field hidden by default", func(t *testing.T) {
		assert.True(t, IndexByKey(v, "age", false).IsNull())
	})

	t.Run("private field when allowed", func(t *testing.T) {
		assert.Equal(t, "31", IndexByKey(v, "age", true).String())
		nested := IndexByKey(v, "secret", true)
		require.Equal(t, KindRecord, nested.Kind())
		assert.Equal(t, "Inner", IndexByKey(nested, "Name", false).String())
	})

	t.Run("accessor", func(t *testing.T) {
		assert.Equal(t, "blue", IndexByKey(v, "color", false).String())
	})

	t.Run("accessor miss", func(t *testing.T) {
		assert.True(t, IndexByKey(v, "shape", false).IsNull())
	})

	t.Run("sequence field then index", func(t *testing.T) {
		assert.Equal(t, "y", IndexByInt(IndexByKey(v, "Tags", false), 1).String())
	})
}

func TestIndexByKey_AccessorPanicIsSilent(t *testing.T) {
	v := ValueOf(panickyRecord{})
	require.Equal(t, KindRecord, v.Kind())
	assert.NotPanics(t, func() {
		assert.True(t, IndexByKey(v, "anything", true).IsNull())
	})
}

func TestIndexByKey_HostRecord(t *testing.T) {
	v := RecordOf(mapRecord{"a": Int(1)})
	assert.Equal(t, "1", IndexByKey(v, "a", false).String())
	assert.True(t, IndexByKey(v, "b", true).IsNull())
}

func TestNewStructRecord(t *testing.T) {
	assert.NotNil(t, NewStructRecord(testPerson{}))
	assert.NotNil(t, NewStructRecord(&testPerson{}))
	assert.Nil(t, NewStructRecord((*testPerson)(nil)))
	assert.Nil(t, NewStructRecord(42))
}

func TestRecordOf_TypedNil(t *testing.T) {
	var rec *StructRecord

	assert.True(t, RecordOf(rec).IsNull())
	assert.True(t, ValueOf(rec).IsNull())
	assert.False(t, RecordOf(mapRecord{}).IsNull())
}

func TestValueOf_Unsigned(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		kind     Kind
		expected string
	}{
		{name: "uint8", value: uint8(7), kind: KindInt, expected: "7"},
		{name: "uint at max int64", value: uint64(math.MaxInt64), kind: KindInt, expected: "9223372036854775807"},
		{name: "uint above max int64", value: uint64(math.MaxUint64), kind: KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.value)
			assert.Equal(t, tt.kind, v.Kind())
			if tt.expected != "" {
				assert.Equal(t, tt.expected, v.String())
			}
		})
	}

	f, ok := ValueOf(uint64(math.MaxUint64)).AsFloat()
	require.True(t, ok)
	assert.Greater(t, f, 0.0)
}
