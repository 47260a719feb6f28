package clog

import (
	"github.com/itsatony/go-clog/internal"
)

// Value is a runtime value flowing through a clog: a parameter, a literal,
// a prior result or a spell's answer.
type Value = internal.Value

// Kind identifies the variant held by a Value
type Kind = internal.Kind

// Value kinds
const (
	KindNull         = internal.KindNull
	KindExplicitNull = internal.KindExplicitNull
	KindBool         = internal.KindBool
	KindInt          = internal.KindInt
	KindFloat        = internal.KindFloat
	KindString       = internal.KindString
	KindSequence     = internal.KindSequence
	KindMapping      = internal.KindMapping
	KindRecord       = internal.KindRecord
)

// Record is a host object that indexers can look into. Implement it to
// expose a type without reflection.
type Record = internal.Record

// PrivateFieldRecord is a Record with fields that are only visible while
// private field access is enabled.
type PrivateFieldRecord = internal.PrivateFieldRecord

// StructRecord adapts a Go struct to Record. ValueOf uses it for every
// struct and struct pointer.
type StructRecord = internal.StructRecord

// Position is a location in a template
type Position = internal.Position

// Null returns the absent value produced by failed lookups
func Null() Value { return internal.Null() }

// ExplicitNull returns the value of a literal null in a template
func ExplicitNull() Value { return internal.ExplicitNull() }

// Bool wraps a boolean
func Bool(b bool) Value { return internal.Bool(b) }

// Int wraps an integer
func Int(i int64) Value { return internal.Int(i) }

// Float wraps a floating point number
func Float(f float64) Value { return internal.Float(f) }

// String wraps a string
func String(s string) Value { return internal.String(s) }

// Sequence wraps an ordered list of values
func Sequence(items ...Value) Value { return internal.Sequence(items...) }

// Mapping wraps a string-keyed map of values
func Mapping(m map[string]Value) Value { return internal.Mapping(m) }

// RecordOf wraps a host record
func RecordOf(r Record) Value { return internal.RecordOf(r) }

// ValueOf converts plain Go data into a Value. Scalars, slices, arrays,
// string-keyed maps, structs and Records are supported; anything else
// becomes Null.
func ValueOf(v any) Value { return internal.ValueOf(v) }

// NewStructRecord wraps a struct or struct pointer, or returns nil
func NewStructRecord(v any) *StructRecord { return internal.NewStructRecord(v) }

// IndexByInt returns element i of a sequence, or Null
func IndexByInt(v Value, i int64) Value { return internal.IndexByInt(v, i) }

// IndexByKey looks key up in a mapping or record, or returns Null
func IndexByKey(v Value, key string, allowPrivate bool) Value {
	return internal.IndexByKey(v, key, allowPrivate)
}

func valuesOf(params []any) []Value {
	values := make([]Value, len(params))
	for i, p := range params {
		values[i] = internal.ValueOf(p)
	}
	return values
}
