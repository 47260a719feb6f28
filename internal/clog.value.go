package internal

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value
type Kind int

// Value kind constants
const (
	KindNull Kind = iota
	KindExplicitNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
	KindRecord
)

// Kind names for debugging and the type spell
const (
	KindNameNull         = "null"
	KindNameExplicitNull = "explicit-null"
	KindNameBool         = "bool"
	KindNameInt          = "int"
	KindNameFloat        = "float"
	KindNameString       = "string"
	KindNameSequence     = "sequence"
	KindNameMapping      = "mapping"
	KindNameRecord       = "record"
)

// String returns the kind's name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return KindNameNull
	case KindExplicitNull:
		return KindNameExplicitNull
	case KindBool:
		return KindNameBool
	case KindInt:
		return KindNameInt
	case KindFloat:
		return KindNameFloat
	case KindString:
		return KindNameString
	case KindSequence:
		return KindNameSequence
	case KindMapping:
		return KindNameMapping
	case KindRecord:
		return KindNameRecord
	default:
		return KindNameNull
	}
}

// Record is an opaque host structure reachable through named lookups.
// Hosts adapt their own types to it; StructRecord does so with reflection.
type Record interface {
	// LookupField returns the publicly visible field called name
	LookupField(name string) (Value, bool)
	// LookupAccessor calls the record's single-argument accessor with name
	LookupAccessor(name string) (Value, bool)
}

// PrivateFieldRecord is a Record that can also expose non-public fields.
// LookupPrivateField is consulted only when private field access is enabled.
type PrivateFieldRecord interface {
	Record
	LookupPrivateField(name string) (Value, bool)
}

// Value is the closed runtime value of the clog language.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    map[string]Value
	rec  Record
}

// Null returns the value produced by failed or out-of-range lookups
func Null() Value { return Value{} }

// ExplicitNull returns the value of the literal null keyword
func ExplicitNull() Value { return Value{kind: KindExplicitNull} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating point number
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence wraps an ordered list of values
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Mapping wraps a string-keyed mapping
func Mapping(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMapping, m: m}
}

// RecordOf wraps a host record; a nil record yields Null
func RecordOf(r Record) Value {
	if r == nil || isNilPointer(r) {
		return Null()
	}
	return Value{kind: KindRecord, rec: r}
}

// isNilPointer reports whether r holds a typed nil pointer
func isNilPointer(r Record) bool {
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Kind returns the variant held by the value
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is Null or ExplicitNull
func (v Value) IsNull() bool {
	return v.kind == KindNull || v.kind == KindExplicitNull
}

// IsExplicitNull reports whether the value came from a literal null
func (v Value) IsExplicitNull() bool { return v.kind == KindExplicitNull }

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsSequence returns the sequence payload
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// AsMapping returns the mapping payload
func (v Value) AsMapping() (map[string]Value, bool) { return v.m, v.kind == KindMapping }

// AsRecord returns the record payload
func (v Value) AsRecord() (Record, bool) { return v.rec, v.kind == KindRecord }

// AsNumber returns ints and floats widened to float64
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Interface converts the value back into plain Go data
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.Interface()
		}
		return out
	case KindRecord:
		if u, ok := v.rec.(interface{ Unwrap() any }); ok {
			return u.Unwrap()
		}
		return v.rec
	default:
		return nil
	}
}

// String renders the value as it is interpolated into output.
// Both null kinds render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return StringValueTrue
		}
		return StringValueFalse
	case KindInt:
		return strconv.FormatInt(v.i, IntBase10)
	case KindFloat:
		return strconv.FormatFloat(v.f, FloatFormatFlag, FloatPrecisionAll, FloatBitSize64)
	case KindString:
		return v.s
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return RenderSeqOpen + strings.Join(parts, RenderSeparator) + RenderSeqClose
	case KindMapping:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + RenderKeyValue + v.m[k].String()
		}
		return RenderMapOpen + strings.Join(parts, RenderSeparator) + RenderMapClose
	case KindRecord:
		if s, ok := v.rec.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", v.Interface())
	default:
		return StringValueEmpty
	}
}

// GoString supports %#v in test failure output
func (v Value) GoString() string {
	return fmt.Sprintf("clog.Value{%s: %q}", v.kind, v.String())
}

// Equal reports deep equality of two values. Ints and floats compare
// numerically; records compare by identity.
func (v Value) Equal(other Value) bool {
	if a, ok := v.AsNumber(); ok {
		b, ok := other.AsNumber()
		return ok && a == b
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, item := range v.m {
			o, ok := other.m[k]
			if !ok || !item.Equal(o) {
				return false
			}
		}
		return true
	case KindRecord:
		return sameRecord(v.rec, other.rec)
	default:
		return true
	}
}

func sameRecord(a, b Record) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
