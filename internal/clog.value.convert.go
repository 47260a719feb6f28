package internal

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ValueOf converts a host Go value into a Value.
//
// Conversion rules:
//   - nil, nil pointers and nil interfaces -> Null
//   - Value passes through; Record is wrapped as is
//   - bool, all int/uint kinds, float32/64, string -> scalar kinds; uints
//     above MaxInt64 become Float
//   - slices and arrays -> Sequence (element-wise)
//   - maps with string keys -> Mapping (element-wise)
//   - structs and struct pointers -> Record via StructRecord
//   - anything else implementing fmt.Stringer -> String
func ValueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case *Value:
		if val == nil {
			return Null()
		}
		return *val
	case Record:
		return RecordOf(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int64:
		return Int(val)
	case float64:
		return Float(val)
	case string:
		return String(val)
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = ValueOf(item)
		}
		return Sequence(items...)
	case []string:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = String(item)
		}
		return Sequence(items...)
	case map[string]any:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			m[k] = ValueOf(item)
		}
		return Mapping(m)
	}
	return fromReflect(reflect.ValueOf(v), true)
}

// fromReflect converts a reflected value. When exported is false the value
// was reached through an unexported field and Interface() is unavailable,
// so only kind-based accessors are used.
func fromReflect(rv reflect.Value, exported bool) Value {
	if !rv.IsValid() {
		return Null()
	}
	if exported && rv.CanInterface() {
		switch val := rv.Interface().(type) {
		case Value:
			return val
		case Record:
			if rv.Kind() == reflect.Ptr && rv.IsNil() {
				return Null()
			}
			return RecordOf(val)
		}
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		if rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Struct {
			return RecordOf(&StructRecord{value: rv.Elem()})
		}
		return fromReflect(rv.Elem(), exported)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = fromReflect(rv.Index(i), exported)
		}
		return Sequence(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = fromReflect(iter.Value(), exported)
		}
		return Mapping(m)
	case reflect.Struct:
		return RecordOf(&StructRecord{value: rv})
	}

	if exported && rv.CanInterface() {
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
	}
	return Null()
}

// StructTagKey names the struct tag that renames a field for indexing
const StructTagKey = "clog"

// StructRecord adapts a Go struct to Record using reflection: exported
// fields are fields, unexported fields are private fields, and a method
// Get(string) T is the accessor.
type StructRecord struct {
	value reflect.Value // struct value (addressable when built from a pointer)
}

// NewStructRecord wraps a struct or struct pointer. Returns nil for any
// other input.
func NewStructRecord(v any) *StructRecord {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return &StructRecord{value: rv}
}

// LookupField returns the exported field called name
func (r *StructRecord) LookupField(name string) (Value, bool) {
	return r.lookup(name, true)
}

// LookupPrivateField returns the unexported field called name
func (r *StructRecord) LookupPrivateField(name string) (Value, bool) {
	return r.lookup(name, false)
}

func (r *StructRecord) lookup(name string, exported bool) (Value, bool) {
	field, ok := findField(r.value.Type(), name, exported)
	if !ok {
		return Null(), false
	}
	fv, err := r.value.FieldByIndexErr(field.Index)
	if err != nil {
		return Null(), false
	}
	return fromReflect(fv, exported), true
}

// findField matches, in order: a `clog:"name"` tag, the exact field name,
// then the field name ignoring case.
func findField(t reflect.Type, name string, exported bool) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)
	candidates := fields[:0:0]
	for _, f := range fields {
		if f.Anonymous || f.IsExported() != exported {
			continue
		}
		candidates = append(candidates, f)
	}
	for _, f := range candidates {
		if tag, ok := f.Tag.Lookup(StructTagKey); ok && tag == name {
			return f, true
		}
	}
	for _, f := range candidates {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range candidates {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// LookupAccessor calls Get(name) when the struct (or its pointer) has a
// method with signature func(string) T
func (r *StructRecord) LookupAccessor(name string) (result Value, found bool) {
	defer func() {
		if recover() != nil {
			result, found = Null(), false
		}
	}()

	method := r.accessor()
	if !method.IsValid() {
		return Null(), false
	}
	mt := method.Type()
	if mt.NumIn() != 1 || mt.In(0).Kind() != reflect.String || mt.NumOut() < 1 {
		return Null(), false
	}
	out := method.Call([]reflect.Value{reflect.ValueOf(name).Convert(mt.In(0))})
	if mt.NumOut() == 2 && mt.Out(1).Kind() == reflect.Bool && !out[1].Bool() {
		return Null(), false
	}
	return fromReflect(out[0], true), true
}

func (r *StructRecord) accessor() reflect.Value {
	if r.value.CanAddr() {
		if m := r.value.Addr().MethodByName(AccessorMethodName); m.IsValid() {
			return m
		}
	}
	return r.value.MethodByName(AccessorMethodName)
}

// Unwrap returns the wrapped struct when it is reachable
func (r *StructRecord) Unwrap() any {
	if r.value.CanInterface() {
		return r.value.Interface()
	}
	return nil
}

// String renders the wrapped struct, honoring its own String method
func (r *StructRecord) String() string {
	if r.value.CanAddr() && r.value.Addr().CanInterface() {
		if s, ok := r.value.Addr().Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	if r.value.CanInterface() {
		if s, ok := r.value.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%+v", r.value.Interface())
	}
	return r.value.Type().String()
}
