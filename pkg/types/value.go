package types

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the schema-less context tree bound to a template at render
// time. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    map[string]Value
}

func Null() Value              { return Value{} }
func Bool(b bool) Value        { return Value{kind: KindBool, b: b} }
func Int(i int64) Value        { return Value{kind: KindInt, i: i} }
func Float(f float64) Value    { return Value{kind: KindFloat, f: f} }
func String(s string) Value    { return Value{kind: KindString, s: s} }
func Seq(items ...Value) Value { return Value{kind: KindSeq, seq: items} }

// Map wraps m. A nil map yields an empty mapping.
func Map(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, m: m}
}

// StringMap builds a mapping of string values, as produced by KV and ENV input.
func StringMap(m map[string]string) Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = String(v)
	}
	return Map(out)
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) Bool() bool     { return v.b }
func (v Value) Int() int64     { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Str() string    { return v.s }

// Len is the number of items of a sequence or entries of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence.
func (v Value) Index(i int) Value {
	if v.kind != KindSeq || i < 0 || i >= len(v.seq) {
		return Null()
	}
	return v.seq[i]
}

// Get looks up key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Null(), false
	}
	item, ok := v.m[key]
	return item, ok
}

// Keys returns the mapping keys in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Interface converts v into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
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
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromAny converts the output of a generic decoder (encoding/json with
// UseNumber, yaml.v3, go-toml) into a Value.
func FromAny(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Null(), fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return Float(f), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			conv, err := FromAny(item)
			if err != nil {
				return Null(), err
			}
			items[i] = conv
		}
		return Seq(items...), nil
	case map[string]any:
		out := make(map[string]Value, len(x))
		for k, item := range x {
			conv, err := FromAny(item)
			if err != nil {
				return Null(), err
			}
			out[k] = conv
		}
		return Map(out), nil
	case map[any]any:
		out := make(map[string]Value, len(x))
		for k, item := range x {
			conv, err := FromAny(item)
			if err != nil {
				return Null(), err
			}
			out[fmt.Sprint(k)] = conv
		}
		return Map(out), nil
	case map[string]string:
		return StringMap(x), nil
	}
	return fromReflect(reflect.ValueOf(in))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			conv, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Null(), err
			}
			items[i] = conv
		}
		return Seq(items...), nil
	case reflect.Map:
		out := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			conv, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Null(), err
			}
			out[fmt.Sprint(iter.Key().Interface())] = conv
		}
		return Map(out), nil
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return String(s.String()), nil
	}
	return Null(), fmt.Errorf("unsupported context value of type %T", rv.Interface())
}
