package patch

import (
	"maps"
	"slices"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindBool
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is one node of a patch: a numeric, boolean or string leaf, a list of leaves,
// or a nested Map. The zero Value is invalid.
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  string
	list []Value
	m    Map
}

// Map is a possibly nested partial description of state.
type Map map[string]Value

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func String(s string) Value  { return Value{kind: KindString, str: s} }

// List builds a list value. Elements are copied.
func List(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Numbers is a shorthand for a list of numeric leaves.
func Numbers(ns ...float64) Value {
	items := make([]Value, len(ns))
	for i, n := range ns {
		items[i] = Number(n)
	}
	return Value{kind: KindList, list: items}
}

// Nested wraps m as a Value without copying it.
func Nested(m Map) Value {
	if m == nil {
		m = Map{}
	}
	return Value{kind: KindMap, m: m}
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Num returns the numeric payload; ok is false for any other kind.
func (v Value) Num() (n float64, ok bool) { return v.num, v.kind == KindNumber }

// Flag returns the boolean payload; ok is false for any other kind.
func (v Value) Flag() (b bool, ok bool) { return v.b, v.kind == KindBool }

// Str returns the string payload; ok is false for any other kind.
func (v Value) Str() (s string, ok bool) { return v.str, v.kind == KindString }

// Items returns the list elements. The slice must not be modified.
func (v Value) Items() ([]Value, bool) { return v.list, v.kind == KindList }

// Fields returns the nested map. The map is shared, not copied.
func (v Value) Fields() (Map, bool) { return v.m, v.kind == KindMap }

// Max returns the largest numeric element of a list, or the number itself.
// ok is false when no numeric value is present.
func (v Value) Max() (hi float64, ok bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindList:
		for _, it := range v.list {
			if it.kind != KindNumber {
				continue
			}
			if !ok || it.num > hi {
				hi, ok = it.num, true
			}
		}
	}
	return hi, ok
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, it := range v.list {
			items[i] = it.Clone()
		}
		v.list = items
	case KindMap:
		v.m = v.m.Clone()
	}
	return v
}

// Equal reports deep equality. Lists are order sensitive.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.str == o.str
	case KindList:
		return slices.EqualFunc(v.list, o.list, Value.Equal)
	case KindMap:
		return v.m.Equal(o.m)
	}
	return true
}

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports deep equality of two maps.
func (m Map) Equal(o Map) bool {
	return maps.EqualFunc(m, o, Value.Equal)
}

// Keys returns the keys of m in lexical order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Lookup follows path through nested maps.
func (m Map) Lookup(path ...string) (Value, bool) {
	cur := Nested(m)
	for _, key := range path {
		fields, ok := cur.Fields()
		if !ok {
			return Value{}, false
		}
		if cur, ok = fields[key]; !ok {
			return Value{}, false
		}
	}
	return cur, true
}

// Number returns the numeric field key, or the maximum of a list field.
func (m Map) Number(key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return v.Max()
}
