package patch

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromAny converts decoded JSON-like data (float64, int, bool, string, []any,
// map[string]any) into a Value.
func FromAny(in any) (Value, error) {
	switch t := in.(type) {
	case float64:
		return Number(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Number(n), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			v, err := FromAny(it)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = v
		}
		return Value{kind: KindList, list: items}, nil
	case map[string]any:
		m := make(Map, len(t))
		for k, it := range t {
			v, err := FromAny(it)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = v
		}
		return Nested(m), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrInvalidValue, in)
}

// Any converts v back into plain Go data.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, it := range v.list {
			out[i] = it.Any()
		}
		return out
	case KindMap:
		return v.m.Any()
	}
	return nil
}

// Any converts m into a map[string]any.
func (m Map) Any() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Any()
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInvalid {
		return nil, ErrInvalidValue
	}
	return json.Marshal(v.Any())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.AliasNode:
		return v.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return err
			}
			*v = Number(n)
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = Bool(b)
		case "!!str":
			*v = String(node.Value)
		default:
			return fmt.Errorf("%w: line %d: tag %s", ErrInvalidValue, node.Line, node.Tag)
		}
	case yaml.SequenceNode:
		items := make([]Value, len(node.Content))
		for i, child := range node.Content {
			if err := items[i].UnmarshalYAML(child); err != nil {
				return err
			}
		}
		*v = Value{kind: KindList, list: items}
	case yaml.MappingNode:
		var m Map
		if err := m.UnmarshalYAML(node); err != nil {
			return err
		}
		*v = Nested(m)
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidValue, node.Line)
	}
	return nil
}

// UnmarshalYAML decodes a mapping node. Null values are rejected rather than
// left as invalid entries.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return m.UnmarshalYAML(node.Alias)
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected mapping", ErrInvalidValue, node.Line)
	}

	out := make(Map, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var v Value
		if err := v.UnmarshalYAML(node.Content[i+1]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out[key] = v
	}
	*m = out
	return nil
}
