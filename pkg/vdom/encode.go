package vdom

import (
	"encoding/json"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// encoded is the wire shape of a descriptor tree. Component identifiers are
// flattened to their names; slot descriptors inside props are encoded
// recursively.
type encoded struct {
	Kind     string         `json:"kind" msgpack:"kind"`
	Tag      string         `json:"tag,omitempty" msgpack:"tag,omitempty"`
	Type     string         `json:"type,omitempty" msgpack:"type,omitempty"`
	Props    map[string]any `json:"props,omitempty" msgpack:"props,omitempty"`
	Children []*encoded     `json:"children,omitempty" msgpack:"children,omitempty"`
	Text     string         `json:"text,omitempty" msgpack:"text,omitempty"`
}

func encodeNode(n *VNode) *encoded {
	if n == nil {
		return nil
	}

	e := &encoded{
		Kind: strings.ToLower(n.Kind.String()),
		Tag:  n.Tag,
		Text: n.Text,
	}
	if n.Kind == KindComponent {
		e.Type = typeName(n.Type)
	}
	if len(n.Props) > 0 {
		e.Props = make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			e.Props[k] = encodeValue(v)
		}
	}
	for _, child := range n.Children {
		if child != nil {
			e.Children = append(e.Children, encodeNode(child))
		}
	}
	return e
}

// encodeValue rewrites descriptor values nested in props, including the
// branches a deep-path slot assignment creates.
func encodeValue(v any) any {
	switch val := v.(type) {
	case *VNode:
		return encodeNode(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			out[k] = encodeValue(nested)
		}
		return out
	default:
		return v
	}
}

// EncodeJSON serializes a descriptor tree as compact JSON.
func EncodeJSON(n *VNode) ([]byte, error) {
	return json.Marshal(encodeNode(n))
}

// EncodeJSONIndent serializes a descriptor tree as indented JSON.
func EncodeJSONIndent(n *VNode) ([]byte, error) {
	return json.MarshalIndent(encodeNode(n), "", "  ")
}

// EncodeMsgpack serializes a descriptor tree as msgpack.
func EncodeMsgpack(n *VNode) ([]byte, error) {
	return msgpack.Marshal(encodeNode(n))
}

// DecodeMsgpack round-trips a msgpack payload back into the wire shape as
// generic maps, mainly for consumers that inspect rather than render.
func DecodeMsgpack(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
