package vdom

// fragmentMarker is the opaque value the converter substitutes for a
// fragment's type.
type fragmentMarker struct{}

// Fragment is the fragment marker to pass to hyperscript.Convert alongside H.
var Fragment = fragmentMarker{}

// H builds a VNode descriptor. It satisfies hyperscript.ConstructFunc:
// typ is a tag string, the Fragment marker, or a component identifier;
// children are *VNode descriptors or plain strings.
func H(typ any, props Props, children ...any) any {
	node := &VNode{Props: props}

	switch t := typ.(type) {
	case string:
		node.Kind = KindElement
		node.Tag = t
	case fragmentMarker:
		node.Kind = KindFragment
	default:
		node.Kind = KindComponent
		node.Type = t
	}

	for _, child := range children {
		switch c := child.(type) {
		case nil:
			continue
		case *VNode:
			if c != nil {
				node.Children = append(node.Children, c)
			}
		case string:
			node.Children = append(node.Children, Text(c))
		}
	}

	return node
}

// Text creates a text descriptor.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}
