package vdom

import (
	"fmt"

	"github.com/domify-dev/domify/pkg/hyperscript"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // Intrinsic tag, e.g. "div"
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Registered component instantiation
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds the descriptor's properties, slots included.
type Props = hyperscript.Props

// VNode is the abstract element descriptor.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Intrinsic tag name (KindElement)
	Type     any      // Component identifier (KindComponent)
	Props    Props    // Attributes, mapped props, slot descriptors
	Children []*VNode // Child nodes
	Text     string   // For KindText
}

// Component is a component identifier that can expand itself to a VNode,
// used by the renderer for preview output. Identifiers that don't implement
// it stay opaque.
type Component interface {
	Render(props Props, children []*VNode) *VNode
}

// Namer is implemented by component identifiers that carry a stable name
// for encoding. Identifiers without one encode as their Go type.
type Namer interface {
	ComponentName() string
}

// ComponentRef is an opaque component identifier known only by name, the
// registry value used when components live outside the process (CLI and
// conversion service). It previews as a marker element.
type ComponentRef struct {
	Name string
}

// ComponentName implements Namer.
func (c ComponentRef) ComponentName() string { return c.Name }

// Render implements Component with a neutral placeholder carrying the
// component name, so previews keep the document structure visible.
func (c ComponentRef) Render(props Props, children []*VNode) *VNode {
	merged := make(Props, len(props)+1)
	for k, v := range props {
		merged[k] = v
	}
	merged["data-component"] = c.Name
	return &VNode{Kind: KindElement, Tag: "div", Props: merged, Children: children}
}

// typeName resolves a component identifier to a stable encoding name.
func typeName(typ any) string {
	if n, ok := typ.(Namer); ok {
		return n.ComponentName()
	}
	return fmt.Sprintf("%T", typ)
}
