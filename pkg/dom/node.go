package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <my-widget>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindOther                // Comments, doctypes, anything ignored
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Node is the traversal surface conversion requires. Methods that do not
// apply to a node's kind return zero values: Tag and Attrs are meaningful
// for elements, Text for text nodes, Children for elements and fragments.
type Node interface {
	// Kind reports the node variant.
	Kind() Kind

	// Tag returns the element tag name. Implementations are not required
	// to normalize case; the converter lowercases before lookup.
	Tag() string

	// Attrs enumerates the element's attributes in source order.
	Attrs() []Attr

	// Attr looks up a single attribute value by name.
	Attr(name string) (string, bool)

	// Children returns the direct child nodes in document order.
	Children() []Node

	// Text returns the text content of a text node.
	Text() string

	// Parent returns the parent node, or nil for a root.
	Parent() Node
}
