package dom

// The in-memory tree. Constructors attach parent links so the slot
// tie-break works without the caller wiring relations by hand.

// parentSetter is implemented by in-memory nodes so constructors can attach
// parent links. Foreign Node implementations keep their own parents.
type parentSetter interface {
	setParent(Node)
}

func adopt(parent Node, children []Node) {
	for _, child := range children {
		if ps, ok := child.(parentSetter); ok {
			ps.setParent(parent)
		}
	}
}

// ElementNode is an in-memory element.
type ElementNode struct {
	tag      string
	attrs    []Attr
	children []Node
	parent   Node
}

// Element creates an element node with the given tag, attributes, and
// children. The children's parent links are set to the new node.
func Element(tag string, attrs []Attr, children ...Node) *ElementNode {
	e := &ElementNode{tag: tag, attrs: attrs, children: children}
	adopt(e, children)
	return e
}

func (e *ElementNode) Kind() Kind    { return KindElement }
func (e *ElementNode) Tag() string   { return e.tag }
func (e *ElementNode) Attrs() []Attr { return e.attrs }

func (e *ElementNode) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *ElementNode) Children() []Node { return e.children }
func (e *ElementNode) Text() string     { return "" }
func (e *ElementNode) Parent() Node     { return e.parent }

func (e *ElementNode) setParent(p Node) { e.parent = p }

// TextNode is an in-memory text node.
type TextNode struct {
	text   string
	parent Node
}

// Text creates a text node.
func Text(content string) *TextNode {
	return &TextNode{text: content}
}

func (t *TextNode) Kind() Kind                 { return KindText }
func (t *TextNode) Tag() string                { return "" }
func (t *TextNode) Attrs() []Attr              { return nil }
func (t *TextNode) Attr(string) (string, bool) { return "", false }
func (t *TextNode) Children() []Node           { return nil }
func (t *TextNode) Text() string               { return t.text }
func (t *TextNode) Parent() Node               { return t.parent }
func (t *TextNode) setParent(p Node)           { t.parent = p }

// FragmentNode groups children without a wrapper element.
type FragmentNode struct {
	children []Node
	parent   Node
}

// Fragment creates a fragment node over the given children.
func Fragment(children ...Node) *FragmentNode {
	f := &FragmentNode{children: children}
	adopt(f, children)
	return f
}

func (f *FragmentNode) Kind() Kind                 { return KindFragment }
func (f *FragmentNode) Tag() string                { return "" }
func (f *FragmentNode) Attrs() []Attr              { return nil }
func (f *FragmentNode) Attr(string) (string, bool) { return "", false }
func (f *FragmentNode) Children() []Node           { return f.children }
func (f *FragmentNode) Text() string               { return "" }
func (f *FragmentNode) Parent() Node               { return f.parent }
func (f *FragmentNode) setParent(p Node)           { f.parent = p }

// OtherNode stands in for node kinds conversion ignores, such as comments.
type OtherNode struct {
	parent Node
}

// Comment creates an ignorable node.
func Comment() *OtherNode {
	return &OtherNode{}
}

func (o *OtherNode) Kind() Kind                 { return KindOther }
func (o *OtherNode) Tag() string                { return "" }
func (o *OtherNode) Attrs() []Attr              { return nil }
func (o *OtherNode) Attr(string) (string, bool) { return "", false }
func (o *OtherNode) Children() []Node           { return nil }
func (o *OtherNode) Text() string               { return "" }
func (o *OtherNode) Parent() Node               { return o.parent }
func (o *OtherNode) setParent(p Node)           { o.parent = p }
