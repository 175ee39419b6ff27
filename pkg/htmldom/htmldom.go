// Package htmldom adapts golang.org/x/net/html parse trees to the dom.Node
// interface the converter walks. The parser lowercases tags and attribute
// names, so lookups need no extra normalization.
package htmldom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domify-dev/domify/pkg/dom"
)

// Node wraps a parsed HTML node. The wrapper is read-only; it never mutates
// the underlying tree.
type Node struct {
	n *html.Node

	// fragment marks a synthetic container whose children are the parsed
	// top-level nodes. It reports dom.KindFragment instead of its element
	// kind.
	fragment bool
}

// ParseFragment parses markup in body context and returns a fragment node
// over its top-level children.
func ParseFragment(r io.Reader) (dom.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	for _, n := range parsed {
		container.AppendChild(n)
	}
	return &Node{n: container, fragment: true}, nil
}

// ParseFragmentString is ParseFragment over a string.
func ParseFragmentString(markup string) (dom.Node, error) {
	return ParseFragment(strings.NewReader(markup))
}

// ParseDocument parses a full HTML document and returns a fragment node
// over the body's children.
func ParseDocument(r io.Reader) (dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	body := findBody(doc)
	if body == nil {
		// The parser synthesizes a body for any well-formed input; a
		// missing one means there is simply nothing to convert.
		return &Node{n: &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}, fragment: true}, nil
	}
	return &Node{n: body, fragment: true}, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// Wrap exposes an arbitrary parsed node as a dom.Node.
func Wrap(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// Kind maps the parser's node types onto the converter's variants.
func (w *Node) Kind() dom.Kind {
	if w.fragment {
		return dom.KindFragment
	}
	switch w.n.Type {
	case html.ElementNode:
		return dom.KindElement
	case html.TextNode:
		return dom.KindText
	case html.DocumentNode:
		return dom.KindFragment
	default:
		// Comments, doctypes, and raw nodes contribute nothing.
		return dom.KindOther
	}
}

func (w *Node) Tag() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return w.n.Data
}

func (w *Node) Attrs() []dom.Attr {
	if w.n.Type != html.ElementNode || len(w.n.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, len(w.n.Attr))
	for i, a := range w.n.Attr {
		attrs[i] = dom.Attr{Name: a.Key, Value: a.Val}
	}
	return attrs
}

func (w *Node) Attr(name string) (string, bool) {
	if w.n.Type != html.ElementNode {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range w.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (w *Node) Children() []dom.Node {
	var children []dom.Node
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}

func (w *Node) Text() string {
	if w.n.Type != html.TextNode {
		return ""
	}
	return w.n.Data
}

func (w *Node) Parent() dom.Node {
	if w.n.Parent == nil {
		return nil
	}
	return &Node{n: w.n.Parent}
}
