package hyperscript

import (
	"strings"

	"github.com/domify-dev/domify/pkg/dom"
)

// Convert walks node depth-first and returns the descriptor built by
// construct, or nil when the node kind is not convertible (a defined no-op,
// not an error). fragment is the opaque value passed to construct in place
// of a tag when the node is a fragment.
//
// The walk is synchronous and referentially transparent: it reads the input
// tree and registry and allocates fresh maps per node, nothing more. Errors
// come only from the depth guard; defects in caller-supplied collaborators
// (construct panicking, a mapper misbehaving) propagate untouched.
func Convert(node dom.Node, construct ConstructFunc, fragment any, registry Registry, opts ...Option) (any, error) {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return convert(node, construct, fragment, registry, &o, 0)
}

func convert(node dom.Node, construct ConstructFunc, fragment any, registry Registry, o *options, depth int) (any, error) {
	if node == nil {
		return nil, nil
	}
	if o.maxDepth > 0 && depth >= o.maxDepth {
		return nil, ErrDepthExceeded
	}

	var (
		tag       string
		component any
		attrs     map[string]string
		source    []dom.Node
		isElement bool
	)

	switch node.Kind() {
	case dom.KindElement:
		isElement = true
		tag = strings.ToLower(node.Tag())
		component, _ = registry.Lookup(tag)
		list := node.Attrs()
		attrs = make(map[string]string, len(list))
		for _, a := range list {
			attrs[strings.ToLower(a.Name)] = a.Value
		}
		source = node.Children()
	case dom.KindFragment:
		// A fragment always resolves to the fragment marker, whatever the
		// registry contains.
		component = fragment
		attrs = map[string]string{}
		source = node.Children()
	default:
		return nil, nil
	}

	children := make([]any, 0, len(source))
	slots := make(map[string]any)

	for _, child := range source {
		switch child.Kind() {
		case dom.KindText:
			// Empty text contributes nothing, matching the falsy filter
			// applied to converted children below.
			if text := child.Text(); text != "" {
				children = append(children, text)
			}
		case dom.KindElement:
			converted, err := convert(child, construct, fragment, registry, o, depth+1)
			if err != nil {
				return nil, err
			}
			if converted == nil {
				continue
			}
			slot, _ := child.Attr(SlotAttr)
			if isElement && component != nil && slot != "" {
				// Slot redistribution: the child becomes a prop of the
				// component, not a positional child.
				slots[slot] = converted
			} else {
				children = append(children, converted)
			}
		default:
			// Fragments and other kinds among children contribute nothing.
		}
	}

	if isElement {
		stripServedSlot(node, attrs, registry)
	}

	var props Props
	if isElement && o.mapper != nil {
		props = o.mapper(attrs, slots, Context{Tag: tag, Component: component, Element: node})
	} else {
		props = make(Props, len(attrs)+len(slots))
		for k, v := range attrs {
			props[k] = v
		}
		for k, v := range slots {
			props[k] = v
		}
	}

	typ := component
	if typ == nil {
		typ = tag
	}
	return construct(typ, props, children...), nil
}

// stripServedSlot removes the node's own slot attribute when its parent
// resolves to a registered component. The designation already routed this
// node one level up; leaking it into props could collide with a prop of the
// same name or trigger a second distribution downstream.
func stripServedSlot(node dom.Node, attrs map[string]string, registry Registry) {
	if _, ok := attrs[SlotAttr]; !ok {
		return
	}
	parent := node.Parent()
	if parent == nil || parent.Kind() != dom.KindElement {
		return
	}
	if _, registered := registry.Lookup(strings.ToLower(parent.Tag())); registered {
		delete(attrs, SlotAttr)
	}
}
