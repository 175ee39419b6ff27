package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHElement(t *testing.T) {
	out := H("div", Props{"class": "card"}, Text("hi"), "raw")

	node := out.(*VNode)
	if node.Kind != KindElement || node.Tag != "div" {
		t.Errorf("node = %+v, want div element", node)
	}
	if node.Props["class"] != "card" {
		t.Errorf("props = %v", node.Props)
	}
	if len(node.Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(node.Children))
	}
	if node.Children[0].Text != "hi" || node.Children[1].Text != "raw" {
		t.Errorf("children = %v, %v", node.Children[0], node.Children[1])
	}
	if node.Children[1].Kind != KindText {
		t.Error("string child was not promoted to a text node")
	}
}

func TestHFragment(t *testing.T) {
	out := H(Fragment, Props{}, H("p", Props{}))

	node := out.(*VNode)
	if node.Kind != KindFragment {
		t.Errorf("kind = %v, want Fragment", node.Kind)
	}
	if len(node.Children) != 1 {
		t.Errorf("children = %v", node.Children)
	}
}

func TestHComponent(t *testing.T) {
	ref := ComponentRef{Name: "Widget"}
	out := H(ref, Props{"greeting": "hello"})

	node := out.(*VNode)
	if node.Kind != KindComponent {
		t.Errorf("kind = %v, want Component", node.Kind)
	}
	if node.Type != any(ref) {
		t.Errorf("type = %v, want the component identifier", node.Type)
	}
}

func TestHFiltersNilChildren(t *testing.T) {
	out := H("div", Props{}, nil, (*VNode)(nil), Text("kept"))

	node := out.(*VNode)
	if len(node.Children) != 1 || node.Children[0].Text != "kept" {
		t.Errorf("children = %v, want only the text node", node.Children)
	}
}

func TestComponentRefRender(t *testing.T) {
	ref := ComponentRef{Name: "Widget"}
	child := Text("hi")

	rendered := ref.Render(Props{"greeting": "hello"}, []*VNode{child})
	if rendered.Kind != KindElement || rendered.Tag != "div" {
		t.Fatalf("rendered = %+v, want div placeholder", rendered)
	}
	if rendered.Props["data-component"] != "Widget" {
		t.Errorf("data-component = %v", rendered.Props["data-component"])
	}
	if rendered.Props["greeting"] != "hello" {
		t.Errorf("greeting = %v", rendered.Props["greeting"])
	}
	if len(rendered.Children) != 1 || rendered.Children[0] != child {
		t.Errorf("children = %v", rendered.Children)
	}
}

func TestTypeName(t *testing.T) {
	if got := typeName(ComponentRef{Name: "Widget"}); got != "Widget" {
		t.Errorf("typeName(ComponentRef) = %q, want Widget", got)
	}
	if got := typeName(struct{}{}); got == "" {
		t.Error("typeName fallback returned empty string")
	}
}
