package hyperscript

import "strings"

// Registry maps lowercase tag names to opaque component identifiers.
// Absent entries mean "treat the tag as intrinsic". The converter only
// reads it; a nil Registry behaves as empty.
type Registry map[string]any

// Register adds a component under the given tag. The tag is lowercased so
// lookups match regardless of source casing. Nil components are ignored.
func (r Registry) Register(tag string, component any) {
	if component == nil {
		return
	}
	r[strings.ToLower(tag)] = component
}

// Lookup resolves a tag to its component. The tag must already be
// lowercase; Convert normalizes before calling.
func (r Registry) Lookup(tag string) (any, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r[tag]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
