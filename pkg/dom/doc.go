// Package dom defines the minimal source-node surface the converter walks.
//
// A source tree is anything implementing Node: elements with attributes and
// ordered children, text nodes, a fragment grouping node, and an "other"
// kind for everything the converter ignores (comments, doctypes, processing
// instructions). The package also ships an in-memory implementation for
// hosts that synthesize trees directly and for tests; pkg/htmldom adapts
// parsed HTML to the same interface.
//
// The converter never mutates a Node. Parent links are relations only, used
// for the slot tie-break; they imply no ownership.
package dom
