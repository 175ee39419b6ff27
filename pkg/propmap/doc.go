// Package propmap is the reference props mapping strategy for the
// hyperscript converter.
//
// Component-backed elements get camelCased (or explicitly aliased) prop
// keys, JSON-coerced values, and slots merged in with deep dotted-path
// semantics. Intrinsic elements keep their attributes as-is apart from
// explicit aliases needed by strict host renderers.
package propmap
