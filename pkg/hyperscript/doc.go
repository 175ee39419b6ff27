// Package hyperscript converts a source markup tree into abstract element
// descriptors of the kind a hyperscript/JSX compiler produces.
//
// Convert walks a dom.Node depth-first and emits one descriptor per element
// or fragment through a host-supplied construction function. Elements whose
// lowercased tag appears in the Registry become component instantiations;
// everything else passes through as an intrinsic tag string. Direct element
// children carrying a slot attribute are redistributed into their parent's
// props when — and only when — the parent resolves to a component.
//
// The descriptor type is whatever the construction function returns; the
// converter never inspects it. pkg/vdom ships a ready-made host.
package hyperscript
