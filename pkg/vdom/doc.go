// Package vdom is the bundled descriptor host for the converter.
//
// VNode is a lightweight "what to render" record: a type (component,
// fragment, or intrinsic tag), props, and children. H satisfies
// hyperscript.ConstructFunc so a conversion can target VNode trees without
// any glue, and Fragment is the matching fragment marker. Encoding helpers
// serialize descriptor trees to JSON or msgpack for transport.
package vdom
