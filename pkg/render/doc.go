// Package render serializes VNode descriptor trees to HTML.
//
// The output is deterministic: attributes are sorted, text and attribute
// values are escaped, void elements self-close. Component descriptors that
// implement vdom.Component expand through their Render method; opaque
// components render their children only. Intended for previews and CLI
// output, not for a full SSR pipeline.
package render
