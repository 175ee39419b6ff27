package hyperscript

import (
	"errors"

	"github.com/domify-dev/domify/pkg/dom"
)

// SlotAttr is the reserved attribute naming the prop a child is routed to.
const SlotAttr = "slot"

// DefaultMaxDepth bounds recursion over pathologically nested input.
const DefaultMaxDepth = 512

// ErrDepthExceeded is returned when the source tree nests deeper than the
// configured maximum.
var ErrDepthExceeded = errors.New("hyperscript: maximum tree depth exceeded")

// Props is the mapping attached to each descriptor.
type Props map[string]any

// ConstructFunc builds one descriptor. typ is the resolved component for
// component-backed and fragment nodes, or the tag string for intrinsic
// elements. Children are previously built descriptors or plain strings for
// text content.
type ConstructFunc func(typ any, props Props, children ...any) any

// Context describes the node a PropsMapper is mapping for. Component is nil
// for intrinsic elements; Element is nil when the node is a fragment.
type Context struct {
	Tag       string
	Component any
	Element   dom.Node
}

// PropsMapper turns raw attributes and collected slots into final props.
// attrs and slots are freshly allocated per node and may be retained.
type PropsMapper func(attrs map[string]string, slots map[string]any, ctx Context) Props

// Option configures a conversion.
type Option func(*options)

type options struct {
	mapper   PropsMapper
	maxDepth int
}

// WithPropsMapper installs a props mapping strategy. Without one, props are
// a shallow merge of attributes then slots, slots winning on collision.
func WithPropsMapper(m PropsMapper) Option {
	return func(o *options) { o.mapper = m }
}

// WithMaxDepth overrides the recursion bound. Zero disables the guard.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}
