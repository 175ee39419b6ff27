package propmap

import (
	"github.com/domify-dev/domify/pkg/hyperscript"
)

// Option configures the mapper.
type Option func(*options)

type options struct {
	componentAliases map[string]string
	intrinsicAliases map[string]string
}

// WithComponentAliases overrides attribute → prop renaming for
// component-backed elements. Attributes without an alias are camelCased.
func WithComponentAliases(aliases map[string]string) Option {
	return func(o *options) { o.componentAliases = aliases }
}

// WithIntrinsicAliases overrides attribute renaming for intrinsic elements.
// Attributes without an alias pass through unchanged.
func WithIntrinsicAliases(aliases map[string]string) Option {
	return func(o *options) { o.intrinsicAliases = aliases }
}

// New builds the reference PropsMapper.
//
// For component-backed nodes, attribute keys are renamed via the component
// alias map or camelCased, values are JSON-decoded where they parse (kept
// as strings where they don't), and each slot is assigned into the props
// with deep dotted-path semantics ("a.b.c" nests, it does not flatten).
// Intrinsic nodes only get the explicit renames.
func New(opts ...Option) hyperscript.PropsMapper {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(attrs map[string]string, slots map[string]any, ctx hyperscript.Context) hyperscript.Props {
		if ctx.Component == nil {
			renamed := mapKeys(attrs, func(name string) string {
				if alias, ok := o.intrinsicAliases[name]; ok {
					return alias
				}
				return name
			})
			props := make(hyperscript.Props, len(renamed))
			for k, v := range renamed {
				props[k] = v
			}
			return props
		}

		renamed := mapKeys(attrs, func(name string) string {
			if alias, ok := o.componentAliases[name]; ok {
				return alias
			}
			return camelCase(name)
		})
		props := hyperscript.Props(mapValues(renamed, decodeValue))
		for name, child := range slots {
			deepSet(props, name, child)
		}
		return props
	}
}
