// Package config loads the domify.json project configuration: the tag →
// component registry, prop alias maps, conversion limits, and serve
// settings.
package config
