package propmap

import (
	"encoding/json"
	"strings"
	"unicode"
)

// The four primitives the mapper is built on. Plain pure functions; no
// general-purpose utility dependency.

// mapKeys rebuilds a map with every key passed through f.
func mapKeys[V any](m map[string]V, f func(string) string) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[f(k)] = v
	}
	return out
}

// mapValues rebuilds a map with every value passed through f.
func mapValues(m map[string]string, f func(string) any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// decodeValue attempts a JSON decode so props can carry numbers, booleans,
// objects, and arrays. Values that don't parse stay strings; decode failure
// is never surfaced.
func decodeValue(value string) any {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return value
	}
	return decoded
}

// deepSet assigns value under a dotted path, creating nested maps along the
// way. Existing sibling branches are preserved; a non-map intermediate is
// replaced by a map so the assignment always lands.
func deepSet(m map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// camelCase converts kebab-case and snake_case attribute names to the
// camelCase prop convention: "data-foo-bar" → "dataFooBar".
func camelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := false
	wroteAny := false
	for _, r := range s {
		if r == '-' || r == '_' {
			upperNext = wroteAny
			continue
		}
		switch {
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case !wroteAny:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		wroteAny = true
	}
	return b.String()
}
