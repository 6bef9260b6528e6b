package validation

import "strings"

// GetPath resolves a dotted field path against nested maps. Missing
// segments resolve to nil.
func GetPath(data map[string]any, path string) any {
	keys := strings.Split(path, ".")
	var current any = data
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// SetPath writes a value at a dotted field path, creating intermediate maps
// as needed. Existing non-map intermediates are replaced.
func SetPath(data map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	last := keys[len(keys)-1]
	current := data
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[last] = value
}
