// Package tree converts typed configuration values to and from the generic
// map[string]any form consumed by the site generator.
package tree

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromValue renders v through its yaml tags into a fresh generic tree.
// A value that renders to an empty document yields an empty map. Mapping
// keys that are not strings are stringified so the tree always encodes as JSON.
func FromValue(v any) (map[string]any, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal tree: %w", err)
	}
	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	if out == nil {
		return map[string]any{}, nil
	}
	return Clone(out), nil
}

// Decode populates out from a generic tree (or subtree) using out's yaml tags.
func Decode(in any, out any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode tree: %w", err)
	}
	return nil
}

// Clone deep-copies maps and slices; scalars are shared.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies a tree node. Maps with non-string keys come back
// as map[string]any keyed by the formatted key.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = CloneValue(item)
		}
		return out
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = CloneValue(item)
		}
		return cp
	default:
		return v
	}
}

// Lookup walks a dotted path ("themeConfig.nav") through nested maps.
func Lookup(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
