package compose

import "git.home.luguber.info/inful/blogbuilder/internal/tree"

// DefaultAppendPaths are the sequences where theme items are kept ahead of
// site items instead of being replaced.
var DefaultAppendPaths = []string{"head", "vite.plugins"}

// MergeOptions tunes sequence handling.
type MergeOptions struct {
	AppendPaths []string
}

// Merge layers override over base and returns a fresh tree plus the number of
// base values that override replaced.
//   - Maps: merged recursively
//   - Sequences: replaced, or base followed by override at AppendPaths
//   - Scalars: replaced
//   - nil in override: base kept
//
// Neither input is modified.
func Merge(base, override map[string]any, opts MergeOptions) (map[string]any, int) {
	appendAt := make(map[string]bool, len(opts.AppendPaths))
	for _, p := range opts.AppendPaths {
		appendAt[p] = true
	}
	out := tree.Clone(base)
	if out == nil {
		out = map[string]any{}
	}
	n := mergeInto(out, override, "", appendAt)
	return out, n
}

func mergeInto(dst, src map[string]any, prefix string, appendAt map[string]bool) int {
	replaced := 0
	for k, v := range src {
		if v == nil {
			continue
		}
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		existing, exists := dst[k]

		if sm, ok := v.(map[string]any); ok {
			if dm, ok := existing.(map[string]any); ok {
				replaced += mergeInto(dm, sm, path, appendAt)
				continue
			}
			if exists {
				replaced++
			}
			dst[k] = tree.Clone(sm)
			continue
		}

		if sl, ok := v.([]any); ok {
			if dl, ok := existing.([]any); ok && appendAt[path] {
				joined := make([]any, 0, len(dl)+len(sl))
				joined = append(joined, dl...)
				for _, item := range sl {
					joined = append(joined, tree.CloneValue(item))
				}
				dst[k] = joined
				continue
			}
			if exists {
				replaced++
			}
			cp := make([]any, len(sl))
			for i, item := range sl {
				cp[i] = tree.CloneValue(item)
			}
			dst[k] = cp
			continue
		}

		if exists {
			replaced++
		}
		dst[k] = v
	}
	return replaced
}
