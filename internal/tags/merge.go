// Package tags combines explicit and machine-suggested tags into a
// deduplicated set.
package tags

import "strings"

// Merge unions explicit and suggested tags. Entries are trimmed, empty
// entries dropped, duplicates collapsed. Case is preserved as-is. The
// returned order is first-seen and carries no semantic meaning.
func Merge(explicit, suggested []string) []string {
	seen := make(map[string]bool, len(explicit)+len(suggested))
	merged := make([]string, 0, len(explicit)+len(suggested))
	for _, list := range [][]string{explicit, suggested} {
		for _, t := range list {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			merged = append(merged, t)
		}
	}
	return merged
}
