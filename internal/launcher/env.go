// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"slices"
	"strings"
)

// findEnvSeparator returns the index of the '=' separating a variable name
// from its value in a "KEY=VALUE" entry, or -1 when the entry is malformed.
// The separator search starts at index 1 because some platforms produce
// entries whose name begins with '=' (e.g. "=C:" on Windows).
func findEnvSeparator(entry string) int {
	if entry == "" {
		return -1
	}
	idx := strings.Index(entry[1:], "=")
	if idx == -1 {
		return -1
	}
	return idx + 1
}

// MergeEnviron combines the host environment with the launcher's overlay of
// validated and forwarded variables. Overlay values win over host values for
// the same name. Host entries keep their original order; overlay-only entries
// are appended in sorted order so the result is deterministic for a fixed
// input.
func MergeEnviron(base []string, overlay map[string]string) []string {
	merged := make([]string, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(overlay))

	for _, entry := range base {
		idx := findEnvSeparator(entry)
		if idx == -1 {
			continue
		}
		name := entry[:idx]
		if val, ok := overlay[name]; ok {
			if !seen[name] {
				merged = append(merged, name+"="+val)
				seen[name] = true
			}
			continue
		}
		merged = append(merged, entry)
	}

	rest := make([]string, 0, len(overlay))
	for name := range overlay {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		merged = append(merged, name+"="+overlay[name])
	}

	return merged
}
