package textutil

import (
	"sort"
	"strings"
)

// ScanlatorSeparator joins multiple group names in a chapter's scanlator
// attribution.
const ScanlatorSeparator = " & "

// JoinScanlators formats a set of group names as a single attribution
// string. Names are deduplicated, empty entries dropped and the rest
// sorted so the same set of groups always renders identically.
func JoinScanlators(names []string) string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	sort.Strings(unique)
	return strings.Join(unique, ScanlatorSeparator)
}
