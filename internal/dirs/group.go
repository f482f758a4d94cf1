// Package dirs groups changed file paths into the directories that contain
// them, relative to one or more parent folders.
package dirs

import "strings"

// Unlimited keeps the full relative directory instead of truncating it to
// depth+1 segments.
const Unlimited = -1

// Group maps files onto directory names below each parent.
//
// For every parent, in order, each file inside it contributes the first
// depth+1 segments of its containing directory (relative to the parent),
// prefixed with "<parent>/" when includeParent is set. The combined list is
// deduplicated keeping the first occurrence. The result is never nil.
//
// The prefix is the normalized parent, so "./apps/" yields entries starting
// with "apps/".
func Group(files, parents []string, depth int, includeParent bool) []string {
	var grouped []string
	for _, p := range parents {
		parent := NormalizeDir(p)
		for _, f := range files {
			if !Contains(parent, f) {
				continue
			}
			name := truncate(RelativeDir(parent, f), depth)
			if includeParent {
				name = parent + "/" + name
			}
			grouped = append(grouped, name)
		}
	}
	return Unique(grouped)
}

// truncate keeps at most depth+1 leading segments of rel.
func truncate(rel string, depth int) string {
	if depth < 0 {
		return rel
	}
	parts := strings.Split(rel, "/")
	if depth < len(parts)-1 {
		parts = parts[:depth+1]
	}
	return strings.Join(parts, "/")
}

// Unique removes duplicate entries, keeping first-occurrence order.
func Unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
