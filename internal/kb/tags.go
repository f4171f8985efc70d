package kb

import "strings"

// ResolveTags combines the tags checked in the picker with newly typed
// comma-separated tags. Every tag is trimmed, empties are dropped, and
// duplicates collapse to their first occurrence. Checked tags are kept
// only if they are actually in existing, and come before new ones.
func ResolveTags(existing, checked []string, newTagText string) []string {
	known := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		known[t] = struct{}{}
	}

	seen := make(map[string]struct{})
	var tags []string
	appendTag := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, t := range checked {
		if _, ok := known[strings.TrimSpace(t)]; ok {
			appendTag(t)
		}
	}
	for _, t := range strings.Split(newTagText, ",") {
		appendTag(t)
	}
	return tags
}
