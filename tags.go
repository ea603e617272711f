package pubadmin

import "strings"

// AppendTag appends the trimmed input to tags. Empty input is a no-op.
// Duplicates are allowed — the tag list is ordered, not a set.
func AppendTag(tags []string, input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return tags
	}
	return append(tags, input)
}

// RemoveTagAt removes the tag at position i. Out-of-range indices are a no-op.
func RemoveTagAt(tags []string, i int) []string {
	if i < 0 || i >= len(tags) {
		return tags
	}
	return append(tags[:i:i], tags[i+1:]...)
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
