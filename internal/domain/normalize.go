package domain

import "strings"

// CompactText collapses every whitespace run in a single-line value such as
// a project title or technology name into one space and trims the ends.
// Case is preserved.
func CompactText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeTechnologies compacts every item, drops empty ones and removes
// case-insensitive duplicates, keeping the first spelling seen.
// A nil input yields nil; any other input yields a non-nil slice.
func NormalizeTechnologies(items []string) []string {
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = CompactText(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
