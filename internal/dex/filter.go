package dex

import "strings"

// Filter returns the records whose name or any type contains term,
// case-insensitively. An empty term keeps everything. Input order is kept
// and the input slice is never modified.
func Filter(records []Record, term string) []Record {
	needle := strings.ToLower(term)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether rec satisfies the filter predicate for an already
// lower-cased needle.
func Matches(rec Record, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Name), needle) {
		return true
	}
	for _, t := range rec.Types {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
