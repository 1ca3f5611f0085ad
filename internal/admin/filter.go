package admin

import "strings"

// Filter derives the visible rows from items and the search term without
// mutating items. The match is a case-insensitive substring test across the
// entity's designated fields. Empty terms return the input unchanged, which
// also makes the function idempotent for any fixed term.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
