package search

import "strings"

// Searchable is implemented by entities that carry a soft-delete flag.
// Deleted entries never appear in search results.
type Searchable interface {
	IsDeleted() bool
}

// Fields extracts the text fields of an entity that a query is matched
// against (name, email, phone digits and so on).
type Fields[T Searchable] func(item T) []string

// Filter returns the entries of snapshot whose fields contain query as a
// case-insensitive substring. A blank query returns every non-deleted entry.
// Input order is preserved; there is no re-ranking.
func Filter[T Searchable](snapshot []T, query string, fields Fields[T]) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]T, 0, len(snapshot))
	for _, item := range snapshot {
		if item.IsDeleted() {
			continue
		}
		if query == "" || matches(item, query, fields) {
			result = append(result, item)
		}
	}
	return result
}

func matches[T Searchable](item T, query string, fields Fields[T]) bool {
	for _, field := range fields(item) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
