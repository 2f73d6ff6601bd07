// Package memory holds the in-process stores used by the default
// configuration and by tests. Every store is safe for concurrent use and
// hands out copies, never its own records.
package memory

import (
	"cmp"
	"slices"
	"strings"

	"github.com/contentforge/admin-api/internal/core/ports"
)

// paginate returns the page of items selected by req.
func paginate[T any](items []T, req ports.PageRequest) []T {
	req.Normalize()
	start := req.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := len(items)
	if req.Limit < end-start {
		end = start + req.Limit
	}
	return items[start:end]
}

// sortBy orders items by the key function for field, falling back to
// fallback when field is unknown. The sort is stable.
func sortBy[T any](items []T, field string, desc bool, fallback string, less map[string]func(a, b T) int) {
	fn, ok := less[field]
	if !ok {
		fn = less[fallback]
	}
	if fn == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return fn(b, a)
		}
		return fn(a, b)
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
