package services

// DefaultPageSize is the number of questions served per page.
const DefaultPageSize = 10

// Paginate returns the 1-based page window [start:end) of items. Pages below 1
// are treated as page 1 and pages past the end yield an empty slice, never an
// error. Callers decide whether an empty page is meaningful.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
