package view

// ComputePage returns the contiguous slice of items for the given 1-based
// page, clipped to the collection's bounds. A non-positive page or page size
// yields an empty result.
func ComputePage[T any](items []T, page, pageSize int) []T {
	if page <= 0 || pageSize <= 0 {
		return nil
	}
	start := pageSize * (page - 1)
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ComputeNumPages returns the number of pages needed for size items, or -1
// when pageSize is not a valid positive size. An empty collection has zero
// pages.
func ComputeNumPages(size, pageSize int) int {
	if pageSize <= 0 {
		return -1
	}
	return (size + pageSize - 1) / pageSize
}
