// Package paginate slices a bucket into fixed-size pages. Pages are
// 1-based. An out-of-range page yields an empty slice, never an error: the
// underlying set can shrink between the caller picking a page and rendering
// it, and the caller shows a "no records" placeholder in that case.
package paginate

type Pager[T any] struct {
	size int
}

func New[T any](size int) Pager[T] {
	if size < 1 {
		size = 1
	}
	return Pager[T]{size: size}
}

// Page returns the items for the given 1-based page. Pages below 1 are
// treated as page 1.
func (p Pager[T]) Page(items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.size
	if start >= len(items) {
		return nil
	}
	end := start + p.size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(n / size).
func (p Pager[T]) TotalPages(n int) int {
	return (n + p.size - 1) / p.size
}
