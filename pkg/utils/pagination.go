package utils

const MaxLimit = 500

// Paginate slices items by offset/limit. A zero limit returns everything after offset.
func Paginate[T any](items []T, limit, offset uint64) []T {
	if offset >= uint64(len(items)) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < uint64(len(items)) {
		items = items[:limit]
	}
	return items
}
