package usecase

// NormalizePage maps any page below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// ClampPageSize applies the default when unset and clamps the result to
// [1, max].
func ClampPageSize(size, def, max int) int {
	if size <= 0 {
		size = def
	}
	if size < 1 {
		size = 1
	}
	if size > max {
		size = max
	}

	return size
}

// TotalPages computes the ceiling of totalItem / pageSize. A page size
// of zero yields zero pages rather than a division panic.
func TotalPages(totalItem int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}

	size := int64(pageSize)

	return (totalItem + size - 1) / size
}
