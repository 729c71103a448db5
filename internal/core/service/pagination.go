package service

const maxLimit = 100

// normalizePage floors the requested page to 1.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampLimit resolves the page size. Zero means the request did not name
// one, so the per-resource default applies; explicit values are floored to 1
// and capped at maxLimit.
func clampLimit(limit, def int) int {
	if limit == 0 {
		return def
	}
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// totalPages is ceil(total/limit) over the filtered set before pagination.
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
