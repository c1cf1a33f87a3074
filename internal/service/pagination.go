package service

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps page and page size and returns the matching limit and offset
func normalizePage(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}
