package pagination

const (
	// DefaultPage is the first page; pagination is 1-indexed.
	DefaultPage = 1
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any list query can request.
	MaxLimit = 100
)

// Params holds normalized page/limit inputs.
type Params struct {
	Page  int
	Limit int
}

// Normalize coerces page and limit to positive values, falling back to the
// defaults when the input is zero or negative.
func Normalize(page, limit int) Params {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit), never less than 1 so an empty result
// still renders as a single page.
func (p Params) TotalPages(total int64) int {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages < 1 {
		return 1
	}
	return pages
}
