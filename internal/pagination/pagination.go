package pagination

// DefaultPerPage is used whenever a caller passes a non-positive page size.
const DefaultPerPage = 10

type Page[T any] struct {
	Items       []T   `json:"items"`
	Number      int   `json:"number"`
	TotalCount  int64 `json:"total_count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// Window translates a 1-indexed page number into a LIMIT/OFFSET pair.
// A page below 1 is treated as the first page, a page beyond the range is
// clamped to the last non-empty page instead of erroring.
func Window(total int64, perPage int, page int) (limit int, offset int, current int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	current = clamp(total, perPage, page)
	return perPage, (current - 1) * perPage, current
}

// New builds a Page around items already sliced for the given (clamped) page number.
func New[T any](items []T, total int64, perPage int, current int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:       items,
		Number:      current,
		TotalCount:  total,
		HasNext:     current < lastPage(total, perPage),
		HasPrevious: current > 1,
	}
}

func clamp(total int64, perPage int, page int) int {
	if page < 1 {
		page = 1
	}
	if last := lastPage(total, perPage); page > last {
		page = last
	}
	return page
}

func lastPage(total int64, perPage int) int {
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return last
}
