package pagination

const (
	// DefaultPerPage matches the admin order table's page size.
	DefaultPerPage = 10
	// MaxPerPage caps how many rows any page can request.
	MaxPerPage = 100
)

// Params holds page-number pagination inputs from controllers.
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the slice a page maps onto, echoed back to callers.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Normalize enforces the configured default and maximum page sizes.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Slice returns the [start, end) bounds of the requested page over total
// items, plus the metadata for the response. A page past the end yields an
// empty range rather than an error.
func Slice(p Params, total int) (int, int, Meta) {
	p = Normalize(p)

	totalPages := total / p.PerPage
	if total%p.PerPage != 0 {
		totalPages++
	}

	start := (p.Page - 1) * p.PerPage
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}

	return start, end, Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
