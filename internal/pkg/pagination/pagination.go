package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Params is a normalised page request: Page is 1-based and PerPage is
// clamped to MaxPerPage.
type Params struct {
	Page    int
	PerPage int
}

func NewParams(page, perPage int) Params {
	return Params{
		Page:    max(page, DefaultPage),
		PerPage: clampPerPage(perPage),
	}
}

func clampPerPage(perPage int) int {
	switch {
	case perPage < 1:
		return DefaultPerPage
	case perPage > MaxPerPage:
		return MaxPerPage
	default:
		return perPage
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Window returns the [start, end) slice bounds of this page over total
// items. Pages past the end yield an empty window.
func (p Params) Window(total int) (start, end int) {
	start = min(p.Offset(), total)
	end = min(start+p.Limit(), total)
	return start, end
}

type Info struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func NewInfo(p Params, totalItems int) *Info {
	totalPages := max((totalItems+p.PerPage-1)/p.PerPage, 1)
	return &Info{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
