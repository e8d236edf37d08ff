package models

// ListParams are the query parameters shared by every list endpoint.
// Filters carries entity-specific narrowing criteria, keyed by the query
// parameter name the API accepts for them.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// Filter returns the value of a named filter, or "" when unset.
func (p ListParams) Filter(key string) string {
	return p.Filters[key]
}

const (
	DefaultPerPage = 25
	MaxPerPage     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Normalize clamps the pagination window and sort direction. Unknown sort
// fields are resolved against the per-entity whitelist in the repositories.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.SortDir != SortAsc && p.SortDir != SortDesc {
		p.SortDir = SortAsc
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ListMeta is the pagination descriptor returned next to every list.
type ListMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// NewListMeta derives the descriptor from a total row count. LastPage is
// never below 1 so an empty list still renders one page.
func NewListMeta(page, perPage, total int) ListMeta {
	last := (total + perPage - 1) / perPage
	if last < 1 {
		last = 1
	}
	return ListMeta{CurrentPage: page, LastPage: last, Total: total}
}
