package domain

import "strings"

// DefaultPageSize applies when a caller asks for a page size below 1.
const DefaultPageSize = 10

// Sort directions accepted by paged search.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageQuery is a paged search request after normalisation.
type PageQuery struct {
	Filter        string
	SortDirection string
	PageSize      int
	Page          int
}

// NewPageQuery normalises raw paging input. Any non-blank direction other
// than "desc" sorts ascending; a blank one sorts descending.
func NewPageQuery(filter, direction string, pageSize, page int) PageQuery {
	sort := SortDesc
	if d := strings.TrimSpace(direction); d != "" && d != SortDesc {
		sort = SortAsc
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return PageQuery{
		Filter:        strings.TrimSpace(filter),
		SortDirection: sort,
		PageSize:      pageSize,
		Page:          page,
	}
}

// Offset is the number of rows skipped before this page.
func (q PageQuery) Offset() int {
	if q.Page > 0 {
		return (q.Page - 1) * q.PageSize
	}
	return 0
}

// Page is one page of search results.
type Page[T any] struct {
	CurrentPage    int            `json:"currentPage"`
	PageSize       int            `json:"pageSize"`
	TotalResults   int64          `json:"totalResults"`
	SortFields     string         `json:"sortFields,omitempty"`
	SortDirections string         `json:"sortDirections"`
	Filters        map[string]any `json:"filters,omitempty"`
	List           []T            `json:"list"`
}
