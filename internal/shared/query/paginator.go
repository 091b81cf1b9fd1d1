// Package query holds the pagination primitives used by the listing
// endpoints. Every listing uses a fixed window of 5 records per page.
package query

import "gestiontickets/internal/shared/constants"

// PageFilter is a 1-based page window. Pages below 1 are treated as page 1
// so the skip offset can never go negative.
type PageFilter struct {
	Page     int
	PageSize int
}

func NewPageFilter(page int) PageFilter {
	if page < 1 {
		page = constants.DefaultPage
	}
	return PageFilter{
		Page:     page,
		PageSize: constants.PageSize,
	}
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.PageSize
	}
	return f.PageSize
}

// Paginator carries the window metadata plus the filter values that produced
// it, so callers can rebuild pagination links that keep the filters applied.
type Paginator struct {
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
	Query      map[string]string `json:"query,omitempty"`
}

// NewPaginator builds the metadata for a filtered count. A total of zero
// yields zero pages; a page beyond the last simply describes an empty window.
func NewPaginator(filter PageFilter, total int64) Paginator {
	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	return Paginator{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		Total:      total,
		TotalPages: totalPages,
		Query:      map[string]string{},
	}
}

// Keep records a non-empty filter value so pagination links can carry it.
func (p *Paginator) Keep(name, value string) {
	if value == "" {
		return
	}
	if p.Query == nil {
		p.Query = map[string]string{}
	}
	p.Query[name] = value
}
