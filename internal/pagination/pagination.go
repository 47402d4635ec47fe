// Package pagination slices in-memory result sets into page windows.
// Pages are zero-based: page 0 is the first window.
package pagination

import (
	"math"
)

// PageRequest identifies one page window.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=0"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// DefaultPageSize is used when no page size is given.
const DefaultPageSize = 10

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
}

// Offset returns the index of the first item on the current page.
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: TotalPages(int(totalItems), pageSize),
	}
}

// TotalPages returns ceil(total / pageSize), or 0 for a non-positive page size.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Slice returns the window [Page*PageSize, Page*PageSize+PageSize) of items,
// clipped to the slice bounds.
func Slice[T any](items []T, req PageRequest) []T {
	req.Defaults()
	start := req.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Paginate slices items and wraps the window with metadata.
func Paginate[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()
	return NewPageResponse(Slice(items, req), req.Page, req.PageSize, int64(len(items)))
}
