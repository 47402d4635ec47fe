package listview

import (
	"fmt"
	"strconv"
	"strings"

	"financebook/internal/pagination"
)

// SortOrder orders items by date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageSizeOptions are the preset page sizes offered next to "All".
var PageSizeOptions = []int{10, 20, 50, 100}

// State is the full list-view state: URL filter plus local sort and paging.
type State struct {
	Filter   FilterState
	Sort     SortOrder
	PageSize int
	Page     int
}

// NewState returns the initial state for a filter: newest first, page 0.
func NewState(filter FilterState, pageSize int) State {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return State{Filter: filter, Sort: SortDesc, PageSize: pageSize}
}

// SetFilter replaces the filter and resets the page if it changed.
func (s *State) SetFilter(f FilterState) {
	if !s.Filter.Equal(f) {
		s.Page = 0
	}
	s.Filter = f
}

// SetView changes the view filter.
func (s *State) SetView(v ViewFilter) {
	s.SetFilter(s.Filter.WithView(v))
}

// ToggleCategory adds or removes a category from the filter.
func (s *State) ToggleCategory(id uint) {
	s.SetFilter(s.Filter.ToggleCategory(id))
}

// SetSort changes the sort order and resets the page if it changed.
func (s *State) SetSort(o SortOrder) {
	if o != SortAsc {
		o = SortDesc
	}
	if s.Sort != o {
		s.Page = 0
	}
	s.Sort = o
}

// ToggleSort flips between ascending and descending.
func (s *State) ToggleSort() {
	if s.Sort == SortAsc {
		s.SetSort(SortDesc)
		return
	}
	s.SetSort(SortAsc)
}

// SetPageSize changes the page size and returns to the first page.
func (s *State) SetPageSize(n int) {
	if n <= 0 {
		n = pagination.DefaultPageSize
	}
	s.PageSize = n
	s.Page = 0
}

// ShowAll puts every filtered item on one page.
func (s *State) ShowAll(filteredCount int) {
	if filteredCount < 1 {
		filteredCount = 1
	}
	s.SetPageSize(filteredCount)
}

// Prev moves one page back, stopping at the first page.
func (s *State) Prev() {
	s.Page = max(0, s.Page-1)
}

// Next moves one page forward, stopping at the last page.
func (s *State) Next(totalPages int) {
	s.Page = max(0, min(totalPages-1, s.Page+1))
}

// JumpTo moves to a 1-based page number typed by the user.
func (s *State) JumpTo(input string, totalPages int) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > totalPages {
		return fmt.Errorf("page must be a number between 1 and %d", max(totalPages, 1))
	}
	s.Page = n - 1
	return nil
}

// ParsePageSize accepts a positive integer or "all" (returned as 0).
func ParsePageSize(raw string) (int, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "all" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("page size must be a positive number or \"all\"")
	}
	return n, nil
}
