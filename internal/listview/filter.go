// Package listview derives the summary and statistics views of payment
// items: URL-backed filter state, sorting, pagination, footer totals,
// per-category breakdowns and the running balance.
//
// Everything here is a pure function of its inputs. The only state is
// the State value, whose transitions reset the page whenever the filter
// or sort order changes.
package listview

import (
	"net/url"
	"strconv"

	"financebook/internal/models"
)

// ViewFilter selects which payment items a view shows.
type ViewFilter string

const (
	FilterAll      ViewFilter = "all"
	FilterExpenses ViewFilter = "expenses"
	FilterIncomes  ViewFilter = "incomes"
	FilterFees     ViewFilter = "fees"
)

// URL query parameter names.
const (
	ParamFilter     = "filter"
	ParamCategories = "categories"
)

// ParseViewFilter maps a raw value to a ViewFilter. Unknown values map to
// FilterAll.
func ParseViewFilter(raw string) ViewFilter {
	switch v := ViewFilter(raw); v {
	case FilterExpenses, FilterIncomes, FilterFees:
		return v
	}
	return FilterAll
}

// FilterState is the part of the view state that lives in the URL.
type FilterState struct {
	View        ViewFilter
	CategoryIDs []uint
}

// DecodeFilterState reads a FilterState from query parameters. Category
// values that are not positive integers are ignored; duplicates collapse
// to their first occurrence.
func DecodeFilterState(q url.Values) FilterState {
	f := FilterState{View: ParseViewFilter(q.Get(ParamFilter))}

	seen := map[uint]bool{}
	for _, raw := range q[ParamCategories] {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			continue
		}
		id := uint(n)
		if seen[id] {
			continue
		}
		seen[id] = true
		f.CategoryIDs = append(f.CategoryIDs, id)
	}
	return f
}

// Encode writes f as query parameters. FilterAll is written as the absence
// of the filter parameter.
func (f FilterState) Encode() url.Values {
	q := url.Values{}
	f.EncodeInto(q)
	return q
}

// EncodeInto replaces the filter parameters in q, leaving others alone.
func (f FilterState) EncodeInto(q url.Values) {
	q.Del(ParamFilter)
	q.Del(ParamCategories)

	if v := ParseViewFilter(string(f.View)); v != FilterAll {
		q.Set(ParamFilter, string(v))
	}
	for _, id := range f.CategoryIDs {
		q.Add(ParamCategories, strconv.FormatUint(uint64(id), 10))
	}
}

// Equal reports whether two states select the same items, treating the
// category list as a set.
func (f FilterState) Equal(other FilterState) bool {
	if ParseViewFilter(string(f.View)) != ParseViewFilter(string(other.View)) {
		return false
	}
	a, b := idSet(f.CategoryIDs), idSet(other.CategoryIDs)
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// WithView returns a copy of f with a different view filter.
func (f FilterState) WithView(v ViewFilter) FilterState {
	f.View = v
	f.CategoryIDs = append([]uint(nil), f.CategoryIDs...)
	return f
}

// ToggleCategory returns a copy of f with id added, or removed if present.
func (f FilterState) ToggleCategory(id uint) FilterState {
	out := FilterState{View: f.View}
	removed := false
	for _, existing := range f.CategoryIDs {
		if existing == id {
			removed = true
			continue
		}
		out.CategoryIDs = append(out.CategoryIDs, existing)
	}
	if !removed {
		out.CategoryIDs = append(out.CategoryIDs, id)
	}
	return out
}

// ServerFilter maps the state onto the server-side listing filter. The
// fees view is applied client-side and sends neither flag.
func (f FilterState) ServerFilter() models.PaymentItemFilter {
	q := models.PaymentItemFilter{CategoryIDs: append([]uint(nil), f.CategoryIDs...)}
	switch ParseViewFilter(string(f.View)) {
	case FilterExpenses:
		q.ExpenseOnly = true
	case FilterIncomes:
		q.IncomeOnly = true
	}
	return q
}

func idSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
