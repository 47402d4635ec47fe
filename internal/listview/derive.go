package listview

import (
	"sort"

	"github.com/shopspring/decimal"

	"financebook/internal/models"
	"financebook/internal/pagination"
)

// View is the derived, displayable state of a list page.
type View struct {
	Items      []models.PaymentItem
	Filtered   int
	Page       int
	PageSize   int
	TotalPages int
	Total      decimal.Decimal
}

// TotalLabel is the footer total formatted for display.
func (v View) TotalLabel() string {
	return FormatEUR(v.Total)
}

// Derive runs the full pipeline: view filter, date sort, page window and
// footer total. The total always covers every filtered item, never just
// the visible page.
func Derive(items []models.PaymentItem, s State) View {
	filtered := ApplyViewFilter(items, s.Filter.View)
	sorted := SortByDate(filtered, s.Sort)

	size := s.PageSize
	if size <= 0 {
		size = pagination.DefaultPageSize
	}
	page := min(max(0, s.Page), max(0, pagination.TotalPages(len(sorted), size)-1))
	window := pagination.Paginate(sorted, pagination.PageRequest{Page: page, PageSize: size})

	return View{
		Items:      window.Data,
		Filtered:   int(window.TotalItems),
		Page:       window.Page,
		PageSize:   window.PageSize,
		TotalPages: window.TotalPages,
		Total:      FooterTotal(sorted, s.Filter.View),
	}
}

// ApplyViewFilter keeps the items a view filter selects. Expense and income
// filtering normally happens on the server; repeating it here is a no-op
// on already-filtered data. The fees view only exists client-side.
func ApplyViewFilter(items []models.PaymentItem, v ViewFilter) []models.PaymentItem {
	out := make([]models.PaymentItem, 0, len(items))
	for _, it := range items {
		switch ParseViewFilter(string(v)) {
		case FilterExpenses:
			if !it.IsExpense() {
				continue
			}
		case FilterIncomes:
			if !it.IsIncome() {
				continue
			}
		case FilterFees:
			if !it.HasFee() {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// SortByDate returns a stably sorted copy; equal dates keep source order.
func SortByDate(items []models.PaymentItem, order SortOrder) []models.PaymentItem {
	out := append([]models.PaymentItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if order == SortAsc {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// FooterTotal sums fees in the fees view and amounts everywhere else.
func FooterTotal(filtered []models.PaymentItem, v ViewFilter) decimal.Decimal {
	total := decimal.Zero
	for _, it := range filtered {
		if ParseViewFilter(string(v)) == FilterFees {
			total = total.Add(it.Fee())
		} else {
			total = total.Add(it.Amount)
		}
	}
	return total
}

// FormatEUR renders an amount with two decimals and a euro sign.
func FormatEUR(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
