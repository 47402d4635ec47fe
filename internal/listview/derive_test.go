package listview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"financebook/internal/models"
)

var day0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func item(id uint, amount string, daysOffset int) models.PaymentItem {
	return models.PaymentItem{
		Base:   models.Base{ID: id},
		Amount: decimal.RequireFromString(amount),
		Date:   day0.AddDate(0, 0, daysOffset),
	}
}

func withFee(p models.PaymentItem, fee string) models.PaymentItem {
	f := decimal.RequireFromString(fee)
	p.TransactionFee = &f
	return p
}

func ids(items []models.PaymentItem) []uint {
	out := make([]uint, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestSortByDate_StableAndIdempotent(t *testing.T) {
	items := []models.PaymentItem{
		item(1, "10", 2),
		item(2, "-5", 0),
		item(3, "7", 2),
		item(4, "1", 1),
		item(5, "2", 2),
	}

	asc := SortByDate(items, SortAsc)
	if got := ids(asc); !equal(got, []uint{2, 4, 1, 3, 5}) {
		t.Errorf("asc = %v", got)
	}
	desc := SortByDate(items, SortDesc)
	if got := ids(desc); !equal(got, []uint{1, 3, 5, 4, 2}) {
		t.Errorf("desc = %v", got)
	}

	if !equal(ids(SortByDate(asc, SortAsc)), ids(asc)) {
		t.Error("sorting twice ascending is not idempotent")
	}
	if !equal(ids(SortByDate(desc, SortDesc)), ids(desc)) {
		t.Error("sorting twice descending is not idempotent")
	}
	if items[0].ID != 1 {
		t.Error("input slice must not be reordered")
	}
}

func TestDerive_TotalIgnoresPage(t *testing.T) {
	var items []models.PaymentItem
	for i := 0; i < 25; i++ {
		items = append(items, item(uint(i+1), "1.10", i))
	}

	s := NewState(FilterState{View: FilterAll}, 10)
	first := Derive(items, s)
	s.Next(first.TotalPages)
	s.Next(first.TotalPages)
	last := Derive(items, s)

	if first.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", first.TotalPages)
	}
	if len(first.Items) != 10 || len(last.Items) != 5 {
		t.Errorf("unexpected window sizes %d and %d", len(first.Items), len(last.Items))
	}
	if !first.Total.Equal(last.Total) || !first.Total.Equal(decimal.RequireFromString("27.50")) {
		t.Errorf("totals differ across pages: %s vs %s", first.Total, last.Total)
	}
	if first.Items[0].ID != 25 {
		t.Errorf("default order should be newest first, got id %d", first.Items[0].ID)
	}
}

func TestDerive_FeesView(t *testing.T) {
	items := []models.PaymentItem{
		withFee(item(1, "-20", 0), "0.004"),
		withFee(item(2, "-30", 1), "0.01"),
		item(3, "-40", 2),
	}

	s := NewState(FilterState{View: FilterFees}, 10)
	v := Derive(items, s)

	if got := ids(v.Items); !equal(got, []uint{2}) {
		t.Fatalf("fees view shows %v, want [2]", got)
	}
	if !v.Total.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("fees total = %s, want 0.01", v.Total)
	}
	if v.TotalLabel() != "0.01 €" {
		t.Errorf("unexpected label %q", v.TotalLabel())
	}
}

func TestApplyViewFilter(t *testing.T) {
	items := []models.PaymentItem{item(1, "-1", 0), item(2, "0", 0), item(3, "5", 0)}

	if got := ids(ApplyViewFilter(items, FilterExpenses)); !equal(got, []uint{1}) {
		t.Errorf("expenses = %v", got)
	}
	if got := ids(ApplyViewFilter(items, FilterIncomes)); !equal(got, []uint{2, 3}) {
		t.Errorf("incomes = %v", got)
	}
	if got := ids(ApplyViewFilter(items, FilterAll)); len(got) != 3 {
		t.Errorf("all = %v", got)
	}
}

func TestDerive_EmptyList(t *testing.T) {
	v := Derive(nil, NewState(FilterState{}, 10))
	if v.TotalPages != 0 || len(v.Items) != 0 || !v.Total.IsZero() {
		t.Errorf("unexpected view for empty list: %+v", v)
	}
	if v.TotalLabel() != "0.00 €" {
		t.Errorf("unexpected label %q", v.TotalLabel())
	}
}

func equal(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
