package listview

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financebook/internal/models"
)

// UncategorisedLabel names the group of items without a usable category.
const UncategorisedLabel = "Uncategorised"

// CategoryAmount is one slice of a category breakdown.
type CategoryAmount struct {
	Name  string
	Value decimal.Decimal
}

// Breakdown holds the per-category totals of incomes and expenses.
type Breakdown struct {
	Income  []CategoryAmount
	Expense []CategoryAmount
}

// CategoryName resolves the display category of an item. Only the first
// available source is consulted: standard_category_id in names, else the
// embedded standard category, else the first assigned category. A source
// that yields UNCLASSIFIED or nothing gives UncategorisedLabel.
func CategoryName(it models.PaymentItem, names map[uint]string) string {
	var name string
	switch {
	case it.StandardCategoryID != nil:
		name = names[*it.StandardCategoryID]
	case it.StandardCategory != nil:
		name = it.StandardCategory.Name
	case len(it.Categories) > 0:
		name = it.Categories[0].Name
	}
	if name == "" || name == models.UnclassifiedCategoryName {
		return UncategorisedLabel
	}
	return name
}

// GroupByCategory accumulates |amount| per display category, separately for
// incomes and expenses, each sorted by value descending.
func GroupByCategory(items []models.PaymentItem, names map[uint]string) Breakdown {
	income := map[string]decimal.Decimal{}
	expense := map[string]decimal.Decimal{}

	for _, it := range items {
		name := CategoryName(it, names)
		bucket := income
		if it.IsExpense() {
			bucket = expense
		}
		bucket[name] = bucket[name].Add(it.Amount.Abs())
	}

	return Breakdown{Income: ranked(income), Expense: ranked(expense)}
}

func ranked(groups map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(groups))
	for name, value := range groups {
		out = append(out, CategoryAmount{Name: name, Value: value.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Sum adds up the values of a group.
func Sum(group []CategoryAmount) decimal.Decimal {
	total := decimal.Zero
	for _, g := range group {
		total = total.Add(g.Value)
	}
	return total
}

// Share returns value as a percentage of total, rounded to one decimal.
func Share(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}

// BalancePoint is one step of the running balance.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// BalanceTimeline sorts items oldest first and returns the cumulative
// balance after each item, rounded to cents.
func BalanceTimeline(items []models.PaymentItem) []BalancePoint {
	sorted := SortByDate(items, SortAsc)
	out := make([]BalancePoint, 0, len(sorted))

	running := decimal.Zero
	for _, it := range sorted {
		running = running.Add(it.Amount)
		out = append(out, BalancePoint{Date: it.Date, Balance: running.Round(2)})
	}
	return out
}
