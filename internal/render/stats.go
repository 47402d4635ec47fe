package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"financebook/internal/listview"
)

// Stats renders the income and expense breakdowns and the final running
// balance.
func (r *Renderer) Stats(b listview.Breakdown, timeline []listview.BalancePoint) string {
	sections := []string{
		r.group("Income", b.Income, r.styles.Income),
		r.group("Expenses", b.Expense, r.styles.Expense),
		r.balance(timeline),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) group(title string, group []listview.CategoryAmount, amount lipgloss.Style) string {
	var out strings.Builder
	out.WriteString(r.styles.Title.Render(title))
	out.WriteString("\n")

	if len(group) == 0 {
		out.WriteString(r.styles.Muted.Render("No data."))
		out.WriteString("\n")
		return out.String()
	}

	total := listview.Sum(group)
	rows := make([][]string, 0, len(group))
	for _, g := range group {
		rows = append(rows, []string{
			g.Name,
			listview.FormatEUR(g.Value),
			listview.Share(g.Value, total).StringFixed(1) + "%",
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Category", "Amount", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			if col == 1 {
				return amount.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	out.WriteString(t.String())
	out.WriteString("\n")
	out.WriteString(r.styles.Total.Render("Total: " + listview.FormatEUR(total)))
	out.WriteString("\n")
	return out.String()
}

func (r *Renderer) balance(timeline []listview.BalancePoint) string {
	if len(timeline) == 0 {
		return r.styles.Muted.Render("Balance: no payments yet.")
	}
	first, last := timeline[0], timeline[len(timeline)-1]
	style := r.styles.Income
	if last.Balance.IsNegative() {
		style = r.styles.Expense
	}
	return r.styles.Total.Render("Balance: ") + style.Render(listview.FormatEUR(last.Balance)) +
		r.styles.Muted.Render(r.printer.Sprintf(" (%s from %s to %s)",
			r.count(len(timeline), "payment", "payments"),
			first.Date.Format("2006-01-02"), last.Date.Format("2006-01-02")))
}
