package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"financebook/internal/listview"
	"financebook/internal/models"
)

// Names resolves ids to display names for a listing.
type Names struct {
	Categories map[uint]string
	Recipients map[uint]string
}

// Summary renders one page of the list view with its footer total.
func (r *Renderer) Summary(v listview.View, st listview.State, names Names) string {
	fees := st.Filter.View == listview.FilterFees

	headers := []string{"ID", "Date", "Description", "Recipient", "Category", "Amount"}
	if fees {
		headers = append(headers, "Fee")
	}
	headers = append(headers, "Invoice")

	rows := make([][]string, 0, len(v.Items))
	for _, it := range v.Items {
		row := []string{
			r.printer.Sprintf("%d", it.ID),
			it.Date.Format("2006-01-02"),
			it.DescriptionOrEmpty(),
			recipientName(it, names.Recipients),
			listview.CategoryName(it, names.Categories),
			listview.FormatEUR(it.Amount),
		}
		if fees {
			row = append(row, listview.FormatEUR(it.Fee()))
		}
		invoice := ""
		if it.HasInvoice() {
			invoice = "yes"
		}
		rows = append(rows, append(row, invoice))
	}

	amountCol := 5
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if col == amountCol && row >= 0 && row < len(v.Items) {
				if v.Items[row].IsExpense() {
					return s.Inherit(r.styles.Expense)
				}
				return s.Inherit(r.styles.Income)
			}
			return s
		})

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(r.viewTitle(st)))
	b.WriteString("\n")
	if len(st.Filter.CategoryIDs) > 0 {
		b.WriteString(r.styles.Muted.Render("Categories: " + categoryList(st.Filter.CategoryIDs, names.Categories)))
		b.WriteString("\n")
	}
	if v.Filtered == 0 {
		b.WriteString(r.styles.Muted.Render("No payment items found."))
		b.WriteString("\n")
	} else {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Muted.Render(r.footer(v, st)))
	b.WriteString("\n")
	b.WriteString(r.styles.Total.Render("Total: " + v.TotalLabel()))
	return b.String()
}

func (r *Renderer) viewTitle(st listview.State) string {
	view := listview.ParseViewFilter(string(st.Filter.View))
	return r.title.String(string(view)) + " (" + string(st.Sort) + ")"
}

func (r *Renderer) footer(v listview.View, st listview.State) string {
	pages := max(1, v.TotalPages)
	return r.printer.Sprintf("Page %d of %d · %s · %d per page",
		v.Page+1, pages, r.count(v.Filtered, "item", "items"), v.PageSize)
}

func recipientName(it models.PaymentItem, names map[uint]string) string {
	if it.RecipientID != nil {
		if name, ok := names[*it.RecipientID]; ok {
			return name
		}
	}
	if it.Recipient != nil {
		return it.Recipient.Name
	}
	return ""
}

func categoryList(ids []uint, names map[uint]string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, "#"+strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ", ")
}
