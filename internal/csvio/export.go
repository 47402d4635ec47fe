package csvio

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"financebook/internal/logger"
	"financebook/internal/models"
)

// Lookup resolves the recipient and standard category of an item.
type Lookup interface {
	Recipient(ctx context.Context, id uint) (*models.Recipient, error)
	Category(ctx context.Context, id uint) (*models.Category, error)
}

// Exporter turns payment items into export rows.
type Exporter struct {
	lookup Lookup
	log    *zap.SugaredLogger
}

// NewExporter creates an exporter backed by lookup.
func NewExporter(lookup Lookup) *Exporter {
	return &Exporter{lookup: lookup, log: logger.Named("csvio")}
}

// Rows resolves names for every item and returns rows sorted by date,
// oldest first. A failed lookup leaves the field empty and is logged.
func (e *Exporter) Rows(ctx context.Context, items []models.PaymentItem) []Row {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.PaymentItem) int {
		return a.Date.Compare(b.Date)
	})

	rows := make([]Row, 0, len(sorted))
	for _, item := range sorted {
		row := Row{
			Amount:      item.Amount,
			Date:        item.Date.UTC(),
			Description: item.DescriptionOrEmpty(),
			Periodic:    item.Periodic,
		}

		if item.RecipientID != nil {
			r, err := e.lookup.Recipient(ctx, *item.RecipientID)
			if err != nil {
				e.log.Warnw("Recipient lookup failed during export",
					"payment_item_id", item.ID,
					"recipient_id", *item.RecipientID,
					"error", err,
				)
			} else {
				row.RecipientName = r.Name
				row.RecipientAddress = r.AddressOrEmpty()
			}
		}

		if item.StandardCategoryID != nil {
			c, err := e.lookup.Category(ctx, *item.StandardCategoryID)
			if err != nil {
				e.log.Warnw("Category lookup failed during export",
					"payment_item_id", item.ID,
					"category_id", *item.StandardCategoryID,
					"error", err,
				)
			} else {
				row.CategoryName = c.Name
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// Export writes the items as CSV to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer, items []models.PaymentItem) error {
	return Write(w, e.Rows(ctx, items))
}

// Encode renders the header and rows as one document. Lines are joined
// with \r\n and there is no trailing line break.
func Encode(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(Header, string(Delimiter)))
	for _, r := range rows {
		fields := []string{
			r.Amount.String(),
			r.Date.Format(DateLayout),
			r.Description,
			r.RecipientName,
			r.RecipientAddress,
			r.CategoryName,
			strconv.FormatBool(r.Periodic),
		}
		for i, f := range fields {
			fields[i] = EscapeField(f)
		}
		lines = append(lines, strings.Join(fields, string(Delimiter)))
	}
	return strings.Join(lines, "\r\n")
}

// Write encodes rows to w.
func Write(w io.Writer, rows []Row) error {
	if _, err := io.WriteString(w, Encode(rows)); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
