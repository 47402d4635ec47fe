// Package csvio reads and writes the semicolon-separated payment export.
package csvio

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Delimiter separates fields. Text fields may not contain it.
const Delimiter = ';'

// DateLayout is the date-only format used in the date column.
const DateLayout = "2006-01-02"

// Column indexes.
const (
	ColAmount = iota
	ColDate
	ColDescription
	ColRecipientName
	ColRecipientAddress
	ColCategoryName
	ColPeriodic

	columnCount
)

// Header is the exact first line of an export.
var Header = []string{
	"amount",
	"date",
	"description",
	"Recipient name",
	"Recipient address",
	"standard_category name",
	"periodic",
}

// Row is one payment in its exported form.
type Row struct {
	Amount           decimal.Decimal
	Date             time.Time
	Description      string
	RecipientName    string
	RecipientAddress string
	CategoryName     string
	Periodic         bool
}

// Filename returns the export file name for the given day.
func Filename(now time.Time) string {
	return "payment_items_" + now.UTC().Format(DateLayout) + ".csv"
}

// EscapeField normalizes line breaks to \n and quotes the value when it
// contains a quote, the delimiter or a newline. Inner quotes are doubled.
func EscapeField(raw string) string {
	v := strings.ReplaceAll(raw, "\r\n", "\n")
	v = strings.ReplaceAll(v, "\r", "\n")
	quote := strings.ContainsAny(v, "\";\n")
	v = strings.ReplaceAll(v, `"`, `""`)
	if quote {
		return `"` + v + `"`
	}
	return v
}

func parsePeriodic(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
