// Package form implements the payment item form: a draft value with a
// pure submission transform, validation, the inline recipient and
// category sub-protocols, and the submit-then-upload saga.
package form

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// Draft is the editable state of one payment item. Amount is the raw text
// the user typed; its sign comes from Positive.
type Draft struct {
	ID           *uint
	Amount       string
	Positive     bool
	Description  string
	Periodic     bool
	OriginalDate time.Time
	RecipientID  *uint
	CategoryID   *uint
	Fee          *decimal.Decimal
}

// NewDraft returns an empty draft for a new item. The sign defaults to
// positive.
func NewDraft() Draft {
	return Draft{Positive: true}
}

// DraftFromItem loads an existing item for editing.
func DraftFromItem(item models.PaymentItem) Draft {
	id := item.ID
	d := Draft{
		ID:           &id,
		Amount:       item.Amount.Abs().String(),
		Positive:     item.IsIncome(),
		Description:  item.DescriptionOrEmpty(),
		Periodic:     item.Periodic,
		OriginalDate: item.Date,
		RecipientID:  item.RecipientID,
		Fee:          item.TransactionFee,
	}

	switch {
	case item.StandardCategoryID != nil:
		d.CategoryID = item.StandardCategoryID
	default:
		for _, c := range item.Categories {
			if !c.IsUnclassified() {
				cid := c.ID
				d.CategoryID = &cid
				break
			}
		}
	}
	return d
}

// IsEdit reports whether the draft edits an existing item.
func (d Draft) IsEdit() bool {
	return d.ID != nil
}

// ParseAmount returns the typed magnitude, which must be a number > 0.
func (d Draft) ParseAmount() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil || !v.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return v, nil
}

// ToSubmission builds the request body: the sign is applied to the
// amount, new items are dated now and edits keep their date, and the
// description is trimmed with empty meaning none. The selected category
// is sent both as the only category and as the standard category.
func (d Draft) ToSubmission(now time.Time) (models.PaymentItemInput, error) {
	amount, err := d.ParseAmount()
	if err != nil {
		return models.PaymentItemInput{}, err
	}
	if !d.Positive {
		amount = amount.Neg()
	}

	in := models.PaymentItemInput{
		Amount:         amount,
		Date:           now,
		Periodic:       d.Periodic,
		RecipientID:    d.RecipientID,
		CategoryIDs:    []uint{},
		TransactionFee: d.Fee,
	}
	if d.IsEdit() && !d.OriginalDate.IsZero() {
		in.Date = d.OriginalDate
	}
	if desc := strings.TrimSpace(d.Description); desc != "" {
		in.Description = &desc
	}
	if d.CategoryID != nil {
		id := *d.CategoryID
		in.CategoryIDs = []uint{id}
		in.StandardCategoryID = &id
	}
	return in, nil
}
