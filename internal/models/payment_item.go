package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// FeeInclusionThreshold is the smallest fee shown in the fees view.
	FeeInclusionThreshold = decimal.RequireFromString("0.01")
)

// PaymentItem is a single income (amount >= 0) or expense (amount < 0).
type PaymentItem struct {
	Base
	UserID             uint             `gorm:"not null;index" json:"user_id"`
	Amount             decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date               time.Time        `gorm:"not null;index" json:"date"`
	Periodic           bool             `gorm:"not null;default:false" json:"periodic"`
	Description        *string          `gorm:"size:1000" json:"description"`
	RecipientID        *uint            `gorm:"index" json:"recipient_id"`
	StandardCategoryID *uint            `gorm:"index" json:"standard_category_id"`
	InvoicePath        *string          `gorm:"size:255" json:"invoice_path"`
	TransactionFee     *decimal.Decimal `gorm:"type:numeric(12,2)" json:"transaction_fee"`

	// Relationships
	Recipient        *Recipient `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	StandardCategory *Category  `gorm:"foreignKey:StandardCategoryID" json:"standard_category,omitempty"`
	Categories       []Category `gorm:"many2many:payment_item_categories" json:"categories"`
}

// IsExpense reports whether the item is an expense.
func (p PaymentItem) IsExpense() bool {
	return p.Amount.IsNegative()
}

// IsIncome reports whether the item is an income. Zero counts as income.
func (p PaymentItem) IsIncome() bool {
	return !p.Amount.IsNegative()
}

// HasInvoice reports whether an invoice document is attached.
func (p PaymentItem) HasInvoice() bool {
	return p.InvoicePath != nil && *p.InvoicePath != ""
}

// Fee returns the transaction fee, treating a missing fee as zero.
func (p PaymentItem) Fee() decimal.Decimal {
	if p.TransactionFee == nil {
		return decimal.Zero
	}
	return *p.TransactionFee
}

// HasFee reports whether the item belongs in the fees view.
func (p PaymentItem) HasFee() bool {
	return p.Fee().GreaterThanOrEqual(FeeInclusionThreshold)
}

// DescriptionOrEmpty returns the description, or "" when none is stored.
func (p PaymentItem) DescriptionOrEmpty() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// NormalizeFee rounds a fee to cents. Anything that rounds below one cent
// (raw values under 0.005) becomes zero.
func NormalizeFee(fee decimal.Decimal) decimal.Decimal {
	rounded := fee.Abs().Round(2)
	if rounded.LessThan(FeeInclusionThreshold) {
		return decimal.Zero
	}
	return rounded
}
