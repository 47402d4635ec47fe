package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentItemInput is the create/update body for a payment item.
type PaymentItemInput struct {
	Amount             decimal.Decimal  `json:"amount"`
	Date               time.Time        `json:"date" binding:"required"`
	Periodic           bool             `json:"periodic"`
	Description        *string          `json:"description" binding:"omitempty,max=1000,nosemicolon"`
	RecipientID        *uint            `json:"recipient_id"`
	CategoryIDs        []uint           `json:"category_ids"`
	StandardCategoryID *uint            `json:"standard_category_id"`
	TransactionFee     *decimal.Decimal `json:"transaction_fee"`
}

// RecipientInput is the create/update body for a recipient.
type RecipientInput struct {
	Name    string  `json:"name" binding:"required,max=255,nosemicolon"`
	Address *string `json:"address" binding:"omitempty,max=500,nosemicolon"`
}

// CategoryInput is the create body for a category.
type CategoryInput struct {
	Name     string  `json:"name" binding:"required,max=255,nosemicolon"`
	TypeID   uint    `json:"type_id" binding:"required"`
	ParentID *uint   `json:"parent_id"`
	IconFile *string `json:"icon_file" binding:"omitempty,max=255"`
}

// CategoryUpdate is the update body for a category. Nil fields are left
// unchanged; ClearParent turns the category into a root.
type CategoryUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255,nosemicolon"`
	ParentID    *uint   `json:"parent_id"`
	ClearParent bool    `json:"clear_parent"`
	IconFile    *string `json:"icon_file" binding:"omitempty,max=255"`
}

// CategoryTypeInput is the create body for a category type.
type CategoryTypeInput struct {
	Name        string  `json:"name" binding:"required,max=255,nosemicolon"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// RegisterInput is the body of the registration endpoint.
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Surname  string `json:"surname" binding:"max=255"`
	Prename  string `json:"prename" binding:"max=255"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UploadResult is returned by the icon upload endpoint.
type UploadResult struct {
	Filename string `json:"filename"`
}

// ImportResult summarises a CSV import.
type ImportResult struct {
	CreatedPayments   int `json:"created_payments"`
	CreatedRecipients int `json:"created_recipients"`
	UpdatedRecipients int `json:"updated_recipients"`
	CreatedCategories int `json:"created_categories"`
}
