package services

import (
	"io"

	"financebook/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password, surname, prename string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(username, password string) (*models.User, error)
}

// CategoryTypeServicer defines the contract for category type business logic.
type CategoryTypeServicer interface {
	ListCategoryTypes(userID uint) ([]models.CategoryType, error)
	GetCategoryType(userID, typeID uint) (*models.CategoryType, error)
	CreateCategoryType(userID uint, in models.CategoryTypeInput) (*models.CategoryType, error)
	EnsureStandardType(userID uint) (*models.CategoryType, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(userID uint) ([]models.Category, error)
	ListCategoriesByType(userID, typeID uint) ([]models.Category, error)
	GetCategory(userID, categoryID uint) (*models.Category, error)
	GetCategoryTree(userID, categoryID uint) (*models.Category, error)
	GetDescendants(userID, categoryID uint) ([]models.Category, error)
	CreateCategory(userID uint, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, in models.CategoryUpdate) (*models.Category, error)
}

// RecipientServicer defines the contract for recipient-related business logic.
type RecipientServicer interface {
	ListRecipients(userID uint) ([]models.Recipient, error)
	GetRecipient(userID, recipientID uint) (*models.Recipient, error)
	CreateRecipient(userID uint, in models.RecipientInput) (*models.Recipient, error)
	UpdateRecipient(userID, recipientID uint, in models.RecipientInput) (*models.Recipient, error)
}

// PaymentItemServicer defines the contract for payment item business logic,
// including the invoice attached to an item.
type PaymentItemServicer interface {
	ListPaymentItems(userID uint, filter models.PaymentItemFilter) ([]models.PaymentItem, error)
	GetPaymentItem(userID, itemID uint) (*models.PaymentItem, error)
	CreatePaymentItem(userID uint, in models.PaymentItemInput) (*models.PaymentItem, error)
	UpdatePaymentItem(userID, itemID uint, in models.PaymentItemInput) (*models.PaymentItem, error)
	DeletePaymentItem(userID, itemID uint) error
	AttachInvoice(userID, itemID uint, filename string, r io.Reader) (*models.PaymentItem, error)
	DeleteInvoice(userID, itemID uint) error
	InvoiceFile(userID, itemID uint) (path, downloadName string, err error)
}

// ImportServicer defines the contract for CSV imports.
type ImportServicer interface {
	ImportCSV(userID uint, r io.Reader) (*models.ImportResult, error)
}

// FileStorer is the document store behind invoices and icons.
type FileStorer interface {
	SaveInvoice(paymentItemID uint, filename string, r io.Reader) (string, error)
	InvoicePath(name string) (string, error)
	DeleteInvoice(name string) error
	SaveIcon(filename string, r io.Reader) (string, error)
	IconPath(name string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
