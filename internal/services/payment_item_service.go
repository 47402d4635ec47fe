package services

import (
	"errors"
	"io"
	"unicode/utf8"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"financebook/internal/categorytree"
	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
	"financebook/internal/models"
	"financebook/internal/storage"
	"financebook/internal/validator"
)

// paymentItemService handles payment item business logic.
type paymentItemService struct {
	db    *gorm.DB
	files FileStorer
}

// NewPaymentItemService creates a new PaymentItemServicer. Invoices are
// kept in files.
func NewPaymentItemService(db *gorm.DB, files FileStorer) PaymentItemServicer {
	return &paymentItemService{db: db, files: files}
}

// ListPaymentItems returns the user's payment items, newest first.
// Category filters include every descendant of the given categories.
func (s *paymentItemService) ListPaymentItems(userID uint, filter models.PaymentItemFilter) ([]models.PaymentItem, error) {
	if filter.ExpenseOnly && filter.IncomeOnly {
		return nil, apperrors.ErrInvalidFilter
	}

	query := s.preload(s.db).Where("payment_items.user_id = ?", userID)
	switch {
	case filter.ExpenseOnly:
		query = query.Where("payment_items.amount < 0")
	case filter.IncomeOnly:
		query = query.Where("payment_items.amount >= 0")
	}

	if len(filter.CategoryIDs) > 0 {
		categories, err := listCategories(s.db, userID)
		if err != nil {
			return nil, err
		}
		ids := categorytree.New(categories).ExpandWithDescendants(filter.CategoryIDs)
		linked := s.db.Table("payment_item_categories").Select("payment_item_id").Where("category_id IN ?", ids)
		query = query.Where("payment_items.id IN (?)", linked)
	}

	items := []models.PaymentItem{}
	if err := query.Order("payment_items.date DESC, payment_items.id DESC").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// GetPaymentItem retrieves a payment item with its recipient and categories.
func (s *paymentItemService) GetPaymentItem(userID, itemID uint) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := s.preload(s.db).Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// CreatePaymentItem creates a payment item. Without categories the item
// is filed under UNCLASSIFIED.
func (s *paymentItemService) CreatePaymentItem(userID uint, in models.PaymentItemInput) (*models.PaymentItem, error) {
	item := &models.PaymentItem{UserID: userID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		categories, err := s.apply(tx, userID, item, in)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return replaceCategories(tx, item, categories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetPaymentItem(userID, item.ID)
}

// UpdatePaymentItem replaces every field of a payment item except its invoice.
func (s *paymentItemService) UpdatePaymentItem(userID, itemID uint, in models.PaymentItemInput) (*models.PaymentItem, error) {
	item, err := s.GetPaymentItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		categories, err := s.apply(tx, userID, item, in)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return replaceCategories(tx, item, categories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetPaymentItem(userID, itemID)
}

// DeletePaymentItem deletes a payment item together with its invoice.
func (s *paymentItemService) DeletePaymentItem(userID, itemID uint) error {
	item, err := s.GetPaymentItem(userID, itemID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Association("Categories").Clear(); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.PaymentItem{}, item.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if item.HasInvoice() {
		s.removeInvoice(*item.InvoicePath)
	}
	return nil
}

// AttachInvoice stores r as the item's invoice, replacing the previous one.
func (s *paymentItemService) AttachInvoice(userID, itemID uint, filename string, r io.Reader) (*models.PaymentItem, error) {
	item, err := s.GetPaymentItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	name, err := s.files.SaveInvoice(item.ID, filename, r)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.PaymentItem{}).Where("id = ?", item.ID).Update("invoice_path", name).Error; err != nil {
		s.removeInvoice(name)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if item.HasInvoice() {
		s.removeInvoice(*item.InvoicePath)
	}

	return s.GetPaymentItem(userID, itemID)
}

// DeleteInvoice detaches and removes the item's invoice.
func (s *paymentItemService) DeleteInvoice(userID, itemID uint) error {
	item, err := s.GetPaymentItem(userID, itemID)
	if err != nil {
		return err
	}
	if !item.HasInvoice() {
		return apperrors.ErrInvoiceNotFound
	}

	if err := s.db.Model(&models.PaymentItem{}).Where("id = ?", item.ID).Update("invoice_path", nil).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.removeInvoice(*item.InvoicePath)
	return nil
}

// InvoiceFile returns the on-disk path of the item's invoice and the name
// it is downloaded under.
func (s *paymentItemService) InvoiceFile(userID, itemID uint) (string, string, error) {
	item, err := s.GetPaymentItem(userID, itemID)
	if err != nil {
		return "", "", err
	}
	if !item.HasInvoice() {
		return "", "", apperrors.ErrInvoiceNotFound
	}

	path, err := s.files.InvoicePath(*item.InvoicePath)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", apperrors.ErrInvoiceNotFound
		}
		return "", "", err
	}
	return path, storage.DownloadName(item.ID, *item.InvoicePath), nil
}

func (s *paymentItemService) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Recipient").Preload("StandardCategory").Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("categories.id")
	})
}

// apply copies in onto item and resolves the item's categories.
func (s *paymentItemService) apply(tx *gorm.DB, userID uint, item *models.PaymentItem, in models.PaymentItemInput) ([]models.Category, error) {
	if in.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	description := trimmedOrNil(in.Description)
	if description != nil {
		if validator.ContainsSemicolon(*description) {
			return nil, apperrors.ErrInvalidCharacter
		}
		if utf8.RuneCountInString(*description) > 1000 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description exceeds 1000 characters")
		}
	}

	if in.RecipientID != nil {
		if _, err := NewRecipientService(tx).GetRecipient(userID, *in.RecipientID); err != nil {
			return nil, err
		}
	}

	categories, err := resolveCategories(tx, userID, categoryIDs(in))
	if err != nil {
		return nil, err
	}
	standardID, err := standardCategoryID(tx, userID, categories)
	if err != nil {
		return nil, err
	}

	item.Amount = in.Amount
	item.Date = in.Date
	item.Periodic = in.Periodic
	item.Description = description
	item.RecipientID = in.RecipientID
	item.StandardCategoryID = standardID
	item.TransactionFee = nil
	if in.TransactionFee != nil {
		fee := models.NormalizeFee(*in.TransactionFee)
		item.TransactionFee = &fee
	}

	item.Recipient = nil
	item.StandardCategory = nil
	item.Categories = nil
	return categories, nil
}

func (s *paymentItemService) removeInvoice(name string) {
	if err := s.files.DeleteInvoice(name); err != nil {
		logger.Get().Warnw("failed to delete invoice file", "file", name, "error", err)
	}
}

// categoryIDs returns the requested category ids, deduplicated, with the
// standard category appended when it is not already listed.
func categoryIDs(in models.PaymentItemInput) []uint {
	ids := append([]uint(nil), in.CategoryIDs...)
	if in.StandardCategoryID != nil {
		ids = append(ids, *in.StandardCategoryID)
	}

	seen := make(map[uint]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// resolveCategories loads ids for the user and enforces one category per
// type. An empty list resolves to UNCLASSIFIED.
func resolveCategories(tx *gorm.DB, userID uint, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		unclassified, err := ensureUnclassified(tx, userID)
		if err != nil {
			return nil, err
		}
		return []models.Category{*unclassified}, nil
	}

	var categories []models.Category
	if err := tx.Where("user_id = ? AND id IN ?", userID, ids).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(categories) != len(ids) {
		return nil, apperrors.ErrCategoryNotFound
	}

	seenTypes := make(map[uint]bool, len(categories))
	for _, c := range categories {
		if seenTypes[c.TypeID] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only one category per type is allowed")
		}
		seenTypes[c.TypeID] = true
	}
	return categories, nil
}

// standardCategoryID picks the category of the standard type. A user without
// a type named standard falls back to their first type.
func standardCategoryID(tx *gorm.DB, userID uint, categories []models.Category) (*uint, error) {
	standard, found, err := findCategoryType(tx, userID, models.StandardCategoryTypeName)
	if err != nil {
		return nil, err
	}
	if !found {
		var first models.CategoryType
		err := tx.Where("user_id = ?", userID).Order("id").First(&first).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		standard = &first
	}
	for _, c := range categories {
		if c.TypeID == standard.ID {
			id := c.ID
			return &id, nil
		}
	}
	return nil, nil
}

func replaceCategories(tx *gorm.DB, item *models.PaymentItem, categories []models.Category) error {
	if err := tx.Model(item).Association("Categories").Replace(categories); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
