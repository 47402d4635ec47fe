package services

import (
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"financebook/internal/csvio"
	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
	"financebook/internal/models"
	"financebook/internal/validator"
)

// importService turns CSV exports back into payment items.
type importService struct {
	db *gorm.DB
}

// NewImportService creates a new ImportServicer.
func NewImportService(db *gorm.DB) ImportServicer {
	return &importService{db: db}
}

// importRun carries the lookups of a single import.
type importRun struct {
	tx         *gorm.DB
	userID     uint
	standard   *models.CategoryType
	recipients map[string]*models.Recipient
	categories map[string]*models.Category
	result     models.ImportResult
}

// ImportCSV creates one payment item per valid row. Recipients are matched
// by name and created when missing; categories are matched by name within
// the standard type. Malformed rows are skipped. The import is atomic.
func (s *importService) ImportCSV(userID uint, r io.Reader) (*models.ImportResult, error) {
	rows, skipped, err := csvio.Parse(r)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("could not read CSV: %v", err))
	}

	var run *importRun
	err = s.db.Transaction(func(tx *gorm.DB) error {
		standard, _, err := ensureStandardType(tx, userID)
		if err != nil {
			return err
		}
		run = &importRun{
			tx:         tx,
			userID:     userID,
			standard:   standard,
			recipients: make(map[string]*models.Recipient),
			categories: make(map[string]*models.Category),
		}
		for _, row := range rows {
			if err := run.add(row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("csv import finished",
		"user_id", userID,
		"created_payments", run.result.CreatedPayments,
		"created_recipients", run.result.CreatedRecipients,
		"updated_recipients", run.result.UpdatedRecipients,
		"created_categories", run.result.CreatedCategories,
		"skipped_rows", skipped,
	)
	return &run.result, nil
}

func (run *importRun) add(row csvio.Row) error {
	item := &models.PaymentItem{
		UserID:   run.userID,
		Amount:   row.Amount,
		Date:     row.Date,
		Periodic: row.Periodic,
	}
	if row.Description != "" {
		description := row.Description
		item.Description = &description
	}

	if name := validator.NormalizeWhitespace(row.RecipientName); name != "" {
		recipient, err := run.recipient(name, row.RecipientAddress)
		if err != nil {
			return err
		}
		item.RecipientID = &recipient.ID
	}

	category, err := run.category(validator.NormalizeWhitespace(row.CategoryName))
	if err != nil {
		return err
	}
	item.StandardCategoryID = &category.ID

	if err := run.tx.Omit(clause.Associations).Create(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := replaceCategories(run.tx, item, []models.Category{*category}); err != nil {
		return err
	}
	run.result.CreatedPayments++
	return nil
}

// recipient finds or creates a recipient, filling in a missing address.
func (run *importRun) recipient(name, address string) (*models.Recipient, error) {
	recipient, ok := run.recipients[name]
	if !ok {
		var found models.Recipient
		err := run.tx.Where("user_id = ? AND name = ?", run.userID, name).First(&found).Error
		switch {
		case err == nil:
			recipient = &found
		case errors.Is(err, gorm.ErrRecordNotFound):
			recipient = &models.Recipient{UserID: run.userID, Name: name, Address: trimmedOrNil(&address)}
			if err := run.tx.Create(recipient).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			run.result.CreatedRecipients++
		default:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		run.recipients[name] = recipient
	}

	if recipient.AddressOrEmpty() == "" {
		if filled := trimmedOrNil(&address); filled != nil {
			if err := run.tx.Model(recipient).Update("address", *filled).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			recipient.Address = filled
			run.result.UpdatedRecipients++
		}
	}
	return recipient, nil
}

// category finds or creates a standard category. An empty name maps to
// UNCLASSIFIED.
func (run *importRun) category(name string) (*models.Category, error) {
	if name == "" {
		name = models.UnclassifiedCategoryName
	}
	if c, ok := run.categories[name]; ok {
		return c, nil
	}

	var c *models.Category
	if name == models.UnclassifiedCategoryName {
		unclassified, err := ensureUnclassified(run.tx, run.userID)
		if err != nil {
			return nil, err
		}
		c = unclassified
	} else {
		var found models.Category
		err := run.tx.Where("user_id = ? AND type_id = ? AND name = ?", run.userID, run.standard.ID, name).First(&found).Error
		switch {
		case err == nil:
			c = &found
		case errors.Is(err, gorm.ErrRecordNotFound):
			c = &models.Category{UserID: run.userID, Name: name, TypeID: run.standard.ID}
			if err := run.tx.Create(c).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			run.result.CreatedCategories++
		default:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	run.categories[name] = c
	return c, nil
}
