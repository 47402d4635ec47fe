package services

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/validator"
)

// recipientService handles recipient-related business logic.
type recipientService struct {
	db *gorm.DB
}

// NewRecipientService creates a new RecipientServicer.
func NewRecipientService(db *gorm.DB) RecipientServicer {
	return &recipientService{db: db}
}

// ListRecipients returns the user's recipients ordered by name.
func (s *recipientService) ListRecipients(userID uint) ([]models.Recipient, error) {
	recipients := []models.Recipient{}
	if err := s.db.Where("user_id = ?", userID).Order("name, id").Find(&recipients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipients, nil
}

// GetRecipient retrieves a recipient by ID for a specific user.
func (s *recipientService) GetRecipient(userID, recipientID uint) (*models.Recipient, error) {
	var recipient models.Recipient
	if err := s.db.Where("id = ? AND user_id = ?", recipientID, userID).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recipient, nil
}

// CreateRecipient creates a recipient. Names are normalized and unique per
// user; the comparison is case-sensitive.
func (s *recipientService) CreateRecipient(userID uint, in models.RecipientInput) (*models.Recipient, error) {
	name, address, err := recipientFields(in)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, name, 0); err != nil {
		return nil, err
	}

	recipient := &models.Recipient{UserID: userID, Name: name, Address: address}
	if err := s.db.Create(recipient).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipient, nil
}

// UpdateRecipient replaces the name and address of a recipient.
func (s *recipientService) UpdateRecipient(userID, recipientID uint, in models.RecipientInput) (*models.Recipient, error) {
	recipient, err := s.GetRecipient(userID, recipientID)
	if err != nil {
		return nil, err
	}

	name, address, err := recipientFields(in)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, name, recipient.ID); err != nil {
		return nil, err
	}

	recipient.Name = name
	recipient.Address = address
	if err := s.db.Save(recipient).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipient, nil
}

func (s *recipientService) checkDuplicate(userID uint, name string, exceptID uint) error {
	var count int64
	if err := s.db.Model(&models.Recipient{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, exceptID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateRecipient
	}
	return nil
}

func recipientFields(in models.RecipientInput) (string, *string, error) {
	name := validator.NormalizeWhitespace(in.Name)
	if name == "" {
		return "", nil, apperrors.ErrRecipientNameRequired
	}
	address := trimmedOrNil(in.Address)
	if validator.ContainsSemicolon(name) || (address != nil && validator.ContainsSemicolon(*address)) {
		return "", nil, apperrors.ErrInvalidCharacter
	}
	if utf8.RuneCountInString(name) > 255 {
		return "", nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient name exceeds 255 characters")
	}
	if address != nil && utf8.RuneCountInString(*address) > 500 {
		return "", nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient address exceeds 500 characters")
	}
	return name, address, nil
}
