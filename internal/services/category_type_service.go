package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/validator"
)

const standardTypeDescription = "Default category type"

// categoryTypeService handles category type business logic.
type categoryTypeService struct {
	db *gorm.DB
}

// NewCategoryTypeService creates a new CategoryTypeServicer.
func NewCategoryTypeService(db *gorm.DB) CategoryTypeServicer {
	return &categoryTypeService{db: db}
}

// ListCategoryTypes returns every category type of the user, oldest first.
func (s *categoryTypeService) ListCategoryTypes(userID uint) ([]models.CategoryType, error) {
	types := []models.CategoryType{}
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return types, nil
}

// GetCategoryType retrieves a category type by ID for a specific user.
func (s *categoryTypeService) GetCategoryType(userID, typeID uint) (*models.CategoryType, error) {
	var ct models.CategoryType
	if err := s.db.Where("id = ? AND user_id = ?", typeID, userID).First(&ct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ct, nil
}

// CreateCategoryType creates a category type. Names are unique per user,
// compared case-insensitively.
func (s *categoryTypeService) CreateCategoryType(userID uint, in models.CategoryTypeInput) (*models.CategoryType, error) {
	name := validator.NormalizeWhitespace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type name is required")
	}
	if validator.ContainsSemicolon(name) {
		return nil, apperrors.ErrInvalidCharacter
	}

	if _, found, err := findCategoryType(s.db, userID, name); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrDuplicateCategoryType
	}

	ct := &models.CategoryType{UserID: userID, Name: name, Description: trimmedOrNil(in.Description)}
	if err := s.db.Create(ct).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ct, nil
}

// EnsureStandardType returns the user's standard type, creating it if needed.
func (s *categoryTypeService) EnsureStandardType(userID uint) (*models.CategoryType, error) {
	ct, _, err := ensureStandardType(s.db, userID)
	return ct, err
}

func findCategoryType(db *gorm.DB, userID uint, name string) (*models.CategoryType, bool, error) {
	var ct models.CategoryType
	err := db.Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(name)).First(&ct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ct, true, nil
}

// ensureStandardType finds or creates the standard type and reports
// whether it was created.
func ensureStandardType(db *gorm.DB, userID uint) (*models.CategoryType, bool, error) {
	ct, found, err := findCategoryType(db, userID, models.StandardCategoryTypeName)
	if err != nil || found {
		return ct, false, err
	}

	description := standardTypeDescription
	ct = &models.CategoryType{UserID: userID, Name: models.StandardCategoryTypeName, Description: &description}
	if err := db.Create(ct).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ct, true, nil
}

// trimmedOrNil trims s and maps an empty result to nil.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
