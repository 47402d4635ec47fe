package services

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"financebook/internal/categorytree"
	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/validator"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns every category of the user, oldest first.
func (s *categoryService) ListCategories(userID uint) ([]models.Category, error) {
	return listCategories(s.db, userID)
}

// ListCategoriesByType returns the categories of one type.
func (s *categoryService) ListCategoriesByType(userID, typeID uint) ([]models.Category, error) {
	if _, err := NewCategoryTypeService(s.db).GetCategoryType(userID, typeID); err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := s.db.Where("user_id = ? AND type_id = ?", userID, typeID).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID for a specific user
func (s *categoryService) GetCategory(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoryTree returns the category with its whole subtree nested in
// Children.
func (s *categoryService) GetCategoryTree(userID, categoryID uint) (*models.Category, error) {
	ix, err := s.index(userID)
	if err != nil {
		return nil, err
	}
	tree, ok := ix.Tree(categoryID)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &tree, nil
}

// GetDescendants returns every category below categoryID, excluding itself.
func (s *categoryService) GetDescendants(userID, categoryID uint) ([]models.Category, error) {
	ix, err := s.index(userID)
	if err != nil {
		return nil, err
	}
	if _, ok := ix.Get(categoryID); !ok {
		return nil, apperrors.ErrCategoryNotFound
	}

	descendants := []models.Category{}
	for _, id := range ix.Descendants(categoryID) {
		c, _ := ix.Get(id)
		descendants = append(descendants, c)
	}
	return descendants, nil
}

// CreateCategory creates a category. Names are unique within their type
// and UNCLASSIFIED is reserved.
func (s *categoryService) CreateCategory(userID uint, in models.CategoryInput) (*models.Category, error) {
	name, err := categoryName(in.Name)
	if err != nil {
		return nil, err
	}

	if _, err := NewCategoryTypeService(s.db).GetCategoryType(userID, in.TypeID); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, in.TypeID, name, 0); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.GetCategory(userID, *in.ParentID)
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
		}
		if err != nil {
			return nil, err
		}
		if parent.TypeID != in.TypeID || parent.IsUnclassified() {
			return nil, apperrors.ErrInvalidParent
		}
	}

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		TypeID:   in.TypeID,
		ParentID: in.ParentID,
		IconFile: trimmedOrNil(in.IconFile),
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory renames, re-parents or changes the icon of a category.
// A new parent must be another category of the same type that is not one
// of its descendants.
func (s *categoryService) UpdateCategory(userID, categoryID uint, in models.CategoryUpdate) (*models.Category, error) {
	category, err := s.GetCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if in.Name != nil {
		name, err := categoryName(*in.Name)
		if err != nil {
			return nil, err
		}
		if category.IsUnclassified() && name != category.Name {
			return nil, apperrors.WithMessage(apperrors.ErrReservedCategoryName, "UNCLASSIFIED cannot be renamed")
		}
		if err := s.checkDuplicate(userID, category.TypeID, name, category.ID); err != nil {
			return nil, err
		}
		updates["name"] = name
	}

	switch {
	case in.ClearParent:
		updates["parent_id"] = nil
	case in.ParentID != nil:
		ix, err := s.index(userID)
		if err != nil {
			return nil, err
		}
		if _, ok := ix.Get(*in.ParentID); !ok {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
		}
		if !ix.CanReparent(*category, in.ParentID) {
			return nil, apperrors.ErrInvalidParent
		}
		updates["parent_id"] = *in.ParentID
	}

	if in.IconFile != nil {
		updates["icon_file"] = trimmedOrNil(in.IconFile)
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetCategory(userID, categoryID)
}

func (s *categoryService) index(userID uint) (*categorytree.Index, error) {
	categories, err := listCategories(s.db, userID)
	if err != nil {
		return nil, err
	}
	return categorytree.New(categories), nil
}

func (s *categoryService) checkDuplicate(userID, typeID uint, name string, exceptID uint) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND type_id = ? AND name = ? AND id <> ?", userID, typeID, name, exceptID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategory
	}
	return nil
}

// categoryName normalizes a user-supplied category name.
func categoryName(raw string) (string, error) {
	name := validator.NormalizeWhitespace(raw)
	switch {
	case name == "":
		return "", apperrors.ErrCategoryNameRequired
	case validator.ContainsSemicolon(name):
		return "", apperrors.ErrInvalidCharacter
	case utf8.RuneCountInString(name) > 255:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category name exceeds 255 characters")
	case name == models.UnclassifiedCategoryName:
		return "", apperrors.ErrReservedCategoryName
	}
	return name, nil
}

func listCategories(db *gorm.DB, userID uint) ([]models.Category, error) {
	categories := []models.Category{}
	if err := db.Where("user_id = ?", userID).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ensureUnclassified returns the UNCLASSIFIED category of the standard
// type, creating the type and the category on first use.
func ensureUnclassified(db *gorm.DB, userID uint) (*models.Category, error) {
	standard, _, err := ensureStandardType(db, userID)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = db.Where("user_id = ? AND type_id = ? AND name = ?", userID, standard.ID, models.UnclassifiedCategoryName).
		First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category = models.Category{UserID: userID, Name: models.UnclassifiedCategoryName, TypeID: standard.ID}
	if err := db.Create(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
