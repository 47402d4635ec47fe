package form

import (
	"context"

	"financebook/internal/categorytree"
	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/validator"
)

// CategoryAPI creates categories.
type CategoryAPI interface {
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
}

// CategoryResult is the category the form should now show as selected.
type CategoryResult struct {
	Category models.Category
	Created  bool
	Message  string
}

// PickerCategories returns the categories offered by the form: those of
// the standard type (or the first type), without UNCLASSIFIED.
func PickerCategories(types []models.CategoryType, categories []models.Category) (typeID uint, picker []models.Category, ok bool) {
	t, ok := categorytree.StandardType(types)
	if !ok {
		return 0, nil, false
	}
	for _, c := range categorytree.Selectable(categories) {
		if c.TypeID == t.ID {
			picker = append(picker, c)
		}
	}
	return t.ID, picker, true
}

// AddCategory creates a root category of typeID named name and selects it.
// An existing category with the same normalized name is selected instead.
func AddCategory(ctx context.Context, api CategoryAPI, available []models.Category, typeID uint, name string) (CategoryResult, error) {
	sanitized := validator.NormalizeWhitespace(name)
	if sanitized == "" {
		return CategoryResult{}, apperrors.ErrCategoryNameRequired
	}
	if HasSemicolon(sanitized) {
		return CategoryResult{}, apperrors.ErrInvalidCharacter
	}
	if err := checkLengths(textFields{NewCategoryName: sanitized}); err != nil {
		return CategoryResult{}, err
	}

	for _, c := range available {
		if validator.NormalizeWhitespace(c.Name) == sanitized {
			return CategoryResult{Category: c, Message: apperrors.ErrDuplicateCategory.Message}, nil
		}
	}

	created, err := api.CreateCategory(ctx, models.CategoryInput{Name: sanitized, TypeID: typeID})
	if err != nil {
		return CategoryResult{}, err
	}
	return CategoryResult{Category: *created, Created: true}, nil
}
