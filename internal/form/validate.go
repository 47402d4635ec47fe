package form

import (
	"errors"

	gpvalidator "github.com/go-playground/validator/v10"

	apperrors "financebook/internal/errors"
	"financebook/internal/validator"
)

// Field length limits.
const (
	MaxDescriptionLen      = 1000
	MaxRecipientNameLen    = 255
	MaxRecipientAddressLen = 500
	MaxCategoryNameLen     = 255
)

// textFields are the free-text inputs checked on submit.
type textFields struct {
	Description      string `validate:"max=1000"`
	RecipientName    string `validate:"max=255"`
	RecipientAddress string `validate:"max=500"`
	NewCategoryName  string `validate:"max=255"`
}

var fieldLabels = map[string]string{
	"Description":      "Description",
	"RecipientName":    "Recipient name",
	"RecipientAddress": "Recipient address",
	"NewCategoryName":  "Category name",
}

// HasSemicolon reports whether any free-text input contains the CSV
// delimiter.
func HasSemicolon(values ...string) bool {
	for _, v := range values {
		if validator.ContainsSemicolon(v) {
			return true
		}
	}
	return false
}

// checkLengths returns the first length violation as INVALID_INPUT.
func checkLengths(f textFields) error {
	err := validator.Struct(f)
	if err == nil {
		return nil
	}
	var verrs gpvalidator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fieldLabels[verrs[0].Field()]+" must be at most "+verrs[0].Param()+" characters")
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err)
}
