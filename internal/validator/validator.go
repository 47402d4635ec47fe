// Package validator provides custom validation functions for Gin's binding
// engine and for standalone struct validation on the client side.
package validator

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// invoiceExtensions lists the accepted invoice attachment types.
var invoiceExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// iconExtensions lists the accepted category icon types.
var iconExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".svg": true, ".ico": true, ".webp": true,
}

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

// Struct validates s with the custom tags registered, outside of Gin.
func Struct(s interface{}) error {
	standaloneOnce.Do(func() {
		standalone = validator.New(validator.WithRequiredStructEnabled())
		registerAll(standalone)
	})
	return standalone.Struct(s)
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("nosemicolon", validateNoSemicolon)
	_ = v.RegisterValidation("view_filter", validateViewFilter)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
	_ = v.RegisterValidation("invoice_ext", validateInvoiceExt)
}

// ContainsSemicolon reports whether s contains the CSV delimiter.
func ContainsSemicolon(s string) bool {
	return strings.Contains(s, ";")
}

// NormalizeWhitespace trims s and collapses inner whitespace runs to one space.
func NormalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsInvoiceExtension reports whether filename has an accepted invoice extension.
func IsInvoiceExtension(filename string) bool {
	return invoiceExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsIconExtension reports whether filename has an accepted icon extension.
func IsIconExtension(filename string) bool {
	return iconExtensions[strings.ToLower(filepath.Ext(filename))]
}

func validateNoSemicolon(fl validator.FieldLevel) bool {
	return !ContainsSemicolon(fl.Field().String())
}

func validateViewFilter(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "all", "expenses", "incomes", "fees":
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}

func validateInvoiceExt(fl validator.FieldLevel) bool {
	return IsInvoiceExtension(fl.Field().String())
}
