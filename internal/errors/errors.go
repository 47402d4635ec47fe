// Package errors provides the FinanceBook error taxonomy. The server uses
// AppError for every service-layer failure and the client decodes error
// bodies back into AppError, so both sides share codes and messages.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Is matches AppErrors by code, so wrapped copies of a sentinel compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transport errors raised by the API client.
var (
	ErrNetwork = &AppError{Code: "NETWORK_ERROR", Message: "Network error, please check your connection", StatusCode: http.StatusServiceUnavailable}
	ErrServer  = &AppError{Code: "SERVER_ERROR", Message: "The server returned an error", StatusCode: http.StatusBadGateway}
)

// Form validation errors.
var (
	ErrInvalidCharacter      = &AppError{Code: "INVALID_CHARACTER", Message: "Semicolons are not allowed because they are used as the CSV delimiter", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount         = &AppError{Code: "INVALID_AMOUNT", Message: "Please enter a valid amount greater than 0", StatusCode: http.StatusBadRequest}
	ErrRecipientNameRequired = &AppError{Code: "RECIPIENT_NAME_REQUIRED", Message: "Recipient name is required", StatusCode: http.StatusBadRequest}
	ErrCategoryNameRequired  = &AppError{Code: "CATEGORY_NAME_REQUIRED", Message: "Category name is required", StatusCode: http.StatusBadRequest}
	ErrInvalidFileType       = &AppError{Code: "INVALID_FILE_TYPE", Message: "Unsupported file type", StatusCode: http.StatusBadRequest}
	ErrFileTooLarge          = &AppError{Code: "FILE_TOO_LARGE", Message: "File exceeds the maximum size of 25 MB", StatusCode: http.StatusRequestEntityTooLarge}
	ErrInvalidFilter         = &AppError{Code: "INVALID_FILTER", Message: "expenseOnly and incomeOnly cannot both be set", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Payment item errors.
var (
	ErrPaymentItemNotFound = &AppError{Code: "PAYMENT_ITEM_NOT_FOUND", Message: "Payment item not found", StatusCode: http.StatusNotFound}
	ErrInvoiceNotFound     = &AppError{Code: "INVOICE_NOT_FOUND", Message: "No invoice attached to this payment item", StatusCode: http.StatusNotFound}
)

// Recipient errors.
var (
	ErrRecipientNotFound  = &AppError{Code: "RECIPIENT_NOT_FOUND", Message: "Recipient not found", StatusCode: http.StatusNotFound}
	ErrDuplicateRecipient = &AppError{Code: "DUPLICATE_RECIPIENT", Message: "Recipient name already exists. Select it to update instead.", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound      = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryTypeNotFound  = &AppError{Code: "CATEGORY_TYPE_NOT_FOUND", Message: "Category type not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory     = &AppError{Code: "DUPLICATE_CATEGORY", Message: "Category name already exists. Select it instead.", StatusCode: http.StatusConflict}
	ErrDuplicateCategoryType = &AppError{Code: "DUPLICATE_CATEGORY_TYPE", Message: "A category type with this name already exists", StatusCode: http.StatusConflict}
	ErrInvalidParent         = &AppError{Code: "INVALID_PARENT", Message: "Parent must be another category of the same type that is not one of its descendants", StatusCode: http.StatusBadRequest}
	ErrReservedCategoryName  = &AppError{Code: "RESERVED_CATEGORY_NAME", Message: "UNCLASSIFIED is a reserved category name", StatusCode: http.StatusBadRequest}
)
