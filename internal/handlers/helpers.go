package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	gpvalidator "github.com/go-playground/validator/v10"

	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
	"financebook/internal/middleware"
)

// fileField is the multipart field every upload endpoint reads.
const fileField = "file"

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// bindError maps a binding failure to an AppError. A semicolon in a text
// field gets its own code so clients can show the CSV hint.
func bindError(err error) error {
	var verrs gpvalidator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "nosemicolon":
				return apperrors.ErrInvalidCharacter
			case "invoice_ext":
				return apperrors.ErrInvalidFileType
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// getUploadedFile opens the uploaded multipart file.
func getUploadedFile(c *gin.Context) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile(fileField)
	if err != nil || header == nil {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a file must be uploaded in the \"file\" field")
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return f, header, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
