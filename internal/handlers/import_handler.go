package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financebook/internal/services"
)

// ImportHandler handles CSV imports
type ImportHandler struct {
	importService services.ImportServicer
	auditService  services.AuditServicer
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService services.ImportServicer, auditService services.AuditServicer) *ImportHandler {
	return &ImportHandler{importService: importService, auditService: auditService}
}

// ImportCSV imports payment items from a semicolon separated file
// @Summary     Import payment items from CSV
// @Description Columns: amount;date;description;Recipient name;Recipient address;standard_category name;periodic. Unknown recipients and categories are created.
// @Tags        import
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "CSV file"
// @Success     200 {object} models.ImportResult
// @Failure     400 {object} ErrorResponse "Malformed file"
// @Router      /import-csv [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	f, header, err := getUploadedFile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer f.Close()

	result, err := h.importService.ImportCSV(userID, f)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "IMPORT", "payment_item", 0, c.ClientIP(), map[string]interface{}{
		"file":               header.Filename,
		"created_payments":   result.CreatedPayments,
		"created_recipients": result.CreatedRecipients,
		"created_categories": result.CreatedCategories,
	})
	c.JSON(http.StatusOK, result)
}
