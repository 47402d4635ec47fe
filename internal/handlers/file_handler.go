package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"financebook/internal/models"
	"financebook/internal/services"
)

// FileHandler serves invoice and icon uploads and downloads.
type FileHandler struct {
	paymentItemService services.PaymentItemServicer
	files              services.FileStorer
	auditService       services.AuditServicer
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(paymentItemService services.PaymentItemServicer, files services.FileStorer, auditService services.AuditServicer) *FileHandler {
	return &FileHandler{paymentItemService: paymentItemService, files: files, auditService: auditService}
}

// invoiceUpload is checked before an invoice is handed to storage.
type invoiceUpload struct {
	Filename string `binding:"required,invoice_ext"`
}

// UploadIcon stores a category icon
// @Summary     Upload a category icon
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Icon image"
// @Success     200 {object} models.UploadResult
// @Failure     400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /uploadicon/ [post]
func (h *FileHandler) UploadIcon(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	f, header, err := getUploadedFile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer f.Close()

	name, err := h.files.SaveIcon(header.Filename, f)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UploadResult{Filename: name})
}

// UploadInvoice attaches an invoice to a payment item, replacing any
// previous one
// @Summary     Upload an invoice
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     int  true "Payment item ID"
// @Param       file formData file true "Invoice document"
// @Success     200 {object} models.PaymentItem
// @Failure     400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure     404 {object} ErrorResponse "Payment item not found"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /upload-invoice/{id} [post]
func (h *FileHandler) UploadInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
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

	if err := binding.Validator.ValidateStruct(invoiceUpload{Filename: header.Filename}); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	item, err := h.paymentItemService.AttachInvoice(userID, id, header.Filename, f)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteInvoice removes the invoice of a payment item
// @Summary     Delete an invoice
// @Tags        files
// @Security    BearerAuth
// @Param       id path int true "Payment item ID"
// @Success     204
// @Failure     404 {object} ErrorResponse "No invoice attached"
// @Router      /invoice/{id} [delete]
func (h *FileHandler) DeleteInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paymentItemService.DeleteInvoice(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE", "invoice", id, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}

// DownloadInvoice streams the invoice of a payment item as an attachment
// @Summary     Download an invoice
// @Tags        files
// @Produce     application/octet-stream
// @Security    BearerAuth
// @Param       id path int true "Payment item ID"
// @Success     200 {file} file
// @Failure     404 {object} ErrorResponse "No invoice attached"
// @Router      /download-invoice/{id} [get]
func (h *FileHandler) DownloadInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	path, downloadName, err := h.paymentItemService.InvoiceFile(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.FileAttachment(path, downloadName)
}

// DownloadStatic serves an uploaded icon. The route is public.
// @Summary     Download an icon
// @Tags        files
// @Produce     image/png
// @Param       name path string true "Icon file name"
// @Success     200 {file} file
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /download_static/{name} [get]
func (h *FileHandler) DownloadStatic(c *gin.Context) {
	path, err := h.files.IconPath(c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.File(path)
}
