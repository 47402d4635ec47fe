package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financebook/internal/models"
	"financebook/internal/services"
)

// RecipientHandler handles recipient requests
type RecipientHandler struct {
	recipientService services.RecipientServicer
}

// NewRecipientHandler creates a new RecipientHandler
func NewRecipientHandler(recipientService services.RecipientServicer) *RecipientHandler {
	return &RecipientHandler{recipientService: recipientService}
}

// ListRecipients lists the user's recipients
// @Summary     List recipients
// @Tags        recipients
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Recipient
// @Router      /recipients [get]
func (h *RecipientHandler) ListRecipients(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipients, err := h.recipientService.ListRecipients(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipients)
}

// GetRecipient returns one recipient
// @Summary     Get a recipient
// @Tags        recipients
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recipient ID"
// @Success     200 {object} models.Recipient
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /recipients/{id} [get]
func (h *RecipientHandler) GetRecipient(c *gin.Context) {
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

	recipient, err := h.recipientService.GetRecipient(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipient)
}

// CreateRecipient creates a recipient
// @Summary     Create a recipient
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.RecipientInput true "Recipient"
// @Success     201 {object} models.Recipient
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /recipients [post]
func (h *RecipientHandler) CreateRecipient(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req models.RecipientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	recipient, err := h.recipientService.CreateRecipient(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipient)
}

// UpdateRecipient replaces a recipient's name and address
// @Summary     Update a recipient
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Recipient ID"
// @Param       request body models.RecipientInput true "Recipient"
// @Success     200 {object} models.Recipient
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /recipients/{id} [put]
func (h *RecipientHandler) UpdateRecipient(c *gin.Context) {
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

	var req models.RecipientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	recipient, err := h.recipientService.UpdateRecipient(userID, id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipient)
}
