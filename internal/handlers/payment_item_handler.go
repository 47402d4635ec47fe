package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
	"financebook/internal/services"
)

// PaymentItemHandler handles payment item requests
type PaymentItemHandler struct {
	paymentItemService services.PaymentItemServicer
	auditService       services.AuditServicer
}

// NewPaymentItemHandler creates a new PaymentItemHandler
func NewPaymentItemHandler(paymentItemService services.PaymentItemServicer, auditService services.AuditServicer) *PaymentItemHandler {
	return &PaymentItemHandler{paymentItemService: paymentItemService, auditService: auditService}
}

// ListPaymentItemsQuery holds the list filters.
type ListPaymentItemsQuery struct {
	ExpenseOnly bool   `form:"expenseOnly"`
	IncomeOnly  bool   `form:"incomeOnly"`
	CategoryIDs []uint `form:"categoryIds"`
}

// ListPaymentItems lists the user's payment items
// @Summary     List payment items
// @Description List payment items newest first. Category filters include descendants.
// @Tags        payment-items
// @Produce     json
// @Security    BearerAuth
// @Param       expenseOnly query bool    false "Only expenses"
// @Param       incomeOnly  query bool    false "Only incomes"
// @Param       categoryIds query []int   false "Category IDs" collectionFormat(multi)
// @Success     200 {array}  models.PaymentItem
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payment-items [get]
func (h *PaymentItemHandler) ListPaymentItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ListPaymentItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items, err := h.paymentItemService.ListPaymentItems(userID, models.PaymentItemFilter{
		ExpenseOnly: q.ExpenseOnly,
		IncomeOnly:  q.IncomeOnly,
		CategoryIDs: q.CategoryIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPaymentItem returns one payment item
// @Summary     Get a payment item
// @Tags        payment-items
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment item ID"
// @Success     200 {object} models.PaymentItem
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payment-items/{id} [get]
func (h *PaymentItemHandler) GetPaymentItem(c *gin.Context) {
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

	item, err := h.paymentItemService.GetPaymentItem(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreatePaymentItem creates a payment item
// @Summary     Create a payment item
// @Description Negative amounts are expenses. Without categories the item is UNCLASSIFIED.
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.PaymentItemInput true "Payment item"
// @Success     201 {object} models.PaymentItem
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Recipient or category not found"
// @Router      /payment-items [post]
func (h *PaymentItemHandler) CreatePaymentItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req models.PaymentItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	item, err := h.paymentItemService.CreatePaymentItem(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdatePaymentItem replaces a payment item
// @Summary     Update a payment item
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Payment item ID"
// @Param       request body models.PaymentItemInput true "Payment item"
// @Success     200 {object} models.PaymentItem
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payment-items/{id} [put]
func (h *PaymentItemHandler) UpdatePaymentItem(c *gin.Context) {
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

	var req models.PaymentItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	item, err := h.paymentItemService.UpdatePaymentItem(userID, id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeletePaymentItem deletes a payment item and its invoice
// @Summary     Delete a payment item
// @Tags        payment-items
// @Security    BearerAuth
// @Param       id path int true "Payment item ID"
// @Success     204
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payment-items/{id} [delete]
func (h *PaymentItemHandler) DeletePaymentItem(c *gin.Context) {
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

	if err := h.paymentItemService.DeletePaymentItem(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE", "payment_item", id, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
