package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"financebook/internal/models"
)

// ListPaymentItems fetches every payment item matching f.
func (c *Client) ListPaymentItems(ctx context.Context, f models.PaymentItemFilter) ([]models.PaymentItem, error) {
	q := url.Values{}
	if f.ExpenseOnly {
		q.Set("expenseOnly", "true")
	}
	if f.IncomeOnly {
		q.Set("incomeOnly", "true")
	}
	for _, id := range f.CategoryIDs {
		q.Add("categoryIds", strconv.FormatUint(uint64(id), 10))
	}

	var items []models.PaymentItem
	if err := c.getJSON(ctx, "/payment-items", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetPaymentItem fetches one payment item.
func (c *Client) GetPaymentItem(ctx context.Context, id uint) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := c.getJSON(ctx, idPath("/payment-items", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreatePaymentItem creates a payment item.
func (c *Client) CreatePaymentItem(ctx context.Context, in models.PaymentItemInput) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := c.sendJSON(ctx, http.MethodPost, "/payment-items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdatePaymentItem replaces a payment item.
func (c *Client) UpdatePaymentItem(ctx context.Context, id uint, in models.PaymentItemInput) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := c.sendJSON(ctx, http.MethodPut, idPath("/payment-items", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeletePaymentItem deletes a payment item and its invoice.
func (c *Client) DeletePaymentItem(ctx context.Context, id uint) error {
	return c.sendJSON(ctx, http.MethodDelete, idPath("/payment-items", id), nil, nil)
}

// ImportCSV uploads a semicolon-delimited CSV export for import.
func (c *Client) ImportCSV(ctx context.Context, filename string, data []byte) (*models.ImportResult, error) {
	var result models.ImportResult
	if err := c.upload(ctx, "/import-csv", filename, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
