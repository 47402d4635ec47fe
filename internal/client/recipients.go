package client

import (
	"context"
	"net/http"

	"financebook/internal/models"
)

// ListRecipients fetches all recipients.
func (c *Client) ListRecipients(ctx context.Context) ([]models.Recipient, error) {
	var recipients []models.Recipient
	if err := c.getJSON(ctx, "/recipients", nil, &recipients); err != nil {
		return nil, err
	}
	return recipients, nil
}

// GetRecipient fetches one recipient.
func (c *Client) GetRecipient(ctx context.Context, id uint) (*models.Recipient, error) {
	var r models.Recipient
	if err := c.getJSON(ctx, idPath("/recipients", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRecipient creates a recipient.
func (c *Client) CreateRecipient(ctx context.Context, in models.RecipientInput) (*models.Recipient, error) {
	var r models.Recipient
	if err := c.sendJSON(ctx, http.MethodPost, "/recipients", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecipient updates a recipient's name and address.
func (c *Client) UpdateRecipient(ctx context.Context, id uint, in models.RecipientInput) (*models.Recipient, error) {
	var r models.Recipient
	if err := c.sendJSON(ctx, http.MethodPut, idPath("/recipients", id), in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
