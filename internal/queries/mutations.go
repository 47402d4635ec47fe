package queries

import (
	"context"

	"financebook/internal/cache"
	"financebook/internal/models"
)

func (q *Queries) invalidatePaymentLists() {
	q.cache.DeletePrefix(KeyPaymentItems + ":")
}

func (q *Queries) invalidateTrees() {
	q.cache.DeletePrefix(KeyCategoryTree + ":")
	q.cache.DeletePrefix(KeyCategoryDescendants + ":")
}

// CreatePaymentItem creates a payment item.
func (q *Queries) CreatePaymentItem(ctx context.Context, in models.PaymentItemInput) (*models.PaymentItem, error) {
	item, err := q.api.CreatePaymentItem(ctx, in)
	if err != nil {
		return nil, err
	}
	q.invalidatePaymentLists()
	return item, nil
}

// UpdatePaymentItem updates a payment item.
func (q *Queries) UpdatePaymentItem(ctx context.Context, id uint, in models.PaymentItemInput) (*models.PaymentItem, error) {
	item, err := q.api.UpdatePaymentItem(ctx, id, in)
	if err != nil {
		return nil, err
	}
	q.invalidatePaymentLists()
	q.cache.Delete(cache.Key(KeyPaymentItem, id))
	return item, nil
}

// DeletePaymentItem deletes a payment item and its invoice.
func (q *Queries) DeletePaymentItem(ctx context.Context, id uint) error {
	if err := q.api.DeletePaymentItem(ctx, id); err != nil {
		return err
	}
	q.invalidatePaymentLists()
	q.cache.Delete(cache.Key(KeyPaymentItem, id))
	return nil
}

// UploadInvoice attaches an invoice to a payment item.
func (q *Queries) UploadInvoice(ctx context.Context, paymentItemID uint, filename string, data []byte) (*models.PaymentItem, error) {
	item, err := q.api.UploadInvoice(ctx, paymentItemID, filename, data)
	if err != nil {
		return nil, err
	}
	q.invalidatePaymentLists()
	q.cache.Delete(cache.Key(KeyPaymentItem, paymentItemID))
	return item, nil
}

// DeleteInvoice removes a payment item's invoice.
func (q *Queries) DeleteInvoice(ctx context.Context, paymentItemID uint) error {
	if err := q.api.DeleteInvoice(ctx, paymentItemID); err != nil {
		return err
	}
	q.invalidatePaymentLists()
	q.cache.Delete(cache.Key(KeyPaymentItem, paymentItemID))
	return nil
}

// ImportCSV imports a CSV export. It may create recipients and categories,
// so their lists are dropped too.
func (q *Queries) ImportCSV(ctx context.Context, filename string, data []byte) (*models.ImportResult, error) {
	result, err := q.api.ImportCSV(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	q.invalidatePaymentLists()
	q.cache.Delete(KeyRecipients)
	q.cache.Delete(KeyAllCategories)
	q.cache.Delete(KeyCategoryTypes)
	q.cache.DeletePrefix(KeyCategoriesByType + ":")
	q.invalidateTrees()
	return result, nil
}

// CreateRecipient creates a recipient.
func (q *Queries) CreateRecipient(ctx context.Context, in models.RecipientInput) (*models.Recipient, error) {
	r, err := q.api.CreateRecipient(ctx, in)
	if err != nil {
		return nil, err
	}
	q.cache.Delete(KeyRecipients)
	return r, nil
}

// UpdateRecipient updates a recipient.
func (q *Queries) UpdateRecipient(ctx context.Context, id uint, in models.RecipientInput) (*models.Recipient, error) {
	r, err := q.api.UpdateRecipient(ctx, id, in)
	if err != nil {
		return nil, err
	}
	q.cache.Delete(KeyRecipients)
	q.cache.Delete(cache.Key(KeyRecipient, id))
	return r, nil
}

// CreateCategoryType creates a category type.
func (q *Queries) CreateCategoryType(ctx context.Context, in models.CategoryTypeInput) (*models.CategoryType, error) {
	t, err := q.api.CreateCategoryType(ctx, in)
	if err != nil {
		return nil, err
	}
	q.cache.Delete(KeyCategoryTypes)
	return t, nil
}

// CreateCategory creates a category.
func (q *Queries) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	c, err := q.api.CreateCategory(ctx, in)
	if err != nil {
		return nil, err
	}
	q.cache.Delete(cache.Key(KeyCategoriesByType, in.TypeID))
	q.cache.Delete(KeyAllCategories)
	if in.ParentID != nil {
		q.invalidateTrees()
	}
	return c, nil
}

// UpdateCategory updates a category.
func (q *Queries) UpdateCategory(ctx context.Context, id uint, in models.CategoryUpdate) (*models.Category, error) {
	c, err := q.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return nil, err
	}
	q.cache.Delete(cache.Key(KeyCategoriesByType, c.TypeID))
	q.cache.Delete(cache.Key(KeyCategory, id))
	q.cache.Delete(KeyAllCategories)
	q.invalidateTrees()
	return c, nil
}
