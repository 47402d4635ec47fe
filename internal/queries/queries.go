// Package queries caches API reads and applies the invalidation contract
// after every mutation. Reads go through the cache; writes go straight to
// the API and then drop the keys whose results they made stale.
package queries

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"financebook/internal/cache"
	"financebook/internal/client"
	"financebook/internal/models"
)

// Cache key resources.
const (
	KeyPaymentItems        = "payment-items"
	KeyPaymentItem         = "payment-item"
	KeyRecipients          = "recipients"
	KeyRecipient           = "recipient"
	KeyCategoryTypes       = "category-types"
	KeyAllCategories       = "all-categories"
	KeyCategoriesByType    = "categories-by-type"
	KeyCategoryTree        = "category-tree"
	KeyCategoryDescendants = "category-descendants"
	KeyCategory            = "category"
)

// API is the subset of the HTTP client the query layer drives.
type API interface {
	ListPaymentItems(ctx context.Context, f models.PaymentItemFilter) ([]models.PaymentItem, error)
	GetPaymentItem(ctx context.Context, id uint) (*models.PaymentItem, error)
	CreatePaymentItem(ctx context.Context, in models.PaymentItemInput) (*models.PaymentItem, error)
	UpdatePaymentItem(ctx context.Context, id uint, in models.PaymentItemInput) (*models.PaymentItem, error)
	DeletePaymentItem(ctx context.Context, id uint) error
	ImportCSV(ctx context.Context, filename string, data []byte) (*models.ImportResult, error)

	ListRecipients(ctx context.Context) ([]models.Recipient, error)
	GetRecipient(ctx context.Context, id uint) (*models.Recipient, error)
	CreateRecipient(ctx context.Context, in models.RecipientInput) (*models.Recipient, error)
	UpdateRecipient(ctx context.Context, id uint, in models.RecipientInput) (*models.Recipient, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	GetCategoryTree(ctx context.Context, id uint) (*models.Category, error)
	GetCategoryDescendants(ctx context.Context, id uint) ([]models.Category, error)
	ListCategoriesByType(ctx context.Context, typeID uint) ([]models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, in models.CategoryUpdate) (*models.Category, error)
	ListCategoryTypes(ctx context.Context) ([]models.CategoryType, error)
	CreateCategoryType(ctx context.Context, in models.CategoryTypeInput) (*models.CategoryType, error)

	UploadInvoice(ctx context.Context, paymentItemID uint, filename string, data []byte) (*models.PaymentItem, error)
	DeleteInvoice(ctx context.Context, paymentItemID uint) error
	DownloadInvoice(ctx context.Context, paymentItemID uint) (*client.File, error)
}

var _ API = (*client.Client)(nil)

// Queries is the cached view of the API.
type Queries struct {
	api   API
	cache cache.Store
}

// New wraps api with store.
func New(api API, store cache.Store) *Queries {
	return &Queries{api: api, cache: store}
}

// PaymentItemsKey renders the list key for a filter. Category ids are
// sorted so equal sets share one entry.
func PaymentItemsKey(f models.PaymentItemFilter) string {
	ids := slices.Clone(f.CategoryIDs)
	slices.Sort(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return cache.Key(KeyPaymentItems, f.ExpenseOnly, f.IncomeOnly, strings.Join(parts, ","))
}

// PaymentItems lists payment items matching f.
func (q *Queries) PaymentItems(ctx context.Context, f models.PaymentItemFilter) ([]models.PaymentItem, error) {
	return cache.Fetch(q.cache, PaymentItemsKey(f), func() ([]models.PaymentItem, error) {
		return q.api.ListPaymentItems(ctx, f)
	})
}

// PaymentItem fetches one payment item.
func (q *Queries) PaymentItem(ctx context.Context, id uint) (*models.PaymentItem, error) {
	return cache.Fetch(q.cache, cache.Key(KeyPaymentItem, id), func() (*models.PaymentItem, error) {
		return q.api.GetPaymentItem(ctx, id)
	})
}

// Recipients lists all recipients.
func (q *Queries) Recipients(ctx context.Context) ([]models.Recipient, error) {
	return cache.Fetch(q.cache, KeyRecipients, func() ([]models.Recipient, error) {
		return q.api.ListRecipients(ctx)
	})
}

// Recipient fetches one recipient.
func (q *Queries) Recipient(ctx context.Context, id uint) (*models.Recipient, error) {
	return cache.Fetch(q.cache, cache.Key(KeyRecipient, id), func() (*models.Recipient, error) {
		return q.api.GetRecipient(ctx, id)
	})
}

// CategoryTypes lists all category types.
func (q *Queries) CategoryTypes(ctx context.Context) ([]models.CategoryType, error) {
	return cache.Fetch(q.cache, KeyCategoryTypes, func() ([]models.CategoryType, error) {
		return q.api.ListCategoryTypes(ctx)
	})
}

// AllCategories lists every category of every type.
func (q *Queries) AllCategories(ctx context.Context) ([]models.Category, error) {
	return cache.Fetch(q.cache, KeyAllCategories, func() ([]models.Category, error) {
		return q.api.ListCategories(ctx)
	})
}

// CategoriesByType lists the categories of one type.
func (q *Queries) CategoriesByType(ctx context.Context, typeID uint) ([]models.Category, error) {
	return cache.Fetch(q.cache, cache.Key(KeyCategoriesByType, typeID), func() ([]models.Category, error) {
		return q.api.ListCategoriesByType(ctx, typeID)
	})
}

// CategoryTree fetches a category with nested children.
func (q *Queries) CategoryTree(ctx context.Context, id uint) (*models.Category, error) {
	return cache.Fetch(q.cache, cache.Key(KeyCategoryTree, id), func() (*models.Category, error) {
		return q.api.GetCategoryTree(ctx, id)
	})
}

// CategoryDescendants fetches every descendant of a category.
func (q *Queries) CategoryDescendants(ctx context.Context, id uint) ([]models.Category, error) {
	return cache.Fetch(q.cache, cache.Key(KeyCategoryDescendants, id), func() ([]models.Category, error) {
		return q.api.GetCategoryDescendants(ctx, id)
	})
}

// Category fetches one category.
func (q *Queries) Category(ctx context.Context, id uint) (*models.Category, error) {
	return cache.Fetch(q.cache, cache.Key(KeyCategory, id), func() (*models.Category, error) {
		return q.api.GetCategory(ctx, id)
	})
}

// DownloadInvoice is never cached.
func (q *Queries) DownloadInvoice(ctx context.Context, paymentItemID uint) (*client.File, error) {
	return q.api.DownloadInvoice(ctx, paymentItemID)
}

// Clear drops every cached result. Called on logout.
func (q *Queries) Clear() {
	q.cache.Clear()
}
