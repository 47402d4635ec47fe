package client

import (
	"context"
	"net/http"

	"financebook/internal/models"
)

// ListCategories fetches the flat list of all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.getJSON(ctx, "/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := c.getJSON(ctx, idPath("/categories", id), nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetCategoryTree fetches a category with its nested children.
func (c *Client) GetCategoryTree(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := c.getJSON(ctx, idPath("/categories", id)+"/tree", nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetCategoryDescendants fetches every descendant of a category.
func (c *Client) GetCategoryDescendants(ctx context.Context, id uint) ([]models.Category, error) {
	var cats []models.Category
	if err := c.getJSON(ctx, idPath("/categories", id)+"/descendants", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListCategoriesByType fetches the categories of one type.
func (c *Client) ListCategoriesByType(ctx context.Context, typeID uint) ([]models.Category, error) {
	var cats []models.Category
	if err := c.getJSON(ctx, idPath("/categories/by-type", typeID), nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/categories", in, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory renames, re-parents or re-icons a category.
func (c *Client) UpdateCategory(ctx context.Context, id uint, in models.CategoryUpdate) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodPut, idPath("/categories", id), in, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategoryTypes fetches all category types.
func (c *Client) ListCategoryTypes(ctx context.Context) ([]models.CategoryType, error) {
	var types []models.CategoryType
	if err := c.getJSON(ctx, "/category-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateCategoryType creates a category type.
func (c *Client) CreateCategoryType(ctx context.Context, in models.CategoryTypeInput) (*models.CategoryType, error) {
	var t models.CategoryType
	if err := c.sendJSON(ctx, http.MethodPost, "/category-types", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
