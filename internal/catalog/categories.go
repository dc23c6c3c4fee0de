package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListCategoriesParams filters the paged category list.
type ListCategoriesParams struct {
	PageParams
	Name        string
	BillboardID string
}

// ListCategories returns one page of categories, each with its billboard
// snapshot embedded.
func (c *Client) ListCategories(ctx context.Context, storeID uuid.UUID, p ListCategoriesParams) (PagedResult[Category], error) {
	q := p.query()
	q.Set("name", p.Name)
	q.Set("billboardId", p.BillboardID)

	var out PagedResult[Category]
	if err := c.api.Get(ctx, categoriesPath(storeID), q, &out); err != nil {
		return PagedResult[Category]{}, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// AllCategories returns every category of the store, for the product
// form's dropdown.
func (c *Client) AllCategories(ctx context.Context, storeID uuid.UUID) ([]Category, error) {
	var out PagedResult[Category]
	if err := c.api.Get(ctx, categoriesPath(storeID), allPages(), &out); err != nil {
		return nil, fmt.Errorf("list all categories: %w", err)
	}
	return out.Data, nil
}

// CategoryByID returns one category.
func (c *Client) CategoryByID(ctx context.Context, storeID, categoryID uuid.UUID) (Category, error) {
	var out Category
	if err := c.api.Get(ctx, categoriesPath(storeID)+"/"+categoryID.String(), nil, &out); err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return out, nil
}

// CategoryInput carries the category fields; the billboard is referenced
// by ID on writes.
type CategoryInput struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, storeID uuid.UUID, in CategoryInput) (uuid.UUID, error) {
	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.api.Post(ctx, categoriesPath(storeID), in, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create category: %w", err)
	}
	return resp.ID, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, storeID, categoryID uuid.UUID, in CategoryInput) error {
	if err := c.api.Put(ctx, categoriesPath(storeID)+"/"+categoryID.String(), in); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category. A conflict means products still
// reference it.
func (c *Client) DeleteCategory(ctx context.Context, storeID, categoryID uuid.UUID) error {
	if err := c.api.Delete(ctx, categoriesPath(storeID)+"/"+categoryID.String()); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func categoriesPath(storeID uuid.UUID) string {
	return "/stores/" + storeID.String() + "/categories"
}
