package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListSizesParams filters the paged size list.
type ListSizesParams struct {
	PageParams
	Name string
}

// ListSizes returns one page of sizes.
func (c *Client) ListSizes(ctx context.Context, storeID uuid.UUID, p ListSizesParams) (PagedResult[Size], error) {
	q := p.query()
	q.Set("name", p.Name)

	var out PagedResult[Size]
	if err := c.api.Get(ctx, sizesPath(storeID), q, &out); err != nil {
		return PagedResult[Size]{}, fmt.Errorf("list sizes: %w", err)
	}
	return out, nil
}

// AllSizes returns every size of the store, for the product form's
// dropdown.
func (c *Client) AllSizes(ctx context.Context, storeID uuid.UUID) ([]Size, error) {
	var out PagedResult[Size]
	if err := c.api.Get(ctx, sizesPath(storeID), allPages(), &out); err != nil {
		return nil, fmt.Errorf("list all sizes: %w", err)
	}
	return out.Data, nil
}

// SizeByID returns one size.
func (c *Client) SizeByID(ctx context.Context, storeID, sizeID uuid.UUID) (Size, error) {
	var out Size
	if err := c.api.Get(ctx, sizesPath(storeID)+"/"+sizeID.String(), nil, &out); err != nil {
		return Size{}, fmt.Errorf("get size: %w", err)
	}
	return out, nil
}

// SizeInput carries the size fields.
type SizeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CreateSize creates a size.
func (c *Client) CreateSize(ctx context.Context, storeID uuid.UUID, in SizeInput) (uuid.UUID, error) {
	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.api.Post(ctx, sizesPath(storeID), in, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create size: %w", err)
	}
	return resp.ID, nil
}

// UpdateSize updates a size.
func (c *Client) UpdateSize(ctx context.Context, storeID, sizeID uuid.UUID, in SizeInput) error {
	if err := c.api.Put(ctx, sizesPath(storeID)+"/"+sizeID.String(), in); err != nil {
		return fmt.Errorf("update size: %w", err)
	}
	return nil
}

// DeleteSize removes a size.
func (c *Client) DeleteSize(ctx context.Context, storeID, sizeID uuid.UUID) error {
	if err := c.api.Delete(ctx, sizesPath(storeID)+"/"+sizeID.String()); err != nil {
		return fmt.Errorf("delete size: %w", err)
	}
	return nil
}

func sizesPath(storeID uuid.UUID) string {
	return "/stores/" + storeID.String() + "/sizes"
}
