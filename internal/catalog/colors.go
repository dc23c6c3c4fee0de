package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListColorsParams filters the paged color list.
type ListColorsParams struct {
	PageParams
	Name string
}

// ListColors returns one page of colors.
func (c *Client) ListColors(ctx context.Context, storeID uuid.UUID, p ListColorsParams) (PagedResult[Color], error) {
	q := p.query()
	q.Set("name", p.Name)

	var out PagedResult[Color]
	if err := c.api.Get(ctx, colorsPath(storeID), q, &out); err != nil {
		return PagedResult[Color]{}, fmt.Errorf("list colors: %w", err)
	}
	return out, nil
}

// AllColors returns every color of the store, for the product form's
// dropdown.
func (c *Client) AllColors(ctx context.Context, storeID uuid.UUID) ([]Color, error) {
	var out PagedResult[Color]
	if err := c.api.Get(ctx, colorsPath(storeID), allPages(), &out); err != nil {
		return nil, fmt.Errorf("list all colors: %w", err)
	}
	return out.Data, nil
}

// ColorByID returns one color.
func (c *Client) ColorByID(ctx context.Context, storeID, colorID uuid.UUID) (Color, error) {
	var out Color
	if err := c.api.Get(ctx, colorsPath(storeID)+"/"+colorID.String(), nil, &out); err != nil {
		return Color{}, fmt.Errorf("get color: %w", err)
	}
	return out, nil
}

// ColorInput carries the color fields.
type ColorInput struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// CreateColor creates a color. A conflict means the hex value already
// exists in the store.
func (c *Client) CreateColor(ctx context.Context, storeID uuid.UUID, in ColorInput) (uuid.UUID, error) {
	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.api.Post(ctx, colorsPath(storeID), in, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create color: %w", err)
	}
	return resp.ID, nil
}

// UpdateColor updates a color.
func (c *Client) UpdateColor(ctx context.Context, storeID, colorID uuid.UUID, in ColorInput) error {
	if err := c.api.Put(ctx, colorsPath(storeID)+"/"+colorID.String(), in); err != nil {
		return fmt.Errorf("update color: %w", err)
	}
	return nil
}

// DeleteColor removes a color.
func (c *Client) DeleteColor(ctx context.Context, storeID, colorID uuid.UUID) error {
	if err := c.api.Delete(ctx, colorsPath(storeID)+"/"+colorID.String()); err != nil {
		return fmt.Errorf("delete color: %w", err)
	}
	return nil
}

func colorsPath(storeID uuid.UUID) string {
	return "/stores/" + storeID.String() + "/colors"
}
