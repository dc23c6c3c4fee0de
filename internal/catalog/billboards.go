package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/g-villarinho/flash-buy-admin/internal/transport"
)

// ListBillboardsParams filters the paged billboard list.
type ListBillboardsParams struct {
	PageParams
	Label string
}

// ListBillboards returns one page of billboards.
func (c *Client) ListBillboards(ctx context.Context, storeID uuid.UUID, p ListBillboardsParams) (PagedResult[Billboard], error) {
	q := p.query()
	q.Set("label", p.Label)

	var out PagedResult[Billboard]
	if err := c.api.Get(ctx, billboardsPath(storeID), q, &out); err != nil {
		return PagedResult[Billboard]{}, fmt.Errorf("list billboards: %w", err)
	}
	return out, nil
}

// AllBillboards returns every billboard of the store, for the category
// form's dropdown.
func (c *Client) AllBillboards(ctx context.Context, storeID uuid.UUID) ([]BillboardRef, error) {
	var out PagedResult[BillboardRef]
	if err := c.api.Get(ctx, billboardsPath(storeID), allPages(), &out); err != nil {
		return nil, fmt.Errorf("list all billboards: %w", err)
	}
	return out.Data, nil
}

// BillboardByID returns one billboard.
func (c *Client) BillboardByID(ctx context.Context, storeID, billboardID uuid.UUID) (Billboard, error) {
	var out Billboard
	if err := c.api.Get(ctx, billboardsPath(storeID)+"/"+billboardID.String(), nil, &out); err != nil {
		return Billboard{}, fmt.Errorf("get billboard: %w", err)
	}
	return out, nil
}

// CreateBillboardInput carries the billboard fields and the banner image.
type CreateBillboardInput struct {
	Label string
	Image FileUpload
}

// CreateBillboard creates a billboard. The write is multipart because it
// carries the image file.
func (c *Client) CreateBillboard(ctx context.Context, storeID uuid.UUID, in CreateBillboardInput) (uuid.UUID, error) {
	form := (&transport.Form{}).
		Set("label", in.Label).
		AddFile("image", in.Image.Filename, in.Image.Content)

	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.api.PostForm(ctx, billboardsPath(storeID), form, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create billboard: %w", err)
	}
	return resp.ID, nil
}

// UpdateBillboardInput carries the editable billboard fields. A nil Image
// keeps the current banner.
type UpdateBillboardInput struct {
	Label string
	Image *FileUpload
}

// UpdateBillboard updates a billboard.
func (c *Client) UpdateBillboard(ctx context.Context, storeID, billboardID uuid.UUID, in UpdateBillboardInput) error {
	form := (&transport.Form{}).Set("label", in.Label)
	if in.Image != nil {
		form.AddFile("image", in.Image.Filename, in.Image.Content)
	}
	if err := c.api.PutForm(ctx, billboardsPath(storeID)+"/"+billboardID.String(), form); err != nil {
		return fmt.Errorf("update billboard: %w", err)
	}
	return nil
}

// DeleteBillboard removes a billboard.
func (c *Client) DeleteBillboard(ctx context.Context, storeID, billboardID uuid.UUID) error {
	if err := c.api.Delete(ctx, billboardsPath(storeID)+"/"+billboardID.String()); err != nil {
		return fmt.Errorf("delete billboard: %w", err)
	}
	return nil
}

func billboardsPath(storeID uuid.UUID) string {
	return "/stores/" + storeID.String() + "/billboards"
}
