package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/g-villarinho/flash-buy-admin/internal/transport"
)

// MaxProductImages caps product photo uploads.
const MaxProductImages = 5

// ListProductsParams filters the paged product list.
type ListProductsParams struct {
	PageParams
	Name string
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, storeID uuid.UUID, p ListProductsParams) (PagedResult[Product], error) {
	q := p.query()
	q.Set("name", p.Name)

	var out PagedResult[Product]
	if err := c.api.Get(ctx, productsPath(storeID), q, &out); err != nil {
		return PagedResult[Product]{}, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// ProductByID returns one product.
func (c *Client) ProductByID(ctx context.Context, storeID, productID uuid.UUID) (Product, error) {
	var out Product
	if err := c.api.Get(ctx, productsPath(storeID)+"/"+productID.String(), nil, &out); err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return out, nil
}

// ProductInput carries the product fields and photos. PriceInCents is the
// canonical fixed-point price.
type ProductInput struct {
	Name         string
	PriceInCents int64
	IsFeatured   bool
	IsArchived   bool
	CategoryID   uuid.UUID
	ColorID      uuid.UUID
	SizeID       uuid.UUID
	Images       []FileUpload
}

func (in ProductInput) form() *transport.Form {
	form := (&transport.Form{}).
		Set("name", in.Name).
		Set("price", strconv.FormatInt(in.PriceInCents, 10)).
		Set("isFeatured", strconv.FormatBool(in.IsFeatured)).
		Set("isArchived", strconv.FormatBool(in.IsArchived)).
		Set("categoryId", in.CategoryID.String()).
		Set("colorId", in.ColorID.String()).
		Set("sizeId", in.SizeID.String())
	for _, image := range in.Images {
		form.AddFile("images", image.Filename, image.Content)
	}
	return form
}

// CreateProduct creates a product. The write is multipart because it
// carries the photo files; the server processes images asynchronously.
func (c *Client) CreateProduct(ctx context.Context, storeID uuid.UUID, in ProductInput) (uuid.UUID, error) {
	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.api.PostForm(ctx, productsPath(storeID), in.form(), &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create product: %w", err)
	}
	return resp.ID, nil
}

// UpdateProduct updates a product.
func (c *Client) UpdateProduct(ctx context.Context, storeID, productID uuid.UUID, in ProductInput) error {
	if err := c.api.PutForm(ctx, productsPath(storeID)+"/"+productID.String(), in.form()); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, storeID, productID uuid.UUID) error {
	if err := c.api.Delete(ctx, productsPath(storeID)+"/"+productID.String()); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productsPath(storeID uuid.UUID) string {
	return "/stores/" + storeID.String() + "/products"
}
