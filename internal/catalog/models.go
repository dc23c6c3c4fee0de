// Package catalog is the resource query/mutation layer of the admin
// client: one typed method per entity operation, each a pure
// request/response mapping over the transport adapter. It performs no
// caching and no retries; both live with the callers.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// PagedResult is the universal envelope for list endpoints.
type PagedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Store is the root of all other entities; every other path is scoped by
// a store ID.
type Store struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Billboard is a banner image shown on the storefront.
type Billboard struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// BillboardRef is the reduced shape returned by the unpaged billboard
// lookup used to populate dropdowns.
type BillboardRef struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// Category embeds a denormalized billboard snapshot for display; writes
// reference the billboard by ID instead.
type Category struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Billboard BillboardRef `json:"billboard"`
}

// Size is a product size option.
type Size struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// Color is a product color option. Hex uses 3- or 6-digit hex syntax.
type Color struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductImage is one uploaded product photo.
type ProductImage struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// Product is a sellable item. Exactly one of IsFeatured/IsArchived is
// true; the forms layer enforces that before submission.
type Product struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	PriceInCents int64          `json:"priceInCents"`
	IsFeatured   bool           `json:"isFeatured"`
	IsArchived   bool           `json:"isArchived"`
	CategoryID   uuid.UUID      `json:"categoryId"`
	ColorID      uuid.UUID      `json:"colorId"`
	SizeID       uuid.UUID      `json:"sizeId"`
	CreatedAt    time.Time      `json:"createdAt"`
	Images       []ProductImage `json:"images"`
}

// FileUpload is a file carried by a multipart write.
type FileUpload struct {
	Filename string
	Content  []byte
}
