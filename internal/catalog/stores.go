package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateStore creates a store and returns its ID.
func (c *Client) CreateStore(ctx context.Context, name string) (uuid.UUID, error) {
	body := map[string]string{"name": name}
	var resp struct {
		StoreID uuid.UUID `json:"storeId"`
	}
	if err := c.api.Post(ctx, "/stores", body, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("create store: %w", err)
	}
	return resp.StoreID, nil
}

// FirstStore returns the user's first store, the anchor of the root-route
// bootstrap. A not-found error means the user has no store yet.
func (c *Client) FirstStore(ctx context.Context) (Store, error) {
	var store Store
	if err := c.api.Get(ctx, "/me/stores/first", nil, &store); err != nil {
		return Store{}, fmt.Errorf("get first store: %w", err)
	}
	return store, nil
}

// Stores returns every store the user owns, for the store switcher.
func (c *Client) Stores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := c.api.Get(ctx, "/me/stores", nil, &stores); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// StoreByID returns one store.
func (c *Client) StoreByID(ctx context.Context, storeID uuid.UUID) (Store, error) {
	var store Store
	if err := c.api.Get(ctx, "/stores/"+storeID.String(), nil, &store); err != nil {
		return Store{}, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}

// UpdateStore renames a store. A conflict means another store of the same
// user already uses the name.
func (c *Client) UpdateStore(ctx context.Context, storeID uuid.UUID, name string) error {
	body := map[string]string{"name": name}
	if err := c.api.Put(ctx, "/stores/"+storeID.String(), body); err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// DeleteStore removes a store. A conflict means the store still has
// dependent entities.
func (c *Client) DeleteStore(ctx context.Context, storeID uuid.UUID) error {
	if err := c.api.Delete(ctx, "/stores/"+storeID.String()); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
