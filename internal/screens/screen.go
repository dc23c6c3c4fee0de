package screens

import (
	"context"
	"time"

	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
)

// DropdownFreshFor is how long reference lookups that only feed dropdown
// options stay fresh without revalidation. They change rarely and a stale
// option is low-cost.
const DropdownFreshFor = 5 * time.Minute

// ListFreshFor is the freshness window of cached list pages. Paginating
// back to a page the user just saw serves it from cache; mutations force
// a refetch early through prefix invalidation.
const ListFreshFor = 30 * time.Second

// Page is one loaded page of a list screen, ready for table rendering.
type Page[T any] struct {
	Rows      []T
	Total     int64
	Paginator Paginator
}

// Load fetches the screen's current page through the query cache. The
// cache slot is addressed by the screen state, so revisiting a page the
// user already saw coalesces with any in-flight fetch for it.
func Load[T any](ctx context.Context, cache *querycache.Cache, d Descriptor, s ListState,
	fetch func(ctx context.Context, s ListState) (catalog.PagedResult[T], error)) (Page[T], error) {

	result, err := querycache.Fetch(ctx, cache, d.CacheKey(s), querycache.Options{FreshFor: ListFreshFor},
		func(ctx context.Context) (catalog.PagedResult[T], error) {
			return fetch(ctx, s)
		})
	if err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Rows:      result.Data,
		Total:     result.Total,
		Paginator: Paginator{Page: s.Page, TotalPages: result.TotalPages},
	}, nil
}

// LoadOptions fetches the full reference list that feeds a form dropdown,
// for example every billboard when creating a category. The slot lives
// under the resource prefix, so writes to the resource invalidate the
// dropdown together with the list pages.
func LoadOptions[T any](ctx context.Context, cache *querycache.Cache, d Descriptor,
	fetch func(ctx context.Context) ([]T, error)) ([]T, error) {

	return querycache.Fetch(ctx, cache, querycache.K(d.Resource, "all"),
		querycache.Options{FreshFor: DropdownFreshFor}, fetch)
}

// DeleteRow runs a confirmed row deletion and, on success, invalidates
// every cached page of the screen's resource so the table refetches. The
// current page may come back short by one row when the deleted row was
// the last on its page; the page number is deliberately left alone (see
// the paginator's bounds handling).
//
// Callers gate this behind their confirmation dialog; on failure nothing
// is invalidated and the row stays visible.
func DeleteRow(ctx context.Context, cache *querycache.Cache, d Descriptor,
	del func(ctx context.Context) error) error {

	if err := del(ctx); err != nil {
		return err
	}
	cache.Invalidate(d.InvalidationKey())
	return nil
}
