package screens

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
)

func TestCacheKeyShape(t *testing.T) {
	s := ListState{Page: 2, Filters: map[string]string{"name": "shoes"}}
	key := Categories.CacheKey(s)

	want := querycache.K("categories", "shoes", nil, 2)
	if key.String() != want.String() {
		t.Errorf("CacheKey = %v, want %v", key, want)
	}
}

func TestCacheKeyDistinguishesFilterPositions(t *testing.T) {
	byName := Categories.CacheKey(ListState{Page: 1, Filters: map[string]string{"name": "x"}})
	byBillboard := Categories.CacheKey(ListState{Page: 1, Filters: map[string]string{"billboardId": "x"}})

	if byName.String() == byBillboard.String() {
		t.Error("different filters in different positions must map to different slots")
	}
}

func TestLoadCachesPerState(t *testing.T) {
	cache := querycache.New(querycache.Config{})
	ctx := context.Background()

	var fetches atomic.Int32
	fetch := func(ctx context.Context, s ListState) (catalog.PagedResult[string], error) {
		fetches.Add(1)
		return catalog.PagedResult[string]{
			Data:       []string{"row"},
			Total:      21,
			TotalPages: 3,
		}, nil
	}

	s := Billboards.ParseQuery(nil)
	page, err := Load(ctx, cache, Billboards, s, fetch)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if page.Total != 21 || len(page.Rows) != 1 {
		t.Errorf("page = %+v", page)
	}
	if page.Paginator.CanPrev() {
		t.Error("CanPrev() on page 1 = true")
	}
	if !page.Paginator.CanNext() {
		t.Error("CanNext() with 3 total pages = false")
	}

	// Re-loading the same state inside the fresh window serves from cache.
	if _, err := Load(ctx, cache, Billboards, s, fetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fetches.Load() != 1 {
		t.Errorf("fetches = %d, want 1", fetches.Load())
	}

	// A different page is a different slot.
	if _, err := Load(ctx, cache, Billboards, s.WithPage(2), fetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fetches.Load() != 2 {
		t.Errorf("fetches = %d, want 2", fetches.Load())
	}
}

func TestDeleteRowInvalidatesOnSuccessOnly(t *testing.T) {
	cache := querycache.New(querycache.Config{})
	ctx := context.Background()

	// Seed a cached page, then delete a row.
	var fetches atomic.Int32
	fetch := func(ctx context.Context, s ListState) (catalog.PagedResult[string], error) {
		fetches.Add(1)
		return catalog.PagedResult[string]{Data: []string{"row"}, Total: 1, TotalPages: 1}, nil
	}
	s := Colors.ParseQuery(nil)
	if _, err := Load(ctx, cache, Colors, s, fetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	err := DeleteRow(ctx, cache, Colors, func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("DeleteRow() error = %v", err)
	}
	if _, err := Load(ctx, cache, Colors, s, fetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fetches.Load() != 2 {
		t.Errorf("fetches after invalidation = %d, want 2", fetches.Load())
	}

	// A failing delete must leave the cache untouched: the next load
	// still comes from the fresh slot.
	failed := DeleteRow(ctx, cache, Colors, func(ctx context.Context) error {
		return errors.New("color in use")
	})
	if failed == nil {
		t.Fatal("DeleteRow() should propagate the deletion failure")
	}
	if _, err := Load(ctx, cache, Colors, s, fetch); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fetches.Load() != 2 {
		t.Errorf("fetches after failed delete = %d, want 2", fetches.Load())
	}
}

func TestLoadOptionsSharesResourcePrefix(t *testing.T) {
	cache := querycache.New(querycache.Config{})
	ctx := context.Background()

	var fetches atomic.Int32
	fetch := func(ctx context.Context) ([]catalog.BillboardRef, error) {
		fetches.Add(1)
		return []catalog.BillboardRef{{Label: "Summer Sale"}}, nil
	}

	options, err := LoadOptions(ctx, cache, Billboards, fetch)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if len(options) != 1 || options[0].Label != "Summer Sale" {
		t.Errorf("options = %+v", options)
	}

	// Dropdown lookups stay fresh for minutes, not seconds.
	if _, err := LoadOptions(ctx, cache, Billboards, fetch); err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if fetches.Load() != 1 {
		t.Errorf("fetches = %d, want 1", fetches.Load())
	}

	// A billboard write invalidates the dropdown along with the list pages.
	cache.Invalidate(Billboards.InvalidationKey())
	if _, err := LoadOptions(ctx, cache, Billboards, fetch); err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if fetches.Load() != 2 {
		t.Errorf("fetches after invalidation = %d, want 2", fetches.Load())
	}
}
