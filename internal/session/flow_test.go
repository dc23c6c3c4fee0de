package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-villarinho/flash-buy-admin/internal/apierr"
	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/forms"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
	"github.com/g-villarinho/flash-buy-admin/internal/screens"
	"github.com/g-villarinho/flash-buy-admin/internal/transport"
)

// fakeStore is an in-memory rendition of one store's billboard endpoints,
// enough to drive the create-then-list flow end to end. Deleting any
// category conflicts, as if it still had products.
type fakeStore struct {
	mu         sync.Mutex
	storeID    uuid.UUID
	billboards []catalog.Billboard
	expired    bool
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch {
	case r.URL.Path == "/me/stores/first":
		json.NewEncoder(w).Encode(catalog.Store{ID: f.storeID, Name: "Loja"})
	case strings.HasSuffix(r.URL.Path, "/billboards") && r.Method == http.MethodPost:
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b := catalog.Billboard{ID: uuid.New(), Label: r.FormValue("label")}
		f.billboards = append(f.billboards, b)
		json.NewEncoder(w).Encode(map[string]uuid.UUID{"id": b.ID})
	case strings.HasSuffix(r.URL.Path, "/billboards") && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(catalog.PagedResult[catalog.Billboard]{
			Data:       f.billboards,
			Total:      int64(len(f.billboards)),
			TotalPages: 1,
		})
	case strings.Contains(r.URL.Path, "/categories/") && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"category has products"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}
}

func (f *fakeStore) expire() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired = true
}

type flow struct {
	fake    *fakeStore
	client  *catalog.Client
	cache   *querycache.Cache
	sess    *Session
	submit  *forms.Handler
	storeID uuid.UUID
}

func newFlow(t *testing.T) *flow {
	t.Helper()

	fake := &fakeStore{storeID: uuid.New()}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	api, err := transport.New(transport.Config{BaseURL: server.URL})
	require.NoError(t, err)

	client := catalog.New(api)
	cache := querycache.New(querycache.Config{})
	return &flow{
		fake:    fake,
		client:  client,
		cache:   cache,
		sess:    New(client, cache, zerolog.Nop()),
		submit:  forms.NewHandler(client, cache, zerolog.Nop()),
		storeID: fake.storeID,
	}
}

func (f *flow) listBillboards(t *testing.T) screens.Page[catalog.Billboard] {
	t.Helper()

	page, err := screens.Load(context.Background(), f.cache, screens.Billboards, screens.ListState{Page: 1},
		func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Billboard], error) {
			return f.client.ListBillboards(ctx, f.storeID, catalog.ListBillboardsParams{
				PageParams: catalog.PageParams{Page: s.Page},
				Label:      s.Filters["label"],
			})
		})
	require.NoError(t, err)
	return page
}

func TestCreateBillboardShowsUpInListAfterRedirect(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	nav, err := f.sess.Bootstrap(ctx)
	require.NoError(t, err)
	require.Equal(t, "/"+f.storeID.String(), nav.Path)

	page := f.listBillboards(t)
	require.Empty(t, page.Rows)

	form := forms.BillboardForm{
		Label: "Summer Sale",
		Image: &catalog.FileUpload{Filename: "banner.png", Content: []byte("png")},
	}
	out := f.submit.CreateBillboard(ctx, f.storeID, form, "")
	require.True(t, out.Saved)
	assert.Equal(t, "/"+f.storeID.String()+"/billboards", out.Redirect)

	// the redirect lands back on the list, which must refetch and include
	// the new row even though the previous page was inside its fresh window
	page = f.listBillboards(t)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Summer Sale", page.Rows[0].Label)
	assert.EqualValues(t, 1, page.Total)
}

func TestDeleteReferencedCategoryWarnsWithoutInvalidating(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	fetches := 0
	load := func() {
		_, err := f.cache.Query(ctx, screens.Categories.CacheKey(screens.ListState{Page: 1}),
			func(context.Context) (any, error) {
				fetches++
				return catalog.PagedResult[catalog.Category]{}, nil
			}, querycache.Options{FreshFor: screens.ListFreshFor})
		require.NoError(t, err)
	}
	load()
	require.Equal(t, 1, fetches)

	err := screens.DeleteRow(ctx, f.cache, screens.Categories, func(ctx context.Context) error {
		return f.client.DeleteCategory(ctx, f.storeID, uuid.New())
	})
	require.Error(t, err)
	assert.True(t, apierr.IsConflict(err))

	// failed delete leaves the cached page alone
	load()
	assert.Equal(t, 1, fetches)
}

func TestExpiredSessionMidDashboardResetsToLogin(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	_, err := f.sess.Bootstrap(ctx)
	require.NoError(t, err)
	f.sess.Modal().Open()

	f.fake.expire()
	f.cache.Invalidate(screens.Billboards.InvalidationKey())

	_, err = screens.Load(ctx, f.cache, screens.Billboards, screens.ListState{Page: 1},
		func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Billboard], error) {
			return f.client.ListBillboards(ctx, f.storeID, catalog.ListBillboardsParams{
				PageParams: catalog.PageParams{Page: s.Page},
			})
		})
	require.Error(t, err)

	nav, handled := f.sess.HandleAPIError(err)
	require.True(t, handled)
	assert.Equal(t, LoginNav(), nav)
	assert.False(t, f.sess.Modal().IsOpen())
	assert.False(t, f.sess.Modal().HasOpened())
}
