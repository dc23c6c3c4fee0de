package catalog

import (
	"net/url"
	"strconv"

	"github.com/g-villarinho/flash-buy-admin/internal/transport"
)

const (
	// DefaultLimit is the page size used when a list call omits it.
	DefaultLimit = 10
	// MaxLimit is the server's page-size cap, used by the unpaged GetAll
	// lookups that feed dropdowns.
	MaxLimit = 1000
)

// Client exposes the flash-buy API resources.
type Client struct {
	api *transport.Client
}

// New wraps a transport client.
func New(api *transport.Client) *Client {
	return &Client{api: api}
}

// PageParams is the shared slice of every paged list call.
type PageParams struct {
	Page  int
	Limit int
}

// query renders the pagination slice with its defaults applied. Filter
// values are added by the callers; empty ones are dropped at the
// transport boundary.
func (p PageParams) query() url.Values {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func allPages() url.Values {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(MaxLimit))
	return q
}
