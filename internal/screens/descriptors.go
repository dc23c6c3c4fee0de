package screens

import "github.com/g-villarinho/flash-buy-admin/internal/querycache"

// The four list screens the dashboard instantiates. Filter keys mirror
// the query parameters each list endpoint accepts.
var (
	Billboards = Descriptor{Resource: "billboards", FilterKeys: []string{"label"}, Limit: 10}
	Categories = Descriptor{Resource: "categories", FilterKeys: []string{"name", "billboardId"}, Limit: 10}
	Sizes      = Descriptor{Resource: "sizes", FilterKeys: []string{"name"}, Limit: 10}
	Colors     = Descriptor{Resource: "colors", FilterKeys: []string{"name"}, Limit: 10}
	Products   = Descriptor{Resource: "products", FilterKeys: []string{"name"}, Limit: 10}
)

// CacheKey addresses the cache slot for one screen state:
// [resource, filters..., page]. Unset filters keep their position as
// empty segments so filtered and unfiltered pages never collide.
func (d Descriptor) CacheKey(s ListState) querycache.Key {
	parts := make([]any, 0, len(d.FilterKeys)+2)
	parts = append(parts, d.Resource)
	for _, key := range d.FilterKeys {
		parts = append(parts, s.Filters[key])
	}
	parts = append(parts, s.Page)
	return querycache.K(parts...)
}

// InvalidationKey addresses every cached page of the screen's resource.
func (d Descriptor) InvalidationKey() querycache.Key {
	return querycache.K(d.Resource)
}
