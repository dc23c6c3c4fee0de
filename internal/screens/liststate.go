// Package screens models the paginated list screen pattern shared by the
// billboard, category, size and color screens: filter and page state
// derived from URL query parameters, the paginator transitions, and the
// cache key each state addresses. State lives in the query string so it
// survives reload and back-navigation; everything here is a pure mapping
// between that string and the screen's state.
package screens

import (
	"net/url"
	"strconv"
)

// Descriptor declares one list screen: which resource it lists, which
// filter keys it understands, and its page size.
type Descriptor struct {
	Resource   string
	FilterKeys []string
	Limit      int
}

// ListState is the state of one list screen instance.
type ListState struct {
	Page    int
	Filters map[string]string
}

// ParseQuery derives the screen state from URL query parameters. Any
// absent, non-numeric, or non-positive page collapses to 1; unknown query
// keys are ignored; absent filters stay unset.
func (d Descriptor) ParseQuery(query url.Values) ListState {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	filters := make(map[string]string, len(d.FilterKeys))
	for _, key := range d.FilterKeys {
		if v := query.Get(key); v != "" {
			filters[key] = v
		}
	}

	return ListState{Page: page, Filters: filters}
}

// EncodeQuery is the inverse of ParseQuery. Unset filters are omitted
// from the query string rather than written as empty values.
func (d Descriptor) EncodeQuery(s ListState) url.Values {
	query := url.Values{}
	page := s.Page
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	for _, key := range d.FilterKeys {
		if v := s.Filters[key]; v != "" {
			query.Set(key, v)
		}
	}
	return query
}

// WithFilters applies a filter-form submission: the new filter values
// replace the old ones (empty values clear their key) and the page always
// resets to 1.
func (s ListState) WithFilters(filters map[string]string) ListState {
	next := ListState{Page: 1, Filters: make(map[string]string, len(filters))}
	for key, v := range filters {
		if v != "" {
			next.Filters[key] = v
		}
	}
	return next
}

// Cleared removes every filter and resets the page to 1.
func (s ListState) Cleared() ListState {
	return ListState{Page: 1, Filters: map[string]string{}}
}

// WithPage moves to page n, clamped to 1, keeping the filters.
func (s ListState) WithPage(n int) ListState {
	if n < 1 {
		n = 1
	}
	filters := make(map[string]string, len(s.Filters))
	for key, v := range s.Filters {
		filters[key] = v
	}
	return ListState{Page: n, Filters: filters}
}

// HasAnyFilter reports whether any filter is set, which is what enables
// the "clear filters" control.
func (s ListState) HasAnyFilter() bool {
	return len(s.Filters) > 0
}
