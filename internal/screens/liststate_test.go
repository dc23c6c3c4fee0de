package screens

import (
	"net/url"
	"testing"
)

func TestParseQueryDefaults(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantPage int
	}{
		{"absent", "", 1},
		{"valid", "page=3", 3},
		{"zero", "page=0", 1},
		{"negative", "page=-2", 1},
		{"garbage", "page=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := url.ParseQuery(tt.rawQuery)
			s := Billboards.ParseQuery(query)
			if s.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", s.Page, tt.wantPage)
			}
		})
	}
}

func TestParseQueryReadsDeclaredFiltersOnly(t *testing.T) {
	query, _ := url.ParseQuery("page=2&label=sale&bogus=x")
	s := Billboards.ParseQuery(query)

	if s.Filters["label"] != "sale" {
		t.Errorf("label = %q", s.Filters["label"])
	}
	if _, ok := s.Filters["bogus"]; ok {
		t.Error("undeclared filter keys must be ignored")
	}
}

func TestQueryRoundTrip(t *testing.T) {
	s := ListState{Page: 4, Filters: map[string]string{"name": "shoes", "billboardId": "b-1"}}
	got := Categories.ParseQuery(Categories.EncodeQuery(s))

	if got.Page != 4 {
		t.Errorf("Page = %d", got.Page)
	}
	if got.Filters["name"] != "shoes" || got.Filters["billboardId"] != "b-1" {
		t.Errorf("Filters = %v", got.Filters)
	}
}

func TestEncodeQueryOmitsUnsetFilters(t *testing.T) {
	s := ListState{Page: 2, Filters: map[string]string{"name": "shoes"}}
	query := Categories.EncodeQuery(s)

	if _, present := query["billboardId"]; present {
		t.Error("unset filter must not appear in the query string")
	}
	if query.Get("name") != "shoes" || query.Get("page") != "2" {
		t.Errorf("query = %v", query)
	}
}

func TestWithFiltersResetsPage(t *testing.T) {
	s := ListState{Page: 7, Filters: map[string]string{"label": "old"}}
	next := s.WithFilters(map[string]string{"label": "new"})

	if next.Page != 1 {
		t.Errorf("Page = %d, want 1 after filter submission", next.Page)
	}
	if next.Filters["label"] != "new" {
		t.Errorf("label = %q", next.Filters["label"])
	}
}

func TestWithFiltersDropsEmptyValues(t *testing.T) {
	s := ListState{Page: 3, Filters: map[string]string{"label": "sale"}}
	next := s.WithFilters(map[string]string{"label": ""})

	if _, ok := next.Filters["label"]; ok {
		t.Error("submitting an empty filter value must clear the key")
	}
	if next.Page != 1 {
		t.Errorf("Page = %d, want 1", next.Page)
	}
}

func TestClearedResetsEverything(t *testing.T) {
	s := ListState{Page: 5, Filters: map[string]string{"name": "x", "billboardId": "y"}}
	next := s.Cleared()

	if next.Page != 1 || len(next.Filters) != 0 {
		t.Errorf("Cleared() = %+v", next)
	}
	if next.HasAnyFilter() {
		t.Error("HasAnyFilter() after clear = true")
	}
}

func TestWithPageKeepsFilters(t *testing.T) {
	s := ListState{Page: 1, Filters: map[string]string{"label": "sale"}}
	next := s.WithPage(2)

	if next.Page != 2 || next.Filters["label"] != "sale" {
		t.Errorf("WithPage(2) = %+v", next)
	}

	if s.WithPage(0).Page != 1 {
		t.Error("WithPage clamps to 1")
	}
}
