package screens

import "testing"

func TestPaginatorBounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		canPrev    bool
		canNext    bool
	}{
		{"first of many", 1, 5, false, true},
		{"middle", 3, 5, true, true},
		{"last", 5, 5, true, false},
		{"single page", 1, 1, false, false},
		{"empty result", 1, 0, false, false},
		{"past the end", 6, 5, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginator{Page: tt.page, TotalPages: tt.totalPages}
			if p.CanPrev() != tt.canPrev {
				t.Errorf("CanPrev() = %v, want %v", p.CanPrev(), tt.canPrev)
			}
			if p.CanNext() != tt.canNext {
				t.Errorf("CanNext() = %v, want %v", p.CanNext(), tt.canNext)
			}
		})
	}
}

func TestPaginatorStepsAreGuarded(t *testing.T) {
	p := Paginator{Page: 1, TotalPages: 2}
	if p.Prev() != 1 {
		t.Errorf("Prev() on first page = %d, want 1", p.Prev())
	}
	if p.Next() != 2 {
		t.Errorf("Next() = %d, want 2", p.Next())
	}

	last := Paginator{Page: 2, TotalPages: 2}
	if last.Next() != 2 {
		t.Errorf("Next() on last page = %d, want 2", last.Next())
	}
	if last.Prev() != 1 {
		t.Errorf("Prev() = %d, want 1", last.Prev())
	}
}

func TestHeading(t *testing.T) {
	if got := Heading("Billboards", 12); got != "Billboards (12)" {
		t.Errorf("Heading() = %q", got)
	}
	if got := Heading("Sizes", 0); got != "Sizes (0)" {
		t.Errorf("Heading() = %q", got)
	}
}
