package screens

import "fmt"

// Paginator is the previous/next control state for one rendered page.
type Paginator struct {
	Page       int
	TotalPages int
}

// CanPrev reports whether the "previous" control is enabled.
func (p Paginator) CanPrev() bool { return p.Page > 1 }

// CanNext reports whether the "next" control is enabled.
func (p Paginator) CanNext() bool { return p.Page < p.TotalPages }

// Prev returns the previous page number; calling it while CanPrev is
// false stays on the current page.
func (p Paginator) Prev() int {
	if !p.CanPrev() {
		return p.Page
	}
	return p.Page - 1
}

// Next returns the next page number; calling it while CanNext is false
// stays on the current page.
func (p Paginator) Next() int {
	if !p.CanNext() {
		return p.Page
	}
	return p.Page + 1
}

// Heading renders the list heading with the paged result's total row
// count, e.g. "Billboards (12)". The count comes from the envelope, not
// from the rendered rows.
func Heading(title string, total int64) string {
	return fmt.Sprintf("%s (%d)", title, total)
}
