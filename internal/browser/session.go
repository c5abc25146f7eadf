package browser

import (
	"context"
)

// LookupFunc fetches the detail record for id. It is called on every
// selection.
type LookupFunc[D any] func(ctx context.Context, id int64) (D, error)

// Session holds the pages of one browse, its cursor and the detail lookup.
// It is not safe for concurrent use.
type Session[D any] struct {
	pages  []Page
	cursor Cursor
	lookup LookupFunc[D]
}

// NewSession paginates records and positions the cursor on the first page.
// It fails with common.ErrInvalidConfiguration for a non-positive pageSize
// and with common.ErrEmptyResultSet when there is nothing to browse.
func NewSession[D any](records []Summary, pageSize int, lookup LookupFunc[D]) (*Session[D], error) {
	pages, err := Paginate(records, pageSize)
	if err != nil {
		return nil, err
	}
	cursor, err := NewCursor(pages)
	if err != nil {
		return nil, err
	}
	return &Session[D]{pages: pages, cursor: cursor, lookup: lookup}, nil
}

// Cursor returns the current position.
func (s *Session[D]) Cursor() Cursor { return s.cursor }

// Page returns the entries of the current page.
func (s *Session[D]) Page() Page { return s.pages[s.cursor.Current] }

// Lines renders the current page.
func (s *Session[D]) Lines() []string { return Render(s.Page()) }

// Apply runs cmd and keeps the resulting cursor.
func (s *Session[D]) Apply(cmd Command) (Result, error) {
	res, err := Navigate(s.pages, s.cursor, cmd)
	if err != nil {
		return res, err
	}
	s.cursor = res.Cursor
	return res, nil
}

// Detail resolves entry on the current page and fetches its detail record.
func (s *Session[D]) Detail(ctx context.Context, entry int) (int64, D, error) {
	var zero D

	res, err := Navigate(s.pages, s.cursor, SelectEntry(entry))
	if err != nil {
		return 0, zero, err
	}

	d, err := s.lookup(ctx, res.Selected)
	if err != nil {
		return res.Selected, zero, err
	}
	return res.Selected, d, nil
}

// Summaries maps items to browser rows with fn.
func Summaries[T any](items []T, fn func(T) Summary) []Summary {
	out := make([]Summary, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
