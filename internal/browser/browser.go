package browser

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/common"
)

// Summary is one listing row: the entity ID plus its display fields.
type Summary struct {
	ID     int64
	Fields []string
}

// Page is a slice of at most pageSize summaries.
type Page []Summary

// Cursor points at the current page. 0 <= Current < Total always holds for a
// cursor returned by this package.
type Cursor struct {
	Current int
	Total   int
}

// Number returns the 1-based page number for display.
func (c Cursor) Number() int { return c.Current + 1 }

// String renders the cursor as "Page 1/3".
func (c Cursor) String() string {
	return fmt.Sprintf("Page %d/%d", c.Number(), c.Total)
}

func (c Cursor) valid() bool {
	return c.Total > 0 && c.Current >= 0 && c.Current < c.Total
}

// Paginate splits records into pages of pageSize entries. All pages but the
// last hold exactly pageSize entries; the pages concatenate back to records.
// An empty input yields zero pages.
func Paginate(records []Summary, pageSize int) ([]Page, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", common.ErrInvalidConfiguration, pageSize)
	}

	pages := make([]Page, 0, (len(records)+pageSize-1)/pageSize)
	for i := 0; i < len(records); i += pageSize {
		end := min(i+pageSize, len(records))
		pages = append(pages, Page(records[i:end:end]))
	}
	return pages, nil
}

// Render returns one display line per entry, numbered from 1.
func Render(page Page) []string {
	lines := make([]string, 0, len(page))
	for i, s := range page {
		line := fmt.Sprintf("Entry # %d | ID: %d", i+1, s.ID)
		if len(s.Fields) > 0 {
			line += " | " + strings.Join(s.Fields, " | ")
		}
		lines = append(lines, line)
	}
	return lines
}

// NewCursor returns a cursor on the first page. Zero pages cannot be
// navigated and yield common.ErrEmptyResultSet.
func NewCursor(pages []Page) (Cursor, error) {
	if len(pages) == 0 {
		return Cursor{}, common.ErrEmptyResultSet
	}
	return Cursor{Current: 0, Total: len(pages)}, nil
}

// Result is the outcome of one navigation step.
type Result struct {
	Cursor Cursor

	// Selected is the chosen ID when Kind is Select.
	Selected int64

	// Kind echoes the command that produced the result.
	Kind CommandKind
}

// Navigate applies cmd to c.
//
// Next and Prev move circularly. Select(n) is valid iff 1 <= n <= len(page)
// and resolves to the ID at position n-1 of the current page; otherwise it
// returns common.ErrSelectionOutOfRange together with the unchanged cursor.
// Quit returns the cursor as is.
func Navigate(pages []Page, c Cursor, cmd Command) (Result, error) {
	if len(pages) == 0 {
		return Result{Cursor: c, Kind: cmd.Kind}, common.ErrEmptyResultSet
	}
	if !c.valid() || c.Total != len(pages) {
		return Result{Cursor: c, Kind: cmd.Kind}, fmt.Errorf("%w: cursor %d/%d over %d pages",
			common.ErrInvalidConfiguration, c.Current, c.Total, len(pages))
	}

	res := Result{Cursor: c, Kind: cmd.Kind}
	switch cmd.Kind {
	case Next:
		res.Cursor.Current = (c.Current + 1) % c.Total
	case Prev:
		res.Cursor.Current = (c.Current - 1 + c.Total) % c.Total
	case Select:
		page := pages[c.Current]
		if cmd.Entry < 1 || cmd.Entry > len(page) {
			return res, fmt.Errorf("%w: entry %d, page has %d", common.ErrSelectionOutOfRange, cmd.Entry, len(page))
		}
		res.Selected = page[cmd.Entry-1].ID
	case Quit:
	default:
		return res, fmt.Errorf("%w: %v", common.ErrInvalidCommand, cmd)
	}
	return res, nil
}
