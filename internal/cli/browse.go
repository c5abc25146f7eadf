package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storekeeper/internal/browser"
	"github.com/dmitrijs2005/storekeeper/internal/common"
)

// browse pages through records until the user opens an entry or quits.
// The opened entry is fetched with lookup and printed with show. It returns
// the opened ID, or ok == false when the user quit.
func browse[D any](ctx context.Context, a *App, title string, records []browser.Summary,
	lookup browser.LookupFunc[D], show func(D)) (id int64, ok bool, err error) {

	timed := func(ctx context.Context, id int64) (D, error) {
		return call(ctx, a, func(ctx context.Context) (D, error) { return lookup(ctx, id) })
	}

	s, err := browser.NewSession(records, a.config.PageSize, timed)
	if err != nil {
		return 0, false, err
	}

	for {
		a.printf("\n--- %s: %s ---\n\n", title, s.Cursor())
		for _, line := range s.Lines() {
			a.println(line)
		}

		input, err := GetSimpleText(a.reader,
			"\nSelect an entry to view (0 or n: next page, -1 or p: previous page, q: back)", a.out)
		if err != nil {
			return 0, false, err
		}

		cmd, err := browser.ParseCommand(input)
		if err != nil {
			a.println(userMessage(err))
			continue
		}

		switch cmd.Kind {
		case browser.Quit:
			return 0, false, nil
		case browser.Next, browser.Prev:
			if _, err := s.Apply(cmd); err != nil {
				return 0, false, err
			}
			continue
		}

		id, detail, err := s.Detail(ctx, cmd.Entry)
		if errors.Is(err, common.ErrSelectionOutOfRange) {
			a.println(userMessage(err))
			continue
		}
		if err != nil {
			return id, false, err
		}

		show(detail)
		a.pause()
		return id, true, nil
	}
}
