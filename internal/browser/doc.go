// Package browser turns an ordered list of summary rows into fixed-size
// pages and navigates them.
//
// Navigation is pure: Navigate takes the pages, a Cursor and a Command and
// returns the new Cursor (and, for a selection, the chosen ID). Nothing is
// kept at package level, so every step can be tested without a terminal.
//
// Navigation wraps around: Next on the last page lands on the first page,
// Prev on the first page lands on the last one. Entries are numbered from 1
// within the current page.
//
// Session bundles the pages, the cursor and a LookupFunc. Detail always calls
// the lookup, so a drill-down shows the row as it is now, not as it was when
// the list was built.
package browser
