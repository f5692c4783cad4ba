package pagination

import (
	"errors"
	"net/url"
	"slices"
	"strconv"
)

var (
	// ErrCursorKind is returned when a cursor issued for one listing is replayed against another.
	ErrCursorKind = errors.New("cursor kind mismatch")
	// ErrCursorUnknown is returned when the cursor key is not in the listing.
	ErrCursorUnknown = errors.New("cursor references unknown entry")
)

// Request describes one page to cut from an ordered listing.
type Request struct {
	Kind     string
	Cursor   string
	Limit    int
	BasePath string
	Query    url.Values
}

// Page is a slice of a listing plus navigation metadata.
type Page[T any] struct {
	Items      []T
	Total      int
	NextCursor string
	PrevCursor string
	LinkHeader string
}

// Paginate returns the page of items following req.Cursor. key must return a
// value that is unique and stable for each entry.
func Paginate[T any](items []T, req Request, key func(T) string) (Page[T], error) {
	cur, err := DecodeCursor(req.Cursor)
	if err != nil {
		return Page[T]{}, err
	}
	if cur.Kind != "" && cur.Kind != req.Kind {
		return Page[T]{}, ErrCursorKind
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := 0
	if cur.After != "" {
		i := slices.IndexFunc(items, func(v T) bool { return key(v) == cur.After })
		if i < 0 {
			return Page[T]{}, ErrCursorUnknown
		}
		start = i + 1
	}
	end := min(start+limit, len(items))

	page := Page[T]{
		Items: slices.Clone(items[start:end]),
		Total: len(items),
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	if end < len(items) {
		page.NextCursor = Cursor{Kind: req.Kind, After: key(items[end-1])}.Encode()
	}
	switch {
	case start == 0:
	case start <= limit:
		page.PrevCursor = Cursor{Kind: req.Kind}.Encode()
	default:
		page.PrevCursor = Cursor{Kind: req.Kind, After: key(items[start-limit-1])}.Encode()
	}

	q := cloneValues(req.Query)
	q.Set("limit", strconv.Itoa(limit))
	page.LinkHeader = BuildLinkHeader(req.BasePath, q, page.NextCursor, page.PrevCursor)
	return page, nil
}
