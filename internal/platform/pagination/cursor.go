package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is an opaque position in a history listing. Kind names the listing
// the cursor was issued for; After is the key of the last entry already seen.
type Cursor struct {
	Kind  string
	After string
}

// Encode returns the URL-safe form handed to clients.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.After))
}

// DecodeCursor parses a cursor string. The empty string is the first page.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, after, ok := strings.Cut(string(b), ":")
	if !ok || kind == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: kind, After: after}, nil
}
