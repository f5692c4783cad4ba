package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// StateKey is the well-known key under which the whole profile record is
// stored as one JSON document.
const StateKey = "profile_state"

// Mutation applies one user action to a Store.
type Mutation func(s *Store) error

// Service persists profiles. Every Update loads the record once, applies the
// mutation through a Store and writes the record back if anything changed.
//
// Cross-device writes are last-writer-wins within the backing transaction;
// there is no merge of concurrent histories.
type Service interface {
	Create(ctx context.Context, userID string) (*UserProfile, error)
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, userID, action string, fn Mutation) (*UserProfile, error)
}

func encodeState(p UserProfile) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding profile state: %w", err)
	}
	return string(b), nil
}

func decodeState(state string) (UserProfile, error) {
	var p UserProfile
	if state == "" {
		return p, nil
	}
	if err := json.Unmarshal([]byte(state), &p); err != nil {
		return UserProfile{}, fmt.Errorf("decoding profile state: %w", err)
	}
	return p, nil
}

// applyMutation runs fn against a Store seeded with current. It reports the
// resulting snapshot and whether any setter fired.
func applyMutation(current UserProfile, fn Mutation) (UserProfile, bool, error) {
	store := NewStore(current)
	changed := false
	cancel := store.Subscribe(func(UserProfile) { changed = true })
	defer cancel()

	if err := fn(store); err != nil {
		return UserProfile{}, false, err
	}
	return store.Snapshot(), changed, nil
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal_error"
	}
}
