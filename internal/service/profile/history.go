package profile

import (
	"encoding/json"
	"slices"
)

// Log is an append-only, insertion-ordered history. Append never touches the
// receiver's backing array, so snapshots holding an older Log keep seeing
// exactly the entries they had.
type Log[T any] struct {
	entries []T
}

// NewLog builds a Log from existing entries (copied).
func NewLog[T any](entries ...T) Log[T] {
	return Log[T]{entries: slices.Clone(entries)}
}

// Append returns a new Log with e added at the end.
func (l Log[T]) Append(e T) Log[T] {
	next := make([]T, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	return Log[T]{entries: append(next, e)}
}

// Len returns the number of entries.
func (l Log[T]) Len() int { return len(l.entries) }

// At returns the i-th entry. It panics if i is out of range.
func (l Log[T]) At(i int) T { return l.entries[i] }

// Last returns the most recent entry, if any.
func (l Log[T]) Last() (T, bool) {
	if len(l.entries) == 0 {
		var zero T
		return zero, false
	}
	return l.entries[len(l.entries)-1], true
}

// All returns a copy of the entries in insertion order.
func (l Log[T]) All() []T {
	if len(l.entries) == 0 {
		return []T{}
	}
	return slices.Clone(l.entries)
}

func (l Log[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.All())
}

func (l *Log[T]) UnmarshalJSON(b []byte) error {
	var entries []T
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
