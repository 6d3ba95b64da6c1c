package todo

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned by Add for an empty or whitespace-only title.
var ErrEmptyTitle = errors.New("empty title")

// Store owns the ordered todo list. Newest entries come first. All mutation
// goes through its methods; callers never touch the slice directly.
//
// No locking: there is a single logical writer (the UI event loop), so
// operations never overlap.
type Store struct {
	items []Todo
	now   func() time.Time
}

// NewStore builds a store seeded with the given items, in the given order.
func NewStore(items ...Todo) *Store {
	s := &Store{now: time.Now}
	s.items = append(s.items, items...)
	return s
}

// Add creates a record with a fresh id and prepends it.
// The trimmed title must be non-empty.
func (s *Store) Add(title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}
	t := Todo{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
	}
	s.items = append([]Todo{t}, s.items...)
	return t, nil
}

// ToggleDone flips the done flag on the record with the given id and returns
// the updated record. A missing id is not an error; ok reports whether a
// record was found.
func (s *Store) ToggleDone(id string) (Todo, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			return s.items[i], true
		}
	}
	return Todo{}, false
}

// Remove deletes the record with the given id; no-op if absent.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the list unconditionally.
func (s *Store) Clear() {
	s.items = nil
}

// List returns a snapshot copy of the current order.
func (s *Store) List() []Todo {
	out := make([]Todo, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of records.
func (s *Store) Len() int { return len(s.items) }
