package todo

import (
	"errors"
	"testing"
)

func TestAddPrependsNewestFirst(t *testing.T) {
	s := NewStore()
	a, err := s.Add("A")
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	b, err := s.Add("B")
	if err != nil {
		t.Fatalf("add B: %v", err)
	}

	got := s.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("expected order [B A], got [%s %s]", got[0].Title, got[1].Title)
	}
	if got[0].Done {
		t.Fatal("new item must start pending")
	}
	if a.ID == b.ID {
		t.Fatal("ids must be unique")
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("CreatedAt must be set")
	}
}

func TestAddTrimsTitle(t *testing.T) {
	s := NewStore()
	got, err := s.Add("  Buy milk  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Title != "Buy milk" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		t.Run("title="+title, func(t *testing.T) {
			s := NewStore()
			if _, err := s.Add(title); !errors.Is(err, ErrEmptyTitle) {
				t.Fatalf("expected ErrEmptyTitle, got %v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("store must stay unchanged, has %d items", s.Len())
			}
		})
	}
}

func TestToggleDoneAlternates(t *testing.T) {
	s := NewStore()
	added, _ := s.Add("A")

	got, ok := s.ToggleDone(added.ID)
	if !ok || !got.Done {
		t.Fatalf("first toggle: ok=%v done=%v", ok, got.Done)
	}
	got, ok = s.ToggleDone(added.ID)
	if !ok || got.Done {
		t.Fatalf("second toggle must revert: ok=%v done=%v", ok, got.Done)
	}
}

func TestToggleDoneMissingID(t *testing.T) {
	s := NewStore()
	s.Add("A")
	if _, ok := s.ToggleDone("nope"); ok {
		t.Fatal("toggle of unknown id must report not found")
	}
	if s.List()[0].Done {
		t.Fatal("toggle of unknown id must not touch other records")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("A")
	s.Add("B")

	s.Remove(a.ID)
	if s.Len() != 1 {
		t.Fatalf("expected 1 item after remove, got %d", s.Len())
	}
	s.Remove(a.ID) // second remove is a no-op
	if s.Len() != 1 {
		t.Fatalf("expected 1 item after double remove, got %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add("A")
	s.Add("B")
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d items", s.Len())
	}
	s.Clear() // clearing an empty store is fine
}

func TestListIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Add("A")
	snap := s.List()
	snap[0].Done = true
	if s.List()[0].Done {
		t.Fatal("mutating the snapshot must not affect the store")
	}
}

func TestPartitionKeepsOrder(t *testing.T) {
	items := []Todo{
		{ID: "1", Title: "c"},
		{ID: "2", Title: "b", Done: true},
		{ID: "3", Title: "a"},
		{ID: "4", Title: "d", Done: true},
	}
	pending, done := Partition(items)
	if len(pending) != 2 || pending[0].ID != "1" || pending[1].ID != "3" {
		t.Fatalf("bad pending partition: %+v", pending)
	}
	if len(done) != 2 || done[0].ID != "2" || done[1].ID != "4" {
		t.Fatalf("bad done partition: %+v", done)
	}
}
