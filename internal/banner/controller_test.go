package banner

import (
	"errors"
	"testing"

	"undone/internal/todo"
)

func TestAddShowsBannerAndUndoRemoves(t *testing.T) {
	s := todo.NewStore()
	c := New(s)

	added, err := c.Add("Buy milk")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	st := c.State()
	if !st.Visible || st.LastAction != ActionAdd {
		t.Fatalf("expected visible Add banner, got %+v", st)
	}
	if st.Message != `Added: "Buy milk"` {
		t.Fatalf("bad message: %q", st.Message)
	}
	if st.LastTodo.ID != added.ID {
		t.Fatal("banner must reference the stored record")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 item in store, got %d", s.Len())
	}

	c.Undo()
	if s.Len() != 0 {
		t.Fatal("undo of add must remove the record")
	}
	if c.State().Visible {
		t.Fatal("undo must hide the banner")
	}
}

func TestAddEmptyTitleLeavesBannerAlone(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	c.Add("A")

	if _, err := c.Add("   "); !errors.Is(err, todo.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if st := c.State(); !st.Visible || st.Message != `Added: "A"` {
		t.Fatalf("rejected add must not change banner state, got %+v", st)
	}
}

func TestCompleteShowsBannerAndUndoReverts(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	added, _ := c.Add("B")

	c.Toggle(added.ID)
	st := c.State()
	if !st.Visible || st.LastAction != ActionComplete {
		t.Fatalf("expected visible Complete banner, got %+v", st)
	}
	if st.Message != `Completed: "B"` {
		t.Fatalf("bad message: %q", st.Message)
	}

	c.Undo()
	if c.State().Visible {
		t.Fatal("undo must hide the banner")
	}
	if got := s.List()[0]; got.Done {
		t.Fatal("undo of complete must revert done to false")
	}
}

func TestUncompleteHidesBannerImmediately(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	added, _ := c.Add("B")

	c.Toggle(added.ID) // pending -> done, banner up
	c.Toggle(added.ID) // done -> pending, no banner for this direction
	if c.State().Visible {
		t.Fatal("un-completing must hide the banner")
	}
	if got := s.List()[0]; got.Done {
		t.Fatal("second toggle must leave the record pending")
	}
}

func TestToggleUnknownIDKeepsBanner(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	c.Add("A")

	c.Toggle("nope")
	if !c.State().Visible {
		t.Fatal("toggle of unknown id must not touch banner state")
	}
}

func TestExpire(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	c.Add("A")
	seq := c.Seq()

	c.Expire(seq)
	if c.State().Visible {
		t.Fatal("expire with current seq must hide the banner")
	}

	// Undo after expiry is a no-op.
	c.Undo()
	if s.Len() != 1 {
		t.Fatalf("undo after expiry must not mutate, got %d items", s.Len())
	}
}

func TestExpireStaleSeq(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	c.Add("A")
	stale := c.Seq()
	c.Add("B") // replaces the banner, arms a new timer

	c.Expire(stale)
	if st := c.State(); !st.Visible || st.Message != `Added: "B"` {
		t.Fatalf("stale expiry must not clear the newer banner, got %+v", st)
	}

	// Only the most recent bannered action is undoable.
	c.Undo()
	items := s.List()
	if len(items) != 1 || items[0].Title != "A" {
		t.Fatalf("undo must reverse only the latest add, got %+v", items)
	}
}

func TestDismissKeepsMutation(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	added, _ := c.Add("A")
	c.Toggle(added.ID)

	c.Dismiss()
	if c.State().Visible {
		t.Fatal("dismiss must hide the banner")
	}
	if got := s.List()[0]; !got.Done {
		t.Fatal("dismiss must not reverse the mutation")
	}

	c.Dismiss() // dismiss when idle is fine
}

func TestRemoveAndClearAreNotBannered(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	a, _ := c.Add("A")
	c.Dismiss()

	c.Remove(a.ID)
	if c.State().Visible {
		t.Fatal("remove must not show a banner")
	}
	c.Add("B")
	c.Dismiss()
	c.Clear()
	if c.State().Visible {
		t.Fatal("clear must not show a banner")
	}
	if s.Len() != 0 {
		t.Fatal("clear must empty the store")
	}
}

func TestUndoWhenIdle(t *testing.T) {
	s := todo.NewStore()
	c := New(s)
	c.Undo() // nothing to undo, nothing to crash on
	if s.Len() != 0 {
		t.Fatal("undo when idle must not mutate")
	}
}
