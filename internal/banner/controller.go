// Package banner tracks the most recent add/complete mutation and exposes a
// transient "undo" banner for it.
package banner

import (
	"fmt"
	"time"

	"undone/internal/todo"
)

// DismissAfter is how long a banner stays up without interaction.
const DismissAfter = 3 * time.Second

// Action identifies which mutation a banner offers to undo.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionComplete
)

// State is a snapshot of the banner. Zero value means hidden (idle).
type State struct {
	Visible    bool
	Message    string
	LastTodo   todo.Todo
	LastAction Action
}

// Controller is the mutation entry point for the UI. It forwards every
// change to the store and keeps the banner state machine in step: adds and
// pending→done toggles show a banner, everything else does not.
//
// The dismissal timer lives outside: each Showing transition bumps Seq, the
// caller schedules a one-shot for DismissAfter carrying that value, and
// Expire ignores any sequence that is no longer current. Replacing the timer
// is therefore just arming a new one.
type Controller struct {
	store *todo.Store
	state State
	seq   int
}

func New(store *todo.Store) *Controller {
	return &Controller{store: store}
}

// State returns the current banner snapshot.
func (c *Controller) State() State { return c.state }

// Seq returns the sequence number of the current banner. A dismissal timer
// armed now should deliver this value to Expire.
func (c *Controller) Seq() int { return c.seq }

// Add creates a todo and shows an "Added" banner for the stored record.
func (c *Controller) Add(title string) (todo.Todo, error) {
	t, err := c.store.Add(title)
	if err != nil {
		return todo.Todo{}, err
	}
	c.show(fmt.Sprintf("Added: %q", t.Title), t, ActionAdd)
	return t, nil
}

// Toggle flips a record's done flag. Completing shows a banner; reverting to
// pending hides any banner immediately. A missing id changes nothing.
func (c *Controller) Toggle(id string) {
	t, ok := c.store.ToggleDone(id)
	if !ok {
		return
	}
	if t.Done {
		c.show(fmt.Sprintf("Completed: %q", t.Title), t, ActionComplete)
	} else {
		c.state = State{}
	}
}

// Remove deletes a record. Not a bannered action; existing banner state is
// left alone.
func (c *Controller) Remove(id string) {
	c.store.Remove(id)
}

// Clear empties the store. Not a bannered action.
func (c *Controller) Clear() {
	c.store.Clear()
}

// Undo reverses the bannered mutation and hides the banner. No-op when no
// banner is showing (including after the timer already fired).
func (c *Controller) Undo() {
	if !c.state.Visible {
		return
	}
	switch c.state.LastAction {
	case ActionAdd:
		c.store.Remove(c.state.LastTodo.ID)
	case ActionComplete:
		c.store.ToggleDone(c.state.LastTodo.ID)
	}
	c.state = State{}
}

// Dismiss hides the banner without reversing anything.
func (c *Controller) Dismiss() {
	c.state = State{}
}

// Expire is the timer callback. It hides the banner only if seq still
// identifies the current one, so a stale timer can never clear a newer
// banner.
func (c *Controller) Expire(seq int) {
	if c.state.Visible && seq == c.seq {
		c.state = State{}
	}
}

func (c *Controller) show(msg string, t todo.Todo, a Action) {
	c.seq++
	c.state = State{
		Visible:    true,
		Message:    msg,
		LastTodo:   t,
		LastAction: a,
	}
}
