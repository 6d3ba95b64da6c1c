package todo

import "time"

// Todo is the domain model for a list entry. Title is fixed at creation;
// there is no edit operation.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Partition splits items into pending and done sublists for display,
// preserving the incoming order in each.
func Partition(items []Todo) (pending, done []Todo) {
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pending = append(pending, it)
		}
	}
	return pending, done
}
