// Package modal tracks which detail item, if any, is displayed over the
// page, and holds the background scroll lock while anything is displayed.
package modal

// Slot is a Closed/Open(item) state machine for one modal category.
// The zero value is Closed.
type Slot[T any] struct {
	item T
	open bool
}

// Select opens the slot on item, replacing any item already shown.
func (s *Slot[T]) Select(item T) {
	s.item = item
	s.open = true
}

// Close returns the slot to Closed. Closing a closed slot does nothing.
func (s *Slot[T]) Close() {
	var zero T
	s.item = zero
	s.open = false
}

// Active returns the displayed item and true, or the zero value and false.
func (s *Slot[T]) Active() (T, bool) {
	return s.item, s.open
}

func (s *Slot[T]) IsOpen() bool { return s.open }
