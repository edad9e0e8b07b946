package timeline

import (
	"github.com/Iron-Ham/timeline/internal/errors"
)

// SelectionState names the two states of a Selection.
type SelectionState int

const (
	// Empty means no event is selected and no detail view is open.
	Empty SelectionState = iota
	// Selected means exactly one event is held.
	Selected
)

// String returns the state name.
func (s SelectionState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// Membership is the lookup a Selection uses to validate events. *Store
// implements it.
type Membership interface {
	Contains(e Event) bool
}

// SelectionOption configures a Selection.
type SelectionOption func(*Selection)

// WithMembership makes Select reject events that members does not contain.
func WithMembership(members Membership) SelectionOption {
	return func(s *Selection) {
		s.members = members
	}
}

// Selection tracks at most one selected event. It starts Empty, has no
// terminal state and can be reused for the life of a session. Whether a
// modal opens in response is up to whoever observes it.
//
// Selection is not safe for concurrent use; it belongs to the single
// goroutine that handles user input.
type Selection struct {
	current  Event
	selected bool
	members  Membership
}

// NewSelection creates an Empty selection.
func NewSelection(opts ...SelectionOption) *Selection {
	s := &Selection{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select transitions to Selected(e) from either state; the last select wins.
// With membership validation enabled, an event outside the collection
// returns *errors.UnknownEventError and leaves the state unchanged.
func (s *Selection) Select(e Event) error {
	if s.members != nil && !s.members.Contains(e) {
		return errors.NewUnknownEventError(e.Year, e.Title)
	}
	s.current = e
	s.selected = true
	return nil
}

// Clear transitions to Empty from either state.
func (s *Selection) Clear() {
	s.current = Event{}
	s.selected = false
}

// Current returns the held event and true, or the zero Event and false.
func (s *Selection) Current() (Event, bool) {
	return s.current, s.selected
}

// State returns Empty or Selected.
func (s *Selection) State() SelectionState {
	if s.selected {
		return Selected
	}
	return Empty
}
