package timeline

import "sync"

// Store holds the immutable event collection for a session. The only way to
// change it is to replace the whole collection with Load.
//
// Store is safe for concurrent use so a file watcher may reload it from its
// own goroutine.
type Store struct {
	mu     sync.RWMutex
	events []Event
}

// NewStore creates an empty store. Until Load is called, All returns an
// empty collection.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the current collection wholesale. The slice is copied, so
// callers may reuse their buffer afterwards.
func (s *Store) Load(events []Event) {
	snapshot := make([]Event, len(events))
	copy(snapshot, events)

	s.mu.Lock()
	s.events = snapshot
	s.mu.Unlock()
}

// All returns the current collection in insertion order. The returned slice
// is a copy; modifying it does not affect the store. It is never nil.
func (s *Store) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of loaded events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Find returns the event with the given year.
func (s *Store) Find(year string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := IndexOf(s.events, year); i >= 0 {
		return s.events[i], true
	}
	return Event{}, false
}

// Contains reports whether e, compared field by field, is in the collection.
func (s *Store) Contains(e Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, candidate := range s.events {
		if candidate == e {
			return true
		}
	}
	return false
}
