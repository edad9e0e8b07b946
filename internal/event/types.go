// Package event defines event types for decoupling the timeline session from
// its presenters. The session publishes what changed; the TUI and CLI
// observe it instead of mutating visual state directly.
package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "events.loaded", "filter.changed")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Event type names.
const (
	TypeEventsLoaded     = "events.loaded"
	TypeLoadFailed       = "events.load_failed"
	TypeFilterChanged    = "filter.changed"
	TypeSelectionChanged = "selection.changed"
	TypeThemeChanged     = "theme.changed"
)

// -----------------------------------------------------------------------------
// Data Events
// -----------------------------------------------------------------------------

// EventsLoadedEvent is emitted after the store has been replaced.
type EventsLoadedEvent struct {
	baseEvent
	Source     string   // Where the data came from (loader.BuiltinSource or a path)
	Count      int      // Number of events now in the store
	Categories []string // Category set recomputed for the new collection
}

// NewEventsLoadedEvent creates an EventsLoadedEvent.
func NewEventsLoadedEvent(source string, count int, categories []string) EventsLoadedEvent {
	return EventsLoadedEvent{
		baseEvent:  newBaseEvent(TypeEventsLoaded),
		Source:     source,
		Count:      count,
		Categories: categories,
	}
}

// LoadFailedEvent is emitted when the loader could not produce events. The
// store is left as it was.
type LoadFailedEvent struct {
	baseEvent
	Source string
	Err    error
}

// NewLoadFailedEvent creates a LoadFailedEvent.
func NewLoadFailedEvent(source string, err error) LoadFailedEvent {
	return LoadFailedEvent{
		baseEvent: newBaseEvent(TypeLoadFailed),
		Source:    source,
		Err:       err,
	}
}

// -----------------------------------------------------------------------------
// State Events
// -----------------------------------------------------------------------------

// FilterChangedEvent is emitted when the active filter changes.
type FilterChangedEvent struct {
	baseEvent
	Previous string
	Current  string
	Visible  int // Number of events visible under the new filter
}

// NewFilterChangedEvent creates a FilterChangedEvent.
func NewFilterChangedEvent(previous, current string, visible int) FilterChangedEvent {
	return FilterChangedEvent{
		baseEvent: newBaseEvent(TypeFilterChanged),
		Previous:  previous,
		Current:   current,
		Visible:   visible,
	}
}

// SelectionChangedEvent is emitted on every select or clear. Year is empty
// when the selection was cleared.
type SelectionChangedEvent struct {
	baseEvent
	Year     string
	Selected bool
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(year string, selected bool) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent: newBaseEvent(TypeSelectionChanged),
		Year:      year,
		Selected:  selected,
	}
}

// ThemeChangedEvent is emitted when the light/dark mode is toggled.
type ThemeChangedEvent struct {
	baseEvent
	Mode string
}

// NewThemeChangedEvent creates a ThemeChangedEvent.
func NewThemeChangedEvent(mode string) ThemeChangedEvent {
	return ThemeChangedEvent{
		baseEvent: newBaseEvent(TypeThemeChanged),
		Mode:      mode,
	}
}
