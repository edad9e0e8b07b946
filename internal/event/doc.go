// Package event provides a pub-sub event bus for decoupled communication
// between the timeline session and its presenters.
//
// The session publishes an event after each state transition; presenters
// subscribe and react (open the modal, re-render markers, log). Nothing in
// the timeline core depends on who listens.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//   - [Subscription]: Handle returned by Subscribe, passed to Unsubscribe
//
// # Event Categories
//
// Data:
//   - [EventsLoadedEvent]: the store was replaced with a new collection
//   - [LoadFailedEvent]: the loader failed; the store is unchanged
//
// State:
//   - [FilterChangedEvent]: the active category filter changed
//   - [SelectionChangedEvent]: an event was selected or the selection cleared
//   - [ThemeChangedEvent]: light/dark mode was toggled
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers run synchronously on
// the publishing goroutine, in subscription order. A panicking handler is
// logged and the remaining handlers still run.
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	bus.Subscribe(func(e event.Event) {
//	    changed := e.(event.SelectionChangedEvent)
//	    if changed.Selected {
//	        openModal(changed.Year)
//	    }
//	}, event.TypeSelectionChanged)
//
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "type", e.EventType())
//	})
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - events.loaded, events.load_failed
//   - filter.changed
//   - selection.changed
//   - theme.changed
package event
