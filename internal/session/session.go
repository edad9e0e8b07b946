// Package session binds the timeline core to one viewing session.
//
// A Session owns the event store, the active filter, the selection and a
// reference to the theme. Every state change is published on the event bus
// so presenters can react without reaching into each other.
//
// A Session is not safe for concurrent use. It belongs to the goroutine that
// handles user input (the bubbletea Update loop, or a CLI command); loads
// that happen elsewhere are handed to it with Replace or LoadFailed.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/Iron-Ham/timeline/internal/appearance"
	"github.com/Iron-Ham/timeline/internal/errors"
	"github.com/Iron-Ham/timeline/internal/event"
	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

// Source produces a full event collection. *loader.Loader implements it.
type Source interface {
	Load(ctx context.Context) ([]timeline.Event, error)
	Source() string
}

// Session is the single state core shared by the TUI and CLI.
type Session struct {
	id        string
	store     *timeline.Store
	filter    timeline.Filter
	selection *timeline.Selection
	theme     *appearance.State
	unwatch   func()

	bus    *event.Bus
	logger *logging.Logger

	source  string
	lastErr error
}

// Option configures a Session.
type Option func(*Session)

// WithBus publishes changes on bus instead of a private one.
func WithBus(bus *event.Bus) Option {
	return func(s *Session) { s.bus = bus }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithTheme uses theme instead of the process-wide appearance state.
func WithTheme(theme *appearance.State) Option {
	return func(s *Session) { s.theme = theme }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New creates a Session with an empty store, the All filter and no
// selection.
func New(opts ...Option) *Session {
	s := &Session{
		store:  timeline.NewStore(),
		filter: timeline.All,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = generateID()
	}
	if s.logger == nil {
		s.logger = logging.NopLogger()
	}
	s.logger = s.logger.WithSession(s.id).WithComponent("session")
	if s.bus == nil {
		s.bus = event.NewBus(s.logger)
	}
	if s.theme == nil {
		s.theme = appearance.Process()
	}
	s.selection = timeline.NewSelection(timeline.WithMembership(s.store))

	s.unwatch = s.theme.OnChange(func(m appearance.Mode) {
		s.bus.Publish(event.NewThemeChangedEvent(string(m)))
	})

	return s
}

// Close detaches the session from its theme, so later toggles are no longer
// published on its bus. The session's own state stays readable.
func (s *Session) Close() {
	if s.unwatch != nil {
		s.unwatch()
		s.unwatch = nil
	}
}

// generateID creates a short random hex ID
func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Bus returns the bus changes are published on.
func (s *Session) Bus() *event.Bus { return s.bus }

// Theme returns the appearance state the session toggles.
func (s *Session) Theme() *appearance.State { return s.theme }

// Source names where the current events came from. Empty before the first
// successful load.
func (s *Session) Source() string { return s.source }

// LastError returns the most recent load failure, or nil once a load
// succeeds.
func (s *Session) LastError() error { return s.lastErr }

// -----------------------------------------------------------------------------
// Loading
// -----------------------------------------------------------------------------

// Load reads src and applies the result: Replace on success, LoadFailed on
// failure. The returned error is the load failure, if any.
func (s *Session) Load(ctx context.Context, src Source) error {
	events, err := src.Load(ctx)
	if err != nil {
		s.LoadFailed(src.Source(), err)
		return err
	}
	s.Replace(src.Source(), events)
	return nil
}

// Replace swaps in a new collection wholesale. A filter whose category no
// longer exists falls back to All. The selection is looked up again by year:
// it follows an edited event and is cleared when the year is gone.
func (s *Session) Replace(source string, events []timeline.Event) {
	s.store.Load(events)
	s.source = source
	s.lastErr = nil

	categories := s.Categories()
	s.bus.Publish(event.NewEventsLoadedEvent(source, s.store.Len(), categories))
	s.logger.Info("events replaced", "source", source, "count", s.store.Len(), "categories", len(categories))

	if !s.filter.IsAll() && !containsCategory(categories, string(s.filter)) {
		s.SetFilter(timeline.All)
	}
	if current, ok := s.selection.Current(); ok {
		fresh, found := s.store.Find(current.Year)
		switch {
		case !found:
			s.Clear()
		case fresh != current:
			_ = s.Select(fresh)
		}
	}
}

// LoadFailed records a failed load. The store keeps whatever it held
// before, which is empty if nothing ever loaded.
func (s *Session) LoadFailed(source string, err error) {
	s.lastErr = err
	s.logger.Warn("load failed",
		"source", source,
		"error", err,
		"severity", errors.GetSeverity(err).String(),
		"kept", s.store.Len(),
	)
	s.bus.Publish(event.NewLoadFailedEvent(source, err))
}

func containsCategory(categories []string, c string) bool {
	for _, existing := range categories {
		if existing == c {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

// All returns every loaded event in order.
func (s *Session) All() []timeline.Event { return s.store.All() }

// Categories returns the category set in first-occurrence order.
func (s *Session) Categories() []string { return timeline.Categories(s.store.All()) }

// Filter returns the active filter.
func (s *Session) Filter() timeline.Filter { return s.filter }

// Options returns the filter choices: All, then every category.
func (s *Session) Options() []timeline.Filter { return timeline.Options(s.Categories()) }

// Visible returns the events that pass the active filter.
func (s *Session) Visible() []timeline.Event { return timeline.Apply(s.store.All(), s.filter) }

// Find returns the loaded event with the given year.
func (s *Session) Find(year string) (timeline.Event, bool) { return s.store.Find(year) }

// Current returns the selected event, if any.
func (s *Session) Current() (timeline.Event, bool) { return s.selection.Current() }

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// SetFilter makes f the active filter. A category that matches nothing is
// allowed and simply shows no events. Publishes only when the filter
// actually changes.
func (s *Session) SetFilter(f timeline.Filter) {
	if f == s.filter {
		return
	}
	previous := s.filter
	s.filter = f

	visible := len(s.Visible())
	s.logger.Debug("filter changed", "from", previous.String(), "to", f.String(), "visible", visible)
	s.bus.Publish(event.NewFilterChangedEvent(previous.String(), f.String(), visible))
}

// CycleFilter moves to the next (delta > 0) or previous (delta < 0) filter
// option, wrapping around. It returns the new filter.
func (s *Session) CycleFilter(delta int) timeline.Filter {
	categories := s.Categories()
	next := s.filter
	switch {
	case delta > 0:
		next = timeline.Next(categories, s.filter)
	case delta < 0:
		next = timeline.Prev(categories, s.filter)
	}
	s.SetFilter(next)
	return s.filter
}

// Select makes e the selected event. Events outside the store are rejected
// with *errors.UnknownEventError and the selection is unchanged.
func (s *Session) Select(e timeline.Event) error {
	if err := s.selection.Select(e); err != nil {
		s.logger.Debug("rejected selection", "year", e.Year, "error", err)
		return err
	}
	s.bus.Publish(event.NewSelectionChangedEvent(e.Year, true))
	return nil
}

// SelectYear selects the loaded event with the given year.
func (s *Session) SelectYear(year string) error {
	e, ok := s.store.Find(year)
	if !ok {
		return errors.NewUnknownEventError(year, "")
	}
	return s.Select(e)
}

// Clear empties the selection.
func (s *Session) Clear() {
	s.selection.Clear()
	s.bus.Publish(event.NewSelectionChangedEvent("", false))
}

// ToggleTheme flips the appearance mode. The timeline state is untouched.
func (s *Session) ToggleTheme() appearance.Mode {
	return s.theme.Toggle()
}
