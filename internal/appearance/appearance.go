// Package appearance holds the process-wide light/dark preference.
//
// It is independent of the timeline state: toggling the theme never touches
// events, filters or the selection, and the timeline never reads the theme.
package appearance

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Mode is a UI color mode.
type Mode string

// Available modes.
const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Default is the mode a fresh process starts in.
const Default = Light

// ValidModes returns the accepted mode names.
func ValidModes() []string {
	return []string{string(Light), string(Dark)}
}

// ParseMode converts a user-supplied name to a Mode, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(ValidModes(), ", "))
	}
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// SwitchLabel is the button text offering to switch away from m.
func (m Mode) SwitchLabel() string {
	if m == Dark {
		return "Switch to Light Mode"
	}
	return "Switch to Dark Mode"
}

// State is the current mode plus the callbacks interested in it.
type State struct {
	mu        sync.RWMutex
	mode      Mode
	listeners []listener
	nextID    uint64
}

type listener struct {
	id uint64
	fn func(Mode)
}

// NewState creates a State in the given mode. An empty mode means Default.
func NewState(initial Mode) *State {
	if initial == "" {
		initial = Default
	}
	return &State{mode: initial}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips between light and dark and returns the new mode.
func (s *State) Toggle() Mode {
	s.mu.Lock()
	s.mode = s.mode.Opposite()
	mode := s.mode
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(mode)
	}
	return mode
}

// OnChange registers fn to run after every Toggle. The returned function
// removes it; calling it more than once is a no-op.
func (s *State) OnChange(fn func(Mode)) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// Listeners returns the number of registered callbacks.
func (s *State) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

var (
	processOnce  sync.Once
	processState *State
)

// Process returns the process-wide State, created on first use in Default
// mode.
func Process() *State {
	processOnce.Do(func() {
		processState = NewState(Default)
	})
	return processState
}
