package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/timeline/internal/session"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

// Messages

// eventsLoadedMsg carries a successful load back into the Update loop.
type eventsLoadedMsg struct {
	source string
	events []timeline.Event
}

// loadFailedMsg carries a failed load back into the Update loop.
type loadFailedMsg struct {
	source string
	err    error
}

// reloadMsg asks for the data to be read again. The file watcher sends it
// through program.Send.
type reloadMsg struct{}

// Commands

// loadEvents reads src off the Update goroutine and reports the outcome as
// a message, so the session is only ever touched from Update.
func loadEvents(src session.Source) tea.Cmd {
	return func() tea.Msg {
		events, err := src.Load(context.Background())
		if err != nil {
			return loadFailedMsg{source: src.Source(), err: err}
		}
		return eventsLoadedMsg{source: src.Source(), events: events}
	}
}
