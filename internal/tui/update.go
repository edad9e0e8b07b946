package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/timeline/internal/errors"
	"github.com/Iron-Ham/timeline/internal/markdown"
	"github.com/Iron-Ham/timeline/internal/timeline"
	"github.com/Iron-Ham/timeline/internal/tui/keymap"
	"github.com/Iron-Ham/timeline/internal/tui/styles"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeDetail()
		m.refreshDetail()
		return m, nil

	case eventsLoadedMsg:
		m.session.Replace(msg.source, msg.events)
		m.banner = ""
		m.syncCursor()
		m.refreshDetail()
		return m.finishLoad()

	case loadFailedMsg:
		m.session.LoadFailed(msg.source, msg.err)
		m.banner = loadBanner(msg.source, msg.err)
		m.syncCursor()
		return m.finishLoad()

	case reloadMsg:
		return m.reload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// reload starts a load, or queues one if a load is already running.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.loading {
		m.reloadPending = true
		return m, nil
	}
	m.loading = true
	return m, loadEvents(m.source)
}

// finishLoad runs a reload that was requested while the last one was in
// flight.
func (m Model) finishLoad() (tea.Model, tea.Cmd) {
	m.loading = false
	if m.reloadPending {
		m.reloadPending = false
		return m.reload()
	}
	return m, nil
}

func loadBanner(source string, err error) string {
	if errors.IsUserFacing(err) {
		return fmt.Sprintf("Could not load events: %v", err)
	}
	return fmt.Sprintf("Could not load events from %s", source)
}

// handleKey maps a key to a command through the keymap for the current
// mode. Unbound keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.Lookup(m.mode(), msg)
	if !ok {
		return m, nil
	}
	return m.execute(cmd, msg)
}

func (m Model) execute(cmd keymap.Command, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdNextEvent:
		m.moveCursor(1)
	case keymap.CmdPrevEvent:
		m.moveCursor(-1)
	case keymap.CmdFirstEvent:
		m.jumpCursor(false)
	case keymap.CmdLastEvent:
		m.jumpCursor(true)
	case keymap.CmdOpenEvent:
		m.openCursor()
	case keymap.CmdCloseModal:
		m.session.Clear()

	case keymap.CmdNextFilter:
		m.session.CycleFilter(1)
		m.syncCursor()
	case keymap.CmdPrevFilter:
		m.session.CycleFilter(-1)
		m.syncCursor()
	case keymap.CmdPickFilter:
		if len(msg.Runes) > 0 {
			m.pickFilter(int(msg.Runes[0] - '0'))
		}

	case keymap.CmdToggleTheme:
		styles.SetActiveTheme(m.session.ToggleTheme())
		m.refreshDetail()
	case keymap.CmdReload:
		return m.reload()
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdScrollUp:
		m.detail.LineUp(1)
	case keymap.CmdScrollDown:
		m.detail.LineDown(1)
	}

	return m, nil
}

// moveCursor steps through the visible markers, stopping at either end.
// With the modal open the selection follows the cursor.
func (m *Model) moveCursor(delta int) {
	visible := m.session.Visible()
	if len(visible) == 0 {
		return
	}

	i := timeline.IndexOf(visible, m.cursor)
	if i < 0 {
		i = 0
	} else {
		i = max(0, min(i+delta, len(visible)-1))
	}
	m.cursor = visible[i].Year

	if _, open := m.session.Current(); open {
		m.openCursor()
	}
}

func (m *Model) jumpCursor(last bool) {
	visible := m.session.Visible()
	if len(visible) == 0 {
		return
	}
	if last {
		m.cursor = visible[len(visible)-1].Year
	} else {
		m.cursor = visible[0].Year
	}
}

// openCursor selects the highlighted event, which opens the modal.
func (m *Model) openCursor() {
	e, ok := m.cursorEvent()
	if !ok {
		return
	}
	if err := m.session.Select(e); err != nil {
		m.logger.Warn("could not open event", "year", e.Year, "error", err)
		m.banner = err.Error()
		return
	}
	m.refreshDetail()
	m.detail.GotoTop()
}

// pickFilter activates the filter at position n of the filter panel (0 is
// All). Positions past the end are ignored.
func (m *Model) pickFilter(n int) {
	options := m.session.Options()
	if n < 0 || n >= len(options) {
		return
	}
	m.session.SetFilter(options[n])
	m.syncCursor()
}

// refreshDetail renders the selected event's description into the
// viewport. The rendering depends on width and theme, so it is redone
// whenever either changes.
func (m *Model) refreshDetail() {
	e, ok := m.session.Current()
	if !ok {
		return
	}

	p := styles.GetActiveTheme().Palette
	r := markdown.New(markdown.Options{
		Width:   m.detail.Width,
		Profile: lipgloss.ColorProfile(),
		Palette: markdown.Palette{
			Text:    p.Text,
			Heading: p.Primary,
			Faint:   p.Muted,
			Accent:  p.Accent,
		},
	})
	m.detail.SetContent(r.Render(e.Description))
}
