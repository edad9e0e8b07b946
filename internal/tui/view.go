package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/timeline/internal/imagecheck"
	"github.com/Iron-Ham/timeline/internal/timeline"
	"github.com/Iron-Ham/timeline/internal/tui/keymap"
	"github.com/Iron-Ham/timeline/internal/tui/styles"
	"github.com/Iron-Ham/timeline/internal/util"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := styles.GetActiveTheme()

	sections := []string{m.renderHeader(st)}
	if m.banner != "" {
		sections = append(sections, st.Banner.Render(m.banner))
	}
	sections = append(sections, m.renderFilters(st), "", m.renderTimeline(st))
	if m.showHelpBar {
		sections = append(sections, m.renderHelpBar(st))
	}
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showHelp {
		return m.overlayCentered(base, m.renderHelp(st))
	}
	if e, ok := m.session.Current(); ok {
		return m.overlayCentered(base, m.renderModal(st, e))
	}
	return base
}

// renderHeader renders the title with the theme switch on the right.
func (m Model) renderHeader(st *styles.ThemedStyles) string {
	title := st.Title.Render(m.title)
	toggle := st.ThemeSwitch.Render(st.Mode.SwitchLabel())

	gap := 2
	if m.width > 0 {
		gap = max(m.width-lipgloss.Width(title)-lipgloss.Width(toggle), 2)
	}
	return st.Header.Render(title + strings.Repeat(" ", gap) + toggle)
}

// renderFilters renders the filter panel: All first, then every category.
// Buttons carry their number key while one exists.
func (m Model) renderFilters(st *styles.ThemedStyles) string {
	active := m.session.Filter()

	var b strings.Builder
	b.WriteString(st.FilterLabel.Render("Filter:"))
	for i, option := range m.session.Options() {
		label := option.String()
		if i < 10 {
			label = fmt.Sprintf("%d %s", i, label)
		}
		style := st.FilterButton
		if option == active {
			style = st.FilterActive
		}
		b.WriteString(style.Render(label))
	}

	line := b.String()
	if m.width > 0 {
		line = util.Truncate(line, m.width)
	}
	return line
}

// renderTimeline renders the visible markers joined by arrows. When they do
// not fit, a window around the cursor is shown.
func (m Model) renderTimeline(st *styles.ThemedStyles) string {
	visible := m.session.Visible()
	if len(visible) == 0 {
		return st.Empty.Render(m.emptyMessage())
	}

	markers := make([]string, len(visible))
	for i, e := range visible {
		markers[i] = m.renderMarker(st, e, e.Year == m.cursor)
	}
	arrow := st.Arrow.Render("→")

	start, end := m.markerWindow(len(markers), lipgloss.Width(markers[0]), lipgloss.Width(arrow),
		timeline.IndexOf(visible, m.cursor))

	var parts []string
	if start > 0 {
		parts = append(parts, st.Muted.Render("‹ "))
	}
	for i := start; i < end; i++ {
		if i > start {
			parts = append(parts, arrow)
		}
		parts = append(parts, markers[i])
	}
	if end < len(markers) {
		parts = append(parts, st.Muted.Render(" ›"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) emptyMessage() string {
	switch {
	case m.loading && len(m.session.All()) == 0:
		return "Loading events..."
	case len(m.session.All()) == 0:
		return "No events loaded. Press r to retry."
	default:
		return fmt.Sprintf("No events in %q.", m.session.Filter().String())
	}
}

// renderMarker renders one year marker.
func (m Model) renderMarker(st *styles.ThemedStyles, e timeline.Event, atCursor bool) string {
	style := st.Marker
	if atCursor {
		style = st.MarkerCursor
	}
	inner := max(m.markerWidth-2, 4)
	year := st.MarkerYear.Render(e.Year)
	title := st.MarkerTitle.Render(util.Truncate(e.Title, inner))
	return style.Width(m.markerWidth).Render(year + "\n" + title)
}

// markerWindow returns the [start, end) range of markers that fits the
// terminal, keeping the cursor in view.
func (m Model) markerWindow(count, markerWidth, arrowWidth, cursor int) (int, int) {
	if m.width <= 0 || count == 0 {
		return 0, count
	}
	// Room for the overflow indicators on both sides
	avail := m.width - 4
	fit := max((avail+arrowWidth)/(markerWidth+arrowWidth), 1)
	if fit >= count {
		return 0, count
	}

	cursor = max(cursor, 0)
	start := max(min(cursor-fit/2, count-fit), 0)
	return start, start + fit
}

// renderModal renders the detail view for e.
func (m Model) renderModal(st *styles.ThemedStyles, e timeline.Event) string {
	title := st.ModalTitle.Render(e.Year + " · " + e.Title)
	meta := st.ModalMeta.Render(e.Category)
	image := st.ModalImage.Render(imagecheck.Resolve(e.ImageURL, m.placeholder))
	hint := st.ModalHint.Render(m.shortHelp(keymap.ModeModal, []keymap.Command{
		keymap.CmdCloseModal, keymap.CmdPrevEvent, keymap.CmdNextEvent, keymap.CmdScrollDown,
	}))

	content := lipgloss.JoinVertical(lipgloss.Left, title, meta, image, "", m.detail.View(), "", hint)
	return st.Modal.Width(m.modalWidth() - 2).Render(content)
}

// renderHelpBar renders the one-line key hints under the timeline.
func (m Model) renderHelpBar(st *styles.ThemedStyles) string {
	line := m.shortHelp(keymap.ModeTimeline, []keymap.Command{
		keymap.CmdPrevEvent, keymap.CmdNextEvent, keymap.CmdOpenEvent, keymap.CmdNextFilter,
		keymap.CmdPickFilter, keymap.CmdToggleTheme, keymap.CmdReload, keymap.CmdToggleHelp, keymap.CmdQuit,
	})
	if m.width > 0 {
		line = util.Truncate(line, m.width)
	}
	return st.HelpBar.Render(line)
}

// shortHelp renders "key desc" pairs for commands, in order.
func (m Model) shortHelp(mode keymap.Mode, commands []keymap.Command) string {
	st := styles.GetActiveTheme()
	var pairs []string
	for _, cmd := range commands {
		bindings := m.keymap.KeysFor(mode, cmd)
		if len(bindings) == 0 {
			continue
		}
		label := m.keymap.Label(mode, cmd)
		pairs = append(pairs, st.HelpKey.Render(label)+" "+st.HelpDesc.Render(bindings[0].Description))
	}
	return strings.Join(pairs, st.HelpDesc.Render(" • "))
}

// renderHelp renders the full key reference for the timeline and the
// modal, grouped by category.
func (m Model) renderHelp(st *styles.ThemedStyles) string {
	var lines []string
	lines = append(lines, st.ModalTitle.Render("Keys"), "")

	for _, mode := range []keymap.Mode{keymap.ModeTimeline, keymap.ModeModal} {
		for _, category := range m.keymap.Categories(mode) {
			if mode == keymap.ModeModal && category == "Application" {
				continue
			}
			lines = append(lines, st.ModalMeta.Render(category))
			seen := make(map[keymap.Command]bool)
			for _, b := range m.keymap.Bindings(mode) {
				if b.Category != category || seen[b.Command] {
					continue
				}
				seen[b.Command] = true
				desc := b.Description
				if b.Command == keymap.CmdPickFilter {
					desc = "Pick filter (0 is All)"
				}
				key := m.keymap.Label(mode, b.Command)
				lines = append(lines, fmt.Sprintf("  %s  %s",
					st.HelpKey.Width(12).Render(key), st.HelpDesc.Render(desc)))
			}
			lines = append(lines, "")
		}
	}
	lines = append(lines, st.ModalHint.Render("? or esc to close"))

	return st.Modal.Render(strings.Join(lines, "\n"))
}

// overlayCentered draws box over the middle of base.
func (m Model) overlayCentered(base, box string) string {
	lines := strings.Split(box, "\n")
	width := m.width
	if width <= 0 {
		width = max(lipgloss.Width(base), lipgloss.Width(box))
	}
	height := m.height
	if height <= 0 {
		height = max(lipgloss.Height(base), len(lines))
	}

	x := max((width-lipgloss.Width(box))/2, 0)
	y := max((height-len(lines))/2, 0)
	return spliceOverlay(base, lines, x, y)
}
