package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/timeline/internal/config"
	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/session"
	"github.com/Iron-Ham/timeline/internal/timeline"
	"github.com/Iron-Ham/timeline/internal/tui/keymap"
	"github.com/Iron-Ham/timeline/internal/tui/styles"
)

// Options configures the TUI.
type Options struct {
	Title          string
	MarkerWidth    int
	ShowHelp       bool
	PlaceholderURL string

	// Watch reloads the data when the source changes on disk.
	Watch    bool
	Debounce time.Duration

	// Keymap defaults to keymap.DefaultKeymap().
	Keymap *keymap.Keymap
	Logger *logging.Logger
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:          cfg.TUI.Title,
		MarkerWidth:    cfg.TUI.MarkerWidth,
		ShowHelp:       cfg.TUI.ShowHelp,
		PlaceholderURL: cfg.Images.PlaceholderURL,
		Watch:          cfg.Data.Watch,
		Debounce:       cfg.Data.Debounce(),
	}
}

// Model holds the TUI application state. Timeline state lives in the
// session; the model only adds what is purely visual.
type Model struct {
	// Core components
	session *session.Session
	source  session.Source
	keymap  *keymap.Keymap
	logger  *logging.Logger

	// Settings
	title       string
	markerWidth int
	showHelpBar bool
	placeholder string

	// UI state
	cursor   string // year of the highlighted marker, empty when none is visible
	showHelp bool
	width    int
	height   int
	ready    bool
	quitting bool
	banner   string

	// Loading state
	loading       bool
	reloadPending bool

	// detail scrolls the description inside the modal
	detail viewport.Model
}

// NewModel creates a new TUI model over sess. Events are read from src
// when the program starts.
func NewModel(sess *session.Session, src session.Source, opts Options) Model {
	if opts.Title == "" {
		opts.Title = config.DefaultTitle
	}
	if opts.MarkerWidth <= 0 {
		opts.MarkerWidth = config.Default().TUI.MarkerWidth
	}
	if opts.PlaceholderURL == "" {
		opts.PlaceholderURL = config.DefaultPlaceholderURL
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	styles.SetActiveTheme(sess.Theme().Mode())

	m := Model{
		session:     sess,
		source:      src,
		keymap:      opts.Keymap,
		logger:      opts.Logger.WithComponent("tui"),
		title:       opts.Title,
		markerWidth: opts.MarkerWidth,
		showHelpBar: opts.ShowHelp,
		placeholder: opts.PlaceholderURL,
		loading:     true,
		detail:      viewport.New(0, 0),
	}
	m.resizeDetail()
	return m
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return loadEvents(m.source)
}

// mode derives the input mode. The modal is open exactly when the session
// holds a selection.
func (m Model) mode() keymap.Mode {
	if m.showHelp {
		return keymap.ModeHelp
	}
	if _, ok := m.session.Current(); ok {
		return keymap.ModeModal
	}
	return keymap.ModeTimeline
}

// cursorEvent returns the highlighted event if it is still visible.
func (m Model) cursorEvent() (timeline.Event, bool) {
	visible := m.session.Visible()
	i := timeline.IndexOf(visible, m.cursor)
	if i < 0 {
		return timeline.Event{}, false
	}
	return visible[i], true
}

// syncCursor re-resolves the cursor by year after the visible set changes.
// A year that is no longer visible falls back to the first visible marker.
func (m *Model) syncCursor() {
	visible := m.session.Visible()
	if len(visible) == 0 {
		m.cursor = ""
		return
	}
	if timeline.IndexOf(visible, m.cursor) < 0 {
		m.cursor = visible[0].Year
	}
}

// Layout constants
const (
	modalMaxWidth    = 76
	modalMinWidth    = 30
	modalPadding     = 4  // horizontal padding, both sides
	modalFixedLines  = 10 // title, category, image, blank, blank, hint, padding, border
	detailMaxHeight  = 14
	detailMinHeight  = 3
	defaultTermWidth = 80
	defaultTermHigh  = 24
)

// modalWidth returns the outer width of the modal box.
func (m Model) modalWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultTermWidth
	}
	w := min(width-4, modalMaxWidth)
	return max(w, modalMinWidth)
}

// resizeDetail fits the description viewport to the terminal.
func (m *Model) resizeDetail() {
	height := m.height
	if height <= 0 {
		height = defaultTermHigh
	}
	m.detail.Width = m.modalWidth() - 2 - modalPadding
	m.detail.Height = max(min(height-modalFixedLines-4, detailMaxHeight), detailMinHeight)
}
