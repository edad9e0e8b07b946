// Package styles holds the lipgloss styles for the timeline TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/timeline/internal/appearance"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the appearance mode changes.
type ThemedStyles struct {
	Mode    appearance.Mode
	Palette *ColorPalette

	// Header
	Header      lipgloss.Style
	Title       lipgloss.Style
	ThemeSwitch lipgloss.Style

	// Filter panel
	FilterLabel  lipgloss.Style
	FilterButton lipgloss.Style
	FilterActive lipgloss.Style

	// Timeline
	Marker       lipgloss.Style
	MarkerCursor lipgloss.Style
	MarkerYear   lipgloss.Style
	MarkerTitle  lipgloss.Style
	Arrow        lipgloss.Style
	Empty        lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalMeta  lipgloss.Style
	ModalImage lipgloss.Style
	ModalHint  lipgloss.Style

	// Chrome
	Banner   lipgloss.Style
	Muted    lipgloss.Style
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(mode appearance.Mode, p *ColorPalette) *ThemedStyles {
	marker := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1).
		Align(lipgloss.Center)

	button := lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1).
		MarginRight(1)

	return &ThemedStyles{
		Mode:    mode,
		Palette: p,

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginBottom(1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		ThemeSwitch: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Primary).
			Padding(0, 1),

		FilterLabel: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginRight(1),
		FilterButton: button,
		FilterActive: button.
			Bold(true).
			Foreground(p.Background).
			Background(p.Primary),

		Marker: marker,
		MarkerCursor: marker.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Accent),
		MarkerYear: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		MarkerTitle: lipgloss.NewStyle().
			Foreground(p.Text),
		Arrow: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Border).
			Background(p.Surface).
			Foreground(p.Text).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		ModalMeta: lipgloss.NewStyle().
			Foreground(p.Muted),
		ModalImage: lipgloss.NewStyle().
			Foreground(p.Accent).
			Underline(true),
		ModalHint: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Banner: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Warning).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(appearance.Default, GetPalette(appearance.Default))
}

// SetActiveTheme rebuilds the active styles for mode.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(mode appearance.Mode) {
	activeTheme = NewThemedStyles(mode, GetPalette(mode))
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}
