package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/timeline/internal/appearance"
)

// ColorPalette defines the color scheme for one appearance mode.
type ColorPalette struct {
	// Background is the page color behind everything
	Background lipgloss.Color
	// Surface is the marker and modal fill
	Surface lipgloss.Color
	// Text is the primary text color
	Text lipgloss.Color
	// Muted is used for de-emphasized text
	Muted lipgloss.Color
	// Primary is the accent for titles and the active filter
	Primary lipgloss.Color
	// Accent highlights the marker under the cursor
	Accent lipgloss.Color
	// Border outlines markers, buttons and the modal
	Border lipgloss.Color
	// Warning is used for load failure banners
	Warning lipgloss.Color
	// Error is used for hard failures
	Error lipgloss.Color
}

// LightPalette returns the parchment palette used in light mode.
func LightPalette() *ColorPalette {
	return &ColorPalette{
		Background: lipgloss.Color("#f4e4bc"),
		Surface:    lipgloss.Color("#e0cfa7"),
		Text:       lipgloss.Color("#3b2f2f"),
		Muted:      lipgloss.Color("#7d6b57"),
		Primary:    lipgloss.Color("#6b4f36"),
		Accent:     lipgloss.Color("#8b3a2b"),
		Border:     lipgloss.Color("#6b4f36"),
		Warning:    lipgloss.Color("#a0522d"),
		Error:      lipgloss.Color("#8b1e1e"),
	}
}

// DarkPalette returns the palette used in dark mode: the parchment
// colors inverted onto a dark brown page.
func DarkPalette() *ColorPalette {
	return &ColorPalette{
		Background: lipgloss.Color("#2a2020"),
		Surface:    lipgloss.Color("#3b2f2f"),
		Text:       lipgloss.Color("#f4e4bc"),
		Muted:      lipgloss.Color("#b5a282"),
		Primary:    lipgloss.Color("#e0cfa7"),
		Accent:     lipgloss.Color("#e8a87c"),
		Border:     lipgloss.Color("#a08464"),
		Warning:    lipgloss.Color("#e0a050"),
		Error:      lipgloss.Color("#e06c6c"),
	}
}

// GetPalette returns the palette for a mode. Unknown modes get the light
// palette.
func GetPalette(mode appearance.Mode) *ColorPalette {
	if mode == appearance.Dark {
		return DarkPalette()
	}
	return LightPalette()
}
