package keymap

import tea "github.com/charmbracelet/bubbletea"

// Help categories
const (
	categoryNavigation  = "Navigation"
	categoryFilter      = "Filter"
	categoryApplication = "Application"
	categoryModal       = "Modal"
	categoryHelp        = "Help"
)

func key(k tea.KeyType, cmd Command, desc, category string) KeyBinding {
	return KeyBinding{Key: k, Command: cmd, Description: desc, Category: category}
}

func char(r rune, cmd Command, desc, category string) KeyBinding {
	return KeyBinding{Key: tea.KeyRunes, Rune: r, Command: cmd, Description: desc, Category: category}
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode][]KeyBinding{
			ModeTimeline: timelineBindings(),
			ModeModal:    modalBindings(),
			ModeHelp:     helpBindings(),
		},
	}
}

func timelineBindings() []KeyBinding {
	bindings := []KeyBinding{
		key(tea.KeyRight, CmdNextEvent, "Next event", categoryNavigation),
		char('l', CmdNextEvent, "Next event", categoryNavigation),
		key(tea.KeyLeft, CmdPrevEvent, "Previous event", categoryNavigation),
		char('h', CmdPrevEvent, "Previous event", categoryNavigation),
		key(tea.KeyHome, CmdFirstEvent, "First event", categoryNavigation),
		char('g', CmdFirstEvent, "First event", categoryNavigation),
		key(tea.KeyEnd, CmdLastEvent, "Last event", categoryNavigation),
		char('G', CmdLastEvent, "Last event", categoryNavigation),
		key(tea.KeyEnter, CmdOpenEvent, "Open event", categoryNavigation),
		key(tea.KeySpace, CmdOpenEvent, "Open event", categoryNavigation),

		key(tea.KeyTab, CmdNextFilter, "Next filter", categoryFilter),
		char('f', CmdNextFilter, "Next filter", categoryFilter),
		key(tea.KeyShiftTab, CmdPrevFilter, "Previous filter", categoryFilter),
		char('F', CmdPrevFilter, "Previous filter", categoryFilter),
	}

	// 0 is All, 1-9 are categories in panel order
	for r := '0'; r <= '9'; r++ {
		bindings = append(bindings, char(r, CmdPickFilter, "Pick filter", categoryFilter))
	}

	return append(bindings,
		char('t', CmdToggleTheme, "Toggle light/dark", categoryApplication),
		char('r', CmdReload, "Reload data", categoryApplication),
		char('?', CmdToggleHelp, "Toggle help", categoryApplication),
		char('q', CmdQuit, "Quit", categoryApplication),
		key(tea.KeyCtrlC, CmdQuit, "Quit", categoryApplication),
	)
}

// modalBindings make q and enter close the modal rather than quit, and
// reuse the timeline's movement keys to step through events in place.
func modalBindings() []KeyBinding {
	return []KeyBinding{
		key(tea.KeyEsc, CmdCloseModal, "Close", categoryModal),
		char('q', CmdCloseModal, "Close", categoryModal),
		key(tea.KeyEnter, CmdCloseModal, "Close", categoryModal),
		key(tea.KeyRight, CmdNextEvent, "Next event", categoryModal),
		char('l', CmdNextEvent, "Next event", categoryModal),
		key(tea.KeyLeft, CmdPrevEvent, "Previous event", categoryModal),
		char('h', CmdPrevEvent, "Previous event", categoryModal),
		key(tea.KeyDown, CmdScrollDown, "Scroll down", categoryModal),
		char('j', CmdScrollDown, "Scroll down", categoryModal),
		key(tea.KeyUp, CmdScrollUp, "Scroll up", categoryModal),
		char('k', CmdScrollUp, "Scroll up", categoryModal),
		char('t', CmdToggleTheme, "Toggle light/dark", categoryApplication),
		key(tea.KeyCtrlC, CmdQuit, "Quit", categoryApplication),
	}
}

func helpBindings() []KeyBinding {
	return []KeyBinding{
		key(tea.KeyEsc, CmdToggleHelp, "Close help", categoryHelp),
		char('?', CmdToggleHelp, "Close help", categoryHelp),
		char('q', CmdToggleHelp, "Close help", categoryHelp),
		key(tea.KeyCtrlC, CmdQuit, "Quit", categoryApplication),
	}
}
