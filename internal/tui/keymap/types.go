// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declarative and grouped by mode, so the Update loop maps a
// key to a Command and the help overlay is generated from the same table.
package keymap

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeTimeline Mode = "timeline" // Browsing markers
	ModeModal    Mode = "modal"    // Event detail open
	ModeHelp     Mode = "help"     // Help overlay open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Timeline mode commands
const (
	// Navigation
	CmdNextEvent  Command = "next_event"
	CmdPrevEvent  Command = "prev_event"
	CmdFirstEvent Command = "first_event"
	CmdLastEvent  Command = "last_event"
	CmdOpenEvent  Command = "open_event"

	// Filtering
	CmdNextFilter Command = "next_filter"
	CmdPrevFilter Command = "prev_filter"
	CmdPickFilter Command = "pick_filter" // 0-9 keys

	// Application
	CmdToggleTheme Command = "toggle_theme"
	CmdReload      Command = "reload"
	CmdToggleHelp  Command = "toggle_help"
	CmdQuit        Command = "quit"
)

// Modal mode commands
const (
	CmdCloseModal Command = "close_modal"
	CmdScrollUp   Command = "scroll_up"
	CmdScrollDown Command = "scroll_down"
)

// KeyBinding maps one key to a command.
type KeyBinding struct {
	// Key is the key type. Printable keys use tea.KeyRunes with Rune set.
	Key  tea.KeyType
	Rune rune

	// Alt requires the alt modifier. Ctrl combinations are key types of
	// their own (tea.KeyCtrlC) and need no flag.
	Alt bool

	Command     Command
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches reports whether msg is this binding's key.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt != kb.Alt || msg.Type != kb.Key {
		return false
	}
	if kb.Key != tea.KeyRunes {
		return true
	}
	return len(msg.Runes) == 1 && msg.Runes[0] == kb.Rune
}

// String returns the key as shown in help, e.g. "enter", "alt+x", "space".
func (kb KeyBinding) String() string {
	var name string
	switch {
	case kb.Key == tea.KeySpace, kb.Key == tea.KeyRunes && kb.Rune == ' ':
		name = "space"
	case kb.Key != tea.KeyRunes:
		name = kb.Key.String()
	default:
		name = string(kb.Rune)
	}
	if kb.Alt {
		return "alt+" + name
	}
	return name
}

// Keymap holds the bindings of every mode. Within a mode, the first
// matching binding wins.
type Keymap struct {
	Name  string
	Modes map[Mode][]KeyBinding
}

// Lookup returns the command bound to msg in mode.
func (km *Keymap) Lookup(mode Mode, msg tea.KeyMsg) (Command, bool) {
	for _, b := range km.Modes[mode] {
		if b.Matches(msg) {
			return b.Command, true
		}
	}
	return "", false
}

// Bindings returns the bindings of mode in declaration order, or nil for an
// unknown mode.
func (km *Keymap) Bindings(mode Mode) []KeyBinding {
	return km.Modes[mode]
}

// KeysFor returns every binding of cmd in mode.
func (km *Keymap) KeysFor(mode Mode, cmd Command) []KeyBinding {
	var keys []KeyBinding
	for _, b := range km.Modes[mode] {
		if b.Command == cmd {
			keys = append(keys, b)
		}
	}
	return keys
}

// Label renders the keys of cmd for help text: "right/l", or "0-9" for a
// run of more than two printable keys. It is empty when cmd is unbound in
// mode.
func (km *Keymap) Label(mode Mode, cmd Command) string {
	keys := km.KeysFor(mode, cmd)
	if len(keys) > 2 && allRunes(keys) {
		return keys[0].String() + "-" + keys[len(keys)-1].String()
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, "/")
}

// Categories returns the help categories of mode in first-seen order.
func (km *Keymap) Categories(mode Mode) []string {
	var categories []string
	for _, b := range km.Modes[mode] {
		if b.Category == "" || slices.Contains(categories, b.Category) {
			continue
		}
		categories = append(categories, b.Category)
	}
	return categories
}

func allRunes(keys []KeyBinding) bool {
	for _, k := range keys {
		if k.Key != tea.KeyRunes {
			return false
		}
	}
	return true
}

