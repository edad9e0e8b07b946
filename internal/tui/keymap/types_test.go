package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	altX := KeyBinding{Key: tea.KeyRunes, Rune: 'x', Alt: true}

	tests := []struct {
		name    string
		binding KeyBinding
		msg     tea.KeyMsg
		want    bool
	}{
		{"rune", char('l', CmdNextEvent, "", ""), runeKey('l'), true},
		{"other rune", char('l', CmdNextEvent, "", ""), runeKey('h'), false},
		{"case sensitive", char('g', CmdFirstEvent, "", ""), runeKey('G'), false},
		{"special key", key(tea.KeyEnter, CmdOpenEvent, "", ""), tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"other special key", key(tea.KeyEnter, CmdOpenEvent, "", ""), tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"alt wanted and given", altX, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, true},
		{"alt wanted, missing", altX, runeKey('x'), false},
		{"alt given, unwanted", char('x', CmdQuit, "", ""), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, false},
		{"rune binding, special key", char('q', CmdQuit, "", ""), tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"no runes", char('q', CmdQuit, "", ""), tea.KeyMsg{Type: tea.KeyRunes}, false},
		{"pasted text", char('1', CmdPickFilter, "", ""), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1944")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{Key: tea.KeyRunes, Rune: 'f'}, "f"},
		{KeyBinding{Key: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{Key: tea.KeyEnter}, "enter"},
		{KeyBinding{Key: tea.KeySpace}, "space"},
		{KeyBinding{Key: tea.KeyShiftTab}, "shift+tab"},
		{KeyBinding{Key: tea.KeyRunes, Rune: 'x', Alt: true}, "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.binding.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultKeymap_Timeline(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, CmdNextEvent},
		{"l", runeKey('l'), CmdNextEvent},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, CmdPrevEvent},
		{"h", runeKey('h'), CmdPrevEvent},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, CmdFirstEvent},
		{"G", runeKey('G'), CmdLastEvent},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, CmdOpenEvent},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CmdOpenEvent},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CmdNextFilter},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, CmdPrevFilter},
		{"f", runeKey('f'), CmdNextFilter},
		{"F", runeKey('F'), CmdPrevFilter},
		{"0", runeKey('0'), CmdPickFilter},
		{"9", runeKey('9'), CmdPickFilter},
		{"t", runeKey('t'), CmdToggleTheme},
		{"r", runeKey('r'), CmdReload},
		{"?", runeKey('?'), CmdToggleHelp},
		{"q", runeKey('q'), CmdQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(ModeTimeline, tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Lookup() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}

	if _, ok := km.Lookup(ModeTimeline, runeKey('z')); ok {
		t.Error("unbound key should not match")
	}
}

func TestDefaultKeymap_Modal(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, CmdCloseModal},
		{"q closes instead of quitting", runeKey('q'), CmdCloseModal},
		{"enter closes", tea.KeyMsg{Type: tea.KeyEnter}, CmdCloseModal},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, CmdScrollDown},
		{"k", runeKey('k'), CmdScrollUp},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, CmdNextEvent},
		{"t", runeKey('t'), CmdToggleTheme},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(ModeModal, tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Lookup() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}

	for _, r := range []rune{'f', '1', 'r'} {
		if cmd, ok := km.Lookup(ModeModal, runeKey(r)); ok {
			t.Errorf("%c is bound to %q while the modal is open", r, cmd)
		}
	}
}

func TestDefaultKeymap_Help(t *testing.T) {
	km := DefaultKeymap()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, runeKey('?'), runeKey('q')} {
		if got, _ := km.Lookup(ModeHelp, msg); got != CmdToggleHelp {
			t.Errorf("Lookup(%v) = %q, want %q", msg, got, CmdToggleHelp)
		}
	}
	if _, ok := km.Lookup(ModeHelp, tea.KeyMsg{Type: tea.KeyRight}); ok {
		t.Error("navigation should be inactive under help")
	}
}

func TestKeymap_UnknownMode(t *testing.T) {
	km := DefaultKeymap()
	if _, ok := km.Lookup(Mode("missing"), runeKey('q')); ok {
		t.Error("unknown mode should have no bindings")
	}
	if got := km.Bindings(Mode("missing")); got != nil {
		t.Errorf("Bindings() = %v, want nil", got)
	}
	if got := km.Label(Mode("missing"), CmdQuit); got != "" {
		t.Errorf("Label() = %q, want empty", got)
	}
}

func TestKeymap_KeysFor(t *testing.T) {
	km := DefaultKeymap()

	got := km.KeysFor(ModeTimeline, CmdPickFilter)
	if len(got) != 10 {
		t.Fatalf("len(KeysFor(pick filter)) = %d, want 10", len(got))
	}
	if got[0].Rune != '0' || got[9].Rune != '9' {
		t.Errorf("pick filter keys = %c..%c, want 0..9", got[0].Rune, got[9].Rune)
	}
}

func TestKeymap_Label(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		mode Mode
		cmd  Command
		want string
	}{
		{ModeTimeline, CmdNextEvent, "right/l"},
		{ModeTimeline, CmdOpenEvent, "enter/space"},
		{ModeTimeline, CmdPickFilter, "0-9"},
		{ModeTimeline, CmdReload, "r"},
		{ModeModal, CmdCloseModal, "esc/q/enter"},
		{ModeModal, CmdReload, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+string(tt.cmd), func(t *testing.T) {
			if got := km.Label(tt.mode, tt.cmd); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeymap_Categories(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		mode Mode
		want []string
	}{
		{ModeTimeline, []string{categoryNavigation, categoryFilter, categoryApplication}},
		{ModeModal, []string{categoryModal, categoryApplication}},
		{ModeHelp, []string{categoryHelp, categoryApplication}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := km.Categories(tt.mode); !slices.Equal(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}
