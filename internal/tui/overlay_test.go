package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	got := spliceOverlay(base, []string{"XX", "YY"}, 3, 1)
	lines := strings.Split(ansi.Strip(got), "\n")

	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSpliceOverlay_GrowsView(t *testing.T) {
	got := spliceOverlay("ab", []string{"XY", "ZW"}, 4, 1)
	lines := strings.Split(ansi.Strip(got), "\n")

	want := []string{"ab", "    XY", "    ZW"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSpliceOverlay_Empty(t *testing.T) {
	if got := spliceOverlay("view", nil, 0, 0); got != "view" {
		t.Errorf("spliceOverlay() = %q, want unchanged", got)
	}
}
