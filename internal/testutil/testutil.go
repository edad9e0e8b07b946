// Package testutil provides testing utilities for timeline tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Iron-Ham/timeline/internal/timeline"
)

// Events returns a small fixture covering three categories, with the first
// category repeated out of order. Each call returns a fresh slice.
func Events() []timeline.Event {
	return []timeline.Event{
		{Year: "1939", Title: "German Invasion of Poland", Description: "Germany invades **Poland**.", Category: "Military"},
		{Year: "1943", Title: "Italy Surrenders", Description: "Italy signs an armistice.", Category: "Political"},
		{Year: "1944", Title: "D-Day Landings", Description: "Allied forces land in Normandy.", Category: "Military"},
		{Year: "1945", Title: "End of World War II", Description: "The war ends.", Category: "Global Event"},
	}
}

// EventsJSON encodes events in the data file format.
func EventsJSON(t *testing.T, events []timeline.Event) string {
	t.Helper()

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode events: %v", err)
	}
	return string(data)
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteEvents writes events as JSON to a new file in a temp directory and
// returns its path.
func WriteEvents(t *testing.T, events []timeline.Event) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "events.json", EventsJSON(t, events))
}

// WaitFor polls cond until it holds or timeout passes.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}
