package testutil

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/Iron-Ham/timeline/internal/timeline"
)

func TestEventsIsFresh(t *testing.T) {
	a := Events()
	a[0].Title = "changed"
	if Events()[0].Title == "changed" {
		t.Error("Events() should return a new slice each call")
	}
}

func TestWriteEvents(t *testing.T) {
	path := WriteEvents(t, Events())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got []timeline.Event
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("written file is not JSON: %v", err)
	}
	if len(got) != 4 || got[3].Year != "1945" {
		t.Errorf("got %+v", got)
	}
}

func TestWaitFor(t *testing.T) {
	calls := 0
	WaitFor(t, time.Second, func() bool {
		calls++
		return calls == 3
	})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
