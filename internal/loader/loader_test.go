package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/timeline/internal/errors"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

const sampleJSON = `[
  {"year": "1939", "title": "Invasion", "description": "d", "imageURL": "https://example.com/a.jpg", "category": "Military"},
  {"year": "1943", "title": "Surrender", "description": "d", "imageURL": "", "category": "Political"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestBuiltin(t *testing.T) {
	events := Builtin()
	if len(events) != 7 {
		t.Fatalf("len(Builtin()) = %d, want 7", len(events))
	}
	if events[0].Year != "1939" || events[6].Year != "1945" {
		t.Errorf("unexpected range %s-%s", events[0].Year, events[6].Year)
	}

	want := []string{"Military", "Political", "Global Event"}
	got := timeline.Categories(events)
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if dups := timeline.DuplicateYears(events); dups != nil {
		t.Errorf("built-in dataset has duplicate years %v", dups)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"events.json", FormatJSON, false},
		{"events.JSON", FormatJSON, false},
		{"events.jsonc", FormatJSONC, false},
		{"events.yaml", FormatYAML, false},
		{"dir/events.yml", FormatYAML, false},
		{"events.toml", "", true},
		{"events", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrUnsupportedFormat) {
				t.Errorf("error should wrap ErrUnsupportedFormat: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		want    int
		wantErr bool
	}{
		{"json", sampleJSON, FormatJSON, 2, false},
		{"empty json list", `[]`, FormatJSON, 0, false},
		{"jsonc comments and trailing comma", `[
			// first
			{"year": "1939", "title": "t", "description": "d", "imageURL": "", "category": "c"},
		]`, FormatJSONC, 1, false},
		{"yaml", `
- year: "1944"
  title: D-Day Landings
  description: Allied forces land in Normandy.
  imageURL: https://example.com/d.jpg
  category: Military
`, FormatYAML, 1, false},
		{"empty yaml list", `[]`, FormatYAML, 0, false},
		{"json object", `{"year": "1939"}`, FormatJSON, 0, true},
		{"json null", `null`, FormatJSON, 0, true},
		{"json empty", ``, FormatJSON, 0, true},
		{"json trailing data", `[] []`, FormatJSON, 0, true},
		{"json number field", `[{"year": 1939, "title": "t", "description": "d", "imageURL": "", "category": "c"}]`, FormatJSON, 0, true},
		{"json missing field", `[{"year": "1939", "title": "t", "description": "d", "imageURL": ""}]`, FormatJSON, 0, true},
		{"json null element", `[null]`, FormatJSON, 0, true},
		{"yaml mapping", `year: "1939"`, FormatYAML, 0, true},
		{"yaml empty document", ``, FormatYAML, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Parse([]byte(tt.data), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrMalformedData) {
					t.Errorf("error should wrap ErrMalformedData: %v", err)
				}
				return
			}
			if events == nil {
				t.Error("Parse() returned nil slice on success")
			}
			if len(events) != tt.want {
				t.Errorf("len(events) = %d, want %d", len(events), tt.want)
			}
		})
	}
}

func TestParse_MissingFieldReportsPath(t *testing.T) {
	_, err := Parse([]byte(`[
		{"year": "1", "title": "t", "description": "d", "imageURL": "", "category": "c"},
		{"year": "2", "title": "t", "description": "d", "category": "c"}
	]`), FormatJSON)

	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *errors.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "events[1].imageURL" {
		t.Errorf("Field = %q, want events[1].imageURL", verr.Field)
	}
}

func TestParse_PreservesFields(t *testing.T) {
	events, err := Parse([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := timeline.Event{
		Year:        "1939",
		Title:       "Invasion",
		Description: "d",
		ImageURL:    "https://example.com/a.jpg",
		Category:    "Military",
	}
	if events[0] != want {
		t.Errorf("events[0] = %+v, want %+v", events[0], want)
	}
}

func TestNew_InvalidInclude(t *testing.T) {
	_, err := New(Options{Path: t.TempDir(), Include: "[a-"})
	if err == nil {
		t.Fatal("New() should reject an invalid include pattern")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("error should wrap ErrInvalidInput: %v", err)
	}
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin when path is empty", func(t *testing.T) {
		l, err := New(Options{})
		if err != nil {
			t.Fatal(err)
		}
		if l.Source() != BuiltinSource {
			t.Errorf("Source() = %q, want %q", l.Source(), BuiltinSource)
		}
		events, err := l.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(events) != 7 {
			t.Errorf("len(events) = %d, want 7", len(events))
		}
	})

	t.Run("single file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "events.json", sampleJSON)
		l, _ := New(Options{Path: path})

		events, err := l.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(events) != 2 {
			t.Errorf("len(events) = %d, want 2", len(events))
		}
		if l.Source() != path {
			t.Errorf("Source() = %q, want %q", l.Source(), path)
		}
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.json")
		l, _ := New(Options{Path: path})

		events, err := l.Load(ctx)
		if events != nil {
			t.Errorf("expected no events on failure, got %v", events)
		}
		var loadErr *errors.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *errors.LoadError, got %T: %v", err, err)
		}
		if loadErr.Source != path {
			t.Errorf("Source = %q, want %q", loadErr.Source, path)
		}
		if !errors.IsUserFacing(err) || !errors.IsRecoverable(err) {
			t.Error("load errors should be user-facing and recoverable")
		}
	})

	t.Run("malformed file records its format", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "events.yaml", "year: 1939\n")
		l, _ := New(Options{Path: path})

		_, err := l.Load(ctx)
		var loadErr *errors.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *errors.LoadError, got %v", err)
		}
		if loadErr.Format != string(FormatYAML) {
			t.Errorf("Format = %q, want yaml", loadErr.Format)
		}
		if !errors.Is(err, errors.ErrMalformedData) {
			t.Error("error should wrap ErrMalformedData")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "events.txt", sampleJSON)
		l, _ := New(Options{Path: path})

		_, err := l.Load(ctx)
		if !errors.Is(err, errors.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestLoader_LoadDirectory(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "b-late.yaml", `
- {year: "1945", title: War Ends, description: d, imageURL: "", category: Global Event}
`)
	writeFile(t, dir, "a-early.json", sampleJSON)
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Run("concatenates in file name order", func(t *testing.T) {
		l, _ := New(Options{Path: dir, Include: "*.{json,jsonc,yaml,yml}"})
		events, err := l.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		var years []string
		for _, e := range events {
			years = append(years, e.Year)
		}
		want := []string{"1939", "1943", "1945"}
		if len(years) != len(want) {
			t.Fatalf("years = %v, want %v", years, want)
		}
		for i := range want {
			if years[i] != want[i] {
				t.Errorf("years[%d] = %q, want %q", i, years[i], want[i])
			}
		}
	})

	t.Run("include pattern narrows the files", func(t *testing.T) {
		l, _ := New(Options{Path: dir, Include: "b-*"})
		events, err := l.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(events) != 1 || events[0].Year != "1945" {
			t.Errorf("events = %+v, want only 1945", events)
		}
	})

	t.Run("no matching files", func(t *testing.T) {
		l, _ := New(Options{Path: dir, Include: "*.jsonc"})
		_, err := l.Load(ctx)
		if !errors.Is(err, errors.ErrLoadFailed) {
			t.Errorf("expected ErrLoadFailed, got %v", err)
		}
	})

	t.Run("one bad file fails the whole load", func(t *testing.T) {
		bad := t.TempDir()
		writeFile(t, bad, "a.json", sampleJSON)
		writeFile(t, bad, "b.json", `{"not": "a list"}`)
		l, _ := New(Options{Path: bad})
		events, err := l.Load(ctx)
		if err == nil {
			t.Fatal("Load() should fail")
		}
		if events != nil {
			t.Errorf("no partial data expected, got %d events", len(events))
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		l, _ := New(Options{Path: dir})
		_, err := l.Load(canceled)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
