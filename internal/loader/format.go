package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/timeline/internal/errors"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

// Format identifies how a data file is encoded.
type Format string

// Supported data formats.
const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// FormatFor picks the format from the file extension (case-insensitive).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// record mirrors timeline.Event with pointer fields so missing keys can be
// told apart from empty strings.
type record struct {
	Year        *string `json:"year" yaml:"year"`
	Title       *string `json:"title" yaml:"title"`
	Description *string `json:"description" yaml:"description"`
	ImageURL    *string `json:"imageURL" yaml:"imageURL"`
	Category    *string `json:"category" yaml:"category"`
}

// Parse decodes data in the given format and checks that every record has
// the event shape. The returned error wraps errors.ErrMalformedData.
func Parse(data []byte, format Format) ([]timeline.Event, error) {
	var records []record

	switch format {
	case FormatJSONC:
		data = jsonc.ToJSON(data)
		fallthrough
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrMalformedData, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after event list", errors.ErrMalformedData)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrMalformedData, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}

	// "null", an empty YAML document and similar decode to a nil slice
	if records == nil {
		return nil, fmt.Errorf("%w: expected a list of events", errors.ErrMalformedData)
	}

	events := make([]timeline.Event, 0, len(records))
	for i, r := range records {
		e, err := r.event(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrMalformedData, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r record) event(i int) (timeline.Event, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"year", r.Year},
		{"title", r.Title},
		{"description", r.Description},
		{"imageURL", r.ImageURL},
		{"category", r.Category},
	}
	for _, f := range fields {
		if f.value == nil {
			return timeline.Event{}, errors.NewValidationError("missing field").
				WithField(fmt.Sprintf("events[%d].%s", i, f.name))
		}
	}

	return timeline.Event{
		Year:        *r.Year,
		Title:       *r.Title,
		Description: *r.Description,
		ImageURL:    *r.ImageURL,
		Category:    *r.Category,
	}, nil
}
