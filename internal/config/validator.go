package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string // Config key, e.g. "tui.marker_width"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is every invalid setting found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the accepted tui.theme values. Matching is exact.
func ValidThemes() []string {
	return []string{"light", "dark"}
}

// Limits
const (
	maxDebounceMs       = 60000
	minMarkerWidth      = 6 // year plus a few characters of title
	maxMarkerWidth      = 60
	maxProbeConcurrency = 64
	maxLogSizeMB        = 1000
)

// checker accumulates failures so Validate reports all of them at once.
type checker []ValidationError

func (c *checker) fail(field string, value any, format string, args ...any) {
	*c = append(*c, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) between(field string, value, lo, hi int) {
	if value < lo || value > hi {
		c.fail(field, value, "must be between %d and %d", lo, hi)
	}
}

func (c *checker) oneOf(field, value string, valid []string) {
	if value != "" && !slices.Contains(valid, value) {
		c.fail(field, value, "must be one of: %s", strings.Join(valid, ", "))
	}
}

// Validate returns every invalid setting in c, in section order.
func (c *Config) Validate() []ValidationError {
	var v checker

	// data
	if c.Data.Include != "" {
		if _, err := glob.Compile(c.Data.Include); err != nil {
			v.fail("data.include", c.Data.Include, "invalid glob pattern: %v", err)
		}
	}
	v.between("data.debounce_ms", c.Data.DebounceMs, 0, maxDebounceMs)

	// tui
	v.oneOf("tui.theme", c.TUI.Theme, ValidThemes())
	v.between("tui.marker_width", c.TUI.MarkerWidth, minMarkerWidth, maxMarkerWidth)

	// images
	if raw := c.Images.PlaceholderURL; raw != "" && !isHTTPURL(raw) {
		v.fail("images.placeholder_url", raw, "must be an absolute http(s) URL")
	}
	if c.Images.ProbeTimeoutMs <= 0 {
		v.fail("images.probe_timeout_ms", c.Images.ProbeTimeoutMs, "must be positive")
	}
	v.between("images.probe_concurrency", c.Images.ProbeConcurrency, 1, maxProbeConcurrency)

	// logging
	v.oneOf("logging.level", c.Logging.Level, ValidLogLevels())
	v.between("logging.max_size_mb", c.Logging.MaxSizeMB, 1, maxLogSizeMB)
	if c.Logging.MaxBackups < 0 {
		v.fail("logging.max_backups", c.Logging.MaxBackups, "must be non-negative")
	}

	return v
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
