package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete timeline viewer configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Images  ImagesConfig  `mapstructure:"images" yaml:"images"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DataConfig controls where timeline events come from
type DataConfig struct {
	// Path is a data file or a directory of data files.
	// Empty means the built-in dataset.
	Path string `mapstructure:"path" yaml:"path"`
	// Include is a glob matched against file names when Path is a directory
	Include string `mapstructure:"include" yaml:"include"`
	// Watch reloads the data when the file or directory changes
	Watch bool `mapstructure:"watch" yaml:"watch"`
	// DebounceMs coalesces bursts of file events into one reload
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the starting appearance: "light" or "dark"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// MarkerWidth is the width of each year marker in cells
	MarkerWidth int `mapstructure:"marker_width" yaml:"marker_width"`
	// ShowHelp shows the key hint line under the timeline
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
	// Title is the header text
	Title string `mapstructure:"title" yaml:"title"`
}

// ImagesConfig controls image URL handling
type ImagesConfig struct {
	// PlaceholderURL replaces missing or broken image URLs
	PlaceholderURL string `mapstructure:"placeholder_url" yaml:"placeholder_url"`
	// ProbeTimeoutMs bounds each image reachability check
	ProbeTimeoutMs int `mapstructure:"probe_timeout_ms" yaml:"probe_timeout_ms"`
	// ProbeConcurrency is the number of checks run at once
	ProbeConcurrency int `mapstructure:"probe_concurrency" yaml:"probe_concurrency"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on file logging for the TUI
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Dir overrides the log directory (default: StateDir())
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Defaults shared with the rest of the module.
const (
	DefaultTitle          = "World War II Timeline (1939-1945)"
	DefaultPlaceholderURL = "https://placehold.co/500x300/e0cfa7/3b2f2f?text=Image+Not+Found"
	DefaultInclude        = "*.{json,jsonc,yaml,yml}"
)

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:       "",
			Include:    DefaultInclude,
			Watch:      false,
			DebounceMs: 100,
		},
		TUI: TUIConfig{
			Theme:       "light",
			MarkerWidth: 14,
			ShowHelp:    true,
			Title:       DefaultTitle,
		},
		Images: ImagesConfig{
			PlaceholderURL:   DefaultPlaceholderURL,
			ProbeTimeoutMs:   5000,
			ProbeConcurrency: 4,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
			Dir:        "",
		},
	}
}

// Debounce returns the watch debounce as a time.Duration
func (c *DataConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ProbeTimeout returns the per-image probe timeout as a time.Duration
func (c *ImagesConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMs) * time.Millisecond
}

// LogDir returns the configured log directory, falling back to StateDir()
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return StateDir()
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Data defaults
	viper.SetDefault("data.path", defaults.Data.Path)
	viper.SetDefault("data.include", defaults.Data.Include)
	viper.SetDefault("data.watch", defaults.Data.Watch)
	viper.SetDefault("data.debounce_ms", defaults.Data.DebounceMs)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.marker_width", defaults.TUI.MarkerWidth)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.title", defaults.TUI.Title)

	// Image defaults
	viper.SetDefault("images.placeholder_url", defaults.Images.PlaceholderURL)
	viper.SetDefault("images.probe_timeout_ms", defaults.Images.ProbeTimeoutMs)
	viper.SetDefault("images.probe_concurrency", defaults.Images.ProbeConcurrency)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timeline")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timeline"
	}
	return filepath.Join(home, ".config", "timeline")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "timeline")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timeline"
	}
	return filepath.Join(home, ".local", "state", "timeline")
}
