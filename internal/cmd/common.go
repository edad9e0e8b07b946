package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Iron-Ham/timeline/internal/appearance"
	"github.com/Iron-Ham/timeline/internal/config"
	"github.com/Iron-Ham/timeline/internal/loader"
	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/session"
)

// loadConfig reads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a file logger when logging is enabled. Otherwise logs
// are discarded so they never interleave with command output or the TUI.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	dir := cfg.Logging.LogDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return logging.NewLogger(dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// newSession builds the loader and an empty session from cfg. The starting
// theme is applied to the process-wide appearance state.
func newSession(cfg *config.Config, logger *logging.Logger) (*session.Session, *loader.Loader, error) {
	l, err := loader.New(loader.Options{
		Path:    cfg.Data.Path,
		Include: cfg.Data.Include,
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, err
	}

	mode, err := appearance.ParseMode(cfg.TUI.Theme)
	if err != nil {
		return nil, nil, err
	}
	theme := appearance.Process()
	if theme.Mode() != mode {
		theme.Toggle()
	}

	sess := session.New(session.WithLogger(logger), session.WithTheme(theme))
	return sess, l, nil
}

// cliEnv is what a one-shot command works with.
type cliEnv struct {
	cfg    *config.Config
	sess   *session.Session
	logger *logging.Logger
}

// Close detaches the session and releases the logger.
func (e *cliEnv) Close() {
	if e.sess != nil {
		e.sess.Close()
	}
	_ = e.logger.Close()
}

// setup is the common preamble of the one-shot commands: configuration,
// logger and a loaded session. A load failure is an error here.
func setup(ctx context.Context) (*cliEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	env := &cliEnv{cfg: cfg, logger: logger}

	sess, l, err := newSession(cfg, logger)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.sess = sess
	if err := sess.Load(ctx, l); err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
