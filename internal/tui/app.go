// Package tui implements the interactive timeline viewer on bubbletea.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/timeline/internal/event"
	"github.com/Iron-Ham/timeline/internal/loader"
	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/session"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	session *session.Session
	loader  *loader.Loader
	opts    Options
	logger  *logging.Logger
}

// New creates a new TUI application reading events through l.
func New(sess *session.Session, l *loader.Loader, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:   NewModel(sess, l, opts),
		session: sess,
		loader:  l,
		opts:    opts,
		logger:  logger.WithComponent("app"),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	// Trace session changes into the debug log
	subID := a.session.Bus().SubscribeAll(func(e event.Event) {
		a.logger.Debug("session event", "type", e.EventType())
	})
	defer a.session.Bus().Unsubscribe(subID)

	if a.opts.Watch {
		if w := a.startWatcher(); w != nil {
			defer w.Stop()
		}
	}

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)

	return err
}

// startWatcher reloads the data whenever the source changes. Watching is
// best effort: the viewer still works without it.
func (a *App) startWatcher() *loader.Watcher {
	if a.loader.Path() == "" {
		a.logger.Info("watch ignored for the built-in dataset")
		return nil
	}

	w, err := loader.NewWatcher(a.loader, a.opts.Debounce, func() {
		a.program.Send(reloadMsg{})
	})
	if err != nil {
		a.logger.Warn("file watch disabled", "path", a.loader.Path(), "error", err)
		return nil
	}
	w.Start()
	return w
}
