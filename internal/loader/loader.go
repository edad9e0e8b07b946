package loader

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/Iron-Ham/timeline/internal/errors"
	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

// BuiltinSource is the source name reported for the embedded dataset.
const BuiltinSource = "builtin"

//go:embed data/events.json
var builtinData []byte

// Builtin returns the embedded World War II dataset.
func Builtin() []timeline.Event {
	events, err := Parse(builtinData, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("loader: embedded dataset is invalid: %v", err))
	}
	return events
}

// Options configures a Loader.
type Options struct {
	// Path is a data file or directory. Empty selects the built-in dataset.
	Path string
	// Include filters directory entries by file name. Empty matches every
	// file with a supported extension.
	Include string
	// Logger receives load diagnostics. Nil discards them.
	Logger *logging.Logger
}

// Loader reads events from one configured source.
type Loader struct {
	path    string
	include glob.Glob
	logger  *logging.Logger
}

// New creates a Loader. It fails only if the include pattern does not
// compile.
func New(opts Options) (*Loader, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	l := &Loader{
		path:   opts.Path,
		logger: logger.WithComponent("loader"),
	}

	if opts.Include != "" {
		g, err := glob.Compile(opts.Include)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid include pattern: %v", err)).
				WithField("data.include").
				WithValue(opts.Include)
		}
		l.include = g
	}

	return l, nil
}

// Source names where events come from: the configured path, or
// BuiltinSource.
func (l *Loader) Source() string {
	if l.path == "" {
		return BuiltinSource
	}
	return l.path
}

// Path returns the configured path, empty for the built-in dataset.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the whole source. On failure it returns a *errors.LoadError and
// no events; callers decide whether to keep what they had.
func (l *Loader) Load(ctx context.Context) ([]timeline.Event, error) {
	if l.path == "" {
		events := Builtin()
		l.logger.Debug("loaded built-in events", "count", len(events))
		return events, nil
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, errors.NewLoadError(l.path, fmt.Errorf("%w: %w", errors.ErrLoadFailed, err))
	}

	var events []timeline.Event
	if info.IsDir() {
		events, err = l.loadDir(ctx)
	} else {
		events, err = l.loadFile(l.path)
	}
	if err != nil {
		return nil, err
	}

	if dups := timeline.DuplicateYears(events); len(dups) > 0 {
		l.logger.Warn("duplicate event years; selection by year picks the first",
			"source", l.path, "years", dups)
	}
	l.logger.Info("loaded events", "source", l.path, "count", len(events))
	return events, nil
}

func (l *Loader) loadFile(path string) ([]timeline.Event, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, errors.NewLoadError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewLoadError(path, fmt.Errorf("%w: %w", errors.ErrLoadFailed, err)).
			WithFormat(string(format))
	}

	events, err := Parse(data, format)
	if err != nil {
		return nil, errors.NewLoadError(path, err).WithFormat(string(format))
	}
	return events, nil
}

func (l *Loader) loadDir(ctx context.Context) ([]timeline.Event, error) {
	files, err := l.dataFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.NewLoadError(l.path,
			fmt.Errorf("%w: no data files in directory", errors.ErrLoadFailed))
	}

	var events []timeline.Event
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.NewLoadError(l.path, err)
		}
		batch, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded data file", "file", file, "count", len(batch))
		events = append(events, batch...)
	}
	if events == nil {
		events = []timeline.Event{}
	}
	return events, nil
}

// dataFiles lists the directory's loadable files in lexical order.
func (l *Loader) dataFiles() ([]string, error) {
	entries, err := os.ReadDir(l.path)
	if err != nil {
		return nil, errors.NewLoadError(l.path, fmt.Errorf("%w: %w", errors.ErrLoadFailed, err))
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !l.matches(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(l.path, entry.Name()))
	}
	return files, nil
}

// matches reports whether a file name in a directory source should load.
func (l *Loader) matches(name string) bool {
	if _, err := FormatFor(name); err != nil {
		return false
	}
	return l.include == nil || l.include.Match(name)
}
