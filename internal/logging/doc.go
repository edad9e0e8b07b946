// Package logging provides structured logging for the timeline viewer.
//
// This package wraps Go's log/slog to write JSON-formatted logs. The TUI owns
// the terminal, so interactive sessions log to a file in the state directory;
// one-shot CLI commands log to stderr.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("events loaded", "count", 7, "source", "embedded")
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	loaderLog := logger.WithComponent("loader")
//	loaderLog.Warn("reload failed", "error", err)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"reload failed","component":"loader","error":"..."}
//
// # Log Rotation
//
// File logs rotate by size. Rotated files are named timeline.log.1,
// timeline.log.2, etc., where .1 is the most recent backup.
//
// # Testing
//
// Use [NopLogger] to discard all log output.
package logging
