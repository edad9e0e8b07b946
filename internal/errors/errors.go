// Package errors defines the error taxonomy of the timeline: typed errors
// for the data loader and the selection controller, the sentinels they
// wrap, and helpers that tell presenters how to surface an error.
//
// # Error Types
//
//   - LoadError: event data could not be read, parsed or shaped into events.
//     A warning: the store stays empty or keeps its previous snapshot.
//   - UnknownEventError: a selection named an event that is not in the
//     store. The selection is left unchanged.
//   - ValidationError: a record or setting did not have the expected shape.
//
// Filtering by a category that no event carries is not an error; it yields
// an empty result.
//
// # Usage
//
//	err := errors.NewLoadError("events.json", errors.ErrMalformedData)
//	if errors.Is(err, errors.ErrMalformedData) { ... }
//
//	var unknown *errors.UnknownEventError
//	if errors.As(err, &unknown) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-exported so callers only import this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity ranks how loudly an error should be surfaced.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

var severityNames = [...]string{"debug", "info", "warning", "error", "critical"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// Loading
var (
	ErrLoadFailed        = New("event data could not be loaded")
	ErrMalformedData     = New("event data is malformed")
	ErrUnsupportedFormat = New("unsupported event data format")
)

// Selection
var ErrUnknownEvent = New("event is not in the current collection")

// ErrInvalidInput is the cause of every ValidationError.
var ErrInvalidInput = New("invalid input")

// Classified is implemented by every error type in this package.
type Classified interface {
	error
	Severity() Severity
	IsUserFacing() bool
}

// class carries the classification shared by the typed errors.
type class struct {
	cause      error
	severity   Severity
	userFacing bool
}

func (c *class) Unwrap() error        { return c.cause }
func (c *class) Severity() Severity   { return c.severity }
func (c *class) IsUserFacing() bool   { return c.userFacing }
func (c *class) causeIs(t error) bool { return c.cause != nil && errors.Is(c.cause, t) }

// LoadError reports a failure of the data loader.
//
//	errors.NewLoadError("data/events.json", errors.ErrMalformedData).WithFormat("json")
//	// load error [source=data/events.json, format=json]: event data is malformed
type LoadError struct {
	class
	Source string
	Format string
}

// NewLoadError creates a LoadError for source. A nil cause reads as a
// generic load failure.
func NewLoadError(source string, cause error) *LoadError {
	return &LoadError{
		class:  class{cause: cause, severity: SeverityWarning, userFacing: true},
		Source: source,
	}
}

// WithFormat records the data format the loader attempted.
func (e *LoadError) WithFormat(format string) *LoadError {
	e.Format = format
	return e
}

// WithSeverity overrides the default warning severity.
func (e *LoadError) WithSeverity(s Severity) *LoadError {
	e.severity = s
	return e
}

func (e *LoadError) Error() string {
	var ctx []string
	if e.Source != "" {
		ctx = append(ctx, "source="+e.Source)
	}
	if e.Format != "" {
		ctx = append(ctx, "format="+e.Format)
	}

	prefix := "load error"
	if len(ctx) > 0 {
		prefix += " [" + strings.Join(ctx, ", ") + "]"
	}
	if e.cause == nil {
		return prefix + ": could not load events"
	}
	return fmt.Sprintf("%s: %v", prefix, e.cause)
}

// Is matches any *LoadError, ErrLoadFailed, and the cause chain.
func (e *LoadError) Is(target error) bool {
	if _, ok := target.(*LoadError); ok {
		return true
	}
	return target == ErrLoadFailed || e.causeIs(target)
}

// UnknownEventError reports a selection of an event that the current
// collection does not contain.
type UnknownEventError struct {
	class
	Year  string
	Title string
}

// NewUnknownEventError creates an UnknownEventError for the event with the
// given year. Title is optional and only used in the message.
func NewUnknownEventError(year, title string) *UnknownEventError {
	return &UnknownEventError{
		class: class{cause: ErrUnknownEvent, severity: SeverityWarning, userFacing: true},
		Year:  year,
		Title: title,
	}
}

func (e *UnknownEventError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("unknown event %s (%q)", e.Year, e.Title)
	}
	return "unknown event " + e.Year
}

func (e *UnknownEventError) Is(target error) bool {
	if _, ok := target.(*UnknownEventError); ok {
		return true
	}
	return e.causeIs(target)
}

// ValidationError reports input that does not have the expected shape.
//
//	errors.NewValidationError("missing field").WithField("events[2].year")
type ValidationError struct {
	class
	Message string
	Field   string
	Value   any
}

// NewValidationError creates a ValidationError wrapping ErrInvalidInput.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		class:   class{cause: ErrInvalidInput, severity: SeverityWarning, userFacing: true},
		Message: message,
	}
}

// WithField sets the path of the offending field.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the offending value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error")
	if e.Field != "" {
		fmt.Fprintf(&sb, " [%s]", e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Value != nil {
		fmt.Fprintf(&sb, " (got: %v)", e.Value)
	}
	return sb.String()
}

func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.causeIs(target)
}

// IsUserFacing reports whether err's message is meant for end users.
// Errors from outside this package are not.
func IsUserFacing(err error) bool {
	var c Classified
	return As(err, &c) && c.IsUserFacing()
}

// GetSeverity returns the severity of err: its own for a Classified error,
// SeverityError for anything else, SeverityDebug for nil.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var c Classified
	if As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}

// IsRecoverable reports whether the caller can keep running after err:
// true for nil and anything below SeverityError.
func IsRecoverable(err error) bool {
	return GetSeverity(err) < SeverityError
}
