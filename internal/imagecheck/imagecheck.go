// Package imagecheck decides which image each event should show and, on
// request, probes image URLs to find the broken ones.
package imagecheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/Iron-Ham/timeline/internal/logging"
	"github.com/Iron-Ham/timeline/internal/timeline"
)

// Status is the outcome of checking one image URL.
type Status int

const (
	// StatusOK means the URL answered with a success status.
	StatusOK Status = iota
	// StatusMissing means the event has no image URL.
	StatusMissing
	// StatusInvalid means the URL is not an absolute http(s) URL.
	StatusInvalid
	// StatusUnreachable means the request failed or returned an error status.
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusInvalid:
		return "invalid"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Validate classifies rawURL without fetching it. The error explains any
// status other than StatusOK.
func Validate(rawURL string) (Status, error) {
	if rawURL == "" {
		return StatusMissing, fmt.Errorf("no image URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return StatusInvalid, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return StatusInvalid, fmt.Errorf("not an absolute http(s) URL: %q", rawURL)
	}
	return StatusOK, nil
}

// Resolve returns the URL to display for rawURL: rawURL itself when it
// looks usable, otherwise placeholder.
func Resolve(rawURL, placeholder string) string {
	if _, err := Validate(rawURL); err != nil {
		return placeholder
	}
	return rawURL
}

// Result is the check outcome for one event.
type Result struct {
	Year   string
	URL    string
	Status Status
	Code   int // HTTP status, 0 when no response was received
	Err    error
}

// Broken reports whether the presenter should fall back to the placeholder.
func (r Result) Broken() bool {
	return r.Status != StatusOK
}

// Options configures a Checker.
type Options struct {
	// Client performs the requests. Nil uses a client with Timeout.
	Client *http.Client
	// Timeout bounds each probe.
	Timeout time.Duration
	// Concurrency is the number of probes in flight. Values below 1 mean 1.
	Concurrency int
	// Logger receives per-probe diagnostics. Nil discards them.
	Logger *logging.Logger
}

// Checker probes image URLs concurrently.
type Checker struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	logger      *logging.Logger
}

// NewChecker creates a Checker.
func NewChecker(opts Options) *Checker {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	return &Checker{
		client:      opts.Client,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
		logger:      opts.Logger.WithComponent("imagecheck"),
	}
}

// Check probes every event's image and returns one Result per event, in
// event order. Canceling ctx marks the remaining probes unreachable.
func (c *Checker) Check(ctx context.Context, events []timeline.Event) []Result {
	results := make([]Result, len(events))

	p := pool.New().WithMaxGoroutines(c.concurrency).WithContext(ctx)
	for i, e := range events {
		p.Go(func(ctx context.Context) error {
			results[i] = c.probe(ctx, e)
			return nil
		})
	}
	_ = p.Wait()

	return results
}

func (c *Checker) probe(ctx context.Context, e timeline.Event) Result {
	res := Result{Year: e.Year, URL: e.ImageURL}
	if status, err := Validate(e.ImageURL); err != nil {
		res.Status, res.Err = status, err
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	code, err := c.request(ctx, http.MethodHead, e.ImageURL)
	// Some image hosts refuse HEAD
	if err == nil && (code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented) {
		code, err = c.request(ctx, http.MethodGet, e.ImageURL)
	}

	res.Code = code
	switch {
	case err != nil:
		res.Status, res.Err = StatusUnreachable, err
	case code >= 400:
		res.Status, res.Err = StatusUnreachable, fmt.Errorf("HTTP %d", code)
	default:
		res.Status = StatusOK
	}

	c.logger.Debug("probed image", "year", e.Year, "url", e.ImageURL, "status", res.Status.String(), "code", code)
	return res
}

func (c *Checker) request(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "timeline-imagecheck")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
