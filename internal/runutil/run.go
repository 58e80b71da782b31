// internal/runutil/run.go
package runutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimeLayout matches the timestamp format of the run log.
const TimeLayout = "01/02/2006 15:04:05"

// LogName is the run log file created in the output directory.
const LogName = "gslice.log"

// Run carries per-run state that components need: an identifier, the logger
// and the sink for warnings and errors reported at the end of the run.
// Its methods are safe for concurrent use.
type Run struct {
	ID      string
	Started time.Time
	Log     *slog.Logger

	mu       sync.Mutex
	warnings []string
	errs     []string
	closer   io.Closer
}

// LogConfig selects where the run log goes.
type LogConfig struct {
	File   string    // log file path; "" for none
	Stderr io.Writer // console sink; nil for none
	Quiet  bool      // drop the console sink
	Level  slog.Level
}

// NewRun opens the log sinks and returns a Run with a fresh ID.
func NewRun(cfg LogConfig) (*Run, error) {
	var sinks []io.Writer
	var closer io.Closer
	if cfg.File != "" {
		fh, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log %s: %w", cfg.File, err)
		}
		sinks = append(sinks, fh)
		closer = fh
	}
	if cfg.Stderr != nil && !cfg.Quiet {
		sinks = append(sinks, cfg.Stderr)
	}
	var w io.Writer = io.Discard
	switch len(sinks) {
	case 0:
	case 1:
		w = sinks[0]
	default:
		w = io.MultiWriter(sinks...)
	}

	id := uuid.New().String()
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: formatTime,
	})
	return &Run{
		ID:      id,
		Started: time.Now(),
		Log:     slog.New(h).With("run", id[:8]),
		closer:  closer,
	}, nil
}

// NewDiscardRun is a Run with no log sinks, for tests and library callers.
func NewDiscardRun() *Run {
	r, _ := NewRun(LogConfig{})
	return r
}

func formatTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.String(slog.TimeKey, a.Value.Time().Format(TimeLayout))
	}
	return a
}

// Warn logs a non-fatal finding and records it for the end-of-run summary.
func (r *Run) Warn(msg string) {
	r.Log.Warn(msg)
	r.mu.Lock()
	r.warnings = append(r.warnings, msg)
	r.mu.Unlock()
}

// Fail logs an error that does not abort the run and records it.
func (r *Run) Fail(msg string, err error) {
	r.Log.Error(msg, "err", err)
	r.mu.Lock()
	r.errs = append(r.errs, fmt.Sprintf("%s: %v", msg, err))
	r.mu.Unlock()
}

func (r *Run) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

func (r *Run) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errs...)
}

// Close releases the log file, if any.
func (r *Run) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
