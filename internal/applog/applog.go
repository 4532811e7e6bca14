// Package applog provides the structured logger used across a run: one
// charmbracelet/log logger tagged with a per-run correlation ID, so that
// log lines from concurrent workers processing the same batch can be
// grouped back together.
package applog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger wraps a charmbracelet/log logger pinned to one run's correlation
// ID, set as the "run" field on every line it emits.
type Logger struct {
	*log.Logger
	RunID string
}

// New creates a Logger writing to w (os.Stderr if w is nil) at the given
// level, tagged with a freshly generated run correlation ID.
func New(w io.Writer, level log.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	runID := uuid.NewString()
	base := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	base.SetLevel(level)
	tagged := base.With("run", runID)
	return &Logger{Logger: tagged, RunID: runID}
}

// WithWorker returns a child logger tagged with a worker index, for
// per-goroutine log lines within a batch run.
func (l *Logger) WithWorker(id int) *log.Logger {
	return l.Logger.With("worker", id)
}
