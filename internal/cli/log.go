package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/macro-ai/archdiagrams/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 4/4 diagrams (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Logging Hooks
// =============================================================================

// logHooks forwards scene and render lifecycle events to a logger at debug
// level. Installed by --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRunStart(_ context.Context, runID string, scenes int) {
	h.logger.Debug("run started", "run", runID, "scenes", scenes)
}

func (h logHooks) OnSceneStart(_ context.Context, key string) {
	h.logger.Debug("scene started", "scene", key)
}

func (h logHooks) OnSceneComplete(_ context.Context, key, file string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("scene complete", "scene", key, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("scene complete", "scene", key, "file", file, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnRunComplete(_ context.Context, runID string, succeeded, total int, d time.Duration) {
	h.logger.Debug("run complete", "run", runID, "succeeded", succeeded, "total", total, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnRenderStart(_ context.Context, format string, dotSize int) {
	h.logger.Debug("graphviz render", "format", format, "dot_bytes", dotSize)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("graphviz render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("graphviz render done", "format", format, "bytes", size, "duration", d.Round(time.Millisecond))
}

// installLogHooks registers logHooks for l with the observability package.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetSceneHooks(h)
	observability.SetRenderHooks(h)
}
