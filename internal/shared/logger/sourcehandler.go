package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller location to records at or above
// minLevel. The wrapped handler must be built with AddSource disabled.
type sourceHandler struct {
	next     slog.Handler
	minLevel slog.Level
}

// NewSourceHandler wraps next so that only records at minLevel or higher
// carry a source attribute.
func NewSourceHandler(next slog.Handler, minLevel slog.Level) slog.Handler {
	return &sourceHandler{next: next, minLevel: minLevel}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), minLevel: h.minLevel}
}
