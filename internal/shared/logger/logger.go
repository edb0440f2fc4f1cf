package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"pulseboard/internal/shared/config"
)

var (
	mu          sync.RWMutex
	defaultLog  *slog.Logger
	atomicLevel = new(slog.LevelVar)
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func replaceErrorAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func newHandler(w io.Writer, format string, level slog.Leveler, sourceFrom slog.Level) slog.Handler {
	var base slog.Handler
	if format == "json" {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = tint.NewHandler(w, &tint.Options{
			Level:       level,
			TimeFormat:  time.DateTime,
			NoColor:     !isTerminal(w),
			ReplaceAttr: replaceErrorAttr,
		})
	}
	return NewSourceHandler(base, sourceFrom)
}

// Init builds the process logger. In debug mode every record carries its
// source location, otherwise only warnings and errors do.
func Init(cfg *config.LoggerConfig, debugMode bool) error {
	w, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	atomicLevel.Set(parseLevel(cfg.Level))

	sourceFrom := slog.LevelWarn
	if debugMode {
		sourceFrom = slog.LevelDebug
	}

	l := slog.New(newHandler(w, strings.ToLower(cfg.Format), atomicLevel, sourceFrom))
	mu.Lock()
	defaultLog = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

// Get returns the process logger, falling back to a console logger at info
// level when Init has not run.
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLog
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLog == nil {
		defaultLog = slog.New(newHandler(os.Stdout, "console", slog.LevelInfo, slog.LevelWarn))
	}
	return defaultLog
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
