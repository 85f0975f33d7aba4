// Package log writes levelled "[LEVEL] message" lines to stderr or a file.
// Debug, Info and Warn are filtered by the global level; Error is always
// written, whatever the level, so failures reach the log file even when
// it is set above LevelError.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel converts a config/flag value such as "debug" into a level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// SetOutput redirects log lines. The terminal UI owns stderr while running,
// so it points this at a file or io.Discard.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// OpenFile appends log lines to path and returns a closer for it
func OpenFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return f, nil
}

func emit(l slog.Level, tag, format string, args ...any) {
	if l < GetLevel() {
		return
	}
	write(tag, format, args...)
}

func write(tag, format string, args ...any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, "["+tag+"] "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it
func Debug(format string, args ...any) { emit(LevelDebug, "DEBUG", format, args...) }

// Info logs an info message if the level allows it
func Info(format string, args ...any) { emit(LevelInfo, "INFO", format, args...) }

// Warn logs a warning message if the level allows it
func Warn(format string, args ...any) { emit(LevelWarn, "WARN", format, args...) }

// Error logs an error message (always emitted)
func Error(format string, args ...any) { write("ERROR", format, args...) }
