// Package logx is the renderer's single logging entry point: one file,
// truncated at process start, one JSON line per call. It mirrors the
// single log_file_fn entry point of the C renderer this module descends
// from, built on the standard library's structured logger instead of a
// hand-rolled vsnprintf wrapper.
package logx

import (
	"log/slog"
	"os"
)

var logger = newLogger("log.txt")

func newLogger(path string) *slog.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		// Fall back to stderr: logging must never be the reason the
		// renderer fails to start.
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(f, nil))
}

// Info logs at info level with the given key/value pairs.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs at warn level with the given key/value pairs.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs at error level with the given key/value pairs.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// Debug logs at debug level with the given key/value pairs.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
