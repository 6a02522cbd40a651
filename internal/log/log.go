// Package log provides JSON-lines structured logging for minigrep.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures the structured logger.
type Config struct {
	// Output is the writer for log output (default: os.Stderr)
	Output io.Writer

	// Level is the minimum log level (default: LevelWarn)
	Level slog.Level

	// Debug enables debug level logging (overrides Level)
	Debug bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: os.Stderr,
		Level:  slog.LevelWarn,
		Debug:  false,
	}
}

// New creates a new JSON-lines structured logger. Records look like:
//
//	{"ts":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"search finished","matches":2}
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level := cfg.Level
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(output, opts))
}

// ParseLevel converts debug, info, warn or error into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// OpenFile returns a rotating writer for fc.Path, creating its directory.
// The file itself is opened on first write.
func OpenFile(fc FileConfig) (io.WriteCloser, error) {
	if fc.Path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(fc.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   fc.Compress,
	}, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogSearchStart logs the resolved search parameters.
func LogSearchStart(logger *slog.Logger, query, path string, ignoreCase bool) {
	logger.Debug("search started",
		"query", query,
		"path", path,
		"ignore_case", ignoreCase,
	)
}

// LogFileRead logs a completed file read.
func LogFileRead(logger *slog.Logger, path string, size int) {
	logger.Debug("file read", "path", path, "bytes", size)
}

// LogSearchDone logs the outcome of a search.
func LogSearchDone(logger *slog.Logger, path string, matches int) {
	logger.Debug("search finished", "path", path, "matches", matches)
}

// LogReadFailed logs a file read failure. The error itself is reported by
// the caller, so this is debug only.
func LogReadFailed(logger *slog.Logger, path string, err error) {
	logger.Debug("file read failed", "path", path, "error", err)
}
