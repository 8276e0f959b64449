// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/lddgraph/internal/core/domain"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    *slog.LevelVar
}

// New creates a new Logger writing pretty output to stderr at info level.
func New() *Logger {
	l := &Logger{
		output: os.Stderr,
		level:  &slog.LevelVar{},
	}
	l.rebuild()
	return l
}

// NewWithConfig creates a Logger writing to w with the configured level and format.
func NewWithConfig(w io.Writer, cfg domain.Config) *Logger {
	l := New()
	l.SetOutput(w)
	l.SetLevel(cfg.LogLevel)
	l.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	return l
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// rebuild replaces the handler. Callers hold the write lock.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Debug logs a trace message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	entries := collectErrorEntries(err)

	if l.jsonMode {
		args := []any{"error", err}
		for _, e := range entries {
			for _, kv := range e.metadata {
				args = append(args, kv.key, kv.value)
			}
		}
		l.logger.Error("operation failed", args...)
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}

type keyValue struct {
	key   string
	value any
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	message  string
	metadata []keyValue
}

// collectErrorEntries walks the error chain. zerr errors contribute their own
// message; the first standard error contributes its full text and ends the walk.
// Metadata already reported by an outer level is not repeated.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	seen := make(map[string]bool)

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message()}
		if md, ok := current.(metadataer); ok {
			keys := make([]string, 0, len(md.Metadata()))
			for k := range md.Metadata() {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				v := md.Metadata()[k]
				id := fmt.Sprintf("%s=%v", k, v)
				if seen[id] {
					continue
				}
				seen[id] = true
				entry.metadata = append(entry.metadata, keyValue{key: k, value: v})
			}
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain as the main error followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var formattedLines []string

	for i, e := range entries {
		lines := strings.Split(e.message, "\n")
		first := lines[0] + formatMetadata(e.metadata)

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+first)
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    → "+first)
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	return strings.Join(formattedLines, "\n")
}

func formatMetadata(md []keyValue) string {
	if len(md) == 0 {
		return ""
	}
	parts := make([]string, len(md))
	for i, kv := range md {
		parts[i] = fmt.Sprintf("%s=%v", kv.key, kv.value)
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
