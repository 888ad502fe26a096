// Package logger implements the diagnostic logger using log/slog.
//
// Every message goes to stderr: stdout belongs to the delegated build tool.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"go.trai.ch/anybuild/internal/core/ports"
	"go.trai.ch/anybuild/internal/ui/style"
)

// FormatEnv selects the log format. "json" switches to slog's JSON handler.
const FormatEnv = "ANYBUILD_LOG_FORMAT"

// messager matches zerr.Error, which can report its own message without the chain.
type messager interface {
	Message() string
}

// metadataer matches zerr.Error metadata.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	jsonMode bool
}

// New creates a new Logger writing to stderr, honoring FormatEnv.
func New() ports.Logger {
	return newLogger(os.Stderr, strings.EqualFold(os.Getenv(FormatEnv), "json"))
}

func newLogger(w io.Writer, jsonMode bool) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler = NewPrettyHandler(w, opts)
	if jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		jsonMode: jsonMode,
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs an error together with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	if l.jsonMode {
		args := []any{"error", err.Error()}
		if m, ok := err.(metadataer); ok {
			meta := m.Metadata()
			for _, k := range slices.Sorted(maps.Keys(meta)) {
				args = append(args, k, meta[k])
			}
		}
		l.logger.Error("operation failed", args...)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain renders the error and each zerr cause on its own line:
//
//	Error: could not find program (program=make)
//
//	  Caused by:
//	    → exec: "make": executable file not found in $PATH
func formatChain(err error) string {
	var messages []string
	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0]+formatMetadata(err))
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
		default:
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    "+style.Arrow+" "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "      "+line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(err error) string {
	m, ok := err.(metadataer)
	if !ok {
		return ""
	}
	meta := m.Metadata()
	if len(meta) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(pairs, " ") + ")"
}
