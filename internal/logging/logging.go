// Package logging builds the structured slog logger used by the kpaths
// command. Libraries never log on their own; they accept a *slog.Logger
// through options and default to discarding.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LogLevel is the command-line facing log level.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// String returns the lower-case level name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// SlogLevel converts LogLevel to slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New returns a text-handler logger writing records at or above level to w.
// A nil w discards everything.
func New(level LogLevel, w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}
