// Package log wraps log/slog with a leveled logger shared by the CLI.
// The decoding engine itself never logs; it is pure by contract.
package log

import (
	"context"
	"io"
	"log/slog"
)

type Logger struct {
	slog  *slog.Logger
	level Level
}

func NewText(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelDebug),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

func NewJson(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelDebug),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) log(msg string, level Level, v ...any) {
	if l.level > level {
		return
	}
	l.slog.Log(context.Background(), slog.Level(level), msg, v...)
}

// Debug level message.
func (l *Logger) Debug(msg string, v ...any) {
	l.log(msg, LevelDebug, v...)
}

// Info level message.
func (l *Logger) Info(msg string, v ...any) {
	l.log(msg, LevelInfo, v...)
}

// Warn level message.
func (l *Logger) Warn(msg string, v ...any) {
	l.log(msg, LevelWarn, v...)
}

// Error level message.
func (l *Logger) Error(msg string, v ...any) {
	l.log(msg, LevelError, v...)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		a.Value = slog.StringValue(Level(level).String())
	}
	return a
}
