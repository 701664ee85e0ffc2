package log

import "os"

var defaultLogger *Logger = NewText(os.Stderr)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Debug level message.
func Debug(msg string, v ...any) {
	defaultLogger.Debug(msg, v...)
}

// Info level message.
func Info(msg string, v ...any) {
	defaultLogger.Info(msg, v...)
}

// Warn level message.
func Warn(msg string, v ...any) {
	defaultLogger.Warn(msg, v...)
}

// Error level message.
func Error(msg string, v ...any) {
	defaultLogger.Error(msg, v...)
}
