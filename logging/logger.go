package logging

import "log/slog"

// Logger defines methods for structured logging.
// All methods accept alternating key-value pairs for structured fields.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)
}

// SlogLogger implements Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlog wraps l. A nil l falls back to slog.Default().
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	opts := search.DefaultOptions()
//	opts.Logger = logging.NewSlog(slog.New(handler))
func NewSlog(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}

	return &SlogLogger{logger: l}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) { l.logger.Debug(msg, keysAndValues...) }

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) { l.logger.Info(msg, keysAndValues...) }

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) { l.logger.Warn(msg, keysAndValues...) }

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) { l.logger.Error(msg, keysAndValues...) }

// NopLogger discards all messages.
type NopLogger struct{}

var _ Logger = NopLogger{}

// NewNop returns a Logger that performs no operations.
func NewNop() NopLogger { return NopLogger{} }

// Debug discards the message.
func (NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (NopLogger) Error(string, ...any) {}

// OrNop returns l, or the nop logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}

	return l
}
