package logger

import (
	"io"

	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
}

// DefaultConfig returns the logger configuration used by the module, writing to output.
// Writes are synchronous so nothing is lost when a short-lived process exits.
func DefaultConfig(output io.Writer) l.Config {
	return l.Config{
		Output:     output,
		JsonFormat: false,
		AsyncWrite: false,
		AddSource:  true,
	}
}

// NewStdLogger creates a new standard logger adapter writing to output.
func NewStdLogger(output io.Writer) (ports.Logger, error) {
	return NewCustomStdLogger(DefaultConfig(output))
}

// NewDiscardLogger creates a logger that drops every entry.
func NewDiscardLogger() (ports.Logger, error) {
	return NewStdLogger(io.Discard)
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}
