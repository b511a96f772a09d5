// Package logger provides the logging interface shared by warpcookie components.
// Backends write to a *log.Logger, discard everything, record calls for tests,
// or fan out to several other backends.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the tag printed in front of messages of this level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level: %q", s)
}

// Logger defines the interface for logging across warpcookie components.
//
// Cookie values are sensitive: callers pass cookie names and domains to a
// Logger, never values.
type Logger interface {
	// Debug logs a diagnostic message (e.g., "skipping unknown attribute").
	Debug(format string, args ...interface{})

	// Info logs an informational message (e.g., "parsed 3 cookies").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "skipping malformed cookie segment").
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times. Returns nil for loggers without resources.
	Close() error
}

// StandardLogger wraps the stdlib *log.Logger for console/file output.
// Messages below the minimum level are dropped.
type StandardLogger struct {
	logger    *log.Logger
	min       Level
	closer    io.Closer
	closeOnce sync.Once
}

// NewFileLogger creates a logger that appends timestamped lines to w and
// closes w on Close.
func NewFileLogger(w io.WriteCloser, min Level) *StandardLogger {
	return &StandardLogger{
		logger: log.New(w, "", log.LstdFlags),
		min:    min,
		closer: w,
	}
}

// NewLeveledLogger creates a logger that wraps the given *log.Logger and
// prints messages at min and above.
func NewLeveledLogger(l *log.Logger, min Level) *StandardLogger {
	return &StandardLogger{logger: l, min: min}
}

func (s *StandardLogger) printf(lvl Level, format string, args ...interface{}) {
	if lvl < s.min {
		return
	}
	s.logger.Printf("["+lvl.String()+"] "+format, args...)
}

// Debug logs a diagnostic message with [DEBUG] prefix.
func (s *StandardLogger) Debug(format string, args ...interface{}) {
	s.printf(LevelDebug, format, args...)
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.printf(LevelInfo, format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.printf(LevelWarning, format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.printf(LevelError, format, args...)
}

// Close closes the underlying file of a file logger. Later calls return nil.
func (s *StandardLogger) Close() (err error) {
	if s.closer == nil {
		return nil
	}
	s.closeOnce.Do(func() { err = s.closer.Close() })
	return err
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(format string, args ...interface{})   {}
func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger implements Logger for testing purposes.
// It records all log calls for verification in tests and may be shared
// between goroutines.
type MockLogger struct {
	mu           sync.Mutex
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		DebugCalls:   make([]string, 0),
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

func (m *MockLogger) record(dst *[]string, format string, args ...interface{}) {
	m.mu.Lock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
	m.mu.Unlock()
}

// Debug records the formatted message.
func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.record(&m.DebugCalls, format, args...)
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.record(&m.InfoCalls, format, args...)
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.record(&m.WarningCalls, format, args...)
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.record(&m.ErrorCalls, format, args...)
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.mu.Lock()
	m.CloseCalled = true
	m.mu.Unlock()
	return nil
}

var _ Logger = (*MockLogger)(nil)
