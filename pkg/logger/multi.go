package logger

import "errors"

// MultiLogger tees every message to several backends, e.g. stderr and a
// log file. Each backend applies its own minimum level.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a logger writing to each non-nil backend in order.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) each(fn func(Logger)) {
	for _, l := range m.loggers {
		fn(l)
	}
}

func (m *MultiLogger) Debug(format string, args ...interface{}) {
	m.each(func(l Logger) { l.Debug(format, args...) })
}

func (m *MultiLogger) Info(format string, args ...interface{}) {
	m.each(func(l Logger) { l.Info(format, args...) })
}

func (m *MultiLogger) Warning(format string, args ...interface{}) {
	m.each(func(l Logger) { l.Warning(format, args...) })
}

func (m *MultiLogger) Error(format string, args ...interface{}) {
	m.each(func(l Logger) { l.Error(format, args...) })
}

// Close closes every backend and joins their errors.
func (m *MultiLogger) Close() error {
	var errs []error
	m.each(func(l Logger) {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

var _ Logger = (*MultiLogger)(nil)
