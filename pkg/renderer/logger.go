package renderer

import "fmt"

// Logger is the interface the renderer reports progress through
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// nopLogger discards all output; used when the caller passes a nil logger
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
