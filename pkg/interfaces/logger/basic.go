package logger

import (
	"fmt"
	"strings"
	"sync"
)

// BasicLogger prints log lines to stdout. It exists so examples and
// tools work without wiring a real logging backend.
type BasicLogger struct {
	mu     *sync.Mutex
	fields []Field
}

var _ Logger = (*BasicLogger)(nil)

// New returns a basic logger that writes to stdout.
func New() *BasicLogger {
	return &BasicLogger{mu: &sync.Mutex{}}
}

// Default returns the default basic logger implementation.
func Default() Logger {
	return New()
}

func (l *BasicLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	next := &BasicLogger{mu: l.mu, fields: make([]Field, 0, len(l.fields)+len(fields))}
	next.fields = append(next.fields, l.fields...)
	next.fields = append(next.fields, fields...)
	return next
}

func (l *BasicLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *BasicLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *BasicLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *BasicLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *BasicLogger) log(level, msg string, fields []Field) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if rendered := formatFields(append(l.fields, fields...)); rendered != "" {
		line += " " + rendered
	}
	l.mu.Lock()
	fmt.Println(line)
	l.mu.Unlock()
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s=%v", field.Key, field.Value)
	}
	return strings.Join(parts, " ")
}
