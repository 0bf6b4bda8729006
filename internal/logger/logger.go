package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Logger writes component-tagged lines to stderr. Debug and Info are only
// emitted while the verbose callback reports true.
type Logger struct {
	component string
	verbose   func() bool
	writer    io.Writer
	now       func() time.Time
}

// Field is a key-value pair appended to a log line.
type Field struct {
	Key   string
	Value interface{}
}

func New(component string, verbose func() bool) *Logger {
	return &Logger{
		component: component,
		verbose:   verbose,
		writer:    os.Stderr,
		now:       time.Now,
	}
}

// WithWriter returns a copy of l that writes to w.
func (l *Logger) WithWriter(w io.Writer) *Logger {
	c := *l
	c.writer = w
	return &c
}

// WithComponent returns a copy of l tagged with component.
func (l *Logger) WithComponent(component string) *Logger {
	c := *l
	c.component = component
	return &c
}

func (l *Logger) isVerbose() bool {
	return l.verbose != nil && l.verbose()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	if l.isVerbose() {
		l.log("DEBUG", msg, fields)
	}
}

func (l *Logger) Info(msg string, fields ...Field) {
	if l.isVerbose() {
		l.log("INFO", msg, fields)
	}
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields)
}

func (l *Logger) log(level, msg string, fields []Field) {
	component := l.component
	if component == "" {
		component = "main"
	}

	var fieldsStr string
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
		}
		fieldsStr = " [" + strings.Join(parts, " ") + "]"
	}

	line := fmt.Sprintf("[%s] %s [%s] %s%s\n", l.now().Format("15:04:05.000"), level, component, msg, fieldsStr)
	// nothing sensible to do if stderr is gone
	_, _ = io.WriteString(l.writer, line)
}

func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Count(value int) Field {
	return Field{Key: "count", Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
