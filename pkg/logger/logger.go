package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Fields is a structured log payload.
type Fields map[string]any

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type writerLogger struct {
	mu  *sync.Mutex
	w   io.Writer
	min Level
	now func() time.Time
}

// NewWriterLogger builds a logger that writes lines at or above min to w.
func NewWriterLogger(w io.Writer, min Level) Logger {
	return writerLogger{mu: &sync.Mutex{}, w: w, min: min, now: time.Now}
}

func (l writerLogger) write(level Level, msg string, obj any) {
	if l.w == nil || level < l.min {
		return
	}
	ts := l.now().UTC().Format(time.RFC3339)

	line := fmt.Sprintf("%s %-5s %s", ts, level, msg)
	if obj != nil {
		b, err := json.Marshal(obj)
		if err != nil {
			line += fmt.Sprintf(" obj=%q", fmt.Sprintf("%+v", obj))
		} else {
			line += " obj=" + string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line+"\n")
}

func (l writerLogger) Info(msg string, obj any)  { l.write(LevelInfo, msg, obj) }
func (l writerLogger) Warn(msg string, obj any)  { l.write(LevelWarn, msg, obj) }
func (l writerLogger) Debug(msg string, obj any) { l.write(LevelDebug, msg, obj) }
func (l writerLogger) Error(msg string, obj any) { l.write(LevelError, msg, obj) }

// fieldLogger merges a fixed set of fields into every Fields payload.
type fieldLogger struct {
	next   Logger
	fields Fields
}

// With returns a logger that adds fields to every message. Payloads that are
// not Fields are passed through under the "obj" key.
func With(l Logger, fields Fields) Logger {
	if l == nil {
		return NopLogger{}
	}
	return fieldLogger{next: l, fields: fields}
}

func (l fieldLogger) merge(obj any) any {
	out := make(Fields, len(l.fields)+1)
	for k, v := range l.fields {
		out[k] = v
	}
	switch v := obj.(type) {
	case nil:
	case Fields:
		for k, fv := range v {
			out[k] = fv
		}
	case map[string]any:
		for k, fv := range v {
			out[k] = fv
		}
	default:
		out["obj"] = v
	}
	return out
}

func (l fieldLogger) Info(msg string, obj any)  { l.next.Info(msg, l.merge(obj)) }
func (l fieldLogger) Warn(msg string, obj any)  { l.next.Warn(msg, l.merge(obj)) }
func (l fieldLogger) Debug(msg string, obj any) { l.next.Debug(msg, l.merge(obj)) }
func (l fieldLogger) Error(msg string, obj any) { l.next.Error(msg, l.merge(obj)) }

// Debug writes a debug log when logger is non-nil.
func Debug(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
