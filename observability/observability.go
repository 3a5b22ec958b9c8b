// Package observability defines the logging and tracing hooks the
// library emits through. The zero-cost defaults keep document
// generation silent; the CLI installs a text logger.
package observability

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type int64Field struct {
	key string
	val int64
}

func (f int64Field) Key() string        { return f.key }
func (f int64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field      { return stringField{key, value} }
func Int(key string, value int) Field     { return intField{key, value} }
func Int64(key string, value int64) Field { return int64Field{key, value} }
func Error(key string, err error) Field   { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// textLogger writes one line per event, for CLI use.
type textLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	fields []Field
}

// NewTextLogger returns a logger that writes human-readable lines to
// out. It is safe for concurrent use.
func NewTextLogger(out io.Writer) Logger {
	return &textLogger{mu: &sync.Mutex{}, out: out}
}

func (l *textLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s", level, msg)
	for _, f := range append(l.fields, fields...) {
		fmt.Fprintf(l.out, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.out)
}

func (l *textLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *textLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *textLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *textLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *textLogger) With(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &textLogger{mu: l.mu, out: l.out, fields: merged}
}

// Tracer provides distributed tracing hooks for library operations.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span.
type Span interface {
	SetTag(key string, value interface{})
	SetError(err error)
	Finish()
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

// NopTracer returns a tracer that does nothing.
func NopTracer() Tracer { return nopTracer{} }

type nopSpan struct{}

func (nopSpan) SetTag(string, interface{}) {}
func (nopSpan) SetError(error)             {}
func (nopSpan) Finish()                    {}

// Standard metric names emitted by the library.
const (
	MetricGenerateTime  = "tradedoc.generate.duration"
	MetricLayoutOpCount = "tradedoc.layout.ops.count"
	MetricFontLoadTime  = "tradedoc.fonts.load.duration"
	MetricLogoBytes     = "tradedoc.logo.bytes"
	MetricOutputBytes   = "tradedoc.output.bytes"
)
