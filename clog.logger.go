package clog

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Level is the priority of a log line
type Level int

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Level short names, as printed by WriterSink
const (
	LevelNameVerbose = "V"
	LevelNameDebug   = "D"
	LevelNameInfo    = "I"
	LevelNameWarn    = "W"
	LevelNameError   = "E"
)

// String returns the one-letter level name
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return LevelNameVerbose
	case LevelDebug:
		return LevelNameDebug
	case LevelInfo:
		return LevelNameInfo
	case LevelWarn:
		return LevelNameWarn
	default:
		return LevelNameError
	}
}

// Log line formats
const (
	logLineFormat        = "%s/%s: %s\n"
	logLineWithErrFormat = "%s/%s: %s: %v\n"
)

// Sink receives formatted log lines
type Sink interface {
	Log(level Level, tag, message string, err error)
}

// ZapSink writes log lines through a zap logger. Verbose maps to debug.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink over logger; nil discards everything
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// Log implements Sink
func (s *ZapSink) Log(level Level, tag, message string, err error) {
	fields := []zap.Field{zap.String(LogFieldTag, tag)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch level {
	case LevelVerbose, LevelDebug:
		s.logger.Debug(message, fields...)
	case LevelInfo:
		s.logger.Info(message, fields...)
	case LevelWarn:
		s.logger.Warn(message, fields...)
	default:
		s.logger.Error(message, fields...)
	}
}

// WriterSink writes "L/tag: message" lines to an io.Writer
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Log implements Sink. Write errors are dropped; logging never fails.
func (s *WriterSink) Log(level Level, tag, message string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		_, _ = fmt.Fprintf(s.w, logLineWithErrFormat, level, tag, message, err)
		return
	}
	_, _ = fmt.Fprintf(s.w, logLineFormat, level, tag, message)
}

// Logger formats clog templates and hands the result to a Sink
type Logger struct {
	formatter *Formatter
	sink      Sink
	tag       string
}

// NewLogger creates a logger. A nil formatter means Default().
func NewLogger(f *Formatter, sink Sink, tag string) *Logger {
	if f == nil {
		f = Default()
	}
	if sink == nil {
		sink = NewZapSink(nil)
	}
	return &Logger{formatter: f, sink: sink, tag: tag}
}

// WithTag returns a copy of the logger using tag
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{formatter: l.formatter, sink: l.sink, tag: tag}
}

// Log formats template with params, writes it and returns the message
func (l *Logger) Log(level Level, template string, params ...any) string {
	msg := l.formatter.Format(template, params...)
	l.sink.Log(level, l.tag, msg, nil)
	return msg
}

// LogError is Log with an error attached to the line
func (l *Logger) LogError(level Level, err error, template string, params ...any) string {
	msg := l.formatter.Format(template, params...)
	l.sink.Log(level, l.tag, msg, err)
	return msg
}

// V logs at verbose level
func (l *Logger) V(template string, params ...any) string {
	return l.Log(LevelVerbose, template, params...)
}

// D logs at debug level
func (l *Logger) D(template string, params ...any) string {
	return l.Log(LevelDebug, template, params...)
}

// I logs at info level
func (l *Logger) I(template string, params ...any) string {
	return l.Log(LevelInfo, template, params...)
}

// W logs at warn level
func (l *Logger) W(template string, params ...any) string {
	return l.Log(LevelWarn, template, params...)
}

// E logs at error level
func (l *Logger) E(template string, params ...any) string {
	return l.Log(LevelError, template, params...)
}
