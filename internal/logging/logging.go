package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields carries structured log attributes.
type Fields map[string]interface{}

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the process-wide logger exactly once. Output goes to
// stdout and a size-rotated file.
func Init(service, filePath string) *slog.Logger {
	once.Do(func() {
		rot := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		mw := io.MultiWriter(os.Stdout, rot)

		h := slog.NewJSONHandler(mw, &slog.HandlerOptions{Level: slog.LevelDebug})
		base = slog.New(h).With("service", service)
	})
	return base
}

func root() *slog.Logger {
	if base == nil {
		return Init("storefront", "./logs/storefront.log")
	}
	return base
}

// Logger is a component-scoped structured logger.
type Logger struct {
	sl *slog.Logger
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) *Logger {
	return &Logger{sl: root().With("component", component)}
}

func attrs(fields Fields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func (l *Logger) Debug(msg string, fields Fields) { l.sl.Debug(msg, attrs(fields)...) }
func (l *Logger) Info(msg string, fields Fields)  { l.sl.Info(msg, attrs(fields)...) }
func (l *Logger) Warn(msg string, fields Fields)  { l.sl.Warn(msg, attrs(fields)...) }
func (l *Logger) Error(msg string, fields Fields) { l.sl.Error(msg, attrs(fields)...) }

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, fields Fields) {
	l.sl.Error(msg, attrs(fields)...)
	os.Exit(1)
}

// Infof logs a formatted message without structured fields.
func Infof(format string, args ...interface{}) {
	root().Info(fmt.Sprintf(format, args...))
}
