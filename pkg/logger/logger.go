package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	inner zerolog.Logger
}

// NewLogger returns a zerolog backed Logger writing to stdout. The level is one
// of debug, info, warn, error or silence; unknown levels fall back to info.
// Pretty enables the human readable console format.
func NewLogger(level string, pretty bool) *defaultLogger {
	return NewLoggerWithWriter(os.Stdout, level, pretty)
}

func NewLoggerWithWriter(w io.Writer, level string, pretty bool) *defaultLogger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	inner := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &defaultLogger{inner: inner}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "silence":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.inner.Debug().Msg(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.inner.Info().Msg(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.inner.Warn().Msg(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.inner.Error().Msg(fmt.Sprintf(msg, a...))
}
