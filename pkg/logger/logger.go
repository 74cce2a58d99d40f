// Package logger wraps logrus behind a small structured logger that is
// injected into every component at construction time.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Logger emits leveled, key-value structured records.
type Logger struct {
	l *logrus.Logger
}

func New(cfg Config) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{l: l}
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return &Logger{l: l}
}

func (lg *Logger) Debug(msg string, keyvals ...any) {
	lg.l.WithFields(fields(keyvals)).Debug(msg)
}

func (lg *Logger) Info(msg string, keyvals ...any) {
	lg.l.WithFields(fields(keyvals)).Info(msg)
}

func (lg *Logger) Warn(msg string, keyvals ...any) {
	lg.l.WithFields(fields(keyvals)).Warn(msg)
}

func (lg *Logger) Error(msg string, keyvals ...any) {
	lg.l.WithFields(fields(keyvals)).Error(msg)
}

func fields(keyvals []any) logrus.Fields {
	f := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		f[key] = keyvals[i+1]
	}

	return f
}
