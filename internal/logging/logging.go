// Package logging builds the structured logger. The terminal belongs to the
// UI, so entries go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const ServiceName = "dayplan"

type Options struct {
	Level string
	File  string
}

// New returns the logger and a closer for its output. The closer is never nil.
func New(opts Options) (*logrus.Entry, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	level := logrus.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	} else {
		logger.SetOutput(io.Discard)
	}

	return logger.WithField("service", ServiceName), closer, nil
}

// Discard is a logger for tests and callers that do not care.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
