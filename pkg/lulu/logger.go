package lulu

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus logger to Logger.
type LogrusLogger struct {
	*logrus.Logger
}

// NewLogrusLogger wraps log. A nil log gets a fresh text logger at info level.
func NewLogrusLogger(log *logrus.Logger) *LogrusLogger {
	if log == nil {
		log = logrus.New()
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &LogrusLogger{log}
}

// NewDiscardLogger returns a Logger that writes nowhere.
func NewDiscardLogger() *LogrusLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &LogrusLogger{log}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.WithFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.WithFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.WithFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.WithFields(fields).Error(msg)
}
