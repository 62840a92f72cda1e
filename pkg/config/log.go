package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger for the log section.
func (l LogConfig) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	if err := l.Apply(logger); err != nil {
		return nil, err
	}
	return logger, nil
}

// Apply sets the level and formatter of logger.
func (l LogConfig) Apply(logger *logrus.Logger) error {
	level, err := parseLevel(l.Level)
	if err != nil {
		return err
	}
	if l.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	if l.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func parseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
