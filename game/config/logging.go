package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the logger described by the settings. Output goes to
// LogFile when set, otherwise to fallback. The returned close function must
// be called once logging is done.
func NewLogger(s Settings, fallback io.Writer) (*logrus.Logger, func() error, error) {
	level, err := s.Level()
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	closeFn := func() error { return nil }
	if s.LogFile == "" {
		logger.SetOutput(fallback)
		return logger, closeFn, nil
	}

	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}
