package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Fallback(t *testing.T) {
	var buf bytes.Buffer
	s := Default()
	s.LogLevel = "info"

	logger, closeLog, err := NewLogger(s, &buf)
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	logger.WithField("session", "abc").Info("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifteen.log")
	s := Default()
	s.LogFile = path

	logger, closeLog, err := NewLogger(s, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Warn("written to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	s := Default()
	s.LogLevel = "loud"

	_, _, err := NewLogger(s, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestNewLogger_BadFile(t *testing.T) {
	s := Default()
	s.LogFile = filepath.Join(t.TempDir(), "missing", "dir", "fifteen.log")

	_, _, err := NewLogger(s, &bytes.Buffer{})
	assert.Error(t, err)
}
