package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// EnvPrefix prefixes every environment variable read by the game
	EnvPrefix = "FIFTEEN_"

	// DefaultClearLines is the number of blank lines printed before each board
	DefaultClearLines = 25
	// MaxClearLines bounds the clear-screen padding
	MaxClearLines = 200
	// DefaultLogLevel keeps the log quiet during play
	DefaultLogLevel = "warn"
)

// ErrInvalidSettings wraps every settings validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds everything the game can be tuned with at start-up
type Settings struct {
	// Seed makes the shuffle reproducible when HasSeed is set
	Seed    uint64
	HasSeed bool

	ClearLines int
	RawInput   bool

	LogLevel string
	// LogFile receives log output instead of stderr when non-empty
	LogFile string
}

// Default returns the settings used when nothing is overridden
func Default() Settings {
	return Settings{
		ClearLines: DefaultClearLines,
		LogLevel:   DefaultLogLevel,
	}
}

// Validate checks the settings for out-of-range values
func (s Settings) Validate() error {
	if s.ClearLines < 0 || s.ClearLines > MaxClearLines {
		return fmt.Errorf("%w: clear lines must be between 0 and %d, got %d", ErrInvalidSettings, MaxClearLines, s.ClearLines)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Level returns the parsed log level
func (s Settings) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return level, nil
}

// EnvVar returns the environment variable name for a setting
func EnvVar(name string) string {
	return EnvPrefix + name
}

// LoadDotEnv loads environment variables from the given files, ".env" when
// none are given. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}
