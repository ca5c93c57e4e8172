// Package config provides runtime settings for the fifteen game.
//
// The config package handles:
//   - Default values for every setting
//   - Loading environment overrides from a .env file
//   - Settings validation
//   - Building the structured logger described by the settings
//
// Settings Sources:
//
// Settings are assembled by the command line layer from flags, each of which
// falls back to a FIFTEEN_* environment variable. LoadDotEnv populates those
// variables from a .env file before flags are parsed, without overriding
// variables that are already set.
//
// Usage:
//
//	if err := config.LoadDotEnv(); err != nil {
//		log.Fatal(err)
//	}
//
//	settings := config.Default()
//	settings.ClearLines = 10
//	if err := settings.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
//	logger, closeLog, err := config.NewLogger(settings, os.Stderr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer closeLog()
package config
