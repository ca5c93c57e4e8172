// Command fifteen plays the 15-puzzle in a text console.
//
// The board is shuffled with random legal moves, then the player slides tiles
// with w (up), a (left), s (down) and d (right) until the puzzle is solved,
// or quits with q. By default a command is read per line; --raw switches the
// terminal into raw mode so single keystrokes are enough.
//
// Every flag can also be set through a FIFTEEN_* environment variable, and a
// .env file in the working directory is loaded first when present.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/fifteen/game/config"
	"github.com/wricardo/fifteen/game/engine"
	"github.com/wricardo/fifteen/game/session"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "fifteen"
)

// newCommand builds the CLI. in is read for commands, out receives the game
// screen and errOut the log unless a log file is configured.
func newCommand(in *os.File, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "play the 15-puzzle in your terminal",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "shuffle seed for a reproducible board",
				Sources: cli.EnvVars(config.EnvVar("SEED")),
			},
			&cli.IntFlag{
				Name:    "clear-lines",
				Usage:   "blank lines printed before each board",
				Value:   config.DefaultClearLines,
				Sources: cli.EnvVars(config.EnvVar("CLEAR_LINES")),
			},
			&cli.BoolFlag{
				Name:    "raw",
				Usage:   "read single keystrokes from a raw-mode terminal",
				Sources: cli.EnvVars(config.EnvVar("RAW")),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error)",
				Value:   config.DefaultLogLevel,
				Sources: cli.EnvVars(config.EnvVar("LOG_LEVEL")),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "append logs to this file instead of stderr",
				Sources: cli.EnvVars(config.EnvVar("LOG_FILE")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := settingsFromCommand(cmd)
			if err != nil {
				return err
			}
			_, err = runGame(ctx, settings, in, out, errOut)
			return err
		},
	}
}

// settingsFromCommand collects and validates the parsed flags
func settingsFromCommand(cmd *cli.Command) (config.Settings, error) {
	settings := config.Default()
	settings.Seed = cmd.Uint64("seed")
	settings.HasSeed = cmd.IsSet("seed")
	settings.ClearLines = cmd.Int("clear-lines")
	settings.RawInput = cmd.Bool("raw")
	settings.LogLevel = cmd.String("log-level")
	settings.LogFile = cmd.String("log-file")

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// runGame wires the engine, input and renderer described by settings and
// plays one session
func runGame(ctx context.Context, settings config.Settings, in *os.File, out, errOut io.Writer) (session.Outcome, error) {
	logger, closeLog, err := config.NewLogger(settings, errOut)
	if err != nil {
		return session.OutcomeQuit, err
	}
	defer closeLog()

	var rng engine.RandSource = engine.NewRandSource()
	if settings.HasSeed {
		rng = engine.NewSeededSource(settings.Seed)
	}

	eng, err := engine.NewEngine(rng)
	if err != nil {
		return session.OutcomeQuit, fmt.Errorf("failed to create engine: %w", err)
	}

	var input session.CommandReader = session.NewLineReader(in)
	lineEnding := "\n"
	if settings.RawInput {
		if session.IsTerminal(in) {
			terminal, err := session.MakeRaw(in)
			if err != nil {
				return session.OutcomeQuit, err
			}
			defer func() {
				if err := terminal.Restore(); err != nil {
					logger.WithError(err).Error("terminal left in raw mode")
				}
			}()
			input = session.NewRawReader(in)
			lineEnding = "\r\n"
		} else {
			logger.Warn("stdin is not a terminal, falling back to line input")
		}
	}

	sess, err := session.New(session.Options{
		Engine:   eng,
		Input:    input,
		Renderer: session.NewRenderer(out, settings.ClearLines, lineEnding),
		Logger:   logger,
	})
	if err != nil {
		return session.OutcomeQuit, fmt.Errorf("failed to create session: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"session": sess.ID(),
		"seeded":  settings.HasSeed,
		"raw":     settings.RawInput,
	}).Info("starting game")

	outcome, err := sess.Run(ctx)
	if err != nil {
		return outcome, err
	}

	logger.WithField("outcome", outcome.String()).Info("game finished")
	return outcome, nil
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logrus.Warnf("Error loading .env file: %v", err)
	}

	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
