package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wricardo/fifteen/game/engine"
)

var (
	ErrNilEngine   = errors.New("engine cannot be nil")
	ErrNilInput    = errors.New("input cannot be nil")
	ErrNilRenderer = errors.New("renderer cannot be nil")
)

// Outcome describes how a session ended
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeSolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeSolved:
		return "solved"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures a Session
type Options struct {
	Engine   engine.Engine
	Input    CommandReader
	Renderer *Renderer
	// Logger defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// Session runs a single game from shuffle to win or quit
type Session struct {
	id       string
	engine   engine.Engine
	input    CommandReader
	renderer *Renderer
	log      logrus.FieldLogger
}

// New creates a session from the given options
func New(opts Options) (*Session, error) {
	if opts.Engine == nil {
		return nil, ErrNilEngine
	}
	if opts.Input == nil {
		return nil, ErrNilInput
	}
	if opts.Renderer == nil {
		return nil, ErrNilRenderer
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.NewString()
	return &Session{
		id:       id,
		engine:   opts.Engine,
		input:    opts.Input,
		renderer: opts.Renderer,
		log:      logger.WithField("session", id),
	}, nil
}

// ID returns the session identifier used in log entries
func (s *Session) ID() string {
	return s.id
}

// Run shuffles the board and then plays until the puzzle is solved, the
// player quits or the input ends
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	attempts := s.engine.Shuffle()
	s.log.WithFields(logrus.Fields{
		"attempts":  attempts,
		"accepted":  engine.ShuffleMoves,
		"manhattan": s.engine.Board().ManhattanDistance(),
	}).Info("board shuffled")

	return s.Play(ctx)
}

// Play runs the read/move/render cycle on the board as it currently is
func (s *Session) Play(ctx context.Context) (Outcome, error) {
	if err := s.show(); err != nil {
		return OutcomeQuit, err
	}

	for !s.engine.IsSolved() {
		if err := ctx.Err(); err != nil {
			s.log.WithError(err).Info("session cancelled")
			return OutcomeQuit, err
		}

		ch, err := s.input.ReadCommand()
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed")
			return OutcomeQuit, nil
		}
		if err != nil {
			return OutcomeQuit, fmt.Errorf("failed to read command: %w", err)
		}

		if ch == QuitCommand {
			s.log.Info("player quit")
			return OutcomeQuit, s.renderer.Farewell()
		}

		dir := engine.FromUserChar(ch)
		if !s.engine.Move(dir) {
			s.log.WithField("direction", dir.String()).Debug("move rejected")
			continue
		}
		s.log.WithField("direction", dir.String()).Debug("tile moved")

		if err := s.show(); err != nil {
			return OutcomeQuit, err
		}
	}

	s.log.Info("puzzle solved")
	return OutcomeSolved, s.renderer.Victory()
}

// show redraws the board and prompts unless the game is already won
func (s *Session) show() error {
	if err := s.renderer.Board(s.engine.Board()); err != nil {
		return err
	}
	if s.engine.IsSolved() {
		return nil
	}
	return s.renderer.Prompt()
}
