package engine

import "errors"

// ErrNilRandSource is returned when an engine is built without randomness
var ErrNilRandSource = errors.New("rand source cannot be nil")

// Engine provides the main interface for game operations
type Engine interface {
	// Board state
	Board() *Board
	IsSolved() bool
	Reset()

	// Shuffling
	Shuffle() int

	// Movement operations
	Move(dir Direction) bool
	CanMove(dir Direction) bool
	PossibleMoves() []Direction
}

// GameEngine implements the Engine interface
type GameEngine struct {
	board *Board
	rng   RandSource
}

// NewEngine creates a new game engine holding a solved board
func NewEngine(rng RandSource) (*GameEngine, error) {
	if rng == nil {
		return nil, ErrNilRandSource
	}

	return &GameEngine{
		board: NewBoard(),
		rng:   rng,
	}, nil
}

// Board returns a copy of the current board
func (e *GameEngine) Board() *Board {
	return e.board.Clone()
}

// IsSolved returns whether the puzzle is in the solved layout
func (e *GameEngine) IsSolved() bool {
	return e.board.IsSolved()
}

// Reset puts the board back into the solved layout
func (e *GameEngine) Reset() {
	e.board = NewBoard()
}

// Shuffle scrambles the board with ShuffleMoves legal moves and returns the
// number of directions sampled
func (e *GameEngine) Shuffle() int {
	return e.board.Shuffle(e.rng)
}

// Move attempts to slide a tile in the specified direction
func (e *GameEngine) Move(dir Direction) bool {
	return e.board.Move(dir)
}

// CanMove checks if a tile can slide in the specified direction
func (e *GameEngine) CanMove(dir Direction) bool {
	return e.board.CanMove(dir)
}

// PossibleMoves returns all directions a tile can currently slide
func (e *GameEngine) PossibleMoves() []Direction {
	return e.board.PossibleMoves()
}
