package engine

import (
	"errors"
	"fmt"
)

const (
	// GridSize is the width and height of the board
	GridSize = 4
	// TileCount is the number of cells on the board, blank included
	TileCount = GridSize * GridSize
	// ShuffleMoves is the number of accepted random moves applied by Shuffle
	ShuffleMoves = 1000
)

var (
	// ErrInvariantViolation marks programming errors such as out-of-domain
	// directions or a board without a blank. It is only ever raised via panic.
	ErrInvariantViolation = errors.New("engine invariant violated")
	// ErrInvalidLayout is returned when a tile layout is not a permutation of 0..15
	ErrInvalidLayout = errors.New("invalid tile layout")
)

// Tile is the value held by a single cell. Zero is the blank.
type Tile int

// Blank is the tile value of the empty cell
const Blank Tile = 0

// IsEmpty reports whether the tile is the blank
func (t Tile) IsEmpty() bool {
	return t == Blank
}

// String renders the tile as a fixed four character cell
func (t Tile) String() string {
	switch {
	case t > 9:
		return fmt.Sprintf(" %d ", int(t))
	case t > 0:
		return fmt.Sprintf("  %d ", int(t))
	default:
		return "    "
	}
}

// Position represents x,y coordinates (x is the column, y the row)
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Adjacent returns the neighbouring position in the given direction.
// The result is not bounds checked; see IsValidPosition.
func (p Position) Adjacent(dir Direction) Position {
	switch dir {
	case Up:
		return Position{X: p.X, Y: p.Y - 1}
	case Down:
		return Position{X: p.X, Y: p.Y + 1}
	case Left:
		return Position{X: p.X - 1, Y: p.Y}
	case Right:
		return Position{X: p.X + 1, Y: p.Y}
	}
	panic(invariantf("unsupported direction %d", int(dir)))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// invariantf builds the panic value used for precondition violations
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
