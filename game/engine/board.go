package engine

import "strings"

// Board is the 4x4 puzzle grid, indexed [row][col]
type Board struct {
	tiles [GridSize][GridSize]Tile
}

// solvedBoard is the canonical winning layout
var solvedBoard = Board{
	tiles: [GridSize][GridSize]Tile{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	},
}

// NewBoard creates a board in the solved configuration
func NewBoard() *Board {
	b := solvedBoard
	return &b
}

// NewBoardFromTiles creates a board from a row-major layout.
// The layout must be a permutation of 0..15.
func NewBoardFromTiles(tiles [TileCount]Tile) (*Board, error) {
	if err := ValidateTiles(tiles); err != nil {
		return nil, err
	}

	b := &Board{}
	for i, t := range tiles {
		b.tiles[i/GridSize][i%GridSize] = t
	}
	return b, nil
}

// TileAt returns the tile at p. p must be a valid position.
func (b *Board) TileAt(p Position) Tile {
	return b.tiles[p.Y][p.X]
}

// Tiles returns a row-major snapshot of the board
func (b *Board) Tiles() [TileCount]Tile {
	var out [TileCount]Tile
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			out[row*GridSize+col] = b.tiles[row][col]
		}
	}
	return out
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether both boards hold the same tile in every cell
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.tiles == other.tiles
}

// IsSolved reports whether the board matches the canonical solved layout
func (b *Board) IsSolved() bool {
	return b.Equal(&solvedBoard)
}

// Shuffle applies random moves until exactly ShuffleMoves of them were
// accepted. Rejected samples are retried with a fresh direction and do not
// count. It returns the total number of samples drawn.
func (b *Board) Shuffle(r RandSource) int {
	attempts := 0
	for accepted := 0; accepted < ShuffleMoves; {
		attempts++
		if b.Move(RandomDirection(r)) {
			accepted++
		}
	}
	return attempts
}

// String renders the grid, one row per line
func (b *Board) String() string {
	return b.Render("\n")
}

// Render renders the grid using the given line ending. Each cell is four
// characters wide.
func (b *Board) Render(lineEnding string) string {
	var sb strings.Builder
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			sb.WriteString(b.tiles[row][col].String())
		}
		sb.WriteString(lineEnding)
	}
	return sb.String()
}
