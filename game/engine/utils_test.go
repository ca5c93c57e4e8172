package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		from, to Position
		expected int
	}{
		{Position{X: 0, Y: 0}, Position{X: 0, Y: 0}, 0},
		{Position{X: 0, Y: 0}, Position{X: 3, Y: 3}, 6},
		{Position{X: 3, Y: 1}, Position{X: 1, Y: 2}, 3},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ManhattanDistance(test.from, test.to))
		assert.Equal(t, test.expected, ManhattanDistance(test.to, test.from))
	}
}

func TestBoardHeuristics_Solved(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 0, b.ManhattanDistance())
	assert.Equal(t, 0, b.MisplacedTiles())
}

func TestBoardHeuristics_AfterMoves(t *testing.T) {
	b := NewBoard()
	b.Move(Down)  // 12 slides down one row
	b.Move(Right) // 11 slides right one column

	assert.Equal(t, 2, b.ManhattanDistance())
	assert.Equal(t, 2, b.MisplacedTiles())
}

func TestBoardHeuristics_Reversed(t *testing.T) {
	b := mustBoard(t, [TileCount]Tile{
		15, 14, 13, 12,
		11, 10, 9, 8,
		7, 6, 5, 4,
		3, 2, 1, 0,
	})

	assert.Equal(t, 14, b.MisplacedTiles(), "8 stays on its solved cell")
	assert.Greater(t, b.ManhattanDistance(), 15)
}
