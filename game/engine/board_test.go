package engine

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solvedTiles = [TileCount]Tile{
	1, 2, 3, 4,
	5, 6, 7, 8,
	9, 10, 11, 12,
	13, 14, 15, 0,
}

// recordingSource remembers every value it hands out
type recordingSource struct {
	inner  RandSource
	values []int
}

func (r *recordingSource) IntN(n int) int {
	v := r.inner.IntN(n)
	r.values = append(r.values, v)
	return v
}

func TestNewBoard_IsSolved(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, solvedTiles, b.Tiles())
	assert.True(t, b.IsSolved())
}

func TestNewBoard_Independent(t *testing.T) {
	a := NewBoard()
	b := NewBoard()

	require.True(t, a.Move(Down))
	assert.True(t, b.IsSolved(), "boards must not share storage")
	assert.False(t, a.IsSolved())
}

func TestNewBoardFromTiles(t *testing.T) {
	b, err := NewBoardFromTiles(solvedTiles)
	require.NoError(t, err)
	assert.True(t, b.IsSolved())

	layout := [TileCount]Tile{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}
	b, err = NewBoardFromTiles(layout)
	require.NoError(t, err)
	assert.Equal(t, layout, b.Tiles())
	assert.Equal(t, Position{X: 0, Y: 0}, b.BlankPosition())
	assert.Equal(t, Tile(6), b.TileAt(Position{X: 2, Y: 1}))
}

func TestNewBoardFromTiles_Invalid(t *testing.T) {
	dup := solvedTiles
	dup[0] = 2

	_, err := NewBoardFromTiles(dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestIsSolved_SingleSwapBreaksIt(t *testing.T) {
	for i := 0; i < TileCount; i++ {
		for j := i + 1; j < TileCount; j++ {
			layout := solvedTiles
			layout[i], layout[j] = layout[j], layout[i]

			b := mustBoard(t, layout)
			assert.False(t, b.IsSolved(), "swap of index %d and %d", i, j)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewBoard()
	b := NewBoard()

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	b.Move(Right)
	assert.False(t, a.Equal(b))

	b.Move(Left)
	assert.True(t, a.Equal(b))
}

func TestClone(t *testing.T) {
	original := NewBoard()
	clone := original.Clone()

	require.True(t, clone.Move(Down))
	assert.True(t, original.IsSolved())
	assert.False(t, original.Equal(clone))
}

func TestShuffle_AcceptsExactlyShuffleMoves(t *testing.T) {
	src := &recordingSource{inner: NewSeededSource(1)}
	b := NewBoard()

	attempts := b.Shuffle(src)
	require.Equal(t, len(src.values), attempts)
	require.GreaterOrEqual(t, attempts, ShuffleMoves)

	// Replay the sampled directions on a fresh board and count the accepted ones
	replay := NewBoard()
	accepted := 0
	for _, v := range src.values {
		if replay.Move(Direction(v)) {
			accepted++
		}
	}

	assert.Equal(t, ShuffleMoves, accepted)
	assert.True(t, replay.Equal(b))
}

func TestShuffle_RetriesRejectedMoves(t *testing.T) {
	// Up and Left are illegal on the solved board, so every sample of them is retried
	src := &fixedSource{values: []int{int(Up), int(Left), int(Down), int(Up)}}
	b := NewBoard()

	attempts := b.Shuffle(src)

	assert.Greater(t, attempts, ShuffleMoves)
	assert.NoError(t, b.Validate())
}

func TestShuffle_PermutationClosure(t *testing.T) {
	for seed := uint64(0); seed < 25; seed++ {
		b := NewBoard()
		b.Shuffle(NewSeededSource(seed))

		tiles := b.Tiles()
		values := make([]int, 0, TileCount)
		for _, tile := range tiles {
			values = append(values, int(tile))
		}
		sort.Ints(values)
		for i, v := range values {
			require.Equal(t, i, v, "seed %d", seed)
		}
	}
}

func TestShuffle_Solvable(t *testing.T) {
	for seed := uint64(0); seed < 25; seed++ {
		src := &recordingSource{inner: NewSeededSource(seed)}
		b := NewBoard()
		b.Shuffle(src)

		require.True(t, b.IsSolvable(), "seed %d", seed)

		// Walk the accepted moves back in reverse to reach the solved board
		replay := NewBoard()
		var applied []Direction
		for _, v := range src.values {
			if replay.Move(Direction(v)) {
				applied = append(applied, Direction(v))
			}
		}
		for i := len(applied) - 1; i >= 0; i-- {
			require.True(t, b.Move(applied[i].Invert()))
		}
		require.True(t, b.IsSolved(), "seed %d", seed)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a := NewBoard()
	b := NewBoard()

	a.Shuffle(NewSeededSource(99))
	b.Shuffle(NewSeededSource(99))

	assert.True(t, a.Equal(b))
}

func TestBoardString(t *testing.T) {
	expected := "" +
		"  1   2   3   4 \n" +
		"  5   6   7   8 \n" +
		"  9  10  11  12 \n" +
		" 13  14  15     \n"

	assert.Equal(t, expected, NewBoard().String())
}

func TestBoardRender_LineEnding(t *testing.T) {
	out := NewBoard().Render("\r\n")
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")

	require.Len(t, lines, GridSize)
	for _, line := range lines {
		assert.Len(t, line, GridSize*4)
	}
}
