package engine

import "fmt"

// ValidateTiles checks that a row-major layout holds every value 0..15 exactly once
func ValidateTiles(tiles [TileCount]Tile) error {
	var seen [TileCount]bool
	for i, t := range tiles {
		if t < 0 || int(t) >= TileCount {
			return fmt.Errorf("%w: tile %d at index %d is out of range 0..%d", ErrInvalidLayout, int(t), i, TileCount-1)
		}
		if seen[t] {
			return fmt.Errorf("%w: tile %d appears more than once", ErrInvalidLayout, int(t))
		}
		seen[t] = true
	}
	return nil
}

// Validate checks the permutation invariant of the board
func (b *Board) Validate() error {
	return ValidateTiles(b.Tiles())
}

// IsSolvable reports whether a valid layout can reach the solved layout by legal
// moves. On an even-width grid that holds iff the inversion count plus the
// blank's row, counted from the bottom starting at 1, is odd.
func IsSolvable(tiles [TileCount]Tile) bool {
	inversions := 0
	blankRow := 0
	for i := 0; i < TileCount; i++ {
		if tiles[i].IsEmpty() {
			blankRow = i / GridSize
			continue
		}
		for j := i + 1; j < TileCount; j++ {
			if !tiles[j].IsEmpty() && tiles[j] < tiles[i] {
				inversions++
			}
		}
	}
	return (inversions+GridSize-blankRow)%2 == 1
}

// IsSolvable reports whether the board can still be solved
func (b *Board) IsSolvable() bool {
	return IsSolvable(b.Tiles())
}
