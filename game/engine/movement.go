package engine

// IsValidPosition checks if p lies inside the grid
func IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// BlankPosition scans the board in row-major order and returns the blank cell.
// A board without a blank is corrupt and panics.
func (b *Board) BlankPosition() Position {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.tiles[row][col].IsEmpty() {
				return Position{X: col, Y: row}
			}
		}
	}
	panic(invariantf("board has no blank tile"))
}

// Swap exchanges the tiles at p1 and p2. Positions are not bounds checked.
func (b *Board) Swap(p1, p2 Position) {
	b.tiles[p1.Y][p1.X], b.tiles[p2.Y][p2.X] = b.tiles[p2.Y][p2.X], b.tiles[p1.Y][p1.X]
}

// Move slides the tile that sits opposite dir from the blank into the blank.
// It returns false and leaves the board unchanged when no such tile exists.
func (b *Board) Move(dir Direction) bool {
	blank := b.BlankPosition()
	source := blank.Adjacent(dir.Invert())

	if !IsValidPosition(source) {
		return false
	}

	b.Swap(source, blank)
	return true
}

// CanMove reports whether Move(dir) would succeed, without mutating the board
func (b *Board) CanMove(dir Direction) bool {
	return IsValidPosition(b.BlankPosition().Adjacent(dir.Invert()))
}

// PossibleMoves returns all directions that are currently legal
func (b *Board) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range AllDirections() {
		if b.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}
