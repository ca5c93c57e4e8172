package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// homePosition returns the cell a numbered tile occupies on the solved board
func homePosition(t Tile) Position {
	idx := int(t) - 1
	return Position{X: idx % GridSize, Y: idx / GridSize}
}

// ManhattanDistance sums, over every numbered tile, the distance to its solved cell
func (b *Board) ManhattanDistance() int {
	total := 0
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			t := b.tiles[y][x]
			if t.IsEmpty() {
				continue
			}
			total += ManhattanDistance(Position{X: x, Y: y}, homePosition(t))
		}
	}
	return total
}

// MisplacedTiles counts numbered tiles that are not on their solved cell
func (b *Board) MisplacedTiles() int {
	count := 0
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			t := b.tiles[y][x]
			if !t.IsEmpty() && homePosition(t) != (Position{X: x, Y: y}) {
				count++
			}
		}
	}
	return count
}
