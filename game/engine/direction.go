package engine

// Direction is one of the four cardinal move directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns every valid direction in declaration order
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// IsValid reports whether d is one of the four cardinal directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Invert returns the opposite direction (up<->down, left<->right)
func (d Direction) Invert() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(invariantf("unsupported direction %d", int(d)))
}

// String returns the display name of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	panic(invariantf("unsupported direction %d", int(d)))
}

// RandomDirection samples one of the four directions uniformly
func RandomDirection(r RandSource) Direction {
	return Direction(r.IntN(len(AllDirections())))
}

// FromUserChar maps a WASD key to its direction. Callers must filter input
// first: any other character panics.
func FromUserChar(ch rune) Direction {
	switch ch {
	case 'w':
		return Up
	case 'a':
		return Left
	case 's':
		return Down
	case 'd':
		return Right
	}
	panic(invariantf("unsupported direction character %q", ch))
}
