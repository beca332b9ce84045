package astar

import "fmt"

// Direction is one of the eight unit steps on the grid, or None.
// The numeric value of a step is its index in Directions: opposite steps are
// four apart and diagonal steps have odd values. y grows downward, so N is (0,-1).
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
	None
)

var (
	// Directions is the canonical neighbor enumeration order.
	Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}
	Cardinals  = [4]Direction{N, E, S, W}
	Diagonals  = [4]Direction{NE, SE, SW, NW}
)

var directionDeltas = [9][2]int{
	N:    {0, -1},
	NE:   {1, -1},
	E:    {1, 0},
	SE:   {1, 1},
	S:    {0, 1},
	SW:   {-1, 1},
	W:    {-1, 0},
	NW:   {-1, -1},
	None: {0, 0},
}

var directionNames = [9]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW", "None"}

// Point converts d into its unit vector.
func (d Direction) Point() Point {
	delta := directionDeltas[d.check()]
	return MakePoint(delta[0], delta[1])
}

// Reverse returns the opposite step. None is its own reverse.
func (d Direction) Reverse() Direction {
	if d.check() == None {
		return None
	}
	return (d + 4) & 7
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool { return d.check() != None && d&1 == 1 }

// Bit is the mask for d in an 8-bit direction set. None has no bit.
func (d Direction) Bit() uint8 {
	if d.check() == None {
		return 0
	}
	return 1 << d
}

func (d Direction) String() string {
	if d > None {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

func (d Direction) check() Direction {
	if d > None {
		panic(fmt.Sprintf("astar: invalid direction %d", uint8(d)))
	}
	return d
}

// DirectionOf maps a unit vector back to its Direction; the zero vector maps
// to None. It panics for any other point.
func DirectionOf(p Point) Direction {
	x, y := p.X(), p.Y()
	for d, delta := range directionDeltas {
		if delta[0] == x && delta[1] == y {
			return Direction(d)
		}
	}
	panic(fmt.Sprintf("astar: %v is not a unit step", p))
}
