package astar

import "fmt"

// Coordinate bounds of a Point. Each axis is stored as 15 unsigned bits after
// adding coordOffset.
const (
	MinCoord = -16384
	MaxCoord = 16383

	coordOffset = 16384
	coordBits   = 15
	coordMask   = 1<<coordBits - 1
)

// Point is an immutable 2D grid coordinate packed into a single word:
// y in the high bits, x in the low bits. Two points are equal exactly when
// their packed values are equal, so a Point can be compared with == and used
// directly as a map or hash table key.
type Point uint32

// MakePoint packs (x, y). It panics if either coordinate is outside
// [MinCoord, MaxCoord].
func MakePoint(x, y int) Point {
	if x < MinCoord || x > MaxCoord || y < MinCoord || y > MaxCoord {
		panic(fmt.Sprintf("astar: point (%d,%d) out of range [%d,%d]", x, y, MinCoord, MaxCoord))
	}
	return Point(uint32(y+coordOffset)<<coordBits | uint32(x+coordOffset))
}

// X returns the horizontal coordinate.
func (p Point) X() int { return int(uint32(p)&coordMask) - coordOffset }

// Y returns the vertical coordinate.
func (p Point) Y() int { return int(uint32(p)>>coordBits&coordMask) - coordOffset }

// Add returns p + q.
func (p Point) Add(q Point) Point { return MakePoint(p.X()+q.X(), p.Y()+q.Y()) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return MakePoint(p.X()-q.X(), p.Y()-q.Y()) }

// Step returns the neighbor of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Point()) }

// Equal reports whether p and q are the same cell.
func (p Point) Equal(q Point) bool { return p == q }

// Key returns the packed representation. It is unique per point and never
// negative, so it serves as the hash key as-is.
func (p Point) Key() int32 { return int32(p) }

// String formats p as "(x,y)" for debugging.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X(), p.Y()) }
