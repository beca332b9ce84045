package astar

// Step costs. A diagonal step costs unitCost+diagonalPenalty.
const (
	unitCost        = 16
	diagonalPenalty = 2
	occupiedPenalty = 64
)

// heuristic estimates the remaining cost from a point to the target.
//
// The estimate is the octile distance plus the point's deviation from the
// straight source->target line. The deviation term makes the estimate
// inadmissible: the search prefers cells hugging the line and finishes sooner,
// at the price of an occasional longer route.
type heuristic struct {
	source, target Point
	line           []Point
	xMajor         bool
	step           int
}

func newHeuristic(source, target Point, line []Point) heuristic {
	dx, dy := target.X()-source.X(), target.Y()-source.Y()
	h := heuristic{source: source, target: target, line: line, xMajor: abs(dx) >= abs(dy)}
	if h.xMajor {
		h.step = sign(dx)
	} else {
		h.step = sign(dy)
	}
	if h.step == 0 {
		h.step = 1
	}
	return h
}

func (h heuristic) estimate(p Point) int {
	return octile(p, h.target) + h.deviation(p)
}

// deviation projects p onto the line's dominant axis and returns its distance
// from the line cell at that position. Past either end of the segment it is
// the Chebyshev distance to the nearer endpoint.
func (h heuristic) deviation(p Point) int {
	n := len(h.line) - 1
	var t int
	if h.xMajor {
		t = (p.X() - h.source.X()) * h.step
	} else {
		t = (p.Y() - h.source.Y()) * h.step
	}
	switch {
	case t < 0:
		return chebyshev(p, h.source)
	case t > n:
		return chebyshev(p, h.target)
	case h.xMajor:
		return abs(p.Y() - h.line[t].Y())
	default:
		return abs(p.X() - h.line[t].X())
	}
}

// octile is the exact cost between a and b on an empty grid.
func octile(a, b Point) int {
	dx, dy := abs(a.X()-b.X()), abs(a.Y()-b.Y())
	return unitCost*max(dx, dy) + diagonalPenalty*min(dx, dy)
}

func chebyshev(a, b Point) int {
	return max(abs(a.X()-b.X()), abs(a.Y()-b.Y()))
}

// stepCost is the cost of moving one cell in direction d onto a cell with
// the given status.
func stepCost(d Direction, status Status) int {
	cost := unitCost
	if d.IsDiagonal() {
		cost += diagonalPenalty
	}
	if status == Occupied {
		cost += occupiedPenalty
	}
	return cost
}
