package astar

// LOS rasterizes the segment from a to b and returns every cell on it, both
// endpoints included. The result has max(|dx|,|dy|)+1 cells and is symmetric:
// LOS(b, a) is exactly LOS(a, b) reversed.
//
// The line is built Tran-Thong style. The front half is walked from a with a
// Bresenham error term and mirrored onto the back half from b, so both halves
// round the same way. With an even number of steps the middle cell takes the
// floor of the endpoints' mean on the minor axis.
func LOS(a, b Point) []Point {
	ax, ay, bx, by := a.X(), a.Y(), b.X(), b.Y()
	dx, dy := bx-ax, by-ay
	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), abs(dy)

	xMajor := adx >= ady
	n, minor := adx, ady
	if !xMajor {
		n, minor = ady, adx
	}

	line := make([]Point, n+1)
	half := (n + 1) / 2

	// (i, j) are offsets from a along the major and minor axis.
	j := 0
	err := 2*minor - n
	for i := 0; i < half; i++ {
		ox, oy := i*sx, j*sy
		if !xMajor {
			ox, oy = j*sx, i*sy
		}
		line[i] = MakePoint(ax+ox, ay+oy)
		line[n-i] = MakePoint(bx-ox, by-oy)
		if err > 0 {
			j++
			err -= 2 * n
		}
		err += 2 * minor
	}

	if n%2 == 0 {
		if xMajor {
			line[n/2] = MakePoint((ax+bx)/2, floorDiv(ay+by, 2))
		} else {
			line[n/2] = MakePoint(floorDiv(ax+bx, 2), (ay+by)/2)
		}
	}
	return line
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
