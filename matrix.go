package astar

import "fmt"

// Matrix is a dense, fixed-size grid of cells stored row-major.
// Cells are addressed by Point with (0,0) at the top-left corner.
type Matrix[T any] struct {
	size  Point
	cells []T
}

// NewMatrix creates a width x height matrix (taken from size) with every cell
// set to fill. It panics on a negative size.
func NewMatrix[T any](size Point, fill T) *Matrix[T] {
	w, h := size.X(), size.Y()
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("astar: negative matrix size %v", size))
	}
	m := &Matrix[T]{size: size, cells: make([]T, w*h)}
	m.Fill(fill)
	return m
}

func (m *Matrix[T]) Size() Point { return m.size }
func (m *Matrix[T]) Width() int  { return m.size.X() }
func (m *Matrix[T]) Height() int { return m.size.Y() }

// Contains reports whether p lies inside the matrix.
func (m *Matrix[T]) Contains(p Point) bool {
	x, y := p.X(), p.Y()
	return x >= 0 && y >= 0 && x < m.size.X() && y < m.size.Y()
}

// Get returns the cell at p. It panics if p is out of bounds.
func (m *Matrix[T]) Get(p Point) T {
	return m.cells[m.index(p)]
}

// Set stores v at p. It panics if p is out of bounds.
func (m *Matrix[T]) Set(p Point, v T) {
	m.cells[m.index(p)] = v
}

// Lookup is the bounds-tolerant Get: it returns the zero value and false
// when p is outside the matrix.
func (m *Matrix[T]) Lookup(p Point) (T, bool) {
	if !m.Contains(p) {
		var zero T
		return zero, false
	}
	return m.cells[p.Y()*m.size.X()+p.X()], true
}

// Fill resets every cell to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.cells {
		m.cells[i] = v
	}
}

func (m *Matrix[T]) index(p Point) int {
	if !m.Contains(p) {
		panic(fmt.Sprintf("astar: %v outside %dx%d matrix", p, m.size.X(), m.size.Y()))
	}
	return p.Y()*m.size.X() + p.X()
}

// MatrixClassifier adapts m into a Classifier using classify for every cell
// inside the matrix. Cells outside the matrix are Blocked.
func MatrixClassifier[T any](m *Matrix[T], classify func(T) Status) Classifier {
	return func(p Point) Status {
		v, ok := m.Lookup(p)
		if !ok {
			return Blocked
		}
		return classify(v)
	}
}
