package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_GetSet(t *testing.T) {
	m := NewMatrix(MakePoint(4, 3), 7)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())
	assert.Equal(t, MakePoint(4, 3), m.Size())

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, 7, m.Get(MakePoint(x, y)))
		}
	}

	m.Set(MakePoint(3, 2), 1)
	m.Set(MakePoint(0, 1), 2)
	assert.Equal(t, 1, m.Get(MakePoint(3, 2)))
	assert.Equal(t, 2, m.Get(MakePoint(0, 1)))
	assert.Equal(t, 7, m.Get(MakePoint(1, 0)))

	m.Fill(0)
	assert.Equal(t, 0, m.Get(MakePoint(3, 2)))
}

func TestMatrix_Bounds(t *testing.T) {
	m := NewMatrix(MakePoint(2, 2), "a")

	assert.True(t, m.Contains(MakePoint(1, 1)))
	for _, p := range []Point{MakePoint(2, 0), MakePoint(0, 2), MakePoint(-1, 0), MakePoint(0, -1)} {
		assert.False(t, m.Contains(p), "%v", p)
		assert.Panics(t, func() { m.Get(p) }, "%v", p)
		assert.Panics(t, func() { m.Set(p, "b") }, "%v", p)

		v, ok := m.Lookup(p)
		assert.False(t, ok)
		assert.Equal(t, "", v)
	}

	v, ok := m.Lookup(MakePoint(0, 1))
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestMatrixClassifier(t *testing.T) {
	m := NewMatrix(MakePoint(3, 1), byte('.'))
	m.Set(MakePoint(1, 0), '#')
	m.Set(MakePoint(2, 0), 'X')
	check := MatrixClassifier(m, func(c byte) Status {
		switch c {
		case '#':
			return Blocked
		case 'X':
			return Occupied
		}
		return Free
	})

	assert.Equal(t, Free, check(MakePoint(0, 0)))
	assert.Equal(t, Blocked, check(MakePoint(1, 0)))
	assert.Equal(t, Occupied, check(MakePoint(2, 0)))
	assert.Equal(t, Blocked, check(MakePoint(3, 0)))
}
