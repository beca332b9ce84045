// Package overlay reads and draws the text grids used to describe search
// scenarios and their diagnostic output.
//
// One character per cell:
//
//	.  free
//	#  blocked
//	X  occupied (passable at a cost)
//	@  source
//	T  target
//	*  on the returned path
//	?  visited by the search but not on the path
//
// Parse accepts every character; '*' and '?' read back as free cells so a
// rendered overlay can be parsed again.
package overlay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	astar "github.com/pdrpinto/gridastar"
)

// Cell is the content of one grid square.
type Cell uint8

const (
	Floor Cell = iota
	Wall
	Crowd
)

// ErrMalformed is wrapped by every Parse error.
var ErrMalformed = errors.New("overlay: malformed grid")

// Scene is a parsed grid with its source and target.
type Scene struct {
	Grid   *astar.Matrix[Cell]
	Source astar.Point
	Target astar.Point
}

// Parse reads a grid. Blank lines and surrounding whitespace on each line are
// ignored; all rows must have the same width and exactly one '@' and one 'T'
// must appear.
func Parse(text string) (*Scene, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	width := len(rows[0])
	grid := astar.NewMatrix(astar.MakePoint(width, len(rows)), Floor)
	scene := &Scene{Grid: grid}
	var sources, targets int
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformed, y, len(row), width)
		}
		for x, ch := range []byte(row) {
			p := astar.MakePoint(x, y)
			switch ch {
			case '.', '*', '?':
			case '#':
				grid.Set(p, Wall)
			case 'X':
				grid.Set(p, Crowd)
			case '@':
				scene.Source = p
				sources++
			case 'T':
				scene.Target = p
				targets++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformed, ch, p)
			}
		}
	}
	if sources != 1 || targets != 1 {
		return nil, fmt.Errorf("%w: found %d sources and %d targets, want one of each", ErrMalformed, sources, targets)
	}
	return scene, nil
}

// MustParse is like Parse but panics on error. It is meant for fixtures
// written as literals.
func MustParse(text string) *Scene {
	scene, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return scene
}

// Classifier maps cells to search statuses. Points outside the grid are
// Blocked.
func (s *Scene) Classifier() astar.Classifier {
	return astar.MatrixClassifier(s.Grid, cellStatus)
}

// Search runs astar.Search from Source to Target and also returns the
// visitation record.
func (s *Scene) Search(options ...astar.Option) (astar.Result, []astar.Point) {
	var visited []astar.Point
	options = append(options, astar.WithRecord(&visited))
	result := astar.Search(s.Source, s.Target, s.Classifier(), options...)
	return result, visited
}

// Render draws the scene with path and visited cells marked. Source and
// target are drawn over everything else, path cells over visited ones.
func Render(s *Scene, path, visited []astar.Point) string {
	onPath := mapset.New[astar.Point]()
	for _, p := range path {
		onPath.Put(p)
	}
	seen := mapset.New[astar.Point]()
	for _, p := range visited {
		seen.Put(p)
	}

	var b strings.Builder
	for y := 0; y < s.Grid.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.Grid.Width(); x++ {
			p := astar.MakePoint(x, y)
			switch {
			case p == s.Source:
				b.WriteByte('@')
			case p == s.Target:
				b.WriteByte('T')
			case onPath.Has(p):
				b.WriteByte('*')
			case seen.Has(p):
				b.WriteByte('?')
			default:
				b.WriteByte(cellRune(s.Grid.Get(p)))
			}
		}
	}
	return b.String()
}

func cellStatus(c Cell) astar.Status {
	switch c {
	case Wall:
		return astar.Blocked
	case Crowd:
		return astar.Occupied
	}
	return astar.Free
}

func cellRune(c Cell) byte {
	switch c {
	case Wall:
		return '#'
	case Crowd:
		return 'X'
	}
	return '.'
}
