package astar

import (
	"container/heap"

	"github.com/pdrpinto/gridastar/hashtable"
	"github.com/pdrpinto/gridastar/internal"
)

// node is one entry of the search arena. Parent links point toward the
// source and form a tree; the root's parent is -1.
type node struct {
	point      Point
	parent     int32
	dist       int
	score      int
	visits     uint8 // Direction bits this node has been reached through
	queueIndex int   // position in the frontier, -1 once popped
}

// search holds the state of one A* run. Nodes live in an index-addressed
// arena and the registry maps Point.Key to arena indices.
type search struct {
	source, target Point
	check          Classifier
	heuristic      heuristic

	nodes    []node
	registry *hashtable.Table
	open     priorityQueue

	record  *[]Point
	visited []Point

	done   bool
	result Result
}

func newSearch(source, target Point, check Classifier, options Options) *search {
	s := &search{
		source: source,
		target: target,
		check:  check,
		record: options.Record,
	}

	line := LOS(source, target)
	if path, cost, ok := s.shortcut(line); ok {
		s.finish(Result{Path: path, Cost: cost, Shortcut: true, Found: true})
		return s
	}

	s.heuristic = newHeuristic(source, target, line)
	s.registry = hashtable.New(options.CapacityHint)
	s.nodes = make([]node, 0, options.CapacityHint)
	s.open = priorityQueue{nodes: &s.nodes}
	s.add(node{point: source, parent: -1, score: s.heuristic.estimate(source)})
	return s
}

// shortcut returns line without its source cell when every interior cell is
// Free. Neither endpoint is classified.
func (s *search) shortcut(line []Point) ([]Point, int, bool) {
	for _, p := range line[1:max(1, len(line)-1)] {
		if s.check(p) != Free {
			return nil, 0, false
		}
	}
	path := make([]Point, len(line)-1)
	copy(path, line[1:])
	cost := 0
	prev := line[0]
	for _, p := range path {
		cost += stepCost(DirectionOf(p.Sub(prev)), Free)
		prev = p
	}
	return path, cost, true
}

// step pops one node and expands it. It returns false once the search has
// finished, either at the target or with an empty frontier.
func (s *search) step() bool {
	if s.done {
		return false
	}
	if s.open.Len() == 0 {
		s.finish(Result{Expanded: len(s.visited)})
		return false
	}

	id := heap.Pop(&s.open).(int32)
	current := s.nodes[id]
	s.visited = append(s.visited, current.point)
	if s.record != nil {
		*s.record = append(*s.record, current.point)
	}

	if current.point == s.target {
		s.finish(Result{
			Path:     s.reconstruct(id),
			Cost:     current.dist,
			Expanded: len(s.visited),
			Found:    true,
		})
		return false
	}

	for _, d := range Directions {
		// Do not step straight back toward a node that already reached us.
		if current.visits&d.Reverse().Bit() != 0 {
			continue
		}
		next := current.point.Step(d)
		status := Free
		if next != s.target {
			status = s.check(next)
		}
		if status == Blocked {
			continue
		}
		dist := current.dist + stepCost(d, status)

		if existing, ok := s.registry.Get(next.Key()); ok {
			n := &s.nodes[existing]
			// Marked even when the step is not an improvement.
			n.visits |= d.Bit()
			if dist < n.dist {
				n.score += dist - n.dist
				n.dist = dist
				n.parent = id
				if n.queueIndex >= 0 {
					heap.Fix(&s.open, n.queueIndex)
				}
			}
			continue
		}

		s.add(node{
			point:  next,
			parent: id,
			dist:   dist,
			score:  dist + s.heuristic.estimate(next),
			visits: d.Bit(),
		})
	}
	return true
}

// add registers n in the arena and pushes it onto the frontier.
func (s *search) add(n node) {
	id := int32(len(s.nodes))
	s.nodes = append(s.nodes, n)
	s.registry.Set(n.point.Key(), int(id))
	heap.Push(&s.open, id)
}

// reconstruct walks parent links from id back to the source and returns the
// route in travel order, without the source itself.
func (s *search) reconstruct(id int32) []Point {
	var path []Point
	for ; s.nodes[id].parent >= 0; id = s.nodes[id].parent {
		path = append(path, s.nodes[id].point)
	}
	return internal.Reverse(path)
}

func (s *search) finish(result Result) {
	s.done = true
	s.result = result
}

// frontier returns the points currently queued, in heap order.
func (s *search) frontier() []Point {
	points := make([]Point, 0, len(s.open.items))
	for _, id := range s.open.items {
		points = append(points, s.nodes[id].point)
	}
	return points
}
