package astar

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	// Current is the point popped by this step. It is only meaningful when
	// Popped is set.
	Current Point
	Popped  bool
	// Open lists the queued points, Visited every point popped so far.
	Open    []Point
	Visited []Point

	Done      bool
	Found     bool
	Shortcut  bool
	Path      []Point
	StepIndex int
}

// Stepper runs the same search as Search one node expansion at a time, for
// visualizers and debugging tools.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper prepares a search from source to target. A clear straight line
// finishes the stepper immediately.
func NewStepper(source, target Point, check Classifier, options ...Option) *Stepper {
	return &Stepper{search: newSearch(source, target, check, applyOptions(options))}
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.search.done }

// Result returns the outcome so far; it is final once Done is true.
func (s *Stepper) Result() Result { return s.search.result }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	before := len(s.search.visited)
	s.search.step()

	snapshot := StepSnapshot{
		Open:     s.search.frontier(),
		Visited:  append([]Point(nil), s.search.visited...),
		Done:     s.search.done,
		Found:    s.search.result.Found,
		Shortcut: s.search.result.Shortcut,
	}
	if len(s.search.visited) > before {
		s.stepCount++
		snapshot.Current = s.search.visited[len(s.search.visited)-1]
		snapshot.Popped = true
	}
	if snapshot.Found {
		snapshot.Path = append([]Point(nil), s.search.result.Path...)
	}
	snapshot.StepIndex = s.stepCount
	return snapshot
}
