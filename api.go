package astar

// Status classifies a grid cell for the search.
type Status uint8

const (
	// Free cells cost the plain step cost.
	Free Status = iota
	// Blocked cells are never entered.
	Blocked
	// Occupied cells are passable at an extra cost, e.g. a cell holding
	// another unit that will probably move away.
	Occupied
)

func (s Status) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Occupied:
		return "occupied"
	}
	return "unknown"
}

// Classifier reports the status of a cell. It is owned by the caller and must
// not change while a search is running.
type Classifier func(p Point) Status

// Result contains the outcome of a search.
type Result struct {
	// Path runs from the first step after the source up to and including the
	// target. It is empty when source and target coincide.
	Path []Point
	// Cost is the accumulated step cost of Path.
	Cost int
	// Expanded counts nodes taken off the frontier.
	Expanded int
	// Shortcut is set when the straight line was clear and no search ran.
	Shortcut bool
	// Found is false when the target cannot be reached. That is an ordinary
	// outcome, not an error.
	Found bool
}

// Options defines parameters for the search.
type Options struct {
	// Record, when set, receives every point taken off the frontier in order.
	Record *[]Point
	// CapacityHint sizes the node registry up front.
	CapacityHint int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithRecord appends each visited point to record.
func WithRecord(record *[]Point) Option {
	return func(options *Options) { options.Record = record }
}

// WithCapacityHint presizes the node registry for about n nodes.
func WithCapacityHint(n int) Option {
	return func(options *Options) { options.CapacityHint = n }
}

// Search finds a route from source to target over the cells described by
// check.
//
// If the straight line between the two is clear the line is returned as is.
// Otherwise an A* search runs with a heuristic biased toward that line, which
// gives direct-looking routes quickly but not always the cheapest one.
// The source cell is never classified; the target is always treated as Free.
func Search(source, target Point, check Classifier, options ...Option) Result {
	s := newSearch(source, target, check, applyOptions(options))
	for s.step() {
	}
	return s.result
}

func applyOptions(options []Option) Options {
	searchOptions := Options{CapacityHint: 64}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}
