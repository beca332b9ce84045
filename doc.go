// Package astar finds routes on 2D occupancy grids.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Cells are addressed by Point, a packed (x, y) pair, and classified by a
// caller-supplied Classifier as Free, Blocked or Occupied. When the straight
// line from source to target (see LOS) crosses only Free cells it is returned
// directly; otherwise an A* search runs whose heuristic favors that line. The
// heuristic is deliberately inadmissible, so routes look direct but are not
// guaranteed to be the cheapest.
//
// Matrix is a dense grid that callers can adapt into a Classifier with
// MatrixClassifier. The node registry of a search is a hashtable.Table.
//
// Nothing in this package is safe for concurrent use.
package astar
