// Package gridgraph treats a 2D obstacle grid as a graph, providing the static
// topology every navigation structure of an episode is built on.
//
// What:
//
//   - Grid wraps a rectangular obstacle layout (0 = traversable, non-zero = blocked).
//   - Parse reads the textual map format ('.' free, '#' or '@' blocked).
//   - Pad surrounds a grid with an obstacle border so that a fixed-radius
//     observation window around any unpadded cell stays inside the grid.
//   - Components labels 4-connected components of traversable cells and
//     answers "same component?" and "members of component of X" queries.
//     ComponentsIn restricts the labelling to a margined region.
//   - Region describes the margined region for an observation radius r.
//   - ToGraph exports the traversable cells as a gonum undirected graph.
//
// Why:
//
//   - Lifelong MAPF needs goals that are reachable from the current goal;
//     component membership is the cheap oracle for that.
//   - Observation windows must never read outside the grid; Region makes the
//     precondition explicit and testable.
//
// Complexity:
//
//   - NewGrid, Parse, Pad:  O(W×H) time and memory.
//   - Components:           O(W×H×4) time, O(W×H) memory.
//   - ToGraph:              O(W×H×4) time, O(W×H + E) memory.
//
// Coordinates:
//
//	Point{Row, Col}; Row grows downward, Col grows rightward. Cells are stored
//	row-major: index = Row*Width + Col.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: unknown character in a textual map.
//   - ErrNegativeRadius: a negative observation radius was requested.
//   - ErrComponentIndex: requested component label out of range.
package gridgraph
