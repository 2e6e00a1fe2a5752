// Package gridgraph provides utilities to treat a 2D obstacle grid as a graph.
// It supports:
//
//   - Construction from [][]int or from the textual map format
//   - Obstacle-border padding for observation windows
//   - 4-connected component labelling of traversable cells
//   - Export to a gonum undirected graph
//
// Cells with value 0 are traversable; any other value is an obstacle.
package gridgraph

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// obstacle flags (0 = free, non-zero = blocked). The input is copied.
// Returns ErrEmptyGrid if obstacles has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(obstacles [][]int) (*Grid, error) {
	if len(obstacles) == 0 || len(obstacles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(obstacles), len(obstacles[0])
	for _, row := range obstacles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	blocked := make([]bool, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			blocked[r*w+c] = obstacles[r][c] != 0
		}
	}

	return &Grid{Width: w, Height: h, blocked: blocked}, nil
}

// Parse builds a Grid from the textual map format: one line per row,
// '.' for a free cell and '#' or '@' for an obstacle. Leading and trailing
// blank lines and surrounding spaces are ignored.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	var rows [][]int
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, 0)
			case '#', '@':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadCell, ch)
			}
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}

// Pad returns a new grid surrounded by an obstacle border of width r, so that
// every cell of g lies in the margined region of the result for radius r.
// A point p of g becomes p.Add(Point{r, r}) in the padded grid.
// Returns ErrNegativeRadius for r < 0.
// Complexity: O((W+2r)×(H+2r)).
func (g *Grid) Pad(r int) (*Grid, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	w, h := g.Width+2*r, g.Height+2*r
	blocked := make([]bool, w*h)
	for i := range blocked {
		blocked[i] = true
	}
	for row := 0; row < g.Height; row++ {
		copy(blocked[(row+r)*w+r:(row+r)*w+r+g.Width], g.blocked[row*g.Width:(row+1)*g.Width])
	}

	return &Grid{Width: w, Height: h, blocked: blocked}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Traversable reports whether p is inside the grid and not an obstacle.
// Complexity: O(1).
func (g *Grid) Traversable(p Point) bool {
	return g.InBounds(p) && !g.blocked[g.Index(p)]
}

// Cells returns the number of cells, Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Point converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Obstacles returns a fresh [][]int copy of the layout (1 = blocked).
func (g *Grid) Obstacles() [][]int {
	out := make([][]int, g.Height)
	for r := range out {
		out[r] = make([]int, g.Width)
		for c := range out[r] {
			if g.blocked[r*g.Width+c] {
				out[r][c] = 1
			}
		}
	}

	return out
}

// Region returns the margined region for observation radius r.
// Returns ErrNegativeRadius for r < 0.
func (g *Grid) Region(r int) (Region, error) {
	if r < 0 {
		return Region{}, ErrNegativeRadius
	}

	return Region{Width: g.Width, Height: g.Height, Radius: r}, nil
}

// Contains reports whether p is at least Radius cells away from every border.
// Complexity: O(1).
func (r Region) Contains(p Point) bool {
	return p.Row >= r.Radius && p.Row < r.Height-r.Radius &&
		p.Col >= r.Radius && p.Col < r.Width-r.Radius
}

// Empty reports whether the region holds no cell at all.
func (r Region) Empty() bool {
	return r.Height-2*r.Radius <= 0 || r.Width-2*r.Radius <= 0
}

// ToGraph converts the traversable cells into an unweighted gonum graph.
// Each traversable cell p becomes node Index(p); edges connect 4-neighbours.
// Complexity: O(W×H×4) time, Memory: O(W×H + E).
func (g *Grid) ToGraph() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.Cells(); i++ {
		if !g.blocked[i] {
			ug.AddNode(simple.Node(i))
		}
	}
	// Right and Down suffice: every undirected edge is seen once.
	for i := 0; i < g.Cells(); i++ {
		if g.blocked[i] {
			continue
		}
		p := g.Point(i)
		for _, d := range [...]Direction{Down, Right} {
			q := p.Add(d.Offset())
			if !g.Traversable(q) {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(g.Index(q))})
		}
	}

	return ug
}
