// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridnav.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown character in a textual map.
	ErrBadCell = errors.New("gridgraph: unknown map character")
	// ErrNegativeRadius indicates a negative observation radius.
	ErrNegativeRadius = errors.New("gridgraph: radius must be non-negative")
	// ErrComponentIndex indicates a requested component label is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// Point addresses a grid cell.
type Point struct {
	Row, Col int
}

// String formats the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal moves. The order is fixed and
// shared by every dense per-direction structure in this module.
type Direction int

const (
	// Up decreases Row.
	Up Direction = iota
	// Down increases Row.
	Down
	// Left decreases Col.
	Left
	// Right increases Col.
	Right

	// NumDirections is the number of orthogonal moves.
	NumDirections = 4
)

// directionOffsets matches the Direction order.
var directionOffsets = [NumDirections]Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Point {
	return directionOffsets[d]
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Directions returns all directions in canonical order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{Up, Down, Left, Right}
}

// Grid is an immutable obstacle layout. Width and Height define dimensions;
// blocked[Row*Width+Col] reports an obstacle.
type Grid struct {
	Width, Height int
	blocked       []bool
}

// Region is the margined region of a grid for observation radius Radius:
// every cell whose distance to each border is at least Radius. A window of
// (2·Radius+1)² centred on any cell of the region stays inside the grid.
type Region struct {
	Width, Height int
	Radius        int
}
