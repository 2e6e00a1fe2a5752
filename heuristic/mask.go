package heuristic

import (
	"fmt"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BuildMask derives the direction mask of f over region. For every cell of
// region with a finite distance and each direction, the flag is true iff the
// neighbour lies in the grid, is reachable, and is strictly closer.
// Complexity: O(W×H×4) time and memory.
func BuildMask(f *distfield.Field, region gridgraph.Region) (*Mask, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if region.Width != f.Width || region.Height != f.Height {
		return nil, fmt.Errorf("%w: region %dx%d, field %dx%d",
			ErrRegionMismatch, region.Height, region.Width, f.Height, f.Width)
	}

	plane := f.Width * f.Height
	m := &Mask{
		Target: f.Target,
		Width:  f.Width,
		Height: f.Height,
		Region: region,
		bits:   make([]bool, gridgraph.NumDirections*plane),
	}
	for r := region.Radius; r < f.Height-region.Radius; r++ {
		for c := region.Radius; c < f.Width-region.Radius; c++ {
			p := gridgraph.Point{Row: r, Col: c}
			d := f.At(p)
			if d == distfield.Unreachable {
				continue // no informative direction
			}
			for _, dir := range gridgraph.Directions() {
				// At returns Unreachable outside the grid, which is never smaller.
				if f.At(p.Add(dir.Offset())) < d {
					m.bits[int(dir)*plane+r*f.Width+c] = true
				}
			}
		}
	}

	return m, nil
}

// At reports the flag of direction d at p; false outside the grid.
// Complexity: O(1).
func (m *Mask) At(d gridgraph.Direction, p gridgraph.Point) bool {
	if p.Row < 0 || p.Row >= m.Height || p.Col < 0 || p.Col >= m.Width {
		return false
	}
	return m.bits[int(d)*m.Width*m.Height+p.Row*m.Width+p.Col]
}

// Moves returns the four flags of p in canonical direction order.
func (m *Mask) Moves(p gridgraph.Point) [gridgraph.NumDirections]bool {
	var out [gridgraph.NumDirections]bool
	for _, d := range gridgraph.Directions() {
		out[d] = m.At(d, p)
	}
	return out
}

// Count returns how many directions improve on p.
func (m *Mask) Count(p gridgraph.Point) int {
	n := 0
	for _, ok := range m.Moves(p) {
		if ok {
			n++
		}
	}
	return n
}
