package heuristic

import (
	"math"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// checkCenter returns a *ConfigurationError when a window of radius r around
// pos would leave a width×height grid.
func checkCenter(pos gridgraph.Point, r, width, height int) error {
	if r < 0 {
		return ErrNegativeRadius
	}
	region := gridgraph.Region{Width: width, Height: height, Radius: r}
	if !region.Contains(pos) {
		return &ConfigurationError{Pos: pos, Radius: r, Width: width, Height: height}
	}
	return nil
}

// Extract crops the 4×(2r+1)×(2r+1) block of m centred on pos. pos must lie
// in the mask's margined region and at least r cells from every border;
// otherwise a *ConfigurationError is returned and nothing is read.
// Complexity: O(4×(2r+1)²).
func Extract(m *Mask, pos gridgraph.Point, r int) (*Window, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	if err := checkCenter(pos, r, m.Width, m.Height); err != nil {
		return nil, err
	}
	if !m.Region.Contains(pos) {
		return nil, &ConfigurationError{Pos: pos, Radius: m.Region.Radius, Width: m.Width, Height: m.Height}
	}

	size := 2*r + 1
	w := &Window{
		Center: pos,
		Radius: r,
		Size:   size,
		bits:   make([]bool, gridgraph.NumDirections*size*size),
	}
	plane := m.Width * m.Height
	for d := 0; d < gridgraph.NumDirections; d++ {
		for i := 0; i < size; i++ {
			src := d*plane + (pos.Row-r+i)*m.Width + pos.Col - r
			copy(w.bits[d*size*size+i*size:d*size*size+(i+1)*size], m.bits[src:src+size])
		}
	}

	return w, nil
}

// CostToGo crops the distance field around pos into a normalised
// (2r+1)×(2r+1) row-major window. Unreachable cells count as r plus the
// window's largest finite distance, minus one; values are then shifted by the minimum,
// inverted and scaled so the closest cell scores 1 and the farthest 0.
// A window with no spread is all zeros. Same precondition as Extract.
// Complexity: O((2r+1)²).
func CostToGo(f *distfield.Field, pos gridgraph.Point, r int) ([]float32, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := checkCenter(pos, r, f.Width, f.Height); err != nil {
		return nil, err
	}

	size := 2*r + 1
	raw := make([]int64, size*size)
	var maxFinite int64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			d := f.At(gridgraph.Point{Row: pos.Row - r + i, Col: pos.Col - r + j})
			if d == distfield.Unreachable {
				raw[i*size+j] = -1
				continue
			}
			raw[i*size+j] = int64(d)
			maxFinite = max(maxFinite, int64(d))
		}
	}

	// unreachable cells hold -1 and are lifted by r plus the largest finite
	// distance
	lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
	for i, v := range raw {
		if v < 0 {
			v += int64(r) + maxFinite
			raw[i] = v
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	out := make([]float32, len(raw))
	spread := hi - lo
	if spread == 0 {
		return out, nil
	}
	for i, v := range raw {
		out[i] = float32(hi-v) / float32(spread)
	}
	return out, nil
}
