package heuristic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for mask construction and extraction.
var (
	// ErrOutsideMargin indicates a window centre outside the margined region.
	ErrOutsideMargin = errors.New("heuristic: position outside margined region")

	// ErrNilField indicates a nil distance field.
	ErrNilField = errors.New("heuristic: field is nil")

	// ErrNilMask indicates a nil mask.
	ErrNilMask = errors.New("heuristic: mask is nil")

	// ErrRegionMismatch indicates a region built for other dimensions.
	ErrRegionMismatch = errors.New("heuristic: region dimensions differ from field")

	// ErrNegativeRadius indicates a negative window radius.
	ErrNegativeRadius = errors.New("heuristic: radius must be non-negative")
)

// ConfigurationError reports a window request whose centre is closer than
// Radius to a grid border. It is a provisioning bug of the caller, detected
// before any out-of-bounds access.
type ConfigurationError struct {
	Pos           gridgraph.Point
	Radius        int
	Width, Height int
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("heuristic: position %v outside margined region of radius %d on %dx%d grid",
		e.Pos, e.Radius, e.Height, e.Width)
}

// Is matches ErrOutsideMargin.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrOutsideMargin
}

// Mask holds, for every cell and direction, whether the move strictly reduces
// the distance to the field's target. Only cells of Region carry meaning;
// all others are false.
type Mask struct {
	Target        gridgraph.Point
	Width, Height int
	Region        gridgraph.Region
	bits          []bool // [dir][row][col]
}

// Window is a 4×Size×Size block of a Mask centred on an agent, Size = 2·Radius+1.
type Window struct {
	Center gridgraph.Point
	Radius int
	Size   int
	bits   []bool // [dir][row][col]
}

// At reports the flag of direction d at window cell (row, col), both in
// 0..Size-1. The agent sits at (Radius, Radius).
func (w *Window) At(d gridgraph.Direction, row, col int) bool {
	return w.bits[int(d)*w.Size*w.Size+row*w.Size+col]
}

// Tensor returns the window as a fresh [direction][row][col] array.
func (w *Window) Tensor() [gridgraph.NumDirections][][]bool {
	var out [gridgraph.NumDirections][][]bool
	for d := range out {
		out[d] = make([][]bool, w.Size)
		for r := range out[d] {
			row := make([]bool, w.Size)
			copy(row, w.bits[d*w.Size*w.Size+r*w.Size:d*w.Size*w.Size+(r+1)*w.Size])
			out[d][r] = row
		}
	}
	return out
}

// Flat returns a copy of the dense [dir][row][col] booleans.
func (w *Window) Flat() []bool {
	out := make([]bool, len(w.bits))
	copy(out, w.bits)
	return out
}
