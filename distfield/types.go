// Package distfield provides tunable options and error definitions
// for distance-field construction.
package distfield

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for field construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("distfield: grid is nil")

	// ErrTargetOutOfBounds is returned when the target lies outside the grid.
	ErrTargetOutOfBounds = errors.New("distfield: target outside grid")

	// ErrRegionMismatch is returned when the region does not describe the grid.
	ErrRegionMismatch = errors.New("distfield: region dimensions differ from grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distfield: invalid option supplied")
)

// Unreachable marks a cell that the search never reached.
const Unreachable int32 = math.MaxInt32

// Field is the distance field of one target. It is immutable once built and
// safe for concurrent reads.
type Field struct {
	Target        gridgraph.Point
	Width, Height int
	dist          []int32
}

// At returns the distance of p to the target, or Unreachable when p was never
// reached or lies outside the grid.
// Complexity: O(1).
func (f *Field) At(p gridgraph.Point) int32 {
	if p.Row < 0 || p.Row >= f.Height || p.Col < 0 || p.Col >= f.Width {
		return Unreachable
	}
	return f.dist[p.Row*f.Width+p.Col]
}

// Reachable reports whether p has a finite distance.
func (f *Field) Reachable(p gridgraph.Point) bool {
	return f.At(p) != Unreachable
}

// Distances returns a copy of the dense row-major distances.
func (f *Field) Distances() []int32 {
	out := make([]int32, len(f.dist))
	copy(out, f.dist)
	return out
}

// Option configures BuildAll via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally and
// surfaced as ErrOptionViolation when BuildAll is invoked.
type Option func(*Options)

// Options holds parameters for BuildAll.
type Options struct {
	// Workers bounds the number of fields built concurrently.
	Workers int

	// Cache, if non-nil, serves fields for already-seen targets and keeps the
	// newly built ones.
	Cache *Cache

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with one worker per CPU and no cache.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers bounds the worker pool.
//
//	n > 0: at most n fields are built at once
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCache routes construction through c.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}
