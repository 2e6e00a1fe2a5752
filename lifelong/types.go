package lifelong

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for goal sequencing.
var (
	// ErrGoalLimit indicates Sequencer.MaxGoals was reached before the
	// sequence covered Horizon + Margin. The partial sequence is returned.
	ErrGoalLimit = errors.New("lifelong: goal limit reached")

	// ErrEmptyPool indicates a sampler with no candidate at all.
	ErrEmptyPool = errors.New("lifelong: empty candidate pool")

	// ErrBlockedCell indicates a cursor that belongs to no component.
	ErrBlockedCell = errors.New("lifelong: cursor is not a traversable cell")

	// ErrNilSampler indicates a Sequencer without a Sampler.
	ErrNilSampler = errors.New("lifelong: sampler is nil")

	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("lifelong: source is nil")

	// ErrNegativeHorizon indicates a negative Horizon or Margin.
	ErrNegativeHorizon = errors.New("lifelong: horizon and margin must be non-negative")

	// ErrLengthMismatch indicates GenerateAll inputs of different lengths.
	ErrLengthMismatch = errors.New("lifelong: starts and sources differ in length")
)

const (
	// DefaultMargin is the slack added to the horizon.
	DefaultMargin = 100

	// DefaultMaxGoals bounds the number of sampled goals per sequence.
	DefaultMaxGoals = 1 << 16
)

// Sequence is an ordered list of goals. Element 0 is the current goal.
type Sequence []gridgraph.Point

// Length returns the sum of Manhattan distances between consecutive goals.
func (s Sequence) Length() int {
	total := 0
	for i := 1; i < len(s); i++ {
		total += gridgraph.Manhattan(s[i-1], s[i])
	}
	return total
}

// Sampler picks the goal following cursor.
// Implementations draw only from src and must not retain it.
type Sampler interface {
	Next(cursor gridgraph.Point, src *Source) (gridgraph.Point, error)
}
