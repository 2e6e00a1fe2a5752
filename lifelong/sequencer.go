package lifelong

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sequencer generates lifelong goal sequences.
type Sequencer struct {
	// Sampler picks each next goal.
	Sampler Sampler
	// Horizon is the episode length in steps.
	Horizon int
	// Margin is added to Horizon; see DefaultMargin.
	Margin int
	// MaxGoals bounds the number of sampled goals; <= 0 means DefaultMaxGoals.
	MaxGoals int
}

// Generate returns the sequence starting at start. Goals are appended until
// their summed Manhattan gaps reach Horizon + Margin, so the result always
// holds start and covers at least that distance unless ErrGoalLimit is
// returned alongside the partial sequence. src is advanced.
// Complexity: O(k) samples for a sequence of k goals.
func (q Sequencer) Generate(start gridgraph.Point, src *Source) (Sequence, error) {
	if q.Sampler == nil {
		return nil, ErrNilSampler
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if q.Horizon < 0 || q.Margin < 0 {
		return nil, fmt.Errorf("%w: horizon %d, margin %d", ErrNegativeHorizon, q.Horizon, q.Margin)
	}
	limit := q.MaxGoals
	if limit <= 0 {
		limit = DefaultMaxGoals
	}

	want := q.Horizon + q.Margin
	seq := Sequence{start}
	cursor, distance := start, 0
	for distance < want {
		if len(seq)-1 >= limit {
			return seq, fmt.Errorf("%w: %d goals cover %d of %d", ErrGoalLimit, limit, distance, want)
		}
		next, err := q.Sampler.Next(cursor, src)
		if err != nil {
			return nil, err
		}
		distance += gridgraph.Manhattan(cursor, next)
		seq = append(seq, next)
		cursor = next
	}
	return seq, nil
}

// GenerateAll generates one sequence per start, agent i drawing from a
// snapshot of sources[i]. The callers' sources are left where they were.
// On ErrGoalLimit every sequence is still returned; the error names the
// first agent that hit the limit. Any other error aborts.
func (q Sequencer) GenerateAll(starts []gridgraph.Point, sources []*Source) ([]Sequence, error) {
	if len(starts) != len(sources) {
		return nil, fmt.Errorf("%w: %d starts, %d sources", ErrLengthMismatch, len(starts), len(sources))
	}
	out := make([]Sequence, len(starts))
	var limitErr error
	for i, start := range starts {
		if sources[i] == nil {
			return nil, fmt.Errorf("agent %d: %w", i, ErrNilSource)
		}
		seq, err := q.Generate(start, sources[i].Snapshot())
		switch {
		case err == nil:
		case errors.Is(err, ErrGoalLimit):
			if limitErr == nil {
				limitErr = fmt.Errorf("agent %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("agent %d: %w", i, err)
		}
		out[i] = seq
	}
	return out, limitErr
}
