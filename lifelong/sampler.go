package lifelong

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// ComponentSampler draws uniformly among the cells of the cursor's
// 4-connected component, redrawing while the draw equals the cursor.
type ComponentSampler struct {
	Components *gridgraph.ComponentMap
}

// Next implements Sampler. A component of one cell yields the cursor.
func (s ComponentSampler) Next(cursor gridgraph.Point, src *Source) (gridgraph.Point, error) {
	if s.Components == nil {
		return cursor, ErrEmptyPool
	}
	pool := s.Components.Members(cursor)
	if pool == nil {
		return cursor, fmt.Errorf("%w: %v", ErrBlockedCell, cursor)
	}
	if len(pool) == 1 {
		return cursor, nil
	}
	for {
		p := pool[src.IntN(len(pool))]
		if p != cursor {
			return p, nil
		}
	}
}

// CandidateSampler draws uniformly from Targets, each shifted by
// (Offset, Offset) into the frame of a grid padded by the observation radius.
// Draws equal to the cursor are redrawn.
type CandidateSampler struct {
	Targets []gridgraph.Point
	Offset  int
}

// Next implements Sampler. When no shifted target differs from the cursor,
// the cursor is returned.
func (s CandidateSampler) Next(cursor gridgraph.Point, src *Source) (gridgraph.Point, error) {
	if len(s.Targets) == 0 {
		return cursor, ErrEmptyPool
	}
	shift := gridgraph.Point{Row: s.Offset, Col: s.Offset}
	other := false
	for _, t := range s.Targets {
		if t.Add(shift) != cursor {
			other = true
			break
		}
	}
	if !other {
		return cursor, nil
	}
	for {
		p := s.Targets[src.IntN(len(s.Targets))].Add(shift)
		if p != cursor {
			return p, nil
		}
	}
}
