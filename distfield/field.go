// Package distfield provides breadth-first distance fields over a
// gridgraph.Grid, bounded by the margined region of an observation radius.
package distfield

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid   *gridgraph.Grid
	region gridgraph.Region
	queue  []int
	dist   []int32
}

// Build computes the distance field of target over the traversable cells of
// region. Returns ErrNilGrid, ErrRegionMismatch or ErrTargetOutOfBounds for
// malformed input; disconnected cells are not an error and keep Unreachable.
// Complexity: O(W×H) time and memory.
func Build(g *gridgraph.Grid, target gridgraph.Point, region gridgraph.Region) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if region.Width != g.Width || region.Height != g.Height {
		return nil, fmt.Errorf("%w: region %dx%d, grid %dx%d",
			ErrRegionMismatch, region.Height, region.Width, g.Height, g.Width)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetOutOfBounds, target)
	}

	n := g.Cells()
	w := &walker{
		grid:   g,
		region: region,
		queue:  make([]int, 0, n),
		dist:   make([]int32, n),
	}
	for i := range w.dist {
		w.dist[i] = Unreachable
	}

	// Seed queue with the target
	t := g.Index(target)
	w.dist[t] = 0
	w.queue = append(w.queue, t)
	w.loop()

	return &Field{Target: target, Width: g.Width, Height: g.Height, dist: w.dist}, nil
}

// loop drains the FIFO queue. Each cell is enqueued at most once, because a
// cell's first assignment is already its BFS layer.
func (w *walker) loop() {
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		w.relaxNeighbors(u)
	}
}

// relaxNeighbors assigns d+1 to every unassigned traversable in-region
// neighbour of u and enqueues it.
func (w *walker) relaxNeighbors(u int) {
	p := w.grid.Point(u)
	next := w.dist[u] + 1
	for _, d := range gridgraph.Directions() {
		q := p.Add(d.Offset())
		if !w.region.Contains(q) || !w.grid.Traversable(q) {
			continue
		}
		v := w.grid.Index(q)
		if w.dist[v] > next {
			w.dist[v] = next
			w.queue = append(w.queue, v)
		}
	}
}
