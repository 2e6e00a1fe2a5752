// Package distfield builds per-agent distance fields: for one target cell, the
// unweighted shortest-path length from every cell of a grid to that target.
//
// What
//
//   - Build runs a breadth-first search from the target over traversable cells
//     of the margined region, 4-connected, with an explicit FIFO queue.
//   - Field stores the result as a dense row-major []int32; cells never reached
//     hold the Unreachable sentinel.
//   - Cache memoises fields by target so agents sharing a goal share a field.
//   - BuildAll builds fields for many targets on a bounded worker pool.
//
// Why
//
//   - Policies get a non-learned notion of "which move brings me closer to my
//     goal" from the field (see package heuristic).
//   - A field depends only on its target and the static grid, so it can be
//     recomputed once per goal change rather than every step.
//
// Determinism
//
//	Distances are a function of grid topology alone. BFS layers are monotonic
//	and relaxation fires only on strict improvement, so neither the queue
//	order nor the worker schedule of BuildAll changes a single value.
//
// Complexity (N = W×H)
//
//   - Build:    O(N) time, O(N) memory.
//   - BuildAll: O(T×N) total work for T distinct targets, spread over workers.
//
// Options (BuildAll)
//
//   - DefaultOptions(): one worker per CPU, no cache.
//   - WithWorkers(n):   bound the worker pool (n > 0).
//   - WithCache(c):     serve and fill fields through c.
//
// Errors
//
//   - ErrNilGrid             if the grid pointer is nil.
//   - ErrTargetOutOfBounds   if the target lies outside the grid.
//   - ErrRegionMismatch      if the region was built for different dimensions.
//   - ErrOptionViolation     if an invalid Option was supplied.
//
// A target on an obstacle or outside the region is still seeded with distance
// 0; only its traversable in-region neighbours are expanded.
package distfield
