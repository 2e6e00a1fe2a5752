package heuristic_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
)

// build parses text and returns the field and mask of target for radius r.
func build(t testing.TB, text string, target gridgraph.Point, r int) (*gridgraph.Grid, *distfield.Field, *heuristic.Mask) {
	t.Helper()
	g, err := gridgraph.Parse(text)
	require.NoError(t, err)
	region, err := g.Region(r)
	require.NoError(t, err)
	f, err := distfield.Build(g, target, region)
	require.NoError(t, err)
	m, err := heuristic.BuildMask(f, region)
	require.NoError(t, err)
	return g, f, m
}

const open5 = `
.....
.....
.....
.....
.....
`

const open10 = `
..........
..........
..........
..........
..........
..........
..........
..........
..........
..........
`

// mazeish is a 12×12 map with rooms, a dead end and an isolated pocket.
const mazeish = `
############
#....#.....#
#.##.#.###.#
#.#..#...#.#
#.#.####.#.#
#...#....#.#
###.#.####.#
#...#......#
#.###.####.#
#.....#..#.#
#.###.#..#.#
############
`

//----------------------------------------------------------------------------//
// BuildMask
//----------------------------------------------------------------------------//

// TestBuildMask_Errors verifies nil and mismatched input.
func TestBuildMask_Errors(t *testing.T) {
	_, err := heuristic.BuildMask(nil, gridgraph.Region{})
	assert.ErrorIs(t, err, heuristic.ErrNilField)

	_, f, _ := build(t, open5, gridgraph.Point{Row: 4, Col: 4}, 0)
	_, err = heuristic.BuildMask(f, gridgraph.Region{Width: 3, Height: 3})
	assert.ErrorIs(t, err, heuristic.ErrRegionMismatch)
}

// TestBuildMask_OpenGrid: on an empty 5×5 grid with target
// (4,4), only Down and Right improve from (0,0).
func TestBuildMask_OpenGrid(t *testing.T) {
	_, f, m := build(t, open5, gridgraph.Point{Row: 4, Col: 4}, 0)
	origin := gridgraph.Point{Row: 0, Col: 0}

	require.Equal(t, int32(8), f.At(origin))
	assert.Equal(t, [4]bool{false, true, false, true}, m.Moves(origin))
	assert.True(t, m.At(gridgraph.Down, origin))
	assert.True(t, m.At(gridgraph.Right, origin))
	assert.False(t, m.At(gridgraph.Up, origin))
	assert.False(t, m.At(gridgraph.Left, origin))
	assert.Equal(t, 2, m.Count(origin))

	// the target itself has nothing to improve
	assert.Zero(t, m.Count(gridgraph.Point{Row: 4, Col: 4}))
	// outside the grid reads as false
	assert.False(t, m.At(gridgraph.Up, gridgraph.Point{Row: -1, Col: 0}))
}

// TestBuildMask_Wall: a cell in the other component has the
// sentinel distance and no marked direction.
func TestBuildMask_Wall(t *testing.T) {
	text := `
..#..
..#..
..#..
..#..
..#..
`
	_, f, m := build(t, text, gridgraph.Point{Row: 0, Col: 4}, 0)
	cell := gridgraph.Point{Row: 2, Col: 1}

	assert.Equal(t, distfield.Unreachable, f.At(cell))
	assert.Equal(t, [4]bool{}, m.Moves(cell))
}

// TestBuildMask_SentinelRowsAllFalse checks every unreachable cell of a
// multi-component map.
func TestBuildMask_SentinelRowsAllFalse(t *testing.T) {
	g, f, m := build(t, mazeish, gridgraph.Point{Row: 1, Col: 1}, 0)
	unreachable := 0
	for i := 0; i < g.Cells(); i++ {
		p := g.Point(i)
		if f.Reachable(p) {
			continue
		}
		unreachable++
		assert.Equal(t, [4]bool{}, m.Moves(p), "cell %v", p)
	}
	assert.Positive(t, unreachable)
}

// TestBuildMask_Progress checks the progress guarantee exhaustively: every
// reachable non-target cell has a marked direction, and every marked direction
// lands exactly one step closer. By induction any tie-breaking reaches the
// target in exactly d moves; the walks below confirm it for two extremes.
func TestBuildMask_Progress(t *testing.T) {
	target := gridgraph.Point{Row: 7, Col: 10}
	g, f, m := build(t, mazeish, target, 1)

	for i := 0; i < g.Cells(); i++ {
		p := g.Point(i)
		d := f.At(p)
		if d == distfield.Unreachable || d == 0 {
			continue
		}
		require.Positive(t, m.Count(p), "cell %v at distance %d has no move", p, d)
		for _, dir := range gridgraph.Directions() {
			if m.At(dir, p) {
				assert.Equal(t, d-1, f.At(p.Add(dir.Offset())), "cell %v dir %v", p, dir)
			}
		}
	}

	pickFirst := func(moves [4]bool) gridgraph.Direction {
		for d, ok := range moves {
			if ok {
				return gridgraph.Direction(d)
			}
		}
		return -1
	}
	pickLast := func(moves [4]bool) gridgraph.Direction {
		for d := len(moves) - 1; d >= 0; d-- {
			if moves[d] {
				return gridgraph.Direction(d)
			}
		}
		return -1
	}
	for _, pick := range []func([4]bool) gridgraph.Direction{pickFirst, pickLast} {
		for i := 0; i < g.Cells(); i++ {
			p := g.Point(i)
			d := f.At(p)
			if d == distfield.Unreachable {
				continue
			}
			steps := int32(0)
			for p != target {
				dir := pick(m.Moves(p))
				require.NotEqual(t, gridgraph.Direction(-1), dir, "stuck at %v", p)
				p = p.Add(dir.Offset())
				require.True(t, g.Traversable(p))
				steps++
			}
			assert.Equal(t, d, steps)
		}
	}
}

// TestBuildMask_Idempotent rebuilds the mask and compares every flag.
func TestBuildMask_Idempotent(t *testing.T) {
	g, f, m1 := build(t, mazeish, gridgraph.Point{Row: 9, Col: 3}, 1)
	m2, err := heuristic.BuildMask(f, m1.Region)
	require.NoError(t, err)
	for i := 0; i < g.Cells(); i++ {
		p := g.Point(i)
		require.Equal(t, m1.Moves(p), m2.Moves(p), "cell %v", p)
	}
}

// TestBuildMask_OutsideRegionFalse checks that border cells carry no flags.
func TestBuildMask_OutsideRegionFalse(t *testing.T) {
	g, _, m := build(t, open10, gridgraph.Point{Row: 5, Col: 5}, 2)
	for i := 0; i < g.Cells(); i++ {
		p := g.Point(i)
		if !m.Region.Contains(p) {
			assert.Zero(t, m.Count(p), "cell %v", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Extract
//----------------------------------------------------------------------------//

// TestExtract_Margin: a 10×10 grid with margin r=2. Extraction
// at (1,1) is a ConfigurationError; at (5,5) it returns the exact 5×5 block.
func TestExtract_Margin(t *testing.T) {
	_, _, m := build(t, open10, gridgraph.Point{Row: 7, Col: 3}, 2)

	_, err := heuristic.Extract(m, gridgraph.Point{Row: 1, Col: 1}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, heuristic.ErrOutsideMargin)
	var cfgErr *heuristic.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 1}, cfgErr.Pos)
	assert.Equal(t, 2, cfgErr.Radius)
	assert.Contains(t, cfgErr.Error(), "(1,1)")

	center := gridgraph.Point{Row: 5, Col: 5}
	w, err := heuristic.Extract(m, center, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Size)
	assert.Equal(t, center, w.Center)

	var want [4][][]bool
	for d := range want {
		want[d] = make([][]bool, 5)
		for i := 0; i < 5; i++ {
			want[d][i] = make([]bool, 5)
			for j := 0; j < 5; j++ {
				want[d][i][j] = m.At(gridgraph.Direction(d), gridgraph.Point{Row: 3 + i, Col: 3 + j})
				assert.Equal(t, want[d][i][j], w.At(gridgraph.Direction(d), i, j))
			}
		}
	}
	if diff := cmp.Diff(want, w.Tensor()); diff != "" {
		t.Errorf("window mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, w.Flat(), 4*5*5)
	// the agent's own cell matches the global mask
	assert.Equal(t, m.Moves(center), [4]bool{w.At(0, 2, 2), w.At(1, 2, 2), w.At(2, 2, 2), w.At(3, 2, 2)})
}

// TestExtract_Errors covers nil mask, negative radius and a window radius
// larger than the mask's own margin.
func TestExtract_Errors(t *testing.T) {
	_, err := heuristic.Extract(nil, gridgraph.Point{}, 1)
	assert.ErrorIs(t, err, heuristic.ErrNilMask)

	_, _, m := build(t, open10, gridgraph.Point{Row: 5, Col: 5}, 2)
	_, err = heuristic.Extract(m, gridgraph.Point{Row: 5, Col: 5}, -1)
	assert.ErrorIs(t, err, heuristic.ErrNegativeRadius)

	_, err = heuristic.Extract(m, gridgraph.Point{Row: 5, Col: 5}, 5)
	assert.ErrorIs(t, err, heuristic.ErrOutsideMargin, "window would leave the grid")

	// r=1 fits the grid at (1,1) but (1,1) is outside the mask's r=2 region
	_, err = heuristic.Extract(m, gridgraph.Point{Row: 1, Col: 1}, 1)
	assert.ErrorIs(t, err, heuristic.ErrOutsideMargin)

	w, err := heuristic.Extract(m, gridgraph.Point{Row: 2, Col: 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Size)
}

//----------------------------------------------------------------------------//
// CostToGo
//----------------------------------------------------------------------------//

// TestCostToGo_OpenGrid checks normalisation on an obstacle-free window.
func TestCostToGo_OpenGrid(t *testing.T) {
	_, f, _ := build(t, open5, gridgraph.Point{Row: 4, Col: 4}, 0)
	win, err := heuristic.CostToGo(f, gridgraph.Point{Row: 2, Col: 2}, 1)
	require.NoError(t, err)
	require.Len(t, win, 9)

	// rows 1..3, cols 1..3 hold 6 5 4 / 5 4 3 / 4 3 2; lo=2, hi=6.
	want := []float32{0, 0.25, 0.5, 0.25, 0.5, 0.75, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, win); diff != "" {
		t.Errorf("cost-to-go mismatch (-want +got):\n%s", diff)
	}
}

// TestCostToGo_Unreachable lifts sentinel cells to r + max finite distance - 1.
func TestCostToGo_Unreachable(t *testing.T) {
	text := `
.....
.#...
.....
`
	_, f, _ := build(t, text, gridgraph.Point{Row: 1, Col: 2}, 0)
	win, err := heuristic.CostToGo(f, gridgraph.Point{Row: 1, Col: 1}, 1)
	require.NoError(t, err)

	// raw: 3 2 1 / 4 x 0 / 3 2 1 with x = 1+4-1 = 4; lo=0, hi=4
	want := []float32{0.25, 0.5, 0.75, 0, 0, 1, 0.25, 0.5, 0.75}
	if diff := cmp.Diff(want, win); diff != "" {
		t.Errorf("cost-to-go mismatch (-want +got):\n%s", diff)
	}
}

// TestCostToGo_WallColumn pins a window whose right column is cut off by a
// wall: the lifted cells tie with the farthest reachable ones.
func TestCostToGo_WallColumn(t *testing.T) {
	text := `
..#..
..#..
..#..
`
	_, f, _ := build(t, text, gridgraph.Point{Row: 1, Col: 0}, 0)
	win, err := heuristic.CostToGo(f, gridgraph.Point{Row: 1, Col: 1}, 1)
	require.NoError(t, err)

	// raw: 1 2 x / 0 1 x / 1 2 x with x = 1+2-1 = 2; lo=0, hi=2
	want := []float32{0.5, 0, 0, 1, 0.5, 0, 0.5, 0, 0}
	if diff := cmp.Diff(want, win); diff != "" {
		t.Errorf("cost-to-go mismatch (-want +got):\n%s", diff)
	}
}

// TestCostToGo_Flat returns zeros when the window has no spread.
func TestCostToGo_Flat(t *testing.T) {
	_, f, _ := build(t, "...\n...\n...", gridgraph.Point{Row: 1, Col: 1}, 0)
	win, err := heuristic.CostToGo(f, gridgraph.Point{Row: 1, Col: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{0}, win)

	_, err = heuristic.CostToGo(f, gridgraph.Point{Row: 0, Col: 0}, 1)
	assert.ErrorIs(t, err, heuristic.ErrOutsideMargin)
	_, err = heuristic.CostToGo(nil, gridgraph.Point{}, 0)
	assert.ErrorIs(t, err, heuristic.ErrNilField)
}
