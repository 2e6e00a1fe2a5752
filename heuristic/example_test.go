package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
)

// ExampleBuildMask lists the improving moves of a cell behind a wall.
func ExampleBuildMask() {
	g, _ := gridgraph.Parse(`
...
.#.
...
`)
	region, _ := g.Region(0)
	f, _ := distfield.Build(g, gridgraph.Point{Row: 2, Col: 1}, region)
	m, _ := heuristic.BuildMask(f, region)

	for _, p := range []gridgraph.Point{{Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 2, Col: 1}} {
		var moves []string
		for _, d := range gridgraph.Directions() {
			if m.At(d, p) {
				moves = append(moves, d.String())
			}
		}
		fmt.Println(p, moves)
	}
	// Output:
	// (0,1) [left right]
	// (0,0) [down]
	// (2,1) []
}

// ExampleExtract shows the margin check guarding window extraction.
func ExampleExtract() {
	g, _ := gridgraph.Parse("...\n...")
	padded, _ := g.Pad(1)
	region, _ := padded.Region(1)
	f, _ := distfield.Build(padded, gridgraph.Point{Row: 1, Col: 1}, region)
	m, _ := heuristic.BuildMask(f, region)

	w, err := heuristic.Extract(m, gridgraph.Point{Row: 2, Col: 3}, 1)
	fmt.Println(w.Size, err)
	_, err = heuristic.Extract(m, gridgraph.Point{Row: 0, Col: 0}, 1)
	fmt.Println(err)
	// Output:
	// 3 <nil>
	// heuristic: position (0,0) outside margined region of radius 1 on 4x5 grid
}
