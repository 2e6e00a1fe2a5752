// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components demonstrates how to identify 4-connected regions of
// free cells and query reachability between them.
// Scenario:
//
//   - A wall in column 2 splits the map into a left and a right room.
//   - Cells of the same room share a label; cells across the wall do not.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_Components() {
	g, _ := gridgraph.Parse(`
..#..
..#..
..#..
`)
	cm := g.Components()
	fmt.Println("components:", cm.Len())
	fmt.Println("left room:", len(cm.Members(gridgraph.Point{Row: 0, Col: 0})))
	fmt.Println("same room:", cm.Same(gridgraph.Point{Row: 0, Col: 0}, gridgraph.Point{Row: 2, Col: 1}))
	fmt.Println("across wall:", cm.Same(gridgraph.Point{Row: 0, Col: 0}, gridgraph.Point{Row: 0, Col: 4}))

	// Output:
	// components: 2
	// left room: 6
	// same room: true
	// across wall: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Pad
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Pad shows that padding by the observation radius moves every
// unpadded cell into the margined region.
func ExampleGrid_Pad() {
	g, _ := gridgraph.Parse("...\n...")
	padded, _ := g.Pad(1)
	region, _ := padded.Region(1)

	fmt.Printf("%dx%d -> %dx%d\n", g.Height, g.Width, padded.Height, padded.Width)
	fmt.Println(region.Contains(gridgraph.Point{Row: 0, Col: 0}.Add(gridgraph.Point{Row: 1, Col: 1})))
	fmt.Println(region.Contains(gridgraph.Point{Row: 0, Col: 0}))

	// Output:
	// 2x3 -> 4x5
	// true
	// false
}
