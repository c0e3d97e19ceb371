// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Label
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Label demonstrates how connectivity decides whether a
// cell boxed in by walls on its four sides is enclosed.
// Scenario:
//
//   - Grid values: 0 = wall, 1 = open
//   - The center cell has walls N/E/S/W but an open diagonal to the NE.
//   - Conn4: the center is its own region, away from the border.
//   - Conn8: the center leaks out through the diagonal.
//
// Complexity: O(W·H·d), Memory: O(W·H)
func ExampleGridGraph_Label() {
	grid := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
	for _, conn := range []struct {
		name string
		c    gridgraph.Connectivity
	}{{"conn4", gridgraph.Conn4}, {"conn8", gridgraph.Conn8}} {
		gg, _ := gridgraph.From2D(grid, conn.c)
		l := gg.Label()
		for _, r := range l.Regions {
			fmt.Printf("%s: region %d size=%d border=%t\n", conn.name, r.ID, len(r.Cells), r.TouchesBorder)
		}
	}

	// Output:
	// conn4: region 1 size=18 border=true
	// conn4: region 2 size=1 border=false
	// conn8: region 1 size=19 border=true
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents lists the cells of each region.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// component 0: (0,0) (1,0)
	// component 1: (3,0) (3,1)
}
