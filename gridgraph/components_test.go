// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = open, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” regions.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single region.
// Expect: 1 component of size 9.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}

	// Same grid under Conn4: every cell is isolated.
	gg4, _ := From2D(grid, Conn4)
	if n := len(gg4.ConnectedComponents()); n != 9 {
		t.Errorf("Conn4 components = %d; want 9", n)
	}
}

// TestConnectedComponents_EmptyAndAllWalls tests edge cases:
//   - all-wall grid → zero components
//   - single open cell → one component of size 1
func TestConnectedComponents_EmptyAndAllWalls(t *testing.T) {
	grid1 := [][]int{
		{0, 0},
		{0, 0},
	}
	gg1, _ := From2D(grid1, Conn4)
	comps1 := gg1.ConnectedComponents()
	if len(comps1) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps1))
	}

	grid2 := [][]int{{0, 1}}
	gg2, _ := From2D(grid2, Conn4)
	comps2 := gg2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single open: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 {
		t.Errorf("single open: component size = %d; want 1", len(comps2[0]))
	}
}

// TestLabel_Border checks TouchesBorder and the per-cell labels on a ring
// of walls around one open cell.
//
//	1 1 1 1 1
//	1 0 0 0 1
//	1 0 1 0 1
//	1 0 0 0 1
//	1 1 1 1 1
func TestLabel_Border(t *testing.T) {
	grid := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	l := gg.Label()
	if len(l.Regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(l.Regions))
	}
	outer, inner := l.Regions[0], l.Regions[1]
	if outer.ID != 1 || !outer.TouchesBorder || len(outer.Cells) != 16 {
		t.Errorf("outer = {ID:%d border:%t size:%d}; want {1 true 16}", outer.ID, outer.TouchesBorder, len(outer.Cells))
	}
	if inner.ID != 2 || inner.TouchesBorder || len(inner.Cells) != 1 {
		t.Errorf("inner = {ID:%d border:%t size:%d}; want {2 false 1}", inner.ID, inner.TouchesBorder, len(inner.Cells))
	}
	if got := l.Labels[2][2]; got != 2 {
		t.Errorf("Labels[2][2] = %d; want 2", got)
	}
	if got := l.Labels[1][1]; got != 0 {
		t.Errorf("wall Labels[1][1] = %d; want 0", got)
	}
	if r, ok := l.Region(2); !ok || r.ID != 2 {
		t.Errorf("Region(2) = %v, %t", r, ok)
	}
	if _, ok := l.Region(3); ok {
		t.Error("Region(3) must not exist")
	}
}

// TestLabel_Threshold treats values below Threshold as walls.
func TestLabel_Threshold(t *testing.T) {
	grid := [][]int{{5, 2, 5}}
	gg, err := NewGridGraph(grid, GridOptions{Threshold: 3, Conn: Conn4})
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	if n := len(gg.Label().Regions); n != 2 {
		t.Errorf("regions = %d; want 2", n)
	}
}

// TestLabel_Partition gives every open cell exactly one region and the
// region lists agree with the label grid.
func TestLabel_Partition(t *testing.T) {
	grid := [][]int{
		{1, 0, 1, 1, 0, 1},
		{0, 1, 0, 0, 1, 1},
		{1, 1, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 0},
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		gg, _ := From2D(grid, conn)
		l := gg.Label()

		seen := make(map[int]int)
		for _, r := range l.Regions {
			for _, idx := range r.Cells {
				seen[idx]++
				x, y := gg.Coordinate(idx)
				if l.Labels[y][x] != r.ID {
					t.Errorf("conn %d: cell (%d,%d) labelled %d, listed in %d", conn, x, y, l.Labels[y][x], r.ID)
				}
			}
		}
		for y, row := range grid {
			for x, v := range row {
				n := seen[gg.index(x, y)]
				if v >= 1 && n != 1 {
					t.Errorf("conn %d: open cell (%d,%d) in %d regions", conn, x, y, n)
				}
				if v < 1 && (n != 0 || l.Labels[y][x] != 0) {
					t.Errorf("conn %d: wall (%d,%d) labelled", conn, x, y)
				}
			}
		}
	}
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	if _, err := From2D(nil, Conn4); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]int{{1}, {}}, Conn4); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}
