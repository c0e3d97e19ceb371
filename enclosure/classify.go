// Package enclosure decides which tiles of a pipe sketch the loop encloses.
//
// Classify labels the open space of a supersampled grid with 8-connected
// regions; a region is exterior when it reaches the grid border. Project
// maps those regions back onto the original tiles through the center cell of
// each 3×3 block and counts the enclosed ones.
//
// Loop cells are walls: they are never labelled and never crossed. Because
// supersampling leaves a full open cell between pipes that only touch at a
// corner, 8-connectivity cannot leak through the loop.
package enclosure

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// open and wall are the cell values handed to gridgraph.
const (
	wall = 0
	open = 1
)

// Classification holds the regions of a supersampled grid.
//   - Labels[r][c]: region ID of cell (r,c), 0 for loop cells.
//   - Regions: region ID → whether it touches the border.
type Classification struct {
	Labels  [][]int
	Regions map[int]bool
}

// Classify labels every non-loop cell of ss with an 8-connected region ID,
// seeding in row-major order, and records which regions reach the border.
// ss is not modified. Returns gridgraph.ErrEmptyGrid for an empty grid.
// Complexity: O(8×rows×cols) time, O(rows×cols) memory.
func Classify(ss *pipegrid.Grid) (*Classification, error) {
	values := make([][]int, ss.Rows())
	for r := range values {
		values[r] = make([]int, ss.Cols())
	}
	ss.Each(func(t pipegrid.Tile) {
		if t.OnLoop {
			values[t.Pos.Row][t.Pos.Col] = wall
		} else {
			values[t.Pos.Row][t.Pos.Col] = open
		}
	})

	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Threshold: open, Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("enclosure: classify: %w", err)
	}
	l := gg.Label()

	c := &Classification{
		Labels:  l.Labels,
		Regions: make(map[int]bool, len(l.Regions)),
	}
	for _, r := range l.Regions {
		c.Regions[r.ID] = r.TouchesBorder
	}
	return c, nil
}

// RegionAt returns the region ID of the cell at p. ok is false for loop
// cells and positions outside the grid.
func (c *Classification) RegionAt(p pipegrid.Position) (id int, ok bool) {
	if p.Row < 0 || p.Row >= len(c.Labels) || p.Col < 0 || p.Col >= len(c.Labels[p.Row]) {
		return 0, false
	}
	id = c.Labels[p.Row][p.Col]
	return id, id != 0
}

// Exterior reports whether region id reaches the border.
func (c *Classification) Exterior(id int) bool {
	return c.Regions[id]
}

// Enclosed reports whether the cell at p is open space shut in by the loop.
func (c *Classification) Enclosed(p pipegrid.Position) bool {
	id, ok := c.RegionAt(p)
	return ok && !c.Exterior(id)
}
