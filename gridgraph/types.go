// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pipeloop.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Threshold specifies the minimum cell value considered passable.
	// Cells below it are walls: never labelled, never crossed.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Threshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	Threshold       int
	neighborOffsets [][2]int
}

// Region is one maximal connected set of passable cells.
//   - ID: 1-based, assigned in row-major order of each region's first cell.
//   - Cells: row-major cell indices in BFS visit order.
//   - TouchesBorder: some cell lies on row 0, the last row, column 0 or the
//     last column.
type Region struct {
	ID            int
	Cells         []int
	TouchesBorder bool
}

// Labeling pairs the regions of a grid with a per-cell lookup.
// Labels[y][x] is the ID of the region holding (x,y), or 0 for a wall.
type Labeling struct {
	Labels  [][]int
	Regions []Region
}

// Region returns the region with the given ID.
func (l *Labeling) Region(id int) (Region, bool) {
	if id < 1 || id > len(l.Regions) {
		return Region{}, false
	}
	return l.Regions[id-1], true
}
