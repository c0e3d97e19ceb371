// Package gridgraph treats a 2D grid of cells as a graph, enabling
// region labelling and border analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable Threshold.
//   - Label assigns every passable cell (value ≥ Threshold) to a region.
//   - Each Region records whether it reaches the outer ring of the grid.
//
// Why:
//
//   - Enclosure tests: a region that never reaches the border is shut in
//     by walls.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - Label:               O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Threshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
