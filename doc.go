// Package pipeloop measures the single closed pipe loop of a sketch and counts
// the tiles it encloses.
//
// What is in the box?
//
//	A small pipeline of pure, single-goroutine stages:
//		• pipegrid/   : tiles, positions, parsing, start-shape inference
//		• looptrace/  : the loop walker (table-driven state machine)
//		• supersample/: 3× stencil expansion that opens diagonal gaps
//		• gridgraph/  : explicit-queue region labelling over [][]int
//		• enclosure/  : 8-connected flood fill + projection back to tiles
//
// Why supersample?
//
//	Two pipes that meet only at a corner leave no tile between them, so a
//	flood fill on the original grid either stops short (4-connected) or
//	leaks straight through the loop (8-connected). Tripling the resolution
//	turns every such corner into an open cell and keeps the loop a closed
//	wall, so the 8-connected fill is exact.
//
// Quick ASCII example:
//
//	.....
//	.S-7.      loop length 8
//	.|.|.      farthest   4
//	.L-J.      enclosed   1
//	.....
//
// Entry points: Solve for text, SolveGrid for an already parsed grid.
// The command in cmd/pipeloop wraps both for files and stdin.
package pipeloop
