// Package pipegrid models a rectangular sketch of pipe segments: the tiles,
// their positions, the single start marker, and the cardinal headings pipes
// connect through.
//
// What:
//
//   - Parse turns a text block of | - L J 7 F . S into a *Grid.
//   - Grid.Neighbor gives bounds-checked cardinal lookups (no wrapping).
//   - Grid.ResolveStart infers the pipe hidden under the S marker from the
//     neighbours that connect back into it.
//
// Symbols:
//
//	|  Vertical    north ↔ south
//	-  Horizontal  east ↔ west
//	L  BendNE      north ↔ east
//	J  BendNW      north ↔ west
//	7  BendSW      south ↔ west
//	F  BendSE      south ↔ east
//	.  Ground      no pipe
//	S  Start       pipe of unknown shape
//
// Errors:
//
//   - ErrMalformedInput: empty grid, unknown rune, ragged rows, no start.
//   - ErrAmbiguousStart: start does not have exactly two connecting
//     neighbours, or the sketch holds more than one start.
package pipegrid
