// Package supersample triples the resolution of a traced pipegrid.Grid so that
// a diagonal gap between two pipes becomes a full open cell.
//
// Each original tile becomes a 3×3 block. Loop tiles are stamped with their
// stencil: the block center carries the tile's own kind and the middle cell
// of every edge the tile connects through carries a straight segment, so
// adjacent blocks join up exactly where the pipes did. Corners are always
// Ground. Tiles off the loop, junk pipes included, become all-Ground blocks.
//
//	|     .|.     -     ...     L     .|.     F     ...
//	   →  .|.        →  ---        →  .L-        →  .F-
//	      .|.           ...           ...           .|.
//
// Complexity: O(9×rows×cols) time and memory.
package supersample

import "github.com/katalvlaran/pipeloop/pipegrid"

// Scale is the supersampling factor along each axis.
const Scale = 3

// Stencil returns the 3×3 block a tile of kind k is stamped with.
// Non-pipe kinds yield an all-Ground block.
func Stencil(k pipegrid.TileKind) [Scale][Scale]pipegrid.TileKind {
	var s [Scale][Scale]pipegrid.TileKind
	a, b, ok := k.Ends()
	if !ok {
		return s
	}
	s[1][1] = k
	for _, h := range []pipegrid.Heading{a, b} {
		switch h {
		case pipegrid.North:
			s[0][1] = pipegrid.Vertical
		case pipegrid.South:
			s[2][1] = pipegrid.Vertical
		case pipegrid.East:
			s[1][2] = pipegrid.Horizontal
		case pipegrid.West:
			s[1][0] = pipegrid.Horizontal
		}
	}
	return s
}

// CenterOf maps an original position to the center of its block.
func CenterOf(p pipegrid.Position) pipegrid.Position {
	return pipegrid.Position{Row: Scale*p.Row + 1, Col: Scale*p.Col + 1}
}

// Supersample returns a new grid Scale times larger in each axis, with every
// loop tile of g stamped by its stencil and marked OnLoop. The start moves to
// the center of its block. g is not modified and the loop is not re-walked:
// membership comes only from g's OnLoop flags.
func Supersample(g *pipegrid.Grid) *pipegrid.Grid {
	out := pipegrid.New(Scale*g.Rows(), Scale*g.Cols())
	out.SetStart(CenterOf(g.Start()))

	g.Each(func(t pipegrid.Tile) {
		if !t.OnLoop {
			return
		}
		s := Stencil(t.Kind)
		base := pipegrid.Position{Row: Scale * t.Pos.Row, Col: Scale * t.Pos.Col}
		for dr := 0; dr < Scale; dr++ {
			for dc := 0; dc < Scale; dc++ {
				if s[dr][dc] == pipegrid.Ground {
					continue
				}
				p := pipegrid.Position{Row: base.Row + dr, Col: base.Col + dc}
				out.SetKind(p, s[dr][dc])
				out.MarkLoop(p)
			}
		}
	})
	return out
}
