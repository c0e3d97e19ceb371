package pipegrid

import "strings"

// Grid is a rectangular sketch of tiles with a single start position.
// Rows are stored top to bottom, columns left to right.
type Grid struct {
	tiles [][]Tile
	start Position
}

// New builds an all-Ground grid of the given size with start at the origin.
// Non-positive sizes yield an empty grid.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	tiles := make([][]Tile, rows)
	for r := 0; r < rows; r++ {
		row := make([]Tile, cols)
		for c := range row {
			row[c] = Tile{Kind: Ground, Pos: Position{Row: r, Col: c}}
		}
		tiles[r] = row
	}
	return &Grid{tiles: tiles}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.tiles) }

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if len(g.tiles) == 0 {
		return 0
	}
	return len(g.tiles[0])
}

// Start returns the start position. It does not change when the start tile
// is resolved to its real shape.
func (g *Grid) Start() Position { return g.start }

// SetStart moves the start marker without touching any tile.
func (g *Grid) SetStart(p Position) { g.start = p }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Position) Tile { return g.tiles[p.Row][p.Col] }

// Kind returns the kind of the tile at p. p must be in bounds.
func (g *Grid) Kind(p Position) TileKind { return g.tiles[p.Row][p.Col].Kind }

// SetKind replaces the kind of the tile at p. p must be in bounds.
func (g *Grid) SetKind(p Position, k TileKind) { g.tiles[p.Row][p.Col].Kind = k }

// MarkLoop flags the tile at p as part of the loop. p must be in bounds.
func (g *Grid) MarkLoop(p Position) { g.tiles[p.Row][p.Col].OnLoop = true }

// OnLoop reports whether the tile at p was marked as part of the loop.
func (g *Grid) OnLoop(p Position) bool { return g.tiles[p.Row][p.Col].OnLoop }

// Neighbor returns the position one step from p toward h.
// ok is false when that step leaves the grid.
func (g *Grid) Neighbor(p Position, h Heading) (Position, bool) {
	dr, dc := h.offset()
	n := Position{Row: p.Row + dr, Col: p.Col + dc}
	if !g.InBounds(n) {
		return Position{}, false
	}
	return n, true
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(t Tile)) {
	for _, row := range g.tiles {
		for _, t := range row {
			fn(t)
		}
	}
}

// LoopSize counts the tiles currently marked as part of the loop.
func (g *Grid) LoopSize() int {
	n := 0
	g.Each(func(t Tile) {
		if t.OnLoop {
			n++
		}
	})
	return n
}

// Clone returns a deep copy of g.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, len(g.tiles))
	for r, row := range g.tiles {
		tiles[r] = make([]Tile, len(row))
		copy(tiles[r], row)
	}
	return &Grid{tiles: tiles, start: g.start}
}

// String renders the grid back to its sketch symbols, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r, row := range g.tiles {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Kind.Rune())
		}
	}
	return sb.String()
}
