package looptrace

import "github.com/katalvlaran/pipeloop/pipegrid"

// move is the state key of the walker: what it stands on and how it got there.
type move struct {
	kind pipegrid.TileKind
	from pipegrid.Direction
}

// exits holds the single legal exit for every (kind, entry side) pair.
// Anything missing is a pipe that does not open toward the side it was
// entered from.
var exits = buildExits()

// buildExits derives the table from the connection set of each pipe kind:
// entering through one end leaves through the other.
func buildExits() map[move]pipegrid.Heading {
	kinds := []pipegrid.TileKind{
		pipegrid.Vertical, pipegrid.Horizontal,
		pipegrid.BendNE, pipegrid.BendNW, pipegrid.BendSW, pipegrid.BendSE,
	}
	sides := []pipegrid.Direction{
		pipegrid.FromAbove, pipegrid.FromBelow, pipegrid.FromLeft, pipegrid.FromRight,
	}
	m := make(map[move]pipegrid.Heading, 2*len(kinds))
	for _, k := range kinds {
		a, b, _ := k.Ends()
		for _, d := range sides {
			switch d.Side() {
			case a:
				m[move{k, d}] = b
			case b:
				m[move{k, d}] = a
			}
		}
	}
	return m
}

// entries is the canonical first approach for each resolved start shape.
var entries = map[pipegrid.TileKind]pipegrid.Direction{
	pipegrid.Vertical:   pipegrid.FromAbove,
	pipegrid.Horizontal: pipegrid.FromLeft,
	pipegrid.BendNE:     pipegrid.FromAbove,
	pipegrid.BendNW:     pipegrid.FromAbove,
	pipegrid.BendSW:     pipegrid.FromBelow,
	pipegrid.BendSE:     pipegrid.FromBelow,
}

// Exit returns the heading a walker leaves a tile of kind k through after
// entering it from d. ok is false when k does not open toward d.
func Exit(k pipegrid.TileKind, d pipegrid.Direction) (pipegrid.Heading, bool) {
	h, ok := exits[move{k, d}]
	return h, ok
}

// EntryFor returns the side a walk starting on a tile of kind k pretends to
// have come from. ok is false for Ground and unresolved Start.
func EntryFor(k pipegrid.TileKind) (pipegrid.Direction, bool) {
	d, ok := entries[k]
	return d, ok
}
