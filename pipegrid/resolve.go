package pipegrid

import "fmt"

// headingPair is an unordered pair of headings, stored in Headings order.
type headingPair [2]Heading

// pairKinds maps the two headings a start tile connects to its real shape.
var pairKinds = map[headingPair]TileKind{
	{North, South}: Vertical,
	{East, West}:   Horizontal,
	{North, East}:  BendNE,
	{North, West}:  BendNW,
	{South, West}:  BendSW,
	{South, East}:  BendSE,
}

// ResolveStart replaces the start tile with the pipe shape implied by its
// neighbours and returns that shape.
//
// A neighbour toward heading h connects when its own kind has an opening
// toward h.Opposite(), i.e. back into the start tile. Exactly two of the four
// headings must connect; the pair picks the kind. Any other count yields
// ErrAmbiguousStart and leaves the grid untouched.
//
// The start tile's current kind is never consulted, so resolving twice gives
// the same answer. Start() is unchanged.
// Complexity: O(1).
func (g *Grid) ResolveStart() (TileKind, error) {
	s := g.start
	if !g.InBounds(s) {
		return Ground, fmt.Errorf("%w: start %s outside %dx%d grid", ErrAmbiguousStart, s, g.Rows(), g.Cols())
	}

	var open []Heading
	for _, h := range Headings {
		n, ok := g.Neighbor(s, h)
		if !ok {
			continue
		}
		if g.Kind(n).Connects(h.Opposite()) {
			open = append(open, h)
		}
	}
	if len(open) != 2 {
		return Ground, fmt.Errorf("%w: start %s has %d connecting neighbours %v, want 2",
			ErrAmbiguousStart, s, len(open), open)
	}

	kind, ok := pairKinds[headingPair{open[0], open[1]}]
	if !ok {
		// unreachable: Headings order makes every pair a table key
		return Ground, fmt.Errorf("%w: no shape for %v", ErrAmbiguousStart, open)
	}
	g.SetKind(s, kind)
	return kind, nil
}
