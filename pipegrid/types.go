package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and start resolution.
var (
	// ErrMalformedInput indicates the sketch is not a valid rectangular grid.
	ErrMalformedInput = errors.New("pipegrid: malformed input")

	// ErrAmbiguousStart indicates the start tile's shape cannot be inferred.
	ErrAmbiguousStart = errors.New("pipegrid: ambiguous start")
)

// Position identifies a grid cell by row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Heading is a cardinal direction a pipe can connect through.
type Heading int

const (
	North Heading = iota
	South
	East
	West
)

// Headings lists the four cardinal headings in lookup order.
var Headings = [4]Heading{North, South, East, West}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// offset returns the (row, col) delta of one step toward h.
func (h Heading) offset() (dr, dc int) {
	switch h {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// Direction is the side a walker entered the current tile from.
type Direction int

const (
	FromAbove Direction = iota
	FromBelow
	FromLeft
	FromRight
)

// Side returns the heading of the tile edge the walker came through.
func (d Direction) Side() Heading {
	switch d {
	case FromAbove:
		return North
	case FromBelow:
		return South
	case FromLeft:
		return West
	default:
		return East
	}
}

// Entering returns what the next tile sees after a move toward h:
// moving north enters the next tile from below.
func Entering(h Heading) Direction {
	switch h {
	case North:
		return FromBelow
	case South:
		return FromAbove
	case East:
		return FromLeft
	default:
		return FromRight
	}
}

func (d Direction) String() string {
	switch d {
	case FromAbove:
		return "from above"
	case FromBelow:
		return "from below"
	case FromLeft:
		return "from left"
	case FromRight:
		return "from right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// TileKind is the shape of a single tile.
type TileKind int

const (
	Ground TileKind = iota
	Vertical
	Horizontal
	BendNE
	BendNW
	BendSW
	BendSE
	Start
)

// kindRunes maps each kind to its sketch symbol.
var kindRunes = map[TileKind]rune{
	Vertical:   '|',
	Horizontal: '-',
	BendNE:     'L',
	BendNW:     'J',
	BendSW:     '7',
	BendSE:     'F',
	Ground:     '.',
	Start:      'S',
}

// runeKinds is the inverse of kindRunes, built once.
var runeKinds = func() map[rune]TileKind {
	m := make(map[rune]TileKind, len(kindRunes))
	for k, r := range kindRunes {
		m[r] = k
	}
	return m
}()

// connections lists the two headings each pipe kind joins.
var connections = map[TileKind][2]Heading{
	Vertical:   {North, South},
	Horizontal: {East, West},
	BendNE:     {North, East},
	BendNW:     {North, West},
	BendSW:     {South, West},
	BendSE:     {South, East},
}

// KindOf returns the kind for a sketch symbol.
func KindOf(r rune) (TileKind, bool) {
	k, ok := runeKinds[r]
	return k, ok
}

// Rune returns the sketch symbol of k.
func (k TileKind) Rune() rune {
	if r, ok := kindRunes[k]; ok {
		return r
	}
	return '?'
}

func (k TileKind) String() string {
	switch k {
	case Ground:
		return "Ground"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case BendNE:
		return "BendNE"
	case BendNW:
		return "BendNW"
	case BendSW:
		return "BendSW"
	case BendSE:
		return "BendSE"
	case Start:
		return "Start"
	default:
		return fmt.Sprintf("TileKind(%d)", int(k))
	}
}

// IsPipe reports whether k is one of the six known pipe shapes.
// Start is not a pipe until resolved.
func (k TileKind) IsPipe() bool {
	_, ok := connections[k]
	return ok
}

// Ends returns the two headings k connects. ok is false for Ground and Start.
func (k TileKind) Ends() (a, b Heading, ok bool) {
	c, ok := connections[k]
	return c[0], c[1], ok
}

// Connects reports whether k has an opening toward h.
func (k TileKind) Connects(h Heading) bool {
	c, ok := connections[k]
	return ok && (c[0] == h || c[1] == h)
}

// Tile is one cell of the grid.
// OnLoop is set by the loop tracer for every tile it walks through.
type Tile struct {
	Kind   TileKind
	Pos    Position
	OnLoop bool
}
