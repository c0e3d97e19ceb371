package pipegrid

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from a text sketch, one line per row.
//
// Behavior:
//  1. Split on '\n', strip a trailing '\r' per line, drop trailing blank lines.
//  2. Map every rune through the symbol table; any other rune fails.
//  3. Require all rows to have the width of the first row.
//  4. Require exactly one 'S'.
//
// Returns ErrMalformedInput (wrapped with the offending row, column and rune)
// for empty, ragged or unknown input and for a missing start. More than one
// start fails with an error matching both ErrMalformedInput and
// ErrAmbiguousStart.
//
// Complexity: O(rows×cols) time and memory.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrMalformedInput)
	}

	g := &Grid{tiles: make([][]Tile, 0, len(lines))}
	width := -1
	starts := 0
	for r, line := range lines {
		row := make([]Tile, 0, len(line))
		for c, ch := range []rune(line) {
			kind, ok := KindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized symbol %q at %s",
					ErrMalformedInput, ch, Position{Row: r, Col: c})
			}
			pos := Position{Row: r, Col: c}
			if kind == Start {
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: %w: second start at %s (first at %s)",
						ErrMalformedInput, ErrAmbiguousStart, pos, g.start)
				}
				g.start = pos
			}
			row = append(row, Tile{Kind: kind, Pos: pos})
		}
		if width < 0 {
			width = len(row)
		}
		if len(row) == 0 || len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrMalformedInput, r, len(row), width)
		}
		g.tiles = append(g.tiles, row)
	}

	if starts == 0 {
		return nil, fmt.Errorf("%w: no start tile", ErrMalformedInput)
	}
	return g, nil
}

// ParseReader reads r to EOF and parses the result with Parse.
func ParseReader(r io.Reader) (*Grid, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pipegrid: read sketch: %w", err)
	}
	return Parse(string(b))
}
