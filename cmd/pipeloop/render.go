package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supersample"
)

// Marks drawn for open tiles.
const (
	markOutside = 'O'
	markInside  = 'I'
)

var (
	colorLoop    = lipgloss.Color("#2CD7C7")
	colorInside  = lipgloss.Color("#F4D03F")
	colorOutside = lipgloss.Color("#2C4A54")
)

// palette styles each class of cell. The zero palette renders plain text.
type palette struct {
	loop, inside, outside lipgloss.Style
	enabled               bool
}

func newPalette(color bool) palette {
	return palette{
		loop:    lipgloss.NewStyle().Foreground(colorLoop).Bold(true),
		inside:  lipgloss.NewStyle().Foreground(colorInside).Bold(true),
		outside: lipgloss.NewStyle().Foreground(colorOutside),
		enabled: color,
	}
}

func (p palette) paint(s lipgloss.Style, r rune) string {
	if !p.enabled {
		return string(r)
	}
	return s.Render(string(r))
}

// renderGrid draws g one row per line: loop tiles as their pipe symbol,
// everything else as I or O. locate maps a tile to the classified cell that
// decides it.
func renderGrid(w io.Writer, g *pipegrid.Grid, c *enclosure.Classification, p palette, locate func(pipegrid.Position) pipegrid.Position) error {
	var sb strings.Builder
	col := 0
	g.Each(func(t pipegrid.Tile) {
		switch {
		case t.OnLoop:
			sb.WriteString(p.paint(p.loop, t.Kind.Rune()))
		case c.Enclosed(locate(t.Pos)):
			sb.WriteString(p.paint(p.inside, markInside))
		default:
			sb.WriteString(p.paint(p.outside, markOutside))
		}
		col++
		if col == g.Cols() {
			sb.WriteByte('\n')
			col = 0
		}
	})
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderOriginal draws the sketch with every open tile marked by the
// region at the center of its block.
func renderOriginal(w io.Writer, g *pipegrid.Grid, c *enclosure.Classification, p palette) error {
	return renderGrid(w, g, c, p, supersample.CenterOf)
}

// renderScaled draws the supersampled grid cell by cell.
func renderScaled(w io.Writer, ss *pipegrid.Grid, c *enclosure.Classification, p palette) error {
	return renderGrid(w, ss, c, p, func(pos pipegrid.Position) pipegrid.Position { return pos })
}
