package enclosure

import (
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supersample"
)

// Report is the final answer for one sketch.
type Report struct {
	LoopLength    int                 `yaml:"loop_length"`
	Farthest      int                 `yaml:"farthest"`
	Enclosed      int                 `yaml:"enclosed"`
	EnclosedTiles []pipegrid.Position `yaml:"-"`
}

// Project counts the original tiles the loop encloses. orig must carry the
// loop marks of the trace that produced loopLength; c must classify the
// supersampled image of orig. A tile off the loop is enclosed when the center
// of its block lies in a region that never reaches the border.
// EnclosedTiles lists them in row-major order.
func Project(orig *pipegrid.Grid, c *Classification, loopLength int) Report {
	rep := Report{
		LoopLength: loopLength,
		Farthest:   loopLength / 2,
	}
	orig.Each(func(t pipegrid.Tile) {
		if t.OnLoop {
			return
		}
		if c.Enclosed(supersample.CenterOf(t.Pos)) {
			rep.EnclosedTiles = append(rep.EnclosedTiles, t.Pos)
		}
	})
	rep.Enclosed = len(rep.EnclosedTiles)
	return rep
}
