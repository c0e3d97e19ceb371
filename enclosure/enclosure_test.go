package enclosure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supersample"
)

// prepared runs the stages up to supersampling.
func prepared(t *testing.T, sketch string) (orig, scaled *pipegrid.Grid, length int) {
	t.Helper()
	g, err := pipegrid.Parse(sketch)
	require.NoError(t, err)
	_, err = g.ResolveStart()
	require.NoError(t, err)
	res, err := looptrace.Trace(g)
	require.NoError(t, err)
	return g, supersample.Supersample(g), res.Length
}

// TestClassify_Square finds one exterior and one interior region.
func TestClassify_Square(t *testing.T) {
	_, ss, _ := prepared(t, ".....\n.S-7.\n.|.|.\n.L-J.\n.....")

	c, err := enclosure.Classify(ss)
	require.NoError(t, err)
	require.Len(t, c.Regions, 2)

	outside, ok := c.RegionAt(pipegrid.Position{Row: 0, Col: 0})
	require.True(t, ok)
	inside, ok := c.RegionAt(supersample.CenterOf(pipegrid.Position{Row: 2, Col: 2}))
	require.True(t, ok)

	assert.Equal(t, 1, outside, "row-major seeding labels the corner first")
	assert.NotEqual(t, outside, inside)
	assert.True(t, c.Exterior(outside))
	assert.False(t, c.Exterior(inside))
	assert.True(t, c.Enclosed(supersample.CenterOf(pipegrid.Position{Row: 2, Col: 2})))
	assert.False(t, c.Enclosed(pipegrid.Position{Row: 0, Col: 0}))
}

// TestClassify_LoopCellsUnlabelled keeps walls out of every region.
func TestClassify_LoopCellsUnlabelled(t *testing.T) {
	_, ss, _ := prepared(t, "S7\nLJ")

	c, err := enclosure.Classify(ss)
	require.NoError(t, err)

	ss.Each(func(tile pipegrid.Tile) {
		id, ok := c.RegionAt(tile.Pos)
		if tile.OnLoop {
			assert.False(t, ok)
			assert.Zero(t, id)
		} else {
			assert.True(t, ok, "open cell %s", tile.Pos)
		}
	})
	assert.False(t, c.Enclosed(supersample.CenterOf(pipegrid.Position{Row: 0, Col: 0})), "loop centers are never enclosed")
}

// TestClassify_OutOfBounds reports nothing outside the grid.
func TestClassify_OutOfBounds(t *testing.T) {
	_, ss, _ := prepared(t, "S7\nLJ")
	c, err := enclosure.Classify(ss)
	require.NoError(t, err)

	for _, p := range []pipegrid.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 6, Col: 0}, {Row: 0, Col: 6}} {
		_, ok := c.RegionAt(p)
		assert.False(t, ok, "position %s", p)
	}
}

// TestClassify_Empty rejects a grid with no cells.
func TestClassify_Empty(t *testing.T) {
	_, err := enclosure.Classify(pipegrid.New(0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestProject_Square counts the single middle tile.
func TestProject_Square(t *testing.T) {
	g, ss, length := prepared(t, ".....\n.S-7.\n.|.|.\n.L-J.\n.....")
	c, err := enclosure.Classify(ss)
	require.NoError(t, err)

	rep := enclosure.Project(g, c, length)
	assert.Equal(t, enclosure.Report{
		LoopLength:    8,
		Farthest:      4,
		Enclosed:      1,
		EnclosedTiles: []pipegrid.Position{{Row: 2, Col: 2}},
	}, rep)
}

// TestProject_JunkInside counts junk pipe tiles inside the loop as enclosed.
func TestProject_JunkInside(t *testing.T) {
	g, ss, length := prepared(t, "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF")
	c, err := enclosure.Classify(ss)
	require.NoError(t, err)

	rep := enclosure.Project(g, c, length)
	assert.Equal(t, 1, rep.Enclosed)
	assert.Equal(t, []pipegrid.Position{{Row: 2, Col: 2}}, rep.EnclosedTiles)
	assert.Equal(t, pipegrid.BendSW, g.Kind(pipegrid.Position{Row: 2, Col: 2}))
}
