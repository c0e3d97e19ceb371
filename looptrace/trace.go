// Package looptrace walks the closed pipe loop of a pipegrid.Grid.
//
// The walker is a finite state machine over (position, entry side). At each
// tile the transition table gives the only legal exit; the next state is the
// neighbour toward that exit, entered from the opposite side. The walk stops
// when it returns to the tile it began on.
//
// Every tile entered is marked OnLoop on the grid passed in; nothing else in
// the grid is touched.
//
// Complexity:
//
//   - Time:   O(L) for a loop of L tiles, bounded by O(rows×cols).
//   - Memory: O(L) for the recorded steps.
package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Trace walks the loop from g.Start(). The start tile must already be
// resolved to a pipe shape; its canonical entry side comes from EntryFor.
// Returns ErrInvalidTopology for an unresolved start or a broken pipe,
// ErrUnterminatedLoop when the step limit is hit, ErrOptionViolation for bad
// options.
func Trace(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	start := g.Start()
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s outside grid", ErrInvalidTopology, start)
	}
	kind := g.Kind(start)
	entry, ok := EntryFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: start %s is %s, not a pipe", ErrInvalidTopology, start, kind)
	}
	return Walk(g, start, entry, opts...)
}

// Walk runs the state machine from an arbitrary tile, pretending it was
// entered from entry, until it comes back to from.
// The same errors as Trace apply.
func Walk(g *pipegrid.Grid, from pipegrid.Position, entry pipegrid.Direction, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %s outside grid", ErrInvalidTopology, from)
	}

	limit := o.StepLimit
	if limit == 0 {
		limit = g.Rows() * g.Cols()
	}

	res := &Result{Steps: make([]Step, 0, 2*(g.Rows()+g.Cols()))}
	pos, came := from, entry
	for {
		g.MarkLoop(pos)
		step := Step{Pos: pos, From: came}
		o.OnStep(step)

		if res.Length > 0 && pos == from {
			return res, nil
		}
		if res.Length >= limit {
			return nil, fmt.Errorf("%w: no return to %s after %d steps", ErrUnterminatedLoop, from, res.Length)
		}
		res.Steps = append(res.Steps, step)

		kind := g.Kind(pos)
		h, ok := Exit(kind, came)
		if !ok {
			return nil, fmt.Errorf("%w: %s at %s entered %s", ErrInvalidTopology, kind, pos, came)
		}
		next, ok := g.Neighbor(pos, h)
		if !ok {
			return nil, fmt.Errorf("%w: %s at %s leads %s off the grid", ErrInvalidTopology, kind, pos, h)
		}
		pos, came = next, pipegrid.Entering(h)
		res.Length++
	}
}
