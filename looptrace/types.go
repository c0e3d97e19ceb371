// Package looptrace defines options, results and sentinel errors for walking
// the single pipe loop of a pipegrid.Grid.
package looptrace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop tracing.
var (
	// ErrInvalidTopology is returned when the walker enters a tile from a side
	// the tile does not open toward, or is led off the grid.
	ErrInvalidTopology = errors.New("looptrace: invalid topology")

	// ErrUnterminatedLoop is returned when the walk exceeds its step limit
	// without coming back to where it began.
	ErrUnterminatedLoop = errors.New("looptrace: loop did not terminate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("looptrace: invalid option supplied")
)

// Option configures a walk via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks for a walk.
type Options struct {
	// StepLimit bounds the walk. 0 means rows×cols of the grid.
	StepLimit int

	// OnStep is called for every tile entered, in walk order,
	// including the first tile and the final return to it.
	OnStep func(s Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no explicit step limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		StepLimit: 0,
		OnStep:    func(Step) {},
	}
}

// WithStepLimit caps the number of moves before ErrUnterminatedLoop.
//
//	n > 0:  limit to n moves
//	n <= 0: invalid option → ErrOptionViolation
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: StepLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithOnStep registers a callback run as each tile is entered.
func WithOnStep(fn func(s Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Step is one state of the walk: the tile occupied and the side it was
// entered from.
type Step struct {
	Pos  pipegrid.Position
	From pipegrid.Direction
}

// Result holds the outcome of a completed walk.
//   - Length: number of moves taken to return to the first tile.
//   - Steps: the Length distinct states in walk order, starting with the
//     first tile (the closing return is not repeated).
type Result struct {
	Length int
	Steps  []Step
}

// Farthest returns the walk distance to the point of the loop farthest from
// the first tile. Loops on a square grid always have even length.
func (r *Result) Farthest() int {
	return r.Length / 2
}

// Positions returns the loop tiles in walk order.
func (r *Result) Positions() []pipegrid.Position {
	out := make([]pipegrid.Position, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Pos
	}
	return out
}
