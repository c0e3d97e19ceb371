package pipeloop

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supersample"
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the knobs of a pipeline run.
type Options struct {
	// Logger receives one Debug record per stage. Defaults to a discard logger.
	Logger *slog.Logger

	// StepLimit bounds the loop walk. 0 means rows×cols.
	StepLimit int
}

// DefaultOptions returns Options with a discarding logger and no explicit
// step limit.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		StepLimit: 0,
	}
}

// WithLogger routes stage logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStepLimit caps the loop walk; see looptrace.WithStepLimit.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		o.StepLimit = n
	}
}

// Outcome is the report plus every intermediate artefact, for rendering.
//   - Grid: the original sketch, start resolved, loop marked.
//   - Scaled: the supersampled image of the loop.
//   - Classification: regions of Scaled.
type Outcome struct {
	enclosure.Report
	Grid           *pipegrid.Grid
	Scaled         *pipegrid.Grid
	Classification *enclosure.Classification
}

// Solve parses text and runs the whole pipeline on it.
func Solve(text string, opts ...Option) (*Outcome, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return nil, err
	}
	return SolveGrid(g, opts...)
}

// SolveGrid runs resolve → trace → supersample → classify → project on g.
// g is consumed: its start tile is replaced and its loop tiles are marked.
//
// Errors come straight from the stages and match pipegrid.ErrAmbiguousStart,
// looptrace.ErrInvalidTopology, looptrace.ErrUnterminatedLoop or
// looptrace.ErrOptionViolation under errors.Is.
func SolveGrid(g *pipegrid.Grid, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	kind, err := g.ResolveStart()
	if err != nil {
		return nil, err
	}
	log.Debug("start resolved",
		slog.String("position", g.Start().String()),
		slog.String("kind", kind.String()))

	var traceOpts []looptrace.Option
	if o.StepLimit != 0 {
		traceOpts = append(traceOpts, looptrace.WithStepLimit(o.StepLimit))
	}
	loop, err := looptrace.Trace(g, traceOpts...)
	if err != nil {
		return nil, err
	}
	log.Debug("loop traced",
		slog.Int("length", loop.Length),
		slog.Int("farthest", loop.Farthest()))

	scaled := supersample.Supersample(g)
	log.Debug("grid supersampled",
		slog.Int("rows", scaled.Rows()),
		slog.Int("cols", scaled.Cols()),
		slog.Int("loop_cells", scaled.LoopSize()))

	cls, err := enclosure.Classify(scaled)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: %w", err)
	}
	exterior := 0
	for _, ext := range cls.Regions {
		if ext {
			exterior++
		}
	}
	log.Debug("regions labelled",
		slog.Int("regions", len(cls.Regions)),
		slog.Int("exterior", exterior))

	rep := enclosure.Project(g, cls, loop.Length)
	log.Debug("tiles projected", slog.Int("enclosed", rep.Enclosed))

	return &Outcome{
		Report:         rep,
		Grid:           g,
		Scaled:         scaled,
		Classification: cls,
	}, nil
}
