// Command pipeloop measures the pipe loop in a sketch and counts the tiles it
// encloses.
//
// Usage:
//
//	pipeloop input.txt
//	pipeloop < input.txt
//	pipeloop --render --color input.txt
//	pipeloop --format yaml --config pipeloop.yaml input.txt
//
// Config file (all keys optional):
//
//	log_level: debug
//	format: text
//	step_limit: 0
//	render:
//	  original: true
//	  scaled: false
//	  color: true
//
// Env fallbacks: PIPELOOP_CONFIG, PIPELOOP_LOG_LEVEL, PIPELOOP_FORMAT,
// PIPELOOP_STEP_LIMIT, PIPELOOP_COLOR. Flags win over env, env over file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// flags holds the raw command-line values before they are merged with Config.
type flags struct {
	configPath   string
	logLevel     string
	format       string
	stepLimit    int
	render       bool
	renderScaled bool
	color        bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command to the given streams so tests can drive it.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "pipeloop [sketch file]",
		Short: "Measure the pipe loop in a sketch and count the tiles it encloses",
		Long: `pipeloop reads a grid of | - L J 7 F . S symbols, follows the single
closed loop through S, and reports its length, the distance to its farthest
point, and how many tiles it encloses. With no file (or "-") it reads stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(f.configPath)
			if err != nil {
				fmt.Fprintln(stderr, "pipeloop:", err)
				return err
			}
			f.mergeInto(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(stderr, "pipeloop:", err)
				return err
			}
			lvl, _ := cfg.Level()
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

			if err := run(cfg, args, stdin, stdout, logger); err != nil {
				logger.Error("pipeloop failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVarP(&f.format, "format", "f", "", "report format: text or yaml")
	fl.IntVar(&f.stepLimit, "step-limit", 0, "maximum loop walk length (0 = rows×cols)")
	fl.BoolVarP(&f.render, "render", "r", false, "draw the sketch with I/O marks")
	fl.BoolVar(&f.renderScaled, "render-scaled", false, "draw the supersampled grid with I/O marks")
	fl.BoolVar(&f.color, "color", false, "colour the rendered grids")
	return cmd
}

// mergeInto copies every flag the user set over cfg.
func (f flags) mergeInto(cmd *cobra.Command, cfg *Config) {
	fl := cmd.Flags()
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("step-limit") {
		cfg.StepLimit = f.stepLimit
	}
	if fl.Changed("render") {
		cfg.Render.Original = f.render
	}
	if fl.Changed("render-scaled") {
		cfg.Render.Scaled = f.renderScaled
	}
	if fl.Changed("color") {
		cfg.Render.Color = f.color
	}
}

// run reads the sketch, solves it, and writes the report and any renders.
func run(cfg Config, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	src, name := stdin, "stdin"
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open sketch: %w", err)
		}
		defer fh.Close()
		src, name = fh, args[0]
	}

	g, err := pipegrid.ParseReader(src)
	if err != nil {
		return err
	}
	logger.Info("sketch loaded",
		slog.String("source", name),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()))

	opts := []pipeloop.Option{pipeloop.WithLogger(logger)}
	if cfg.StepLimit > 0 {
		opts = append(opts, pipeloop.WithStepLimit(cfg.StepLimit))
	}
	out, err := pipeloop.SolveGrid(g, opts...)
	if err != nil {
		return err
	}

	if err := writeReport(stdout, cfg.Format, out); err != nil {
		return err
	}

	p := newPalette(cfg.Render.Color)
	if cfg.Render.Original {
		fmt.Fprintln(stdout)
		if err := renderOriginal(stdout, out.Grid, out.Classification, p); err != nil {
			return err
		}
	}
	if cfg.Render.Scaled {
		fmt.Fprintln(stdout)
		if err := renderScaled(stdout, out.Scaled, out.Classification, p); err != nil {
			return err
		}
	}
	return nil
}

// writeReport prints the three figures in the requested format.
func writeReport(w io.Writer, format string, out *pipeloop.Outcome) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out.Report); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintf(w, "Distance traveled: %d\nFarthest position: %d\nNumber enclosed:   %d\n",
		out.LoopLength, out.Farthest, out.Enclosed)
	return err
}
