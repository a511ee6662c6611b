// Package cli implements the orientation workbench's command-line
// interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacktower/pkg/amc"
	"github.com/matzehuels/stacktower/pkg/buildinfo"
	"github.com/matzehuels/stacktower/pkg/convert"
	stackerrors "github.com/matzehuels/stacktower/pkg/errors"
	"github.com/matzehuels/stacktower/pkg/generator"
	"github.com/matzehuels/stacktower/pkg/render"
	"github.com/matzehuels/stacktower/pkg/sat"
	"github.com/matzehuels/stacktower/pkg/strategy"
)

// wallClockMillis mirrors main.cpp's getMillisSinceEpoch default seed.
func wallClockMillis() int64 {
	return time.Now().UnixMilli()
}

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stacktower"

	// geomSuccessProb is the geometric-distribution strategy's success
	// probability; it has no config-file override since the original
	// implementation never exposed it as a tunable either.
	geomSuccessProb = 0.5
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "stacktower",
		Short:        "Stacktower benchmarks dynamic low-outdegree graph orientation strategies",
		Long:         `Stacktower generates randomized dynamic graph orientation instances and compares Kowalik's offline strategy, Brodal's online strategy, and an adaptive collision-minimizing heuristic (with an optional SAT cross-check) against them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dumpCommand())

	return root
}

// =============================================================================
// run
// =============================================================================

func (c *CLI) runCommand() *cobra.Command {
	var configPath string
	var seedOverride int64
	var strategyOverride string

	var satCheck bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the generator/strategy experiment loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if seedOverride != 0 {
				cfg.Seed = seedOverride
			}
			if strategyOverride != "" {
				cfg.Strategy = strategyOverride
			}
			return c.runExperiment(cmd.OutOrStdout(), cfg, satCheck)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().Int64Var(&seedOverride, "seed", 0, "PRNG seed (0 derives from wall-clock time)")
	cmd.Flags().StringVar(&strategyOverride, "strategy", "", "generator strategy: uniform or geom")
	cmd.Flags().BoolVar(&satCheck, "sat-check", false, "cross-check each attempt's AMC outdegree bound via the SAT reduction")
	return cmd
}

// runExperiment replays main.cpp's experiment loop: generate an instance,
// run it through the Kowalik reference strategy and the AMC heuristic, and
// print a checkpoint every CheckpointStride attempts. When satCheck is set,
// each attempt's AMC result is additionally cross-checked by reducing the
// instance to SAT at AMC's reported bound and confirming solveDP reports
// SATISFIABLE — the commented-out demonstration in the original main()'s
// SAT-solving example, promoted to a real, testable run mode.
func (c *CLI) runExperiment(w io.Writer, cfg Config, satCheck bool) error {
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Launched testing:\n")
	fmt.Fprintf(w, "|V| = %d, arboricity <= %d, instance length = %d\n\n", cfg.V, cfg.Alpha, cfg.InstanceLength)

	var avgKowalik, avgCustom float64
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		opi := gen.GenerateInstance(cfg.InstanceLength)
		ipi := convert.Instance(opi)

		avgKowalik += float64(strategy.OrientByKowalikStrategy(opi))
		maxOutdeg := amc.Solve(&ipi)
		avgCustom += float64(maxOutdeg)

		if satCheck {
			phi := sat.ConvertToSAT(ipi, maxOutdeg)
			verdict := phi.SolveDP(sat.Valuation{})
			if verdict != sat.Satisfiable {
				c.Logger.Warnf("attempt %d: SAT cross-check at bound %d returned %v, want Satisfiable", attempt, maxOutdeg, verdict)
			}
		}

		if attempt%cfg.CheckpointStride == 0 {
			fmt.Fprintf(w, "%d / %d attempts done.\n", attempt, cfg.Attempts)
			fmt.Fprintf(w, "Avg. Kowalik outdeg: %g\n", avgKowalik/float64(attempt))
			fmt.Fprintf(w, "Avg. custom outdeg: %g\n\n", avgCustom/float64(attempt))
		}
	}
	return nil
}

func newGenerator(cfg Config) (*generator.Generator, error) {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(wallClockMillis())
	}

	switch cfg.Strategy {
	case "", "uniform":
		return generator.NewUniformDistrGenerator(cfg.V, cfg.Alpha, cfg.TargetDensity, cfg.PurgeProbability, seed, seed), nil
	case "geom":
		return generator.NewGeomDistrGenerator(cfg.V, cfg.Alpha, cfg.TargetDensity, cfg.PurgeProbability, geomSuccessProb, seed, seed), nil
	default:
		return nil, stackerrors.New(stackerrors.ErrCodeInvalidArgument, "unknown strategy %q (want uniform or geom)", cfg.Strategy)
	}
}

// =============================================================================
// render
// =============================================================================

func (c *CLI) renderCommand() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rasterise a Forest/BoundedArbGraph/ForestOrientation DOT description to SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			dot, err := os.ReadFile(inputPath)
			if err != nil {
				return stackerrors.Wrap(stackerrors.ErrCodeIO, err, "read %s", inputPath)
			}

			svg, err := render.RenderSVG(string(dot))
			if err != nil {
				return stackerrors.Wrap(stackerrors.ErrCodeRenderFailed, err, "render %s", inputPath)
			}

			if err := os.WriteFile(outputPath, svg, 0o644); err != nil {
				return stackerrors.Wrap(stackerrors.ErrCodeIO, err, "write %s", outputPath)
			}
			c.Logger.Infof("rendered %s -> %s", inputPath, outputPath)
			printSuccess("rendered DOT to SVG")
			printFile(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a DOT file (required)")
	cmd.Flags().StringVar(&outputPath, "output", "out.svg", "SVG output path")
	cmd.MarkFlagRequired("input")
	return cmd
}

// =============================================================================
// dump
// =============================================================================

func (c *CLI) dumpCommand() *cobra.Command {
	var configPath, outputPath string
	var seedOverride int64

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Generate one instance, solve it with AMC, and write it in the counterexample format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if seedOverride != 0 {
				cfg.Seed = seedOverride
			}

			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}

			opi := gen.GenerateInstance(cfg.InstanceLength)
			ipi := convert.Instance(opi)
			amc.Solve(&ipi)

			f, err := os.Create(outputPath)
			if err != nil {
				return stackerrors.Wrap(stackerrors.ErrCodeIO, err, "create %s", outputPath)
			}
			defer f.Close()

			ipi.PrintIntervals(f)
			c.Logger.Infof("wrote %s", outputPath)

			printInfo("solved instance with AMC")
			printKeyValue("vertices", fmt.Sprintf("%d", ipi.V))
			printKeyValue("intervals", fmt.Sprintf("%d", len(ipi.Intervals)))
			printSuccess("wrote counterexample-format dump")
			printFile(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().Int64Var(&seedOverride, "seed", 0, "PRNG seed (0 derives from wall-clock time)")
	cmd.Flags().StringVar(&outputPath, "output", "error-instance.txt", "output path")
	return cmd
}
