// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/config"
	"github.com/katalvlaran/swarmcolor/metrics"
	"github.com/katalvlaran/swarmcolor/report"
	"github.com/katalvlaran/swarmcolor/search"
)

// runOptions are the run flags; each one overrides the loaded configuration
// only when set explicitly.
type runOptions struct {
	nodes        int
	edgeProb     float64
	palette      []string
	pChange      float64
	maxRounds    int
	maxTotal     int
	perturbCount int
	perturbEvery int
	perturbMode  string
	seed         int64
	mode         string
	minPalette   int
	topology     string

	out         string
	metricsFile string
}

func newRunCmd(g *globalOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the colouring experiment and report the outcome",
		Example: `  swarmcolor run
  swarmcolor run --mode monotone --nodes 50 --edge-probability 0.2 --seed 7
  swarmcolor run --config experiment.yaml --out report.yaml --metrics-file run.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, g)
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write the YAML report to this file (- for stdout)")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

// register binds the experiment flags shared by run and batch.
func (o *runOptions) register(f *pflag.FlagSet) {
	d := config.Default()
	f.IntVar(&o.nodes, "nodes", d.NumNodes, "number of nodes")
	f.Float64Var(&o.edgeProb, "edge-probability", d.EdgeProbability, "edge probability of the random topology")
	f.StringSliceVar(&o.palette, "palette", d.ColorPalette, "ordered colour tokens")
	f.Float64Var(&o.pChange, "p-change", d.ProbabilityNodeChangesColor, "probability a conflicted node recolours")
	f.IntVar(&o.maxRounds, "max-rounds", d.MaxIterationsPerPaletteSize, "round budget per palette size")
	f.IntVar(&o.maxTotal, "max-total", d.MaxTotalIterations, "global round budget")
	f.IntVar(&o.perturbCount, "perturb-count", d.NumEdgesToPerturbPerEvent, "edge toggles per perturbation")
	f.IntVar(&o.perturbEvery, "perturb-every", d.PerturbationFrequencyInRounds, "rounds between perturbations (0 disables)")
	f.StringVar(&o.perturbMode, "perturb-mode", d.PerturbationMode, "perturbation variant (approximate, exact)")
	f.Int64Var(&o.seed, "seed", d.RandomSeed, "random seed (0 selects the default seed)")
	f.StringVar(&o.mode, "mode", d.Mode, "palette controller (monotone, adaptive)")
	f.IntVar(&o.minPalette, "min-palette", d.MinPaletteSize, "smallest palette size to try")
	f.StringVar(&o.topology, "topology", d.Topology, "graph topology (random, empty, path, cycle, complete, star, grid)")
}

// apply copies every explicitly set flag onto cfg.
func (o *runOptions) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := map[string]func(){
		"nodes":            func() { cfg.NumNodes = o.nodes },
		"edge-probability": func() { cfg.EdgeProbability = o.edgeProb },
		"palette":          func() { cfg.ColorPalette = o.palette },
		"p-change":         func() { cfg.ProbabilityNodeChangesColor = o.pChange },
		"max-rounds":       func() { cfg.MaxIterationsPerPaletteSize = o.maxRounds },
		"max-total":        func() { cfg.MaxTotalIterations = o.maxTotal },
		"perturb-count":    func() { cfg.NumEdgesToPerturbPerEvent = o.perturbCount },
		"perturb-every":    func() { cfg.PerturbationFrequencyInRounds = o.perturbEvery },
		"perturb-mode":     func() { cfg.PerturbationMode = o.perturbMode },
		"seed":             func() { cfg.RandomSeed = o.seed },
		"mode":             func() { cfg.Mode = o.mode },
		"min-palette":      func() { cfg.MinPaletteSize = o.minPalette },
		"topology":         func() { cfg.Topology = o.topology },
	}
	fs.Visit(func(f *pflag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
}

// load resolves the effective configuration: defaults, file, environment,
// then explicitly set flags.
func (o *runOptions) load(cmd *cobra.Command, g *globalOptions) (*slog.Logger, config.Config, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), g.logLevel, g.noColor)
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg, err := config.LoadUnvalidated(g.configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	o.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, err
	}

	return logger, cfg, nil
}

func (o *runOptions) run(cmd *cobra.Command, g *globalOptions) error {
	logger, cfg, err := o.load(cmd, g)
	if err != nil {
		return err
	}
	rec := metrics.NewPrometheus()
	rep, err := experiment(cfg, logger, rec)
	if err != nil {
		return err
	}
	report.Log(logger, rep)
	if err := o.writeReport(cmd.OutOrStdout(), rep); err != nil {
		return err
	}
	if o.metricsFile != "" {
		if err := rec.WriteFile(o.metricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", "path", o.metricsFile)
	}

	return nil
}

// experiment generates the graph of cfg and runs one search on it.
func experiment(cfg config.Config, logger *slog.Logger, rec metrics.Recorder) (report.Report, error) {
	pal, err := cfg.Palette()
	if err != nil {
		return report.Report{}, err
	}
	cons, err := cfg.Constructor()
	if err != nil {
		return report.Report{}, err
	}
	runID := uuid.NewString()[:8]
	logger = logger.With(slog.String("run", runID))

	// one stream feeds graph generation and the search, so a seed fixes both
	rng := search.NewSource(cfg.RandomSeed)
	graph, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rng)}, cons)
	if err != nil {
		return report.Report{}, fmt.Errorf("generate %s graph: %w", cfg.Topology, err)
	}

	engine, err := search.NewEngine(graph, pal, cfg.Params(),
		search.WithSource(rng),
		search.WithLogger(logger),
		search.WithRecorder(rec),
	)
	if err != nil {
		return report.Report{}, err
	}
	res, err := engine.Run()
	if err != nil {
		return report.Report{}, err
	}

	rep := report.Build(res, graph)
	rep.RunID = runID
	rep.Seed = cfg.RandomSeed

	return rep, nil
}

func (o *runOptions) writeReport(stdout io.Writer, rep report.Report) (err error) {
	switch o.out {
	case "":
		return nil
	case "-":
		return report.WriteYAML(stdout, rep)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	return report.WriteYAML(f, rep)
}
