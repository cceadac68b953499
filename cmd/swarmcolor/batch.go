// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swarmcolor/config"
	"github.com/katalvlaran/swarmcolor/metrics"
	"github.com/katalvlaran/swarmcolor/report"
)

type batchOptions struct {
	runOptions
	runs     int
	parallel int
}

func newBatchCmd(g *globalOptions) *cobra.Command {
	o := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the experiment for consecutive seeds and summarise the outcomes",
		Long: `Each run uses its own seed, starting at --seed (or 1 when it is 0), so it
generates its own graph and search. Runs are independent and execute
concurrently, bounded by --parallel.`,
		Example: `  swarmcolor batch --runs 8 --parallel 4
  swarmcolor batch --runs 20 --mode monotone --topology grid --nodes 64 -o summary.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.batch(cmd, g)
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().IntVar(&o.runs, "runs", 4, "number of seeds to run")
	cmd.Flags().IntVar(&o.parallel, "parallel", 2, "maximum runs in flight")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write the YAML summary to this file (- for stdout)")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics of all runs to this file")

	return cmd
}

func (o *batchOptions) batch(cmd *cobra.Command, g *globalOptions) error {
	if o.runs < 1 {
		return fmt.Errorf("%w: runs must be >= 1, got %d", config.ErrInvalidConfig, o.runs)
	}
	if o.parallel < 1 {
		return fmt.Errorf("%w: parallel must be >= 1, got %d", config.ErrInvalidConfig, o.parallel)
	}
	logger, cfg, err := o.load(cmd, g)
	if err != nil {
		return err
	}
	first := cfg.RandomSeed
	if first == 0 {
		first = 1
	}

	rec := metrics.NewPrometheus()
	summaries := make([]report.Summary, o.runs)
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(o.parallel)
	for i := 0; i < o.runs; i++ {
		runCfg := cfg
		runCfg.RandomSeed = first + int64(i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := experiment(runCfg, logger, rec)
			if err != nil {
				return fmt.Errorf("seed %d: %w", runCfg.RandomSeed, err)
			}
			summaries[i] = report.Summarize(rep)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	b := report.NewBatch(summaries)
	report.LogBatch(logger, b)
	if err := o.writeSummary(cmd.OutOrStdout(), b); err != nil {
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

func (o *batchOptions) writeSummary(stdout io.Writer, b report.Batch) (err error) {
	switch o.out {
	case "":
		return nil
	case "-":
		return report.WriteBatchYAML(stdout, b)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close summary: %w", cerr)
		}
	}()

	return report.WriteBatchYAML(f, b)
}
