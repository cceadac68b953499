// File: summary.go
// Role: One-line digests of reports, used when several seeds run as a batch.

package report

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmcolor/search"
)

// Summary is the digest of one Report.
type Summary struct {
	RunID       string `yaml:"run_id,omitempty"`
	Seed        int64  `yaml:"seed"`
	Nodes       int    `yaml:"nodes"`
	Edges       int    `yaml:"edges"`
	Attempts    int    `yaml:"attempts"`
	Converged   int    `yaml:"converged"`
	TotalRounds int    `yaml:"total_rounds"`

	// BestPaletteSize is 0 when no attempt converged.
	BestPaletteSize int `yaml:"best_palette_size"`
	BestDistinct    int `yaml:"best_distinct"`
}

// Summarize digests rep.
func Summarize(rep Report) Summary {
	s := Summary{
		RunID:       rep.RunID,
		Seed:        rep.Seed,
		Nodes:       rep.Initial.Nodes,
		Edges:       rep.Initial.Edges,
		Attempts:    len(rep.Attempts),
		TotalRounds: rep.TotalRounds,
	}
	for _, a := range rep.Attempts {
		if a.State == search.Converged.String() {
			s.Converged++
		}
	}
	if rep.Best != nil {
		s.BestPaletteSize = rep.Best.PaletteSize
		s.BestDistinct = rep.Best.Distinct
	}

	return s
}

// Batch aggregates summaries of independent runs.
type Batch struct {
	Runs []Summary `yaml:"runs"`

	// Smallest is the smallest converged palette size over all runs, 0 if none.
	Smallest int `yaml:"smallest_palette_size"`
	// Failed counts runs without any converged attempt.
	Failed int `yaml:"failed"`
}

// NewBatch sorts runs by seed and aggregates them.
func NewBatch(runs []Summary) Batch {
	b := Batch{Runs: slices.Clone(runs)}
	slices.SortFunc(b.Runs, func(x, y Summary) int {
		switch {
		case x.Seed < y.Seed:
			return -1
		case x.Seed > y.Seed:
			return 1
		default:
			return 0
		}
	})
	for _, s := range b.Runs {
		if s.BestPaletteSize == 0 {
			b.Failed++
			continue
		}
		if b.Smallest == 0 || s.BestPaletteSize < b.Smallest {
			b.Smallest = s.BestPaletteSize
		}
	}

	return b
}

// WriteBatchYAML encodes b to w with two-space indentation.
func WriteBatchYAML(w io.Writer, b Batch) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("report: encode batch: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode batch: %w", err)
	}

	return nil
}

// LogBatch writes one line per run and a closing aggregate.
func LogBatch(logger *slog.Logger, b Batch) {
	for _, s := range b.Runs {
		logger.Info("run",
			slog.String("run", s.RunID),
			slog.Int64("seed", s.Seed),
			slog.Int("edges", s.Edges),
			slog.Int("converged", s.Converged),
			slog.Int("best_palette_size", s.BestPaletteSize),
			slog.Int("rounds", s.TotalRounds),
		)
	}
	logger.Info("batch",
		slog.Int("runs", len(b.Runs)),
		slog.Int("failed", b.Failed),
		slog.Int("smallest_palette_size", b.Smallest),
	)
}
