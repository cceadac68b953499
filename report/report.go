// SPDX-License-Identifier: MIT
// Package report turns a search.Result into plain data for the
// visualisation side: a YAML document with the attempts, the best and final
// colourings as palette tokens, the three history series, the perturbation
// events and a short description of the topology before and after the run.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmcolor/bfs"
	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/dfs"
	"github.com/katalvlaran/swarmcolor/history"
	"github.com/katalvlaran/swarmcolor/search"
)

// Topology summarises one graph.
type Topology struct {
	Nodes            int  `yaml:"nodes"`
	Edges            int  `yaml:"edges"`
	MaxDegree        int  `yaml:"max_degree"`
	Components       int  `yaml:"components"`
	LargestComponent int  `yaml:"largest_component"`
	Isolated         int  `yaml:"isolated"`
	Bipartite        bool `yaml:"bipartite"`

	// LowerBound and UpperBound bracket the chromatic number: an odd cycle
	// forces three colours, and first-fit never needs more than Δ+1.
	LowerBound int `yaml:"chromatic_lower_bound"`
	UpperBound int `yaml:"chromatic_upper_bound"`
}

// Attempt is one attempt without its colouring.
type Attempt struct {
	PaletteSize      int    `yaml:"palette_size"`
	State            string `yaml:"state"`
	StartRound       int    `yaml:"start_round"`
	Rounds           int    `yaml:"rounds"`
	InitialConflicts int    `yaml:"initial_conflicts"`
	FinalConflicts   int    `yaml:"final_conflicts"`
	Distinct         int    `yaml:"distinct"`
}

// Solution is a colouring rendered as tokens.
type Solution struct {
	PaletteSize int      `yaml:"palette_size"`
	Distinct    int      `yaml:"distinct"`
	Coloring    []string `yaml:"coloring"`
}

// Event is one perturbation.
type Event struct {
	Iteration   int `yaml:"iteration"`
	Requested   int `yaml:"requested"`
	Toggled     int `yaml:"toggled"`
	EdgesBefore int `yaml:"edges_before"`
	EdgesAfter  int `yaml:"edges_after"`
}

// Report is the full run description.
type Report struct {
	RunID         string         `yaml:"run_id,omitempty"`
	Seed          int64          `yaml:"seed"`
	Mode          string         `yaml:"mode"`
	Palette       []string       `yaml:"palette"`
	TotalRounds   int            `yaml:"total_rounds"`
	Initial       Topology       `yaml:"initial_topology"`
	Final         Topology       `yaml:"final_topology"`
	Attempts      []Attempt      `yaml:"attempts"`
	Best          *Solution      `yaml:"best,omitempty"`
	FinalColoring []string       `yaml:"final_coloring"`
	Perturbations []Event        `yaml:"perturbations"`
	History       history.Series `yaml:"history"`
}

// Describe summarises g.
func Describe(g *core.Graph) Topology {
	comps := bfs.Components(g)
	t := Topology{
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		MaxDegree:  g.MaxDegree(),
		Components: len(comps),
		Bipartite:  dfs.Bipartite(g),
		LowerBound: dfs.ChromaticLowerBound(g),
	}
	if t.Nodes > 0 {
		t.UpperBound = t.MaxDegree + 1
	}
	for _, c := range comps {
		if len(c) > t.LargestComponent {
			t.LargestComponent = len(c)
		}
		if len(c) == 1 {
			t.Isolated++
		}
	}

	return t
}

// Build assembles the report of r; initial is the graph the run started from.
func Build(r *search.Result, initial *core.Graph) Report {
	rep := Report{
		Mode:          string(r.Mode),
		Palette:       r.Palette.Tokens(),
		TotalRounds:   r.TotalRounds,
		Initial:       Describe(initial),
		Final:         Describe(r.Graph),
		Attempts:      make([]Attempt, len(r.Attempts)),
		FinalColoring: r.FinalTokens(),
		Perturbations: make([]Event, len(r.Perturbations)),
		History:       r.History,
	}
	for i, a := range r.Attempts {
		rep.Attempts[i] = Attempt{
			PaletteSize:      a.PaletteSize,
			State:            a.State.String(),
			StartRound:       a.StartRound,
			Rounds:           a.Rounds,
			InitialConflicts: a.InitialConflicts,
			FinalConflicts:   a.FinalConflicts,
			Distinct:         a.Distinct,
		}
	}
	if r.Best != nil {
		rep.Best = &Solution{
			PaletteSize: r.Best.PaletteSize,
			Distinct:    r.Best.Distinct,
			Coloring:    r.BestTokens(),
		}
	}
	for i, ev := range r.Perturbations {
		rep.Perturbations[i] = Event(ev)
	}

	return rep
}

// WriteYAML encodes rep to w with two-space indentation.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}

// Log writes a short human summary of rep.
func Log(logger *slog.Logger, rep Report) {
	logger.Info("topology",
		slog.Int("nodes", rep.Initial.Nodes),
		slog.Int("edges_initial", rep.Initial.Edges),
		slog.Int("edges_final", rep.Final.Edges),
		slog.Int("components", rep.Final.Components),
		slog.Int("max_degree", rep.Final.MaxDegree),
		slog.Int("lower_bound", rep.Final.LowerBound),
		slog.Int("upper_bound", rep.Final.UpperBound),
	)
	converged := 0
	for _, a := range rep.Attempts {
		if a.State == search.Converged.String() {
			converged++
		}
	}
	logger.Info("attempts",
		slog.String("mode", rep.Mode),
		slog.Int("total", len(rep.Attempts)),
		slog.Int("converged", converged),
		slog.Int("rounds", rep.TotalRounds),
		slog.Int("perturbations", len(rep.Perturbations)),
	)
	if rep.Best == nil {
		logger.Warn("no attempt converged")
		return
	}
	logger.Info("best colouring",
		slog.Int("palette_size", rep.Best.PaletteSize),
		slog.Int("distinct", rep.Best.Distinct),
	)
}
