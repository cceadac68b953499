// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/swarmcolor/coloring"
	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/history"
	"github.com/katalvlaran/swarmcolor/palette"
	"github.com/katalvlaran/swarmcolor/perturb"
)

// Sentinel errors.
var (
	// ErrInvalidParams wraps every parameter validation failure.
	ErrInvalidParams = errors.New("search: invalid parameters")
	// ErrNilGraph is returned by NewEngine for a nil graph.
	ErrNilGraph = errors.New("search: nil graph")
	// ErrNilPalette is returned by NewEngine for a nil palette.
	ErrNilPalette = errors.New("search: nil palette")
	// ErrAlreadyRun is returned when Run is called twice on one Engine.
	ErrAlreadyRun = errors.New("search: engine already ran")
	// ErrBudgetSpent is returned by RunAttempt once the global budget is used up.
	ErrBudgetSpent = errors.New("search: global round budget spent")
)

// Mode selects the palette controller policy.
type Mode string

const (
	// Monotone shrinks the palette until the first Exhausted attempt.
	Monotone Mode = "monotone"
	// Adaptive shrinks on success, grows on failure, perturbs on schedule.
	Adaptive Mode = "adaptive"
)

// State is a node of the attempt state machine.
type State int

const (
	Init State = iota
	Round
	Converged
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Round:
		return "round"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Params configures one run.
type Params struct {
	// Mode is Monotone or Adaptive.
	Mode Mode
	// ChangeProbability is the chance a conflicted node recolours, in [0, 1].
	ChangeProbability float64
	// MaxRoundsPerAttempt bounds each attempt; must be >= 1.
	MaxRoundsPerAttempt int
	// MaxTotalRounds is the global budget. Required (>= 1) in Adaptive mode;
	// in Monotone mode 0 means unbounded.
	MaxTotalRounds int
	// MinPaletteSize is the smallest palette size the controller tries; >= 1.
	MinPaletteSize int
	// Perturbation is the topology drift schedule, used in Adaptive mode.
	Perturbation perturb.Schedule
}

// DefaultParams mirrors the reference experiment: adaptive control with
// p_change 0.4, 500 rounds per attempt, 11500 rounds in total and 5 edge
// toggles every 2000 rounds.
func DefaultParams() Params {
	return Params{
		Mode:                Adaptive,
		ChangeProbability:   0.4,
		MaxRoundsPerAttempt: 500,
		MaxTotalRounds:      11500,
		MinPaletteSize:      1,
		Perturbation:        perturb.Schedule{Count: 5, Every: 2000, Mode: perturb.Approximate},
	}
}

// Validate checks p against a palette of paletteSize tokens.
// Out-of-range values are reported, never clamped.
func (p Params) Validate(paletteSize int) error {
	switch p.Mode {
	case Monotone, Adaptive:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidParams, string(p.Mode))
	}
	if p.ChangeProbability < 0 || p.ChangeProbability > 1 {
		return fmt.Errorf("%w: change probability %g not in [0,1]", ErrInvalidParams, p.ChangeProbability)
	}
	if p.MaxRoundsPerAttempt < 1 {
		return fmt.Errorf("%w: max rounds per attempt %d < 1", ErrInvalidParams, p.MaxRoundsPerAttempt)
	}
	if p.MaxTotalRounds < 0 || (p.Mode == Adaptive && p.MaxTotalRounds < 1) {
		return fmt.Errorf("%w: max total rounds %d", ErrInvalidParams, p.MaxTotalRounds)
	}
	if p.MinPaletteSize < 1 || p.MinPaletteSize > paletteSize {
		return fmt.Errorf("%w: min palette size %d not in [1,%d]", ErrInvalidParams, p.MinPaletteSize, paletteSize)
	}
	if err := p.Perturbation.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}

// Attempt is the record of one fixed-size convergence attempt.
type Attempt struct {
	PaletteSize int
	State       State // Converged or Exhausted
	// StartRound is the global round counter before the attempt's first round.
	StartRound       int
	Rounds           int
	InitialConflicts int
	FinalConflicts   int
	// Distinct is the number of distinct colours in the final colouring.
	Distinct int
	Coloring coloring.Coloring
}

func (a Attempt) clone() Attempt {
	a.Coloring = a.Coloring.Clone()
	return a
}

// Result is the read-only outcome of a run.
type Result struct {
	Mode     Mode
	Attempts []Attempt
	// Best is the last Converged attempt whose colouring is still valid on
	// Graph, nil when there is none.
	Best *Attempt
	// Final is the colouring of the last attempt.
	Final         coloring.Coloring
	History       history.Series
	Perturbations []perturb.Event
	TotalRounds   int
	// Graph is a copy of the topology at the end of the run.
	Graph   *core.Graph
	Palette *palette.Palette
}

// Sizes lists the palette size of every attempt in order.
func (r *Result) Sizes() []int {
	out := make([]int, len(r.Attempts))
	for i, a := range r.Attempts {
		out[i] = a.PaletteSize
	}

	return out
}

// BestTokens renders Best as palette tokens, or nil without a best attempt.
func (r *Result) BestTokens() []string {
	if r.Best == nil {
		return nil
	}

	return r.Best.Coloring.Tokens(r.Palette)
}

// FinalTokens renders Final as palette tokens.
func (r *Result) FinalTokens() []string {
	return r.Final.Tokens(r.Palette)
}
