// SPDX-License-Identifier: MIT
// File: engine.go
// Role: The run-state object and the per-attempt convergence loop.

package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/swarmcolor/coloring"
	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/history"
	"github.com/katalvlaran/swarmcolor/metrics"
	"github.com/katalvlaran/swarmcolor/palette"
	"github.com/katalvlaran/swarmcolor/perturb"
)

// Engine holds everything one run mutates: its own graph copy, the random
// source, the history tracker and the global round counter.
// Not safe for concurrent use.
type Engine struct {
	graph   *core.Graph
	palette *palette.Palette
	params  Params

	rng      Source
	logger   *slog.Logger
	recorder metrics.Recorder

	tracker   history.Tracker
	iteration int // global rounds executed so far
	attempts  []Attempt
	events    []perturb.Event
	current   coloring.Coloring
	ran       bool
}

// NewEngine validates params against p and returns an Engine working on a
// clone of g. Without WithSource or WithSeed the engine uses NewSource(0).
func NewEngine(g *core.Graph, p *palette.Palette, params Params, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if p == nil {
		return nil, ErrNilPalette
	}
	if err := params.Validate(p.Size()); err != nil {
		return nil, err
	}
	e := &Engine{
		graph:    g.Clone(),
		palette:  p,
		params:   params,
		logger:   discardLogger(),
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewSource(0)
	}

	return e, nil
}

// Rounds returns the number of global rounds executed so far.
func (e *Engine) Rounds() int { return e.iteration }

// remaining returns how many rounds the next attempt may use.
func (e *Engine) remaining() int {
	budget := e.params.MaxRoundsPerAttempt
	if e.params.MaxTotalRounds > 0 {
		if left := e.params.MaxTotalRounds - e.iteration; left < budget {
			budget = left
		}
	}

	return budget
}

// RunAttempt runs one attempt at palette size k to a terminal state.
//
// Errors:
//   - palette.ErrActiveSizeOutOfRange when k is not in [1, palette size].
//   - ErrBudgetSpent when the global budget has no rounds left.
func (e *Engine) RunAttempt(k int) (Attempt, error) {
	if err := e.palette.CheckSize(k); err != nil {
		return Attempt{}, fmt.Errorf("RunAttempt(%d): %w", k, err)
	}
	budget := e.remaining()
	if budget < 1 {
		return Attempt{}, fmt.Errorf("RunAttempt(%d): %w", k, ErrBudgetSpent)
	}

	a := Attempt{PaletteSize: k, State: Init, StartRound: e.iteration}
	c, err := coloring.InitializeRandom(e.graph.NodeCount(), k, e.rng)
	if err != nil {
		return Attempt{}, fmt.Errorf("RunAttempt(%d): %w", k, err)
	}
	a.InitialConflicts = coloring.Conflicts(e.graph, c)
	rule := coloring.Rule{Active: k, ChangeProbability: e.params.ChangeProbability}

	a.State = Round
	for a.State == Round {
		conflicts, err := e.step(c, rule)
		if err != nil {
			return Attempt{}, fmt.Errorf("RunAttempt(%d) round %d: %w", k, e.iteration, err)
		}
		a.Rounds++
		a.FinalConflicts = conflicts
		switch {
		case conflicts == 0:
			a.State = Converged
		case a.Rounds >= budget:
			a.State = Exhausted
		}
	}
	a.Distinct = c.Distinct()
	a.Coloring = c
	e.current = c
	e.attempts = append(e.attempts, a)

	e.recorder.ObserveAttempt(k, a.State.String(), a.Rounds)
	e.logger.Info("attempt finished",
		slog.Int("palette_size", k),
		slog.String("state", a.State.String()),
		slog.Int("rounds", a.Rounds),
		slog.Int("initial_conflicts", a.InitialConflicts),
		slog.Int("conflicts", a.FinalConflicts),
		slog.Int("distinct", a.Distinct),
		slog.Int("global_round", e.iteration),
	)

	return a.clone(), nil
}

// step executes one global round on c and returns the conflict count on the
// topology as it stands afterwards.
func (e *Engine) step(c coloring.Coloring, rule coloring.Rule) (int, error) {
	e.iteration++
	stats, err := coloring.Sweep(e.graph, c, rule, e.rng)
	if err != nil {
		return 0, err
	}
	conflicts := coloring.Conflicts(e.graph, c)
	e.tracker.Observe(e.iteration, e.graph, c, conflicts)
	e.recorder.ObserveRound(rule.Active, conflicts, stats.Recolored)
	e.logger.Debug("round",
		slog.Int("round", e.iteration),
		slog.Int("palette_size", rule.Active),
		slog.Int("conflicts", conflicts),
		slog.Int("recolored", stats.Recolored),
		slog.Int("stuck", stats.Stuck),
	)

	sched := e.params.Perturbation
	if e.params.Mode != Adaptive || !sched.Due(e.iteration) {
		return conflicts, nil
	}
	ev, err := sched.Apply(e.graph, e.iteration, e.rng)
	if err != nil {
		return 0, err
	}
	e.events = append(e.events, ev)
	e.tracker.MarkPerturbation(e.iteration, e.graph)
	e.recorder.ObservePerturbation(ev.Toggled, ev.EdgesAfter)
	conflicts = coloring.Conflicts(e.graph, c)
	e.logger.Info("topology perturbed",
		slog.Int("round", e.iteration),
		slog.Int("requested", ev.Requested),
		slog.Int("toggled", ev.Toggled),
		slog.Int("edges_before", ev.EdgesBefore),
		slog.Int("edges_after", ev.EdgesAfter),
		slog.Int("conflicts", conflicts),
	)

	return conflicts, nil
}

// result snapshots the engine into a Result.
func (e *Engine) result() *Result {
	r := &Result{
		Mode:          e.params.Mode,
		Attempts:      make([]Attempt, len(e.attempts)),
		Final:         e.current.Clone(),
		History:       e.tracker.Snapshot(),
		Perturbations: append([]perturb.Event{}, e.events...),
		TotalRounds:   e.iteration,
		Graph:         e.graph.Clone(),
		Palette:       e.palette,
	}
	for i, a := range e.attempts {
		r.Attempts[i] = a.clone()
		// a later perturbation may have broken an earlier solution
		if a.State == Converged && coloring.Valid(e.graph, a.Coloring) {
			best := a.clone()
			r.Best = &best
		}
	}

	return r
}
