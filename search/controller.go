// SPDX-License-Identifier: MIT
// File: controller.go
// Role: Palette-size policies driving sequences of attempts.

package search

import (
	"fmt"
	"log/slog"
)

// Run executes the configured policy once and returns its Result.
func (e *Engine) Run() (*Result, error) {
	if e.ran {
		return nil, ErrAlreadyRun
	}
	e.ran = true

	e.logger.Info("run started",
		slog.String("mode", string(e.params.Mode)),
		slog.Int("nodes", e.graph.NodeCount()),
		slog.Int("edges", e.graph.EdgeCount()),
		slog.Int("palette_size", e.palette.Size()),
	)
	var err error
	switch e.params.Mode {
	case Monotone:
		err = e.runMonotone()
	case Adaptive:
		err = e.runAdaptive()
	default:
		err = fmt.Errorf("%w: mode %q", ErrInvalidParams, string(e.params.Mode))
	}
	if err != nil {
		return nil, err
	}

	r := e.result()
	attrs := []any{slog.Int("attempts", len(r.Attempts)), slog.Int("rounds", r.TotalRounds)}
	if r.Best != nil {
		attrs = append(attrs, slog.Int("best_palette_size", r.Best.PaletteSize), slog.Int("best_distinct", r.Best.Distinct))
	}
	e.logger.Info("run finished", attrs...)

	return r, nil
}

// runMonotone shrinks the palette by one after every Converged attempt.
func (e *Engine) runMonotone() error {
	for k := e.palette.Size(); k >= e.params.MinPaletteSize; k-- {
		if e.remaining() < 1 {
			return nil
		}
		a, err := e.RunAttempt(k)
		if err != nil {
			return err
		}
		if a.State == Exhausted {
			return nil
		}
	}

	return nil
}

// runAdaptive walks the palette size down on success and up on failure
// until the global budget is spent.
func (e *Engine) runAdaptive() error {
	k := e.palette.Size()
	for e.remaining() > 0 {
		a, err := e.RunAttempt(k)
		if err != nil {
			return err
		}
		k = e.nextSize(k, a.State)
	}

	return nil
}

// nextSize is the adaptive transition, bounded to [MinPaletteSize, palette size].
func (e *Engine) nextSize(k int, s State) int {
	if s == Converged {
		if k > e.params.MinPaletteSize {
			return k - 1
		}
		return k
	}
	if k < e.palette.Size() {
		return k + 1
	}

	return k
}
