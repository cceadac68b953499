// SPDX-License-Identifier: MIT

package search

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/swarmcolor/metrics"
)

// Option customises an Engine. Constructors panic on nil arguments.
type Option func(*Engine)

// WithSource injects the random source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("search: WithSource(nil)")
	}
	return func(e *Engine) { e.rng = src }
}

// WithSeed seeds a fresh math/rand source (seed 0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = NewSource(seed) }
}

// WithLogger routes progress logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithRecorder reports rounds, attempts and perturbations to r. Panics on nil.
func WithRecorder(r metrics.Recorder) Option {
	if r == nil {
		panic("search: WithRecorder(nil)")
	}
	return func(e *Engine) { e.recorder = r }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
