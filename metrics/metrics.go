// SPDX-License-Identifier: MIT
// Package metrics exposes search progress as Prometheus instruments.
//
// The search engine reports through the Recorder interface. Nop discards
// everything; Prometheus registers its instruments on a private registry so
// several runs in one process never collide, and the CLI dumps that registry
// in text exposition format at the end of a run.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swarmcolor"

// Recorder receives search events. Implementations must be cheap: one call
// per round is on the hot path.
type Recorder interface {
	// ObserveRound is called after every global round.
	ObserveRound(paletteSize, conflicts, recolored int)
	// ObserveAttempt is called when an attempt reaches a terminal state.
	ObserveAttempt(paletteSize int, outcome string, rounds int)
	// ObservePerturbation is called after the topology was mutated.
	ObservePerturbation(toggled, edges int)
}

var (
	_ Recorder = Nop{}
	_ Recorder = (*Prometheus)(nil)
)

// Nop is a Recorder that drops every event.
type Nop struct{}

func (Nop) ObserveRound(int, int, int)      {}
func (Nop) ObserveAttempt(int, string, int) {}
func (Nop) ObservePerturbation(int, int)    {}

// Prometheus records search events into counters, gauges and a histogram.
type Prometheus struct {
	registry *prometheus.Registry

	// RoundsTotal counts global rounds.
	RoundsTotal prometheus.Counter
	// RecoloringsTotal counts node recolourings across all rounds.
	RecoloringsTotal prometheus.Counter
	// Conflicts is the conflict count after the latest round.
	Conflicts prometheus.Gauge
	// PaletteSize is the active palette size of the latest round.
	PaletteSize prometheus.Gauge
	// AttemptsTotal counts finished attempts.
	// Labels: outcome (converged, exhausted), palette_size
	AttemptsTotal *prometheus.CounterVec
	// AttemptRounds is the distribution of rounds spent per attempt.
	AttemptRounds prometheus.Histogram
	// PerturbationsTotal counts perturbation events.
	PerturbationsTotal prometheus.Counter
	// ToggledEdgesTotal counts edge toggles over all perturbation events.
	ToggledEdgesTotal prometheus.Counter
	// Edges is the edge count after the latest perturbation.
	Edges prometheus.Gauge
}

// NewPrometheus builds a Prometheus recorder on a fresh private registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		RoundsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "rounds_total",
			Help:      "Global rounds executed.",
		}),
		RecoloringsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "recolorings_total",
			Help:      "Node recolourings performed across all rounds.",
		}),
		Conflicts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "conflicts",
			Help:      "Conflicting edges after the latest round.",
		}),
		PaletteSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "palette_size",
			Help:      "Active palette size of the latest round.",
		}),
		AttemptsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "attempts_total",
			Help:      "Finished attempts by outcome and palette size.",
		}, []string{"outcome", "palette_size"}),
		AttemptRounds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "attempt_rounds",
			Help:      "Rounds spent per attempt.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		PerturbationsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topology",
			Name:      "perturbations_total",
			Help:      "Perturbation events applied to the graph.",
		}),
		ToggledEdgesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topology",
			Name:      "toggled_edges_total",
			Help:      "Edge toggles over all perturbation events.",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "topology",
			Name:      "edges",
			Help:      "Edge count after the latest perturbation.",
		}),
	}
}

// ObserveRound implements Recorder.
func (p *Prometheus) ObserveRound(paletteSize, conflicts, recolored int) {
	p.RoundsTotal.Inc()
	p.RecoloringsTotal.Add(float64(recolored))
	p.Conflicts.Set(float64(conflicts))
	p.PaletteSize.Set(float64(paletteSize))
}

// ObserveAttempt implements Recorder.
func (p *Prometheus) ObserveAttempt(paletteSize int, outcome string, rounds int) {
	p.AttemptsTotal.WithLabelValues(outcome, strconv.Itoa(paletteSize)).Inc()
	p.AttemptRounds.Observe(float64(rounds))
}

// ObservePerturbation implements Recorder.
func (p *Prometheus) ObservePerturbation(toggled, edges int) {
	p.PerturbationsTotal.Inc()
	p.ToggledEdgesTotal.Add(float64(toggled))
	p.Edges.Set(float64(edges))
}

// Gatherer returns the private registry for scraping or testing.
func (p *Prometheus) Gatherer() prometheus.Gatherer {
	return p.registry
}

// WriteFile writes the registry in text exposition format to path.
func (p *Prometheus) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
