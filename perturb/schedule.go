package perturb

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// Schedule fires a perturbation every Every global rounds.
type Schedule struct {
	// Count is the number of toggles requested per event.
	Count int
	// Every is the period in global rounds; 0 disables the schedule.
	Every int
	// Mode selects the variant; empty means Approximate.
	Mode Mode
}

// Event describes one applied perturbation.
type Event struct {
	Iteration   int
	Requested   int
	Toggled     int
	EdgesBefore int
	EdgesAfter  int
}

// Validate checks the schedule's parameters.
func (s Schedule) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("count=%d: %w", s.Count, ErrNegativeCount)
	}
	if s.Every < 0 {
		return fmt.Errorf("every=%d: %w", s.Every, ErrNegativeCount)
	}

	return s.mode().Validate()
}

// Due reports whether the schedule fires at the given 1-based global round.
func (s Schedule) Due(iteration int) bool {
	return s.Every > 0 && iteration > 0 && iteration%s.Every == 0
}

// Apply perturbs g now and reports what happened at iteration.
func (s Schedule) Apply(g *core.Graph, iteration int, rng Source) (Event, error) {
	ev := Event{Iteration: iteration, Requested: s.Count, EdgesBefore: g.EdgeCount()}
	toggled, err := Toggle(g, s.Count, s.mode(), rng)
	ev.Toggled = toggled
	ev.EdgesAfter = g.EdgeCount()
	if err != nil {
		return ev, fmt.Errorf("perturb at round %d: %w", iteration, err)
	}

	return ev, nil
}

func (s Schedule) mode() Mode {
	if s.Mode == "" {
		return Approximate
	}

	return s.Mode
}
