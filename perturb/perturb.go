package perturb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// Sentinel errors for perturbation.
var (
	// ErrNegativeCount indicates a negative toggle count.
	ErrNegativeCount = errors.New("perturb: negative toggle count")

	// ErrUnknownMode indicates a Mode other than Approximate or Exact.
	ErrUnknownMode = errors.New("perturb: unknown mode")
)

// Source is the randomness consumed while choosing pairs.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Mode selects the perturbation variant.
type Mode string

const (
	// Approximate is the probabilistic scan; toggles ≥ count.
	Approximate Mode = "approximate"
	// Exact toggles exactly min(count, maxEdges) distinct pairs.
	Exact Mode = "exact"
)

// Validate reports ErrUnknownMode for anything but the two known modes.
func (m Mode) Validate() error {
	switch m {
	case Approximate, Exact:
		return nil
	default:
		return fmt.Errorf("mode %q: %w", string(m), ErrUnknownMode)
	}
}

// ApproximateToggle scans pairs (a, b), a > b, toggling each with
// probability count/maxEdges, and repeats full scans until at least count
// toggles have been made. It returns the number of toggles.
//
// Complexity: O(N²) per scan; the expected number of scans is about one.
func ApproximateToggle(g *core.Graph, count int, rng Source) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("ApproximateToggle(count=%d): %w", count, ErrNegativeCount)
	}
	maxEdges := g.MaxEdges()
	if count == 0 || maxEdges == 0 {
		return 0, nil
	}
	prob := float64(count) / float64(maxEdges)
	n := g.NodeCount()

	toggled := 0
	var a, b int
	for toggled < count {
		for a = 0; a < n; a++ {
			for b = 0; b < a; b++ {
				if rng.Float64() < prob {
					if _, err := g.ToggleEdge(a, b); err != nil {
						return toggled, err
					}
					toggled++
				}
			}
		}
	}

	return toggled, nil
}

// ExactToggle toggles exactly min(count, maxEdges) distinct pairs drawn
// uniformly without replacement, and returns that number.
//
// Complexity: O(N²) time and space for the pair index.
func ExactToggle(g *core.Graph, count int, rng Source) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("ExactToggle(count=%d): %w", count, ErrNegativeCount)
	}
	maxEdges := g.MaxEdges()
	if count > maxEdges {
		count = maxEdges
	}
	if count == 0 {
		return 0, nil
	}

	pairs := make([]core.Edge, 0, maxEdges)
	n := g.NodeCount()
	var a, b int
	for a = 0; a < n; a++ {
		for b = 0; b < a; b++ {
			pairs = append(pairs, core.Edge{U: b, V: a})
		}
	}
	// Partial Fisher–Yates: the first count slots become the sample.
	var i, j int
	for i = 0; i < count; i++ {
		j = i + rng.Intn(len(pairs)-i)
		pairs[i], pairs[j] = pairs[j], pairs[i]
		if _, err := g.ToggleEdge(pairs[i].U, pairs[i].V); err != nil {
			return i, err
		}
	}

	return count, nil
}

// Toggle dispatches to the variant selected by mode.
func Toggle(g *core.Graph, count int, mode Mode, rng Source) (int, error) {
	switch mode {
	case Approximate:
		return ApproximateToggle(g, count, rng)
	case Exact:
		return ExactToggle(g, count, rng)
	default:
		return 0, mode.Validate()
	}
}
