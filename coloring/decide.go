// File: decide.go
// Role: The per-agent decision rule and the in-order round sweep.
// Determinism:
//   - Nodes are visited 0..N-1; Float64 is drawn only by conflicted nodes.
//   - First-fit scans the active prefix [0, k) in palette order.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// DecisionKind classifies what a node did in one round.
type DecisionKind int

const (
	// NoConflict: the node's colour differs from every neighbour; nothing drawn.
	NoConflict DecisionKind = iota
	// Kept: in conflict, but the draw said not to change this round.
	Kept
	// Recolored: in conflict and switched to the first free active colour.
	Recolored
	// Stuck: in conflict, chose to change, but every active colour is taken
	// by a neighbour; the old colour is retained.
	Stuck
)

// String returns a lower-case label for logs and reports.
func (k DecisionKind) String() string {
	switch k {
	case NoConflict:
		return "no-conflict"
	case Kept:
		return "kept"
	case Recolored:
		return "recolored"
	case Stuck:
		return "stuck"
	default:
		return fmt.Sprintf("decision(%d)", int(k))
	}
}

// Decision is the outcome of one node's turn.
type Decision struct {
	Node int
	Kind DecisionKind
	From int // colour before the turn
	To   int // colour after the turn (== From unless Recolored)
}

// SweepStats aggregates the decisions of one full pass.
type SweepStats struct {
	Conflicted int // nodes that saw a neighbour with their colour
	Recolored  int
	Kept       int
	Stuck      int
}

// Rule carries the parameters shared by every agent during one attempt.
type Rule struct {
	// Active is the palette size k; agents may only pick from [0, k).
	Active int
	// ChangeProbability is p_change in [0, 1].
	ChangeProbability float64
}

// Validate reports ErrEmptyActivePalette or ErrInvalidProbability.
func (r Rule) Validate() error {
	if r.Active < 1 {
		return fmt.Errorf("active=%d: %w", r.Active, ErrEmptyActivePalette)
	}
	if r.ChangeProbability < 0 || r.ChangeProbability > 1 {
		return fmt.Errorf("p_change=%g: %w", r.ChangeProbability, ErrInvalidProbability)
	}

	return nil
}

// Decide applies the rule to node against the live colouring c, mutating
// c[node] when the node recolours.
//
// Steps:
//  1. Collect the distinct colours of node's neighbours from c as it is now.
//  2. If c[node] is not among them, return NoConflict.
//  3. Draw rng.Float64(); at or above ChangeProbability, return Kept.
//  4. Take the first colour in [0, Active) no neighbour holds; if none, Stuck.
func Decide(g *core.Graph, c Coloring, node int, r Rule, rng Source) (Decision, error) {
	if err := r.Validate(); err != nil {
		return Decision{}, err
	}
	if err := Check(g, c); err != nil {
		return Decision{}, err
	}
	if node < 0 || node >= len(c) {
		return Decision{}, fmt.Errorf("Decide(%d): %w", node, ErrNodeOutOfRange)
	}
	var s neighborSet

	return decide(g, c, node, r, rng, &s), nil
}

// Sweep runs one round: Decide for every node in increasing id order over the
// same Coloring, so recolourings by lower ids are seen by higher ids within
// the pass.
func Sweep(g *core.Graph, c Coloring, r Rule, rng Source) (SweepStats, error) {
	if err := r.Validate(); err != nil {
		return SweepStats{}, err
	}
	if err := Check(g, c); err != nil {
		return SweepStats{}, err
	}

	var (
		stats SweepStats
		s     neighborSet
		node  int
	)
	for node = 0; node < len(c); node++ {
		d := decide(g, c, node, r, rng, &s)
		switch d.Kind {
		case NoConflict:
			continue
		case Kept:
			stats.Kept++
		case Recolored:
			stats.Recolored++
		case Stuck:
			stats.Stuck++
		}
		stats.Conflicted++
	}

	return stats, nil
}

// decide is the validated core of Decide; s is reused across calls.
func decide(g *core.Graph, c Coloring, node int, r Rule, rng Source, s *neighborSet) Decision {
	own := c[node]
	d := Decision{Node: node, Kind: NoConflict, From: own, To: own}

	s.reset()
	nbrs, _ := g.Neighbors(node)
	for _, v := range nbrs {
		s.add(c[v])
	}
	if !s.has(own) {
		return d
	}
	if rng.Float64() >= r.ChangeProbability {
		d.Kind = Kept
		return d
	}
	for col := 0; col < r.Active; col++ {
		if !s.has(col) {
			c[node] = col
			d.Kind = Recolored
			d.To = col
			return d
		}
	}
	d.Kind = Stuck

	return d
}

// neighborSet is a stamp-based membership set over small non-negative colour
// indices; reset is O(1).
type neighborSet struct {
	stamp uint32
	marks []uint32
}

func (s *neighborSet) reset() {
	s.stamp++
	if s.stamp == 0 {
		// wrapped: clear so stale marks cannot alias the new stamp
		for i := range s.marks {
			s.marks[i] = 0
		}
		s.stamp = 1
	}
}

func (s *neighborSet) add(col int) {
	if col < 0 {
		return
	}
	if col >= len(s.marks) {
		grown := make([]uint32, col+1)
		copy(grown, s.marks)
		s.marks = grown
	}
	s.marks[col] = s.stamp
}

func (s *neighborSet) has(col int) bool {
	return col >= 0 && col < len(s.marks) && s.marks[col] == s.stamp
}
