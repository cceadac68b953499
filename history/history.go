// Package history records, per global round, the best valid colouring size,
// the lowest conflict count seen for the current topology, and the rounds at
// which the topology was perturbed.
//
// The three series grow by one entry per Observe and are never rewritten.
// Snapshot hands out deep copies for reporting.
package history

import (
	"github.com/katalvlaran/swarmcolor/coloring"
	"github.com/katalvlaran/swarmcolor/core"
)

// Tracker is the single-owner recorder threaded through a run.
// The zero value is ready to use.
type Tracker struct {
	iterations      []int
	bestColors      []*int
	lowestConflicts []int
	perturbations   []int

	best         coloring.Coloring // nil when no valid record is known
	bestDistinct int

	lowest      int
	lowestKnown bool

	// set by a perturbation that broke the record; the next entry is a gap
	gapPending bool
}

// Series is a read-only copy of everything a Tracker has recorded.
type Series struct {
	// Iterations[i] is the global round of entry i.
	Iterations []int `yaml:"iterations"`
	// BestColors[i] is the distinct-colour count of the best valid record at
	// entry i, or nil when no valid record applied.
	BestColors []*int `yaml:"best_colors"`
	// LowestConflicts[i] is the lowest conflict count seen on the topology
	// current at entry i.
	LowestConflicts []int `yaml:"lowest_conflicts"`
	// Perturbations lists the global rounds after which edges were toggled.
	Perturbations []int `yaml:"perturbations"`
	// BestColoring is the best valid record at the end of the run, if any.
	BestColoring coloring.Coloring `yaml:"best_coloring,omitempty"`
}

// Observe appends one entry for global round iteration, given the live graph,
// the live colouring and its conflict count.
//
// Record rule:
//   - conflicts == 0: store c when there is no record, when the record no
//     longer validates on g, or when c uses strictly fewer distinct colours.
//   - conflicts > 0: keep reporting the record while it still validates on g;
//     otherwise drop it and append a gap.
func (t *Tracker) Observe(iteration int, g *core.Graph, c coloring.Coloring, conflicts int) {
	recordValid := t.best != nil && coloring.Valid(g, t.best)

	// Lowest conflicts for the current topology.
	if !t.lowestKnown || conflicts < t.lowest || (t.best != nil && !recordValid) {
		t.lowest = conflicts
		t.lowestKnown = true
	}
	t.lowestConflicts = append(t.lowestConflicts, t.lowest)
	t.iterations = append(t.iterations, iteration)

	switch {
	case conflicts == 0:
		if d := c.Distinct(); !recordValid || d < t.bestDistinct {
			t.best = c.Clone()
			t.bestDistinct = d
		}
	case !recordValid:
		t.best = nil
		t.bestDistinct = 0
	}

	if t.gapPending || t.best == nil {
		t.bestColors = append(t.bestColors, nil)
	} else {
		t.bestColors = append(t.bestColors, intPtr(t.bestDistinct))
	}
	t.gapPending = false
}

// MarkPerturbation records that the topology changed after round iteration.
// The lowest-conflicts tracker restarts on the new topology, and a record the
// new g breaks is dropped; the next entry is then a gap.
func (t *Tracker) MarkPerturbation(iteration int, g *core.Graph) {
	t.perturbations = append(t.perturbations, iteration)
	t.lowestKnown = false
	if t.best != nil && !coloring.Valid(g, t.best) {
		t.best = nil
		t.bestDistinct = 0
		t.gapPending = true
	}
}

// Best returns a copy of the current record and its distinct-colour count.
func (t *Tracker) Best() (coloring.Coloring, int, bool) {
	if t.best == nil {
		return nil, 0, false
	}

	return t.best.Clone(), t.bestDistinct, true
}

// Len returns the number of observed rounds.
func (t *Tracker) Len() int {
	return len(t.iterations)
}

// Snapshot returns deep copies of all series.
func (t *Tracker) Snapshot() Series {
	s := Series{
		Iterations:      append([]int{}, t.iterations...),
		BestColors:      make([]*int, len(t.bestColors)),
		LowestConflicts: append([]int{}, t.lowestConflicts...),
		Perturbations:   append([]int{}, t.perturbations...),
		BestColoring:    t.best.Clone(),
	}
	for i, p := range t.bestColors {
		if p != nil {
			s.BestColors[i] = intPtr(*p)
		}
	}

	return s
}

func intPtr(v int) *int { return &v }
