package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/coloring"
	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/history"
)

func path(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(n))
	require.NoError(t, err)
	return g
}

// observe is a helper computing the conflict count like the engine does.
func observe(tr *history.Tracker, it int, g *core.Graph, c coloring.Coloring) {
	tr.Observe(it, g, c, coloring.Conflicts(g, c))
}

func values(s history.Series) []int {
	out := make([]int, len(s.BestColors))
	for i, p := range s.BestColors {
		if p == nil {
			out[i] = -1
		} else {
			out[i] = *p
		}
	}
	return out
}

func TestTracker_RecordRule(t *testing.T) {
	g := path(t, 4) // 0-1-2-3
	var tr history.Tracker

	observe(&tr, 1, g, coloring.Coloring{0, 0, 1, 2}) // 1 conflict, no record
	observe(&tr, 2, g, coloring.Coloring{0, 1, 2, 0}) // valid, 3 colours
	observe(&tr, 3, g, coloring.Coloring{0, 1, 0, 2}) // valid, still 3: keep
	observe(&tr, 4, g, coloring.Coloring{0, 0, 0, 0}) // conflicts, record still valid
	observe(&tr, 5, g, coloring.Coloring{0, 1, 0, 1}) // valid, 2 colours: improve

	s := tr.Snapshot()
	require.Equal(t, []int{1, 2, 3, 4, 5}, s.Iterations)
	require.Equal(t, []int{-1, 3, 3, 3, 2}, values(s))
	require.Equal(t, []int{1, 0, 0, 0, 0}, s.LowestConflicts)
	require.Equal(t, coloring.Coloring{0, 1, 0, 1}, s.BestColoring)

	best, distinct, ok := tr.Best()
	require.True(t, ok)
	require.Equal(t, 2, distinct)
	best[0] = 9
	again, _, _ := tr.Best()
	require.Equal(t, 0, again[0], "Best must return a copy")
}

// TestTracker_NonIncreasingWithoutPerturbation checks the recorded size never
// grows while the topology is fixed.
func TestTracker_NonIncreasingWithoutPerturbation(t *testing.T) {
	g := path(t, 5)
	var tr history.Tracker
	seq := []coloring.Coloring{
		{0, 1, 2, 3, 4},
		{0, 0, 1, 2, 3},
		{0, 1, 2, 0, 1},
		{0, 1, 2, 3, 0},
		{1, 0, 1, 0, 1},
		{0, 1, 2, 0, 1},
	}
	for i, c := range seq {
		observe(&tr, i+1, g, c)
	}
	vals := values(tr.Snapshot())
	for i := 1; i < len(vals); i++ {
		require.LessOrEqual(t, vals[i], vals[i-1], "entry %d", i)
	}
	require.Equal(t, 2, vals[len(vals)-1])
}

// TestTracker_BreakingPerturbationLeavesGap checks a gap follows a
// perturbation that invalidates the record, even when the next colouring is
// itself valid.
func TestTracker_BreakingPerturbationLeavesGap(t *testing.T) {
	g := path(t, 3) // 0-1-2
	var tr history.Tracker
	observe(&tr, 1, g, coloring.Coloring{0, 1, 0})

	_, err := g.ToggleEdge(0, 2) // triangle: {0,1,0} now conflicts
	require.NoError(t, err)
	tr.MarkPerturbation(1, g)

	_, _, ok := tr.Best()
	require.False(t, ok)

	observe(&tr, 2, g, coloring.Coloring{0, 1, 2}) // valid on the triangle
	observe(&tr, 3, g, coloring.Coloring{0, 0, 2}) // conflicts, new record holds

	s := tr.Snapshot()
	require.Equal(t, []int{1}, s.Perturbations)
	require.Equal(t, []int{2, -1, 3}, values(s))
}

func TestTracker_RecordDroppedOnConflictAfterTopologyChange(t *testing.T) {
	g := path(t, 3)
	var tr history.Tracker
	observe(&tr, 1, g, coloring.Coloring{0, 1, 0})
	observe(&tr, 2, g, coloring.Coloring{0, 0, 0})

	// mutate without telling the tracker: Observe re-validates on its own
	_, err := g.ToggleEdge(0, 2)
	require.NoError(t, err)
	observe(&tr, 3, g, coloring.Coloring{0, 0, 1})
	observe(&tr, 4, g, coloring.Coloring{0, 0, 0})

	s := tr.Snapshot()
	require.Equal(t, []int{2, 2, -1, -1}, values(s))
	// lowest restarts when the record stops validating: 1 at round 3, then still 1.
	require.Equal(t, []int{0, 0, 1, 1}, s.LowestConflicts)
}

func TestTracker_LowestRestartsOnPerturbation(t *testing.T) {
	g := path(t, 3)
	var tr history.Tracker
	observe(&tr, 1, g, coloring.Coloring{0, 0, 0}) // 2
	observe(&tr, 2, g, coloring.Coloring{0, 0, 1}) // 1
	// nothing to break, lowest still restarts
	tr.MarkPerturbation(2, g)
	observe(&tr, 3, g, coloring.Coloring{0, 0, 0}) // 2 on the new topology
	observe(&tr, 4, g, coloring.Coloring{1, 0, 0}) // 1

	require.Equal(t, []int{2, 1, 2, 1}, tr.Snapshot().LowestConflicts)
}

func TestTracker_SnapshotIsDeep(t *testing.T) {
	g := path(t, 2)
	var tr history.Tracker
	observe(&tr, 1, g, coloring.Coloring{0, 1})

	s := tr.Snapshot()
	*s.BestColors[0] = 42
	s.Iterations[0] = 99
	s.BestColoring[0] = 7

	fresh := tr.Snapshot()
	require.Equal(t, 2, *fresh.BestColors[0])
	require.Equal(t, 1, fresh.Iterations[0])
	require.Equal(t, 0, fresh.BestColoring[0])
	require.Equal(t, 1, tr.Len())
}
