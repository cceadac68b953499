package search_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/coloring"
	"github.com/katalvlaran/swarmcolor/metrics"
	"github.com/katalvlaran/swarmcolor/palette"
	"github.com/katalvlaran/swarmcolor/perturb"
	"github.com/katalvlaran/swarmcolor/search"
)

func TestParams_Validate(t *testing.T) {
	ok := search.DefaultParams()
	require.NoError(t, ok.Validate(12))

	mono := monotone(10)
	require.NoError(t, mono.Validate(3), "monotone needs no global budget")

	cases := map[string]func(p *search.Params){
		"mode":            func(p *search.Params) { p.Mode = "greedy" },
		"p below zero":    func(p *search.Params) { p.ChangeProbability = -0.1 },
		"p above one":     func(p *search.Params) { p.ChangeProbability = 1.5 },
		"attempt budget":  func(p *search.Params) { p.MaxRoundsPerAttempt = 0 },
		"global budget":   func(p *search.Params) { p.MaxTotalRounds = 0 },
		"min size zero":   func(p *search.Params) { p.MinPaletteSize = 0 },
		"min size large":  func(p *search.Params) { p.MinPaletteSize = 13 },
		"negative count":  func(p *search.Params) { p.Perturbation.Count = -1 },
		"negative period": func(p *search.Params) { p.Perturbation.Every = -5 },
		"perturb mode":    func(p *search.Params) { p.Perturbation.Mode = "wild" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := search.DefaultParams()
			mutate(&p)
			require.ErrorIs(t, p.Validate(12), search.ErrInvalidParams)
		})
	}
}

func TestNewEngine_Errors(t *testing.T) {
	g := build(t, builder.Path(3))
	pal := palette.Default()

	_, err := search.NewEngine(nil, pal, monotone(5))
	require.ErrorIs(t, err, search.ErrNilGraph)
	_, err = search.NewEngine(g, nil, monotone(5))
	require.ErrorIs(t, err, search.ErrNilPalette)
	_, err = search.NewEngine(g, pal, search.Params{})
	require.ErrorIs(t, err, search.ErrInvalidParams)

	require.Panics(t, func() { search.WithSource(nil) })
	require.Panics(t, func() { search.WithLogger(nil) })
	require.Panics(t, func() { search.WithRecorder(nil) })
}

// TestScenario_CycleTwoColours replays a known draw sequence on the 4-cycle
// 0-1-2-3-0 with two colours: node 0 and node 2 recolour, node 1 is stuck,
// node 3 ends conflict-free, and the alternating colouring appears in round 1.
func TestScenario_CycleTwoColours(t *testing.T) {
	g := build(t, builder.Cycle(4))
	pal := tokens(t, "red", "blue")
	params := monotone(10)
	params.MinPaletteSize = 2
	src := &scripted{t: t, ints: []int{0, 0, 0, 0}, floats: []float64{0, 0, 0}}

	r, err := newEngine(t, g, pal, params, search.WithSource(src)).Run()
	require.NoError(t, err)

	require.Len(t, r.Attempts, 1)
	a := r.Attempts[0]
	require.Equal(t, search.Converged, a.State)
	require.Equal(t, 1, a.Rounds)
	require.Equal(t, 4, a.InitialConflicts)
	require.Equal(t, 0, a.FinalConflicts)
	require.Equal(t, coloring.Coloring{1, 0, 1, 0}, a.Coloring)

	require.NotNil(t, r.Best)
	require.Equal(t, []string{"blue", "red", "blue", "red"}, r.BestTokens())
	require.Equal(t, r.BestTokens(), r.FinalTokens())
	require.Empty(t, src.floats)
	require.Empty(t, src.ints)
}

// TestScenario_CliqueNeedsFive checks K5 cannot converge with four colours.
func TestScenario_CliqueNeedsFive(t *testing.T) {
	g := build(t, builder.Complete(5))
	pal := tokens(t, palette.DefaultTokens()[:4]...)
	params := monotone(50)
	params.ChangeProbability = 0.4

	e := newEngine(t, g, pal, params, search.WithSeed(42))
	a, err := e.RunAttempt(4)
	require.NoError(t, err)
	require.Equal(t, search.Exhausted, a.State)
	require.Equal(t, 50, a.Rounds)
	require.Positive(t, a.FinalConflicts)

	r, err := newEngine(t, g, pal, params, search.WithSeed(42)).Run()
	require.NoError(t, err)
	require.Equal(t, []int{4}, r.Sizes())
	require.Nil(t, r.Best)
	require.Nil(t, r.BestTokens())
}

// TestScenario_EdgelessConvergesAtOnce checks every palette size converges in
// the first round on a graph without edges.
func TestScenario_EdgelessConvergesAtOnce(t *testing.T) {
	g := build(t, builder.Empty(6))
	pal := palette.Default()
	for k := 1; k <= pal.Size(); k++ {
		e := newEngine(t, g, pal, monotone(5), search.WithSeed(int64(k)))
		a, err := e.RunAttempt(k)
		require.NoError(t, err)
		require.Equal(t, search.Converged, a.State, "k=%d", k)
		require.Equal(t, 1, a.Rounds)
		require.Equal(t, 0, a.FinalConflicts)
		require.True(t, a.Coloring.UsesOnly(k))
	}
}

func TestRunAttempt_Errors(t *testing.T) {
	g := build(t, builder.Empty(2))
	e := newEngine(t, g, palette.Default(), adaptive(5, 1))

	_, err := e.RunAttempt(0)
	require.ErrorIs(t, err, palette.ErrActiveSizeOutOfRange)
	_, err = e.RunAttempt(13)
	require.ErrorIs(t, err, palette.ErrActiveSizeOutOfRange)

	_, err = e.RunAttempt(3)
	require.NoError(t, err)
	require.Equal(t, 1, e.Rounds())
	_, err = e.RunAttempt(3)
	require.ErrorIs(t, err, search.ErrBudgetSpent)
}

// TestMonotone_ShrinksUntilExhausted uses K4 with p_change 1: one in-order
// sweep always converges with four or more colours and three never suffice.
func TestMonotone_ShrinksUntilExhausted(t *testing.T) {
	g := build(t, builder.Complete(4))
	r, err := newEngine(t, g, palette.Default(), monotone(20), search.WithSeed(7)).Run()
	require.NoError(t, err)

	require.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}, r.Sizes())
	for i, a := range r.Attempts {
		if i < len(r.Attempts)-1 {
			require.Equal(t, search.Converged, a.State, "size %d", a.PaletteSize)
			require.Equal(t, 0, coloring.Conflicts(g, a.Coloring))
			require.True(t, a.Coloring.UsesOnly(a.PaletteSize))
			continue
		}
		require.Equal(t, search.Exhausted, a.State)
		require.Equal(t, 20, a.Rounds)
	}
	require.Equal(t, 4, r.Best.PaletteSize)
	require.Equal(t, 4, r.Best.Distinct)
	require.Equal(t, 9+20, r.TotalRounds)
	require.Empty(t, r.Perturbations)
}

func TestMonotone_StopsAtMinimumSize(t *testing.T) {
	g := build(t, builder.Empty(3))

	r, err := newEngine(t, g, palette.Default(), monotone(5)).Run()
	require.NoError(t, err)
	require.Len(t, r.Attempts, 12)
	require.Equal(t, 1, r.Best.PaletteSize)
	require.Equal(t, 1, r.Best.Distinct)

	params := monotone(5)
	params.MinPaletteSize = 10
	r, err = newEngine(t, g, palette.Default(), params).Run()
	require.NoError(t, err)
	require.Equal(t, []int{12, 11, 10}, r.Sizes())
}

func TestAdaptive_OscillatesAroundChromaticNumber(t *testing.T) {
	g := build(t, builder.Complete(4))
	r, err := newEngine(t, g, palette.Default(), adaptive(5, 40), search.WithSeed(11)).Run()
	require.NoError(t, err)

	want := []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 4, 3, 4, 3, 4, 3, 4, 3, 4, 3}
	require.Equal(t, want, r.Sizes())
	require.Equal(t, 40, r.TotalRounds)

	last := r.Attempts[len(r.Attempts)-1]
	require.Equal(t, search.Exhausted, last.State)
	require.Equal(t, 1, last.Rounds, "truncated by the global budget")
	require.Equal(t, 4, r.Best.PaletteSize)
	require.Equal(t, 38, r.Best.StartRound)

	require.Len(t, r.History.Iterations, 40)
	for i, v := range r.History.BestColors {
		require.NotNil(t, v, "entry %d", i)
		require.Equal(t, 4, *v)
	}
}

func TestAdaptive_Bounds(t *testing.T) {
	// floor: an edgeless graph keeps converging at the minimum size
	params := adaptive(3, 5)
	params.MinPaletteSize = 2
	r, err := newEngine(t, build(t, builder.Empty(4)), tokens(t, "a", "b", "c"), params).Run()
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 2, 2, 2}, r.Sizes())

	// cap: K4 never converges with three colours and cannot grow past them
	r, err = newEngine(t, build(t, builder.Complete(4)), tokens(t, "a", "b", "c"), adaptive(2, 6)).Run()
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3}, r.Sizes())
	require.Nil(t, r.Best)
}

func TestAdaptive_PerturbsOnSchedule(t *testing.T) {
	g := build(t, builder.Empty(6))
	params := adaptive(4, 10)
	params.Perturbation = perturb.Schedule{Count: 3, Every: 3, Mode: perturb.Exact}

	r, err := newEngine(t, g, palette.Default(), params, search.WithSeed(3)).Run()
	require.NoError(t, err)

	require.Equal(t, []int{3, 6, 9}, r.History.Perturbations)
	require.Len(t, r.Perturbations, 3)
	for i, ev := range r.Perturbations {
		require.Equal(t, 3*(i+1), ev.Iteration)
		require.Equal(t, 3, ev.Toggled)
	}
	require.Equal(t, r.Perturbations[2].EdgesAfter, r.Graph.EdgeCount())
	require.Equal(t, 0, g.EdgeCount(), "the caller's graph is never mutated")
	require.Len(t, r.History.LowestConflicts, 10)

	// monotone runs ignore the schedule
	mono := params
	mono.Mode = search.Monotone
	r, err = newEngine(t, g, palette.Default(), mono, search.WithSeed(3)).Run()
	require.NoError(t, err)
	require.Empty(t, r.Perturbations)
	require.Empty(t, r.History.Perturbations)
}

func TestAdaptive_BestSurvivesFinalTopology(t *testing.T) {
	params := search.Params{
		Mode:                search.Adaptive,
		ChangeProbability:   0.4,
		MaxRoundsPerAttempt: 20,
		MaxTotalRounds:      200,
		MinPaletteSize:      1,
		Perturbation:        perturb.Schedule{Count: 15, Every: 37},
	}
	pal := tokens(t, "a", "b", "c", "d", "e", "f")
	var seed int64
	for seed = 1; seed <= 40; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		r, err := newEngine(t, g, pal, params, search.WithSeed(seed)).Run()
		require.NoError(t, err)
		require.NotEmpty(t, r.Perturbations)
		if r.Best == nil {
			continue
		}
		require.Equal(t, search.Converged, r.Best.State)
		require.True(t, coloring.Valid(r.Graph, r.Best.Coloring),
			"seed %d: best colouring has %d conflicts on the final graph",
			seed, coloring.Conflicts(r.Graph, r.Best.Coloring))
	}
}

func TestRun_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	params := search.DefaultParams()
	params.MaxRoundsPerAttempt = 40
	params.MaxTotalRounds = 300
	params.Perturbation = perturb.Schedule{Count: 4, Every: 50}

	run := func() *search.Result {
		r, err := newEngine(t, g, palette.Default(), params, search.WithSeed(99)).Run()
		require.NoError(t, err)
		return r
	}
	a, b := run(), run()
	require.Equal(t, a.Sizes(), b.Sizes())
	require.Equal(t, a.Final, b.Final)
	require.Equal(t, a.History, b.History)
	require.Equal(t, a.Perturbations, b.Perturbations)
	require.Equal(t, a.Graph.Edges(), b.Graph.Edges())
}

func TestRun_OnlyOnce(t *testing.T) {
	e := newEngine(t, build(t, builder.Empty(2)), palette.Default(), monotone(1))
	_, err := e.Run()
	require.NoError(t, err)
	_, err = e.Run()
	require.ErrorIs(t, err, search.ErrAlreadyRun)
}

func TestRun_ResultIsCopy(t *testing.T) {
	g := build(t, builder.Path(5))
	r, err := newEngine(t, g, palette.Default(), monotone(10), search.WithSeed(2)).Run()
	require.NoError(t, err)
	require.NotNil(t, r.Best)

	before := r.Best.Coloring.Clone()
	r.Attempts[len(r.Attempts)-2].Coloring[0] = 99
	require.Equal(t, before, r.Best.Coloring)
}

func TestEngine_RecorderAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := metrics.NewPrometheus()

	g := build(t, builder.Complete(4))
	r, err := newEngine(t, g, palette.Default(), monotone(3),
		search.WithLogger(logger), search.WithRecorder(rec)).Run()
	require.NoError(t, err)

	require.Equal(t, float64(r.TotalRounds), testutil.ToFloat64(rec.RoundsTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("converged", "4")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("exhausted", "3")))
	require.Equal(t, 3.0, testutil.ToFloat64(rec.PaletteSize))

	out := buf.String()
	require.Contains(t, out, "run started")
	require.Contains(t, out, "attempt finished")
	require.Contains(t, out, "level=DEBUG msg=round")
	require.Contains(t, out, "run finished")
}
