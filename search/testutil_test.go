package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/palette"
	"github.com/katalvlaran/swarmcolor/search"
)

// scripted replays fixed Float64 and Intn values; exhausting a script fails the test.
type scripted struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "Float64 script exhausted")
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "Intn script exhausted")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n)
	return v
}

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	return g
}

func tokens(t *testing.T, toks ...string) *palette.Palette {
	t.Helper()
	p, err := palette.New(toks)
	require.NoError(t, err)
	return p
}

// monotone returns greedy-friendly monotone params (every conflicted node recolours).
func monotone(rounds int) search.Params {
	return search.Params{
		Mode:                search.Monotone,
		ChangeProbability:   1,
		MaxRoundsPerAttempt: rounds,
		MinPaletteSize:      1,
	}
}

func adaptive(rounds, total int) search.Params {
	p := monotone(rounds)
	p.Mode = search.Adaptive
	p.MaxTotalRounds = total
	return p
}

func newEngine(t *testing.T, g *core.Graph, p *palette.Palette, params search.Params, opts ...search.Option) *search.Engine {
	t.Helper()
	e, err := search.NewEngine(g, p, params, opts...)
	require.NoError(t, err)
	return e
}
