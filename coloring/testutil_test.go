package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/core"
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

// build is a tiny fixture helper around builder.BuildGraph.
func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	return g
}
