package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/metrics"
)

func TestPrometheus_ObserveRound(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObserveRound(4, 7, 3)
	m.ObserveRound(4, 2, 5)

	require.Equal(t, 2.0, testutil.ToFloat64(m.RoundsTotal))
	require.Equal(t, 8.0, testutil.ToFloat64(m.RecoloringsTotal))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Conflicts))
	require.Equal(t, 4.0, testutil.ToFloat64(m.PaletteSize))
}

func TestPrometheus_ObserveAttempt(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObserveAttempt(3, "converged", 12)
	m.ObserveAttempt(3, "converged", 4)
	m.ObserveAttempt(2, "exhausted", 500)

	require.Equal(t, 2.0, testutil.ToFloat64(m.AttemptsTotal.WithLabelValues("converged", "3")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.AttemptsTotal.WithLabelValues("exhausted", "2")))
	require.Equal(t, 1, testutil.CollectAndCount(m.AttemptRounds))
}

func TestPrometheus_ObservePerturbation(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObservePerturbation(6, 40)
	m.ObservePerturbation(5, 41)

	require.Equal(t, 2.0, testutil.ToFloat64(m.PerturbationsTotal))
	require.Equal(t, 11.0, testutil.ToFloat64(m.ToggledEdgesTotal))
	require.Equal(t, 41.0, testutil.ToFloat64(m.Edges))
}

func TestPrometheus_PrivateRegistries(t *testing.T) {
	a, b := metrics.NewPrometheus(), metrics.NewPrometheus()
	a.ObserveRound(1, 0, 0)
	require.Equal(t, 1.0, testutil.ToFloat64(a.RoundsTotal))
	require.Equal(t, 0.0, testutil.ToFloat64(b.RoundsTotal))
}

func TestPrometheus_WriteFile(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObserveRound(5, 1, 2)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "swarmcolor_search_rounds_total 1")
	require.Contains(t, string(data), "swarmcolor_search_palette_size 5")

	err = m.WriteFile(filepath.Join(t.TempDir(), "missing", "run.prom"))
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	var r metrics.Recorder = metrics.Nop{}
	require.NotPanics(t, func() {
		r.ObserveRound(1, 2, 3)
		r.ObserveAttempt(1, "converged", 1)
		r.ObservePerturbation(1, 1)
	})
}
