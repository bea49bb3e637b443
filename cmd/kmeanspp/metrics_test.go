package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/kmeanspp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ kmeanspp.MetricsCollector = (*PrometheusCollector)(nil)

func findFamily(t *testing.T, mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func TestPrometheusCollector(t *testing.T) {
	p := NewPrometheusCollector()

	p.RecordRound(1, 3.5, 4)
	p.RecordRound(2, 0, 0)
	p.RecordFit(6, 2, 2, true, 10*time.Millisecond, nil)
	p.RecordFit(6, 2, 200, false, time.Millisecond, nil)
	p.RecordFit(6, 7, 0, false, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(p.fits.WithLabelValues("converged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.fits.WithLabelValues("exhausted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.fits.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(p.points))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.rounds))
	assert.Equal(t, 4.0, testutil.ToFloat64(p.reassigned))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.lastMovement))

	mfs, err := p.Registry().Gather()
	require.NoError(t, err)

	rounds := findFamily(t, mfs, "kmeanspp_fit_rounds")
	require.Len(t, rounds.GetMetric(), 1)
	h := rounds.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), h.GetSampleCount())
	assert.Equal(t, 202.0, h.GetSampleSum())

	durations := findFamily(t, mfs, "kmeanspp_fit_duration_seconds")
	assert.Equal(t, uint64(3), durations.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusCollector_WriteTextfile(t *testing.T) {
	p := NewPrometheusCollector()
	p.RecordFit(10, 3, 4, true, time.Second, nil)

	path := filepath.Join(t.TempDir(), "kmeanspp.prom")
	require.NoError(t, p.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# TYPE kmeanspp_fits_total counter")
	assert.Contains(t, string(data), "kmeanspp_points_processed_total 10")
}
