package kmeanspp

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    fits   *prometheus.CounterVec
//	    rounds prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFit(points, k, rounds int, converged bool, duration time.Duration, err error) {
//	    p.fits.WithLabelValues(status(converged, err)).Inc()
//	    p.rounds.Observe(float64(rounds))
//	}
type MetricsCollector interface {
	// RecordFit is called once per Fit call.
	// points and k describe the input, rounds is the number of rounds executed,
	// duration is the total time taken, err is nil if successful.
	RecordFit(points, k, rounds int, converged bool, duration time.Duration, err error)

	// RecordRound is called after every round with the largest centroid
	// movement and the number of points that changed cluster.
	RecordRound(round int, maxMovement float64, reassigned int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordRound(int, float64, int)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount        atomic.Int64
	FitErrors       atomic.Int64
	FitConverged    atomic.Int64
	FitTotalNanos   atomic.Int64
	PointsProcessed atomic.Int64
	RoundCount      atomic.Int64
	Reassignments   atomic.Int64
	lastMaxMovement atomic.Uint64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(points, k, rounds int, converged bool, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.PointsProcessed.Add(int64(points))
	if converged {
		b.FitConverged.Add(1)
	}
}

// RecordRound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRound(round int, maxMovement float64, reassigned int) {
	b.RoundCount.Add(1)
	b.Reassignments.Add(int64(reassigned))
	b.lastMaxMovement.Store(math.Float64bits(maxMovement))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:        b.FitCount.Load(),
		FitErrors:       b.FitErrors.Load(),
		FitConverged:    b.FitConverged.Load(),
		FitAvgNanos:     b.getAvgFitNanos(),
		PointsProcessed: b.PointsProcessed.Load(),
		RoundCount:      b.RoundCount.Load(),
		Reassignments:   b.Reassignments.Load(),
		LastMaxMovement: math.Float64frombits(b.lastMaxMovement.Load()),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	FitCount        int64
	FitErrors       int64
	FitConverged    int64
	FitAvgNanos     int64
	PointsProcessed int64
	RoundCount      int64
	Reassignments   int64
	LastMaxMovement float64
}
