package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements kmeanspp.MetricsCollector on a private
// registry, exported as a node-exporter textfile on exit.
type PrometheusCollector struct {
	registry *prometheus.Registry

	fits         *prometheus.CounterVec
	fitDuration  prometheus.Histogram
	fitRounds    prometheus.Histogram
	points       prometheus.Counter
	rounds       prometheus.Counter
	reassigned   prometheus.Counter
	lastMovement prometheus.Gauge
}

func NewPrometheusCollector() *PrometheusCollector {
	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kmeanspp_fits_total",
			Help: "Total clustering calls by outcome",
		}, []string{"status"}),
		fitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kmeanspp_fit_duration_seconds",
			Help:    "Duration of clustering calls",
			Buckets: prometheus.DefBuckets,
		}),
		fitRounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kmeanspp_fit_rounds",
			Help:    "Rounds executed per clustering call",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kmeanspp_points_processed_total",
			Help: "Points clustered by successful calls",
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kmeanspp_rounds_total",
			Help: "Assignment and update rounds executed",
		}),
		reassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kmeanspp_reassignments_total",
			Help: "Points that changed cluster between rounds",
		}),
		lastMovement: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kmeanspp_last_max_movement",
			Help: "Largest centroid movement of the most recent round",
		}),
	}

	p.registry.MustRegister(p.fits, p.fitDuration, p.fitRounds, p.points, p.rounds, p.reassigned, p.lastMovement)
	return p
}

func (p *PrometheusCollector) RecordFit(points, _, rounds int, converged bool, d time.Duration, err error) {
	status := "exhausted"
	switch {
	case err != nil:
		status = "error"
	case converged:
		status = "converged"
	}
	p.fits.WithLabelValues(status).Inc()
	p.fitDuration.Observe(d.Seconds())
	if err != nil {
		return
	}
	p.fitRounds.Observe(float64(rounds))
	p.points.Add(float64(points))
}

func (p *PrometheusCollector) RecordRound(_ int, maxMovement float64, reassigned int) {
	p.rounds.Inc()
	p.reassigned.Add(float64(reassigned))
	p.lastMovement.Set(maxMovement)
}

// Registry exposes the underlying registry.
func (p *PrometheusCollector) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile atomically writes all metrics to path.
func (p *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
