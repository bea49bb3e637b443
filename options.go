package kmeanspp

import "time"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	progressInterval time.Duration
}

// Option configures Fit behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		progressInterval: 5 * time.Second,
	}
}

// WithLogger configures the logger used for round and fit events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithProgressInterval sets the minimum time between info-level progress logs.
// Every round is still logged at debug level. A value <= 0 logs progress for
// every round.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}
