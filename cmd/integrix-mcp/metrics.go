package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/integrix/engine"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "integrix",
		Subsystem: "mcp",
		Name:      "requests_total",
		Help:      "Integration requests by outcome (success or failure kind).",
	}, []string{"outcome"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "integrix",
		Subsystem: "mcp",
		Name:      "request_duration_seconds",
		Help:      "End-to-end integrate handler latency.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	})
)

func observeRequest(err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "internal_error"
		var f *engine.Failure
		if errors.As(err, &f) {
			outcome = f.Kind.String()
		}
	}
	requestsTotal.WithLabelValues(outcome).Inc()
	requestDuration.Observe(elapsed.Seconds())
}
