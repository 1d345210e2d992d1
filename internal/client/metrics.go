package client

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teamsd",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "The total number of backend API requests by operation and outcome",
	}, []string{"operation", "outcome"})

	backendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "teamsd",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend API request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// outcome is "ok" for a successful call, otherwise the ErrorKind of the failure
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Kind.String()
	}
	return KindInternal.String()
}

func observeBackendCall(operation string, start time.Time, err error) {
	backendRequestCounter.WithLabelValues(operation, outcome(err)).Inc()
	backendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
