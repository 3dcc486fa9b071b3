package query

import (
	"time"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	cw721Subsystem = "cw721"

	smartQueriesTotal         = "smart_queries_total"
	smartQueryDurationSeconds = "smart_query_duration_seconds"
	grpcCallDurationSeconds   = "grpc_call_duration_seconds"

	queryStatusSuccess = "success"
	queryStatusFailure = "failure"
)

var (
	// SmartQueriesTotal is a Counter metric for the smart queries issued,
	// labeled by the query variant and its outcome.
	//
	// Usage:
	// - Track which queries are issued and how often.
	// - Monitor the failure rate per query variant.
	SmartQueriesTotal = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: cw721Subsystem,
		Name:      smartQueriesTotal,
		Help:      "Total number of smart queries issued, labeled by query variant and status.",
	}, []string{"query", "status"})

	// SmartQueryDurationSeconds observes the round trip duration of smart
	// queries, labeled by query variant.
	SmartQueryDurationSeconds = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Subsystem: cw721Subsystem,
		Name:      smartQueryDurationSeconds,
		Help:      "Histogram of smart query durations, labeled by query variant.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"query"})

	// GRPCCallDurationSeconds observes the duration of every gRPC call made
	// through a connection wrapped by NewGRPCClientWithDebugMetrics.
	GRPCCallDurationSeconds = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Subsystem: cw721Subsystem,
		Name:      grpcCallDurationSeconds,
		Help:      "Histogram of gRPC call durations, labeled by method.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method"})
)

// CaptureSmartQuery records the outcome and duration of a smart query which
// started at startTime.
func CaptureSmartQuery(queryVariant string, startTime time.Time, err error) {
	status := queryStatusSuccess
	if err != nil {
		status = queryStatusFailure
	}

	SmartQueriesTotal.With("query", queryVariant, "status", status).Add(1)
	SmartQueryDurationSeconds.With("query", queryVariant).Observe(time.Since(startTime).Seconds())
}

// CaptureGRPCCallDuration records the duration of a gRPC call to method which
// started at startTime.
func CaptureGRPCCallDuration(method string, startTime time.Time) {
	GRPCCallDurationSeconds.With("method", method).Observe(time.Since(startTime).Seconds())
}
