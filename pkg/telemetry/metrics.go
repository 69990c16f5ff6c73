package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impact_atlas_analyses_total",
		Help: "Impact analyses requested, by metric and outcome",
	}, []string{"metric", "outcome"})

	ReportsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "impact_atlas_reports_saved_total",
		Help: "Monthly reports created or updated",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impact_atlas_http_requests_total",
		Help: "HTTP requests by route pattern, method and status",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "impact_atlas_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)
