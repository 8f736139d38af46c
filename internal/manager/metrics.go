package manager

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricTranslateRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nmtd",
		Subsystem: "manager",
		Name:      "translate_requests_total",
		Help:      "Translate calls by outcome (ok or error kind).",
	}, []string{"status"})

	metricTranslateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nmtd",
		Subsystem: "manager",
		Name:      "translate_duration_seconds",
		Help:      "End-to-end translate latency by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	metricModelLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nmtd",
		Subsystem: "manager",
		Name:      "model_loads_total",
		Help:      "Engine load attempts by result.",
	}, []string{"result"})

	metricModelSwitches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nmtd",
		Subsystem: "manager",
		Name:      "model_switches_total",
		Help:      "Model switch operations by result.",
	}, []string{"result"})
)
