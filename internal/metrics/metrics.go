package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "energycompare_requests_total",
			Help: "Total number of API requests per path",
		},
		[]string{"path"},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "energycompare_request_duration_seconds",
			Help:    "Request duration in seconds per path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	RequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "energycompare_request_errors_total",
			Help: "Total number of error responses per path and code",
		},
		[]string{"path", "code"},
	)

	ComparisonsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "energycompare_comparisons_total",
			Help: "Total number of comparison sets computed",
		},
	)

	CustomTariffs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "energycompare_custom_tariffs",
			Help: "Number of custom tariffs held in the current session",
		},
	)

	CustomTariffRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "energycompare_custom_tariff_rejections_total",
			Help: "Total number of custom tariff adds rejected by validation",
		},
	)
)
