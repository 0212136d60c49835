package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// prediction service.
type Metrics struct {
	PredictionsTotal   *prometheus.CounterVec // labels: city, risk (peak tier of the range)
	PredictionDuration prometheus.Histogram
	ValidationErrors   prometheus.Counter
	ModelLoaded        prometheus.Gauge
	CityRisk           *prometheus.GaugeVec // labels: city; today's probability, set by the outlook job
	AuditEvents        *prometheus.CounterVec // labels: outcome={stored,failed}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.PredictionsTotal,
		m.PredictionDuration,
		m.ValidationErrors,
		m.ModelLoaded,
		m.CityRisk,
		m.AuditEvents,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so parallel
// tests do not trip the "already registered" panic.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "predictions_total",
			Help:      "Served prediction requests by city and peak risk tier.",
		}, []string{"city", "risk"}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatwave",
			Name:      "prediction_duration_seconds",
			Help:      "Duration of a complete predict request.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "validation_errors_total",
			Help:      "Rejected prediction requests.",
		}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatwave",
			Name:      "model_loaded",
			Help:      "1 when the classifier artifact is loaded, 0 otherwise.",
		}),
		CityRisk: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "heatwave",
			Name:      "city_risk_probability",
			Help:      "Today's heatwave probability per city, refreshed by the outlook schedule.",
		}, []string{"city"}),
		AuditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "audit_events_total",
			Help:      "Prediction audit events by outcome.",
		}, []string{"outcome"}),
	}
}
