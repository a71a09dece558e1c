package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	InquiriesReceived   prometheus.Counter
	StatusTransitions   *prometheus.CounterVec
	NotifySuccesses     prometheus.Counter
	NotifyFailures      prometheus.Counter
	InquiriesPending    prometheus.Gauge
	InquiriesReviewed   prometheus.Gauge
	InquiriesArchived   prometheus.Gauge
	StatsRefreshSeconds prometheus.Histogram
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		InquiriesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "command_nexus_inquiries_received_total",
			Help: "Total number of inquiries received through the contact form",
		}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "command_nexus_status_transitions_total",
			Help: "Total number of inquiry status transitions by target status",
		}, []string{"status"}),
		NotifySuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "command_nexus_notify_successes_total",
			Help: "Total number of successful sales notification emails",
		}),
		NotifyFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "command_nexus_notify_failures_total",
			Help: "Total number of failed sales notification emails",
		}),
		InquiriesPending: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "command_nexus_inquiries_pending",
			Help: "Number of inquiries currently in pending status",
		}),
		InquiriesReviewed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "command_nexus_inquiries_reviewed",
			Help: "Number of inquiries currently in reviewed status",
		}),
		InquiriesArchived: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "command_nexus_inquiries_archived",
			Help: "Number of inquiries currently in archived status",
		}),
		StatsRefreshSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "command_nexus_stats_refresh_duration_seconds",
			Help:    "Time spent refreshing dashboard stats",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
