package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	opsTotal     *prometheus.CounterVec
	scanDuration prometheus.Histogram
}

func NewMetrics(registerer prometheus.Registerer, recordCount func() float64) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		opsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "addressbook_operations_total",
				Help: "Total book operations by operation and outcome.",
			},
			[]string{"op", "status"},
		),
		scanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "addressbook_birthday_scan_duration_seconds",
				Help:    "Duration of upcoming-birthday scans in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	collectors := []prometheus.Collector{m.opsTotal, m.scanDuration}
	if recordCount != nil {
		collectors = append(collectors, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "addressbook_records",
				Help: "Current number of records in the book.",
			},
			recordCount,
		))
	}

	registerer.MustRegister(collectors...)

	return m
}

func (m *Metrics) ObserveOp(op, status string) {
	if m == nil {
		return
	}

	m.opsTotal.WithLabelValues(op, status).Inc()
}

func (m *Metrics) ObserveScan(duration time.Duration) {
	if m == nil {
		return
	}

	m.scanDuration.Observe(duration.Seconds())
}
