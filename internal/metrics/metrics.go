package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the automation collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	JobRunsTotal    *prometheus.CounterVec
	JobSkippedTotal *prometheus.CounterVec
	JobDuration     *prometheus.HistogramVec

	ScannedGiveawaysTotal *prometheus.CounterVec
	EntriesTotal          *prometheus.CounterVec
	SafetyChecksTotal     *prometheus.CounterVec
	CyclesTotal           *prometheus.CounterVec
	PointsBalance         prometheus.Gauge
}

// New registers the collectors on a fresh registry, alongside the go and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		JobRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_job_runs_total",
				Help: "Scheduled job runs by job id and result",
			},
			[]string{"job", "result"},
		),
		JobSkippedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_job_skipped_total",
				Help: "Firings skipped because the previous run of the job was still in flight",
			},
			[]string{"job"},
		),
		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "autojoin_job_duration_seconds",
				Help:    "Scheduled job run time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 14), // 50ms .. ~7min
			},
			[]string{"job"},
		),
		ScannedGiveawaysTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_scanned_giveaways_total",
				Help: "Giveaways written by scans by source and outcome (new/updated)",
			},
			[]string{"source", "outcome"},
		),
		EntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_entries_total",
				Help: "Entry attempts by entry type and status",
			},
			[]string{"entry_type", "status"},
		),
		SafetyChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_safety_checks_total",
				Help: "Safety checks by outcome",
			},
			[]string{"outcome"},
		),
		CyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autojoin_cycles_total",
				Help: "Automation cycles by outcome",
			},
			[]string{"outcome"},
		),
		PointsBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "autojoin_points_balance",
				Help: "Last observed points balance",
			},
		),
	}
}

// Handler exposes the registry for scraping
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveJobRun records one finished job run
func (m *Metrics) ObserveJobRun(job string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.JobRunsTotal.WithLabelValues(job, result).Inc()
	m.JobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}

// IncJobSkipped records a firing dropped by the overlap rule
func (m *Metrics) IncJobSkipped(job string) {
	if m == nil {
		return
	}
	m.JobSkippedTotal.WithLabelValues(job).Inc()
}

// RecordScan records the outcome of one scan source
func (m *Metrics) RecordScan(source string, created, updated int) {
	if m == nil {
		return
	}
	m.ScannedGiveawaysTotal.WithLabelValues(source, "new").Add(float64(created))
	m.ScannedGiveawaysTotal.WithLabelValues(source, "updated").Add(float64(updated))
}

// RecordEntry records one entry attempt
func (m *Metrics) RecordEntry(entryType, status string) {
	if m == nil {
		return
	}
	m.EntriesTotal.WithLabelValues(entryType, status).Inc()
}

// RecordSafetyCheck records a safety check outcome (safe, unsafe, error)
func (m *Metrics) RecordSafetyCheck(outcome string) {
	if m == nil {
		return
	}
	m.SafetyChecksTotal.WithLabelValues(outcome).Inc()
}

// RecordCycle records an automation cycle outcome (completed, failed, skipped)
func (m *Metrics) RecordCycle(outcome string) {
	if m == nil {
		return
	}
	m.CyclesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetPoints(points int) {
	if m == nil {
		return
	}
	m.PointsBalance.Set(float64(points))
}
