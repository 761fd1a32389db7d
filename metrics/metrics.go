package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/varaeff/wordcheck.api/enums"
	"github.com/varaeff/wordcheck.api/matchers"
)

type Metrics struct {
	registry      *prometheus.Registry
	checks        *prometheus.CounterVec
	words         *prometheus.CounterVec
	checkDuration prometheus.Histogram
	exports       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcheck_checks_total",
			Help: "Number of word list checks, by mode.",
		}, []string{"mode"}),
		words: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcheck_words_total",
			Help: "Number of classified words, by status.",
		}, []string{"status"}),
		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordcheck_check_duration_seconds",
			Help:    "Time spent normalizing and classifying a check.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcheck_exports_total",
			Help: "Number of word exports, by outcome.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(m.checks, m.words, m.checkDuration, m.exports)
	return m
}

func (m *Metrics) ObserveCheck(mode enums.Mode, c matchers.Classification, elapsed time.Duration) {
	if m == nil {
		return
	}

	found, notFound, _ := matchers.Partition(c)
	m.checks.WithLabelValues(string(mode)).Inc()
	m.words.WithLabelValues(string(enums.FilterFound)).Add(float64(len(found)))
	m.words.WithLabelValues(string(enums.FilterNotFound)).Add(float64(len(notFound)))
	m.checkDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExport(status enums.ExportStatus) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
