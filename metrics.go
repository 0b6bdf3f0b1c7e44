package lingua

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the caching decorator with Prometheus counters. A nil
// *Metrics is valid and records nothing, so instrumentation stays opt-in.
type Metrics struct {
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	Translations      prometheus.Counter
	Failures          prometheus.Counter
	DroppedTokens     prometheus.Counter
	TranslateDuration prometheus.Histogram
}

// NewMetrics creates and registers the decorator's metrics with reg. Pass
// prometheus.DefaultRegisterer to use the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingua_cache_hits_total",
			Help: "Total number of translation cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingua_cache_misses_total",
			Help: "Total number of translation cache misses",
		}),
		Translations: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingua_translations_total",
			Help: "Total number of successful delegate translations",
		}),
		Failures: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingua_translation_failures_total",
			Help: "Total number of failed delegate translations",
		}),
		DroppedTokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingua_dropped_tokens_total",
			Help: "Total number of placeholder tokens dropped by the delegate",
		}),
		TranslateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lingua_translate_duration_seconds",
			Help:    "Duration of delegate translate calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) cacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) cacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

func (m *Metrics) translateDone(d time.Duration) {
	if m != nil {
		m.Translations.Inc()
		m.TranslateDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) translateFailed() {
	if m != nil {
		m.Failures.Inc()
	}
}

func (m *Metrics) tokensDropped(n int) {
	if m != nil {
		m.DroppedTokens.Add(float64(n))
	}
}
