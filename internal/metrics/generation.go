// Package metrics собирает Prometheus-метрики генерации уровней.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/levelgen/internal/schema"
)

// GenerationMetrics реализует levelgen.Recorder и считает попадания в кеш схем.
type GenerationMetrics struct {
	duration    prometheus.Histogram
	generations prometheus.Counter
	features    *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewGenerationMetrics создаёт метрики и регистрирует их в reg (nil - дефолтный регистр).
func NewGenerationMetrics(namespace string, reg prometheus.Registerer) *GenerationMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &GenerationMetrics{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Длительность генерации схемы уровня.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Количество сгенерированных схем.",
		}),
		features: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "features_total",
			Help:      "Количество сгенерированных фич по видам.",
		}, []string{"kind"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_cache_hits_total",
			Help:      "Попадания в кеш схем.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_cache_misses_total",
			Help:      "Промахи кеша схем.",
		}),
	}
	reg.MustRegister(m.duration, m.generations, m.features, m.cacheHits, m.cacheMisses)
	return m
}

// ObserveGeneration фиксирует одну генерацию.
func (m *GenerationMetrics) ObserveGeneration(d time.Duration, counts map[schema.Kind]int) {
	m.duration.Observe(d.Seconds())
	m.generations.Inc()
	for kind, n := range counts {
		m.features.WithLabelValues(kind.String()).Add(float64(n))
	}
}

// CacheHit отмечает попадание в кеш схем
func (m *GenerationMetrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss отмечает промах кеша схем
func (m *GenerationMetrics) CacheMiss() { m.cacheMisses.Inc() }
