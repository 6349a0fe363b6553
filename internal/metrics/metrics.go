// Package metrics exposes the Prometheus collectors of the API.
//
// All methods are safe to call on a nil *Metrics, so components can be
// constructed without metrics in tests and tools.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pebbl"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics owns a private registry and the collectors registered in it.
type Metrics struct {
	registry *prometheus.Registry

	httpDuration     *prometheus.HistogramVec
	llmCalls         *prometheus.CounterVec
	llmDuration      *prometheus.HistogramVec
	estimateFallback *prometheus.CounterVec
	mealsRecorded    *prometheus.CounterVec
	planCache        *prometheus.CounterVec
	pantryUpserts    prometheus.Counter
	plansPruned      prometheus.Counter
}

// New creates a Metrics instance with Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Language model calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		llmDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Language model call latency by operation.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"operation"}),
		estimateFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nutrition_estimate_fallbacks_total",
			Help:      "Meals recorded with a zero nutrition vector because estimation failed.",
		}, []string{"reason"}),
		mealsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meals_recorded_total",
			Help:      "Meals recorded by entry path.",
		}, []string{"path"}),
		planCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meal_plan_cache_total",
			Help:      "Meal plan lookups by result (hit, miss).",
		}, []string{"result"}),
		pantryUpserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pantry_suggestion_upserts_total",
			Help:      "Shopping-list names applied to pantries.",
		}),
		plansPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meal_plans_pruned_total",
			Help:      "Expired meal plans deleted by pruning.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpDuration,
		m.llmCalls,
		m.llmDuration,
		m.estimateFallback,
		m.mealsRecorded,
		m.planCache,
		m.pantryUpserts,
		m.plansPruned,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTP records one served request. route is the matched mux pattern,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveLLM records one language model call.
func (m *Metrics) ObserveLLM(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.llmCalls.WithLabelValues(operation, outcome).Inc()
	m.llmDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// EstimateFallback counts a meal stored with a zero nutrition vector.
func (m *Metrics) EstimateFallback(reason string) {
	if m == nil {
		return
	}
	m.estimateFallback.WithLabelValues(reason).Inc()
}

// MealRecorded counts a meal written through the given path (ledger, slot, day).
func (m *Metrics) MealRecorded(path string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.mealsRecorded.WithLabelValues(path).Add(float64(n))
}

// PlanCache counts a cache lookup.
func (m *Metrics) PlanCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.planCache.WithLabelValues(result).Inc()
}

// PantryUpserts counts shopping-list names applied to a pantry.
func (m *Metrics) PantryUpserts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pantryUpserts.Add(float64(n))
}

// PlansPruned counts deleted expired plans.
func (m *Metrics) PlansPruned(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.plansPruned.Add(float64(n))
}

// Timer measures the time since its creation.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
