package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveHTTP("GET", "GET /live", 200, time.Millisecond)
	m.ObserveLLM("estimate", nil, time.Second)
	m.EstimateFallback("upstream")
	m.MealRecorded("ledger", 1)
	m.PlanCache(true)
	m.PantryUpserts(3)
	m.PlansPruned(2)

	if m.Registry() != nil {
		t.Error("nil Metrics should have no registry")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil handler status = %d, want 404", rec.Code)
	}
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveLLM("estimate", nil, 10*time.Millisecond)
	m.ObserveLLM("estimate", errors.New("boom"), 10*time.Millisecond)
	m.ObserveLLM("generate", nil, 10*time.Millisecond)
	m.EstimateFallback("upstream")
	m.EstimateFallback("upstream")
	m.PlanCache(true)
	m.PlanCache(false)
	m.PlanCache(false)
	m.PantryUpserts(4)
	m.PantryUpserts(0)
	m.PlansPruned(5)
	m.MealRecorded("day", 3)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"estimate ok", testutil.ToFloat64(m.llmCalls.WithLabelValues("estimate", OutcomeOK)), 1},
		{"estimate error", testutil.ToFloat64(m.llmCalls.WithLabelValues("estimate", OutcomeError)), 1},
		{"generate ok", testutil.ToFloat64(m.llmCalls.WithLabelValues("generate", OutcomeOK)), 1},
		{"fallbacks", testutil.ToFloat64(m.estimateFallback.WithLabelValues("upstream")), 2},
		{"cache hit", testutil.ToFloat64(m.planCache.WithLabelValues("hit")), 1},
		{"cache miss", testutil.ToFloat64(m.planCache.WithLabelValues("miss")), 2},
		{"pantry upserts", testutil.ToFloat64(m.pantryUpserts), 4},
		{"plans pruned", testutil.ToFloat64(m.plansPruned), 5},
		{"meals recorded", testutil.ToFloat64(m.mealsRecorded.WithLabelValues("day")), 3},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMetrics_HandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveHTTP(http.MethodPost, "POST /api/pantry", http.StatusCreated, 5*time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	text := string(body)
	for _, want := range []string{
		"pebbl_http_request_duration_seconds_count",
		`route="POST /api/pantry"`,
		`status="201"`,
		"go_goroutines",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestTimer_Elapsed(t *testing.T) {
	t.Parallel()

	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)
	if timer.Elapsed() < 5*time.Millisecond {
		t.Errorf("Elapsed() = %v, want >= 5ms", timer.Elapsed())
	}
}
