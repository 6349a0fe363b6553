package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
	"github.com/heartmarshall/pebbl-backend/internal/transport/middleware"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// RouterDeps holds everything NewRouter wires together. Metrics and
// RateLimiter may be nil.
type RouterDeps struct {
	Nutrition *NutritionHandler
	MealPlan  *MealPlanHandler
	Pantry    *PantryHandler
	Profile   *ProfileHandler
	Health    *HealthHandler

	Auth        middleware.Middleware
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Logger      *slog.Logger

	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	MetricsPath string
}

// NewRouter builds the HTTP handler. Routes that call the language model
// share the "llm" rate limit; all other API routes share "api".
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	var apiLimit, llmLimit middleware.Middleware
	if d.RateLimiter != nil && d.RateLimit.Enabled {
		apiLimit = d.RateLimiter.Limit("api", d.RateLimit.APIPerMinute)
		llmLimit = d.RateLimiter.Limit("llm", d.RateLimit.LLMPerMinute)
	}

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Access(d.Logger, d.Metrics, pattern)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(h))
	}

	// Nutrition ledger.
	handle("POST /api/nutrition/meals", d.Nutrition.RecordMeal, llmLimit)
	handle("POST /api/nutrition/days", d.Nutrition.RecordDay, llmLimit)
	handle("GET /api/nutrition/totals", d.Nutrition.ListTotals, apiLimit)
	handle("GET /api/nutrition/totals/{day}", d.Nutrition.GetTotals, apiLimit)
	handle("PUT /api/meals/slots", d.Nutrition.RecordSlot, apiLimit)
	handle("GET /api/meals/today", d.Nutrition.TodaysMeals, apiLimit)

	// Meal plans.
	handle("GET /api/meal-plans/{weekStart}", d.MealPlan.GetPlan, apiLimit)
	handle("POST /api/meal-plans/generate", d.MealPlan.GeneratePlan, llmLimit)
	handle("PUT /api/meal-plans/{id}", d.MealPlan.UpdatePlan, apiLimit)
	handle("POST /api/meals/suggest", d.MealPlan.Suggest, llmLimit)

	// Pantry.
	handle("GET /api/pantry", d.Pantry.List, apiLimit)
	handle("POST /api/pantry", d.Pantry.Add, apiLimit)
	handle("PUT /api/pantry/{id}/status", d.Pantry.SetStatus, apiLimit)
	handle("DELETE /api/pantry/{id}", d.Pantry.Remove, apiLimit)

	// Profile.
	handle("POST /api/weights", d.Profile.LogWeight, apiLimit)
	handle("GET /api/weights", d.Profile.ListWeights, apiLimit)
	handle("POST /api/activities", d.Profile.LogActivity, apiLimit)
	handle("GET /api/activities", d.Profile.ListActivities, apiLimit)
	handle("PUT /api/goal", d.Profile.SetGoal, apiLimit)
	handle("GET /api/goal", d.Profile.GetGoal, apiLimit)

	// Probes.
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	if d.Metrics != nil && d.MetricsPath != "" {
		mux.Handle("GET "+d.MetricsPath, d.Metrics.Handler())
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.CORS(d.CORS),
		middleware.MaxBytes(maxBodyBytes),
		d.Auth,
	)(mux)
}
