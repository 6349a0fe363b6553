//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/pebbl-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/pebbl-backend/internal/app"
	authpkg "github.com/heartmarshall/pebbl-backend/internal/auth"
	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "pebbl-e2e"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// failingEstimator simulates an unreachable nutrition model while keeping the
// stub plan generator.
type failingEstimator struct {
	*llm.Stub
}

func (failingEstimator) Estimate(context.Context, string) (domain.NutritionVector, error) {
	return domain.NutritionVector{}, domain.Upstream("nutrition estimator", errors.New("connection refused"))
}

// fixedEstimator returns the same vector for every description.
type fixedEstimator struct {
	*llm.Stub
	v domain.NutritionVector
}

func (f fixedEstimator) Estimate(context.Context, string) (domain.NutritionVector, error) {
	return f.v, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{JWTSecret: testJWTSecret, JWTIssuer: testJWTIssuer},
		LLM:  config.LLMConfig{Provider: config.LLMProviderStub},
		MealPlan: config.MealPlanConfig{
			TTL:              24 * time.Hour,
			FallbackWeightKg: 75,
			DefaultGoal:      "maintenance",
			RecentMacroDays:  7,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		CORS:    config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE", AllowedHeaders: "Authorization,Content-Type"},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T, model app.Model) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if model == nil {
		model = llm.NewStub()
	}

	handler, stop := app.NewHandler(testConfig(), pool, model, metrics.New(), logger, domain.SystemClock)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(testJWTSecret, testJWTIssuer),
	}
}

// newUserToken returns a fresh user id and a valid access token for it.
func (ts *testServer) newUserToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(userID, 15*time.Minute)
	require.NoError(t, err)
	return userID, token
}

// do sends a JSON request and decodes a JSON response body into out (when
// non-nil). It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
