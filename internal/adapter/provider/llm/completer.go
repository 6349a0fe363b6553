// Package llm adapts language model APIs to the nutrition estimator and
// meal plan generator used by the services.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

// Completer sends a single-turn prompt and returns the model's text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// NewCompleter builds the completer selected by cfg.Provider. The stub
// provider has no completer; callers should use NewStub instead.
func NewCompleter(cfg config.LLMConfig) (Completer, error) {
	switch cfg.ProviderName() {
	case config.LLMProviderAnthropic:
		return NewAnthropic(cfg), nil
	case config.LLMProviderOpenAI:
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("llm: no completer for provider %q", cfg.Provider)
	}
}

// instrumented wraps a Completer with a per-call timeout, logging and metrics.
type instrumented struct {
	next      Completer
	operation string
	timeout   time.Duration
	metrics   *metrics.Metrics
	log       *slog.Logger
}

func instrument(next Completer, operation string, timeout time.Duration, m *metrics.Metrics, log *slog.Logger) Completer {
	return &instrumented{next: next, operation: operation, timeout: timeout, metrics: m, log: log}
}

func (c *instrumented) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	timer := metrics.NewTimer()
	text, err := c.next.Complete(ctx, prompt)
	elapsed := timer.Elapsed()
	c.metrics.ObserveLLM(c.operation, err, elapsed)

	if err != nil {
		c.log.WarnContext(ctx, "llm call failed",
			slog.String("operation", c.operation),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return "", err
	}
	c.log.DebugContext(ctx, "llm call",
		slog.String("operation", c.operation),
		slog.Duration("elapsed", elapsed),
		slog.Int("response_len", len(text)),
	)
	return text, nil
}

// extractJSON returns the text between the first '{' and the last '}'.
// Models often wrap JSON in markdown fences or prose.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
