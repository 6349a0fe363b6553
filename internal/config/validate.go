package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.MealPlan.validate(); err != nil {
		return fmt.Errorf("meal_plan: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	switch l.ProviderName() {
	case LLMProviderAnthropic, LLMProviderOpenAI:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.ProviderName())
		}
		if strings.TrimSpace(l.Model) == "" {
			return fmt.Errorf("model is required for provider %q", l.ProviderName())
		}
	case LLMProviderStub:
	default:
		return fmt.Errorf("unknown provider %q (want anthropic, openai or stub)", l.Provider)
	}

	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in 0..2 (got %v)", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func (m *MealPlanConfig) validate() error {
	if m.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", m.TTL)
	}
	if m.FallbackWeightKg <= 0 {
		return fmt.Errorf("fallback_weight_kg must be > 0 (got %v)", m.FallbackWeightKg)
	}
	if strings.TrimSpace(m.DefaultGoal) == "" {
		return fmt.Errorf("default_goal must not be empty")
	}
	if m.RecentMacroDays < 1 || m.RecentMacroDays > 31 {
		return fmt.Errorf("recent_macro_days must be in 1..31 (got %d)", m.RecentMacroDays)
	}
	if m.PruneInterval < 0 {
		return fmt.Errorf("prune_interval must be >= 0 (got %v)", m.PruneInterval)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.APIPerMinute <= 0 {
		return fmt.Errorf("api_per_minute must be > 0 (got %d)", r.APIPerMinute)
	}
	if r.LLMPerMinute <= 0 {
		return fmt.Errorf("llm_per_minute must be > 0 (got %d)", r.LLMPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
