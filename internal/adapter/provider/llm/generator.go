package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

const generatorSource = "meal plan generator"

// Generator asks the model for breakfast, lunch, dinner and a shopping list.
type Generator struct {
	completer Completer
}

// NewGenerator creates a Generator. timeout bounds each model call.
func NewGenerator(c Completer, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Generator {
	log := logger.With("adapter", "llm_generator")
	return &Generator{completer: instrument(c, "generate", timeout, m, log)}
}

type planResponse struct {
	Breakfast    string   `json:"breakfast"`
	Lunch        string   `json:"lunch"`
	Dinner       string   `json:"dinner"`
	ShoppingList []string `json:"shopping_list"`
}

// Generate returns the parsed plan. Any failure, including a reply missing
// one of the three meals, wraps domain.ErrUpstreamUnavailable.
func (g *Generator) Generate(ctx context.Context, req domain.PlanRequest) (*domain.GeneratedPlan, error) {
	text, err := g.completer.Complete(ctx, buildPlanPrompt(req))
	if err != nil {
		return nil, domain.Upstream(generatorSource, err)
	}

	plan, err := parsePlan(text)
	if err != nil {
		return nil, domain.Upstream(generatorSource, err)
	}
	return plan, nil
}

func parsePlan(text string) (*domain.GeneratedPlan, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var resp planResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}

	plan := &domain.GeneratedPlan{
		Breakfast:    resp.Breakfast,
		Lunch:        resp.Lunch,
		Dinner:       resp.Dinner,
		ShoppingList: cleanShoppingList(resp.ShoppingList),
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// cleanShoppingList drops blank names and repeats of the same normalized name.
func cleanShoppingList(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := domain.NormalizeName(n)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(n))
	}
	return out
}

func buildPlanPrompt(req domain.PlanRequest) string {
	var b strings.Builder

	if req.Horizon == domain.PlanHorizonWeek {
		fmt.Fprintf(&b, "Create a repeatable daily meal plan for the week starting %s.\n", req.WeekStart)
	} else {
		b.WriteString("Suggest meals for today.\n")
	}
	fmt.Fprintf(&b, "Goal: %s\n", req.GoalType)
	fmt.Fprintf(&b, "Current weight: %.1f kg\n", req.WeightKg)

	if len(req.InStock) > 0 {
		fmt.Fprintf(&b, "Ingredients already in the pantry: %s\n", strings.Join(req.InStock, ", "))
	} else {
		b.WriteString("The pantry is empty.\n")
	}
	if m := req.RecentMacros; m != nil {
		fmt.Fprintf(&b, "Recent daily average: %.0f kcal, %.0f g protein, %.0f g carbs, %.0f g fat, %.0f g fiber\n",
			m.Calories, m.Protein, m.Carbs, m.Fat, m.Fiber)
	}

	b.WriteString(`
Prefer pantry ingredients. List only missing ingredients in the shopping list.
Return ONLY a JSON object with these exact keys:
- "breakfast" (string, dish name)
- "lunch" (string, dish name)
- "dinner" (string, dish name)
- "shopping_list" (array of strings)
Do not add any text or markdown outside the JSON object.`)
	return b.String()
}
