package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
)

const estimatorSource = "nutrition estimator"

// Estimator turns a free-text meal description into a nutrition vector.
type Estimator struct {
	completer Completer
}

// NewEstimator creates an Estimator. timeout bounds each model call.
func NewEstimator(c Completer, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Estimator {
	log := logger.With("adapter", "llm_estimator")
	return &Estimator{completer: instrument(c, "estimate", timeout, m, log)}
}

// estimateResponse uses pointers so a missing key is distinguishable from 0.
type estimateResponse struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

// Estimate returns the model's estimate. Transport failures, unparsable
// replies, missing keys and negative values all yield an error wrapping
// domain.ErrUpstreamUnavailable.
func (e *Estimator) Estimate(ctx context.Context, description string) (domain.NutritionVector, error) {
	text, err := e.completer.Complete(ctx, buildEstimatePrompt(description))
	if err != nil {
		return domain.NutritionVector{}, domain.Upstream(estimatorSource, err)
	}

	v, err := parseEstimate(text)
	if err != nil {
		return domain.NutritionVector{}, domain.Upstream(estimatorSource, err)
	}
	return v, nil
}

func parseEstimate(text string) (domain.NutritionVector, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return domain.NutritionVector{}, err
	}

	var resp estimateResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return domain.NutritionVector{}, fmt.Errorf("decode estimate: %w", err)
	}

	var errs []domain.FieldError
	value := func(field string, p *float64) float64 {
		if p == nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "missing"})
			return 0
		}
		return *p
	}
	v := domain.NutritionVector{
		Calories: value("calories", resp.Calories),
		Protein:  value("protein", resp.Protein),
		Carbs:    value("carbs", resp.Carbs),
		Fat:      value("fat", resp.Fat),
		Fiber:    value("fiber", resp.Fiber),
	}
	if len(errs) > 0 {
		return domain.NutritionVector{}, domain.NewValidationErrors(errs)
	}
	if err := v.Validate(); err != nil {
		return domain.NutritionVector{}, err
	}
	return v, nil
}

func buildEstimatePrompt(description string) string {
	return fmt.Sprintf(`Analyze the following meal description and estimate its nutritional content.
The meal is: %q

Return ONLY a JSON object with these exact keys:
- "calories" (number, kcal)
- "protein" (number, grams)
- "carbs" (number, grams)
- "fat" (number, grams)
- "fiber" (number, grams)

If a value cannot be determined, use 0. Do not add any text or markdown outside the JSON object.`, description)
}
