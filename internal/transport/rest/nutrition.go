package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/service/nutrition"
)

type nutritionService interface {
	RecordMeal(ctx context.Context, input nutrition.RecordMealInput) (*domain.NutritionTotals, error)
	RecordDay(ctx context.Context, input nutrition.RecordDayInput) (*nutrition.RecordDayResult, error)
	RecordSingleMealSlot(ctx context.Context, input nutrition.RecordSlotInput) (bool, error)
	GetTotals(ctx context.Context, day string) (*domain.NutritionTotals, error)
	ListTotals(ctx context.Context, input nutrition.ListTotalsInput) ([]domain.NutritionTotals, error)
	TodaysMeals(ctx context.Context) ([]domain.MealRecord, error)
}

// NutritionHandler serves meal logging and nutrition totals.
type NutritionHandler struct {
	svc nutritionService
	log *slog.Logger
}

// NewNutritionHandler creates a NutritionHandler.
func NewNutritionHandler(svc nutritionService, logger *slog.Logger) *NutritionHandler {
	return &NutritionHandler{svc: svc, log: logger.With("handler", "nutrition")}
}

type recordMealRequest struct {
	Day         string `json:"day"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
}

type recordDayRequest struct {
	Day   string            `json:"day"`
	Meals map[string]string `json:"meals"`
}

type recordSlotRequest struct {
	Date        string `json:"date"`
	MealType    string `json:"mealType"`
	Description string `json:"description"`
}

type totalsResponse struct {
	Day       string                 `json:"day"`
	Nutrition domain.NutritionVector `json:"nutrition"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type mealResponse struct {
	ID          string                  `json:"id"`
	MealType    string                  `json:"mealType"`
	Description string                  `json:"description"`
	EatenAt     time.Time               `json:"eatenAt"`
	SlotDate    *string                 `json:"slotDate,omitempty"`
	Nutrition   *domain.NutritionVector `json:"nutrition,omitempty"`
	Estimated   bool                    `json:"estimated"`
}

type recordDayResponse struct {
	Meals  []mealResponse `json:"meals"`
	Totals totalsResponse `json:"totals"`
}

// RecordMeal handles POST /api/nutrition/meals.
func (h *NutritionHandler) RecordMeal(w http.ResponseWriter, r *http.Request) {
	var req recordMealRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	totals, err := h.svc.RecordMeal(r.Context(), nutrition.RecordMealInput{
		Day:         req.Day,
		MealType:    domain.MealType(req.MealType),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTotalsResponse(totals))
}

// RecordDay handles POST /api/nutrition/days.
func (h *NutritionHandler) RecordDay(w http.ResponseWriter, r *http.Request) {
	var req recordDayRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	meals := make(map[domain.MealType]string, len(req.Meals))
	for k, v := range req.Meals {
		meals[domain.MealType(k)] = v
	}

	result, err := h.svc.RecordDay(r.Context(), nutrition.RecordDayInput{Day: req.Day, Meals: meals})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := recordDayResponse{
		Meals:  make([]mealResponse, len(result.Meals)),
		Totals: toTotalsResponse(result.Totals),
	}
	for i, m := range result.Meals {
		resp.Meals[i] = toMealResponse(m)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// RecordSlot handles PUT /api/meals/slots. Responds 201 when the slot was
// empty and 200 when an existing entry was overwritten.
func (h *NutritionHandler) RecordSlot(w http.ResponseWriter, r *http.Request) {
	var req recordSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.RecordSingleMealSlot(r.Context(), nutrition.RecordSlotInput{
		Date:        req.Date,
		MealType:    domain.MealType(req.MealType),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"created": created})
}

// GetTotals handles GET /api/nutrition/totals/{day}.
func (h *NutritionHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.GetTotals(r.Context(), r.PathValue("day"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTotalsResponse(totals))
}

// ListTotals handles GET /api/nutrition/totals?from=&to=.
func (h *NutritionHandler) ListTotals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListTotals(r.Context(), nutrition.ListTotalsInput{
		From: q.Get("from"),
		To:   q.Get("to"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]totalsResponse, len(list))
	for i := range list {
		resp[i] = toTotalsResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"totals": resp})
}

// TodaysMeals handles GET /api/meals/today.
func (h *NutritionHandler) TodaysMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.svc.TodaysMeals(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]mealResponse, len(meals))
	for i, m := range meals {
		resp[i] = toMealResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"meals": resp})
}

func toTotalsResponse(t *domain.NutritionTotals) totalsResponse {
	return totalsResponse{
		Day:       domain.FormatDate(t.Day),
		Nutrition: t.Nutrition,
		UpdatedAt: t.UpdatedAt,
	}
}

func toMealResponse(m domain.MealRecord) mealResponse {
	resp := mealResponse{
		ID:          m.ID.String(),
		MealType:    m.MealType.String(),
		Description: m.Description,
		EatenAt:     m.EatenAt,
		Nutrition:   m.Nutrition,
		Estimated:   m.Nutrition != nil,
	}
	if m.SlotDate != nil {
		d := domain.FormatDate(*m.SlotDate)
		resp.SlotDate = &d
	}
	return resp
}
