package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/service/mealplan"
)

type mealPlanService interface {
	GetPlan(ctx context.Context, weekStart string) (*domain.MealPlan, error)
	GeneratePlan(ctx context.Context, weekStart string) (*domain.MealPlan, error)
	UpdatePlan(ctx context.Context, input mealplan.UpdatePlanInput) (*domain.MealPlan, error)
	SuggestMeals(ctx context.Context) (*mealplan.Suggestion, error)
}

// MealPlanHandler serves weekly plans and daily suggestions.
type MealPlanHandler struct {
	svc mealPlanService
	ttl time.Duration
	log *slog.Logger
}

// NewMealPlanHandler creates a MealPlanHandler. ttl is only used to report
// expiresAt.
func NewMealPlanHandler(svc mealPlanService, ttl time.Duration, logger *slog.Logger) *MealPlanHandler {
	if ttl <= 0 {
		ttl = domain.DefaultPlanTTL
	}
	return &MealPlanHandler{svc: svc, ttl: ttl, log: logger.With("handler", "mealplan")}
}

type generatePlanRequest struct {
	WeekStart string `json:"weekStart"`
}

type updatePlanRequest struct {
	Meals []domain.PlannedMeal `json:"meals"`
}

type planResponse struct {
	ID        string               `json:"id"`
	WeekStart string               `json:"weekStart"`
	Meals     []domain.PlannedMeal `json:"meals"`
	CreatedAt time.Time            `json:"createdAt"`
	ExpiresAt time.Time            `json:"expiresAt"`
}

type suggestionResponse struct {
	Date         string               `json:"date"`
	Goal         string               `json:"goal"`
	WeightKg     float64              `json:"currentWeight"`
	Meals        []domain.PlannedMeal `json:"meals"`
	ShoppingList []pantryItemResponse `json:"shoppingList"`
}

// GetPlan handles GET /api/meal-plans/{weekStart}.
func (h *MealPlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetPlan(r.Context(), r.PathValue("weekStart"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPlanResponse(plan))
}

// GeneratePlan handles POST /api/meal-plans/generate.
func (h *MealPlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	plan, err := h.svc.GeneratePlan(r.Context(), req.WeekStart)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toPlanResponse(plan))
}

// UpdatePlan handles PUT /api/meal-plans/{id}.
func (h *MealPlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req updatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	plan, err := h.svc.UpdatePlan(r.Context(), mealplan.UpdatePlanInput{PlanID: planID, Meals: req.Meals})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPlanResponse(plan))
}

// Suggest handles POST /api/meals/suggest.
func (h *MealPlanHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.SuggestMeals(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := suggestionResponse{
		Date:         s.Date,
		Goal:         s.GoalType,
		WeightKg:     s.WeightKg,
		Meals:        s.Meals,
		ShoppingList: make([]pantryItemResponse, len(s.ShoppingList)),
	}
	for i, it := range s.ShoppingList {
		resp.ShoppingList[i] = toPantryItemResponse(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MealPlanHandler) toPlanResponse(p *domain.MealPlan) planResponse {
	meals := p.Meals
	if meals == nil {
		meals = []domain.PlannedMeal{}
	}
	return planResponse{
		ID:        p.ID.String(),
		WeekStart: p.WeekStart,
		Meals:     meals,
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt(h.ttl),
	}
}
