package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/service/profile"
)

type profileService interface {
	LogWeight(ctx context.Context, input profile.LogWeightInput) (*domain.WeightEntry, error)
	ListWeights(ctx context.Context, input profile.ListWeightsInput) ([]domain.WeightEntry, error)
	SetGoal(ctx context.Context, input profile.SetGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context) (*domain.Goal, error)
	LogActivity(ctx context.Context, input profile.LogActivityInput) (*domain.Activity, error)
	ListActivities(ctx context.Context, input profile.ListActivitiesInput) ([]domain.Activity, error)
}

// ProfileHandler serves weights, activities and the health goal.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type logWeightRequest struct {
	WeightKg   float64 `json:"weight"`
	MeasuredAt string  `json:"measuredAt"`
}

type weightResponse struct {
	ID         string    `json:"id"`
	WeightKg   float64   `json:"weight"`
	MeasuredAt string    `json:"measuredAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type logActivityRequest struct {
	Type        string `json:"type"`
	Steps       *int   `json:"steps"`
	DurationMin *int   `json:"duration"`
}

type activityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Steps       *int      `json:"steps,omitempty"`
	DurationMin *int      `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type goalRequest struct {
	GoalType       string   `json:"goalType"`
	TargetWeightKg *float64 `json:"targetWeight"`
	TargetDate     string   `json:"targetDate"`
}

type goalResponse struct {
	GoalType       string    `json:"goalType"`
	TargetWeightKg *float64  `json:"targetWeight,omitempty"`
	TargetDate     *string   `json:"targetDate,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LogWeight handles POST /api/weights.
func (h *ProfileHandler) LogWeight(w http.ResponseWriter, r *http.Request) {
	var req logWeightRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.LogWeight(r.Context(), profile.LogWeightInput{
		WeightKg:   req.WeightKg,
		MeasuredAt: req.MeasuredAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWeightResponse(*entry))
}

// ListWeights handles GET /api/weights?limit=.
func (h *ProfileHandler) ListWeights(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	weights, err := h.svc.ListWeights(r.Context(), profile.ListWeightsInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]weightResponse, len(weights))
	for i, e := range weights {
		resp[i] = toWeightResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"weights": resp})
}

// LogActivity handles POST /api/activities.
func (h *ProfileHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.LogActivity(r.Context(), profile.LogActivityInput{
		Type:        req.Type,
		Steps:       req.Steps,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(*a))
}

// ListActivities handles GET /api/activities?limit=.
func (h *ProfileHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	activities, err := h.svc.ListActivities(r.Context(), profile.ListActivitiesInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]activityResponse, len(activities))
	for i, a := range activities {
		resp[i] = toActivityResponse(a)
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": resp})
}

// SetGoal handles PUT /api/goal.
func (h *ProfileHandler) SetGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.SetGoal(r.Context(), profile.SetGoalInput{
		GoalType:       req.GoalType,
		TargetWeightKg: req.TargetWeightKg,
		TargetDate:     req.TargetDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// GetGoal handles GET /api/goal.
func (h *ProfileHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGoal(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

func toWeightResponse(e domain.WeightEntry) weightResponse {
	return weightResponse{
		ID:         e.ID.String(),
		WeightKg:   e.WeightKg,
		MeasuredAt: e.MeasuredAt,
		CreatedAt:  e.CreatedAt,
	}
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID.String(),
		Type:        a.Type,
		Steps:       a.Steps,
		DurationMin: a.DurationMin,
		CreatedAt:   a.CreatedAt,
	}
}

// limitParam reads ?limit=; absent means zero.
func limitParam(r *http.Request) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError("limit", "must be an integer")
	}
	return n, nil
}

func toGoalResponse(g *domain.Goal) goalResponse {
	resp := goalResponse{
		GoalType:       g.GoalType,
		TargetWeightKg: g.TargetWeightKg,
		UpdatedAt:      g.UpdatedAt,
	}
	if g.TargetDate != nil {
		d := domain.FormatDate(*g.TargetDate)
		resp.TargetDate = &d
	}
	return resp
}
