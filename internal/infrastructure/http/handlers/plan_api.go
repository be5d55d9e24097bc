package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
)

// createPlanRequest is the meal plan creation payload. The week uses
// the same tolerant entry shape as the ad-hoc grocery endpoint.
type createPlanRequest struct {
	Name    string                        `json:"name" validate:"required"`
	OwnerID string                        `json:"owner_id" validate:"required,uuid"`
	Week    map[string][]groceryPlanEntry `json:"week"`
}

type updatePlanRequest struct {
	UserID string                         `json:"user_id" validate:"required,uuid"`
	Name   *string                        `json:"name,omitempty"`
	Week   *map[string][]groceryPlanEntry `json:"week,omitempty"`
}

// CreatePlan handles POST /api/v1/plans
func (h *APIHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	ownerID, _ := uuid.Parse(req.OwnerID)
	dto, err := h.planService.CreatePlan(r.Context(), inbound.CreatePlanCommand{
		Name:    req.Name,
		OwnerID: ownerID,
		Week:    toWeek(req.Week),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Meal plan created successfully",
	})
}

// GetPlan handles GET /api/v1/plans/{id}
func (h *APIHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid plan id"))
		return
	}

	dto, err := h.planService.GetPlanByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// UpdatePlan handles PUT /api/v1/plans/{id}
func (h *APIHandlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid plan id"))
		return
	}

	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	cmd := inbound.UpdatePlanCommand{
		PlanID: id,
		UserID: userID,
		Name:   req.Name,
	}
	if req.Week != nil {
		week := toWeek(*req.Week)
		cmd.Week = &week
	}

	dto, err := h.planService.UpdatePlan(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Meal plan updated successfully",
	})
}

// DeletePlan handles DELETE /api/v1/plans/{id}
func (h *APIHandlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid plan id"))
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	if err := h.planService.DeletePlan(r.Context(), id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Meal plan deleted successfully",
	})
}

// ListPlans handles GET /api/v1/plans?owner_id=...
func (h *APIHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid owner id"))
		return
	}

	plans, err := h.planService.GetPlansByOwner(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    plans,
	})
}

// toWeek converts a tolerant wire-format week into a domain plan,
// dropping entries with unparseable recipe ids.
func toWeek(raw map[string][]groceryPlanEntry) grocery.Plan {
	week := make(grocery.Plan, len(raw))
	for day, entries := range raw {
		converted := make([]grocery.PlanEntry, 0, len(entries))
		for _, entry := range entries {
			id, err := uuid.Parse(entry.RecipeID)
			if err != nil {
				continue
			}
			converted = append(converted, grocery.PlanEntry{
				RecipeID:   id,
				Multiplier: entry.multiplierValue(),
			})
		}
		week[day] = converted
	}
	return week
}
