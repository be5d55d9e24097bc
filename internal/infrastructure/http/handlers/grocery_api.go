package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
)

// groceryRequest is the ad-hoc grocery list payload. Plan entries are
// deliberately loose: multipliers arrive from untrusted clients and
// coerce rather than fail.
type groceryRequest struct {
	Plan map[string][]groceryPlanEntry `json:"plan"`
}

type groceryPlanEntry struct {
	RecipeID   string          `json:"recipe_id"`
	Multiplier json.RawMessage `json:"multiplier"`
}

// multiplierValue coerces the raw multiplier to an int, defaulting to
// 1 for anything missing or unparseable.
func (e groceryPlanEntry) multiplierValue() int {
	if len(e.Multiplier) == 0 {
		return 1
	}
	var f float64
	if err := json.Unmarshal(e.Multiplier, &f); err != nil {
		var s string
		if err := json.Unmarshal(e.Multiplier, &s); err != nil {
			return 1
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 1
		}
		f = parsed
	}
	m := int(f)
	if m <= 0 {
		return 1
	}
	return m
}

// BuildGroceries handles POST /api/v1/groceries
func (h *APIHandlers) BuildGroceries(w http.ResponseWriter, r *http.Request) {
	var req groceryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid JSON payload"))
		return
	}

	plan := make(grocery.Plan, len(req.Plan))
	for day, entries := range req.Plan {
		converted := make([]grocery.PlanEntry, 0, len(entries))
		for _, entry := range entries {
			id, err := uuid.Parse(entry.RecipeID)
			if err != nil {
				// Unresolvable references behave like deleted recipes
				h.logger.Debug("Skipping unparseable recipe reference",
					zap.String("day", day),
					zap.String("recipe_id", entry.RecipeID))
				continue
			}
			converted = append(converted, grocery.PlanEntry{
				RecipeID:   id,
				Multiplier: entry.multiplierValue(),
			})
		}
		plan[day] = converted
	}

	items, err := h.groceryService.BuildFromPlan(r.Context(), plan)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}

// PlanGroceries handles GET /api/v1/plans/{id}/groceries
func (h *APIHandlers) PlanGroceries(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid plan id"))
		return
	}

	items, err := h.groceryService.BuildFromStoredPlan(r.Context(), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}
