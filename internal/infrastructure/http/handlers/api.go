// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	groceryService inbound.GroceryService
	recipeService  inbound.RecipeService
	planService    inbound.MealPlanService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	groceryService inbound.GroceryService,
	recipeService inbound.RecipeService,
	planService inbound.MealPlanService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		groceryService: groceryService,
		recipeService:  recipeService,
		planService:    planService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HealthCheck handles GET /health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors to HTTP error responses
func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request error",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	json.NewEncoder(w).Encode(apperrors.ToErrorResponse(appErr, requestID))
}
