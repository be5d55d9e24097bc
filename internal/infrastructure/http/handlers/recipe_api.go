package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
)

// createRecipeRequest is the recipe creation payload
type createRecipeRequest struct {
	Title       string                  `json:"title" validate:"required,min=3,max=200"`
	Description string                  `json:"description"`
	AuthorID    string                  `json:"author_id" validate:"required,uuid"`
	Servings    int                     `json:"servings"`
	Ingredients []ingredientLineRequest `json:"ingredients" validate:"dive"`
}

type updateRecipeRequest struct {
	UserID      string                   `json:"user_id" validate:"required,uuid"`
	Title       *string                  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string                  `json:"description,omitempty"`
	Servings    *int                     `json:"servings,omitempty"`
	Ingredients *[]ingredientLineRequest `json:"ingredients,omitempty"`
}

type ingredientLineRequest struct {
	Name     string  `json:"name" validate:"required"`
	Qty      float64 `json:"qty" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Note     string  `json:"note"`
	Optional bool    `json:"optional"`
}

// CreateRecipe handles POST /api/v1/recipes
func (h *APIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	authorID, _ := uuid.Parse(req.AuthorID)
	cmd := inbound.CreateRecipeCommand{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    authorID,
		Servings:    req.Servings,
		Ingredients: toIngredientCommands(req.Ingredients),
	}

	dto, err := h.recipeService.CreateRecipe(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe created successfully",
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *APIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid recipe id"))
		return
	}

	dto, err := h.recipeService.GetRecipeByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *APIHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid recipe id"))
		return
	}

	var req updateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	cmd := inbound.UpdateRecipeCommand{
		RecipeID:    id,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Servings:    req.Servings,
	}
	if req.Ingredients != nil {
		lines := toIngredientCommands(*req.Ingredients)
		cmd.Ingredients = &lines
	}

	dto, err := h.recipeService.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe updated successfully",
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *APIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid recipe id"))
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe deleted successfully",
	})
}

// PublishRecipe handles POST /api/v1/recipes/{id}/publish
func (h *APIHandlers) PublishRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid recipe id"))
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	if err := h.recipeService.PublishRecipe(r.Context(), id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe published successfully",
	})
}

// ListRecipesByAuthor handles GET /api/v1/recipes?author_id=...
func (h *APIHandlers) ListRecipesByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(r.URL.Query().Get("author_id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid author id"))
		return
	}

	list, err := h.recipeService.GetRecipesByAuthor(r.Context(), authorID, paginationFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
	})
}

func toIngredientCommands(lines []ingredientLineRequest) []inbound.IngredientCommand {
	cmds := make([]inbound.IngredientCommand, len(lines))
	for i, line := range lines {
		cmds[i] = inbound.IngredientCommand{
			Name:     line.Name,
			Qty:      line.Qty,
			Unit:     line.Unit,
			Note:     line.Note,
			Optional: line.Optional,
		}
	}
	return cmds
}

func paginationFromQuery(r *http.Request) inbound.PaginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return inbound.PaginationParams{Page: page, PageSize: pageSize}
}
