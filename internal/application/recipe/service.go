// Package recipe provides the application layer for recipe management
package recipe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuestrasrecetas/club/internal/domain/recipe"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	"github.com/nuestrasrecetas/club/pkg/errors"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe",
		zap.String("title", cmd.Title),
		zap.String("author_id", cmd.AuthorID.String()),
	)

	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Servings > 0 {
		if err := entity.SetServings(cmd.Servings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	for _, ing := range cmd.Ingredients {
		line := recipe.IngredientLine{
			Name:     ing.Name,
			Quantity: ing.Qty,
			Unit:     ing.Unit,
			Note:     ing.Note,
			Optional: ing.Optional,
		}
		if err := entity.AddIngredient(line); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	dto := entityToDTO(entity)

	s.logger.Info("Recipe created successfully",
		zap.String("recipe_id", dto.ID.String()),
	)

	return dto, nil
}

// UpdateRecipe updates an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	if entity.AuthorID() != cmd.UserID {
		return nil, errors.NewNotOwnerError("recipe")
	}

	if cmd.Title != nil {
		if err := entity.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		entity.UpdateDescription(*cmd.Description)
	}
	if cmd.Servings != nil {
		if err := entity.SetServings(*cmd.Servings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		lines := make([]recipe.IngredientLine, len(*cmd.Ingredients))
		for i, ing := range *cmd.Ingredients {
			lines[i] = recipe.IngredientLine{
				Name:     ing.Name,
				Quantity: ing.Qty,
				Unit:     ing.Unit,
				Note:     ing.Note,
				Optional: ing.Optional,
			}
		}
		if err := entity.ReplaceIngredients(lines); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.logger.Info("Recipe updated successfully",
		zap.String("recipe_id", entity.ID().String()),
	)

	return entityToDTO(entity), nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if entity.AuthorID() != userID {
		return errors.NewNotOwnerError("recipe")
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted successfully",
		zap.String("recipe_id", recipeID.String()),
	)

	return nil
}

// PublishRecipe makes a recipe publicly visible
func (s *RecipeService) PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if entity.AuthorID() != userID {
		return errors.NewNotOwnerError("recipe")
	}

	if err := entity.Publish(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update recipe status", err)
	}

	return nil
}

// GetRecipeByID retrieves a recipe by ID
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entityToDTO(entity), nil
}

// GetRecipesByAuthor retrieves recipes by author
func (s *RecipeService) GetRecipesByAuthor(ctx context.Context, authorID uuid.UUID, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = 20
	}

	recipes, total, err := s.recipeRepo.FindByAuthor(ctx, authorID, (params.Page-1)*params.PageSize, params.PageSize)
	if err != nil {
		return nil, errors.NewDatabaseError("find author recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = *entityToDTO(r)
	}

	return &inbound.RecipeList{
		Recipes:    dtos,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: (total + params.PageSize - 1) / params.PageSize,
	}, nil
}

// entityToDTO converts domain entity to DTO
func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, len(entity.Ingredients()))
	for i, line := range entity.Ingredients() {
		ingredients[i] = inbound.IngredientDTO{
			Name:     line.Name,
			Qty:      line.Quantity,
			Unit:     line.Unit,
			Note:     line.Note,
			Optional: line.Optional,
		}
	}

	return &inbound.RecipeDTO{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		AuthorID:    entity.AuthorID(),
		Servings:    entity.Servings(),
		IsPublic:    entity.IsPublic(),
		Ingredients: ingredients,
		CreatedAt:   entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().Format(time.RFC3339),
	}
}
