// Package grocery provides the application layer for grocery-list
// generation. It wires the pure aggregation engine to the recipe and
// meal-plan stores.
package grocery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	"github.com/nuestrasrecetas/club/internal/domain/recipe"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	"github.com/nuestrasrecetas/club/pkg/errors"
)

const listCacheTTL = time.Hour

// GroceryService implements the grocery use cases
type GroceryService struct {
	recipeRepo outbound.RecipeRepository
	planRepo   outbound.MealPlanRepository
	cache      outbound.CacheRepository
	logger     *zap.Logger
}

// NewGroceryService creates a new grocery service
func NewGroceryService(
	recipeRepo outbound.RecipeRepository,
	planRepo outbound.MealPlanRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.GroceryService {
	return &GroceryService{
		recipeRepo: recipeRepo,
		planRepo:   planRepo,
		cache:      cache,
		logger:     logger.Named("grocery-service"),
	}
}

// BuildFromPlan aggregates an ad-hoc plan into a shopping list. The
// engine itself never fails; the only error path is the recipe store.
func (s *GroceryService) BuildFromPlan(ctx context.Context, plan grocery.Plan) ([]inbound.GroceryItemDTO, error) {
	lookup, err := s.recipeLookup(ctx, plan)
	if err != nil {
		return nil, err
	}

	items := grocery.Aggregate(grocery.Expand(plan, lookup))

	buildsTotal.Inc()
	rowsTotal.Add(float64(len(items)))

	s.logger.Info("Grocery list built",
		zap.Int("plan_days", len(plan)),
		zap.Int("rows", len(items)),
	)

	return toDTOs(items), nil
}

// BuildFromStoredPlan loads a stored meal plan and aggregates it.
// Results are cached per plan revision; cache failures degrade to a
// fresh computation.
func (s *GroceryService) BuildFromStoredPlan(ctx context.Context, planID uuid.UUID) ([]inbound.GroceryItemDTO, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if plan == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}

	cacheKey := fmt.Sprintf("groceries:plan:%s:%d", plan.ID(), plan.UpdatedAt().Unix())
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var items []inbound.GroceryItemDTO
		if err := json.Unmarshal(cached, &items); err == nil {
			s.logger.Debug("Grocery list served from cache",
				zap.String("plan_id", planID.String()),
			)
			return items, nil
		}
	}

	items, err := s.BuildFromPlan(ctx, plan.Week())
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, listCacheTTL); err != nil {
			s.logger.Warn("Failed to cache grocery list",
				zap.String("plan_id", planID.String()),
				zap.Error(err),
			)
		}
	}

	return items, nil
}

// recipeLookup batch-loads every recipe the plan references and
// returns the lookup closure the expansion step consumes. Recipes
// missing from the store are absent from the map, which the engine
// treats as a silent skip.
func (s *GroceryService) recipeLookup(ctx context.Context, plan grocery.Plan) (grocery.RecipeLookup, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, entries := range plan {
		for _, entry := range entries {
			if !seen[entry.RecipeID] {
				seen[entry.RecipeID] = true
				ids = append(ids, entry.RecipeID)
			}
		}
	}

	recipes, err := s.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseError("find plan recipes", err)
	}

	return func(id uuid.UUID) ([]grocery.IngredientLine, bool) {
		r, ok := recipes[id]
		if !ok {
			return nil, false
		}
		return toEngineLines(r.Ingredients()), true
	}, nil
}

func toEngineLines(lines []recipe.IngredientLine) []grocery.IngredientLine {
	out := make([]grocery.IngredientLine, len(lines))
	for i, line := range lines {
		out[i] = grocery.IngredientLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Note:     line.Note,
		}
	}
	return out
}

func toDTOs(items []grocery.AggregatedItem) []inbound.GroceryItemDTO {
	out := make([]inbound.GroceryItemDTO, len(items))
	for i, item := range items {
		out[i] = inbound.GroceryItemDTO{
			Name: item.Name,
			Qty:  item.Quantity,
			Unit: string(item.Unit),
			Note: item.Note,
		}
	}
	return out
}
