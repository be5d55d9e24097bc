// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/domain/recipe"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// FindByIDs resolves a batch of recipe ids in one round trip.
	// Missing ids are simply absent from the result; the grocery
	// engine treats them as deleted recipes and skips them.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error)

	FindByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error)
	FindPublished(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error)
}

// MealPlanRepository defines the interface for meal plan persistence
type MealPlanRepository interface {
	Create(ctx context.Context, plan *mealplan.MealPlan) error
	Update(ctx context.Context, plan *mealplan.MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.MealPlan, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
