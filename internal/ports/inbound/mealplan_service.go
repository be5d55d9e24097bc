package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
)

// MealPlanService defines the use cases for weekly meal planning
type MealPlanService interface {
	CreatePlan(ctx context.Context, cmd CreatePlanCommand) (*MealPlanDTO, error)
	UpdatePlan(ctx context.Context, cmd UpdatePlanCommand) (*MealPlanDTO, error)
	DeletePlan(ctx context.Context, planID, userID uuid.UUID) error

	GetPlanByID(ctx context.Context, planID uuid.UUID) (*MealPlanDTO, error)
	GetPlansByOwner(ctx context.Context, ownerID uuid.UUID) ([]MealPlanDTO, error)
}

// CreatePlanCommand contains data for creating a meal plan
type CreatePlanCommand struct {
	Name    string
	OwnerID uuid.UUID
	Week    grocery.Plan
}

// UpdatePlanCommand contains data for updating a meal plan
type UpdatePlanCommand struct {
	PlanID uuid.UUID
	UserID uuid.UUID
	Name   *string
	Week   *grocery.Plan
}

// MealPlanDTO is the data transfer object for meal plans
type MealPlanDTO struct {
	ID        uuid.UUID              `json:"id"`
	OwnerID   uuid.UUID              `json:"owner_id"`
	Name      string                 `json:"name"`
	Week      map[string][]PlanEntry `json:"week"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

// PlanEntry is one scheduled recipe occurrence in a plan DTO
type PlanEntry struct {
	RecipeID   uuid.UUID `json:"recipe_id"`
	Multiplier int       `json:"multiplier"`
}
