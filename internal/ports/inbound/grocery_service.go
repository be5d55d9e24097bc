// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
)

// GroceryService defines the use cases for grocery-list generation
type GroceryService interface {
	// BuildFromPlan aggregates an ad-hoc plan submitted by the
	// client into a shopping list.
	BuildFromPlan(ctx context.Context, plan grocery.Plan) ([]GroceryItemDTO, error)

	// BuildFromStoredPlan aggregates a stored meal plan.
	BuildFromStoredPlan(ctx context.Context, planID uuid.UUID) ([]GroceryItemDTO, error)
}

// GroceryItemDTO is one row of the generated shopping list, already
// sorted and deduplicated, ready for JSON serialization.
type GroceryItemDTO struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
	Note string  `json:"note"`
}
