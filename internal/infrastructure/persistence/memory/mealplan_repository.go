package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
)

// MealPlanRepository implements an in-memory meal plan store
type MealPlanRepository struct {
	plans map[uuid.UUID]*mealplan.MealPlan
	mutex sync.RWMutex
}

// NewMealPlanRepository creates a new in-memory meal plan repository
func NewMealPlanRepository() outbound.MealPlanRepository {
	return &MealPlanRepository{
		plans: make(map[uuid.UUID]*mealplan.MealPlan),
	}
}

// Create stores a new meal plan
func (r *MealPlanRepository) Create(ctx context.Context, entity *mealplan.MealPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plans[entity.ID()] = entity
	return nil
}

// Update replaces a stored meal plan
func (r *MealPlanRepository) Update(ctx context.Context, entity *mealplan.MealPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plans[entity.ID()] = entity
	return nil
}

// Delete removes a meal plan
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.plans, id)
	return nil
}

// FindByID returns a meal plan by id, (nil, nil) when absent
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.plans[id], nil
}

// FindByOwner returns an owner's plans, newest first
func (r *MealPlanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matched []*mealplan.MealPlan
	for _, entity := range r.plans {
		if entity.OwnerID() == ownerID {
			matched = append(matched, entity)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})
	return matched, nil
}
