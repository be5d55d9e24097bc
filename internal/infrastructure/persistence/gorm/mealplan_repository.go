package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
)

// MealPlanRepository implements outbound.MealPlanRepository using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new GORM meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create persists a new meal plan
func (r *MealPlanRepository) Create(ctx context.Context, entity *mealplan.MealPlan) error {
	return r.db.WithContext(ctx).Create(planToModel(entity)).Error
}

// Update persists changes to an existing meal plan
func (r *MealPlanRepository) Update(ctx context.Context, entity *mealplan.MealPlan) error {
	model := planToModel(entity)
	return r.db.WithContext(ctx).
		Model(&MealPlanModel{ID: model.ID}).
		Select("Name", "Week", "UpdatedAt").
		Updates(model).Error
}

// Delete soft-deletes a meal plan
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&MealPlanModel{}, "id = ?", id).Error
}

// FindByID loads a meal plan by id, returning (nil, nil) when absent
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return modelToPlan(&model), nil
}

// FindByOwner loads every plan belonging to an owner
func (r *MealPlanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.MealPlan, error) {
	var models []MealPlanModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*mealplan.MealPlan, len(models))
	for i := range models {
		entities[i] = modelToPlan(&models[i])
	}
	return entities, nil
}
