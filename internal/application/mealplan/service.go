// Package mealplan provides the application layer for weekly meal planning
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	"github.com/nuestrasrecetas/club/pkg/errors"
)

// MealPlanService implements the meal plan use cases
type MealPlanService struct {
	planRepo outbound.MealPlanRepository
	logger   *zap.Logger
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(
	planRepo outbound.MealPlanRepository,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		planRepo: planRepo,
		logger:   logger.Named("mealplan-service"),
	}
}

// CreatePlan creates a new meal plan
func (s *MealPlanService) CreatePlan(ctx context.Context, cmd inbound.CreatePlanCommand) (*inbound.MealPlanDTO, error) {
	s.logger.Info("Creating meal plan",
		zap.String("name", cmd.Name),
		zap.String("owner_id", cmd.OwnerID.String()),
	)

	entity, err := mealplan.NewMealPlan(cmd.Name, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Week != nil {
		entity.ReplaceWeek(cmd.Week)
	}

	if err := s.planRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create meal plan", err)
	}

	return entityToDTO(entity), nil
}

// UpdatePlan updates an existing meal plan
func (s *MealPlanService) UpdatePlan(ctx context.Context, cmd inbound.UpdatePlanCommand) (*inbound.MealPlanDTO, error) {
	entity, err := s.planRepo.FindByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if entity == nil {
		return nil, errors.NewPlanNotFoundError(cmd.PlanID.String())
	}

	if entity.OwnerID() != cmd.UserID {
		return nil, errors.NewNotOwnerError("meal plan")
	}

	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Week != nil {
		entity.ReplaceWeek(*cmd.Week)
	}

	if err := s.planRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update meal plan", err)
	}

	s.logger.Info("Meal plan updated",
		zap.String("plan_id", entity.ID().String()),
	)

	return entityToDTO(entity), nil
}

// DeletePlan deletes a meal plan
func (s *MealPlanService) DeletePlan(ctx context.Context, planID, userID uuid.UUID) error {
	entity, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return errors.NewDatabaseError("find meal plan", err)
	}
	if entity == nil {
		return errors.NewPlanNotFoundError(planID.String())
	}

	if entity.OwnerID() != userID {
		return errors.NewNotOwnerError("meal plan")
	}

	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return errors.NewDatabaseError("delete meal plan", err)
	}

	return nil
}

// GetPlanByID retrieves a meal plan by ID
func (s *MealPlanService) GetPlanByID(ctx context.Context, planID uuid.UUID) (*inbound.MealPlanDTO, error) {
	entity, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if entity == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}
	return entityToDTO(entity), nil
}

// GetPlansByOwner retrieves all plans belonging to an owner
func (s *MealPlanService) GetPlansByOwner(ctx context.Context, ownerID uuid.UUID) ([]inbound.MealPlanDTO, error) {
	entities, err := s.planRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("find owner meal plans", err)
	}

	dtos := make([]inbound.MealPlanDTO, len(entities))
	for i, e := range entities {
		dtos[i] = *entityToDTO(e)
	}
	return dtos, nil
}

// entityToDTO converts domain entity to DTO
func entityToDTO(entity *mealplan.MealPlan) *inbound.MealPlanDTO {
	week := make(map[string][]inbound.PlanEntry, len(entity.Week()))
	for day, entries := range entity.Week() {
		dayEntries := make([]inbound.PlanEntry, len(entries))
		for i, e := range entries {
			dayEntries[i] = inbound.PlanEntry{
				RecipeID:   e.RecipeID,
				Multiplier: e.Multiplier,
			}
		}
		week[day] = dayEntries
	}

	return &inbound.MealPlanDTO{
		ID:        entity.ID(),
		OwnerID:   entity.OwnerID(),
		Name:      entity.Name(),
		Week:      week,
		CreatedAt: entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt: entity.UpdatedAt().Format(time.RFC3339),
	}
}
