// Package mealplan contains the domain logic for weekly meal plans.
package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
)

// MealPlan is the aggregate root for one user's weekly plan: a mapping
// from day label to the ordered recipes scheduled for that day.
type MealPlan struct {
	id      uuid.UUID
	ownerID uuid.UUID
	name    string
	week    grocery.Plan

	createdAt time.Time
	updatedAt time.Time
}

// NewMealPlan creates a new MealPlan with validation
func NewMealPlan(name string, ownerID uuid.UUID) (*MealPlan, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &MealPlan{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		week:      grocery.Plan{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Rehydrate reconstructs a MealPlan from stored state.
func Rehydrate(
	id, ownerID uuid.UUID,
	name string,
	week grocery.Plan,
	createdAt, updatedAt time.Time,
) *MealPlan {
	if week == nil {
		week = grocery.Plan{}
	}
	return &MealPlan{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		week:      week,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the plan's unique identifier
func (p *MealPlan) ID() uuid.UUID {
	return p.id
}

// OwnerID returns the plan owner's ID
func (p *MealPlan) OwnerID() uuid.UUID {
	return p.ownerID
}

// Name returns the plan's display name
func (p *MealPlan) Name() string {
	return p.name
}

// Week returns the day-keyed schedule consumed by the grocery engine
func (p *MealPlan) Week() grocery.Plan {
	return p.week
}

// CreatedAt returns when the plan was created
func (p *MealPlan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plan was last updated
func (p *MealPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

// Rename updates the plan's display name
func (p *MealPlan) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

// ScheduleRecipe appends a recipe occurrence to a day. A non-positive
// multiplier is stored as 1; the aggregation engine applies the same
// default, this just keeps stored plans tidy.
func (p *MealPlan) ScheduleRecipe(day string, recipeID uuid.UUID, multiplier int) error {
	if day == "" {
		return ErrDayRequired
	}
	if recipeID == uuid.Nil {
		return ErrRecipeRequired
	}
	if multiplier <= 0 {
		multiplier = 1
	}
	p.week[day] = append(p.week[day], grocery.PlanEntry{
		RecipeID:   recipeID,
		Multiplier: multiplier,
	})
	p.updatedAt = time.Now()
	return nil
}

// ReplaceWeek swaps the whole schedule, e.g. when the client submits a
// full week at once.
func (p *MealPlan) ReplaceWeek(week grocery.Plan) {
	if week == nil {
		week = grocery.Plan{}
	}
	p.week = week
	p.updatedAt = time.Now()
}

// ClearDay removes every entry scheduled for a day
func (p *MealPlan) ClearDay(day string) {
	delete(p.week, day)
	p.updatedAt = time.Now()
}
