package mealplan

import "errors"

// Domain errors for meal-plan operations

var (
	ErrNameRequired   = errors.New("meal plan name is required")
	ErrDayRequired    = errors.New("day label is required")
	ErrRecipeRequired = errors.New("recipe id is required")

	ErrPlanNotFound = errors.New("meal plan not found")
	ErrNotPlanOwner = errors.New("only plan owner can perform this action")
)
