package recipe

import "errors"

// Domain errors for recipe operations

var (
	ErrTitleTooShort          = errors.New("recipe title must be at least 3 characters")
	ErrTitleTooLong           = errors.New("recipe title must not exceed 200 characters")
	ErrInvalidServings        = errors.New("servings must be greater than 0")
	ErrNoIngredients          = errors.New("recipe must have at least one ingredient")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeQuantity       = errors.New("ingredient quantity cannot be negative")

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("only recipe owner can perform this action")
)
