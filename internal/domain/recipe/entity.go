// Package recipe contains the core domain logic for recipe management.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate root for a user's recipe. It owns the
// ingredient lines consumed by the grocery aggregation engine.
type Recipe struct {
	id          uuid.UUID
	title       string
	description string
	authorID    uuid.UUID

	ingredients []IngredientLine
	servings    int

	isPublic  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(title, description string, authorID uuid.UUID) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		title:       title,
		description: description,
		authorID:    authorID,
		servings:    1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Rehydrate reconstructs a Recipe from stored state. It bypasses
// creation validation; the persistence layer is trusted to hand back
// what was previously stored.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	authorID uuid.UUID,
	ingredients []IngredientLine,
	servings int,
	isPublic bool,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:          id,
		title:       title,
		description: description,
		authorID:    authorID,
		ingredients: ingredients,
		servings:    servings,
		isPublic:    isPublic,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// AuthorID returns the recipe's author ID
func (r *Recipe) AuthorID() uuid.UUID {
	return r.authorID
}

// Ingredients returns the recipe's ingredient lines
func (r *Recipe) Ingredients() []IngredientLine {
	return r.ingredients
}

// Servings returns the number of servings the ingredient quantities
// are written for
func (r *Recipe) Servings() int {
	return r.servings
}

// IsPublic reports whether the recipe is visible to other users
func (r *Recipe) IsPublic() bool {
	return r.isPublic
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateTitle updates the recipe title with validation
func (r *Recipe) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	r.title = title
	r.updatedAt = time.Now()
	return nil
}

// UpdateDescription replaces the recipe description
func (r *Recipe) UpdateDescription(description string) {
	r.description = description
	r.updatedAt = time.Now()
}

// AddIngredient appends a validated ingredient line
func (r *Recipe) AddIngredient(line IngredientLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, line)
	r.updatedAt = time.Now()
	return nil
}

// ReplaceIngredients swaps the full ingredient list after validating
// every line
func (r *Recipe) ReplaceIngredients(lines []IngredientLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	r.ingredients = lines
	r.updatedAt = time.Now()
	return nil
}

// SetServings updates the serving count
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	r.servings = servings
	r.updatedAt = time.Now()
	return nil
}

// Publish makes the recipe publicly visible. A recipe needs at least
// one ingredient before it can be shared.
func (r *Recipe) Publish() error {
	if len(r.ingredients) == 0 {
		return ErrNoIngredients
	}
	r.isPublic = true
	r.updatedAt = time.Now()
	return nil
}

// Unpublish hides the recipe from other users
func (r *Recipe) Unpublish() {
	r.isPublic = false
	r.updatedAt = time.Now()
}

// validateTitle validates recipe title
func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
