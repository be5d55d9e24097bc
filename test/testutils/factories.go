// Package testutils provides test data factories for consistent test
// data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	title       string
	description string
	authorID    uuid.UUID
	servings    int
	ingredients []recipe.IngredientLine
	public      bool
}

// NewRecipeBuilder creates a new recipe builder with faked defaults
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		title:       faker.Dinner(),
		description: faker.Sentence(8),
		authorID:    uuid.New(),
		servings:    4,
	}
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.title = title
	return rb
}

// WithAuthor sets the recipe author
func (rb *RecipeBuilder) WithAuthor(authorID uuid.UUID) *RecipeBuilder {
	rb.authorID = authorID
	return rb
}

// WithServings sets the serving count
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// WithIngredient appends one ingredient line
func (rb *RecipeBuilder) WithIngredient(name string, qty float64, unit string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, recipe.IngredientLine{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
	})
	return rb
}

// WithIngredientNote appends one annotated ingredient line
func (rb *RecipeBuilder) WithIngredientNote(name string, qty float64, unit, note string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, recipe.IngredientLine{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		Note:     note,
	})
	return rb
}

// Published marks the recipe as public
func (rb *RecipeBuilder) Published() *RecipeBuilder {
	rb.public = true
	return rb
}

// Build constructs the recipe, panicking on factory misuse
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	entity, err := recipe.NewRecipe(rb.title, rb.description, rb.authorID)
	if err != nil {
		panic(err)
	}
	if err := entity.SetServings(rb.servings); err != nil {
		panic(err)
	}
	if err := entity.ReplaceIngredients(rb.ingredients); err != nil {
		panic(err)
	}
	if rb.public {
		if err := entity.Publish(); err != nil {
			panic(err)
		}
	}
	return entity
}

// MealPlanBuilder provides a fluent interface for building test plans
type MealPlanBuilder struct {
	name    string
	ownerID uuid.UUID
	week    grocery.Plan
}

// NewMealPlanBuilder creates a new meal plan builder with faked
// defaults
func NewMealPlanBuilder() *MealPlanBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &MealPlanBuilder{
		name:    faker.AdjectiveDescriptive() + " week",
		ownerID: uuid.New(),
		week:    grocery.Plan{},
	}
}

// WithName sets the plan name
func (pb *MealPlanBuilder) WithName(name string) *MealPlanBuilder {
	pb.name = name
	return pb
}

// WithOwner sets the plan owner
func (pb *MealPlanBuilder) WithOwner(ownerID uuid.UUID) *MealPlanBuilder {
	pb.ownerID = ownerID
	return pb
}

// WithEntry schedules a recipe on a day
func (pb *MealPlanBuilder) WithEntry(day string, recipeID uuid.UUID, multiplier int) *MealPlanBuilder {
	pb.week[day] = append(pb.week[day], grocery.PlanEntry{
		RecipeID:   recipeID,
		Multiplier: multiplier,
	})
	return pb
}

// Build constructs the meal plan, panicking on factory misuse
func (pb *MealPlanBuilder) Build() *mealplan.MealPlan {
	entity, err := mealplan.NewMealPlan(pb.name, pb.ownerID)
	if err != nil {
		panic(err)
	}
	entity.ReplaceWeek(pb.week)
	return entity
}
