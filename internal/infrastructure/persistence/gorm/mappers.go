package gorm

import (
	"encoding/json"

	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	"github.com/nuestrasrecetas/club/internal/domain/mealplan"
	"github.com/nuestrasrecetas/club/internal/domain/recipe"
)

// recipeToModel converts a domain recipe to its GORM model
func recipeToModel(entity *recipe.Recipe) *RecipeModel {
	records := make(IngredientRecords, len(entity.Ingredients()))
	for i, line := range entity.Ingredients() {
		qty, _ := json.Marshal(line.Quantity)
		records[i] = IngredientRecord{
			Name:     line.Name,
			Qty:      qty,
			Unit:     line.Unit,
			Note:     line.Note,
			Optional: line.Optional,
		}
	}

	return &RecipeModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		AuthorID:    entity.AuthorID(),
		Servings:    entity.Servings(),
		IsPublic:    entity.IsPublic(),
		Ingredients: records,
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// modelToRecipe rehydrates a domain recipe from its GORM model.
// Stored ingredient quantities coerce tolerantly; a malformed line
// never fails the recipe.
func modelToRecipe(model *RecipeModel) *recipe.Recipe {
	lines := make([]recipe.IngredientLine, len(model.Ingredients))
	for i, record := range model.Ingredients {
		lines[i] = recipe.IngredientLine{
			Name:     record.Name,
			Quantity: record.Quantity(),
			Unit:     record.Unit,
			Note:     record.Note,
			Optional: record.Optional,
		}
	}

	return recipe.Rehydrate(
		model.ID,
		model.Title,
		model.Description,
		model.AuthorID,
		lines,
		model.Servings,
		model.IsPublic,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// planToModel converts a domain meal plan to its GORM model
func planToModel(entity *mealplan.MealPlan) *MealPlanModel {
	week := make(WeekRecord, len(entity.Week()))
	for day, entries := range entity.Week() {
		records := make([]PlanEntryRecord, len(entries))
		for i, entry := range entries {
			mult, _ := json.Marshal(entry.Multiplier)
			records[i] = PlanEntryRecord{
				RecipeID:   entry.RecipeID,
				Multiplier: mult,
			}
		}
		week[day] = records
	}

	return &MealPlanModel{
		ID:        entity.ID(),
		OwnerID:   entity.OwnerID(),
		Name:      entity.Name(),
		Week:      week,
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// modelToPlan rehydrates a domain meal plan from its GORM model
func modelToPlan(model *MealPlanModel) *mealplan.MealPlan {
	week := make(grocery.Plan, len(model.Week))
	for day, records := range model.Week {
		entries := make([]grocery.PlanEntry, len(records))
		for i, record := range records {
			entries[i] = grocery.PlanEntry{
				RecipeID:   record.RecipeID,
				Multiplier: record.MultiplierValue(),
			}
		}
		week[day] = entries
	}

	return mealplan.Rehydrate(
		model.ID,
		model.OwnerID,
		model.Name,
		week,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
