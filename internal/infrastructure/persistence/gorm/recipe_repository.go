package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nuestrasrecetas/club/internal/domain/recipe"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
)

// RecipeRepository implements outbound.RecipeRepository using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a new recipe
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	return r.db.WithContext(ctx).Create(recipeToModel(entity)).Error
}

// Update persists changes to an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	model := recipeToModel(entity)
	return r.db.WithContext(ctx).
		Model(&RecipeModel{ID: model.ID}).
		Select("Title", "Description", "Servings", "IsPublic", "Ingredients", "UpdatedAt").
		Updates(model).Error
}

// Delete soft-deletes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id).Error
}

// FindByID loads a recipe by id, returning (nil, nil) when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return modelToRecipe(&model), nil
}

// FindByIDs batch-loads recipes by id. Missing ids are simply absent
// from the result map.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error) {
	result := make(map[uuid.UUID]*recipe.Recipe, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []RecipeModel
	if err := r.db.WithContext(ctx).Find(&models, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for i := range models {
		entity := modelToRecipe(&models[i])
		result[entity.ID()] = entity
	}
	return result, nil
}

// FindByAuthor loads an author's recipes with pagination
func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	return r.findPage(ctx, "author_id = ?", []interface{}{authorID}, offset, limit)
}

// FindPublished loads public recipes with pagination
func (r *RecipeRepository) FindPublished(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error) {
	return r.findPage(ctx, "is_public = ?", []interface{}{true}, offset, limit)
}

func (r *RecipeRepository) findPage(ctx context.Context, cond string, args []interface{}, offset, limit int) ([]*recipe.Recipe, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Where(cond, args...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	entities := make([]*recipe.Recipe, len(models))
	for i := range models {
		entities[i] = modelToRecipe(&models[i])
	}
	return entities, int(total), nil
}
