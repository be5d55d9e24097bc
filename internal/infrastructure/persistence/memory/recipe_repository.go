package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestrasrecetas/club/internal/domain/recipe"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
)

// RecipeRepository implements an in-memory recipe store
type RecipeRepository struct {
	recipes map[uuid.UUID]*recipe.Recipe
	mutex   sync.RWMutex
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Create stores a new recipe
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.recipes[entity.ID()] = entity
	return nil
}

// Update replaces a stored recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.recipes[entity.ID()] = entity
	return nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.recipes, id)
	return nil
}

// FindByID returns a recipe by id, (nil, nil) when absent
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.recipes[id], nil
}

// FindByIDs resolves a batch of ids. Missing ids are absent from the
// result map.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[uuid.UUID]*recipe.Recipe, len(ids))
	for _, id := range ids {
		if entity, ok := r.recipes[id]; ok {
			result[id] = entity
		}
	}
	return result, nil
}

// FindByAuthor returns an author's recipes, newest first
func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	return r.findPage(func(entity *recipe.Recipe) bool {
		return entity.AuthorID() == authorID
	}, offset, limit)
}

// FindPublished returns public recipes, newest first
func (r *RecipeRepository) FindPublished(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error) {
	return r.findPage(func(entity *recipe.Recipe) bool {
		return entity.IsPublic()
	}, offset, limit)
}

func (r *RecipeRepository) findPage(match func(*recipe.Recipe) bool, offset, limit int) ([]*recipe.Recipe, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matched []*recipe.Recipe
	for _, entity := range r.recipes {
		if match(entity) {
			matched = append(matched, entity)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := len(matched)
	if offset >= total {
		return []*recipe.Recipe{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
