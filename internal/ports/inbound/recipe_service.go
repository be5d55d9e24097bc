package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for recipe management
type RecipeService interface {
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error
	PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	GetRecipesByAuthor(ctx context.Context, authorID uuid.UUID, params PaginationParams) (*RecipeList, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
	Servings    int
	Ingredients []IngredientCommand
}

// UpdateRecipeCommand contains data for updating a recipe
type UpdateRecipeCommand struct {
	RecipeID    uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Description *string
	Servings    *int
	Ingredients *[]IngredientCommand
}

// IngredientCommand for adding ingredient lines
type IngredientCommand struct {
	Name     string
	Qty      float64
	Unit     string
	Note     string
	Optional bool
}

// PaginationParams for paginated queries
type PaginationParams struct {
	Page     int
	PageSize int
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AuthorID    uuid.UUID       `json:"author_id"`
	Servings    int             `json:"servings"`
	IsPublic    bool            `json:"is_public"`
	Ingredients []IngredientDTO `json:"ingredients"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// IngredientDTO for ingredient line data
type IngredientDTO struct {
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	Note     string  `json:"note,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// RecipeList for paginated results
type RecipeList struct {
	Recipes    []RecipeDTO `json:"recipes"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
