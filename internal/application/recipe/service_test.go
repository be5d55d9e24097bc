package recipe_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	recipeapp "github.com/nuestrasrecetas/club/internal/application/recipe"
	"github.com/nuestrasrecetas/club/internal/infrastructure/persistence/memory"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
	"github.com/nuestrasrecetas/club/test/testutils"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	repo    outbound.RecipeRepository
	service inbound.RecipeService
	ctx     context.Context
}

func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRecipeRepository()
	suite.service = recipeapp.NewRecipeService(suite.repo, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *RecipeServiceTestSuite) TestCreateRecipe() {
	suite.Run("ValidCommand_ShouldPersistAndReturnDTO", func() {
		// Arrange
		cmd := inbound.CreateRecipeCommand{
			Title:    "Lentil Stew",
			AuthorID: uuid.New(),
			Servings: 6,
			Ingredients: []inbound.IngredientCommand{
				{Name: "Lentils", Qty: 500, Unit: "g"},
				{Name: "Carrot", Qty: 2, Unit: "pcs"},
			},
		}

		// Act
		dto, err := suite.service.CreateRecipe(suite.ctx, cmd)

		// Assert
		suite.Require().NoError(err)
		suite.Equal("Lentil Stew", dto.Title)
		suite.Equal(6, dto.Servings)
		suite.Len(dto.Ingredients, 2)

		stored, err := suite.repo.FindByID(suite.ctx, dto.ID)
		suite.Require().NoError(err)
		suite.Require().NotNil(stored)
		suite.Equal("Lentil Stew", stored.Title())
	})

	suite.Run("ShortTitle_ShouldReturnValidationError", func() {
		// Act
		_, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:    "ab",
			AuthorID: uuid.New(),
		})

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipe() {
	suite.Run("NonOwner_ShouldBeRejected", func() {
		// Arrange
		entity := testutils.NewRecipeBuilder().WithTitle("Owner Only Pie").Build()
		suite.Require().NoError(suite.repo.Create(suite.ctx, entity))

		newTitle := "Stolen Pie"

		// Act
		_, err := suite.service.UpdateRecipe(suite.ctx, inbound.UpdateRecipeCommand{
			RecipeID: entity.ID(),
			UserID:   uuid.New(),
			Title:    &newTitle,
		})

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeNotOwner))
	})

	suite.Run("Owner_ShouldUpdateIngredients", func() {
		// Arrange
		entity := testutils.NewRecipeBuilder().
			WithTitle("Simple Rice").
			WithIngredient("Rice", 1, "cup").
			Build()
		suite.Require().NoError(suite.repo.Create(suite.ctx, entity))

		lines := []inbound.IngredientCommand{
			{Name: "Rice", Qty: 2, Unit: "cup"},
			{Name: "Water", Qty: 1, Unit: "l"},
		}

		// Act
		dto, err := suite.service.UpdateRecipe(suite.ctx, inbound.UpdateRecipeCommand{
			RecipeID:    entity.ID(),
			UserID:      entity.AuthorID(),
			Ingredients: &lines,
		})

		// Assert
		suite.Require().NoError(err)
		suite.Len(dto.Ingredients, 2)
		suite.Equal("Water", dto.Ingredients[1].Name)
	})

	suite.Run("UnknownRecipe_ShouldReturnNotFound", func() {
		// Act
		_, err := suite.service.UpdateRecipe(suite.ctx, inbound.UpdateRecipeCommand{
			RecipeID: uuid.New(),
			UserID:   uuid.New(),
		})

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeRecipeNotFound))
	})
}

func (suite *RecipeServiceTestSuite) TestPublishRecipe() {
	suite.Run("WithoutIngredients_ShouldFailValidation", func() {
		// Arrange
		entity := testutils.NewRecipeBuilder().WithTitle("Empty Draft").Build()
		suite.Require().NoError(suite.repo.Create(suite.ctx, entity))

		// Act
		err := suite.service.PublishRecipe(suite.ctx, entity.ID(), entity.AuthorID())

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeValidationFailed))
	})

	suite.Run("WithIngredients_ShouldPublish", func() {
		// Arrange
		entity := testutils.NewRecipeBuilder().
			WithTitle("Ready Salad").
			WithIngredient("Lettuce", 1, "piece").
			Build()
		suite.Require().NoError(suite.repo.Create(suite.ctx, entity))

		// Act
		err := suite.service.PublishRecipe(suite.ctx, entity.ID(), entity.AuthorID())

		// Assert
		suite.Require().NoError(err)
		dto, err := suite.service.GetRecipeByID(suite.ctx, entity.ID())
		suite.Require().NoError(err)
		suite.True(dto.IsPublic)
	})
}

func (suite *RecipeServiceTestSuite) TestGetRecipesByAuthor() {
	suite.Run("Paginates_ShouldReturnFirstPage", func() {
		// Arrange
		authorID := uuid.New()
		for i := 0; i < 3; i++ {
			entity := testutils.NewRecipeBuilder().WithAuthor(authorID).Build()
			suite.Require().NoError(suite.repo.Create(suite.ctx, entity))
		}

		// Act
		list, err := suite.service.GetRecipesByAuthor(suite.ctx, authorID, inbound.PaginationParams{
			Page:     1,
			PageSize: 2,
		})

		// Assert
		suite.Require().NoError(err)
		suite.Equal(3, list.Total)
		suite.Len(list.Recipes, 2)
		suite.Equal(2, list.TotalPages)
	})
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
