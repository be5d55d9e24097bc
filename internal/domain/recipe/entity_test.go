package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Arrange
		title := "Arroz con Pollo"
		description := "Sunday classic"
		authorID := uuid.New()

		// Act
		r, err := NewRecipe(title, description, authorID)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)
		assert.Equal(suite.T(), title, r.Title())
		assert.Equal(suite.T(), description, r.Description())
		assert.Equal(suite.T(), authorID, r.AuthorID())
		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Equal(suite.T(), 1, r.Servings())
		assert.False(suite.T(), r.IsPublic())
		assert.NotZero(suite.T(), r.createdAt)
	})

	suite.Run("TitleTooShort_ShouldReturnError", func() {
		r, err := NewRecipe("AB", "desc", uuid.New())

		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooShort, err)
	})

	suite.Run("TitleTooLong_ShouldReturnError", func() {
		r, err := NewRecipe(string(make([]byte, 201)), "desc", uuid.New())

		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooLong, err)
	})
}

func (suite *RecipeTestSuite) TestIngredients() {
	suite.Run("ValidIngredient_ShouldBeAdded", func() {
		r, _ := NewRecipe("Tortilla", "", uuid.New())

		err := r.AddIngredient(IngredientLine{Name: "Eggs", Quantity: 4, Unit: "pc"})

		require.NoError(suite.T(), err)
		assert.Len(suite.T(), r.Ingredients(), 1)
	})

	suite.Run("MissingName_ShouldReturnError", func() {
		r, _ := NewRecipe("Tortilla", "", uuid.New())

		err := r.AddIngredient(IngredientLine{Quantity: 1, Unit: "pc"})

		assert.Equal(suite.T(), ErrIngredientNameRequired, err)
		assert.Empty(suite.T(), r.Ingredients())
	})

	suite.Run("NegativeQuantity_ShouldReturnError", func() {
		r, _ := NewRecipe("Tortilla", "", uuid.New())

		err := r.AddIngredient(IngredientLine{Name: "Salt", Quantity: -1, Unit: "tsp"})

		assert.Equal(suite.T(), ErrNegativeQuantity, err)
	})

	suite.Run("ReplaceIngredients_InvalidLine_ShouldRejectAll", func() {
		r, _ := NewRecipe("Tortilla", "", uuid.New())
		_ = r.AddIngredient(IngredientLine{Name: "Eggs", Quantity: 4, Unit: "pc"})

		err := r.ReplaceIngredients([]IngredientLine{
			{Name: "Potatoes", Quantity: 3, Unit: "pc"},
			{Name: "", Quantity: 1, Unit: "pc"},
		})

		assert.Error(suite.T(), err)
		require.Len(suite.T(), r.Ingredients(), 1)
		assert.Equal(suite.T(), "Eggs", r.Ingredients()[0].Name)
	})
}

func (suite *RecipeTestSuite) TestPublishing() {
	suite.Run("RecipeWithIngredients_ShouldPublish", func() {
		r, _ := NewRecipe("Gazpacho", "", uuid.New())
		_ = r.AddIngredient(IngredientLine{Name: "Tomatoes", Quantity: 1, Unit: "kg"})

		err := r.Publish()

		require.NoError(suite.T(), err)
		assert.True(suite.T(), r.IsPublic())
	})

	suite.Run("RecipeWithoutIngredients_ShouldNotPublish", func() {
		r, _ := NewRecipe("Gazpacho", "", uuid.New())

		err := r.Publish()

		assert.Equal(suite.T(), ErrNoIngredients, err)
		assert.False(suite.T(), r.IsPublic())
	})

	suite.Run("Unpublish_ShouldHideRecipe", func() {
		r, _ := NewRecipe("Gazpacho", "", uuid.New())
		_ = r.AddIngredient(IngredientLine{Name: "Tomatoes", Quantity: 1, Unit: "kg"})
		_ = r.Publish()

		r.Unpublish()

		assert.False(suite.T(), r.IsPublic())
	})
}

func (suite *RecipeTestSuite) TestServings() {
	suite.Run("PositiveServings_ShouldUpdate", func() {
		r, _ := NewRecipe("Paella", "", uuid.New())

		err := r.SetServings(6)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 6, r.Servings())
	})

	suite.Run("NonPositiveServings_ShouldReturnError", func() {
		r, _ := NewRecipe("Paella", "", uuid.New())

		assert.Equal(suite.T(), ErrInvalidServings, r.SetServings(0))
		assert.Equal(suite.T(), ErrInvalidServings, r.SetServings(-1))
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
