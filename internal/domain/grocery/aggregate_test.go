package grocery

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AggregatorTestSuite provides a test suite for plan expansion and
// shopping-list aggregation
type AggregatorTestSuite struct {
	suite.Suite
}

func (suite *AggregatorTestSuite) TestExpand() {
	suite.Run("PlanEntry_ShouldScaleQuantitiesByMultiplier", func() {
		// Arrange
		recipeID := uuid.New()
		plan := Plan{
			"Mon": {{RecipeID: recipeID, Multiplier: 2}},
		}
		lookup := staticLookup(map[uuid.UUID][]IngredientLine{
			recipeID: {
				{Name: "Rice", Quantity: 1, Unit: "cup"},
				{Name: "Water", Quantity: 500, Unit: "ml"},
			},
		})

		// Act
		items := Expand(plan, lookup)

		// Assert
		require.Len(suite.T(), items, 2)
		assert.Equal(suite.T(), FlatItem{Name: "Rice", Quantity: 2, Unit: "cup"}, items[0])
		assert.Equal(suite.T(), FlatItem{Name: "Water", Quantity: 1000, Unit: "ml"}, items[1])
	})

	suite.Run("MissingRecipe_ShouldBeSkippedSilently", func() {
		// Arrange
		known := uuid.New()
		plan := Plan{
			"Mon": {
				{RecipeID: uuid.New(), Multiplier: 3},
				{RecipeID: known, Multiplier: 1},
			},
		}
		lookup := staticLookup(map[uuid.UUID][]IngredientLine{
			known: {{Name: "Salt", Quantity: 1, Unit: "tsp"}},
		})

		// Act
		items := Expand(plan, lookup)

		// Assert
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "Salt", items[0].Name)
	})

	suite.Run("NonPositiveMultiplier_ShouldDefaultToOne", func() {
		recipeID := uuid.New()
		plan := Plan{
			"Tue": {
				{RecipeID: recipeID, Multiplier: 0},
				{RecipeID: recipeID, Multiplier: -2},
			},
		}
		lookup := staticLookup(map[uuid.UUID][]IngredientLine{
			recipeID: {{Name: "Flour", Quantity: 200, Unit: "g"}},
		})

		items := Expand(plan, lookup)

		require.Len(suite.T(), items, 2)
		assert.Equal(suite.T(), float64(200), items[0].Quantity)
		assert.Equal(suite.T(), float64(200), items[1].Quantity)
	})

	suite.Run("EmptyPlan_ShouldProduceNoItems", func() {
		items := Expand(Plan{}, staticLookup(nil))
		assert.Empty(suite.T(), items)
	})
}

func (suite *AggregatorTestSuite) TestAggregate() {
	suite.Run("SummableGroup_ShouldCollapseToSingleRow", func() {
		items := []FlatItem{
			{Name: "Sugar", Quantity: 300, Unit: "g"},
			{Name: "sugar ", Quantity: 400, Unit: "grams"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), "sugar", result[0].Name)
		assert.Equal(suite.T(), float64(700), result[0].Quantity)
		assert.Equal(suite.T(), UnitGram, result[0].Unit)
	})

	suite.Run("GramTotalAtThreshold_ShouldPromoteToKilogram", func() {
		items := []FlatItem{
			{Name: "flour", Quantity: 600, Unit: "g"},
			{Name: "flour", Quantity: 500, Unit: "g"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), "flour", result[0].Name)
		assert.Equal(suite.T(), 1.1, result[0].Quantity)
		assert.Equal(suite.T(), UnitKilogram, result[0].Unit)
	})

	suite.Run("MilliliterTotalAtThreshold_ShouldPromoteToLiter", func() {
		items := []FlatItem{
			{Name: "milk", Quantity: 750, Unit: "ml"},
			{Name: "milk", Quantity: 250, Unit: "ml"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), float64(1), result[0].Quantity)
		assert.Equal(suite.T(), UnitLiter, result[0].Unit)
	})

	suite.Run("TotalBelowThreshold_ShouldKeepOriginalUnit", func() {
		items := []FlatItem{
			{Name: "sugar", Quantity: 300, Unit: "g"},
			{Name: "sugar", Quantity: 400, Unit: "g"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), float64(700), result[0].Quantity)
		assert.Equal(suite.T(), UnitGram, result[0].Unit)
	})

	suite.Run("SpoonFamilyTotal_ShouldNeverPromote", func() {
		// 60 tablespoons is well past a cup's worth; the promotion
		// rule only covers gram and milliliter.
		items := []FlatItem{
			{Name: "oil", Quantity: 30, Unit: "tbsp"},
			{Name: "oil", Quantity: 30, Unit: "tbsp"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), float64(60), result[0].Quantity)
		assert.Equal(suite.T(), UnitTablespoon, result[0].Unit)
	})

	suite.Run("UnknownUnit_ShouldKeepEachOccurrenceAsOwnRow", func() {
		items := []FlatItem{
			{Name: "basil leaves", Quantity: 5, Unit: "sprigs"},
			{Name: "basil leaves", Quantity: 3, Unit: "sprigs"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 2)
		quantities := []float64{result[0].Quantity, result[1].Quantity}
		sort.Float64s(quantities)
		assert.Equal(suite.T(), []float64{3, 5}, quantities)
		assert.Equal(suite.T(), Unit("sprigs"), result[0].Unit)
		assert.Equal(suite.T(), Unit("sprigs"), result[1].Unit)
	})

	suite.Run("Notes_ShouldMergeDeduplicatedSortedCommaJoined", func() {
		items := []FlatItem{
			{Name: "salt", Quantity: 1, Unit: "tsp", Note: "for soup"},
			{Name: "salt", Quantity: 1, Unit: "tsp", Note: "for soup"},
			{Name: "salt", Quantity: 1, Unit: "tsp", Note: "for bread"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 1)
		assert.Equal(suite.T(), float64(3), result[0].Quantity)
		assert.Equal(suite.T(), UnitTeaspoon, result[0].Unit)
		assert.Equal(suite.T(), "for bread, for soup", result[0].Note)
	})

	suite.Run("UnknownUnitGroup_ShouldShareMergedNoteAcrossRows", func() {
		items := []FlatItem{
			{Name: "thyme", Quantity: 2, Unit: "sprigs", Note: "fresh"},
			{Name: "thyme", Quantity: 1, Unit: "sprigs", Note: "garnish"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 2)
		assert.Equal(suite.T(), "fresh, garnish", result[0].Note)
		assert.Equal(suite.T(), "fresh, garnish", result[1].Note)
	})

	suite.Run("DifferentUnits_ShouldNeverMergeQuantities", func() {
		items := []FlatItem{
			{Name: "butter", Quantity: 100, Unit: "g"},
			{Name: "butter", Quantity: 2, Unit: "tbsp"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 2)
	})

	suite.Run("Result_ShouldBeSortedByNameAscending", func() {
		items := []FlatItem{
			{Name: "Zucchini", Quantity: 2, Unit: "pc"},
			{Name: "apple", Quantity: 3, Unit: "pc"},
			{Name: "Mango", Quantity: 1, Unit: "pc"},
		}

		result := Aggregate(items)

		require.Len(suite.T(), result, 3)
		for i := 1; i < len(result); i++ {
			assert.LessOrEqual(suite.T(), result[i-1].Name, result[i].Name)
		}
	})

	suite.Run("EmptyInput_ShouldProduceEmptyList", func() {
		assert.Empty(suite.T(), Aggregate(nil))
	})
}

func (suite *AggregatorTestSuite) TestEndToEnd() {
	suite.Run("WeeklyPlan_ShouldProduceSortedPromotedList", func() {
		// Arrange
		recipeID := uuid.New()
		plan := Plan{
			"Mon": {{RecipeID: recipeID, Multiplier: 2}},
		}
		lookup := staticLookup(map[uuid.UUID][]IngredientLine{
			recipeID: {
				{Name: "Rice", Quantity: 1, Unit: "cup"},
				{Name: "Water", Quantity: 500, Unit: "ml"},
			},
		})

		// Act
		result := Aggregate(Expand(plan, lookup))

		// Assert
		require.Len(suite.T(), result, 2)
		assert.Equal(suite.T(), AggregatedItem{Name: "rice", Quantity: 2, Unit: UnitCup}, result[0])
		assert.Equal(suite.T(), AggregatedItem{Name: "water", Quantity: 1, Unit: UnitLiter}, result[1])
	})
}

func staticLookup(recipes map[uuid.UUID][]IngredientLine) RecipeLookup {
	return func(id uuid.UUID) ([]IngredientLine, bool) {
		lines, ok := recipes[id]
		return lines, ok
	}
}

func TestAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}
