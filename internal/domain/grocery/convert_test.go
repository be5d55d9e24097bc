package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// UnitConverterTestSuite provides a test suite for unit conversion
type UnitConverterTestSuite struct {
	suite.Suite
}

func (suite *UnitConverterTestSuite) TestConvert() {
	suite.Run("SameUnit_ShouldReturnQuantityUnchanged", func() {
		qty, ok := Convert(42.5, UnitGram, UnitGram)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), 42.5, qty)
	})

	suite.Run("MassPair_ShouldScaleByThousand", func() {
		qty, ok := Convert(1500, UnitGram, UnitKilogram)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 1.5, qty, 1e-9)

		qty, ok = Convert(2, UnitKilogram, UnitGram)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 2000, qty, 1e-9)
	})

	suite.Run("VolumePair_ShouldScaleByThousand", func() {
		qty, ok := Convert(250, UnitMilliliter, UnitLiter)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 0.25, qty, 1e-9)

		qty, ok = Convert(1.5, UnitLiter, UnitMilliliter)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 1500, qty, 1e-9)
	})

	suite.Run("SpoonFamily_ShouldUseTeaspoonScale", func() {
		// 1 tablespoon = 3 teaspoons
		qty, ok := Convert(1, UnitTablespoon, UnitTeaspoon)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 3, qty, 1e-9)

		// 1 cup = 16 tablespoons
		qty, ok = Convert(1, UnitCup, UnitTablespoon)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 16, qty, 1e-9)

		// 24 teaspoons = 0.5 cup
		qty, ok = Convert(24, UnitTeaspoon, UnitCup)
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 0.5, qty, 1e-9)
	})

	suite.Run("RawTextArguments_ShouldBeNormalizedFirst", func() {
		qty, ok := Convert(3000, Unit(" Grams "), Unit("KG"))
		require.True(suite.T(), ok)
		assert.InDelta(suite.T(), 3, qty, 1e-9)
	})

	suite.Run("CrossFamilyPair_ShouldNotConvert", func() {
		_, ok := Convert(100, UnitGram, UnitTablespoon)
		assert.False(suite.T(), ok)

		_, ok = Convert(100, UnitGram, UnitCup)
		assert.False(suite.T(), ok)

		_, ok = Convert(1, UnitLiter, UnitCup)
		assert.False(suite.T(), ok)

		_, ok = Convert(5, UnitPiece, UnitGram)
		assert.False(suite.T(), ok)
	})

	suite.Run("UnknownUnit_ShouldNotConvert", func() {
		_, ok := Convert(5, Unit("sprigs"), UnitGram)
		assert.False(suite.T(), ok)

		_, ok = Convert(5, UnitGram, Unit(""))
		assert.False(suite.T(), ok)
	})

	suite.Run("DefinedPairs_ShouldRoundTrip", func() {
		pairs := [][2]Unit{
			{UnitGram, UnitKilogram},
			{UnitMilliliter, UnitLiter},
			{UnitTeaspoon, UnitTablespoon},
			{UnitTablespoon, UnitCup},
			{UnitTeaspoon, UnitCup},
		}
		for _, pair := range pairs {
			for _, x := range []float64{0.25, 1, 37.5, 1000} {
				there, ok := Convert(x, pair[0], pair[1])
				require.True(suite.T(), ok, "%v -> %v", pair[0], pair[1])
				back, ok := Convert(there, pair[1], pair[0])
				require.True(suite.T(), ok, "%v -> %v", pair[1], pair[0])
				assert.InDelta(suite.T(), x, back, 1e-9)
			}
		}
	})
}

func TestUnitConverterTestSuite(t *testing.T) {
	suite.Run(t, new(UnitConverterTestSuite))
}
