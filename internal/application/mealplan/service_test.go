package mealplan_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	mealplanapp "github.com/nuestrasrecetas/club/internal/application/mealplan"
	"github.com/nuestrasrecetas/club/internal/domain/grocery"
	"github.com/nuestrasrecetas/club/internal/infrastructure/persistence/memory"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	apperrors "github.com/nuestrasrecetas/club/pkg/errors"
)

type MealPlanServiceTestSuite struct {
	suite.Suite
	repo    outbound.MealPlanRepository
	service inbound.MealPlanService
	ctx     context.Context
}

func (suite *MealPlanServiceTestSuite) SetupTest() {
	suite.repo = memory.NewMealPlanRepository()
	suite.service = mealplanapp.NewMealPlanService(suite.repo, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *MealPlanServiceTestSuite) TestCreatePlan() {
	suite.Run("ValidCommand_ShouldPersistWeek", func() {
		// Arrange
		recipeID := uuid.New()
		cmd := inbound.CreatePlanCommand{
			Name:    "Week 34",
			OwnerID: uuid.New(),
			Week: grocery.Plan{
				"monday": {{RecipeID: recipeID, Multiplier: 2}},
			},
		}

		// Act
		dto, err := suite.service.CreatePlan(suite.ctx, cmd)

		// Assert
		suite.Require().NoError(err)
		suite.Equal("Week 34", dto.Name)
		suite.Require().Len(dto.Week["monday"], 1)
		suite.Equal(recipeID, dto.Week["monday"][0].RecipeID)
		suite.Equal(2, dto.Week["monday"][0].Multiplier)
	})

	suite.Run("EmptyName_ShouldFailValidation", func() {
		// Act
		_, err := suite.service.CreatePlan(suite.ctx, inbound.CreatePlanCommand{
			OwnerID: uuid.New(),
		})

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func (suite *MealPlanServiceTestSuite) TestUpdatePlan() {
	suite.Run("NonOwner_ShouldBeRejected", func() {
		// Arrange
		dto, err := suite.service.CreatePlan(suite.ctx, inbound.CreatePlanCommand{
			Name:    "Family Week",
			OwnerID: uuid.New(),
		})
		suite.Require().NoError(err)

		newName := "Hijacked Week"

		// Act
		_, err = suite.service.UpdatePlan(suite.ctx, inbound.UpdatePlanCommand{
			PlanID: dto.ID,
			UserID: uuid.New(),
			Name:   &newName,
		})

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodeNotOwner))
	})

	suite.Run("Owner_ShouldReplaceWeek", func() {
		// Arrange
		ownerID := uuid.New()
		dto, err := suite.service.CreatePlan(suite.ctx, inbound.CreatePlanCommand{
			Name:    "Draft Week",
			OwnerID: ownerID,
		})
		suite.Require().NoError(err)

		week := grocery.Plan{
			"saturday": {{RecipeID: uuid.New(), Multiplier: 1}},
		}

		// Act
		updated, err := suite.service.UpdatePlan(suite.ctx, inbound.UpdatePlanCommand{
			PlanID: dto.ID,
			UserID: ownerID,
			Week:   &week,
		})

		// Assert
		suite.Require().NoError(err)
		suite.Len(updated.Week["saturday"], 1)
	})
}

func (suite *MealPlanServiceTestSuite) TestGetPlan() {
	suite.Run("UnknownPlan_ShouldReturnNotFound", func() {
		// Act
		_, err := suite.service.GetPlanByID(suite.ctx, uuid.New())

		// Assert
		suite.Require().Error(err)
		suite.True(apperrors.Is(err, apperrors.CodePlanNotFound))
	})

	suite.Run("ByOwner_ShouldListOwnPlansOnly", func() {
		// Arrange
		ownerID := uuid.New()
		_, err := suite.service.CreatePlan(suite.ctx, inbound.CreatePlanCommand{
			Name:    "Mine",
			OwnerID: ownerID,
		})
		suite.Require().NoError(err)
		_, err = suite.service.CreatePlan(suite.ctx, inbound.CreatePlanCommand{
			Name:    "Someone else's",
			OwnerID: uuid.New(),
		})
		suite.Require().NoError(err)

		// Act
		plans, err := suite.service.GetPlansByOwner(suite.ctx, ownerID)

		// Assert
		suite.Require().NoError(err)
		suite.Require().Len(plans, 1)
		suite.Equal("Mine", plans[0].Name)
	})
}

func TestMealPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MealPlanServiceTestSuite))
}
