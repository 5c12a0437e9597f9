package service_test

import (
	"context"
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TeamServiceTestSuite tests the team registry
type TeamServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	env *testEnv
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.env = newTestEnv(suite.T())
}

func ptCode(code models.PartTypeCode) *models.PartTypeCode { return &code }

// freeWing removes the seeded wing team so the code and responsibility can be registered again
func (suite *TeamServiceTestSuite) freeWing() {
	wing := suite.env.fixture.Teams[models.TeamWing]
	suite.Require().NoError(suite.env.team.Delete(suite.ctx, suite.env.fixture.Admin(), wing.ID))
}

func (suite *TeamServiceTestSuite) TestRegisterTeam() {
	admin := suite.env.fixture.Admin()

	suite.T().Run("Assembly team with a responsibility is a configuration error", func(t *testing.T) {
		_, err := suite.env.team.RegisterTeam(suite.ctx, admin, &service.CreateTeamRequest{
			Code: models.TeamAssembly, Label: "Second assembly", ResponsiblePartType: ptCode(models.PartTypeWing),
		})
		assert.ErrorIs(t, err, apperrors.ErrAssemblyTeamHasResponsibility)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	suite.T().Run("Production team without responsibility", func(t *testing.T) {
		_, err := suite.env.team.RegisterTeam(suite.ctx, admin, &service.CreateTeamRequest{
			Code: models.TeamTail, Label: "Tail",
		})
		assert.ErrorIs(t, err, apperrors.ErrProductionTeamNoPartType)
	})

	suite.T().Run("Responsibility must match the code", func(t *testing.T) {
		_, err := suite.env.team.RegisterTeam(suite.ctx, admin, &service.CreateTeamRequest{
			Code: models.TeamTail, Label: "Tail", ResponsiblePartType: ptCode(models.PartTypeWing),
		})
		assert.ErrorIs(t, err, apperrors.ErrResponsibilityMismatch)
	})

	suite.T().Run("Duplicate code conflicts", func(t *testing.T) {
		_, err := suite.env.team.RegisterTeam(suite.ctx, admin, &service.CreateTeamRequest{
			Code: models.TeamAssembly, Label: "Assembly again",
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("Non-admin is refused", func(t *testing.T) {
		_, err := suite.env.team.RegisterTeam(suite.ctx, suite.env.fixture.Actor(models.TeamWing), &service.CreateTeamRequest{
			Code: models.TeamAssembly, Label: "Assembly",
		})
		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	})

	suite.T().Run("Registers after the old team is gone", func(t *testing.T) {
		suite.freeWing()

		team, err := suite.env.team.RegisterTeam(suite.ctx, admin, &service.CreateTeamRequest{
			Code: models.TeamWing, Label: "New wing team", ResponsiblePartType: ptCode(models.PartTypeWing),
		})
		require.NoError(t, err)
		assert.Equal(t, "production", team.Kind)
		require.NotNil(t, team.ResponsiblePartType)
		assert.Equal(t, models.PartTypeWing, *team.ResponsiblePartType)

		ok, err := suite.env.team.CanProduce(suite.ctx, team.ID, models.PartTypeWing)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = suite.env.team.CanProduce(suite.ctx, team.ID, models.PartTypeTail)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func (suite *TeamServiceTestSuite) TestUpdate() {
	admin := suite.env.fixture.Admin()
	tail := suite.env.fixture.Teams[models.TeamTail]

	suite.T().Run("Relabel", func(t *testing.T) {
		team, err := suite.env.team.Update(suite.ctx, admin, tail.ID, &service.UpdateTeamRequest{
			Code: models.TeamTail, Label: "Empennage", ResponsiblePartType: ptCode(models.PartTypeTail),
		})
		require.NoError(t, err)
		assert.Equal(t, "Empennage", team.Label)
	})

	suite.T().Run("Code and responsibility cannot drift apart", func(t *testing.T) {
		_, err := suite.env.team.Update(suite.ctx, admin, tail.ID, &service.UpdateTeamRequest{
			Code: models.TeamTail, Label: "Tail", ResponsiblePartType: ptCode(models.PartTypeAvionics),
		})
		assert.ErrorIs(t, err, apperrors.ErrResponsibilityMismatch)
	})

	suite.T().Run("Taking another team's responsibility conflicts", func(t *testing.T) {
		_, err := suite.env.team.Update(suite.ctx, admin, tail.ID, &service.UpdateTeamRequest{
			Code: models.TeamAvionics, Label: "Avionics", ResponsiblePartType: ptCode(models.PartTypeAvionics),
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("Unknown team", func(t *testing.T) {
		_, err := suite.env.team.Update(suite.ctx, admin, uuid.New(), &service.UpdateTeamRequest{
			Code: models.TeamTail, Label: "Tail", ResponsiblePartType: ptCode(models.PartTypeTail),
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func (suite *TeamServiceTestSuite) TestUpdateReferencedTeam() {
	f := suite.env.fixture
	admin := f.Admin()
	wing := f.Teams[models.TeamWing]
	fuselage := f.Teams[models.TeamFuselage]
	part := f.CreatePart(suite.T(), models.PartTypeWing, models.AircraftModelTB2)
	suite.Require().NoError(suite.env.team.Delete(suite.ctx, admin, fuselage.ID))

	suite.T().Run("Producer cannot take another code", func(t *testing.T) {
		_, err := suite.env.team.Update(suite.ctx, admin, wing.ID, &service.UpdateTeamRequest{
			Code: models.TeamFuselage, Label: "Fuselage", ResponsiblePartType: ptCode(models.PartTypeFuselage),
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamInUse)
		assert.True(t, apperrors.IsReferenced(err))

		team, err := suite.env.team.GetByID(suite.ctx, wing.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TeamWing, team.Code)
		require.NotNil(t, team.ResponsiblePartType)
		assert.Equal(t, models.PartTypeWing, *team.ResponsiblePartType)

		ok, err := suite.env.team.CanProduce(suite.ctx, wing.ID, models.PartTypeWing)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, wing.ID, *f.ReloadPart(t, part.ID).ProducedByTeamID)
	})

	suite.T().Run("Producer can still be relabelled", func(t *testing.T) {
		team, err := suite.env.team.Update(suite.ctx, admin, wing.ID, &service.UpdateTeamRequest{
			Code: models.TeamWing, Label: "Wing Works", ResponsiblePartType: ptCode(models.PartTypeWing),
		})
		require.NoError(t, err)
		assert.Equal(t, "Wing Works", team.Label)
	})

	suite.T().Run("Team without parts can take a freed code", func(t *testing.T) {
		tail := f.Teams[models.TeamTail]
		team, err := suite.env.team.Update(suite.ctx, admin, tail.ID, &service.UpdateTeamRequest{
			Code: models.TeamFuselage, Label: "Fuselage", ResponsiblePartType: ptCode(models.PartTypeFuselage),
		})
		require.NoError(t, err)
		assert.Equal(t, models.TeamFuselage, team.Code)
	})
}

func (suite *TeamServiceTestSuite) TestUpdateAssemblerWithAircraft() {
	f := suite.env.fixture
	assembly := f.Teams[models.TeamAssembly]
	assembleTB2(suite.T(), suite.env, "TC-ASM")
	suite.freeWing()

	_, err := suite.env.team.Update(suite.ctx, f.Admin(), assembly.ID, &service.UpdateTeamRequest{
		Code: models.TeamWing, Label: "Wing", ResponsiblePartType: ptCode(models.PartTypeWing),
	})
	suite.ErrorIs(err, apperrors.ErrTeamInUse)

	team, err := suite.env.team.GetByID(suite.ctx, assembly.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TeamAssembly, team.Code)
	suite.Nil(team.ResponsiblePartType)
}

func (suite *TeamServiceTestSuite) TestDeleteDetachesReferences() {
	f := suite.env.fixture
	part := f.CreatePart(suite.T(), models.PartTypeWing, models.AircraftModelTB2)
	wing := f.Teams[models.TeamWing]

	suite.Require().NoError(suite.env.team.Delete(suite.ctx, f.Admin(), wing.ID))

	suite.Nil(f.ReloadPart(suite.T(), part.ID).ProducedByTeamID)
	var profile models.Profile
	suite.Require().NoError(f.DB.First(&profile, "user_id = ?", f.Users["WING.lead"].ID).Error)
	suite.Nil(profile.TeamID)

	_, err := suite.env.team.GetByID(suite.ctx, wing.ID)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	teams, err := suite.env.team.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(teams, 4)

	_, err = suite.env.team.CanProduce(suite.ctx, wing.ID, models.PartTypeWing)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
