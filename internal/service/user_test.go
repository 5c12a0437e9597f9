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

// UserServiceTestSuite tests users, profiles and actor resolution
type UserServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	env *testEnv
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.env = newTestEnv(suite.T())
}

func teamCode(code models.TeamCode) *models.TeamCode { return &code }

func (suite *UserServiceTestSuite) TestRegisterUser() {
	admin := suite.env.fixture.Admin()

	suite.T().Run("Creates user and profile together", func(t *testing.T) {
		user, err := suite.env.user.RegisterUser(suite.ctx, admin, &service.RegisterUserRequest{
			Username: "new.worker",
			Email:    "new.worker@example.com",
			Team:     teamCode(models.TeamFuselage),
		})
		require.NoError(t, err)
		assert.Equal(t, "new.worker", user.Username)
		require.NotNil(t, user.Team)
		assert.Equal(t, models.TeamFuselage, *user.Team)

		var profile models.Profile
		require.NoError(t, suite.env.fixture.DB.First(&profile, "user_id = ?", user.ID).Error)
		assert.Equal(t, suite.env.fixture.Teams[models.TeamFuselage].ID, *profile.TeamID)
	})

	suite.T().Run("Duplicate username", func(t *testing.T) {
		_, err := suite.env.user.RegisterUser(suite.ctx, admin, &service.RegisterUserRequest{Username: "new.worker"})
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	suite.T().Run("Unknown team leaves nothing behind", func(t *testing.T) {
		require.NoError(t, suite.env.fixture.DB.Where("code = ?", models.TeamAssembly).Delete(&models.Team{}).Error)
		suite.env.registry.Invalidate(suite.ctx)

		_, err := suite.env.user.RegisterUser(suite.ctx, admin, &service.RegisterUserRequest{
			Username: "orphan", Team: teamCode(models.TeamAssembly),
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)

		var count int64
		suite.env.fixture.DB.Model(&models.User{}).Where("username = ?", "orphan").Count(&count)
		assert.Zero(t, count)
	})

	suite.T().Run("Validation", func(t *testing.T) {
		_, err := suite.env.user.RegisterUser(suite.ctx, admin, &service.RegisterUserRequest{Username: "x", Email: "nope"})
		fields := fieldErrors(t, err)
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "email")
	})

	suite.T().Run("Non-admin is refused", func(t *testing.T) {
		_, err := suite.env.user.RegisterUser(suite.ctx, suite.env.fixture.Actor(models.TeamWing), &service.RegisterUserRequest{Username: "sneaky"})
		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	})
}

func (suite *UserServiceTestSuite) TestResolveActor() {
	actor, err := suite.env.user.ResolveActor(suite.ctx, "WING.lead")
	suite.Require().NoError(err)
	suite.Equal("WING.lead", actor.Username)
	suite.Require().NotNil(actor.Team)
	suite.Equal(models.TeamWing, actor.Team.Code)
	suite.True(actor.Team.CanProduce(suite.env.fixture.PartTypes[models.PartTypeWing]))

	admin, err := suite.env.user.ResolveActor(suite.ctx, "admin")
	suite.Require().NoError(err)
	suite.True(admin.IsAdmin)
	suite.Nil(admin.Team)

	_, err = suite.env.user.ResolveActor(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestAssignTeamAndMe() {
	f := suite.env.fixture
	lead := f.Users["TAIL.lead"]

	user, err := suite.env.user.AssignTeam(suite.ctx, f.Admin(), lead.ID, &service.AssignTeamRequest{Team: teamCode(models.TeamAssembly)})
	suite.Require().NoError(err)
	suite.Equal(models.TeamAssembly, *user.Team)

	actor, err := suite.env.user.ResolveActor(suite.ctx, "TAIL.lead")
	suite.Require().NoError(err)
	me, err := suite.env.user.Me(suite.ctx, actor)
	suite.Require().NoError(err)
	suite.Equal(models.TeamAssembly, *me.Team)

	user, err = suite.env.user.AssignTeam(suite.ctx, f.Admin(), lead.ID, &service.AssignTeamRequest{})
	suite.Require().NoError(err)
	suite.Nil(user.Team)

	_, err = suite.env.user.AssignTeam(suite.ctx, f.Actor(models.TeamWing), lead.ID, &service.AssignTeamRequest{})
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, err = suite.env.user.AssignTeam(suite.ctx, f.Admin(), uuid.New(), &service.AssignTeamRequest{})
	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers() {
	list, err := suite.env.user.ListUsers(suite.ctx, suite.env.fixture.Admin(), 1, 2)
	suite.Require().NoError(err)
	suite.Len(list.Users, 2)
	suite.EqualValues(6, list.Total)

	_, err = suite.env.user.ListUsers(suite.ctx, suite.env.fixture.Actor(models.TeamWing), 1, 10)
	suite.ErrorIs(err, apperrors.ErrAdminRequired)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
