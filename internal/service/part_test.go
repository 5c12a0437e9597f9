package service_test

import (
	"context"
	"math"
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PartServiceTestSuite tests the part ledger
type PartServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	env *testEnv
}

func (suite *PartServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.env = newTestEnv(suite.T())
}

func (suite *PartServiceTestSuite) produce(team models.TeamCode, partType models.PartTypeCode, serial string) (*service.PartResponse, error) {
	return suite.env.ledger.Produce(suite.ctx, suite.env.fixture.Actor(team), &service.ProducePartRequest{
		PartType:      partType,
		AircraftModel: models.AircraftModelTB2,
		SerialNumber:  serial,
	})
}

func (suite *PartServiceTestSuite) TestProduce() {
	suite.T().Run("Responsible team produces an in-stock part", func(t *testing.T) {
		part, err := suite.produce(models.TeamWing, models.PartTypeWing, "SN-001")
		require.NoError(t, err)

		assert.Equal(t, "SN-001", part.SerialNumber)
		assert.Equal(t, models.PartStatusInStock, part.Status)
		assert.Equal(t, models.PartTypeWing, part.PartType)
		assert.Equal(t, models.AircraftModelTB2, part.AircraftModel)
		assert.Nil(t, part.UsedInAircraftID)
		require.NotNil(t, part.ProducedByTeam)
		assert.Equal(t, models.TeamWing, *part.ProducedByTeam)

		ok, err := suite.env.team.CanProduce(suite.ctx, suite.env.fixture.Teams[*part.ProducedByTeam].ID, part.PartType)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	suite.T().Run("Duplicate serial number conflicts", func(t *testing.T) {
		_, err := suite.produce(models.TeamWing, models.PartTypeWing, "SN-001")
		assert.ErrorIs(t, err, apperrors.ErrPartExists)
	})

	suite.T().Run("Team cannot produce another team's part type", func(t *testing.T) {
		_, err := suite.produce(models.TeamFuselage, models.PartTypeWing, "SN-002")
		assert.ErrorIs(t, err, apperrors.ErrTeamCannotProduce)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("Assembly team cannot produce", func(t *testing.T) {
		_, err := suite.produce(models.TeamAssembly, models.PartTypeWing, "SN-003")
		assert.ErrorIs(t, err, apperrors.ErrNotProductionTeam)
	})

	suite.T().Run("User without team cannot produce", func(t *testing.T) {
		_, err := suite.env.ledger.Produce(suite.ctx, suite.env.fixture.Admin(), &service.ProducePartRequest{
			PartType:      models.PartTypeWing,
			AircraftModel: models.AircraftModelTB2,
			SerialNumber:  "SN-004",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserNotAssignedToTeam)
	})

	suite.T().Run("Invalid request reports every field", func(t *testing.T) {
		_, err := suite.env.ledger.Produce(suite.ctx, suite.env.fixture.Actor(models.TeamWing), &service.ProducePartRequest{
			PartType:      "ENGINE",
			AircraftModel: "F16",
		})
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := verr.FieldErrors()
		assert.Contains(t, fields, "part_type")
		assert.Contains(t, fields, "aircraft_model")
		assert.Contains(t, fields, "serial_number")
	})
}

func (suite *PartServiceTestSuite) TestRecycle() {
	f := suite.env.fixture

	suite.T().Run("Recycling twice is idempotent", func(t *testing.T) {
		part := f.CreatePart(t, models.PartTypeWing, models.AircraftModelTB2)

		first, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(models.TeamWing), part.ID)
		require.NoError(t, err)
		assert.False(t, first.AlreadyRecycled)
		assert.Equal(t, models.PartStatusRecycled, first.Part.Status)

		second, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(models.TeamWing), part.ID)
		require.NoError(t, err)
		assert.True(t, second.AlreadyRecycled)
		assert.Equal(t, models.PartStatusRecycled, second.Part.Status)
		assert.Equal(t, first.Part.Version, second.Part.Version)
	})

	suite.T().Run("Only the producing team may recycle", func(t *testing.T) {
		part := f.CreatePart(t, models.PartTypeWing, models.AircraftModelTB2)

		_, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(models.TeamFuselage), part.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotProducingTeam)
		assert.Equal(t, models.PartStatusInStock, f.ReloadPart(t, part.ID).Status)
	})

	suite.T().Run("Part without producer cannot be recycled", func(t *testing.T) {
		part := f.CreatePart(t, models.PartTypeTail, models.AircraftModelTB2, withoutProducer())

		_, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(models.TeamTail), part.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotProducingTeam)
	})

	suite.T().Run("In-use part fails regardless of requester", func(t *testing.T) {
		aircraft := suite.assemble(t, "TC-R01")
		wingID := aircraft.Parts[string(models.SlotWing)].ID

		for _, actor := range []models.TeamCode{models.TeamWing, models.TeamFuselage, models.TeamAssembly} {
			_, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(actor), wingID)
			assert.ErrorIs(t, err, apperrors.ErrPartInUse, "requester %s", actor)
			assert.True(t, apperrors.IsInvalidState(err))
		}
		_, err := suite.env.ledger.Recycle(suite.ctx, f.Admin(), wingID)
		assert.ErrorIs(t, err, apperrors.ErrPartInUse)
	})

	suite.T().Run("Unknown part", func(t *testing.T) {
		_, err := suite.env.ledger.Recycle(suite.ctx, f.Actor(models.TeamWing), uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrPartNotFound)
	})
}

func (suite *PartServiceTestSuite) TestDelete() {
	f := suite.env.fixture

	suite.T().Run("Admin deletes a free part", func(t *testing.T) {
		part := f.CreatePart(t, models.PartTypeAvionics, models.AircraftModelTB3)

		require.NoError(t, suite.env.ledger.Delete(suite.ctx, f.Admin(), part.ID))
		_, err := suite.env.ledger.GetByID(suite.ctx, part.ID)
		assert.ErrorIs(t, err, apperrors.ErrPartNotFound)
	})

	suite.T().Run("Non-admin is refused", func(t *testing.T) {
		part := f.CreatePart(t, models.PartTypeAvionics, models.AircraftModelTB3)

		err := suite.env.ledger.Delete(suite.ctx, f.Actor(models.TeamAvionics), part.ID)
		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	})

	suite.T().Run("Part in an aircraft is protected", func(t *testing.T) {
		aircraft := suite.assemble(t, "TC-D01")

		err := suite.env.ledger.Delete(suite.ctx, f.Admin(), aircraft.Parts[string(models.SlotTail)].ID)
		assert.ErrorIs(t, err, apperrors.ErrPartInAircraft)
	})
}

func (suite *PartServiceTestSuite) TestList() {
	f := suite.env.fixture
	f.CreatePart(suite.T(), models.PartTypeWing, models.AircraftModelTB2, serial("WING-TB2-A"))
	f.CreatePart(suite.T(), models.PartTypeWing, models.AircraftModelAkinci, serial("WING-AKI-B"))
	f.CreatePart(suite.T(), models.PartTypeTail, models.AircraftModelTB2, serial("TAIL-TB2-C"), withStatus(models.PartStatusRecycled))

	suite.T().Run("Filter by type and model", func(t *testing.T) {
		list, err := suite.env.ledger.List(suite.ctx, &service.PartListQuery{
			PartType:      models.PartTypeWing,
			AircraftModel: models.AircraftModelTB2,
		})
		require.NoError(t, err)
		require.Len(t, list.Parts, 1)
		assert.Equal(t, "WING-TB2-A", list.Parts[0].SerialNumber)
		assert.EqualValues(t, 1, list.Total)
	})

	suite.T().Run("Filter by status and producing team", func(t *testing.T) {
		list, err := suite.env.ledger.List(suite.ctx, &service.PartListQuery{
			Status:         models.PartStatusRecycled,
			ProducedByTeam: models.TeamTail,
		})
		require.NoError(t, err)
		require.Len(t, list.Parts, 1)
		assert.Equal(t, "TAIL-TB2-C", list.Parts[0].SerialNumber)
	})

	suite.T().Run("Search is case insensitive", func(t *testing.T) {
		list, err := suite.env.ledger.List(suite.ctx, &service.PartListQuery{Search: "aki"})
		require.NoError(t, err)
		require.Len(t, list.Parts, 1)
		assert.Equal(t, "WING-AKI-B", list.Parts[0].SerialNumber)
	})

	suite.T().Run("Zero pagination selects the defaults", func(t *testing.T) {
		list, err := suite.env.ledger.List(suite.ctx, &service.PartListQuery{})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 20, list.PageSize)
		assert.EqualValues(t, 3, list.Total)
	})

	suite.T().Run("Out of range pagination is rejected", func(t *testing.T) {
		for _, query := range []service.PartListQuery{
			{Page: -1},
			{PageSize: -5},
			{PageSize: 1000},
			{Page: math.MaxInt, PageSize: 100},
		} {
			_, err := suite.env.ledger.List(suite.ctx, &query)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams, "page=%d page_size=%d", query.Page, query.PageSize)
		}
	})

	suite.T().Run("Unknown status is rejected", func(t *testing.T) {
		_, err := suite.env.ledger.List(suite.ctx, &service.PartListQuery{Status: "BROKEN"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

// assemble builds a complete TB2 aircraft from fresh parts
func (suite *PartServiceTestSuite) assemble(t *testing.T, tail string) *service.AircraftResponse {
	return assembleTB2(t, suite.env, tail)
}

func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
