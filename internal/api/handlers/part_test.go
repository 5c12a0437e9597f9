package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircraft-production-backend/internal/api/handlers"
	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/mocks"
	"aircraft-production-backend/internal/service"
	"aircraft-production-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func teamActor(code models.TeamCode) *auth.Actor {
	return &auth.Actor{
		UserID:   uuid.New(),
		Username: string(code) + ".lead",
		Team:     &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Code: code},
	}
}

// PartHandlerTestSuite defines the test suite for PartHandler
type PartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPartServiceInterface
	handler     *handlers.PartHandler
	httpSuite   *testutils.HTTPTestSuite
	actor       *auth.Actor
}

func (suite *PartHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPartServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPartHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actor = teamActor(models.TeamWing)
	suite.httpSuite.Actor = suite.actor

	v1 := suite.httpSuite.Router.Group("/api/v1")
	parts := v1.Group("/parts")
	{
		parts.GET("", suite.handler.ListParts)
		parts.POST("", suite.handler.ProducePart)
		parts.GET("/:id", suite.handler.GetPart)
		parts.DELETE("/:id", suite.handler.DeletePart)
		parts.POST("/:id/recycle", suite.handler.RecyclePart)
	}
}

func (suite *PartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PartHandlerTestSuite) TestProducePart() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"part_type":      "WING",
			"aircraft_model": "TB2",
			"serial_number":  "SN-001",
		}
		team := models.TeamWing
		expected := &service.PartResponse{
			ID:             uuid.New(),
			SerialNumber:   "SN-001",
			PartType:       models.PartTypeWing,
			AircraftModel:  models.AircraftModelTB2,
			Status:         models.PartStatusInStock,
			ProducedByTeam: &team,
			Version:        1,
		}

		suite.mockService.EXPECT().
			Produce(gomock.Any(), suite.actor, &service.ProducePartRequest{
				PartType:      models.PartTypeWing,
				AircraftModel: models.AircraftModelTB2,
				SerialNumber:  "SN-001",
			}).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", requestBody)

		var response service.PartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, expected.ID, response.ID)
		assert.Equal(t, models.PartStatusInStock, response.Status)
	})

	suite.T().Run("Wrong Team", func(t *testing.T) {
		suite.mockService.EXPECT().
			Produce(gomock.Any(), suite.actor, gomock.Any()).
			Return(nil, apperrors.ErrTeamCannotProduce).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"part_type": "TAIL", "aircraft_model": "TB2", "serial_number": "SN-002",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "team is not responsible")
	})

	suite.T().Run("Duplicate Serial", func(t *testing.T) {
		suite.mockService.EXPECT().
			Produce(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPartExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"part_type": "WING", "aircraft_model": "TB2", "serial_number": "SN-001",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "serial number")
	})

	suite.T().Run("Validation Error Carries Fields", func(t *testing.T) {
		suite.mockService.EXPECT().
			Produce(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("serial_number", "this field is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"part_type": "WING", "aircraft_model": "TB2",
		})

		testutils.AssertFieldErrors(t, recorder, "serial_number")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/parts", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *PartHandlerTestSuite) TestRecyclePart() {
	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()
		suite.mockService.EXPECT().
			Recycle(gomock.Any(), suite.actor, partID).
			Return(&service.RecycleResult{
				Part:    &service.PartResponse{ID: partID, Status: models.PartStatusRecycled},
				Message: "part recycled",
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/parts/%s/recycle", partID), nil)

		var response service.RecycleResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.PartStatusRecycled, response.Part.Status)
		assert.False(t, response.AlreadyRecycled)
	})

	suite.T().Run("Installed Part", func(t *testing.T) {
		suite.mockService.EXPECT().
			Recycle(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPartInUse).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/parts/%s/recycle", uuid.New()), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "removed from aircraft first")
	})

	suite.T().Run("Not Producer", func(t *testing.T) {
		suite.mockService.EXPECT().
			Recycle(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrNotProducingTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/parts/%s/recycle", uuid.New()), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "producing team")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts/not-a-uuid/recycle", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid part ID")
	})
}

func (suite *PartHandlerTestSuite) TestGetPart() {
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPartNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/"+uuid.New().String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "part not found")
	})

	suite.T().Run("Storage Error Is Hidden", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection reset")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/"+uuid.New().String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})
}

func (suite *PartHandlerTestSuite) TestListParts() {
	suite.T().Run("Binds Filters", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), &service.PartListQuery{
				PartType: models.PartTypeWing,
				Status:   models.PartStatusInStock,
				Search:   "SN",
				Page:     2,
				PageSize: 5,
			}).
			Return(&service.PartListResponse{Parts: []service.PartResponse{}, Total: 0, Page: 2, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?part_type=WING&status=IN_STOCK&search=SN&page=2&page_size=5", nil)

		var response service.PartListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.Page)
	})

	suite.T().Run("Malformed Page", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?page=abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *PartHandlerTestSuite) TestDeletePart() {
	suite.T().Run("Referenced", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(apperrors.ErrPartInAircraft).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/parts/"+uuid.New().String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "assembled aircraft")
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/parts/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *PartHandlerTestSuite) TestMissingActor() {
	suite.httpSuite.Actor = nil

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
		"part_type": "WING", "aircraft_model": "TB2", "serial_number": "SN-001",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authenticated identity")
}

func TestPartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartHandlerTestSuite))
}
