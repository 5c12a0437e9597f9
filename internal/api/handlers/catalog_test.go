package handlers_test

import (
	"net/http"
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

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCatalogServiceInterface
	handler     *handlers.CatalogHandler
	httpSuite   *testutils.HTTPTestSuite
	admin       *auth.Actor
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCatalogHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.admin = &auth.Actor{UserID: uuid.New(), Username: "admin", IsAdmin: true}
	suite.httpSuite.Actor = suite.admin

	v1 := suite.httpSuite.Router.Group("/api/v1")
	partTypes := v1.Group("/part-types")
	{
		partTypes.GET("", suite.handler.ListPartTypes)
		partTypes.POST("", suite.handler.CreatePartType)
		partTypes.GET("/:id", suite.handler.GetPartType)
		partTypes.PUT("/:id", suite.handler.UpdatePartType)
		partTypes.DELETE("/:id", suite.handler.DeletePartType)
	}
	aircraftModels := v1.Group("/aircraft-models")
	{
		aircraftModels.GET("", suite.handler.ListAircraftModels)
		aircraftModels.POST("", suite.handler.CreateAircraftModel)
		aircraftModels.GET("/:id", suite.handler.GetAircraftModel)
		aircraftModels.PUT("/:id", suite.handler.UpdateAircraftModel)
		aircraftModels.DELETE("/:id", suite.handler.DeleteAircraftModel)
	}
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestPartTypes() {
	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListPartTypes(gomock.Any()).
			Return([]service.CatalogEntryResponse{{Code: "WING", Label: "Wing"}, {Code: "TAIL", Label: "Tail"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/part-types", nil)

		var response []service.CatalogEntryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Create", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreatePartType(gomock.Any(), suite.admin, &service.CreatePartTypeRequest{Code: models.PartTypeAvionics, Label: "Avionics"}).
			Return(&service.CatalogEntryResponse{ID: uuid.New(), Code: "AVIONICS", Label: "Avionics"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/part-types", map[string]interface{}{"code": "AVIONICS", "label": "Avionics"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Create Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreatePartType(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPartTypeExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/part-types", map[string]interface{}{"code": "WING", "label": "Wing"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "part type already exists")
	})

	suite.T().Run("Update Referenced", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdatePartTypeLabel(gomock.Any(), gomock.Any(), gomock.Any(), &service.UpdateLabelRequest{Label: "Wings"}).
			Return(nil, apperrors.ErrPartTypeInUse).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/part-types/"+uuid.New().String(), map[string]interface{}{"label": "Wings"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "referenced")
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeletePartType(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/part-types/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *CatalogHandlerTestSuite) TestAircraftModels() {
	suite.T().Run("Get Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAircraftModel(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrAircraftModelNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircraft-models/"+uuid.New().String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "aircraft model not found")
	})

	suite.T().Run("Delete Referenced", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeleteAircraftModel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(apperrors.ErrAircraftModelInUse).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/aircraft-models/"+uuid.New().String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "aircraft model is referenced")
	})

	suite.T().Run("Create Invalid Code", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateAircraftModel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("code", "must be one of: TB2 TB3 AKINCI KIZILELMA")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/aircraft-models", map[string]interface{}{"code": "F16", "label": "F16"})

		testutils.AssertFieldErrors(t, recorder, "code")
	})
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
