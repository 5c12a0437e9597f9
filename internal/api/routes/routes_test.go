package routes_test

import (
	"net/http"
	"strings"
	"testing"

	"aircraft-production-backend/internal/api/routes"
	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/metrics"
	"aircraft-production-backend/internal/service"
	"aircraft-production-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full router over a seeded sqlite database
type RoutesTestSuite struct {
	suite.Suite
	fixture *testutils.Fixture
	router  *testutils.HTTPTestSuite
	tokens  *auth.TokenService
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(suite.T())
	suite.fixture = testutils.NewFixture(suite.T(), db)

	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      "routes-test-secret",
		JWTIssuer:      "routes-test",
		JWTTTLMinutes:  5,
		AllowedOrigins: []string{"*"},
	}
	suite.tokens = auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	suite.router = &testutils.HTTPTestSuite{Router: routes.SetupRoutes(db, cfg, metrics.New())}
}

func (suite *RoutesTestSuite) as(username string) map[string]string {
	token, err := suite.tokens.GenerateJWT(username)
	require.NoError(suite.T(), err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (suite *RoutesTestSuite) lead(code models.TeamCode) map[string]string {
	return suite.as(testutils.LeadUsername(code))
}

func (suite *RoutesTestSuite) TestPublicEndpoints() {
	t := suite.T()

	recorder := suite.router.MakeRequest("GET", "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = suite.router.MakeRequest("GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "aircraft_http_requests_total"))
}

func (suite *RoutesTestSuite) TestAuthentication() {
	t := suite.T()

	recorder := suite.router.MakeRequest("GET", "/api/v1/parts", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("GET", "/api/v1/parts", nil, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("GET", "/api/v1/parts", nil, suite.as("nobody"))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("GET", "/api/v1/me", nil, suite.lead(models.TeamWing))
	var me service.UserResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &me)
	require.NotNil(t, me.Team)
	assert.Equal(t, models.TeamWing, *me.Team)
}

func (suite *RoutesTestSuite) TestAdminOnlyUsers() {
	t := suite.T()

	recorder := suite.router.MakeRequestWithHeaders("GET", "/api/v1/users", nil, suite.lead(models.TeamWing))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("GET", "/api/v1/users", nil, suite.as("admin"))
	var users service.UserListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &users)
	assert.Equal(t, int64(len(suite.fixture.Users)), users.Total)
}

func (suite *RoutesTestSuite) TestProduceAssembleRecycleFlow() {
	t := suite.T()

	produced := make(map[models.Slot]string)
	for _, slot := range models.Slots {
		code := slot.PartTypeCode()
		recorder := suite.router.MakeRequestWithHeaders("POST", "/api/v1/parts", map[string]interface{}{
			"part_type":      code,
			"aircraft_model": "TB2",
			"serial_number":  "E2E-" + string(code),
		}, suite.lead(models.TeamCode(code)))

		var part service.PartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &part)
		produced[slot] = part.ID.String()
	}

	// Wrong team cannot produce
	recorder := suite.router.MakeRequestWithHeaders("POST", "/api/v1/parts", map[string]interface{}{
		"part_type": "WING", "aircraft_model": "TB2", "serial_number": "E2E-X",
	}, suite.lead(models.TeamTail))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("GET", "/api/v1/aircraft/availability/TB2", nil, suite.lead(models.TeamAssembly))
	var availability struct {
		CanAssemble bool `json:"can_assemble"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &availability)
	assert.True(t, availability.CanAssemble)

	recorder = suite.router.MakeRequestWithHeaders("POST", "/api/v1/aircraft", map[string]interface{}{
		"tail_number":    "TC-E2E",
		"aircraft_model": "TB2",
		"wing":           produced[models.SlotWing],
		"fuselage":       produced[models.SlotFuselage],
		"tail":           produced[models.SlotTail],
		"avionics":       produced[models.SlotAvionics],
	}, suite.lead(models.TeamAssembly))
	var aircraft service.AircraftResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &aircraft)
	assert.Len(t, aircraft.Parts, 4)

	// Installed part cannot be recycled, even by its producer
	recorder = suite.router.MakeRequestWithHeaders("POST", "/api/v1/parts/"+produced[models.SlotWing]+"/recycle", nil, suite.lead(models.TeamWing))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("DELETE", "/api/v1/aircraft/"+aircraft.ID.String(), nil, suite.lead(models.TeamAssembly))
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = suite.router.MakeRequestWithHeaders("POST", "/api/v1/parts/"+produced[models.SlotWing]+"/recycle", nil, suite.lead(models.TeamWing))
	var result service.RecycleResult
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &result)
	assert.Equal(t, models.PartStatusRecycled, result.Part.Status)
}

func (suite *RoutesTestSuite) TestNoRoute() {
	recorder := suite.router.MakeRequest("GET", "/nope", nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
