package service_test

import (
	"context"
	"testing"

	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/metrics"
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"
	"aircraft-production-backend/internal/service"
	"aircraft-production-backend/internal/testutils"

	"github.com/stretchr/testify/require"
)

var (
	serial          = testutils.WithSerial
	withStatus      = testutils.WithStatus
	withoutProducer = testutils.WithoutProducer
)

// testEnv wires every service over a fresh seeded sqlite database
type testEnv struct {
	fixture  *testutils.Fixture
	registry *registry.Registry
	metrics  *metrics.Registry

	partTypes      *repository.PartTypeRepository
	aircraftModels *repository.AircraftModelRepository
	teams          *repository.TeamRepository
	parts          *repository.PartRepository
	aircraft       *repository.AssembledAircraftRepository
	users          *repository.UserRepository

	catalog  *service.CatalogService
	team     *service.TeamService
	ledger   *service.PartService
	assembly *service.AssemblyService
	stock    *service.StockService
	user     *service.UserService
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	db := testutils.NewSQLiteDB(t)
	env := &testEnv{
		fixture:        testutils.NewFixture(t, db),
		metrics:        metrics.New(),
		partTypes:      repository.NewPartTypeRepository(db),
		aircraftModels: repository.NewAircraftModelRepository(db),
		teams:          repository.NewTeamRepository(db),
		parts:          repository.NewPartRepository(db),
		aircraft:       repository.NewAssembledAircraftRepository(db),
		users:          repository.NewUserRepository(db),
	}
	env.registry = registry.New(
		registry.NewRepositoryLoader(env.partTypes, env.aircraftModels, env.teams),
		0,
		env.metrics,
	)

	tx := database.NewTxRunner(db)
	v := service.NewValidator()
	env.catalog = service.NewCatalogService(env.partTypes, env.aircraftModels, env.registry, v)
	env.team = service.NewTeamService(env.teams, env.partTypes, env.parts, env.aircraft, env.users, tx, env.registry, v)
	env.ledger = service.NewPartService(env.parts, env.aircraft, tx, env.registry, env.metrics, v)
	env.assembly = service.NewAssemblyService(env.aircraft, env.parts, env.ledger, tx, env.registry, env.metrics, v)
	env.stock = service.NewStockService(env.parts, env.registry)
	env.user = service.NewUserService(env.users, tx, env.registry, v)
	return env
}

// assignments turns a part set into slot assignments
func assignments(set map[models.Slot]*models.Part) service.SlotAssignments {
	var a service.SlotAssignments
	for slot, part := range set {
		a.Set(slot, part.ID)
	}
	return a
}

// assembleTB2 assembles an aircraft from four fresh TB2 parts
func assembleTB2(t testing.TB, env *testEnv, tail string) *service.AircraftResponse {
	t.Helper()

	set := env.fixture.CreatePartSet(t, models.AircraftModelTB2)
	aircraft, err := env.assembly.Assemble(context.Background(), env.fixture.Actor(models.TeamAssembly), &service.AssembleRequest{
		TailNumber:      tail,
		AircraftModel:   models.AircraftModelTB2,
		SlotAssignments: assignments(set),
	})
	require.NoError(t, err)
	return aircraft
}
