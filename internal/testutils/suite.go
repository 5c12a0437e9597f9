package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	pgUser     = "aircraft"
	pgPassword = "aircraft"
	pgDatabase = "aircraft_test"
)

// postgresContainer is the Postgres instance shared by every integration suite in a test binary
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	dsn      string
	db       *gorm.DB
}

var (
	pgMu   sync.Mutex
	pg     *postgresContainer
	pgErr  error
	pgOnce sync.Once
)

// BaseTestSuite gives an integration suite the shared Postgres database.
// Tables are emptied before and after every test.
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()

	pgOnce.Do(func() { pg, pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("postgres test container unavailable: %v", pgErr)
	}

	pgMu.Lock()
	defer pgMu.Unlock()
	if pg == nil {
		t.Fatal("postgres test container already purged")
	}
	return &BaseTestSuite{
		DB: pg.db,
		Config: &config.Config{
			Environment:    "test",
			Port:           "8080",
			LogLevel:       "debug",
			DatabaseDriver: database.DriverPostgres,
			DatabaseURL:    pg.dsn,
		},
	}
}

// RunIntegration runs m and purges the shared container afterwards, also on SIGINT/SIGTERM.
// Use it from TestMain in packages with integration suites.
func RunIntegration(m *testing.M) int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		logrus.Warn("integration tests interrupted, purging postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the shared database and purges its container
func CleanupSharedContainer() {
	pgMu.Lock()
	defer pgMu.Unlock()
	if pg == nil {
		return
	}
	if sqlDB, err := pg.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := pg.pool.Purge(pg.resource); err != nil {
		logrus.WithError(err).Warn("could not purge postgres container")
	}
	pg = nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table backing a persisted model
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	var tables []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		tables = append(tables, `"`+stmt.Schema.Table+`"`)
	}
	if len(tables) == 0 {
		return
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("could not truncate test tables")
	}
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	tag := os.Getenv("TEST_POSTGRES_TAG")
	if tag == "" {
		tag = "16-alpine"
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	// docker reaps the container even if the test binary is killed
	_ = resource.Expire(600)

	c := &postgresContainer{
		pool:     pool,
		resource: resource,
		dsn: fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
			pgUser, pgPassword, resource.GetHostPort("5432/tcp"), pgDatabase),
	}

	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", c.dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	c.db, err = database.Initialize(c.dsn, &database.Options{
		Driver:       database.DriverPostgres,
		MaxOpenConns: 10,
		AutoMigrate:  true,
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	logrus.WithField("host", resource.GetHostPort("5432/tcp")).Info("postgres test container ready")
	return c, nil
}
