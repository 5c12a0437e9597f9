// Package registry holds the reference data (part types, aircraft models and teams)
// as an immutable snapshot shared by the ledger and the assembly engine.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/logger"
	"aircraft-production-backend/internal/metrics"
	"aircraft-production-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const snapshotKey = "reference-data"

// Snapshot is a read-only view of the reference data. Callers must not mutate returned values.
type Snapshot struct {
	partTypes          map[models.PartTypeCode]*models.PartType
	partTypesByID      map[uuid.UUID]*models.PartType
	aircraftModels     map[models.AircraftModelCode]*models.AircraftModel
	aircraftModelsByID map[uuid.UUID]*models.AircraftModel
	teams              map[models.TeamCode]*models.Team
	teamsByID          map[uuid.UUID]*models.Team
}

// NewSnapshot indexes the given reference data
func NewSnapshot(partTypes []models.PartType, aircraftModels []models.AircraftModel, teams []models.Team) *Snapshot {
	s := &Snapshot{
		partTypes:          make(map[models.PartTypeCode]*models.PartType, len(partTypes)),
		partTypesByID:      make(map[uuid.UUID]*models.PartType, len(partTypes)),
		aircraftModels:     make(map[models.AircraftModelCode]*models.AircraftModel, len(aircraftModels)),
		aircraftModelsByID: make(map[uuid.UUID]*models.AircraftModel, len(aircraftModels)),
		teams:              make(map[models.TeamCode]*models.Team, len(teams)),
		teamsByID:          make(map[uuid.UUID]*models.Team, len(teams)),
	}
	for i := range partTypes {
		pt := partTypes[i]
		s.partTypes[pt.Code] = &pt
		s.partTypesByID[pt.ID] = &pt
	}
	for i := range aircraftModels {
		am := aircraftModels[i]
		s.aircraftModels[am.Code] = &am
		s.aircraftModelsByID[am.ID] = &am
	}
	for i := range teams {
		team := teams[i]
		s.teams[team.Code] = &team
		s.teamsByID[team.ID] = &team
	}
	return s
}

// PartType looks up a part type by code
func (s *Snapshot) PartType(code models.PartTypeCode) (*models.PartType, bool) {
	pt, ok := s.partTypes[code]
	return pt, ok
}

// PartTypeByID looks up a part type by id
func (s *Snapshot) PartTypeByID(id uuid.UUID) (*models.PartType, bool) {
	pt, ok := s.partTypesByID[id]
	return pt, ok
}

// AircraftModel looks up an aircraft model by code
func (s *Snapshot) AircraftModel(code models.AircraftModelCode) (*models.AircraftModel, bool) {
	am, ok := s.aircraftModels[code]
	return am, ok
}

// AircraftModelByID looks up an aircraft model by id
func (s *Snapshot) AircraftModelByID(id uuid.UUID) (*models.AircraftModel, bool) {
	am, ok := s.aircraftModelsByID[id]
	return am, ok
}

// Team looks up a team by code
func (s *Snapshot) Team(code models.TeamCode) (*models.Team, bool) {
	team, ok := s.teams[code]
	return team, ok
}

// TeamByID looks up a team by id
func (s *Snapshot) TeamByID(id uuid.UUID) (*models.Team, bool) {
	team, ok := s.teamsByID[id]
	return team, ok
}

// CanProduce is true iff team is a production team responsible for partType
func (s *Snapshot) CanProduce(team *models.Team, partType *models.PartType) bool {
	return team.CanProduce(partType)
}

// Loader builds a fresh snapshot from the store
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// RepositoryLoader loads reference data through the repositories
type RepositoryLoader struct {
	partTypes      repository.PartTypeRepositoryInterface
	aircraftModels repository.AircraftModelRepositoryInterface
	teams          repository.TeamRepositoryInterface
}

// NewRepositoryLoader creates a loader over the catalog and team repositories
func NewRepositoryLoader(
	partTypes repository.PartTypeRepositoryInterface,
	aircraftModels repository.AircraftModelRepositoryInterface,
	teams repository.TeamRepositoryInterface,
) *RepositoryLoader {
	return &RepositoryLoader{partTypes: partTypes, aircraftModels: aircraftModels, teams: teams}
}

// Load reads the three reference tables concurrently
func (l *RepositoryLoader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		partTypes      []models.PartType
		aircraftModels []models.AircraftModel
		teams          []models.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		partTypes, err = l.partTypes.GetAll(dbctx.New(gctx))
		return err
	})
	g.Go(func() error {
		var err error
		aircraftModels, err = l.aircraftModels.GetAll(dbctx.New(gctx))
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = l.teams.GetAll(dbctx.New(gctx))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	return NewSnapshot(partTypes, aircraftModels, teams), nil
}

// Registry caches the current snapshot and rebuilds it after invalidation or expiry
type Registry struct {
	loader  Loader
	cache   *cache.Cache
	ttl     time.Duration
	metrics *metrics.Registry

	mu         sync.Mutex
	generation uint64
}

// New creates a registry. A ttl of zero keeps the snapshot until invalidated.
func New(loader Loader, ttl time.Duration, m *metrics.Registry) *Registry {
	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	return &Registry{
		loader:  loader,
		cache:   cache.New(expiration, 10*time.Minute),
		ttl:     expiration,
		metrics: m,
	}
}

// Snapshot returns the cached snapshot, loading it when absent
func (r *Registry) Snapshot(ctx context.Context) (*Snapshot, error) {
	if val, found := r.cache.Get(snapshotKey); found {
		r.metrics.CacheHit()
		return val.(*Snapshot), nil
	}
	r.metrics.CacheMiss()

	r.mu.Lock()
	generation := r.generation
	r.mu.Unlock()

	snapshot, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// a write landed while loading; do not cache a snapshot that may predate it
	if generation == r.generation {
		r.cache.Set(snapshotKey, snapshot, r.ttl)
	}
	return snapshot, nil
}

// Invalidate drops the cached snapshot. Call after any team or catalog write.
func (r *Registry) Invalidate(ctx context.Context) {
	r.mu.Lock()
	r.generation++
	r.cache.Delete(snapshotKey)
	r.mu.Unlock()
	logger.WithContext(ctx).Debug("reference data cache invalidated")
}
