package service

import (
	"context"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CatalogServiceInterface defines the interface for catalog service
type CatalogServiceInterface interface {
	ListPartTypes(ctx context.Context) ([]CatalogEntryResponse, error)
	GetPartType(ctx context.Context, id uuid.UUID) (*CatalogEntryResponse, error)
	CreatePartType(ctx context.Context, actor *auth.Actor, req *CreatePartTypeRequest) (*CatalogEntryResponse, error)
	UpdatePartTypeLabel(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateLabelRequest) (*CatalogEntryResponse, error)
	DeletePartType(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	ListAircraftModels(ctx context.Context) ([]CatalogEntryResponse, error)
	GetAircraftModel(ctx context.Context, id uuid.UUID) (*CatalogEntryResponse, error)
	CreateAircraftModel(ctx context.Context, actor *auth.Actor, req *CreateAircraftModelRequest) (*CatalogEntryResponse, error)
	UpdateAircraftModelLabel(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateLabelRequest) (*CatalogEntryResponse, error)
	DeleteAircraftModel(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	RegisterTeam(ctx context.Context, actor *auth.Actor, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
}

// PartServiceInterface defines the interface for the part ledger
type PartServiceInterface interface {
	Produce(ctx context.Context, actor *auth.Actor, req *ProducePartRequest) (*PartResponse, error)
	Recycle(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*RecycleResult, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*PartResponse, error)
	List(ctx context.Context, query *PartListQuery) (*PartListResponse, error)
}

// AssemblyServiceInterface defines the interface for the assembly engine
type AssemblyServiceInterface interface {
	Assemble(ctx context.Context, actor *auth.Actor, req *AssembleRequest) (*AircraftResponse, error)
	UpdateAircraft(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateAircraftRequest) (*AircraftResponse, error)
	ReassignSlot(ctx context.Context, actor *auth.Actor, id uuid.UUID, slot models.Slot, partID uuid.UUID) (*AircraftResponse, error)
	Disassemble(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*AircraftResponse, error)
	List(ctx context.Context, query *AircraftListQuery) (*AircraftListResponse, error)
}

// StockServiceInterface defines the interface for stock queries
type StockServiceInterface interface {
	CheckAvailability(ctx context.Context, code models.AircraftModelCode) (*AvailabilityReport, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, actor *auth.Actor, req *RegisterUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	Me(ctx context.Context, actor *auth.Actor) (*UserResponse, error)
	ListUsers(ctx context.Context, actor *auth.Actor, page, pageSize int) (*UserListResponse, error)
	AssignTeam(ctx context.Context, actor *auth.Actor, userID uuid.UUID, req *AssignTeamRequest) (*UserResponse, error)
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ TeamServiceInterface     = (*TeamService)(nil)
	_ PartServiceInterface     = (*PartService)(nil)
	_ AssemblyServiceInterface = (*AssemblyService)(nil)
	_ StockServiceInterface    = (*StockService)(nil)
	_ UserServiceInterface     = (*UserService)(nil)
)
