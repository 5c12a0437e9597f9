package repository

import (
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
)

// PartTypeRepositoryInterface defines the interface for part type repository operations
type PartTypeRepositoryInterface interface {
	Create(dbc dbctx.Context, partType *models.PartType) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.PartType, error)
	GetByCode(dbc dbctx.Context, code models.PartTypeCode) (*models.PartType, error)
	GetAll(dbc dbctx.Context) ([]models.PartType, error)
	Update(dbc dbctx.Context, partType *models.PartType) error
	Delete(dbc dbctx.Context, id uuid.UUID) error
	IsReferenced(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

// AircraftModelRepositoryInterface defines the interface for aircraft model repository operations
type AircraftModelRepositoryInterface interface {
	Create(dbc dbctx.Context, model *models.AircraftModel) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.AircraftModel, error)
	GetByCode(dbc dbctx.Context, code models.AircraftModelCode) (*models.AircraftModel, error)
	GetAll(dbc dbctx.Context) ([]models.AircraftModel, error)
	Update(dbc dbctx.Context, model *models.AircraftModel) error
	Delete(dbc dbctx.Context, id uuid.UUID) error
	IsReferenced(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(dbc dbctx.Context, team *models.Team) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.Team, error)
	GetByCode(dbc dbctx.Context, code models.TeamCode) (*models.Team, error)
	GetByResponsiblePartType(dbc dbctx.Context, partTypeID uuid.UUID) (*models.Team, error)
	GetAll(dbc dbctx.Context) ([]models.Team, error)
	Update(dbc dbctx.Context, team *models.Team) error
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

// PartRepositoryInterface defines the interface for part repository operations
type PartRepositoryInterface interface {
	Create(dbc dbctx.Context, part *models.Part) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.Part, error)
	GetByIDForUpdate(dbc dbctx.Context, id uuid.UUID) (*models.Part, error)
	GetByIDsForUpdate(dbc dbctx.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Part, error)
	ExistsBySerialNumber(dbc dbctx.Context, serialNumber string) (bool, error)
	Transition(dbc dbctx.Context, id uuid.UUID, from, to models.PartStatus, aircraftID *uuid.UUID) (bool, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
	List(dbc dbctx.Context, filter PartFilter) ([]models.Part, int64, error)
	CountInStock(dbc dbctx.Context, partTypeID, aircraftModelID uuid.UUID) (int64, error)
	ExistsByProducer(dbc dbctx.Context, teamID uuid.UUID) (bool, error)
	ClearProducer(dbc dbctx.Context, teamID uuid.UUID) error
}

// AssembledAircraftRepositoryInterface defines the interface for aircraft repository operations
type AssembledAircraftRepositoryInterface interface {
	Create(dbc dbctx.Context, aircraft *models.AssembledAircraft) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.AssembledAircraft, error)
	GetByIDForUpdate(dbc dbctx.Context, id uuid.UUID) (*models.AssembledAircraft, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) (map[uuid.UUID]*models.AssembledAircraft, error)
	TailNumberTaken(dbc dbctx.Context, tailNumber string, excludeID *uuid.UUID) (bool, error)
	ReferencesPart(dbc dbctx.Context, partID uuid.UUID) (bool, error)
	Update(dbc dbctx.Context, aircraft *models.AssembledAircraft) error
	Delete(dbc dbctx.Context, id uuid.UUID) error
	List(dbc dbctx.Context, filter AircraftFilter) ([]models.AssembledAircraft, int64, error)
	ExistsByAssembler(dbc dbctx.Context, teamID uuid.UUID) (bool, error)
	ClearAssembler(dbc dbctx.Context, teamID uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user and profile repository operations
type UserRepositoryInterface interface {
	Create(dbc dbctx.Context, user *models.User) error
	CreateProfile(dbc dbctx.Context, profile *models.Profile) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*models.User, error)
	GetAll(dbc dbctx.Context, limit, offset int) ([]models.User, int64, error)
	GetProfileByUserID(dbc dbctx.Context, userID uuid.UUID) (*models.Profile, error)
	SetProfileTeam(dbc dbctx.Context, userID uuid.UUID, teamID *uuid.UUID) error
	ClearTeam(dbc dbctx.Context, teamID uuid.UUID) error
}

var (
	_ PartTypeRepositoryInterface          = (*PartTypeRepository)(nil)
	_ AircraftModelRepositoryInterface     = (*AircraftModelRepository)(nil)
	_ TeamRepositoryInterface              = (*TeamRepository)(nil)
	_ PartRepositoryInterface              = (*PartRepository)(nil)
	_ AssembledAircraftRepositoryInterface = (*AssembledAircraftRepository)(nil)
	_ UserRepositoryInterface              = (*UserRepository)(nil)
)
