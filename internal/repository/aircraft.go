package repository

import (
	"strings"
	"time"

	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AircraftFilter narrows aircraft listings. Zero values are ignored.
type AircraftFilter struct {
	AircraftModelID   *uuid.UUID
	AssembledByTeamID *uuid.UUID
	Search            string
	AssembledFrom     *time.Time
	AssembledTo       *time.Time
	Limit             int
	Offset            int
}

// AssembledAircraftRepository handles database operations for assembled aircraft
type AssembledAircraftRepository struct {
	db *gorm.DB
}

// NewAssembledAircraftRepository creates a new assembled aircraft repository
func NewAssembledAircraftRepository(db *gorm.DB) *AssembledAircraftRepository {
	return &AssembledAircraftRepository{db: db}
}

func (r *AssembledAircraftRepository) withRelations(db *gorm.DB) *gorm.DB {
	db = db.Preload("AircraftModel").Preload("AssembledByTeam")
	for _, rel := range []string{"Wing", "Fuselage", "Tail", "Avionics"} {
		db = db.Preload(rel).Preload(rel + ".PartType").Preload(rel + ".AircraftModel")
	}
	return db
}

// Create creates a new aircraft record
func (r *AssembledAircraftRepository) Create(dbc dbctx.Context, aircraft *models.AssembledAircraft) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(aircraft).Error
}

// GetByID retrieves an aircraft with its model, team and parts
func (r *AssembledAircraftRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.AssembledAircraft, error) {
	var aircraft models.AssembledAircraft
	if err := r.withRelations(dbc.DB(r.db)).First(&aircraft, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetByIDForUpdate retrieves an aircraft and locks its row for the rest of the transaction
func (r *AssembledAircraftRepository) GetByIDForUpdate(dbc dbctx.Context, id uuid.UUID) (*models.AssembledAircraft, error) {
	var aircraft models.AssembledAircraft
	err := dbc.DB(r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetByIDs retrieves aircraft without relations keyed by id
func (r *AssembledAircraftRepository) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) (map[uuid.UUID]*models.AssembledAircraft, error) {
	result := make(map[uuid.UUID]*models.AssembledAircraft, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var aircraft []models.AssembledAircraft
	if err := dbc.DB(r.db).Where("id IN ?", ids).Find(&aircraft).Error; err != nil {
		return nil, err
	}
	for i := range aircraft {
		result[aircraft[i].ID] = &aircraft[i]
	}
	return result, nil
}

// TailNumberTaken reports whether another aircraft already uses the tail number
func (r *AssembledAircraftRepository) TailNumberTaken(dbc dbctx.Context, tailNumber string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := dbc.DB(r.db).Model(&models.AssembledAircraft{}).Where("tail_number = ?", tailNumber)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ReferencesPart reports whether any aircraft slot binds the part
func (r *AssembledAircraftRepository) ReferencesPart(dbc dbctx.Context, partID uuid.UUID) (bool, error) {
	var count int64
	err := dbc.DB(r.db).Model(&models.AssembledAircraft{}).
		Where("wing_id = ? OR fuselage_id = ? OR tail_id = ? OR avionics_id = ?", partID, partID, partID, partID).
		Count(&count).Error
	return count > 0, err
}

// Update updates the aircraft's own columns
func (r *AssembledAircraftRepository) Update(dbc dbctx.Context, aircraft *models.AssembledAircraft) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(aircraft).Error
}

// Delete deletes an aircraft record
func (r *AssembledAircraftRepository) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.DB(r.db).Delete(&models.AssembledAircraft{}, "id = ?", id).Error
}

// List retrieves aircraft matching filter, newest assembly first, with the total match count
func (r *AssembledAircraftRepository) List(dbc dbctx.Context, filter AircraftFilter) ([]models.AssembledAircraft, int64, error) {
	var aircraft []models.AssembledAircraft
	var total int64

	query := dbc.DB(r.db).Model(&models.AssembledAircraft{})
	if filter.AircraftModelID != nil {
		query = query.Where("aircraft_model_id = ?", *filter.AircraftModelID)
	}
	if filter.AssembledByTeamID != nil {
		query = query.Where("assembled_by_team_id = ?", *filter.AssembledByTeamID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(tail_number) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.AssembledFrom != nil {
		query = query.Where("assembly_date >= ?", *filter.AssembledFrom)
	}
	if filter.AssembledTo != nil {
		query = query.Where("assembly_date <= ?", *filter.AssembledTo)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.withRelations(query).
		Order("assembly_date DESC").Order("id").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&aircraft).Error
	if err != nil {
		return nil, 0, err
	}

	return aircraft, total, nil
}

// ExistsByAssembler reports whether any aircraft records teamID as its assembler
func (r *AssembledAircraftRepository) ExistsByAssembler(dbc dbctx.Context, teamID uuid.UUID) (bool, error) {
	var count int64
	err := dbc.DB(r.db).Model(&models.AssembledAircraft{}).
		Where("assembled_by_team_id = ?", teamID).
		Count(&count).Error
	return count > 0, err
}

// ClearAssembler detaches aircraft from a team that is being removed
func (r *AssembledAircraftRepository) ClearAssembler(dbc dbctx.Context, teamID uuid.UUID) error {
	return dbc.DB(r.db).Model(&models.AssembledAircraft{}).
		Where("assembled_by_team_id = ?", teamID).
		Update("assembled_by_team_id", nil).Error
}
