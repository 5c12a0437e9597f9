package repository

import (
	"sort"
	"strings"

	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartFilter narrows part listings. Zero values are ignored.
type PartFilter struct {
	PartTypeID       *uuid.UUID
	AircraftModelID  *uuid.UUID
	Status           *models.PartStatus
	ProducedByTeamID *uuid.UUID
	SerialNumber     string
	Search           string
	Limit            int
	Offset           int
}

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func (r *PartRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("PartType").Preload("AircraftModel").Preload("ProducedByTeam")
}

// Create creates a new part
func (r *PartRepository) Create(dbc dbctx.Context, part *models.Part) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(part).Error
}

// GetByID retrieves a part by ID with its catalog entries and producer
func (r *PartRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.Part, error) {
	var part models.Part
	if err := r.withRelations(dbc.DB(r.db)).First(&part, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// GetByIDForUpdate retrieves a part and locks its row for the rest of the transaction
func (r *PartRepository) GetByIDForUpdate(dbc dbctx.Context, id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := dbc.DB(r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetByIDsForUpdate locks the given parts in id order and returns those that exist keyed by id
func (r *PartRepository) GetByIDsForUpdate(dbc dbctx.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Part, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].String() < unique[j].String() })

	result := make(map[uuid.UUID]*models.Part, len(unique))
	if len(unique) == 0 {
		return result, nil
	}

	var parts []models.Part
	err := dbc.DB(r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", unique).
		Order("id").
		Find(&parts).Error
	if err != nil {
		return nil, err
	}
	for i := range parts {
		result[parts[i].ID] = &parts[i]
	}
	return result, nil
}

// ExistsBySerialNumber reports whether a part with the serial number exists
func (r *PartRepository) ExistsBySerialNumber(dbc dbctx.Context, serialNumber string) (bool, error) {
	var count int64
	err := dbc.DB(r.db).Model(&models.Part{}).Where("serial_number = ?", serialNumber).Count(&count).Error
	return count > 0, err
}

// Transition moves a part from one status to another, guarded by the current status.
// It returns false when the part was not in the expected status.
func (r *PartRepository) Transition(dbc dbctx.Context, id uuid.UUID, from, to models.PartStatus, aircraftID *uuid.UUID) (bool, error) {
	updates := map[string]interface{}{
		"status":  to,
		"version": gorm.Expr("version + 1"),
	}
	if aircraftID != nil {
		updates["used_in_aircraft_id"] = *aircraftID
	} else {
		updates["used_in_aircraft_id"] = nil
	}

	res := dbc.DB(r.db).Model(&models.Part{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete deletes a part
func (r *PartRepository) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.DB(r.db).Delete(&models.Part{}, "id = ?", id).Error
}

// List retrieves parts matching filter, newest first, with the total match count
func (r *PartRepository) List(dbc dbctx.Context, filter PartFilter) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := dbc.DB(r.db).Model(&models.Part{})
	if filter.PartTypeID != nil {
		query = query.Where("part_type_id = ?", *filter.PartTypeID)
	}
	if filter.AircraftModelID != nil {
		query = query.Where("aircraft_model_id = ?", *filter.AircraftModelID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ProducedByTeamID != nil {
		query = query.Where("produced_by_team_id = ?", *filter.ProducedByTeamID)
	}
	if filter.SerialNumber != "" {
		query = query.Where("serial_number = ?", filter.SerialNumber)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(serial_number) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.withRelations(query).
		Order("created_at DESC").Order("id").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&parts).Error
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

// CountInStock counts in-stock parts of a type compatible with a model
func (r *PartRepository) CountInStock(dbc dbctx.Context, partTypeID, aircraftModelID uuid.UUID) (int64, error) {
	var count int64
	err := dbc.DB(r.db).Model(&models.Part{}).
		Where("part_type_id = ? AND aircraft_model_id = ? AND status = ?", partTypeID, aircraftModelID, models.PartStatusInStock).
		Count(&count).Error
	return count, err
}

// ExistsByProducer reports whether any part records teamID as its producer
func (r *PartRepository) ExistsByProducer(dbc dbctx.Context, teamID uuid.UUID) (bool, error) {
	var count int64
	err := dbc.DB(r.db).Model(&models.Part{}).
		Where("produced_by_team_id = ?", teamID).
		Count(&count).Error
	return count > 0, err
}

// ClearProducer detaches parts from a team that is being removed
func (r *PartRepository) ClearProducer(dbc dbctx.Context, teamID uuid.UUID) error {
	return dbc.DB(r.db).Model(&models.Part{}).
		Where("produced_by_team_id = ?", teamID).
		Update("produced_by_team_id", nil).Error
}
