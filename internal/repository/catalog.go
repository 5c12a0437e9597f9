package repository

import (
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartTypeRepository handles database operations for part types
type PartTypeRepository struct {
	db *gorm.DB
}

// NewPartTypeRepository creates a new part type repository
func NewPartTypeRepository(db *gorm.DB) *PartTypeRepository {
	return &PartTypeRepository{db: db}
}

// Create creates a new part type
func (r *PartTypeRepository) Create(dbc dbctx.Context, partType *models.PartType) error {
	return dbc.DB(r.db).Create(partType).Error
}

// GetByID retrieves a part type by ID
func (r *PartTypeRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.PartType, error) {
	var partType models.PartType
	if err := dbc.DB(r.db).First(&partType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &partType, nil
}

// GetByCode retrieves a part type by code
func (r *PartTypeRepository) GetByCode(dbc dbctx.Context, code models.PartTypeCode) (*models.PartType, error) {
	var partType models.PartType
	if err := dbc.DB(r.db).First(&partType, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &partType, nil
}

// GetAll retrieves every part type ordered by code
func (r *PartTypeRepository) GetAll(dbc dbctx.Context) ([]models.PartType, error) {
	var partTypes []models.PartType
	err := dbc.DB(r.db).Order("code").Find(&partTypes).Error
	return partTypes, err
}

// Update updates a part type
func (r *PartTypeRepository) Update(dbc dbctx.Context, partType *models.PartType) error {
	return dbc.DB(r.db).Save(partType).Error
}

// Delete deletes a part type
func (r *PartTypeRepository) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.DB(r.db).Delete(&models.PartType{}, "id = ?", id).Error
}

// IsReferenced reports whether any part or team references the part type
func (r *PartTypeRepository) IsReferenced(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	db := dbc.DB(r.db)
	var parts int64
	if err := db.Model(&models.Part{}).Where("part_type_id = ?", id).Count(&parts).Error; err != nil {
		return false, err
	}
	if parts > 0 {
		return true, nil
	}
	var teams int64
	if err := db.Model(&models.Team{}).Where("responsible_part_type_id = ?", id).Count(&teams).Error; err != nil {
		return false, err
	}
	return teams > 0, nil
}

// AircraftModelRepository handles database operations for aircraft models
type AircraftModelRepository struct {
	db *gorm.DB
}

// NewAircraftModelRepository creates a new aircraft model repository
func NewAircraftModelRepository(db *gorm.DB) *AircraftModelRepository {
	return &AircraftModelRepository{db: db}
}

// Create creates a new aircraft model
func (r *AircraftModelRepository) Create(dbc dbctx.Context, model *models.AircraftModel) error {
	return dbc.DB(r.db).Create(model).Error
}

// GetByID retrieves an aircraft model by ID
func (r *AircraftModelRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.AircraftModel, error) {
	var model models.AircraftModel
	if err := dbc.DB(r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByCode retrieves an aircraft model by code
func (r *AircraftModelRepository) GetByCode(dbc dbctx.Context, code models.AircraftModelCode) (*models.AircraftModel, error) {
	var model models.AircraftModel
	if err := dbc.DB(r.db).First(&model, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// GetAll retrieves every aircraft model ordered by code
func (r *AircraftModelRepository) GetAll(dbc dbctx.Context) ([]models.AircraftModel, error) {
	var aircraftModels []models.AircraftModel
	err := dbc.DB(r.db).Order("code").Find(&aircraftModels).Error
	return aircraftModels, err
}

// Update updates an aircraft model
func (r *AircraftModelRepository) Update(dbc dbctx.Context, model *models.AircraftModel) error {
	return dbc.DB(r.db).Save(model).Error
}

// Delete deletes an aircraft model
func (r *AircraftModelRepository) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.DB(r.db).Delete(&models.AircraftModel{}, "id = ?", id).Error
}

// IsReferenced reports whether any part or assembled aircraft references the model
func (r *AircraftModelRepository) IsReferenced(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	db := dbc.DB(r.db)
	var parts int64
	if err := db.Model(&models.Part{}).Where("aircraft_model_id = ?", id).Count(&parts).Error; err != nil {
		return false, err
	}
	if parts > 0 {
		return true, nil
	}
	var aircraft int64
	if err := db.Model(&models.AssembledAircraft{}).Where("aircraft_model_id = ?", id).Count(&aircraft).Error; err != nil {
		return false, err
	}
	return aircraft > 0, nil
}
