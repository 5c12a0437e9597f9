package repository

import (
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(dbc dbctx.Context, team *models.Team) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(team).Error
}

// GetByID retrieves a team by ID with its responsibility
func (r *TeamRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := dbc.DB(r.db).Preload("ResponsiblePartType").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCode retrieves a team by code
func (r *TeamRepository) GetByCode(dbc dbctx.Context, code models.TeamCode) (*models.Team, error) {
	var team models.Team
	err := dbc.DB(r.db).Preload("ResponsiblePartType").First(&team, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByResponsiblePartType retrieves the team owning a part type
func (r *TeamRepository) GetByResponsiblePartType(dbc dbctx.Context, partTypeID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := dbc.DB(r.db).First(&team, "responsible_part_type_id = ?", partTypeID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves every team ordered by code
func (r *TeamRepository) GetAll(dbc dbctx.Context) ([]models.Team, error) {
	var teams []models.Team
	err := dbc.DB(r.db).Preload("ResponsiblePartType").Order("code").Find(&teams).Error
	return teams, err
}

// Update updates a team's own columns
func (r *TeamRepository) Update(dbc dbctx.Context, team *models.Team) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.DB(r.db).Delete(&models.Team{}, "id = ?", id).Error
}
