package repository

import (
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users and their profiles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) withProfile(db *gorm.DB) *gorm.DB {
	return db.Preload("Profile").Preload("Profile.Team").Preload("Profile.Team.ResponsiblePartType")
}

// Create creates a new user
func (r *UserRepository) Create(dbc dbctx.Context, user *models.User) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(user).Error
}

// CreateProfile creates the profile of a user
func (r *UserRepository) CreateProfile(dbc dbctx.Context, profile *models.Profile) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(profile).Error
}

// GetByID retrieves a user with profile and team
func (r *UserRepository) GetByID(dbc dbctx.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.withProfile(dbc.DB(r.db)).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user with profile and team
func (r *UserRepository) GetByUsername(dbc dbctx.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.withProfile(dbc.DB(r.db)).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves users with pagination
func (r *UserRepository) GetAll(dbc dbctx.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := dbc.DB(r.db)
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withProfile(db).Order("username").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetProfileByUserID retrieves the profile of a user
func (r *UserRepository) GetProfileByUserID(dbc dbctx.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := dbc.DB(r.db).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetProfileTeam assigns a team to the profile of a user, or clears it when teamID is nil
func (r *UserRepository) SetProfileTeam(dbc dbctx.Context, userID uuid.UUID, teamID *uuid.UUID) error {
	var value interface{}
	if teamID != nil {
		value = *teamID
	}
	return dbc.DB(r.db).Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("team_id", value).Error
}

// ClearTeam detaches profiles from a team that is being removed
func (r *UserRepository) ClearTeam(dbc dbctx.Context, teamID uuid.UUID) error {
	return dbc.DB(r.db).Model(&models.Profile{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}
