package models

import (
	"github.com/google/uuid"
)

// User is an authenticated identity
type User struct {
	BaseModel
	Username string `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,min=3,max=150"`
	Email    string `json:"email" gorm:"size:254" validate:"omitempty,email,max=254"`
	IsAdmin  bool   `json:"is_admin" gorm:"not null"`

	// Relationships
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Profile attaches a user to the team it works for
type Profile struct {
	BaseModel
	UserID uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
