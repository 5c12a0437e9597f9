package models

import (
	"github.com/google/uuid"
)

// Part is a single manufactured component tracked through its lifecycle
type Part struct {
	BaseModel
	SerialNumber     string     `json:"serial_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	PartTypeID       uuid.UUID  `json:"part_type_id" gorm:"type:uuid;not null;index"`
	AircraftModelID  uuid.UUID  `json:"aircraft_model_id" gorm:"type:uuid;not null;index"`
	Status           PartStatus `json:"status" gorm:"size:20;not null;index"`
	ProducedByTeamID *uuid.UUID `json:"produced_by_team_id,omitempty" gorm:"type:uuid;index"`
	UsedInAircraftID *uuid.UUID `json:"used_in_aircraft_id,omitempty" gorm:"type:uuid;index"`
	Version          int        `json:"version" gorm:"not null"`

	// Relationships
	PartType       *PartType      `json:"part_type,omitempty" gorm:"foreignKey:PartTypeID;constraint:OnDelete:RESTRICT"`
	AircraftModel  *AircraftModel `json:"aircraft_model,omitempty" gorm:"foreignKey:AircraftModelID;constraint:OnDelete:RESTRICT"`
	ProducedByTeam *Team          `json:"produced_by_team,omitempty" gorm:"foreignKey:ProducedByTeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}
