package models

import (
	apperrors "aircraft-production-backend/internal/errors"

	"github.com/google/uuid"
)

// Team is either a production team owning exactly one part type or the single assembly team
type Team struct {
	BaseModel
	Code                  TeamCode   `json:"code" gorm:"size:20;not null;uniqueIndex" validate:"required"`
	Label                 string     `json:"label" gorm:"size:50;not null" validate:"required,max=50"`
	ResponsiblePartTypeID *uuid.UUID `json:"responsible_part_type_id,omitempty" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	ResponsiblePartType *PartType `json:"responsible_part_type,omitempty" gorm:"foreignKey:ResponsiblePartTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsAssembly reports whether t is the assembly team
func (t *Team) IsAssembly() bool {
	return t != nil && t.Code.IsAssembly()
}

// IsProduction reports whether t is a production team
func (t *Team) IsProduction() bool {
	return t != nil && t.Code.IsProduction()
}

// CanProduce is true iff t is a production team whose responsibility is partType.
func (t *Team) CanProduce(partType *PartType) bool {
	if !t.IsProduction() || partType == nil || t.ResponsiblePartTypeID == nil {
		return false
	}
	return *t.ResponsiblePartTypeID == partType.ID
}

// ValidateResponsibility checks that a team code and its responsibility are co-determined.
func ValidateResponsibility(code TeamCode, responsible *PartType) error {
	switch {
	case code.IsAssembly():
		if responsible != nil {
			return apperrors.ErrAssemblyTeamHasResponsibility
		}
	case code.IsProduction():
		if responsible == nil {
			return apperrors.ErrProductionTeamNoPartType
		}
		if responsible.Code != PartTypeCode(code) {
			return apperrors.ErrResponsibilityMismatch
		}
	default:
		return apperrors.ErrUnknownTeamCode
	}
	return nil
}
