package models

import (
	"time"

	"github.com/google/uuid"
)

// AssembledAircraft groups exactly one part per slot under one aircraft model
type AssembledAircraft struct {
	BaseModel
	TailNumber        string     `json:"tail_number" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	AircraftModelID   uuid.UUID  `json:"aircraft_model_id" gorm:"type:uuid;not null;index"`
	AssemblyDate      time.Time  `json:"assembly_date" gorm:"not null;index"`
	AssembledByTeamID *uuid.UUID `json:"assembled_by_team_id,omitempty" gorm:"type:uuid;index"`
	WingID            uuid.UUID  `json:"wing_id" gorm:"type:uuid;not null;uniqueIndex"`
	FuselageID        uuid.UUID  `json:"fuselage_id" gorm:"type:uuid;not null;uniqueIndex"`
	TailID            uuid.UUID  `json:"tail_id" gorm:"type:uuid;not null;uniqueIndex"`
	AvionicsID        uuid.UUID  `json:"avionics_id" gorm:"type:uuid;not null;uniqueIndex"`

	// Relationships
	AircraftModel   *AircraftModel `json:"aircraft_model,omitempty" gorm:"foreignKey:AircraftModelID;constraint:OnDelete:RESTRICT"`
	AssembledByTeam *Team          `json:"assembled_by_team,omitempty" gorm:"foreignKey:AssembledByTeamID;constraint:OnDelete:SET NULL"`
	Wing            *Part          `json:"wing,omitempty" gorm:"foreignKey:WingID;constraint:OnDelete:RESTRICT"`
	Fuselage        *Part          `json:"fuselage,omitempty" gorm:"foreignKey:FuselageID;constraint:OnDelete:RESTRICT"`
	Tail            *Part          `json:"tail,omitempty" gorm:"foreignKey:TailID;constraint:OnDelete:RESTRICT"`
	Avionics        *Part          `json:"avionics,omitempty" gorm:"foreignKey:AvionicsID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AssembledAircraft
func (AssembledAircraft) TableName() string {
	return "assembled_aircraft"
}

// SlotPartID returns the id of the part bound to slot
func (a *AssembledAircraft) SlotPartID(slot Slot) uuid.UUID {
	switch slot {
	case SlotWing:
		return a.WingID
	case SlotFuselage:
		return a.FuselageID
	case SlotTail:
		return a.TailID
	case SlotAvionics:
		return a.AvionicsID
	}
	return uuid.Nil
}

// SetSlotPartID binds partID to slot
func (a *AssembledAircraft) SetSlotPartID(slot Slot, partID uuid.UUID) {
	switch slot {
	case SlotWing:
		a.WingID = partID
	case SlotFuselage:
		a.FuselageID = partID
	case SlotTail:
		a.TailID = partID
	case SlotAvionics:
		a.AvionicsID = partID
	}
}

// SlotPart returns the preloaded part bound to slot, if loaded
func (a *AssembledAircraft) SlotPart(slot Slot) *Part {
	switch slot {
	case SlotWing:
		return a.Wing
	case SlotFuselage:
		return a.Fuselage
	case SlotTail:
		return a.Tail
	case SlotAvionics:
		return a.Avionics
	}
	return nil
}

// PartIDs returns the bound part ids in slot order
func (a *AssembledAircraft) PartIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(Slots))
	for _, slot := range Slots {
		ids = append(ids, a.SlotPartID(slot))
	}
	return ids
}
