package models

// PartType is a category of part such as wing or avionics
type PartType struct {
	BaseModel
	Code  PartTypeCode `json:"code" gorm:"size:20;not null;uniqueIndex" validate:"required"`
	Label string       `json:"label" gorm:"size:50;not null" validate:"required,max=50"`
}

// TableName returns the table name for PartType
func (PartType) TableName() string {
	return "part_types"
}

// AircraftModel is an aircraft design that parts are built for
type AircraftModel struct {
	BaseModel
	Code  AircraftModelCode `json:"code" gorm:"size:20;not null;uniqueIndex" validate:"required"`
	Label string            `json:"label" gorm:"size:50;not null" validate:"required,max=50"`
}

// TableName returns the table name for AircraftModel
func (AircraftModel) TableName() string {
	return "aircraft_models"
}
