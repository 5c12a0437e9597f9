package models

// PartTypeCode identifies a category of part
type PartTypeCode string

const (
	PartTypeWing     PartTypeCode = "WING"
	PartTypeFuselage PartTypeCode = "FUSELAGE"
	PartTypeTail     PartTypeCode = "TAIL"
	PartTypeAvionics PartTypeCode = "AVIONICS"
)

// PartTypeCodes lists every part type in slot order
var PartTypeCodes = []PartTypeCode{PartTypeWing, PartTypeFuselage, PartTypeTail, PartTypeAvionics}

// IsValid checks if the PartTypeCode is valid
func (c PartTypeCode) IsValid() bool {
	switch c {
	case PartTypeWing, PartTypeFuselage, PartTypeTail, PartTypeAvionics:
		return true
	}
	return false
}

// DefaultLabel returns the display label used when seeding
func (c PartTypeCode) DefaultLabel() string {
	switch c {
	case PartTypeWing:
		return "Wing"
	case PartTypeFuselage:
		return "Fuselage"
	case PartTypeTail:
		return "Tail"
	case PartTypeAvionics:
		return "Avionics"
	}
	return string(c)
}

// AircraftModelCode identifies an aircraft design
type AircraftModelCode string

const (
	AircraftModelTB2       AircraftModelCode = "TB2"
	AircraftModelTB3       AircraftModelCode = "TB3"
	AircraftModelAkinci    AircraftModelCode = "AKINCI"
	AircraftModelKizilelma AircraftModelCode = "KIZILELMA"
)

// AircraftModelCodes lists every supported aircraft model
var AircraftModelCodes = []AircraftModelCode{AircraftModelTB2, AircraftModelTB3, AircraftModelAkinci, AircraftModelKizilelma}

// IsValid checks if the AircraftModelCode is valid
func (c AircraftModelCode) IsValid() bool {
	switch c {
	case AircraftModelTB2, AircraftModelTB3, AircraftModelAkinci, AircraftModelKizilelma:
		return true
	}
	return false
}

// TeamCode identifies a team. Production team codes equal the code of the part type they own.
type TeamCode string

const (
	TeamWing     TeamCode = "WING"
	TeamFuselage TeamCode = "FUSELAGE"
	TeamTail     TeamCode = "TAIL"
	TeamAvionics TeamCode = "AVIONICS"
	TeamAssembly TeamCode = "ASSEMBLY"
)

// IsValid checks if the TeamCode is valid
func (c TeamCode) IsValid() bool {
	return c == TeamAssembly || c.IsProduction()
}

// IsProduction reports whether the code names a production team
func (c TeamCode) IsProduction() bool {
	return PartTypeCode(c).IsValid()
}

// IsAssembly reports whether the code names the assembly team
func (c TeamCode) IsAssembly() bool {
	return c == TeamAssembly
}

// PartStatus is the lifecycle state of a part
type PartStatus string

const (
	PartStatusInStock  PartStatus = "IN_STOCK"
	PartStatusInUse    PartStatus = "IN_USE"
	PartStatusRecycled PartStatus = "RECYCLED"
)

// IsValid checks if the PartStatus is valid
func (s PartStatus) IsValid() bool {
	switch s {
	case PartStatusInStock, PartStatusInUse, PartStatusRecycled:
		return true
	}
	return false
}

// Label returns the human readable status
func (s PartStatus) Label() string {
	switch s {
	case PartStatusInStock:
		return "In stock"
	case PartStatusInUse:
		return "In use"
	case PartStatusRecycled:
		return "Recycled"
	}
	return string(s)
}

// Slot is one of the four fixed roles of an assembled aircraft
type Slot string

const (
	SlotWing     Slot = "wing"
	SlotFuselage Slot = "fuselage"
	SlotTail     Slot = "tail"
	SlotAvionics Slot = "avionics"
)

// Slots lists every slot in evaluation order
var Slots = []Slot{SlotWing, SlotFuselage, SlotTail, SlotAvionics}

// IsValid checks if the Slot is valid
func (s Slot) IsValid() bool {
	switch s {
	case SlotWing, SlotFuselage, SlotTail, SlotAvionics:
		return true
	}
	return false
}

// PartTypeCode returns the part type expected in the slot
func (s Slot) PartTypeCode() PartTypeCode {
	switch s {
	case SlotWing:
		return PartTypeWing
	case SlotFuselage:
		return PartTypeFuselage
	case SlotTail:
		return PartTypeTail
	case SlotAvionics:
		return PartTypeAvionics
	}
	return ""
}

// Column returns the aircraft column holding the slot's part id
func (s Slot) Column() string {
	return string(s) + "_id"
}
