package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var serialCounter atomic.Int64

// Fixture is a database seeded with the default catalog and one user per team
type Fixture struct {
	DB             *gorm.DB
	PartTypes      map[models.PartTypeCode]*models.PartType
	AircraftModels map[models.AircraftModelCode]*models.AircraftModel
	Teams          map[models.TeamCode]*models.Team
	Users          map[string]*models.User
}

// FixtureSeedData is the default catalog plus an admin and one lead per team
func FixtureSeedData() *database.SeedData {
	data := database.DefaultSeedData()
	data.Users = append(data.Users, database.UserData{Username: "admin", Email: "admin@example.com", IsAdmin: true})
	for _, team := range data.Teams {
		data.Users = append(data.Users, database.UserData{
			Username: LeadUsername(models.TeamCode(team.Code)),
			Email:    LeadUsername(models.TeamCode(team.Code)) + "@example.com",
			Team:     team.Code,
		})
	}
	return data
}

// LeadUsername returns the seeded username of a team's lead
func LeadUsername(code models.TeamCode) string {
	return fmt.Sprintf("%s.lead", string(code))
}

// NewFixture seeds db and indexes the seeded rows
func NewFixture(t testing.TB, db *gorm.DB) *Fixture {
	t.Helper()

	_, err := database.Seed(db, FixtureSeedData())
	require.NoError(t, err)

	f := &Fixture{
		DB:             db,
		PartTypes:      make(map[models.PartTypeCode]*models.PartType),
		AircraftModels: make(map[models.AircraftModelCode]*models.AircraftModel),
		Teams:          make(map[models.TeamCode]*models.Team),
		Users:          make(map[string]*models.User),
	}

	var partTypes []models.PartType
	require.NoError(t, db.Find(&partTypes).Error)
	for i := range partTypes {
		f.PartTypes[partTypes[i].Code] = &partTypes[i]
	}
	var aircraftModels []models.AircraftModel
	require.NoError(t, db.Find(&aircraftModels).Error)
	for i := range aircraftModels {
		f.AircraftModels[aircraftModels[i].Code] = &aircraftModels[i]
	}
	var teams []models.Team
	require.NoError(t, db.Preload("ResponsiblePartType").Find(&teams).Error)
	for i := range teams {
		f.Teams[teams[i].Code] = &teams[i]
	}
	var users []models.User
	require.NoError(t, db.Preload("Profile").Find(&users).Error)
	for i := range users {
		f.Users[users[i].Username] = &users[i]
	}
	return f
}

// Actor returns the lead of the given team as an authenticated actor
func (f *Fixture) Actor(code models.TeamCode) *auth.Actor {
	user := f.Users[LeadUsername(code)]
	return &auth.Actor{
		UserID:   user.ID,
		Username: user.Username,
		Team:     f.Teams[code],
	}
}

// Admin returns the seeded administrator
func (f *Fixture) Admin() *auth.Actor {
	user := f.Users["admin"]
	return &auth.Actor{UserID: user.ID, Username: user.Username, IsAdmin: true}
}

// PartOption customizes a part created by CreatePart
type PartOption func(*models.Part)

// WithSerial sets the serial number
func WithSerial(serial string) PartOption {
	return func(p *models.Part) { p.SerialNumber = serial }
}

// WithStatus sets the status
func WithStatus(status models.PartStatus) PartOption {
	return func(p *models.Part) { p.Status = status }
}

// WithoutProducer leaves the producing team empty
func WithoutProducer() PartOption {
	return func(p *models.Part) { p.ProducedByTeamID = nil }
}

// CreatePart inserts an in-stock part produced by the team responsible for its type
func (f *Fixture) CreatePart(t testing.TB, partType models.PartTypeCode, aircraftModel models.AircraftModelCode, opts ...PartOption) *models.Part {
	t.Helper()

	producer := f.Teams[models.TeamCode(partType)].ID
	part := &models.Part{
		SerialNumber:     fmt.Sprintf("SN-%s-%d", partType, serialCounter.Add(1)),
		PartTypeID:       f.PartTypes[partType].ID,
		AircraftModelID:  f.AircraftModels[aircraftModel].ID,
		Status:           models.PartStatusInStock,
		ProducedByTeamID: &producer,
		Version:          1,
	}
	for _, opt := range opts {
		opt(part)
	}
	require.NoError(t, f.DB.Omit("PartType", "AircraftModel", "ProducedByTeam").Create(part).Error)
	return part
}

// CreatePartSet inserts one in-stock part per slot for the model, keyed by slot
func (f *Fixture) CreatePartSet(t testing.TB, aircraftModel models.AircraftModelCode) map[models.Slot]*models.Part {
	t.Helper()

	set := make(map[models.Slot]*models.Part, len(models.Slots))
	for _, slot := range models.Slots {
		set[slot] = f.CreatePart(t, slot.PartTypeCode(), aircraftModel)
	}
	return set
}

// ReloadPart reads the part's current row
func (f *Fixture) ReloadPart(t testing.TB, id uuid.UUID) *models.Part {
	t.Helper()

	var part models.Part
	require.NoError(t, f.DB.First(&part, "id = ?", id).Error)
	return &part
}
