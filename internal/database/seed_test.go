package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFile(t *testing.T) {
	data, err := database.LoadSeedFile(filepath.Join("..", "..", "config", "catalog.yaml"))
	require.NoError(t, err)

	assert.Len(t, data.PartTypes, len(models.PartTypeCodes))
	assert.Len(t, data.AircraftModels, len(models.AircraftModelCodes))
	assert.Len(t, data.Teams, 5)
	assert.Equal(t, "admin", data.Users[0].Username)
	assert.True(t, data.Users[0].IsAdmin)

	_, err = database.LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("teams: [unterminated"), 0o600))
	_, err = database.LoadSeedFile(broken)
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	data, err := database.LoadSeedFile(filepath.Join("..", "..", "config", "catalog.yaml"))
	require.NoError(t, err)

	first, err := database.Seed(db, data)
	require.NoError(t, err)
	assert.Equal(t, &database.SeedResult{PartTypes: 4, AircraftModels: 4, Teams: 5, Users: 6}, first)

	second, err := database.Seed(db, data)
	require.NoError(t, err)
	assert.Equal(t, &database.SeedResult{}, second)

	var profile models.Profile
	require.NoError(t, db.Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.username = ?", "tail.lead").
		Preload("Team").
		First(&profile).Error)
	require.NotNil(t, profile.Team)
	assert.Equal(t, models.TeamTail, profile.Team.Code)
}

func TestSeedRejectsInvalidTeams(t *testing.T) {
	tests := []struct {
		name  string
		teams []database.TeamData
		want  error
	}{
		{
			name:  "assembly with responsibility",
			teams: []database.TeamData{{Code: "ASSEMBLY", Label: "Assembly", ResponsiblePartType: "WING"}},
			want:  apperrors.ErrAssemblyTeamHasResponsibility,
		},
		{
			name:  "production without responsibility",
			teams: []database.TeamData{{Code: "WING", Label: "Wing"}},
			want:  apperrors.ErrProductionTeamNoPartType,
		},
		{
			name:  "mismatched responsibility",
			teams: []database.TeamData{{Code: "WING", Label: "Wing", ResponsiblePartType: "TAIL"}},
			want:  apperrors.ErrResponsibilityMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.NewSQLiteDB(t)
			data := database.DefaultSeedData()
			data.Teams = tt.teams

			_, err := database.Seed(db, data)

			assert.ErrorIs(t, err, tt.want)

			var count int64
			require.NoError(t, db.Model(&models.PartType{}).Count(&count).Error)
			assert.Zero(t, count, "failed seed must roll back")
		})
	}
}

func TestSeedRejectsUnknownCodes(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	data := database.DefaultSeedData()
	data.PartTypes = append(data.PartTypes, database.CatalogEntryData{Code: "ROTOR", Label: "Rotor"})

	_, err := database.Seed(db, data)

	assert.ErrorContains(t, err, "ROTOR")
}
