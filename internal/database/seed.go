package database

import (
	"errors"
	"fmt"
	"os"

	"aircraft-production-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedData mirrors the catalog seed file
type SeedData struct {
	PartTypes      []CatalogEntryData `yaml:"part_types"`
	AircraftModels []CatalogEntryData `yaml:"aircraft_models"`
	Teams          []TeamData         `yaml:"teams"`
	Users          []UserData         `yaml:"users"`
}

type CatalogEntryData struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

type TeamData struct {
	Code                string `yaml:"code"`
	Label               string `yaml:"label"`
	ResponsiblePartType string `yaml:"responsible_part_type,omitempty"`
}

type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	IsAdmin  bool   `yaml:"is_admin"`
	Team     string `yaml:"team,omitempty"`
}

// SeedResult counts the records created by Seed
type SeedResult struct {
	PartTypes      int
	AircraftModels int
	Teams          int
	Users          int
}

// LoadSeedFile parses a catalog seed file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// DefaultSeedData returns the built-in catalog: four part types, four models, five teams.
func DefaultSeedData() *SeedData {
	data := &SeedData{}
	for _, code := range models.PartTypeCodes {
		data.PartTypes = append(data.PartTypes, CatalogEntryData{Code: string(code), Label: code.DefaultLabel()})
		data.Teams = append(data.Teams, TeamData{
			Code:                string(code),
			Label:               code.DefaultLabel() + " Team",
			ResponsiblePartType: string(code),
		})
	}
	for _, code := range models.AircraftModelCodes {
		data.AircraftModels = append(data.AircraftModels, CatalogEntryData{Code: string(code), Label: string(code)})
	}
	data.Teams = append(data.Teams, TeamData{Code: string(models.TeamAssembly), Label: "Assembly Team"})
	return data
}

// Seed creates missing catalog entries, teams and users. Existing rows are left untouched.
func Seed(db *gorm.DB, data *SeedData) (*SeedResult, error) {
	result := &SeedResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		partTypes := make(map[string]*models.PartType)
		for _, entry := range data.PartTypes {
			code := models.PartTypeCode(entry.Code)
			if !code.IsValid() {
				return fmt.Errorf("seed: unknown part type code %q", entry.Code)
			}
			pt := models.PartType{Code: code, Label: entry.Label}
			created, err := firstOrCreate(tx, &pt, "code = ?", code)
			if err != nil {
				return fmt.Errorf("seed part type %s: %w", code, err)
			}
			if created {
				result.PartTypes++
			}
			partTypes[entry.Code] = &pt
		}

		for _, entry := range data.AircraftModels {
			code := models.AircraftModelCode(entry.Code)
			if !code.IsValid() {
				return fmt.Errorf("seed: unknown aircraft model code %q", entry.Code)
			}
			am := models.AircraftModel{Code: code, Label: entry.Label}
			created, err := firstOrCreate(tx, &am, "code = ?", code)
			if err != nil {
				return fmt.Errorf("seed aircraft model %s: %w", code, err)
			}
			if created {
				result.AircraftModels++
			}
		}

		teams := make(map[string]*models.Team)
		for _, entry := range data.Teams {
			var responsible *models.PartType
			if entry.ResponsiblePartType != "" {
				pt, ok := partTypes[entry.ResponsiblePartType]
				if !ok {
					return fmt.Errorf("seed team %s: part type %s not in seed", entry.Code, entry.ResponsiblePartType)
				}
				responsible = pt
			}
			code := models.TeamCode(entry.Code)
			if err := models.ValidateResponsibility(code, responsible); err != nil {
				return fmt.Errorf("seed team %s: %w", code, err)
			}
			team := models.Team{Code: code, Label: entry.Label}
			if responsible != nil {
				team.ResponsiblePartTypeID = &responsible.ID
			}
			created, err := firstOrCreate(tx, &team, "code = ?", code)
			if err != nil {
				return fmt.Errorf("seed team %s: %w", code, err)
			}
			if created {
				result.Teams++
			}
			teams[entry.Code] = &team
		}

		for _, entry := range data.Users {
			user := models.User{Username: entry.Username, Email: entry.Email, IsAdmin: entry.IsAdmin}
			created, err := firstOrCreate(tx, &user, "username = ?", entry.Username)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", entry.Username, err)
			}
			if !created {
				continue
			}
			profile := models.Profile{UserID: user.ID}
			if entry.Team != "" {
				team, ok := teams[entry.Team]
				if !ok {
					return fmt.Errorf("seed user %s: team %s not in seed", entry.Username, entry.Team)
				}
				profile.TeamID = &team.ID
			}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("seed profile %s: %w", entry.Username, err)
			}
			result.Users++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// firstOrCreate loads the row matching query into dest, creating dest when absent.
func firstOrCreate(tx *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := tx.Where(query, args...).First(dest).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}
