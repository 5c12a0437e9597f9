package service

import (
	"context"
	"fmt"

	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// StockService answers read-only inventory questions
type StockService struct {
	parts    repository.PartRepositoryInterface
	registry *registry.Registry
}

// NewStockService creates a new stock service
func NewStockService(parts repository.PartRepositoryInterface, reg *registry.Registry) *StockService {
	return &StockService{parts: parts, registry: reg}
}

// AvailabilityReport lists in-stock counts for each part type an aircraft model needs
type AvailabilityReport struct {
	AircraftModel models.AircraftModelCode      `json:"aircraft_model"`
	RequiredParts map[models.PartTypeCode]int64 `json:"required_parts"`
	Warnings      []string                      `json:"warnings"`
	Message       string                        `json:"message,omitempty"`
}

// CanAssemble reports whether at least one part of every type is in stock
func (r *AvailabilityReport) CanAssemble() bool {
	return len(r.Warnings) == 0
}

// CheckAvailability counts in-stock parts of each required type compatible with the model
func (s *StockService) CheckAvailability(ctx context.Context, code models.AircraftModelCode) (*AvailabilityReport, error) {
	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	aircraftModel, ok := snapshot.AircraftModel(code)
	if !ok {
		return nil, apperrors.ErrAircraftModelNotFound
	}

	counts := make([]int64, len(models.PartTypeCodes))
	missing := make([]bool, len(models.PartTypeCodes))

	g, gctx := errgroup.WithContext(ctx)
	for i, ptCode := range models.PartTypeCodes {
		partType, ok := snapshot.PartType(ptCode)
		if !ok {
			missing[i] = true
			continue
		}
		g.Go(func() error {
			n, err := s.parts.CountInStock(dbctx.New(gctx), partType.ID, aircraftModel.ID)
			if err != nil {
				return fmt.Errorf("count %s stock: %w", partType.Code, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &AvailabilityReport{
		AircraftModel: aircraftModel.Code,
		RequiredParts: make(map[models.PartTypeCode]int64, len(models.PartTypeCodes)),
		Warnings:      []string{},
	}
	for i, ptCode := range models.PartTypeCodes {
		if missing[i] {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("part type %s is not configured in the catalog", ptCode))
			continue
		}
		report.RequiredParts[ptCode] = counts[i]
		if counts[i] == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("no %s parts in stock for %s", ptCode, aircraftModel.Code))
		}
	}
	if report.CanAssemble() {
		report.Message = fmt.Sprintf("all required parts are in stock for %s", aircraftModel.Code)
	}
	return report, nil
}
