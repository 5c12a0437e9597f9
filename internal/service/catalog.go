package service

import (
	"context"
	"fmt"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/logger"
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CatalogService manages part types and aircraft models
type CatalogService struct {
	partTypes      repository.PartTypeRepositoryInterface
	aircraftModels repository.AircraftModelRepositoryInterface
	registry       *registry.Registry
	validator      *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	partTypes repository.PartTypeRepositoryInterface,
	aircraftModels repository.AircraftModelRepositoryInterface,
	reg *registry.Registry,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		partTypes:      partTypes,
		aircraftModels: aircraftModels,
		registry:       reg,
		validator:      validator,
	}
}

// CreatePartTypeRequest represents the request to create a part type
type CreatePartTypeRequest struct {
	Code  models.PartTypeCode `json:"code" validate:"required,oneof=WING FUSELAGE TAIL AVIONICS" example:"WING"`
	Label string              `json:"label" validate:"required,max=50" example:"Wing"`
}

// CreateAircraftModelRequest represents the request to create an aircraft model
type CreateAircraftModelRequest struct {
	Code  models.AircraftModelCode `json:"code" validate:"required,oneof=TB2 TB3 AKINCI KIZILELMA" example:"TB2"`
	Label string                   `json:"label" validate:"required,max=50" example:"TB2"`
}

// UpdateLabelRequest represents the request to relabel a catalog entry
type UpdateLabelRequest struct {
	Label string `json:"label" validate:"required,max=50"`
}

// CatalogEntryResponse represents a part type or aircraft model
type CatalogEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func partTypeResponse(pt *models.PartType) *CatalogEntryResponse {
	return &CatalogEntryResponse{
		ID:        pt.ID,
		Code:      string(pt.Code),
		Label:     pt.Label,
		CreatedAt: formatTime(pt.CreatedAt),
		UpdatedAt: formatTime(pt.UpdatedAt),
	}
}

func aircraftModelResponse(am *models.AircraftModel) *CatalogEntryResponse {
	return &CatalogEntryResponse{
		ID:        am.ID,
		Code:      string(am.Code),
		Label:     am.Label,
		CreatedAt: formatTime(am.CreatedAt),
		UpdatedAt: formatTime(am.UpdatedAt),
	}
}

// ListPartTypes returns every part type
func (s *CatalogService) ListPartTypes(ctx context.Context) ([]CatalogEntryResponse, error) {
	partTypes, err := s.partTypes.GetAll(dbctx.New(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list part types: %w", err)
	}
	responses := make([]CatalogEntryResponse, 0, len(partTypes))
	for i := range partTypes {
		responses = append(responses, *partTypeResponse(&partTypes[i]))
	}
	return responses, nil
}

// GetPartType returns a part type by id
func (s *CatalogService) GetPartType(ctx context.Context, id uuid.UUID) (*CatalogEntryResponse, error) {
	pt, err := s.partTypes.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPartTypeNotFound, "get part type")
	}
	return partTypeResponse(pt), nil
}

// CreatePartType adds a part type to the catalog
func (s *CatalogService) CreatePartType(ctx context.Context, actor *auth.Actor, req *CreatePartTypeRequest) (*CatalogEntryResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreate, auth.CatalogResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	if _, err := s.partTypes.GetByCode(dbc, req.Code); err == nil {
		return nil, apperrors.ErrPartTypeExists
	} else if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing part type: %w", err)
	}

	pt := &models.PartType{Code: req.Code, Label: req.Label}
	if err := s.partTypes.Create(dbc, pt); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPartTypeExists
		}
		return nil, fmt.Errorf("failed to create part type: %w", err)
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("code", pt.Code).Info("part type created")
	return partTypeResponse(pt), nil
}

// UpdatePartTypeLabel relabels a part type that no part or team references yet
func (s *CatalogService) UpdatePartTypeLabel(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateLabelRequest) (*CatalogEntryResponse, error) {
	if err := auth.Authorize(actor, auth.ActionUpdate, auth.CatalogResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	pt, err := s.partTypes.GetByID(dbc, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPartTypeNotFound, "get part type")
	}
	referenced, err := s.partTypes.IsReferenced(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check part type references: %w", err)
	}
	if referenced {
		return nil, apperrors.ErrPartTypeInUse
	}

	pt.Label = req.Label
	if err := s.partTypes.Update(dbc, pt); err != nil {
		return nil, fmt.Errorf("failed to update part type: %w", err)
	}
	s.registry.Invalidate(ctx)
	return partTypeResponse(pt), nil
}

// DeletePartType removes a part type that nothing references
func (s *CatalogService) DeletePartType(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := auth.Authorize(actor, auth.ActionDelete, auth.CatalogResource{}); err != nil {
		return err
	}

	dbc := dbctx.New(ctx)
	if _, err := s.partTypes.GetByID(dbc, id); err != nil {
		return notFoundOr(err, apperrors.ErrPartTypeNotFound, "get part type")
	}
	referenced, err := s.partTypes.IsReferenced(dbc, id)
	if err != nil {
		return fmt.Errorf("failed to check part type references: %w", err)
	}
	if referenced {
		return apperrors.ErrPartTypeInUse
	}
	if err := s.partTypes.Delete(dbc, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrPartTypeInUse
		}
		return fmt.Errorf("failed to delete part type: %w", err)
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("part_type_id", id).Info("part type deleted")
	return nil
}

// ListAircraftModels returns every aircraft model
func (s *CatalogService) ListAircraftModels(ctx context.Context) ([]CatalogEntryResponse, error) {
	aircraftModels, err := s.aircraftModels.GetAll(dbctx.New(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft models: %w", err)
	}
	responses := make([]CatalogEntryResponse, 0, len(aircraftModels))
	for i := range aircraftModels {
		responses = append(responses, *aircraftModelResponse(&aircraftModels[i]))
	}
	return responses, nil
}

// GetAircraftModel returns an aircraft model by id
func (s *CatalogService) GetAircraftModel(ctx context.Context, id uuid.UUID) (*CatalogEntryResponse, error) {
	am, err := s.aircraftModels.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrAircraftModelNotFound, "get aircraft model")
	}
	return aircraftModelResponse(am), nil
}

// CreateAircraftModel adds an aircraft model to the catalog
func (s *CatalogService) CreateAircraftModel(ctx context.Context, actor *auth.Actor, req *CreateAircraftModelRequest) (*CatalogEntryResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreate, auth.CatalogResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	if _, err := s.aircraftModels.GetByCode(dbc, req.Code); err == nil {
		return nil, apperrors.ErrAircraftModelExists
	} else if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing aircraft model: %w", err)
	}

	am := &models.AircraftModel{Code: req.Code, Label: req.Label}
	if err := s.aircraftModels.Create(dbc, am); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAircraftModelExists
		}
		return nil, fmt.Errorf("failed to create aircraft model: %w", err)
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("code", am.Code).Info("aircraft model created")
	return aircraftModelResponse(am), nil
}

// UpdateAircraftModelLabel relabels an aircraft model that nothing references yet
func (s *CatalogService) UpdateAircraftModelLabel(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateLabelRequest) (*CatalogEntryResponse, error) {
	if err := auth.Authorize(actor, auth.ActionUpdate, auth.CatalogResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	am, err := s.aircraftModels.GetByID(dbc, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrAircraftModelNotFound, "get aircraft model")
	}
	referenced, err := s.aircraftModels.IsReferenced(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check aircraft model references: %w", err)
	}
	if referenced {
		return nil, apperrors.ErrAircraftModelInUse
	}

	am.Label = req.Label
	if err := s.aircraftModels.Update(dbc, am); err != nil {
		return nil, fmt.Errorf("failed to update aircraft model: %w", err)
	}
	s.registry.Invalidate(ctx)
	return aircraftModelResponse(am), nil
}

// DeleteAircraftModel removes an aircraft model that nothing references
func (s *CatalogService) DeleteAircraftModel(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := auth.Authorize(actor, auth.ActionDelete, auth.CatalogResource{}); err != nil {
		return err
	}

	dbc := dbctx.New(ctx)
	if _, err := s.aircraftModels.GetByID(dbc, id); err != nil {
		return notFoundOr(err, apperrors.ErrAircraftModelNotFound, "get aircraft model")
	}
	referenced, err := s.aircraftModels.IsReferenced(dbc, id)
	if err != nil {
		return fmt.Errorf("failed to check aircraft model references: %w", err)
	}
	if referenced {
		return apperrors.ErrAircraftModelInUse
	}
	if err := s.aircraftModels.Delete(dbc, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrAircraftModelInUse
		}
		return fmt.Errorf("failed to delete aircraft model: %w", err)
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("aircraft_model_id", id).Info("aircraft model deleted")
	return nil
}
