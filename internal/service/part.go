package service

import (
	"context"
	"fmt"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/database/dbctx"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/logger"
	"aircraft-production-backend/internal/metrics"
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PartLedger is the only way the assembly engine changes a part's status.
// Both methods must run inside the caller's transaction on a locked row.
type PartLedger interface {
	Consume(dbc dbctx.Context, part *models.Part, aircraftID uuid.UUID) error
	Release(dbc dbctx.Context, part *models.Part) error
}

// PartService is the part ledger
type PartService struct {
	repo      repository.PartRepositoryInterface
	aircraft  repository.AssembledAircraftRepositoryInterface
	tx        database.TxRunner
	registry  *registry.Registry
	metrics   *metrics.Registry
	validator *validator.Validate
}

var _ PartLedger = (*PartService)(nil)

// NewPartService creates a new part service
func NewPartService(
	repo repository.PartRepositoryInterface,
	aircraft repository.AssembledAircraftRepositoryInterface,
	tx database.TxRunner,
	reg *registry.Registry,
	m *metrics.Registry,
	validator *validator.Validate,
) *PartService {
	return &PartService{
		repo:      repo,
		aircraft:  aircraft,
		tx:        tx,
		registry:  reg,
		metrics:   m,
		validator: validator,
	}
}

// ProducePartRequest represents the request to produce a part
type ProducePartRequest struct {
	PartType      models.PartTypeCode      `json:"part_type" validate:"required,oneof=WING FUSELAGE TAIL AVIONICS" example:"WING"`
	AircraftModel models.AircraftModelCode `json:"aircraft_model" validate:"required,oneof=TB2 TB3 AKINCI KIZILELMA" example:"TB2"`
	SerialNumber  string                   `json:"serial_number" validate:"required,max=100" example:"SN-001"`
}

// PartListQuery holds the list filters accepted for parts
type PartListQuery struct {
	PartType       models.PartTypeCode      `form:"part_type" json:"part_type" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS"`
	Status         models.PartStatus        `form:"status" json:"status" validate:"omitempty,oneof=IN_STOCK IN_USE RECYCLED"`
	ProducedByTeam models.TeamCode          `form:"produced_by_team" json:"produced_by_team" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS ASSEMBLY"`
	AircraftModel  models.AircraftModelCode `form:"aircraft_model" json:"aircraft_model" validate:"omitempty,oneof=TB2 TB3 AKINCI KIZILELMA"`
	SerialNumber   string                   `form:"serial_number" json:"serial_number"`
	Search         string                   `form:"search" json:"search"`
	Page           int                      `form:"page" json:"page"`
	PageSize       int                      `form:"page_size" json:"page_size"`
}

// PartResponse represents a part as returned to callers
type PartResponse struct {
	ID               uuid.UUID                `json:"id"`
	SerialNumber     string                   `json:"serial_number"`
	PartType         models.PartTypeCode      `json:"part_type"`
	PartTypeLabel    string                   `json:"part_type_label,omitempty"`
	AircraftModel    models.AircraftModelCode `json:"aircraft_model"`
	Status           models.PartStatus        `json:"status"`
	StatusLabel      string                   `json:"status_label"`
	ProducedByTeam   *models.TeamCode         `json:"produced_by_team,omitempty"`
	UsedInAircraftID *uuid.UUID               `json:"used_in_aircraft_id,omitempty"`
	Version          int                      `json:"version"`
	CreatedAt        string                   `json:"created_at"`
	UpdatedAt        string                   `json:"updated_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// RecycleResult reports the outcome of a recycle request
type RecycleResult struct {
	Part            *PartResponse `json:"part"`
	AlreadyRecycled bool          `json:"already_recycled"`
	Message         string        `json:"message"`
}

// Produce creates a new in-stock part on behalf of the actor's production team
func (s *PartService) Produce(ctx context.Context, actor *auth.Actor, req *ProducePartRequest) (*PartResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingActor
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	partType, ok := snapshot.PartType(req.PartType)
	if !ok {
		return nil, apperrors.ErrPartTypeNotFound
	}
	aircraftModel, ok := snapshot.AircraftModel(req.AircraftModel)
	if !ok {
		return nil, apperrors.ErrAircraftModelNotFound
	}
	if err := auth.Authorize(actor, auth.ActionCreate, auth.PartTypeResource{PartType: partType}); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	exists, err := s.repo.ExistsBySerialNumber(dbc, req.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check serial number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPartExists
	}

	teamID := actor.Team.ID
	part := &models.Part{
		SerialNumber:     req.SerialNumber,
		PartTypeID:       partType.ID,
		AircraftModelID:  aircraftModel.ID,
		Status:           models.PartStatusInStock,
		ProducedByTeamID: &teamID,
		Version:          1,
	}
	if err := s.repo.Create(dbc, part); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPartExists
		}
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	s.metrics.PartProduced(string(partType.Code))

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"serial_number": part.SerialNumber,
		"part_type":     partType.Code,
	}).Info("part produced")

	return s.GetByID(ctx, part.ID)
}

// Consume moves an in-stock part into aircraftID
func (s *PartService) Consume(dbc dbctx.Context, part *models.Part, aircraftID uuid.UUID) error {
	if part.Status != models.PartStatusInStock {
		return apperrors.ErrPartNotInStock
	}
	ok, err := s.repo.Transition(dbc, part.ID, models.PartStatusInStock, models.PartStatusInUse, &aircraftID)
	if err != nil {
		return fmt.Errorf("failed to consume part: %w", err)
	}
	if !ok {
		return apperrors.ErrPartStateChange
	}
	part.Status = models.PartStatusInUse
	part.UsedInAircraftID = &aircraftID
	part.Version++
	s.metrics.PartTransition(string(models.PartStatusInStock), string(models.PartStatusInUse))
	return nil
}

// Release returns an installed part to stock
func (s *PartService) Release(dbc dbctx.Context, part *models.Part) error {
	if part.Status != models.PartStatusInUse {
		return apperrors.ErrPartNotInUse
	}
	ok, err := s.repo.Transition(dbc, part.ID, models.PartStatusInUse, models.PartStatusInStock, nil)
	if err != nil {
		return fmt.Errorf("failed to release part: %w", err)
	}
	if !ok {
		return apperrors.ErrPartStateChange
	}
	part.Status = models.PartStatusInStock
	part.UsedInAircraftID = nil
	part.Version++
	s.metrics.PartTransition(string(models.PartStatusInUse), string(models.PartStatusInStock))
	return nil
}

// Recycle retires an in-stock part. Recycling an already recycled part succeeds without change.
func (s *PartService) Recycle(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*RecycleResult, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingActor
	}

	alreadyRecycled := false
	err := s.tx.InTx(ctx, func(tx dbctx.Context) error {
		part, err := s.repo.GetByIDForUpdate(tx, id)
		if err != nil {
			return notFoundOr(err, apperrors.ErrPartNotFound, "get part")
		}
		// still installed: refuse before looking at who is asking
		if part.Status == models.PartStatusInUse {
			return apperrors.ErrPartInUse
		}
		if err := auth.Authorize(actor, auth.ActionRecycle, auth.PartResource{Part: part}); err != nil {
			return err
		}
		if part.Status == models.PartStatusRecycled {
			alreadyRecycled = true
			return nil
		}

		ok, err := s.repo.Transition(tx, part.ID, models.PartStatusInStock, models.PartStatusRecycled, nil)
		if err != nil {
			return fmt.Errorf("failed to recycle part: %w", err)
		}
		if !ok {
			return apperrors.ErrPartStateChange
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	part, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := &RecycleResult{Part: part, AlreadyRecycled: alreadyRecycled, Message: "part recycled"}
	if alreadyRecycled {
		result.Message = "part already recycled"
	} else {
		s.metrics.PartTransition(string(models.PartStatusInStock), string(models.PartStatusRecycled))
		logger.WithContext(ctx).WithField("serial_number", part.SerialNumber).Info("part recycled")
	}
	return result, nil
}

// Delete removes a part that no aircraft references
func (s *PartService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	return s.tx.InTx(ctx, func(tx dbctx.Context) error {
		part, err := s.repo.GetByIDForUpdate(tx, id)
		if err != nil {
			return notFoundOr(err, apperrors.ErrPartNotFound, "get part")
		}
		if err := auth.Authorize(actor, auth.ActionDelete, auth.PartResource{Part: part}); err != nil {
			return err
		}
		referenced, err := s.aircraft.ReferencesPart(tx, id)
		if err != nil {
			return fmt.Errorf("failed to check part references: %w", err)
		}
		if referenced || part.UsedInAircraftID != nil {
			return apperrors.ErrPartInAircraft
		}
		if err := s.repo.Delete(tx, id); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return apperrors.ErrPartInAircraft
			}
			return fmt.Errorf("failed to delete part: %w", err)
		}
		logger.WithContext(ctx).WithField("serial_number", part.SerialNumber).Info("part deleted")
		return nil
	})
}

// GetByID retrieves a part by ID
func (s *PartService) GetByID(ctx context.Context, id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPartNotFound, "get part")
	}
	return toPartResponse(part), nil
}

// List retrieves parts matching the query, newest first
func (s *PartService) List(ctx context.Context, query *PartListQuery) (*PartListResponse, error) {
	if err := validateStruct(s.validator, query); err != nil {
		return nil, err
	}
	limit, offset, page, pageSize, err := paginate(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	empty := &PartListResponse{Parts: []PartResponse{}, Page: page, PageSize: pageSize}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filter := repository.PartFilter{
		SerialNumber: query.SerialNumber,
		Search:       query.Search,
		Limit:        limit,
		Offset:       offset,
	}
	// a filter naming a catalog entry or team that does not exist matches nothing
	if query.PartType != "" {
		pt, ok := snapshot.PartType(query.PartType)
		if !ok {
			return empty, nil
		}
		filter.PartTypeID = &pt.ID
	}
	if query.AircraftModel != "" {
		am, ok := snapshot.AircraftModel(query.AircraftModel)
		if !ok {
			return empty, nil
		}
		filter.AircraftModelID = &am.ID
	}
	if query.ProducedByTeam != "" {
		team, ok := snapshot.Team(query.ProducedByTeam)
		if !ok {
			return empty, nil
		}
		filter.ProducedByTeamID = &team.ID
	}
	if query.Status != "" {
		status := query.Status
		filter.Status = &status
	}

	parts, total, err := s.repo.List(dbctx.New(ctx), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, 0, len(parts))
	for i := range parts {
		responses = append(responses, *toPartResponse(&parts[i]))
	}
	return &PartListResponse{Parts: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

func toPartResponse(part *models.Part) *PartResponse {
	resp := &PartResponse{
		ID:               part.ID,
		SerialNumber:     part.SerialNumber,
		Status:           part.Status,
		StatusLabel:      part.Status.Label(),
		UsedInAircraftID: part.UsedInAircraftID,
		Version:          part.Version,
		CreatedAt:        formatTime(part.CreatedAt),
		UpdatedAt:        formatTime(part.UpdatedAt),
	}
	if part.PartType != nil {
		resp.PartType = part.PartType.Code
		resp.PartTypeLabel = part.PartType.Label
	}
	if part.AircraftModel != nil {
		resp.AircraftModel = part.AircraftModel.Code
	}
	if part.ProducedByTeam != nil {
		code := part.ProducedByTeam.Code
		resp.ProducedByTeam = &code
	}
	return resp
}
