package service

import (
	"context"
	"fmt"
	"strings"
	"time"

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

const dateLayout = "2006-01-02"

// AssemblyService is the assembly engine. Every multi-entity change runs in one
// transaction and moves part status only through the ledger.
type AssemblyService struct {
	repo      repository.AssembledAircraftRepositoryInterface
	parts     repository.PartRepositoryInterface
	ledger    PartLedger
	tx        database.TxRunner
	registry  *registry.Registry
	metrics   *metrics.Registry
	validator *validator.Validate
}

// NewAssemblyService creates a new assembly service
func NewAssemblyService(
	repo repository.AssembledAircraftRepositoryInterface,
	parts repository.PartRepositoryInterface,
	ledger PartLedger,
	tx database.TxRunner,
	reg *registry.Registry,
	m *metrics.Registry,
	validator *validator.Validate,
) *AssemblyService {
	return &AssemblyService{
		repo:      repo,
		parts:     parts,
		ledger:    ledger,
		tx:        tx,
		registry:  reg,
		metrics:   m,
		validator: validator,
	}
}

// SlotAssignments names the part for each slot. A nil entry leaves the slot unassigned.
type SlotAssignments struct {
	Wing     *uuid.UUID `json:"wing,omitempty" swaggertype:"string" format:"uuid"`
	Fuselage *uuid.UUID `json:"fuselage,omitempty" swaggertype:"string" format:"uuid"`
	Tail     *uuid.UUID `json:"tail,omitempty" swaggertype:"string" format:"uuid"`
	Avionics *uuid.UUID `json:"avionics,omitempty" swaggertype:"string" format:"uuid"`
}

// Get returns the part assigned to slot
func (a SlotAssignments) Get(slot models.Slot) *uuid.UUID {
	switch slot {
	case models.SlotWing:
		return a.Wing
	case models.SlotFuselage:
		return a.Fuselage
	case models.SlotTail:
		return a.Tail
	case models.SlotAvionics:
		return a.Avionics
	}
	return nil
}

// Set assigns partID to slot
func (a *SlotAssignments) Set(slot models.Slot, partID uuid.UUID) {
	id := partID
	switch slot {
	case models.SlotWing:
		a.Wing = &id
	case models.SlotFuselage:
		a.Fuselage = &id
	case models.SlotTail:
		a.Tail = &id
	case models.SlotAvionics:
		a.Avionics = &id
	}
}

// AssembleRequest represents the request to assemble an aircraft
type AssembleRequest struct {
	TailNumber    string                   `json:"tail_number" validate:"required,max=50" example:"TC-001"`
	AircraftModel models.AircraftModelCode `json:"aircraft_model" validate:"required,oneof=TB2 TB3 AKINCI KIZILELMA" example:"TB2"`
	SlotAssignments
}

// UpdateAircraftRequest represents the request to change an aircraft's tail number and/or slots
type UpdateAircraftRequest struct {
	TailNumber *string `json:"tail_number,omitempty" validate:"omitempty,min=1,max=50" example:"TC-002"`
	SlotAssignments
}

// ReassignSlotRequest represents the request to put a new part in one slot
type ReassignSlotRequest struct {
	PartID uuid.UUID `json:"part_id" validate:"required" swaggertype:"string" format:"uuid"`
}

// AircraftListQuery holds the list filters accepted for aircraft
type AircraftListQuery struct {
	AircraftModel   models.AircraftModelCode `form:"aircraft_model" json:"aircraft_model" validate:"omitempty,oneof=TB2 TB3 AKINCI KIZILELMA"`
	AssembledByTeam models.TeamCode          `form:"assembled_by_team" json:"assembled_by_team"`
	Search          string                   `form:"search" json:"search"`
	AssembledFrom   string                   `form:"assembled_from" json:"assembled_from"`
	AssembledTo     string                   `form:"assembled_to" json:"assembled_to"`
	Page            int                      `form:"page" json:"page"`
	PageSize        int                      `form:"page_size" json:"page_size"`
}

// SlotPartResponse summarizes the part bound to a slot
type SlotPartResponse struct {
	ID           uuid.UUID         `json:"id"`
	SerialNumber string            `json:"serial_number"`
	Status       models.PartStatus `json:"status"`
}

// AircraftResponse represents an assembled aircraft
type AircraftResponse struct {
	ID              uuid.UUID                    `json:"id"`
	TailNumber      string                       `json:"tail_number"`
	AircraftModel   models.AircraftModelCode     `json:"aircraft_model"`
	AssemblyDate    string                       `json:"assembly_date"`
	AssembledByTeam *models.TeamCode             `json:"assembled_by_team,omitempty"`
	Parts           map[string]*SlotPartResponse `json:"parts"`
	CreatedAt       string                       `json:"created_at"`
	UpdatedAt       string                       `json:"updated_at"`
}

// AircraftListResponse represents a paginated list of aircraft
type AircraftListResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Assemble binds four in-stock parts into a new aircraft and consumes them
func (s *AssemblyService) Assemble(ctx context.Context, actor *auth.Actor, req *AssembleRequest) (*AircraftResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreate, auth.AircraftResource{}); err != nil {
		return nil, err
	}

	var findings apperrors.FieldErrorCollector
	if err := collectStruct(s.validator, req, &findings); err != nil {
		return nil, err
	}
	for _, slot := range models.Slots {
		if req.Get(slot) == nil {
			findings.Add(string(slot), "this slot is required")
		}
	}
	if findings.Has("aircraft_model") {
		return nil, findings.Err()
	}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	aircraftModel, ok := snapshot.AircraftModel(req.AircraftModel)
	if !ok {
		return nil, apperrors.ErrAircraftModelNotFound
	}

	teamID := actor.Team.ID
	aircraft := &models.AssembledAircraft{
		TailNumber:        req.TailNumber,
		AircraftModelID:   aircraftModel.ID,
		AssemblyDate:      time.Now().UTC(),
		AssembledByTeamID: &teamID,
	}

	err = s.tx.InTx(ctx, func(tx dbctx.Context) error {
		parts, err := s.parts.GetByIDsForUpdate(tx, assignedIDs(req.SlotAssignments))
		if err != nil {
			return fmt.Errorf("failed to lock parts: %w", err)
		}
		checkSlots(&findings, snapshot, aircraftModel, req.SlotAssignments, parts, freshSlots(models.Slots))
		if err := findings.Err(); err != nil {
			return err
		}

		taken, err := s.repo.TailNumberTaken(tx, req.TailNumber, nil)
		if err != nil {
			return fmt.Errorf("failed to check tail number: %w", err)
		}
		if taken {
			return apperrors.ErrAircraftExists
		}

		for _, slot := range models.Slots {
			aircraft.SetSlotPartID(slot, *req.Get(slot))
		}
		if err := s.repo.Create(tx, aircraft); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrAircraftExists
			}
			return fmt.Errorf("failed to create aircraft: %w", err)
		}
		for _, slot := range models.Slots {
			if err := s.ledger.Consume(tx, parts[*req.Get(slot)], aircraft.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.Assembled(string(aircraftModel.Code))

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tail_number":    aircraft.TailNumber,
		"aircraft_model": aircraftModel.Code,
	}).Info("aircraft assembled")

	return s.GetByID(ctx, aircraft.ID)
}

// UpdateAircraft changes the tail number and reassigns any number of slots atomically.
// Assigning the part a slot already holds leaves that slot untouched.
func (s *AssemblyService) UpdateAircraft(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateAircraftRequest) (*AircraftResponse, error) {
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

	var reassigned []models.Slot
	err = s.tx.InTx(ctx, func(tx dbctx.Context) error {
		aircraft, err := s.repo.GetByIDForUpdate(tx, id)
		if err != nil {
			return notFoundOr(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}
		if err := auth.Authorize(actor, auth.ActionUpdate, auth.AircraftResource{Aircraft: aircraft}); err != nil {
			return err
		}

		var (
			resulting SlotAssignments
			fresh     = make(map[models.Slot]bool)
			lockIDs   []uuid.UUID
		)
		for _, slot := range models.Slots {
			current := aircraft.SlotPartID(slot)
			resulting.Set(slot, current)
			if next := req.Get(slot); next != nil && *next != current {
				resulting.Set(slot, *next)
				fresh[slot] = true
				reassigned = append(reassigned, slot)
				lockIDs = append(lockIDs, current, *next)
			}
		}

		var parts map[uuid.UUID]*models.Part
		if len(reassigned) > 0 {
			aircraftModel, ok := snapshot.AircraftModelByID(aircraft.AircraftModelID)
			if !ok {
				return apperrors.ErrAircraftModelNotFound
			}
			// unchanged slots take part in the duplicate check only
			for _, slot := range models.Slots {
				if !fresh[slot] {
					lockIDs = append(lockIDs, aircraft.SlotPartID(slot))
				}
			}
			parts, err = s.parts.GetByIDsForUpdate(tx, lockIDs)
			if err != nil {
				return fmt.Errorf("failed to lock parts: %w", err)
			}

			var findings apperrors.FieldErrorCollector
			checkSlots(&findings, snapshot, aircraftModel, resulting, parts, fresh)
			if err := findings.Err(); err != nil {
				return err
			}
		}

		// slot findings win over a tail number conflict, as in Assemble
		if req.TailNumber != nil && *req.TailNumber != aircraft.TailNumber {
			taken, err := s.repo.TailNumberTaken(tx, *req.TailNumber, &aircraft.ID)
			if err != nil {
				return fmt.Errorf("failed to check tail number: %w", err)
			}
			if taken {
				return apperrors.ErrAircraftExists
			}
			aircraft.TailNumber = *req.TailNumber
		}

		for _, slot := range reassigned {
			if old, ok := parts[aircraft.SlotPartID(slot)]; ok {
				if err := s.ledger.Release(tx, old); err != nil {
					return err
				}
			}
			aircraft.SetSlotPartID(slot, *resulting.Get(slot))
		}
		if err := s.repo.Update(tx, aircraft); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrAircraftExists
			}
			return fmt.Errorf("failed to update aircraft: %w", err)
		}
		for _, slot := range reassigned {
			if err := s.ledger.Consume(tx, parts[*resulting.Get(slot)], aircraft.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, slot := range reassigned {
		s.metrics.SlotReassigned(string(slot))
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"aircraft_id": id,
		"reassigned":  len(reassigned),
	}).Info("aircraft updated")

	return s.GetByID(ctx, id)
}

// ReassignSlot swaps the part in one slot for partID
func (s *AssemblyService) ReassignSlot(ctx context.Context, actor *auth.Actor, id uuid.UUID, slot models.Slot, partID uuid.UUID) (*AircraftResponse, error) {
	if !slot.IsValid() {
		return nil, apperrors.NewValidationError("slot", "must be one of: wing fuselage tail avionics")
	}
	req := &UpdateAircraftRequest{}
	req.Set(slot, partID)
	return s.UpdateAircraft(ctx, actor, id, req)
}

// Disassemble releases all four parts back to stock and deletes the aircraft
func (s *AssemblyService) Disassemble(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if actor == nil {
		return apperrors.ErrMissingActor
	}

	var tailNumber string
	err := s.tx.InTx(ctx, func(tx dbctx.Context) error {
		aircraft, err := s.repo.GetByIDForUpdate(tx, id)
		if err != nil {
			return notFoundOr(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}
		if err := auth.Authorize(actor, auth.ActionDelete, auth.AircraftResource{Aircraft: aircraft}); err != nil {
			return err
		}
		tailNumber = aircraft.TailNumber

		parts, err := s.parts.GetByIDsForUpdate(tx, aircraft.PartIDs())
		if err != nil {
			return fmt.Errorf("failed to lock parts: %w", err)
		}
		for _, slot := range models.Slots {
			part, ok := parts[aircraft.SlotPartID(slot)]
			if !ok {
				continue
			}
			if err := s.ledger.Release(tx, part); err != nil {
				return err
			}
		}
		if err := s.repo.Delete(tx, id); err != nil {
			return fmt.Errorf("failed to delete aircraft: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.metrics.Disassembled()

	logger.WithContext(ctx).WithField("tail_number", tailNumber).Info("aircraft disassembled")
	return nil
}

// GetByID retrieves an aircraft with its parts
func (s *AssemblyService) GetByID(ctx context.Context, id uuid.UUID) (*AircraftResponse, error) {
	aircraft, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrAircraftNotFound, "get aircraft")
	}
	return toAircraftResponse(aircraft), nil
}

// List retrieves aircraft matching the query, newest assembly first
func (s *AssemblyService) List(ctx context.Context, query *AircraftListQuery) (*AircraftListResponse, error) {
	if err := validateStruct(s.validator, query); err != nil {
		return nil, err
	}
	limit, offset, page, pageSize, err := paginate(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	empty := &AircraftListResponse{Aircraft: []AircraftResponse{}, Page: page, PageSize: pageSize}

	filter := repository.AircraftFilter{
		Search: query.Search,
		Limit:  limit,
		Offset: offset,
	}
	var findings apperrors.FieldErrorCollector
	if query.AssembledFrom != "" {
		from, err := parseDateBound(query.AssembledFrom, false)
		if err != nil {
			findings.Add("assembled_from", err.Error())
		} else {
			filter.AssembledFrom = &from
		}
	}
	if query.AssembledTo != "" {
		to, err := parseDateBound(query.AssembledTo, true)
		if err != nil {
			findings.Add("assembled_to", err.Error())
		} else {
			filter.AssembledTo = &to
		}
	}
	if err := findings.Err(); err != nil {
		return nil, err
	}
	if filter.AssembledFrom != nil && filter.AssembledTo != nil && filter.AssembledTo.Before(*filter.AssembledFrom) {
		return nil, apperrors.ErrInvalidDateRange
	}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if query.AircraftModel != "" {
		am, ok := snapshot.AircraftModel(query.AircraftModel)
		if !ok {
			return empty, nil
		}
		filter.AircraftModelID = &am.ID
	}
	if query.AssembledByTeam != "" {
		team, ok := snapshot.Team(query.AssembledByTeam)
		if !ok {
			return empty, nil
		}
		filter.AssembledByTeamID = &team.ID
	}

	aircraft, total, err := s.repo.List(dbctx.New(ctx), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	responses := make([]AircraftResponse, 0, len(aircraft))
	for i := range aircraft {
		responses = append(responses, *toAircraftResponse(&aircraft[i]))
	}
	return &AircraftListResponse{Aircraft: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// checkSlots records every finding for the resulting slot set in slot order.
// Status is only checked for slots in fresh.
func checkSlots(
	findings *apperrors.FieldErrorCollector,
	snapshot *registry.Snapshot,
	aircraftModel *models.AircraftModel,
	assignments SlotAssignments,
	parts map[uuid.UUID]*models.Part,
	fresh map[models.Slot]bool,
) {
	slotsByPart := make(map[uuid.UUID][]models.Slot)
	for _, slot := range models.Slots {
		id := assignments.Get(slot)
		if id == nil {
			continue
		}
		slotsByPart[*id] = append(slotsByPart[*id], slot)

		part, ok := parts[*id]
		if !ok {
			findings.Add(string(slot), "part not found")
			continue
		}

		expected := slot.PartTypeCode()
		if pt, ok := snapshot.PartType(expected); !ok || part.PartTypeID != pt.ID {
			findings.Add(string(slot), fmt.Sprintf("part %s is not a %s part (got %s)",
				part.SerialNumber, expected, partTypeCodeOf(snapshot, part)))
		}
		if part.AircraftModelID != aircraftModel.ID {
			findings.Add(string(slot), fmt.Sprintf("part %s is incompatible with aircraft model %s (built for %s)",
				part.SerialNumber, aircraftModel.Code, aircraftModelCodeOf(snapshot, part)))
		}
		if fresh[slot] && part.Status != models.PartStatusInStock {
			findings.Add(string(slot), fmt.Sprintf("part %s is not in stock (status %s)",
				part.SerialNumber, part.Status))
		}
	}

	for _, slot := range models.Slots {
		id := assignments.Get(slot)
		if id == nil || len(slotsByPart[*id]) < 2 {
			continue
		}
		others := make([]string, 0, len(slotsByPart[*id])-1)
		for _, other := range slotsByPart[*id] {
			if other != slot {
				others = append(others, string(other))
			}
		}
		findings.Add(string(slot), fmt.Sprintf("part is also assigned to %s", strings.Join(others, ", ")))
	}
}

func assignedIDs(assignments SlotAssignments) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(models.Slots))
	for _, slot := range models.Slots {
		if id := assignments.Get(slot); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

func freshSlots(slots []models.Slot) map[models.Slot]bool {
	fresh := make(map[models.Slot]bool, len(slots))
	for _, slot := range slots {
		fresh[slot] = true
	}
	return fresh
}

func partTypeCodeOf(snapshot *registry.Snapshot, part *models.Part) string {
	if pt, ok := snapshot.PartTypeByID(part.PartTypeID); ok {
		return string(pt.Code)
	}
	return "unknown"
}

func aircraftModelCodeOf(snapshot *registry.Snapshot, part *models.Part) string {
	if am, ok := snapshot.AircraftModelByID(part.AircraftModelID); ok {
		return string(am.Code)
	}
	return "unknown"
}

// parseDateBound accepts RFC3339 or a bare date; a bare upper bound covers the whole day
func parseDateBound(value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be RFC3339 or %s", dateLayout)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t.UTC(), nil
}

func toAircraftResponse(aircraft *models.AssembledAircraft) *AircraftResponse {
	resp := &AircraftResponse{
		ID:           aircraft.ID,
		TailNumber:   aircraft.TailNumber,
		AssemblyDate: formatTime(aircraft.AssemblyDate),
		Parts:        make(map[string]*SlotPartResponse, len(models.Slots)),
		CreatedAt:    formatTime(aircraft.CreatedAt),
		UpdatedAt:    formatTime(aircraft.UpdatedAt),
	}
	if aircraft.AircraftModel != nil {
		resp.AircraftModel = aircraft.AircraftModel.Code
	}
	if aircraft.AssembledByTeam != nil {
		code := aircraft.AssembledByTeam.Code
		resp.AssembledByTeam = &code
	}
	for _, slot := range models.Slots {
		slotPart := &SlotPartResponse{ID: aircraft.SlotPartID(slot)}
		if part := aircraft.SlotPart(slot); part != nil {
			slotPart.SerialNumber = part.SerialNumber
			slotPart.Status = part.Status
		}
		resp.Parts[string(slot)] = slotPart
	}
	return resp
}
