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
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	partTypes repository.PartTypeRepositoryInterface
	parts     repository.PartRepositoryInterface
	aircraft  repository.AssembledAircraftRepositoryInterface
	users     repository.UserRepositoryInterface
	tx        database.TxRunner
	registry  *registry.Registry
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	partTypes repository.PartTypeRepositoryInterface,
	parts repository.PartRepositoryInterface,
	aircraft repository.AssembledAircraftRepositoryInterface,
	users repository.UserRepositoryInterface,
	tx database.TxRunner,
	reg *registry.Registry,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:      repo,
		partTypes: partTypes,
		parts:     parts,
		aircraft:  aircraft,
		users:     users,
		tx:        tx,
		registry:  reg,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to register a team
type CreateTeamRequest struct {
	Code                models.TeamCode      `json:"code" validate:"required,oneof=WING FUSELAGE TAIL AVIONICS ASSEMBLY" example:"WING"`
	Label               string               `json:"label" validate:"required,max=50" example:"Wing Team"`
	ResponsiblePartType *models.PartTypeCode `json:"responsible_part_type,omitempty" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS" example:"WING"`
}

// UpdateTeamRequest represents the request to update a team. The responsibility
// is always sent together with the code so the two cannot drift apart.
type UpdateTeamRequest struct {
	Code                models.TeamCode      `json:"code" validate:"required,oneof=WING FUSELAGE TAIL AVIONICS ASSEMBLY"`
	Label               string               `json:"label" validate:"required,max=50"`
	ResponsiblePartType *models.PartTypeCode `json:"responsible_part_type,omitempty" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Code                models.TeamCode      `json:"code"`
	Label               string               `json:"label"`
	Kind                string               `json:"kind"`
	ResponsiblePartType *models.PartTypeCode `json:"responsible_part_type,omitempty"`
	CreatedAt           string               `json:"created_at"`
	UpdatedAt           string               `json:"updated_at"`
}

// RegisterTeam creates a team after checking that its code and responsibility agree
func (s *TeamService) RegisterTeam(ctx context.Context, actor *auth.Actor, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreate, auth.TeamResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	responsible, err := s.resolveResponsibility(dbc, req.Code, req.ResponsiblePartType)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByCode(dbc, req.Code); err == nil {
		return nil, apperrors.ErrTeamExists
	} else if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if err := s.checkResponsibilityFree(dbc, responsible, nil); err != nil {
		return nil, err
	}

	team := &models.Team{Code: req.Code, Label: req.Label}
	if responsible != nil {
		team.ResponsiblePartTypeID = &responsible.ID
		team.ResponsiblePartType = responsible
	}
	if err := s.repo.Create(dbc, team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("team", team.Code).Info("team registered")
	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTeamNotFound, "get team")
	}
	return s.toResponse(team), nil
}

// GetAll retrieves every team
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(dbctx.New(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i]))
	}
	return responses, nil
}

// Update changes a team's code, label and responsibility together
func (s *TeamService) Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	team, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := auth.Authorize(actor, auth.ActionUpdate, auth.TeamResource{Team: team}); err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(tx dbctx.Context) error {
		responsible, err := s.resolveResponsibility(tx, req.Code, req.ResponsiblePartType)
		if err != nil {
			return err
		}
		if req.Code != team.Code {
			if existing, err := s.repo.GetByCode(tx, req.Code); err == nil && existing.ID != team.ID {
				return apperrors.ErrTeamExists
			} else if err != nil && !repository.IsNotFound(err) {
				return fmt.Errorf("failed to check existing team: %w", err)
			}
		}
		if err := s.checkResponsibilityFree(tx, responsible, &team.ID); err != nil {
			return err
		}
		if req.Code != team.Code || !sameResponsibility(team.ResponsiblePartTypeID, responsible) {
			if err := s.checkUnreferenced(tx, team.ID); err != nil {
				return err
			}
		}

		team.Code = req.Code
		team.Label = req.Label
		team.ResponsiblePartTypeID = nil
		team.ResponsiblePartType = responsible
		if responsible != nil {
			team.ResponsiblePartTypeID = &responsible.ID
		}
		if err := s.repo.Update(tx, team); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("team", team.Code).Info("team updated")
	return s.toResponse(team), nil
}

// Delete removes a team and detaches everything that pointed at it
func (s *TeamService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	dbc := dbctx.New(ctx)
	team, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := auth.Authorize(actor, auth.ActionDelete, auth.TeamResource{Team: team}); err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(tx dbctx.Context) error {
		if err := s.parts.ClearProducer(tx, id); err != nil {
			return fmt.Errorf("failed to detach parts: %w", err)
		}
		if err := s.aircraft.ClearAssembler(tx, id); err != nil {
			return fmt.Errorf("failed to detach aircraft: %w", err)
		}
		if err := s.users.ClearTeam(tx, id); err != nil {
			return fmt.Errorf("failed to detach profiles: %w", err)
		}
		if err := s.repo.Delete(tx, id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.registry.Invalidate(ctx)

	logger.WithContext(ctx).WithField("team", team.Code).Info("team deleted")
	return nil
}

// CanProduce reports whether the team may produce parts of the given type
func (s *TeamService) CanProduce(ctx context.Context, teamID uuid.UUID, partType models.PartTypeCode) (bool, error) {
	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	team, ok := snapshot.TeamByID(teamID)
	if !ok {
		return false, apperrors.ErrTeamNotFound
	}
	pt, ok := snapshot.PartType(partType)
	if !ok {
		return false, apperrors.ErrPartTypeNotFound
	}
	return snapshot.CanProduce(team, pt), nil
}

// checkUnreferenced fails while parts or aircraft record the team as producer or assembler
func (s *TeamService) checkUnreferenced(dbc dbctx.Context, teamID uuid.UUID) error {
	produced, err := s.parts.ExistsByProducer(dbc, teamID)
	if err != nil {
		return fmt.Errorf("failed to check produced parts: %w", err)
	}
	if produced {
		return apperrors.ErrTeamInUse
	}
	assembled, err := s.aircraft.ExistsByAssembler(dbc, teamID)
	if err != nil {
		return fmt.Errorf("failed to check assembled aircraft: %w", err)
	}
	if assembled {
		return apperrors.ErrTeamInUse
	}
	return nil
}

func sameResponsibility(current *uuid.UUID, next *models.PartType) bool {
	if current == nil || next == nil {
		return current == nil && next == nil
	}
	return *current == next.ID
}

func (s *TeamService) resolveResponsibility(dbc dbctx.Context, code models.TeamCode, partType *models.PartTypeCode) (*models.PartType, error) {
	var responsible *models.PartType
	if partType != nil {
		pt, err := s.partTypes.GetByCode(dbc, *partType)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrPartTypeNotFound, "get part type")
		}
		responsible = pt
	}
	if err := models.ValidateResponsibility(code, responsible); err != nil {
		return nil, err
	}
	return responsible, nil
}

// checkResponsibilityFree fails when another team already owns partType
func (s *TeamService) checkResponsibilityFree(dbc dbctx.Context, partType *models.PartType, self *uuid.UUID) error {
	if partType == nil {
		return nil
	}
	owner, err := s.repo.GetByResponsiblePartType(dbc, partType.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to check team responsibility: %w", err)
	}
	if self != nil && owner.ID == *self {
		return nil
	}
	return apperrors.ErrResponsibilityExists
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	kind := "production"
	if team.IsAssembly() {
		kind = "assembly"
	}
	resp := &TeamResponse{
		ID:        team.ID,
		Code:      team.Code,
		Label:     team.Label,
		Kind:      kind,
		CreatedAt: formatTime(team.CreatedAt),
		UpdatedAt: formatTime(team.UpdatedAt),
	}
	if team.ResponsiblePartType != nil {
		code := team.ResponsiblePartType.Code
		resp.ResponsiblePartType = &code
	}
	return resp
}
