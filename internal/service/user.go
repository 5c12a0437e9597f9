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

// UserService handles users, their profiles and actor resolution
type UserService struct {
	repo      repository.UserRepositoryInterface
	tx        database.TxRunner
	registry  *registry.Registry
	validator *validator.Validate
}

var _ auth.ActorResolver = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tx database.TxRunner, reg *registry.Registry, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		tx:        tx,
		registry:  reg,
		validator: validator,
	}
}

// RegisterUserRequest represents the request to register a user
type RegisterUserRequest struct {
	Username string           `json:"username" validate:"required,min=3,max=150" example:"wing.lead"`
	Email    string           `json:"email,omitempty" validate:"omitempty,email,max=254" example:"wing.lead@example.com"`
	IsAdmin  bool             `json:"is_admin"`
	Team     *models.TeamCode `json:"team,omitempty" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS ASSEMBLY" example:"WING"`
}

// AssignTeamRequest represents the request to change a user's team; a null team unassigns
type AssignTeamRequest struct {
	Team *models.TeamCode `json:"team" validate:"omitempty,oneof=WING FUSELAGE TAIL AVIONICS ASSEMBLY" example:"ASSEMBLY"`
}

// UserResponse represents a user with its team
type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email,omitempty"`
	IsAdmin   bool             `json:"is_admin"`
	Team      *models.TeamCode `json:"team,omitempty"`
	TeamLabel string           `json:"team_label,omitempty"`
	CreatedAt string           `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// RegisterUser creates a user and its profile in one transaction
func (s *UserService) RegisterUser(ctx context.Context, actor *auth.Actor, req *RegisterUserRequest) (*UserResponse, error) {
	if err := auth.Authorize(actor, auth.ActionCreate, auth.ProfileResource{}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	teamID, err := s.resolveTeam(ctx, req.Team)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: req.Username, Email: req.Email, IsAdmin: req.IsAdmin}
	err = s.tx.InTx(ctx, func(tx dbctx.Context) error {
		if _, err := s.repo.GetByUsername(tx, req.Username); err == nil {
			return apperrors.ErrUserExists
		} else if !repository.IsNotFound(err) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}
		if err := s.repo.Create(tx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrUserExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := s.repo.CreateProfile(tx, &models.Profile{UserID: user.ID, TeamID: teamID}); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("username", user.Username).Info("user registered")
	return s.GetByID(ctx, user.ID)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// Me returns the caller's own identity
func (s *UserService) Me(ctx context.Context, actor *auth.Actor) (*UserResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingActor
	}
	return s.GetByID(ctx, actor.UserID)
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(ctx context.Context, actor *auth.Actor, page, pageSize int) (*UserListResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingActor
	}
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	limit, offset, page, pageSize, err := paginate(page, pageSize)
	if err != nil {
		return nil, err
	}

	users, total, err := s.repo.GetAll(dbctx.New(ctx), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return &UserListResponse{Users: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// AssignTeam moves a user's profile to another team
func (s *UserService) AssignTeam(ctx context.Context, actor *auth.Actor, userID uuid.UUID, req *AssignTeamRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	dbc := dbctx.New(ctx)
	profile, err := s.repo.GetProfileByUserID(dbc, userID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProfileNotFound, "get profile")
	}
	if err := auth.Authorize(actor, auth.ActionUpdate, auth.ProfileResource{Profile: profile}); err != nil {
		return nil, err
	}
	teamID, err := s.resolveTeam(ctx, req.Team)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetProfileTeam(dbc, userID, teamID); err != nil {
		return nil, fmt.Errorf("failed to assign team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": userID,
		"team":    req.Team,
	}).Info("user team assigned")
	return s.GetByID(ctx, userID)
}

// ResolveActor loads the user behind a token subject together with its team
func (s *UserService) ResolveActor(ctx context.Context, username string) (*auth.Actor, error) {
	user, err := s.repo.GetByUsername(dbctx.New(ctx), username)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound, "resolve user")
	}
	actor := &auth.Actor{UserID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}
	if user.Profile != nil && user.Profile.Team != nil {
		actor.Team = user.Profile.Team
	}
	return actor, nil
}

func (s *UserService) resolveTeam(ctx context.Context, code *models.TeamCode) (*uuid.UUID, error) {
	if code == nil {
		return nil, nil
	}
	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	team, ok := snapshot.Team(*code)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	id := team.ID
	return &id, nil
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: formatTime(user.CreatedAt),
	}
	if user.Profile != nil && user.Profile.Team != nil {
		code := user.Profile.Team.Code
		resp.Team = &code
		resp.TeamLabel = user.Profile.Team.Label
	}
	return resp
}
