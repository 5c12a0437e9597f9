package auth

import (
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
)

// Action is what an actor attempts on a resource
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionRecycle Action = "recycle"
)

// Resource is the closed set of things authorization decides on.
type Resource interface {
	resourceKind() string
}

// PartTypeResource is the intent to produce a new part of PartType
type PartTypeResource struct{ PartType *models.PartType }

// PartResource is an existing part
type PartResource struct{ Part *models.Part }

// AircraftResource is an assembled aircraft; Aircraft is nil when creating
type AircraftResource struct{ Aircraft *models.AssembledAircraft }

// ProfileResource is a user's team assignment
type ProfileResource struct{ Profile *models.Profile }

// CatalogResource is a part type or aircraft model entry
type CatalogResource struct{}

// TeamResource is a team definition
type TeamResource struct{ Team *models.Team }

func (PartTypeResource) resourceKind() string { return "part_type" }
func (PartResource) resourceKind() string     { return "part" }
func (AircraftResource) resourceKind() string { return "aircraft" }
func (ProfileResource) resourceKind() string  { return "profile" }
func (CatalogResource) resourceKind() string  { return "catalog" }
func (TeamResource) resourceKind() string     { return "team" }

// Authorize decides whether actor may perform action on resource.
// Reads only require an authenticated actor.
func Authorize(actor *Actor, action Action, resource Resource) error {
	if actor == nil {
		return apperrors.ErrMissingActor
	}
	if action == ActionRead {
		return nil
	}

	switch r := resource.(type) {
	case PartTypeResource:
		return authorizeProduction(actor, r.PartType)
	case PartResource:
		if action == ActionRecycle {
			return authorizeRecycle(actor, r.Part)
		}
		return requireAdmin(actor)
	case AircraftResource:
		return requireAssemblyTeam(actor)
	case ProfileResource, CatalogResource, TeamResource:
		return requireAdmin(actor)
	default:
		return apperrors.ErrUnsupportedResourceKind
	}
}

func authorizeProduction(actor *Actor, partType *models.PartType) error {
	if actor.Team == nil {
		return apperrors.ErrUserNotAssignedToTeam
	}
	if !actor.Team.IsProduction() {
		return apperrors.ErrNotProductionTeam
	}
	if !actor.Team.CanProduce(partType) {
		return apperrors.ErrTeamCannotProduce
	}
	return nil
}

func authorizeRecycle(actor *Actor, part *models.Part) error {
	if actor.Team == nil {
		return apperrors.ErrUserNotAssignedToTeam
	}
	if part == nil || part.ProducedByTeamID == nil || *part.ProducedByTeamID != actor.Team.ID {
		return apperrors.ErrNotProducingTeam
	}
	return nil
}

func requireAssemblyTeam(actor *Actor) error {
	if actor.Team == nil {
		return apperrors.ErrUserNotAssignedToTeam
	}
	if !actor.Team.IsAssembly() {
		return apperrors.ErrNotAssemblyTeam
	}
	return nil
}

func requireAdmin(actor *Actor) error {
	if !actor.IsAdmin {
		return apperrors.ErrAdminRequired
	}
	return nil
}
