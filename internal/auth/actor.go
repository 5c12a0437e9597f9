package auth

import (
	"context"

	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
)

type actorContextKey struct{}

// Actor is the authenticated identity resolved to its team
type Actor struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
	Team     *models.Team
}

// TeamCode returns the actor's team code, or "" when unassigned
func (a *Actor) TeamCode() string {
	if a == nil || a.Team == nil {
		return ""
	}
	return string(a.Team.Code)
}

// ContextWithActor stores the actor in ctx
func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the actor stored in ctx
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(*Actor)
	return actor, ok && actor != nil
}
