package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// ActorResolver turns a token subject into an Actor
type ActorResolver interface {
	ResolveActor(ctx context.Context, username string) (*Actor, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens   *TokenService
	resolver ActorResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService, resolver ActorResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, resolver: resolver}
}

// RequireAuth validates the bearer token and resolves the caller into an Actor
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		actor, err := m.resolver.ResolveActor(c.Request.Context(), claims.Username)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to resolve actor")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve identity"})
			return
		}

		ctx := ContextWithActor(c.Request.Context(), actor)
		ctx = logger.ContextWithUser(ctx, actor.Username, actor.TeamCode())
		c.Request = c.Request.WithContext(ctx)
		c.Set(actorKey, actor)

		c.Next()
	}
}

// RequireAdmin rejects callers without administrative privilege. Use after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !actor.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			return
		}
		c.Next()
	}
}

// GetActor is a helper function to extract the actor from the gin context
func GetActor(c *gin.Context) (*Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*Actor)
	return actor, ok && actor != nil
}

// SetActor stores actor on the gin context and request context
func SetActor(c *gin.Context, actor *Actor) {
	c.Set(actorKey, actor)
	c.Request = c.Request.WithContext(ContextWithActor(c.Request.Context(), actor))
}
