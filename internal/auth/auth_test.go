package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("secret", "aircraft-test", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateJWT("wing.lead")
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "wing.lead", claims.Username)
		assert.Equal(t, "aircraft-test", claims.Issuer)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other", "aircraft-test", time.Hour).GenerateJWT("wing.lead")
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewTokenService("secret", "someone-else", time.Hour).GenerateJWT("wing.lead")
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			Username: "wing.lead",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "aircraft-test",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := svc.GenerateJWT("")
		assert.Error(t, err)
	})
}

func fixtures() (wing *models.PartType, wingTeam, tailTeam, assembly *models.Team) {
	wing = &models.PartType{BaseModel: models.BaseModel{ID: uuid.New()}, Code: models.PartTypeWing}
	tailType := &models.PartType{BaseModel: models.BaseModel{ID: uuid.New()}, Code: models.PartTypeTail}
	wingTeam = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Code: models.TeamWing, ResponsiblePartTypeID: &wing.ID}
	tailTeam = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Code: models.TeamTail, ResponsiblePartTypeID: &tailType.ID}
	assembly = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Code: models.TeamAssembly}
	return
}

func TestAuthorize(t *testing.T) {
	wing, wingTeam, tailTeam, assembly := fixtures()
	part := &models.Part{PartTypeID: wing.ID, ProducedByTeamID: &wingTeam.ID}

	wingActor := &Actor{Username: "wing", Team: wingTeam}
	tailActor := &Actor{Username: "tail", Team: tailTeam}
	assemblyActor := &Actor{Username: "assembly", Team: assembly}
	admin := &Actor{Username: "admin", IsAdmin: true}
	noTeam := &Actor{Username: "nobody"}

	tests := []struct {
		name     string
		actor    *Actor
		action   Action
		resource Resource
		expected error
	}{
		{"missing actor", nil, ActionRead, PartResource{Part: part}, apperrors.ErrMissingActor},
		{"any actor reads", noTeam, ActionRead, AircraftResource{}, nil},
		{"responsible team produces", wingActor, ActionCreate, PartTypeResource{PartType: wing}, nil},
		{"other team cannot produce", tailActor, ActionCreate, PartTypeResource{PartType: wing}, apperrors.ErrTeamCannotProduce},
		{"assembly cannot produce", assemblyActor, ActionCreate, PartTypeResource{PartType: wing}, apperrors.ErrNotProductionTeam},
		{"unassigned cannot produce", noTeam, ActionCreate, PartTypeResource{PartType: wing}, apperrors.ErrUserNotAssignedToTeam},
		{"producer recycles", wingActor, ActionRecycle, PartResource{Part: part}, nil},
		{"non producer cannot recycle", tailActor, ActionRecycle, PartResource{Part: part}, apperrors.ErrNotProducingTeam},
		{"admin deletes part", admin, ActionDelete, PartResource{Part: part}, nil},
		{"producer cannot delete part", wingActor, ActionDelete, PartResource{Part: part}, apperrors.ErrAdminRequired},
		{"assembly creates aircraft", assemblyActor, ActionCreate, AircraftResource{}, nil},
		{"production team cannot assemble", wingActor, ActionCreate, AircraftResource{}, apperrors.ErrNotAssemblyTeam},
		{"admin without team cannot assemble", admin, ActionDelete, AircraftResource{}, apperrors.ErrUserNotAssignedToTeam},
		{"admin manages teams", admin, ActionUpdate, TeamResource{Team: wingTeam}, nil},
		{"team member cannot manage catalog", wingActor, ActionCreate, CatalogResource{}, apperrors.ErrAdminRequired},
		{"admin assigns profiles", admin, ActionUpdate, ProfileResource{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.action, tt.resource)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

type stubResolver struct {
	actor *Actor
	err   error
}

func (s *stubResolver) ResolveActor(_ context.Context, username string) (*Actor, error) {
	if s.err != nil {
		return nil, s.err
	}
	actor := *s.actor
	actor.Username = username
	return &actor, nil
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := NewTokenService("secret", "aircraft-test", time.Hour)
	_, wingTeam, _, _ := fixtures()

	newRouter := func(resolver ActorResolver) *gin.Engine {
		mw := NewAuthMiddleware(tokens, resolver)
		r := gin.New()
		r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
			actor, ok := GetActor(c)
			fromCtx, okCtx := ActorFromContext(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"ok": ok && okCtx && actor == fromCtx, "team": actor.TeamCode()})
		})
		r.GET("/admin", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	token, err := tokens.GenerateJWT("wing.lead")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{actor: &Actor{}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{actor: &Actor{}}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("resolved actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{actor: &Actor{Team: wingTeam}}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"team":"WING"}`, rec.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{err: apperrors.ErrUserNotFound}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin route rejects non admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{actor: &Actor{Team: wingTeam}}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin route accepts admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter(&stubResolver{actor: &Actor{IsAdmin: true}}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
