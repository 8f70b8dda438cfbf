package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/domain/access"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

const (
	ContextUser     = "currentUser"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

type Resolver interface {
	Resolve(ctx context.Context, authorization string) (*models.User, error)
}

// Authenticate resolves the bearer token into an internal user and stores
// it on the context.
func Authenticate(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		c.Set(ContextUser, u)
		c.Set(ContextUserID, u.ID)
		c.Set(ContextUserRole, access.Role(u.Role))
		c.Next()
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(allowed access.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextUserRole)
		if !ok {
			httperr.Respond(c, httperr.Unauthenticated("missing_token", "Token no proporcionado."))
			return
		}
		r, _ := role.(access.Role)
		if !access.Admit(r, allowed) {
			httperr.Respond(c, httperr.Forbidden("forbidden", "No tiene permisos para esta operación."))
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// ActorID is nil on public routes.
func ActorID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
