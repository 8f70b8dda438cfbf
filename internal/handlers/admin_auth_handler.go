package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/user"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

type Provisioner interface {
	CreateUser(ctx context.Context, email, password string) (uuid.UUID, error)
}

// AdminAuthHandler creates identity-provider accounts for staff.
type AdminAuthHandler struct {
	provisioner Provisioner
	users       domain.Repository
	domainOK    validators.DomainChecker
	audit       audit.Recorder
}

// NewAdminAuthHandler accepts a nil provisioner when no service role key is
// configured; the route then answers 400.
func NewAdminAuthHandler(
	provisioner Provisioner,
	users domain.Repository,
	domainOK validators.DomainChecker,
	audit audit.Recorder,
) *AdminAuthHandler {
	return &AdminAuthHandler{
		provisioner: provisioner,
		users:       users,
		domainOK:    domainOK,
		audit:       audit,
	}
}

type CreateAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Optional: also register the internal user row.
	Role     string `json:"role"`
	PersonID *uint  `json:"persona_id"`
}

func (h *AdminAuthHandler) CreateAuth(c *gin.Context) {
	var req CreateAuthRequest
	if !bindJSON(c, &req) {
		return
	}

	if missing := missingValues(field{"email", &req.Email}, field{"password", &req.Password}); len(missing) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Email y contraseña son obligatorios.", missing...))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailWellFormed(email) {
		httperr.Respond(c, httperr.InvalidInput("invalid_email", "El email no es válido.", "email"))
		return
	}
	if h.domainOK != nil && !h.domainOK(email) {
		httperr.Respond(c, httperr.InvalidInput("invalid_email_domain", "El dominio del email no acepta correo.", "email"))
		return
	}

	var role string
	if strings.TrimSpace(req.Role) != "" {
		r, err := parseRole(req.Role)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		role = string(r)
	}

	if h.provisioner == nil {
		httperr.Respond(c, httperr.InvalidInput("provisioning_disabled", "La creación de cuentas no está habilitada."))
		return
	}

	ctx := c.Request.Context()
	sub, err := h.provisioner.CreateUser(ctx, email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(ctx, audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   "auth_account_created",
		Entity:   "usuario",
		Metadata: map[string]any{"usuario_id": sub.String(), "email": email},
	})

	resp := gin.H{"auth_user_id": sub}

	if role != "" {
		u := &models.User{ID: sub, PersonID: req.PersonID, Role: role}
		if err := h.users.Create(ctx, u); err != nil {
			httperr.Respond(c, err)
			return
		}
		resp["usuario"] = u
	}

	c.JSON(http.StatusCreated, resp)
}
