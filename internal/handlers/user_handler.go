package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/user"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type UserHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUserHandler(repo domain.Repository, audit audit.Recorder) *UserHandler {
	return &UserHandler{repo: repo, audit: audit}
}

type CreateUserRequest struct {
	ID       string `json:"id"`
	PersonID *uint  `json:"persona_id"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	PersonID *uint   `json:"persona_id"`
	Role     *string `json:"role"`
}

type RoleRequest struct {
	Role string `json:"role"`
}

func parseUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		httperr.Respond(c, httperr.InvalidInput("invalid_id", "Identificador inválido.", name))
		return uuid.Nil, false
	}
	return id, true
}

func parseRole(raw string) (access.Role, error) {
	if strings.TrimSpace(raw) == "" {
		return "", httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", "role")
	}
	r, ok := access.ParseRole(raw)
	if !ok {
		return "", httperr.InvalidInput("invalid_role", "El rol debe ser admin o asistente.", "role")
	}
	return r, nil
}

// RoleBySubject is called by the frontend right after login, before it
// holds a session with this API.
func (h *UserHandler) RoleBySubject(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	u, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if httperr.Is(err, httperr.KindNotFound) {
			httperr.Respond(c, httperr.NotFound("user_not_registered", "Usuario no registrado en el sistema."))
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": u.Role})
}

func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		httperr.Respond(c, httperr.Unauthenticated("missing_token", "Token no proporcionado."))
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if missing := missingValues(field{"id", &req.ID}, field{"role", &req.Role}); len(missing) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", missing...))
		return
	}
	id, err := uuid.Parse(strings.TrimSpace(req.ID))
	if err != nil {
		httperr.Respond(c, httperr.InvalidInput("invalid_id", "El id debe ser un UUID.", "id"))
		return
	}
	role, err := parseRole(req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := &models.User{ID: id, PersonID: req.PersonID, Role: string(role)}
	if err := h.repo.Create(c.Request.Context(), u); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.recordUser(c, "user_created", u.ID, map[string]any{"role": u.Role})
	httpresp.Message(c, http.StatusCreated, "Usuario creado correctamente.", "usuario", u)
}

func (h *UserHandler) List(c *gin.Context) {
	var f domain.Filter
	if raw := c.Query("role"); raw != "" {
		r, ok := access.ParseRole(raw)
		if !ok {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "Rol desconocido.", "role"))
			return
		}
		f.Role = string(r)
	}

	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), f, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	u, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	u, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.Role != nil {
		role, err := parseRole(*req.Role)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		u.Role = string(role)
	}
	if req.PersonID != nil {
		u.PersonID = req.PersonID
		u.Person = nil
	}

	h.save(c, u, "user_updated", "Usuario actualizado correctamente.")
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := parseRole(req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()
	u, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	u.Role = string(role)

	h.save(c, u, "user_role_changed", "Rol actualizado correctamente.")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.recordUser(c, "user_deleted", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente."})
}

func (h *UserHandler) save(c *gin.Context, u *models.User, action, message string) {
	ctx := c.Request.Context()
	if err := h.repo.Update(ctx, u); err != nil {
		httperr.Respond(c, err)
		return
	}

	// reload for the persona
	fresh, err := h.repo.GetByID(ctx, u.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.recordUser(c, action, u.ID, map[string]any{"role": fresh.Role})
	httpresp.Message(c, http.StatusOK, message, "usuario", fresh)
}

// audit_logs.entity_id is numeric, so the uuid goes into the metadata.
func (h *UserHandler) recordUser(c *gin.Context, action string, id uuid.UUID, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["usuario_id"] = id.String()
	h.audit.Dispatch(c.Request.Context(), audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   action,
		Entity:   "usuario",
		Metadata: meta,
	})
}
