package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/client"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

type ClientHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewClientHandler(repo domain.Repository, audit audit.Recorder) *ClientHandler {
	return &ClientHandler{repo: repo, audit: audit}
}

type ClientRequest struct {
	FirstName *string `json:"nombres"`
	LastName  *string `json:"apellidos"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email"`
}

// Create is public: the website registers walk-in clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	if missing := missingValues(
		field{"nombres", req.FirstName},
		field{"telefono", req.Phone},
	); len(missing) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", missing...))
		return
	}

	cl := &models.Client{
		FirstName: strings.TrimSpace(*req.FirstName),
		LastName:  validators.Optional(req.LastName),
		Phone:     strings.TrimSpace(*req.Phone),
		Email:     validators.Optional(req.Email),
	}
	if err := h.repo.Create(c.Request.Context(), cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "client_created", "cliente", cl.ID, nil)
	httpresp.Message(c, http.StatusCreated, "Cliente registrado correctamente.", "cliente", cl)
}

func (h *ClientHandler) List(c *gin.Context) {
	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), domain.Filter{Query: c.Query("q")}, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cl, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	if blank := blankPatches(
		field{"nombres", req.FirstName},
		field{"telefono", req.Phone},
	); len(blank) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Los campos obligatorios no pueden quedar vacíos.", blank...))
		return
	}

	ctx := c.Request.Context()
	cl, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	patch(&cl.FirstName, req.FirstName)
	patchOptional(&cl.LastName, req.LastName)
	patch(&cl.Phone, req.Phone)
	patchOptional(&cl.Email, req.Email)

	if err := h.repo.Update(ctx, cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "client_updated", "cliente", cl.ID, nil)
	httpresp.Message(c, http.StatusOK, "Cliente actualizado correctamente.", "cliente", cl)
}

// Delete answers 409 while appointments or messages reference the client.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "client_deleted", "cliente", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado correctamente."})
}
