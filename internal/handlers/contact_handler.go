package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/contact"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type ContactHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewContactHandler(repo domain.Repository, audit audit.Recorder) *ContactHandler {
	return &ContactHandler{repo: repo, audit: audit}
}

type CreateContactRequest struct {
	ClientID uint   `json:"cliente_id"`
	Subject  string `json:"asunto"`
	Message  string `json:"mensaje"`
}

type UpdateContactRequest struct {
	Subject *string `json:"asunto"`
	Message *string `json:"mensaje"`
}

// Create is public. cliente_id must point at an existing client.
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	missing := missingValues(field{"asunto", &req.Subject}, field{"mensaje", &req.Message})
	if req.ClientID == 0 {
		missing = append([]string{"cliente_id"}, missing...)
	}
	if len(missing) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "cliente_id, asunto y mensaje son obligatorios.", missing...))
		return
	}

	m := &models.ContactMessage{
		ClientID: req.ClientID,
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
	}
	if err := h.repo.Create(c.Request.Context(), m); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "contact_received", "contacto", m.ID, map[string]any{"cliente_id": m.ClientID})
	httpresp.Message(c, http.StatusCreated, "Mensaje enviado correctamente.", "contacto", m)
}

func (h *ContactHandler) List(c *gin.Context) {
	var f domain.Filter
	var ok bool
	if f.ClientID, ok = optionalUint(c, "cliente_id"); !ok {
		return
	}

	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), f, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	if blank := blankPatches(field{"asunto", req.Subject}, field{"mensaje", req.Message}); len(blank) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Los campos obligatorios no pueden quedar vacíos.", blank...))
		return
	}

	ctx := c.Request.Context()
	m, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	patch(&m.Subject, req.Subject)
	patch(&m.Message, req.Message)

	if err := h.repo.Update(ctx, m); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "contact_updated", "contacto", m.ID, nil)
	httpresp.Message(c, http.StatusOK, "Mensaje actualizado correctamente.", "contacto", m)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "contact_deleted", "contacto", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Mensaje eliminado correctamente."})
}
