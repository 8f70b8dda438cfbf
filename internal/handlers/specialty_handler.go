package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/specialty"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type SpecialtyHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSpecialtyHandler(repo domain.Repository, audit audit.Recorder) *SpecialtyHandler {
	return &SpecialtyHandler{repo: repo, audit: audit}
}

type SpecialtyRequest struct {
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), domain.Filter{Query: c.Query("q")}, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req SpecialtyRequest
	if !bindJSON(c, &req) {
		return
	}
	if missing := missingValues(field{"nombre", req.Name}); len(missing) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "El nombre es obligatorio.", missing...))
		return
	}

	s := &models.Specialty{Name: strings.TrimSpace(*req.Name)}
	patchOptional(&s.Description, req.Description)

	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "specialty_created", "especialidad", s.ID, map[string]any{"nombre": s.Name})
	httpresp.Message(c, http.StatusCreated, "Especialidad creada correctamente.", "especialidad", s)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SpecialtyRequest
	if !bindJSON(c, &req) {
		return
	}
	if blank := blankPatches(field{"nombre", req.Name}); len(blank) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "El nombre no puede quedar vacío.", blank...))
		return
	}

	ctx := c.Request.Context()
	s, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	patch(&s.Name, req.Name)
	patchOptional(&s.Description, req.Description)

	if err := h.repo.Update(ctx, s); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "specialty_updated", "especialidad", s.ID, nil)
	httpresp.Message(c, http.StatusOK, "Especialidad actualizada correctamente.", "especialidad", s)
}

// Delete answers 409 while doctors still reference the specialty.
func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "specialty_deleted", "especialidad", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Especialidad eliminada correctamente."})
}
