package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/history"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

// HistoryHandler serves clinical notes. Notes are append-only.
type HistoryHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewHistoryHandler(repo domain.Repository, audit audit.Recorder) *HistoryHandler {
	return &HistoryHandler{repo: repo, audit: audit}
}

type CreateHistoryRequest struct {
	AppointmentID uint    `json:"cita_id"`
	DoctorID      *uint   `json:"medico_id"`
	Diagnosis     *string `json:"diagnostico"`
	Notes         *string `json:"observaciones"`
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req CreateHistoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.AppointmentID == 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "cita_id es obligatorio.", "cita_id"))
		return
	}

	n := &models.HistoryNote{
		AppointmentID: req.AppointmentID,
		Diagnosis:     validators.Optional(req.Diagnosis),
		Notes:         validators.Optional(req.Notes),
	}
	if req.DoctorID != nil && *req.DoctorID != 0 {
		n.DoctorID = req.DoctorID
	}

	if err := h.repo.Create(c.Request.Context(), n); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "history_note_created", "historial", n.ID, map[string]any{"cita_id": n.AppointmentID})
	httpresp.Message(c, http.StatusCreated, "Historial registrado.", "historial", n)
}

func (h *HistoryHandler) List(c *gin.Context) {
	var f domain.Filter
	var ok bool
	if f.AppointmentID, ok = optionalUint(c, "cita_id"); !ok {
		return
	}
	if f.ClientID, ok = optionalUint(c, "cliente_id"); !ok {
		return
	}
	h.list(c, f)
}

func (h *HistoryHandler) ByAppointment(c *gin.Context) {
	id, ok := parseID(c, "cita_id")
	if !ok {
		return
	}
	h.list(c, domain.Filter{AppointmentID: &id})
}

func (h *HistoryHandler) ByClient(c *gin.Context) {
	id, ok := parseID(c, "cliente_id")
	if !ok {
		return
	}
	h.list(c, domain.Filter{ClientID: &id})
}

func (h *HistoryHandler) list(c *gin.Context, f domain.Filter) {
	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), f, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, n)
}

// Update and Delete exist only to refuse: clinical history is immutable.
func (h *HistoryHandler) Update(c *gin.Context) {
	httperr.Respond(c, httperr.Forbidden("history_immutable", "El historial clínico no se puede modificar."))
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	httperr.Respond(c, httperr.Forbidden("history_immutable", "El historial clínico no se puede eliminar."))
}

