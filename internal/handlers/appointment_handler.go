package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/dto"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
	appointmentUC "github.com/BruksfildServices01/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	CreatePublic   *appointmentUC.CreatePublicAppointment
	CreateInternal *appointmentUC.CreateInternalAppointment
	Confirm        *appointmentUC.ConfirmAppointment
	Attend         *appointmentUC.AttendAppointment
	Cancel         *appointmentUC.CancelAppointment
	Reschedule     *appointmentUC.RescheduleAppointment
	Delete         *appointmentUC.DeleteAppointment
	Query          *appointmentUC.ListAppointments
}

type AppointmentHandler struct {
	uc AppointmentUseCases
}

func NewAppointmentHandler(uc AppointmentUseCases) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicAppointmentRequest struct {
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	Phone     string `json:"telefono"`
	Email     string `json:"email"`
	Date      string `json:"fecha_solicitada"`
	Time      string `json:"hora_solicitada"`
	Symptoms  string `json:"sintomas"`
}

type InternalAppointmentRequest struct {
	ClientID uint   `json:"cliente_id"`
	Date     string `json:"fecha_solicitada"`
	Time     string `json:"hora_solicitada"`
	Symptoms string `json:"sintomas"`
}

type RescheduleRequest struct {
	Date     *string `json:"fecha_solicitada"`
	Time     *string `json:"hora_solicitada"`
	Symptoms *string `json:"sintomas"`
	Status   *string `json:"estado"`
	DoctorID *uint   `json:"medico_id"`
}

type ConfirmRequest struct {
	DoctorID uint `json:"medico_id"`
}

// ======================================================
// CREATE
// ======================================================

// CreatePublic is the website booking form. No authentication.
func (h *AppointmentHandler) CreatePublic(c *gin.Context) {
	var req PublicAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.CreatePublic.Execute(c.Request.Context(), appointmentUC.CreatePublicInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		Symptoms:  req.Symptoms,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Cita registrada correctamente.", "cita", ap)
}

func (h *AppointmentHandler) CreateInternal(c *gin.Context) {
	var req InternalAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.CreateInternal.Execute(c.Request.Context(), middleware.ActorID(c), appointmentUC.CreateInternalInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Symptoms: req.Symptoms,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Cita registrada correctamente.", "cita", ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var f domain.Filter

	if raw := c.Query("estado"); raw != "" {
		st, ok := domain.ParseStatus(raw)
		if !ok {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "Estado desconocido.", "estado"))
			return
		}
		f.Status = st
	}

	var ok bool
	if f.DoctorID, ok = optionalUint(c, "medico_id"); !ok {
		return
	}
	if f.ClientID, ok = optionalUint(c, "cliente_id"); !ok {
		return
	}

	if raw := c.Query("fecha"); raw != "" {
		d, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "La fecha debe tener el formato AAAA-MM-DD.", "fecha"))
			return
		}
		f.Date = &d
	}

	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.uc.Query.Execute(c.Request.Context(), f, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *AppointmentHandler) Search(c *gin.Context) {
	aps, err := h.uc.Query.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewAppointmentList(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.uc.Query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

// Update only reschedules. Status and doctor have their own routes.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.Reschedule.Execute(c.Request.Context(), middleware.ActorID(c), id, appointmentUC.RescheduleInput{
		Date:     req.Date,
		Time:     req.Time,
		Symptoms: req.Symptoms,
		Status:   req.Status,
		DoctorID: req.DoctorID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cita actualizada correctamente.", "cita", ap)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ConfirmRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.Confirm.Execute(c.Request.Context(), middleware.ActorID(c), id, req.DoctorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cita confirmada correctamente.", "cita", ap)
}

func (h *AppointmentHandler) Attend(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.uc.Attend.Execute(c.Request.Context(), middleware.ActorID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cita marcada como atendida.", "cita", ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.uc.Cancel.Execute(c.Request.Context(), middleware.ActorID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cita cancelada correctamente.", "cita", ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada correctamente."})
}
