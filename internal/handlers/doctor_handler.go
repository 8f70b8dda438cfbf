package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-api/internal/dto"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type DoctorHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDoctorHandler(repo domain.Repository, audit audit.Recorder) *DoctorHandler {
	return &DoctorHandler{repo: repo, audit: audit}
}

type CreateDoctorRequest struct {
	PersonID      uint    `json:"persona_id" binding:"required"`
	SpecialtyID   uint    `json:"especialidad_id" binding:"required"`
	Email         *string `json:"email"`
	LicenseNumber *string `json:"colegiatura"`
}

type UpdateDoctorRequest struct {
	SpecialtyID   *uint   `json:"especialidad_id"`
	Email         *string `json:"email"`
	LicenseNumber *string `json:"colegiatura"`
	Active        *bool   `json:"activo"`
}

// ListPublic is the website's doctor directory: active doctors only.
func (h *DoctorHandler) ListPublic(c *gin.Context) {
	f := domain.Filter{ActiveOnly: true}

	var ok bool
	if f.SpecialtyID, ok = optionalUint(c, "especialidad_id"); !ok {
		return
	}

	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), f, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Page(c, dto.NewPublicDoctors(res.Items), res.Total, opts.Page.Number, opts.Page.Size)
}

// Get includes inactive doctors.
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	d := &models.Doctor{
		PersonID:    req.PersonID,
		SpecialtyID: req.SpecialtyID,
	}
	patchOptional(&d.Email, req.Email)
	patchOptional(&d.LicenseNumber, req.LicenseNumber)

	if err := h.repo.Create(ctx, d); err != nil {
		httperr.Respond(c, err)
		return
	}

	fresh, err := h.repo.GetByID(ctx, d.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "doctor_created", "medico", d.ID, nil)
	httpresp.Message(c, http.StatusCreated, "Médico registrado correctamente.", "medico", fresh)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	d, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.SpecialtyID != nil {
		d.SpecialtyID = *req.SpecialtyID
		d.Specialty = nil
	}
	patchOptional(&d.Email, req.Email)
	patchOptional(&d.LicenseNumber, req.LicenseNumber)
	if req.Active != nil {
		d.Active = *req.Active
	}

	if err := h.repo.Update(ctx, d); err != nil {
		httperr.Respond(c, err)
		return
	}

	fresh, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "doctor_updated", "medico", id, nil)
	httpresp.Message(c, http.StatusOK, "Médico actualizado correctamente.", "medico", fresh)
}

// Delete deactivates the doctor. Past appointments keep their medico_id.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "doctor_deactivated", "medico", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Médico desactivado correctamente."})
}
