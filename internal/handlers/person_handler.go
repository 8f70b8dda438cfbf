package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	personUC "github.com/BruksfildServices01/clinic-api/internal/usecase/person"
)

type PersonHandler struct {
	repo     domain.Repository
	register *personUC.RegisterPerson
	photo    *personUC.UploadPhoto
	audit    audit.Recorder
	maxBytes int64
}

func NewPersonHandler(
	repo domain.Repository,
	register *personUC.RegisterPerson,
	photo *personUC.UploadPhoto,
	audit audit.Recorder,
	maxUploadBytes int64,
) *PersonHandler {
	return &PersonHandler{
		repo:     repo,
		register: register,
		photo:    photo,
		audit:    audit,
		maxBytes: maxUploadBytes,
	}
}

type CreatePersonRequest struct {
	FirstName string  `json:"nombres"`
	LastName  string  `json:"apellidos"`
	DNI       string  `json:"dni"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email"`
	Address   *string `json:"direccion"`
}

type UpdatePersonRequest struct {
	FirstName *string `json:"nombres"`
	LastName  *string `json:"apellidos"`
	DNI       *string `json:"dni"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email"`
	Address   *string `json:"direccion"`
}

type PhotoURLRequest struct {
	PhotoURL string `json:"foto_url" binding:"required,url"`
}

// Create answers 201 for a new person and 200 when the DNI was already
// registered.
func (h *PersonHandler) Create(c *gin.Context) {
	var req CreatePersonRequest
	if !bindJSON(c, &req) {
		return
	}

	p, created, err := h.register.Execute(c.Request.Context(), middleware.ActorID(c), personUC.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !created {
		httpresp.Message(c, http.StatusOK, "La persona ya estaba registrada.", "persona", p)
		return
	}
	httpresp.Message(c, http.StatusCreated, "Persona registrada correctamente.", "persona", p)
}

func (h *PersonHandler) List(c *gin.Context) {
	opts := listOptions(c, domain.SortColumns, domain.DefaultSort)
	res, err := h.repo.List(c.Request.Context(), domain.Filter{Query: c.Query("q")}, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondPage(c, res, opts)
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdatePersonRequest
	if !bindJSON(c, &req) {
		return
	}
	if blank := blankPatches(
		field{"nombres", req.FirstName},
		field{"apellidos", req.LastName},
		field{"dni", req.DNI},
	); len(blank) > 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Los campos obligatorios no pueden quedar vacíos.", blank...))
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	patch(&p.FirstName, req.FirstName)
	patch(&p.LastName, req.LastName)
	patch(&p.DNI, req.DNI)
	patchOptional(&p.Phone, req.Phone)
	patchOptional(&p.Email, req.Email)
	patchOptional(&p.Address, req.Address)

	if err := h.repo.Update(ctx, p); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "person_updated", "persona", p.ID, nil)
	httpresp.Message(c, http.StatusOK, "Persona actualizada correctamente.", "persona", p)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	record(c, h.audit, "person_deleted", "persona", id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Persona eliminada correctamente."})
}

// ======================================================
// PHOTO
// ======================================================

// SetPhotoURL stores a link to an image hosted elsewhere.
func (h *PersonHandler) SetPhotoURL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PhotoURLRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.photo.SetURL(c.Request.Context(), middleware.ActorID(c), id, req.PhotoURL)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Foto actualizada correctamente.", "persona", p)
}

// UploadPhoto takes a multipart "foto" file.
func (h *PersonHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	fh, err := c.FormFile("foto")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, httperr.InvalidInput("file_too_large", "La imagen excede el tamaño permitido.", "foto"))
			return
		}
		httperr.Respond(c, httperr.InvalidInput("invalid_input", "Debe adjuntar una imagen en el campo foto.", "foto"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	p, err := h.photo.Execute(c.Request.Context(), middleware.ActorID(c), id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Foto actualizada correctamente.", "persona", p)
}
