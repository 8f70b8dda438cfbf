package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
)

// ======================================================
// PARAMS
// ======================================================

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.InvalidInput("invalid_id", "Identificador inválido.", name))
		return 0, false
	}
	return uint(id), true
}

// optionalUint reads a numeric query filter. Absent means no filter.
func optionalUint(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.Respond(c, httperr.InvalidInput("invalid_filter", "Filtro numérico inválido.", name))
		return nil, false
	}
	id := uint(v)
	return &id, true
}

// bindJSON treats an empty body as an empty object so that required-field
// checks report which fields are missing.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return false
	}
	return true
}

func listOptions(c *gin.Context, sorts map[string]string, def query.Sort) query.Options {
	return query.Options{
		Page: query.NewPage(c.Query("page"), c.Query("page_size")),
		Sort: query.ParseSort(c.Query("sort"), sorts, def),
	}
}

func respondPage[T any](c *gin.Context, res query.Result[T], opts query.Options) {
	httpresp.Page(c, res.Items, res.Total, opts.Page.Number, opts.Page.Size)
}

// patch overwrites dst when the request carried the field.
func patch(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// patchOptional stores a blank value as NULL.
func patchOptional(dst **string, v *string) {
	if v != nil {
		t := strings.TrimSpace(*v)
		if t == "" {
			*dst = nil
			return
		}
		*dst = &t
	}
}

type field struct {
	name string
	v    *string
}

// blankPatches lists required fields that were sent but left blank.
func blankPatches(fields ...field) []string {
	var out []string
	for _, f := range fields {
		if f.v != nil && strings.TrimSpace(*f.v) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

func record(c *gin.Context, rec audit.Recorder, action, entity string, id uint, meta any) {
	rec.Dispatch(c.Request.Context(), audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	})
}

// missingValues lists required fields that are absent or blank.
func missingValues(fields ...field) []string {
	var out []string
	for _, f := range fields {
		if f.v == nil || strings.TrimSpace(*f.v) == "" {
			out = append(out, f.name)
		}
	}
	return out
}
