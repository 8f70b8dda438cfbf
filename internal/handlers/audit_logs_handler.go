package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter, page query.Page) (query.Result[models.AuditLog], error)
}

type AuditLogsHandler struct {
	logs AuditLogReader
}

func NewAuditLogsHandler(logs AuditLogReader) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List filters by action, entity, user_id and a from/to day range. Bad
// dates are reported instead of silently dropped.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "user_id debe ser un UUID.", "user_id"))
			return
		}
		f.UserID = &id
	}

	if raw := c.Query("from"); raw != "" {
		d, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "La fecha debe tener el formato AAAA-MM-DD.", "from"))
			return
		}
		f.From = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.Respond(c, httperr.InvalidInput("invalid_filter", "La fecha debe tener el formato AAAA-MM-DD.", "to"))
			return
		}
		f.To = &d
	}

	page := query.NewPage(c.Query("page"), c.Query("page_size"))
	res, err := h.logs.List(c.Request.Context(), f, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Page(c, res.Items, res.Total, page.Number, page.Size)
}
