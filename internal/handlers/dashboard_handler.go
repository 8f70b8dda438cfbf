package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/httpresp"
	"github.com/BruksfildServices01/clinic-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dash *dashboard.Dashboard
}

func NewDashboardHandler(dash *dashboard.Dashboard) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dash.Stats(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *DashboardHandler) ByStatus(c *gin.Context) {
	out, err := h.dash.ByStatus(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) LastSevenDays(c *gin.Context) {
	out, err := h.dash.LastSevenDays(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Upcoming(c *gin.Context) {
	out, err := h.dash.Upcoming(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
