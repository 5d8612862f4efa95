package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
