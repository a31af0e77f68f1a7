package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the dashboard endpoint
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats retrieved", stats)
}
