package api

import (
	"net/http"

	"mindcare/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the aggregated wellness snapshot
type DashboardController struct {
	dashboardService *service.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// RegisterRoutes registers the routes for the dashboard controller
func (c *DashboardController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/dashboard", c.GetSummary)
}

// GetSummary returns the average-sentiment, mood and points snapshot
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.Summary()
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
