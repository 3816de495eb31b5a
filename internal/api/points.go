package api

import (
	"net/http"

	"mindcare/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PointsController handles wellness points endpoints
type PointsController struct {
	pointsService *service.PointsService
}

// NewPointsController creates a new points controller
func NewPointsController(pointsService *service.PointsService) *PointsController {
	return &PointsController{pointsService: pointsService}
}

// RegisterRoutes registers the routes for the points controller
func (c *PointsController) RegisterRoutes(group *gin.RouterGroup) {
	points := group.Group("/points")
	{
		points.POST("/activities", c.CompleteActivity)
		points.GET("", c.GetTotal)
	}
}

// CompleteActivity awards points for a finished self-care activity
func (c *PointsController) CompleteActivity(ctx *gin.Context) {
	var request struct {
		Activity string `json:"activity" binding:"required"`
	}

	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	awarded, err := c.pointsService.CompleteActivity(request.Activity)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"activity": request.Activity,
		"awarded":  awarded,
	})
}

// GetTotal returns the ledger sum
func (c *PointsController) GetTotal(ctx *gin.Context) {
	total, err := c.pointsService.Total()
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"total": total})
}
